package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moa_diary/config"
	"moa_diary/diary"
	"moa_diary/generator"
	"moa_diary/logging"
	"moa_diary/media"
	"moa_diary/server"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "moa-diary",
		Short:         "Turn daily records into a diary with a generative model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/config.json", "path to config file (json or yaml)")
	root.AddCommand(serveCmd(), generateCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			agent, err := buildAgent(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			srv, err := server.New(agent, logger, cfg.Timeout())
			if err != nil {
				return err
			}

			listen := cfg.ServerAddr
			if addr != "" {
				listen = addr
			}
			logger.Info("starting web server", zap.String("addr", listen), zap.String("provider", cfg.LLM.Provider))
			return http.ListenAndServe(listen, srv.Routes())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "http listen address (overrides config.server_addr)")
	return cmd
}

func generateCmd() *cobra.Command {
	var (
		input   string
		persona int
		html    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one diary from a request JSON file and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			var req diary.Request
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("parse %s: %w", input, err)
			}
			if cmd.Flags().Changed("persona") {
				req.Persona = persona
			}

			agent, err := buildAgent(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
			defer cancel()

			logger.Info("generating diary", zap.String("input", input), zap.Int("items", len(req.Items)), zap.Int("persona", req.Persona))
			out, err := agent.Generate(ctx, req)
			if err != nil {
				return err
			}
			if html {
				fmt.Print(out.HTML)
				return nil
			}
			fmt.Println(out.Text)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to request JSON ({\"items\": [...], \"persona\": 0})")
	cmd.Flags().IntVar(&persona, "persona", 0, "persona 0-3 (overrides the file)")
	cmd.Flags().BoolVar(&html, "html", false, "print the HTML rendering instead of text")
	return cmd
}

func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func buildAgent(ctx context.Context, cfg config.Config, logger *zap.Logger) (*generator.Agent, error) {
	llm, err := generator.NewLLM(ctx, cfg.LLMSettings())
	if err != nil {
		return nil, err
	}
	fetcher := media.NewFetcher(&http.Client{}, time.Duration(cfg.Media.DownloadTimeout), cfg.Media.MaxBytes)
	mat := media.NewMaterializer(fetcher, cfg.MediaOptions(), logger.Named("media"))
	return generator.NewAgent(llm, mat, logger.Named("generator"))
}
