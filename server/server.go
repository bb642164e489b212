package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"moa_diary/diary"
	"moa_diary/generator"
)

// Generator produces a diary for one request.
type Generator interface {
	Generate(ctx context.Context, req diary.Request) (generator.Diary, error)
}

type Server struct {
	gen     Generator
	logger  *zap.Logger
	timeout time.Duration
}

func New(gen Generator, logger *zap.Logger, timeout time.Duration) (*Server, error) {
	if gen == nil {
		return nil, errors.New("diary generator required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Server{gen: gen, logger: logger, timeout: timeout}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/diary/generate", s.handleGenerate)
	return r
}

// --- Handlers ---

type generateResp struct {
	Diary string `json:"diary"`
	HTML  string `json:"html,omitempty"`
}

type errorResp struct {
	Detail string `json:"detail"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context(), s.logger)

	var req diary.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Well-formed JSON with a wrongly typed field is a schema violation.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			writeError(w, http.StatusUnprocessableEntity, "invalid request: "+err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	out, err := s.gen.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, diary.ErrInvalidRequest) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.Error("diary generation failed", zap.Int("items", len(req.Items)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := generateResp{Diary: out.Text}
	if r.URL.Query().Get("format") == "html" {
		resp.HTML = out.HTML
	}
	logger.Info("diary generated", zap.Int("items", len(req.Items)), zap.Int("persona", req.Persona), zap.Int("chars", len([]rune(out.Text))))
	writeJSON(w, http.StatusOK, resp)
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResp{Detail: detail})
}
