package generator

import (
	"strings"

	"moa_diary/diary"
	"moa_diary/media"
)

// Per-entry delimiters. The persona instruction tells the model that events
// are split by these blocks.
const (
	EventStart = "------이벤트 블럭 시작--------"
	EventEnd   = "------이벤트 블럭 종료--------"
)

// FallbackPrompt replaces the fragments when no entry carried text or an image.
const FallbackPrompt = "사용자가 남긴 기록이 거의 없어요. 아주 짧게 오늘 하루를 상상해서 한 단락의 일기로 정리해줘."

// Prompt is what gets sent to the LLM: a system instruction plus ordered fragments.
type Prompt struct {
	System    string
	Fragments []Fragment
}

// Assemble linearizes records into fragments. Each record is wrapped in
// EventStart/EventEnd; its trimmed text and, for image records, its asset
// follow in that order. hasContent is false when the fallback was used.
func Assemble(records []diary.Record, assets []media.Asset) (fragments []Fragment, hasContent bool) {
	byIndex := make(map[int]media.Asset, len(assets))
	for _, a := range assets {
		byIndex[a.Index] = a
	}

	fragments = make([]Fragment, 0, len(records)*3)
	for i, rec := range records {
		fragments = append(fragments, Fragment{Text: EventStart})

		if text := strings.TrimSpace(rec.Context); text != "" {
			fragments = append(fragments, Fragment{Text: text})
			hasContent = true
		}

		if asset, ok := byIndex[i]; ok && rec.Type.HasImage() && len(asset.Data) > 0 {
			fragments = append(fragments, Fragment{Image: &Image{Data: asset.Data, MIMEType: asset.MIMEType}})
			hasContent = true
		}

		fragments = append(fragments, Fragment{Text: EventEnd})
	}

	if !hasContent {
		return []Fragment{{Text: FallbackPrompt}}, false
	}
	return fragments, true
}

// BuildPrompt pairs the persona instruction with the assembled fragments.
func BuildPrompt(persona Persona, records []diary.Record, assets []media.Asset) (Prompt, bool) {
	system, _ := SystemInstruction(persona)
	fragments, hasContent := Assemble(records, assets)
	return Prompt{System: system, Fragments: fragments}, hasContent
}
