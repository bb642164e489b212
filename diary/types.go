package diary

import (
	"errors"
	"fmt"
)

// Entry types accepted from clients.
const (
	TypeText          = "text"
	TypeImage         = "image"
	TypeTextImage     = "text+image"
	TypeImageWithText = "image_with_text"
	TypeVoice         = "voice"
	TypeAudio         = "audio"
)

// RecordType is the canonical type handed to the prompt assembler.
type RecordType string

const (
	RecordText      RecordType = "text"
	RecordImage     RecordType = "image"
	RecordTextImage RecordType = "text+image"
)

// HasImage reports whether records of this type may carry image bytes.
func (t RecordType) HasImage() bool {
	return t == RecordImage || t == RecordTextImage
}

const (
	MinPersona = 0
	MaxPersona = 3
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnsupportedType = errors.New("unsupported type")
)

// Item is one entry as sent by the client.
type Item struct {
	Type    string  `json:"type"`
	Content *string `json:"content,omitempty"`
	Path    *string `json:"path,omitempty"`
}

// Request is the body of a diary generation call.
type Request struct {
	Items   []Item `json:"items"`
	Persona int    `json:"persona"`
}

// Record is the normalized form of an Item.
type Record struct {
	Type     RecordType `json:"type"`
	Context  string     `json:"context"`
	ImageURL string     `json:"imageUrl,omitempty"`
}

// Validate checks that items is present, the persona range and every item
// type. An empty items list is valid; a missing or null one is not.
func (r Request) Validate() error {
	if r.Items == nil {
		return fmt.Errorf("%w: items is required", ErrInvalidRequest)
	}
	if r.Persona < MinPersona || r.Persona > MaxPersona {
		return fmt.Errorf("%w: persona must be between %d and %d, got %d", ErrInvalidRequest, MinPersona, MaxPersona, r.Persona)
	}
	for i, it := range r.Items {
		if !knownType(it.Type) {
			return fmt.Errorf("%w: items[%d]: %w: %s", ErrInvalidRequest, i, ErrUnsupportedType, it.Type)
		}
	}
	return nil
}

func knownType(t string) bool {
	switch t {
	case TypeText, TypeImage, TypeTextImage, TypeImageWithText, TypeVoice, TypeAudio:
		return true
	}
	return false
}
