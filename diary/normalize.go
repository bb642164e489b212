package diary

import "fmt"

// MapType folds client aliases onto the internal vocabulary.
func MapType(t string) string {
	switch t {
	case TypeTextImage:
		return TypeImageWithText
	case TypeVoice:
		return TypeAudio
	}
	return t
}

// Normalize converts client items into canonical records, preserving order.
// Audio entries are expected to arrive already transcribed in Content; their
// path is not forwarded.
func Normalize(items []Item) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for _, it := range items {
		content := deref(it.Content)
		switch MapType(it.Type) {
		case TypeText, TypeAudio:
			records = append(records, Record{Type: RecordText, Context: content})
		case TypeImage:
			records = append(records, Record{Type: RecordImage, Context: content, ImageURL: deref(it.Path)})
		case TypeImageWithText:
			records = append(records, Record{Type: RecordTextImage, Context: content, ImageURL: deref(it.Path)})
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, it.Type)
		}
	}
	return records, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
