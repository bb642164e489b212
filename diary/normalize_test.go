package diary

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestMapType(t *testing.T) {
	assert.Equal(t, TypeImageWithText, MapType(TypeTextImage))
	assert.Equal(t, TypeAudio, MapType(TypeVoice))
	assert.Equal(t, TypeText, MapType(TypeText))
	assert.Equal(t, TypeImage, MapType(TypeImage))
	assert.Equal(t, "video", MapType("video"))
}

func TestNormalize(t *testing.T) {
	items := []Item{
		{Type: TypeText, Content: ptr("went for a walk")},
		{Type: TypeImage, Path: ptr("https://example.com/a.jpg")},
		{Type: TypeTextImage, Content: ptr("lunch"), Path: ptr("https://example.com/b.png")},
		{Type: TypeImageWithText, Content: ptr("dinner"), Path: ptr("https://example.com/c.png")},
		{Type: TypeVoice, Content: ptr("transcript"), Path: ptr("https://example.com/v.m4a")},
		{Type: TypeAudio},
	}

	records, err := Normalize(items)
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, Record{Type: RecordText, Context: "went for a walk"}, records[0])
	assert.Equal(t, Record{Type: RecordImage, ImageURL: "https://example.com/a.jpg"}, records[1])
	assert.Equal(t, Record{Type: RecordTextImage, Context: "lunch", ImageURL: "https://example.com/b.png"}, records[2])
	assert.Equal(t, Record{Type: RecordTextImage, Context: "dinner", ImageURL: "https://example.com/c.png"}, records[3])
	assert.Equal(t, Record{Type: RecordText, Context: "transcript"}, records[4])
	assert.Equal(t, Record{Type: RecordText}, records[5])
}

func TestNormalizeUnsupported(t *testing.T) {
	_, err := Normalize([]Item{{Type: "video"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
	assert.Contains(t, err.Error(), "video")
}

func TestRequestValidate(t *testing.T) {
	ok := Request{Items: []Item{{Type: TypeText}}, Persona: 3}
	require.NoError(t, ok.Validate())

	require.NoError(t, Request{Items: []Item{}}.Validate())

	for name, req := range map[string]Request{"missing items": {}, "null items": {Items: nil, Persona: 1}} {
		err := req.Validate()
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidRequest), name)
		assert.Contains(t, err.Error(), "items is required", name)
	}

	for _, p := range []int{-1, 4} {
		err := Request{Items: []Item{}, Persona: p}.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	}

	err := Request{Items: []Item{{Type: TypeText}, {Type: "sticker"}}}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
	assert.True(t, errors.Is(err, ErrUnsupportedType))
	assert.Contains(t, err.Error(), "items[1]")
}

func TestRequestDecodeMissingItems(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"persona":1}`), &req))
	require.Error(t, req.Validate())

	require.NoError(t, json.Unmarshal([]byte(`{"items":[]}`), &req))
	require.NoError(t, req.Validate())
}

func TestRequestDecodeDefaultsPersona(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"items":[{"type":"voice","content":"hi"}]}`), &req))
	assert.Equal(t, 0, req.Persona)
	require.Len(t, req.Items, 1)
	assert.Nil(t, req.Items[0].Path)
	assert.Equal(t, "hi", *req.Items[0].Content)
}
