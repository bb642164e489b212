package generator

// Image is inline media sent to the model.
type Image struct {
	Data     []byte
	MIMEType string
}

// Fragment is one element of the user content. Exactly one of Text or Image
// is set.
type Fragment struct {
	Text  string
	Image *Image
}

// Diary is the post-processed model output.
type Diary struct {
	Text string `json:"diary"`
	// HTML is the goldmark rendering of Text.
	HTML string `json:"html,omitempty"`
}
