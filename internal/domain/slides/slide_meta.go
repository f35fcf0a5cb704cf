// Package slides holds the slide entity extracted from lecture PDFs and
// the processing contracts around it.
package slides

// TextPreviewLength caps the text preview stored alongside each slide.
const TextPreviewLength = 300

// SlideMeta is one rasterized PDF page with its extracted text.
// JSON field names are the on-disk slides_info.json format.
type SlideMeta struct {
	PageNum     int    `json:"page_num"`
	ImagePath   string `json:"image_path"`
	Text        string `json:"text"`
	TextPreview string `json:"text_preview"`
}

// NewSlideMeta builds a slide entry, deriving the bounded text preview.
func NewSlideMeta(pageNum int, imagePath, text string) *SlideMeta {
	return &SlideMeta{
		PageNum:     pageNum,
		ImagePath:   imagePath,
		Text:        text,
		TextPreview: Preview(text),
	}
}

// Preview bounds s to the preview length, respecting rune boundaries.
func Preview(s string) string {
	runes := []rune(s)
	if len(runes) <= TextPreviewLength {
		return s
	}
	return string(runes[:TextPreviewLength])
}
