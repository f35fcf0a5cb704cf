package slides

import "context"

// PDFProcessor converts lecture PDFs into slide images and extracted text.
type PDFProcessor interface {
	// Convert rasterizes every page of the given PDF files into imageDir,
	// numbering pages consecutively across files starting from startPage.
	// It returns the slide entries in page order.
	Convert(ctx context.Context, pdfPaths []string, imageDir string, startPage int) ([]*SlideMeta, error)
}
