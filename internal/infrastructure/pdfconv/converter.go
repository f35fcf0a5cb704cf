// Package pdfconv rasterizes lecture PDFs into slide images and extracts
// their text through MuPDF.
package pdfconv

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"lecture_note_service/internal/domain/slides"
	"lecture_note_service/internal/pkg/logger"
)

type fitzProcessor struct {
	dpi    int
	logger logger.Logger
}

// NewFitzProcessor creates a PDF processor rendering pages at the given DPI.
func NewFitzProcessor(dpi int, logger logger.Logger) (slides.PDFProcessor, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %d", dpi)
	}
	return &fitzProcessor{dpi: dpi, logger: logger}, nil
}

func (p *fitzProcessor) Convert(ctx context.Context, pdfPaths []string, imageDir string, startPage int) ([]*slides.SlideMeta, error) {
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", imageDir, err)
	}

	pageNum := startPage
	var result []*slides.SlideMeta
	for _, pdfPath := range pdfPaths {
		converted, err := p.convertOne(ctx, pdfPath, imageDir, pageNum)
		if err != nil {
			return nil, err
		}
		result = append(result, converted...)
		pageNum += len(converted)
	}
	return result, nil
}

func (p *fitzProcessor) convertOne(ctx context.Context, pdfPath, imageDir string, startPage int) ([]*slides.SlideMeta, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	p.logger.Info(fmt.Sprintf("Converting %s (%d pages) at %d DPI", filepath.Base(pdfPath), doc.NumPage(), p.dpi))

	var result []*slides.SlideMeta
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pageNum := startPage + i

		img, err := doc.ImageDPI(i, float64(p.dpi))
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d of %s: %w", i+1, pdfPath, err)
		}
		imagePath := filepath.Join(imageDir, fmt.Sprintf("slide_%03d.png", pageNum))
		if err := writePNG(imagePath, img); err != nil {
			return nil, err
		}

		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d of %s: %w", i+1, pdfPath, err)
		}
		result = append(result, slides.NewSlideMeta(pageNum, imagePath, strings.TrimSpace(text)))
	}
	return result, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode image %s: %w", path, err)
	}
	return nil
}
