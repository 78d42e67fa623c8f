package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mohammad-Safadi/elsultan/internal/quote"
)

// Renderer turns a quote snapshot into a PDF document. The rendering
// mechanics are a black box to the core; SavePDF only names and writes
// the result.
type Renderer interface {
	Render(q quote.Quote) ([]byte, error)
}

// TextRenderer emits the print text as the document body. It stands in
// until a real PDF rasterizer is plugged in.
type TextRenderer struct {
	svc *Service
}

func NewTextRenderer(svc *Service) *TextRenderer {
	return &TextRenderer{svc: svc}
}

func (r *TextRenderer) Render(q quote.Quote) ([]byte, error) {
	return []byte(r.svc.PrintText(q)), nil
}

// SavePDF renders the quote and writes <sanitized-client-name>.pdf into
// dir, returning the written path.
func (s *Service) SavePDF(q quote.Quote, renderer Renderer, dir string) (string, error) {
	doc, err := renderer.Render(q)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(q.ClientInfo.Name)+".pdf")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	return path, nil
}
