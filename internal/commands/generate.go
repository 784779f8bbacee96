package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/ruminaider/readme-maker/internal/qr"
	"github.com/ruminaider/readme-maker/internal/render"
)

// ReadmeFilename is the fixed name of the generated document.
const ReadmeFilename = "README.md"

// Document is the output of one generation.
type Document struct {
	Markdown string
	// QR holds PNG bytes when a QR code was generated.
	QR         []byte
	QRFilename string
}

// Generate renders the session's record. When QR output is enabled and a
// target URL is known, the QR image is encoded and referenced from the
// markdown.
func Generate(s *Session) (Document, error) {
	var doc Document
	if target := s.QRTarget(); s.IncludeQR && target != "" {
		png, err := qr.Encode(target)
		if err != nil {
			return Document{}, err
		}
		doc.QR = png
		doc.QRFilename = qr.DefaultFilename
	}

	md, err := render.Render(s.Record, s.Template, render.Options{
		IncludeQR: doc.QR != nil,
		QRRef:     doc.QRFilename,
	})
	if err != nil {
		return Document{}, err
	}
	doc.Markdown = md
	return doc, nil
}

// WriteDocument writes README.md, and the QR image if present, into dir.
// It returns the paths written.
func WriteDocument(dir string, doc Document) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	readme := filepath.Join(dir, ReadmeFilename)
	if err := atomic.WriteFile(readme, bytes.NewReader([]byte(doc.Markdown))); err != nil {
		return nil, fmt.Errorf("writing %s: %w", ReadmeFilename, err)
	}
	written := []string{readme}

	if doc.QR != nil {
		qrPath := filepath.Join(dir, doc.QRFilename)
		if err := atomic.WriteFile(qrPath, bytes.NewReader(doc.QR)); err != nil {
			return written, fmt.Errorf("writing %s: %w", doc.QRFilename, err)
		}
		written = append(written, qrPath)
	}
	return written, nil
}
