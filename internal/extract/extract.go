package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"redguard/internal/util"

	"github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported file type")

// Text extracts plain text from uploaded file bytes, dispatching on the
// filename extension. Supported: txt, pdf, docx, doc. Output is sanitized
// but never truncated.
func Text(filename string, data []byte) (string, error) {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".") {
	case "txt":
		return finish(string(data))
	case "pdf":
		return pdfText(data)
	case "docx", "doc":
		return docxText(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}
	return finish(buf.String())
}

func finish(text string) (string, error) {
	text = util.SanitizeText(strings.TrimSpace(text))
	if text == "" {
		return "", util.ErrNoExtractableText
	}
	return text, nil
}
