package service

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/krishnavamsip/pdf-assistant/types"
)

// PDFService extracts plain text from PDF files. Extraction quality varies
// wildly between producers, so two strategies are tried in order: the pure
// Go reader first, then the pdftotext binary when available.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// ExtractText returns the concatenated per-page text and the page count.
func (s *PDFService) ExtractText(path string) (string, int, error) {
	text, pages, err := extractWithReader(path)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("pdf reader extraction failed for %s, trying pdftotext: %v", path, err)
		text, err = extractWithPdftotext(path)
		if err != nil || strings.TrimSpace(text) == "" {
			return "", 0, fmt.Errorf("%w: %s", types.ErrExtractionFailed, path)
		}
		if pages == 0 {
			pages = strings.Count(text, "\f") + 1
		}
	}
	return text, pages, nil
}

// ExtractBytes writes the upload to a temp file first; the PDF reader
// needs a seekable file of known size.
func (s *PDFService) ExtractBytes(data []byte) (string, int, error) {
	tmp, err := os.CreateTemp("", "pdf-assistant-*.pdf")
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	return s.ExtractText(tmp.Name())
}

func extractWithReader(path string) (string, int, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page should not sink the document.
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return buf.String(), numPages, nil
}

func extractWithPdftotext(path string) (string, error) {
	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
