package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/krishnavamsip/pdf-assistant/repository"
	"github.com/krishnavamsip/pdf-assistant/types"
)

// DocumentService resolves the text an operation should run over: either
// raw text from the request or a stored upload, optionally narrowed to a
// single chapter.
type DocumentService struct {
	documents repository.DocumentRepo
	chapters  *ChapterService
}

func NewDocumentService(documents repository.DocumentRepo, chapters *ChapterService) *DocumentService {
	return &DocumentService{
		documents: documents,
		chapters:  chapters,
	}
}

func (s *DocumentService) ResolveText(ctx context.Context, req types.DocumentRequest) (string, error) {
	text := req.Text
	if text == "" {
		if req.DocumentID == "" {
			return "", errors.New("either document_id or text is required")
		}
		if s.documents == nil {
			return "", errors.New("document storage is not configured")
		}
		doc, err := s.documents.Get(ctx, req.DocumentID)
		if err != nil {
			return "", fmt.Errorf("load document %s: %w", req.DocumentID, err)
		}
		text = doc.Text
	}

	if req.Chapter > 0 {
		for _, chapter := range s.chapters.DetectChapters(text) {
			if chapter.Number == req.Chapter {
				return s.chapters.ExtractChapterText(text, chapter), nil
			}
		}
		return "", fmt.Errorf("chapter %d not found", req.Chapter)
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.New("document has no extractable text")
	}
	return text, nil
}
