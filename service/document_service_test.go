package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnavamsip/pdf-assistant/types"
)

type fakeDocumentRepo struct {
	docs map[string]*types.StoredDocument
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *types.StoredDocument) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) Get(ctx context.Context, id string) (*types.StoredDocument, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return doc, nil
}

func (r *fakeDocumentRepo) ListByUser(ctx context.Context, userID string) ([]*types.StoredDocument, error) {
	var docs []*types.StoredDocument
	for _, doc := range r.docs {
		if doc.UserID == userID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

func newDocumentServiceWithDoc(doc *types.StoredDocument) *DocumentService {
	repo := &fakeDocumentRepo{docs: map[string]*types.StoredDocument{}}
	if doc != nil {
		repo.docs[doc.ID] = doc
	}
	return NewDocumentService(repo, NewChapterService())
}

func TestResolveTextPrefersRawText(t *testing.T) {
	svc := newDocumentServiceWithDoc(nil)

	text, err := svc.ResolveText(context.Background(), types.DocumentRequest{Text: "inline text"})
	require.NoError(t, err)
	assert.Equal(t, "inline text", text)
}

func TestResolveTextLoadsStoredDocument(t *testing.T) {
	svc := newDocumentServiceWithDoc(&types.StoredDocument{ID: "doc-1", Text: "stored text"})

	text, err := svc.ResolveText(context.Background(), types.DocumentRequest{DocumentID: "doc-1"})
	require.NoError(t, err)
	assert.Equal(t, "stored text", text)
}

func TestResolveTextUnknownDocument(t *testing.T) {
	svc := newDocumentServiceWithDoc(nil)

	_, err := svc.ResolveText(context.Background(), types.DocumentRequest{DocumentID: "missing"})
	assert.Error(t, err)
}

func TestResolveTextRequiresSource(t *testing.T) {
	svc := newDocumentServiceWithDoc(nil)

	_, err := svc.ResolveText(context.Background(), types.DocumentRequest{})
	assert.Error(t, err)
}

func TestResolveTextNarrowsToChapter(t *testing.T) {
	svc := newDocumentServiceWithDoc(nil)

	text := "Chapter 1: Alpha\nalpha body\nChapter 2: Beta\nbeta body"
	resolved, err := svc.ResolveText(context.Background(), types.DocumentRequest{Text: text, Chapter: 2})
	require.NoError(t, err)
	assert.Contains(t, resolved, "beta body")
	assert.NotContains(t, resolved, "alpha body")
}

func TestResolveTextChapterNotFound(t *testing.T) {
	svc := newDocumentServiceWithDoc(nil)

	_, err := svc.ResolveText(context.Background(), types.DocumentRequest{Text: "no chapters here", Chapter: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chapter 3 not found")
}
