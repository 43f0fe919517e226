package types

// DocumentRequest identifies the text an operation should run over.
// Either DocumentID (a stored upload) or Text (raw text) must be set.
// Chapter, when non-zero, scopes the operation to that chapter only.
type DocumentRequest struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
	Chapter    int    `json:"chapter"`
}

type SummarizeRequest struct {
	DocumentRequest
}

type QuizRequest struct {
	DocumentRequest
	Count  int `json:"count"`
	Offset int `json:"offset"`
}

type AskRequest struct {
	DocumentRequest
	Question string `json:"question"`
}

type ChaptersRequest struct {
	DocumentRequest
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}
