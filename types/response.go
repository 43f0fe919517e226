package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

// QuizResponse carries the requested count so callers can detect when the
// generator came up short without treating it as an error.
type QuizResponse struct {
	Questions []MCQ `json:"questions"`
	Requested int   `json:"requested"`
}

type AnswerResponse struct {
	Answer  string `json:"answer"`
	Context string `json:"context"`
}

type ChaptersResponse struct {
	Chapters []Chapter `json:"chapters"`
}

type UploadResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	PublicURL string `json:"public_url"`
	Pages     int    `json:"pages"`
	Chars     int    `json:"chars"`
	Chapters  int    `json:"chapters"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ProgressUpdate is streamed over the summary websocket.
type ProgressUpdate struct {
	Type     string  `json:"type"`
	Progress float64 `json:"progress,omitempty"`
	Message  string  `json:"message,omitempty"`
	Summary  string  `json:"summary,omitempty"`
}
