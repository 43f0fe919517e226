package types

// MCQ is a single multiple choice question. A valid question always
// carries exactly four options and an answer that is one of them.
type MCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Valid reports whether the question satisfies the four-option contract.
func (q MCQ) Valid() bool {
	if q.Question == "" || len(q.Options) != 4 {
		return false
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return true
		}
	}
	return false
}

// Chapter is a detected chapter or section heading. Page numbers are rough
// estimates from line position and are meant for display only. EndPage 0
// means the chapter runs to the end of the document.
type Chapter struct {
	Number     int    `json:"number" bson:"number"`
	Title      string `json:"title" bson:"title"`
	LineNumber int    `json:"line_number" bson:"line_number"`
	StartPage  int    `json:"start_page" bson:"start_page"`
	EndPage    int    `json:"end_page" bson:"end_page"`
}

// UsageStats is a read-only view over one credential's counters.
type UsageStats struct {
	Credential  string  `json:"credential"`
	Requests    int64   `json:"requests"`
	Errors      int64   `json:"errors"`
	SuccessRate float64 `json:"success_rate"`
}

// ProgressFunc receives a monotonically increasing fraction in [0,1]
// and a human-readable status line.
type ProgressFunc func(fraction float64, status string)
