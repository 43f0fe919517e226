package service

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/krishnavamsip/pdf-assistant/types"
)

// WebSocketService streams summarization progress to the client. The
// client sends one request message, then receives progress frames until
// the final summary (or error) frame closes the exchange.
type WebSocketService struct {
	summaries *SummaryService
	resolver  *DocumentService
	upgrader  websocket.Upgrader
}

func NewWebSocketService(summaries *SummaryService, resolver *DocumentService) *WebSocketService {
	return &WebSocketService{
		summaries: summaries,
		resolver:  resolver,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	var req types.SummarizeRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Println("Read request error:", err)
		return
	}

	text, err := s.resolver.ResolveText(r.Context(), req.DocumentRequest)
	if err != nil {
		conn.WriteJSON(types.ProgressUpdate{Type: "error", Message: err.Error()})
		return
	}

	progress := func(fraction float64, status string) {
		update := types.ProgressUpdate{
			Type:     "progress",
			Progress: fraction,
			Message:  status,
		}
		if err := conn.WriteJSON(update); err != nil {
			log.Println("Progress write error:", err)
		}
	}

	summary, err := s.summaries.Summarize(r.Context(), text, progress)
	if err != nil {
		conn.WriteJSON(types.ProgressUpdate{Type: "error", Message: err.Error()})
		return
	}

	conn.WriteJSON(types.ProgressUpdate{Type: "summary", Summary: summary})
}
