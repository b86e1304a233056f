package http

import (
	"net/http"
	"time"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
)

type receipt struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var in domain.ContactInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, s.logger, err)
		return
	}

	c, err := s.subs.SubmitContact(r.Context(), in)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, "Contact form submitted successfully", receipt{ID: c.ID, Timestamp: c.Timestamp})
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.subs.Contacts(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, "", map[string]any{
		"contacts":  contacts,
		"total":     len(contacts),
		"timestamp": domain.Now(),
	})
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var in domain.FeedbackInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, s.logger, err)
		return
	}

	f, err := s.subs.SubmitFeedback(r.Context(), in)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, "Feedback submitted successfully", receipt{ID: f.ID, Timestamp: f.Timestamp})
}

func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := s.subs.Feedback(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, "", map[string]any{
		"feedbacks": feedback,
		"total":     len(feedback),
		"timestamp": domain.Now(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.subs.Stats(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, "", map[string]any{
		"stats":     stats,
		"timestamp": stats.GeneratedAt,
	})
}

func (s *Server) handleUpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, s.logger, err)
		return
	}

	c, err := s.subs.UpdateContactStatus(r.Context(), r.PathValue("id"), body.Status)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, "Contact status updated successfully", c)
}
