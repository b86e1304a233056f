package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactStatus tracks a contact request through triage.
type ContactStatus string

const (
	StatusNew        ContactStatus = "new"
	StatusInProgress ContactStatus = "in-progress"
	StatusResolved   ContactStatus = "resolved"
	StatusClosed     ContactStatus = "closed"
)

// ParseContactStatus validates a status label.
func ParseContactStatus(s string) (ContactStatus, error) {
	switch st := ContactStatus(s); st {
	case StatusNew, StatusInProgress, StatusResolved, StatusClosed:
		return st, nil
	default:
		return "", fmt.Errorf("%w: valid status is required (new, in-progress, resolved, closed)", ErrInvalidInput)
	}
}

// ContactInput is the raw contact form.
type ContactInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	Type         string `json:"type"`
	Priority     string `json:"priority"`
}

// Contact is a stored contact request.
type Contact struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Organization string        `json:"organization"`
	Subject      string        `json:"subject"`
	Message      string        `json:"message"`
	Type         string        `json:"type"`
	Priority     string        `json:"priority"`
	Status       ContactStatus `json:"status"`
	Timestamp    time.Time     `json:"timestamp"`
	UpdatedAt    *time.Time    `json:"updatedAt,omitempty"`
}

// NewContact validates and normalizes a contact form.
func NewContact(in ContactInput) (Contact, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	message := strings.TrimSpace(in.Message)

	if name == "" || email == "" || message == "" {
		return Contact{}, fmt.Errorf("%w: name, email, and message are required", ErrInvalidInput)
	}
	if !emailRe.MatchString(email) {
		return Contact{}, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	priority := strings.ToLower(strings.TrimSpace(in.Priority))
	switch priority {
	case "":
		priority = "normal"
	case "low", "normal", "high", "urgent":
	default:
		return Contact{}, fmt.Errorf("%w: priority must be one of low, normal, high, urgent", ErrInvalidInput)
	}

	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		kind = "general"
	}

	return Contact{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Organization: strings.TrimSpace(in.Organization),
		Subject:      strings.TrimSpace(in.Subject),
		Message:      message,
		Type:         kind,
		Priority:     priority,
		Status:       StatusNew,
		Timestamp:    Now(),
	}, nil
}

// FeedbackInput is the raw feedback form.
type FeedbackInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Rating    *int   `json:"rating"`
	Category  string `json:"category"`
	Feedback  string `json:"feedback"`
	Anonymous bool   `json:"anonymous"`
}

// Feedback is a stored feedback entry.
type Feedback struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     *string       `json:"email"`
	Rating    *int          `json:"rating"`
	Category  string        `json:"category"`
	Feedback  string        `json:"feedback"`
	Anonymous bool          `json:"anonymous"`
	Status    ContactStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewFeedback validates and normalizes a feedback form. Anonymous entries
// drop the submitter's name and email.
func NewFeedback(in FeedbackInput) (Feedback, error) {
	text := strings.TrimSpace(in.Feedback)
	category := strings.TrimSpace(in.Category)
	if text == "" || category == "" {
		return Feedback{}, fmt.Errorf("%w: feedback and category are required", ErrInvalidInput)
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return Feedback{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	fb := Feedback{
		ID:        uuid.NewString(),
		Rating:    in.Rating,
		Category:  category,
		Feedback:  text,
		Anonymous: in.Anonymous,
		Status:    StatusNew,
		Timestamp: Now(),
	}

	if in.Anonymous {
		fb.Name = "Anonymous"
		return fb, nil
	}

	fb.Name = strings.TrimSpace(in.Name)
	if email := strings.ToLower(strings.TrimSpace(in.Email)); email != "" {
		if !emailRe.MatchString(email) {
			return Feedback{}, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
		}
		fb.Email = &email
	}
	return fb, nil
}

// SubmissionStore persists contact and feedback submissions.
type SubmissionStore interface {
	AddContact(ctx context.Context, c Contact) error
	ListContacts(ctx context.Context) ([]Contact, error)
	UpdateContactStatus(ctx context.Context, id string, status ContactStatus) (Contact, error)
	AddFeedback(ctx context.Context, f Feedback) error
	ListFeedback(ctx context.Context) ([]Feedback, error)
}

// SubmissionKind labels a submission event.
type SubmissionKind string

const (
	KindContact       SubmissionKind = "contact"
	KindFeedback      SubmissionKind = "feedback"
	KindContactStatus SubmissionKind = "contact_status"
)

// SubmissionEvent announces a stored or updated submission.
type SubmissionEvent struct {
	ID          string         `json:"id"`
	Kind        SubmissionKind `json:"kind"`
	SubmittedAt time.Time      `json:"submitted_at"`
	Payload     any            `json:"payload"`
}
