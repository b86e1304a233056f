// Package filestore persists contact and feedback submissions as JSON files.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
)

const (
	contactsFile = "contacts.json"
	feedbackFile = "feedback.json"
)

// Store implements domain.SubmissionStore over a data directory. Every
// mutation rewrites the whole file through a temp file and rename.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates the data directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) AddContact(_ context.Context, c domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var contacts []domain.Contact
	if err := s.read(contactsFile, &contacts); err != nil {
		return err
	}
	contacts = append(contacts, c)
	return s.write(contactsFile, contacts)
}

// ListContacts returns contacts ordered most recent first.
func (s *Store) ListContacts(_ context.Context) ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := []domain.Contact{}
	if err := s.read(contactsFile, &contacts); err != nil {
		return nil, err
	}
	slices.SortStableFunc(contacts, func(a, b domain.Contact) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return contacts, nil
}

func (s *Store) UpdateContactStatus(_ context.Context, id string, status domain.ContactStatus) (domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var contacts []domain.Contact
	if err := s.read(contactsFile, &contacts); err != nil {
		return domain.Contact{}, err
	}
	i := slices.IndexFunc(contacts, func(c domain.Contact) bool { return c.ID == id })
	if i < 0 {
		return domain.Contact{}, fmt.Errorf("contact %q: %w", id, domain.ErrNotFound)
	}

	now := domain.Now()
	contacts[i].Status = status
	contacts[i].UpdatedAt = &now
	if err := s.write(contactsFile, contacts); err != nil {
		return domain.Contact{}, err
	}
	return contacts[i], nil
}

func (s *Store) AddFeedback(_ context.Context, f domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var feedback []domain.Feedback
	if err := s.read(feedbackFile, &feedback); err != nil {
		return err
	}
	feedback = append(feedback, f)
	return s.write(feedbackFile, feedback)
}

// ListFeedback returns feedback ordered most recent first.
func (s *Store) ListFeedback(_ context.Context) ([]domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	feedback := []domain.Feedback{}
	if err := s.read(feedbackFile, &feedback); err != nil {
		return nil, err
	}
	slices.SortStableFunc(feedback, func(a, b domain.Feedback) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return feedback, nil
}

// Ping reports whether the data directory is writable.
func (s *Store) Ping(_ context.Context) error {
	f, err := os.CreateTemp(s.dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// read decodes a file into v. A missing file leaves v untouched.
func (s *Store) read(name string, v any) error {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
