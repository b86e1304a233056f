package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freezeClock(t *testing.T) *clockwork.FakeClock {
	t.Helper()
	fake := clockwork.NewFakeClockAt(time.Date(2026, time.July, 14, 16, 30, 0, 0, time.UTC))
	SetClock(fake)
	t.Cleanup(func() { SetClock(nil) })
	return fake
}

func TestNewContact_Normalizes(t *testing.T) {
	fake := freezeClock(t)

	c, err := NewContact(ContactInput{
		Name:    "  Ada Lovelace ",
		Email:   " Ada@Example.ORG ",
		Subject: " Cooling centers ",
		Message: " Where is the nearest one? ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, "ada@example.org", c.Email)
	assert.Equal(t, "Cooling centers", c.Subject)
	assert.Equal(t, "Where is the nearest one?", c.Message)
	assert.Equal(t, "normal", c.Priority)
	assert.Equal(t, "general", c.Type)
	assert.Equal(t, StatusNew, c.Status)
	assert.Equal(t, fake.Now(), c.Timestamp)
	assert.Nil(t, c.UpdatedAt)
}

func TestNewContact_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   ContactInput
	}{
		{"missing name", ContactInput{Email: "a@b.co", Message: "hi"}},
		{"missing email", ContactInput{Name: "A", Message: "hi"}},
		{"blank message", ContactInput{Name: "A", Email: "a@b.co", Message: "   "}},
		{"bad email", ContactInput{Name: "A", Email: "not-an-email", Message: "hi"}},
		{"bad priority", ContactInput{Name: "A", Email: "a@b.co", Message: "hi", Priority: "asap"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewContact(tc.in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestNewContact_UniqueIDs(t *testing.T) {
	in := ContactInput{Name: "A", Email: "a@b.co", Message: "hi"}
	a, err := NewContact(in)
	require.NoError(t, err)
	b, err := NewContact(in)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewFeedback_Anonymous(t *testing.T) {
	freezeClock(t)
	rating := 4

	fb, err := NewFeedback(FeedbackInput{
		Name:      "Grace",
		Email:     "invalid email is ignored when anonymous",
		Rating:    &rating,
		Category:  " maps ",
		Feedback:  " Love the heat map ",
		Anonymous: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Anonymous", fb.Name)
	assert.Nil(t, fb.Email)
	assert.Equal(t, "maps", fb.Category)
	assert.Equal(t, "Love the heat map", fb.Feedback)
	require.NotNil(t, fb.Rating)
	assert.Equal(t, 4, *fb.Rating)
}

func TestNewFeedback_Named(t *testing.T) {
	fb, err := NewFeedback(FeedbackInput{Name: " Grace ", Email: "GRACE@navy.mil", Category: "ui", Feedback: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", fb.Name)
	require.NotNil(t, fb.Email)
	assert.Equal(t, "grace@navy.mil", *fb.Email)
	assert.Nil(t, fb.Rating)

	fb, err = NewFeedback(FeedbackInput{Category: "ui", Feedback: "ok"})
	require.NoError(t, err)
	assert.Nil(t, fb.Email)
}

func TestNewFeedback_Invalid(t *testing.T) {
	zero, six := 0, 6
	tests := []struct {
		name string
		in   FeedbackInput
	}{
		{"missing feedback", FeedbackInput{Category: "ui"}},
		{"missing category", FeedbackInput{Feedback: "ok"}},
		{"rating too low", FeedbackInput{Category: "ui", Feedback: "ok", Rating: &zero}},
		{"rating too high", FeedbackInput{Category: "ui", Feedback: "ok", Rating: &six}},
		{"bad email", FeedbackInput{Category: "ui", Feedback: "ok", Email: "nope"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFeedback(tc.in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseContactStatus(t *testing.T) {
	st, err := ParseContactStatus("in-progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, st)

	_, err = ParseContactStatus("done")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeStats(t *testing.T) {
	five, three := 5, 3
	contacts := []Contact{
		{Status: StatusNew, Priority: "urgent"},
		{Status: StatusNew, Priority: "normal"},
		{Status: StatusResolved, Priority: "normal"},
		{Status: StatusClosed, Priority: "low"},
	}
	feedback := []Feedback{
		{Category: "maps", Rating: &five},
		{Category: "maps", Rating: &three, Anonymous: true},
		{Category: "tips"},
	}

	stats := ComputeStats(contacts, feedback)

	assert.Equal(t, 4, stats.Contacts.Total)
	assert.Equal(t, 2, stats.Contacts.New)
	assert.Equal(t, 1, stats.Contacts.Resolved)
	assert.Equal(t, map[string]int{"urgent": 1, "high": 0, "normal": 2, "low": 1}, stats.Contacts.Priorities)

	assert.Equal(t, 3, stats.Feedback.Total)
	assert.Equal(t, map[string]int{"maps": 2, "tips": 1}, stats.Feedback.Categories)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 1}, stats.Feedback.Ratings)
	assert.Equal(t, 1, stats.Feedback.Anonymous)
}
