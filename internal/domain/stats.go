package domain

import "time"

// ContactStats counts contact requests by status and priority.
type ContactStats struct {
	Total      int            `json:"total"`
	New        int            `json:"new"`
	Resolved   int            `json:"resolved"`
	Priorities map[string]int `json:"priorities"`
}

// FeedbackStats counts feedback by category and rating.
type FeedbackStats struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
	Ratings    map[int]int    `json:"ratings"`
	Anonymous  int            `json:"anonymous"`
}

// SubmissionStats aggregates every stored submission.
type SubmissionStats struct {
	Contacts    ContactStats  `json:"contacts"`
	Feedback    FeedbackStats `json:"feedback"`
	GeneratedAt time.Time     `json:"timestamp"`
}

// ComputeStats tallies contacts and feedback. Every priority and every rating
// from 1 to 5 is present in the result, even at zero.
func ComputeStats(contacts []Contact, feedback []Feedback) SubmissionStats {
	stats := SubmissionStats{
		Contacts: ContactStats{
			Total:      len(contacts),
			Priorities: map[string]int{"urgent": 0, "high": 0, "normal": 0, "low": 0},
		},
		Feedback: FeedbackStats{
			Total:      len(feedback),
			Categories: map[string]int{},
			Ratings:    map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		},
		GeneratedAt: Now(),
	}

	for _, c := range contacts {
		switch c.Status {
		case StatusNew:
			stats.Contacts.New++
		case StatusResolved:
			stats.Contacts.Resolved++
		}
		if _, ok := stats.Contacts.Priorities[c.Priority]; ok {
			stats.Contacts.Priorities[c.Priority]++
		}
	}

	for _, f := range feedback {
		if f.Category != "" {
			stats.Feedback.Categories[f.Category]++
		}
		if f.Rating != nil {
			if _, ok := stats.Feedback.Ratings[*f.Rating]; ok {
				stats.Feedback.Ratings[*f.Rating]++
			}
		}
		if f.Anonymous {
			stats.Feedback.Anonymous++
		}
	}
	return stats
}
