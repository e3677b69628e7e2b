package models

import "time"

type PersonSession struct {
	ID                string
	PersonDescription string
	CreatedAt         time.Time
}

type BucketListSuggestion struct {
	ID               string
	Title            string
	Description      string
	Category         SpendingCategory
	PriceBreakdown   PriceBreakdown
	RejectionReasons []string
}

type RejectionFeedback struct {
	SuggestionID   string
	Reason         string
	IsCustomReason bool
}

// SessionState holds everything tracked for one session. Accepted and Rejected
// accumulate across regenerations; Reviewed only covers the current list.
type SessionState struct {
	Session     PersonSession
	Suggestions []BucketListSuggestion
	Accepted    []BucketListSuggestion
	Rejected    []RejectedBucketListSuggestion
	Reviewed    map[string]struct{}
}

type RejectedBucketListSuggestion struct {
	Suggestion BucketListSuggestion
	Feedback   RejectionFeedback
	RejectedAt time.Time
}

func NewSessionState(session PersonSession) *SessionState {
	return &SessionState{
		Session:  session,
		Reviewed: make(map[string]struct{}),
	}
}

func (s *SessionState) IsReviewed(id string) bool {
	_, ok := s.Reviewed[id]
	return ok
}

func (s *SessionState) FindSuggestion(id string) (BucketListSuggestion, bool) {
	for _, suggestion := range s.Suggestions {
		if suggestion.ID == id {
			return suggestion, true
		}
	}
	return BucketListSuggestion{}, false
}

// Clone copies the state so callers can read it outside the store lock.
func (s *SessionState) Clone() *SessionState {
	out := &SessionState{
		Session:     s.Session,
		Suggestions: make([]BucketListSuggestion, len(s.Suggestions)),
		Accepted:    make([]BucketListSuggestion, len(s.Accepted)),
		Rejected:    make([]RejectedBucketListSuggestion, len(s.Rejected)),
		Reviewed:    make(map[string]struct{}, len(s.Reviewed)),
	}
	for i, suggestion := range s.Suggestions {
		out.Suggestions[i] = suggestion.clone()
	}
	for i, suggestion := range s.Accepted {
		out.Accepted[i] = suggestion.clone()
	}
	for i, rejected := range s.Rejected {
		rejected.Suggestion = rejected.Suggestion.clone()
		out.Rejected[i] = rejected
	}
	for id := range s.Reviewed {
		out.Reviewed[id] = struct{}{}
	}
	return out
}

func (b BucketListSuggestion) clone() BucketListSuggestion {
	if b.PriceBreakdown.LineItems != nil {
		b.PriceBreakdown.LineItems = append(make([]LineItem, 0, len(b.PriceBreakdown.LineItems)), b.PriceBreakdown.LineItems...)
	}
	if b.RejectionReasons != nil {
		b.RejectionReasons = append(make([]string, 0, len(b.RejectionReasons)), b.RejectionReasons...)
	}
	return b
}
