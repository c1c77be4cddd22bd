package experience

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Experience categories — the fixed set a listing can belong to.
const (
	CategoryMusic  = "Music"
	CategorySports = "Sports"
	CategoryTravel = "Travel"
	CategoryFood   = "Food"
	CategoryArts   = "Arts"
	CategoryOther  = "Other"
)

// ValidCategories contains all valid experience categories.
var ValidCategories = []string{CategoryMusic, CategorySports, CategoryTravel, CategoryFood, CategoryArts, CategoryOther}

// Domain errors
var (
	ErrEmptyID        = errors.New("experience ID cannot be empty")
	ErrEmptyCreator   = errors.New("experience creator cannot be empty")
	ErrInvalidTitle   = errors.New("experience title must be 5-100 characters")
	ErrInvalidDesc    = errors.New("experience description must be 10-500 characters")
	ErrZeroDate       = errors.New("experience date must be set")
	ErrInvalidTime    = errors.New("experience time must be HH:MM (24-hour)")
	ErrInvalidLoc     = errors.New("experience location must be 3-100 characters")
	ErrUnknownCat     = errors.New("experience category is not one of the known categories")
	ErrSelfAttendance = errors.New("creator cannot attend their own experience")
)

// Experience represents an activity listing other users can express interest
// in joining. Attendees holds the user IDs recorded as interested, in append
// order, never containing the creator and never containing duplicates.
type Experience struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"` // "HH:MM", 24-hour clock
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"` // empty = no image
	CreatorID   string    `json:"creatorId"`
	CreatorName string    `json:"creatorName"`
	Attendees   []string  `json:"attendees"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks the record-at-rest invariants.
// PRE: e fields may be empty (validation will catch this)
// POST: Returns nil if every field constraint holds, a domain error otherwise
func (e *Experience) Validate() error {
	if e.ID == "" {
		return ErrEmptyID
	}
	if e.CreatorID == "" {
		return ErrEmptyCreator
	}
	// Lengths count characters, not bytes, matching the form rules.
	if n := utf8.RuneCountInString(e.Title); n < 5 || n > 100 {
		return ErrInvalidTitle
	}
	if n := utf8.RuneCountInString(e.Description); n < 10 || n > 500 {
		return ErrInvalidDesc
	}
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	if !timePattern.MatchString(e.Time) {
		return ErrInvalidTime
	}
	if n := utf8.RuneCountInString(e.Location); n < 3 || n > 100 {
		return ErrInvalidLoc
	}
	if !IsValidCategory(e.Category) {
		return ErrUnknownCat
	}
	for _, id := range e.Attendees {
		if id == e.CreatorID {
			return ErrSelfAttendance
		}
	}
	return nil
}

// HasAttendee reports whether userID already appears in the attendee list.
// INVARIANT: Attendees is not mutated
func (e *Experience) HasAttendee(userID string) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a defensive copy with its own attendee slice, so callers
// cannot reach back into store state.
func (e Experience) Clone() Experience {
	if e.Attendees != nil {
		attendees := make([]string, len(e.Attendees))
		copy(attendees, e.Attendees)
		e.Attendees = attendees
	}
	return e
}

// IsValidCategory reports whether c matches a known category, ignoring case.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if strings.EqualFold(v, c) {
			return true
		}
	}
	return false
}
