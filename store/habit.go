package store

import (
	"context"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
)

// Habit is a single logged green habit. Habits are immutable once created;
// re-categorization or score updates are not supported.
type Habit struct {
	// ID is assigned by the driver and strictly increasing per store.
	ID int32
	// UID is a short, URL-safe unique identifier.
	UID string
	// Text is the raw habit description as submitted.
	Text string
	// Category is one of the classifier's fixed category names.
	Category string
	// ImpactScore is the computed impact in [0, 100].
	ImpactScore float64
	// Timestamp is an ISO-8601 (RFC 3339) date-time string.
	Timestamp string
}

// FindHabit holds filters for listing habits.
type FindHabit struct {
	ID       *int32
	UID      *string
	Category *string
	Limit    *int
}

// DeleteHabit identifies a habit to remove.
type DeleteHabit struct {
	ID int32
}

// ErrEmptyText is returned when a habit is created with empty or
// whitespace-only text.
var ErrEmptyText = errors.New("habit text cannot be empty")

// CreateHabit appends a habit to the store. The driver assigns the ID; the
// UID and timestamp are filled in here when the caller leaves them empty.
func (s *Store) CreateHabit(ctx context.Context, create *Habit) (*Habit, error) {
	if strings.TrimSpace(create.Text) == "" {
		return nil, ErrEmptyText
	}
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	if create.Timestamp == "" {
		create.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	habit, err := s.driver.CreateHabit(ctx, create)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create habit")
	}
	return habit, nil
}

// ListHabits returns habits in insertion order.
func (s *Store) ListHabits(ctx context.Context, find *FindHabit) ([]*Habit, error) {
	habits, err := s.driver.ListHabits(ctx, find)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}
	return habits, nil
}

// GetHabit returns a single habit or nil if not found.
func (s *Store) GetHabit(ctx context.Context, find *FindHabit) (*Habit, error) {
	habits, err := s.ListHabits(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return nil, nil
	}
	return habits[0], nil
}

// DeleteHabit removes a habit from the store.
func (s *Store) DeleteHabit(ctx context.Context, delete *DeleteHabit) error {
	return s.driver.DeleteHabit(ctx, delete)
}
