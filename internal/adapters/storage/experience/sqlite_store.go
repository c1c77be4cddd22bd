package experience

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"experiencebuddy/internal/adapters/storage"
	domain "experiencebuddy/internal/domain/experience"
)

// SQLiteStore implements Store using SQLite. Selected when a database path is
// configured; the listing order (most-recent-first) maps head insertion onto
// descending rowid.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
// PRE: db is a valid, open database connection with the schema applied
// POST: store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Insert persists a new experience together with any attendee rows.
// PRE: e passed domain validation; e.ID is unique across the store
// POST: e is the first record returned by List
func (s *SQLiteStore) Insert(ctx context.Context, e domain.Experience) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO experience (id, title, description, date, time, location, category, image_url, creator_id, creator_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, e.Date.UTC().Format(time.RFC3339), e.Time,
		e.Location, e.Category, e.ImageURL, e.CreatorID, e.CreatorName,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	for _, userID := range e.Attendees {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO experience_attendee (experience_id, user_id, created_at) VALUES (?, ?, ?)`,
			e.ID, userID, time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetByID retrieves an experience and its attendee list.
// PRE: id is non-empty
// POST: returns the record or ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Experience, error) {
	var e domain.Experience
	var dateStr, createdStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, date, time, location, category, image_url, creator_id, creator_name, created_at
		 FROM experience WHERE id = ?`, id,
	).Scan(&e.ID, &e.Title, &e.Description, &dateStr, &e.Time, &e.Location,
		&e.Category, &e.ImageURL, &e.CreatorID, &e.CreatorName, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Experience{}, ErrNotFound
	}
	if err != nil {
		return domain.Experience{}, err
	}
	e.Date = parseTimestamp(dateStr)
	e.CreatedAt = parseTimestamp(createdStr)
	if e.Attendees, err = s.attendees(ctx, e.ID); err != nil {
		return domain.Experience{}, err
	}
	return e, nil
}

// List returns all experiences matching f, most-recent-first.
// Filtering happens in Go via Filter.Matches so both backends share identical
// match semantics.
func (s *SQLiteStore) List(ctx context.Context, f Filter) ([]domain.Experience, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, date, time, location, category, image_url, creator_id, creator_name, created_at
		 FROM experience ORDER BY rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Experience
	for rows.Next() {
		var e domain.Experience
		var dateStr, createdStr string
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &dateStr, &e.Time,
			&e.Location, &e.Category, &e.ImageURL, &e.CreatorID, &e.CreatorName, &createdStr); err != nil {
			return nil, err
		}
		e.Date = parseTimestamp(dateStr)
		e.CreatedAt = parseTimestamp(createdStr)
		if !f.Matches(e) {
			continue
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Attendees, err = s.attendees(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// AddAttendee appends userID to the record's attendee list inside a
// transaction, so concurrent calls for the same record cannot lose an update.
// PRE: experienceID and userID are non-empty
// POST: userID is in the attendee list unless it is the creator; idempotent;
// returns ErrNotFound only when the record is absent
func (s *SQLiteStore) AddAttendee(ctx context.Context, experienceID, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var creatorID string
	err = tx.QueryRowContext(ctx,
		`SELECT creator_id FROM experience WHERE id = ?`, experienceID,
	).Scan(&creatorID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if creatorID == userID {
		// Desired state already holds: user is associated with the record.
		return tx.Commit()
	}

	// Primary key (experience_id, user_id) makes the insert idempotent.
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO experience_attendee (experience_id, user_id, created_at) VALUES (?, ?, ?)`,
		experienceID, userID, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}
	return tx.Commit()
}

// Count returns the number of stored experiences.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM experience`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) attendees(ctx context.Context, experienceID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id FROM experience_attendee WHERE experience_id = ? ORDER BY rowid ASC`, experienceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendees []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		attendees = append(attendees, userID)
	}
	return attendees, rows.Err()
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
