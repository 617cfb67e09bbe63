package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventboard/internal/domain"
)

// eventColumns is the select list shared by all event reads: event fields,
// creator summary, and the live registration count.
const eventColumns = `
		e.id, e.title, e.description, e.date, e.location, e.image_url,
		e.max_participants, e.creator_id, e.created_at, e.updated_at,
		u.id, u.name, u.email,
		COUNT(r.id) AS registration_count`

const eventGroupBy = `GROUP BY e.id, u.id, u.name, u.email`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, location, image_url, max_participants, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.Location, e.ImageURL, e.MaxParticipants,
		e.CreatorID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func scanEvent(s interface{ Scan(dest ...any) error }) (*domain.Event, error) {
	e := &domain.Event{Creator: &domain.UserSummary{}}
	var imageNull sql.NullString
	var maxNull sql.NullInt64
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &imageNull,
		&maxNull, &e.CreatorID, &e.CreatedAt, &e.UpdatedAt,
		&e.Creator.ID, &e.Creator.Name, &e.Creator.Email,
		&e.RegistrationCount,
	)
	if err != nil {
		return nil, err
	}
	if imageNull.Valid {
		e.ImageURL = &imageNull.String
	}
	if maxNull.Valid {
		m := int(maxNull.Int64)
		e.MaxParticipants = &m
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.creator_id
		LEFT JOIN event_registrations r ON r.event_id = e.id
		WHERE e.id = $1
		` + eventGroupBy
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.creator_id
		LEFT JOIN event_registrations r ON r.event_id = e.id
		` + eventGroupBy + `
		ORDER BY e.date ASC`
	return r.list(ctx, query)
}

func (r *eventRepository) ListByCreatorID(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.creator_id
		LEFT JOIN event_registrations r ON r.event_id = e.id
		WHERE e.creator_id = $1
		` + eventGroupBy + `
		ORDER BY e.date ASC`
	return r.list(ctx, query, creatorID)
}

func (r *eventRepository) ListRegisteredByUserID(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.creator_id
		JOIN event_registrations mine ON mine.event_id = e.id AND mine.user_id = $1
		LEFT JOIN event_registrations r ON r.event_id = e.id
		` + eventGroupBy + `
		ORDER BY e.date ASC`
	return r.list(ctx, query, userID)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, date = $3, location = $4,
		    image_url = $5, max_participants = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Description, e.Date, e.Location, e.ImageURL, e.MaxParticipants,
		e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
