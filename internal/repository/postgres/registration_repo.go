package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"eventboard/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts a registration while holding a row lock on the event. The
// lock serializes concurrent registrations for the same event, so the
// recount-then-insert cannot overbook. The UNIQUE(event_id, user_id)
// constraint backs the duplicate check.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxParticipants sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`,
		reg.EventID,
	).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if maxParticipants.Valid {
		var count int64
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`,
			reg.EventID,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("count registrations: %w", err)
		}
		if count >= maxParticipants.Int64 {
			return domain.ErrEventFull
		}
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO event_registrations (event_id, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, reg.EventID, reg.UserID, reg.CreatedAt).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `
		SELECT id, event_id, user_id, created_at
		FROM event_registrations
		WHERE event_id = $1 AND user_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).
		Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
