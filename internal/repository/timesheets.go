package repository

import (
	"context"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func (r *Repository) CreateTimesheet(ts *domain.Timesheet) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO timesheets (id, shift_id, status)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	return r.dbpool.QueryRowContext(ctx, query, ts.ID, ts.ShiftID, ts.Status).Scan(&ts.CreatedAt)
}

func (r *Repository) GetTimesheetByShiftID(shiftID int64) (*domain.Timesheet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, status, created_at FROM timesheets WHERE shift_id = $1
	`

	ts := &domain.Timesheet{
		ShiftID: shiftID,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, shiftID).Scan(&ts.ID, &ts.Status, &ts.CreatedAt); err != nil {
		return nil, err
	}

	return ts, nil
}
