package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO shifts (name, location, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`
	args := []any{shift.Name, shift.Location, shift.StartTime, shift.EndTime}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	query = `
		INSERT INTO role_requirements (shift_id, role_code, required_count)
		VALUES ($1, $2, $3)
	`
	for _, req := range shift.Requirements {
		if _, err := tx.ExecContext(ctx, query, shift.ID, req.RoleCode, req.RequiredCount); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) GetShiftByID(id int64) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.name,
			s.location,
			s.start_time,
			s.end_time,
			s.created_at,
			s.version,
			rr.role_code,
			rr.required_count,
			t.id,
			t.status,
			t.created_at
		FROM shifts s
		LEFT JOIN role_requirements rr ON s.id = rr.shift_id
		LEFT JOIN timesheets t ON s.id = t.shift_id
		WHERE s.id = $1
		ORDER BY rr.role_code
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shift := &domain.Shift{
		ID:           id,
		Requirements: make([]domain.RoleRequirement, 0),
	}

	found := false
	for rows.Next() {
		var row struct {
			Name      string
			Location  string
			StartTime time.Time
			EndTime   time.Time
			CreatedAt time.Time
			Version   int32

			RoleCode      sql.NullString
			RequiredCount sql.NullInt32

			TimesheetID        sql.NullString
			TimesheetStatus    sql.NullString
			TimesheetCreatedAt sql.NullTime
		}

		dst := []any{
			&row.Name,
			&row.Location,
			&row.StartTime,
			&row.EndTime,
			&row.CreatedAt,
			&row.Version,
			&row.RoleCode,
			&row.RequiredCount,
			&row.TimesheetID,
			&row.TimesheetStatus,
			&row.TimesheetCreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			// first row carries the shift columns
			shift.Name = row.Name
			shift.Location = row.Location
			shift.StartTime = row.StartTime
			shift.EndTime = row.EndTime
			shift.CreatedAt = row.CreatedAt
			shift.Version = row.Version
			found = true
		}

		if shift.Timesheet == nil && row.TimesheetID.Valid {
			shift.Timesheet = &domain.Timesheet{
				ID:        row.TimesheetID.String,
				ShiftID:   id,
				Status:    domain.TimesheetStatus(row.TimesheetStatus.String),
				CreatedAt: row.TimesheetCreatedAt.Time,
			}
		}

		if !row.RoleCode.Valid {
			// shift without requirements
			continue
		}

		shift.Requirements = append(shift.Requirements, domain.RoleRequirement{
			RoleCode:      row.RoleCode.String,
			RequiredCount: row.RequiredCount.Int32,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return shift, nil
}

func (r *Repository) GetAllShifts() ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.id,
			s.name,
			s.location,
			s.start_time,
			s.end_time,
			s.created_at,
			s.version,
			rr.role_code,
			rr.required_count
		FROM shifts s
		LEFT JOIN role_requirements rr ON s.id = rr.shift_id
		ORDER BY s.start_time, s.id, rr.role_code
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shiftsMap := make(map[int64]*domain.Shift)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			Name      string
			Location  string
			StartTime time.Time
			EndTime   time.Time
			CreatedAt time.Time
			Version   int32

			RoleCode      sql.NullString
			RequiredCount sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.Name,
			&row.Location,
			&row.StartTime,
			&row.EndTime,
			&row.CreatedAt,
			&row.Version,
			&row.RoleCode,
			&row.RequiredCount,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		shift, exists := shiftsMap[row.ID]
		if !exists {
			shift = &domain.Shift{
				ID:           row.ID,
				Name:         row.Name,
				Location:     row.Location,
				StartTime:    row.StartTime,
				EndTime:      row.EndTime,
				CreatedAt:    row.CreatedAt,
				Version:      row.Version,
				Requirements: make([]domain.RoleRequirement, 0),
			}
			shiftsMap[row.ID] = shift
			order = append(order, row.ID)
		}

		if !row.RoleCode.Valid {
			continue
		}

		shift.Requirements = append(shift.Requirements, domain.RoleRequirement{
			RoleCode:      row.RoleCode.String,
			RequiredCount: row.RequiredCount.Int32,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	shifts := make([]*domain.Shift, 0, len(order))
	for _, id := range order {
		shifts = append(shifts, shiftsMap[id])
	}

	return shifts, nil
}

// ReplaceShiftRequirements swaps the requirement set wholesale inside one
// transaction. The version guard makes concurrent edits lose cleanly:
// sql.ErrNoRows means the shift moved on since it was read.
func (r *Repository) ReplaceShiftRequirements(shift *domain.Shift, reqs []domain.RoleRequirement) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE shifts
		SET version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`
	if err := tx.QueryRowContext(ctx, query, shift.ID, shift.Version).Scan(&shift.Version); err != nil {
		return err
	}

	query = `
		DELETE FROM role_requirements WHERE shift_id = $1
	`
	if _, err := tx.ExecContext(ctx, query, shift.ID); err != nil {
		return err
	}

	query = `
		INSERT INTO role_requirements (shift_id, role_code, required_count)
		VALUES ($1, $2, $3)
	`
	for _, req := range reqs {
		if _, err := tx.ExecContext(ctx, query, shift.ID, req.RoleCode, req.RequiredCount); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	shift.Requirements = reqs

	return nil
}
