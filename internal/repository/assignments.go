package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func (r *Repository) CreateAssignment(a *domain.Assignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO assignments (shift_id, user_id, role_code, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	args := []any{a.ShiftID, a.UserID, a.RoleCode, a.Status}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.Version)
}

func scanAssignmentRows(rows *sql.Rows) ([]*domain.Assignment, error) {
	assignmentsMap := make(map[int64]*domain.Assignment)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			ShiftID   int64
			UserID    int64
			RoleCode  string
			Status    string
			CreatedAt time.Time
			Version   int32

			EntryID    sql.NullInt64
			ClockIn    sql.NullTime
			ClockOut   sql.NullTime
			BreakStart sql.NullTime
			BreakEnd   sql.NullTime
		}

		dst := []any{
			&row.ID,
			&row.ShiftID,
			&row.UserID,
			&row.RoleCode,
			&row.Status,
			&row.CreatedAt,
			&row.Version,
			&row.EntryID,
			&row.ClockIn,
			&row.ClockOut,
			&row.BreakStart,
			&row.BreakEnd,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		a, exists := assignmentsMap[row.ID]
		if !exists {
			a = &domain.Assignment{
				ID:          row.ID,
				ShiftID:     row.ShiftID,
				UserID:      row.UserID,
				RoleCode:    row.RoleCode,
				Status:      domain.AssignmentStatus(row.Status),
				CreatedAt:   row.CreatedAt,
				Version:     row.Version,
				TimeEntries: make([]domain.TimeEntry, 0),
			}
			assignmentsMap[row.ID] = a
			order = append(order, row.ID)
		}

		if !row.EntryID.Valid {
			// no time logged yet
			continue
		}

		entry := domain.TimeEntry{
			ID:      row.EntryID.Int64,
			ClockIn: row.ClockIn.Time,
		}
		if row.ClockOut.Valid {
			out := row.ClockOut.Time
			entry.ClockOut = &out
		}
		if row.BreakStart.Valid {
			bs := row.BreakStart.Time
			entry.BreakStart = &bs
		}
		if row.BreakEnd.Valid {
			be := row.BreakEnd.Time
			entry.BreakEnd = &be
		}
		a.TimeEntries = append(a.TimeEntries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	assignments := make([]*domain.Assignment, 0, len(order))
	for _, id := range order {
		assignments = append(assignments, assignmentsMap[id])
	}

	return assignments, nil
}

const assignmentColumns = `
	a.id,
	a.shift_id,
	a.user_id,
	a.role_code,
	a.status,
	a.created_at,
	a.version,
	te.id,
	te.clock_in,
	te.clock_out,
	te.break_start,
	te.break_end
`

func (r *Repository) GetAssignmentByID(id int64) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments a
		LEFT JOIN time_entries te ON a.id = te.assignment_id
		WHERE a.id = $1
		ORDER BY te.clock_in
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments, err := scanAssignmentRows(rows)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, sql.ErrNoRows
	}

	return assignments[0], nil
}

func (r *Repository) GetAssignmentsByShiftID(shiftID int64) ([]*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments a
		LEFT JOIN time_entries te ON a.id = te.assignment_id
		WHERE a.shift_id = $1
		ORDER BY a.id, te.clock_in
	`

	rows, err := r.dbpool.QueryContext(ctx, query, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignmentRows(rows)
}

// SaveAssignmentState persists the outcome of a lifecycle transition:
// the status (version-guarded) plus any time entries the transition
// opened or closed. Entries with a zero ID are inserted, the rest have
// only their closing fields updated, so closed segments stay immutable.
// sql.ErrNoRows means another writer got there first.
func (r *Repository) SaveAssignmentState(a *domain.Assignment) error {
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
		UPDATE assignments
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`
	if err := tx.QueryRowContext(ctx, query, a.Status, a.ID, a.Version).Scan(&a.Version); err != nil {
		return err
	}

	for i := range a.TimeEntries {
		entry := &a.TimeEntries[i]
		if entry.ID == 0 {
			query = `
				INSERT INTO time_entries (assignment_id, clock_in, clock_out, break_start, break_end)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`
			params := []any{a.ID, entry.ClockIn, entry.ClockOut, entry.BreakStart, entry.BreakEnd}
			if err := tx.QueryRowContext(ctx, query, params...).Scan(&entry.ID); err != nil {
				return err
			}
			continue
		}

		query = `
			UPDATE time_entries
			SET clock_out = $1, break_start = $2, break_end = $3
			WHERE id = $4
		`
		params := []any{entry.ClockOut, entry.BreakStart, entry.BreakEnd, entry.ID}
		if _, err := tx.ExecContext(ctx, query, params...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteAssignment removes an assignment and its time entries. The
// version guard turns a concurrent mutation into sql.ErrNoRows.
func (r *Repository) DeleteAssignment(a *domain.Assignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM assignments WHERE id = $1 AND version = $2
	`

	res, err := r.dbpool.ExecContext(ctx, query, a.ID, a.Version)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ReplaceAssignment supersedes old with a fresh assignment in the same
// slot, atomically: the outgoing row is deleted and the replacement
// inserted in one transaction.
func (r *Repository) ReplaceAssignment(old *domain.Assignment, replacement *domain.Assignment) error {
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
		DELETE FROM assignments WHERE id = $1 AND version = $2
	`
	res, err := tx.ExecContext(ctx, query, old.ID, old.Version)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	query = `
		INSERT INTO assignments (shift_id, user_id, role_code, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`
	args := []any{replacement.ShiftID, replacement.UserID, replacement.RoleCode, replacement.Status}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&replacement.ID, &replacement.CreatedAt, &replacement.Version); err != nil {
		return err
	}

	return tx.Commit()
}
