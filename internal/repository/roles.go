package repository

import (
	"context"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func (r *Repository) GetAllRoles() ([]*domain.Role, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT code, display_name, is_builtin, created_at FROM roles ORDER BY is_builtin DESC, code
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]*domain.Role, 0)
	for rows.Next() {
		role := &domain.Role{}
		dst := []any{&role.Code, &role.DisplayName, &role.IsBuiltin, &role.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

func (r *Repository) CreateRole(role *domain.Role) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO roles (code, display_name, is_builtin)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	return r.dbpool.QueryRowContext(ctx, query, role.Code, role.DisplayName, role.IsBuiltin).Scan(&role.CreatedAt)
}

// EnsureBuiltinRoles inserts the built-in role codes if they are missing.
// Called at startup; already-present codes are left untouched.
func (r *Repository) EnsureBuiltinRoles(roles []domain.Role) error {
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
		INSERT INTO roles (code, display_name, is_builtin)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (code) DO NOTHING
	`
	for _, role := range roles {
		if _, err := tx.ExecContext(ctx, query, role.Code, role.DisplayName); err != nil {
			return err
		}
	}

	return tx.Commit()
}
