package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/nextgen-academy/academy-api/internal/data/pgxutil"
	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// UserRoleRepo provides database operations for role assignments.
type UserRoleRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRoleRepo creates a new UserRoleRepo with real time provider.
func NewUserRoleRepo(db *sql.DB) *UserRoleRepo {
	return &UserRoleRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRoleRepoWithTimeProvider creates a new UserRoleRepo with a custom time provider (useful for tests).
func NewUserRoleRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRoleRepo {
	return &UserRoleRepo{DB: db, timeProvider: tp}
}

// QueryRole fetches the role assignment for a user with expect-single
// semantics. Zero rows is a NotFound error; more than one matching row means
// corrupt data and is reported as an Internal error, never as a grant.
func (r *UserRoleRepo) QueryRole(ctx context.Context, userID string, role domainauth.Role) (*model.RoleAssignment, error) {
	var rowsOut []model.RoleAssignment
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		// LIMIT 2 is enough to detect duplicates without scanning further.
		rows, err := conn.Query(ctx, `
			SELECT user_id, role, created_at
			FROM user_roles
			WHERE user_id = $1 AND role = $2
			LIMIT 2`,
			userID, string(role))
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RoleAssignment])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	switch len(rowsOut) {
	case 0:
		return nil, apperrors.NotFoundf("no %s role assignment for user", role)
	case 1:
		return &rowsOut[0], nil
	default:
		return nil, apperrors.Internalf("expected a single %s role assignment for user, found multiple", role)
	}
}

// Grant assigns a role to a user. Granting an already-held role is a no-op.
func (r *UserRoleRepo) Grant(ctx context.Context, userID string, role domainauth.Role) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO user_roles (user_id, role, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, role) DO NOTHING`,
			userID, string(role), r.timeProvider.Now().UTC())
		return execErr
	})
	return apperrors.MapDBError(err)
}

// Revoke removes a role assignment. Returns false when the user did not hold the role.
func (r *UserRoleRepo) Revoke(ctx context.Context, userID string, role domainauth.Role) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, execErr := conn.Exec(ctx,
			`DELETE FROM user_roles WHERE user_id = $1 AND role = $2`,
			userID, string(role))
		if execErr != nil {
			return execErr
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return rows > 0, nil
}

// ListByRole returns every assignment of the given role, oldest grant first.
func (r *UserRoleRepo) ListByRole(ctx context.Context, role domainauth.Role) ([]*model.RoleAssignment, error) {
	var rowsOut []model.RoleAssignment
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			SELECT user_id, role, created_at
			FROM user_roles
			WHERE role = $1
			ORDER BY created_at ASC`,
			string(role))
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		rowsOut, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.RoleAssignment])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.RoleAssignment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
