package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nextgen-academy/academy-api/internal/data/database"
	"github.com/nextgen-academy/academy-api/internal/data/pgxutil"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// AdmissionRepo provides database operations for admission submissions.
type AdmissionRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAdmissionRepo creates a new AdmissionRepo with real time provider.
func NewAdmissionRepo(db *sql.DB) *AdmissionRepo {
	return &AdmissionRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewAdmissionRepoWithTimeProvider creates a new AdmissionRepo with a custom time provider (useful for tests).
func NewAdmissionRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *AdmissionRepo {
	return &AdmissionRepo{DB: db, timeProvider: tp}
}

// Create inserts a new admission submission. New submissions always start pending.
func (r *AdmissionRepo) Create(ctx context.Context, req *model.CreateAdmissionRequest) (*model.Admission, error) {
	if req == nil {
		return nil, apperrors.Validation("create admission request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}

	var out model.Admission
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO admissions (
				full_name, father_name, course, cnic, email, contact_number,
				address, gender, qualification, age, profession, status, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING `+admissionColumns,
			strings.TrimSpace(req.FullName),
			strings.TrimSpace(req.FatherName),
			strings.TrimSpace(req.Course),
			req.CNIC,
			strings.ToLower(strings.TrimSpace(req.Email)),
			strings.TrimSpace(req.ContactNumber),
			strings.TrimSpace(req.Address),
			req.Gender,
			strings.TrimSpace(req.Qualification),
			req.Age,
			req.Profession,
			model.AdmissionStatusPending,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admission])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an admission by ID.
func (r *AdmissionRepo) GetByID(ctx context.Context, id string) (*model.Admission, error) {
	var out model.Admission
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+admissionColumns+` FROM admissions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admission])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("admission %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves admissions with optional filters, newest first.
func (r *AdmissionRepo) List(ctx context.Context, opts model.AdmissionsListOptions) ([]*model.Admission, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(strings.Split(admissionColumns, ", ")...),
		database.WithLimit(limit),
		database.WithOffset(offset),
		database.WithOrderBy("created_at", sortDirDesc),
	}
	if opts.Status != nil && strings.TrimSpace(*opts.Status) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, strings.TrimSpace(*opts.Status)),
		))
	}
	if opts.Course != nil && strings.TrimSpace(*opts.Course) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("course", database.Equal, strings.TrimSpace(*opts.Course)),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("admissions", queryOpts...))

	var rowsOut []model.Admission
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Admission])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list admissions: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Admission, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus sets the review status of a submission.
func (r *AdmissionRepo) UpdateStatus(ctx context.Context, id, status string) (*model.Admission, error) {
	if !model.ValidAdmissionStatus(status) {
		return nil, apperrors.Validationf("status must be one of: %s, %s, %s",
			model.AdmissionStatusPending, model.AdmissionStatusApproved, model.AdmissionStatusRejected)
	}

	var out model.Admission
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`UPDATE admissions SET status = $1 WHERE id = $2 RETURNING `+admissionColumns,
			status, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admission])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("admission %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes an admission by ID. Returns false when no row matched.
func (r *AdmissionRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM admissions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return rows > 0, nil
}

// Count returns the total number of admission submissions.
func (r *AdmissionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM admissions`).Scan(&count)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return count, nil
}

// CountByStatus returns the number of submissions with the given status.
func (r *AdmissionRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM admissions WHERE status = $1`, status).Scan(&count)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return count, nil
}

const admissionColumns = "id, full_name, father_name, course, cnic, email, contact_number, " +
	"address, gender, qualification, age, profession, status, created_at"
