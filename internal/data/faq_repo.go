package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nextgen-academy/academy-api/internal/data/pgxutil"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// FAQRepo provides database operations for FAQ entries.
type FAQRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewFAQRepo creates a new FAQRepo with real time provider.
func NewFAQRepo(db *sql.DB) *FAQRepo {
	return &FAQRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewFAQRepoWithTimeProvider creates a new FAQRepo with a custom time provider (useful for tests).
func NewFAQRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *FAQRepo {
	return &FAQRepo{DB: db, timeProvider: tp}
}

const faqColumns = "id, question, answer, display_order, created_at"

// Create inserts a new FAQ entry.
func (r *FAQRepo) Create(ctx context.Context, req *model.CreateFAQRequest) (*model.FAQ, error) {
	if req == nil {
		return nil, apperrors.Validation("create faq request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}

	var out model.FAQ
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO faqs (question, answer, display_order, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING `+faqColumns,
			strings.TrimSpace(req.Question),
			strings.TrimSpace(req.Answer),
			req.DisplayOrder,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FAQ])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an FAQ entry by ID.
func (r *FAQRepo) GetByID(ctx context.Context, id string) (*model.FAQ, error) {
	var out model.FAQ
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FAQ])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("faq %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves all FAQ entries ordered for display.
func (r *FAQRepo) List(ctx context.Context) ([]*model.FAQ, error) {
	var rowsOut []model.FAQ
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+faqColumns+` FROM faqs ORDER BY display_order ASC, created_at ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.FAQ])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.FAQ, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of an FAQ entry.
func (r *FAQRepo) Update(ctx context.Context, id string, req model.UpdateFAQRequest) (*model.FAQ, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}

	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	nextIdx := func() int { return len(args) + 1 }

	if req.Question != nil {
		setParts = append(setParts, fmt.Sprintf("question = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Question))
	}
	if req.Answer != nil {
		setParts = append(setParts, fmt.Sprintf("answer = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Answer))
	}
	if req.DisplayOrder != nil {
		setParts = append(setParts, fmt.Sprintf("display_order = $%d", nextIdx()))
		args = append(args, *req.DisplayOrder)
	}
	args = append(args, id)

	query := "UPDATE faqs SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + faqColumns

	var out model.FAQ
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FAQ])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("faq %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes an FAQ entry by ID. Returns false when no row matched.
func (r *FAQRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
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

// Count returns the total number of FAQ entries.
func (r *FAQRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return count, nil
}
