package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nextgen-academy/academy-api/internal/data/pgxutil"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// GalleryRepo provides database operations for gallery image records.
type GalleryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewGalleryRepo creates a new GalleryRepo with real time provider.
func NewGalleryRepo(db *sql.DB) *GalleryRepo {
	return &GalleryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewGalleryRepoWithTimeProvider creates a new GalleryRepo with a custom time provider (useful for tests).
func NewGalleryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *GalleryRepo {
	return &GalleryRepo{DB: db, timeProvider: tp}
}

const galleryColumns = "id, title, image_path, created_at"

// Create inserts a new gallery image record.
func (r *GalleryRepo) Create(ctx context.Context, req *model.CreateGalleryImageRequest) (*model.GalleryImage, error) {
	if req == nil {
		return nil, apperrors.Validation("create gallery image request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}

	var out model.GalleryImage
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO gallery_images (title, image_path, created_at)
			VALUES ($1, $2, $3)
			RETURNING `+galleryColumns,
			strings.TrimSpace(req.Title),
			req.ImagePath,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.GalleryImage])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a gallery image record by ID.
func (r *GalleryRepo) GetByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	var out model.GalleryImage
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.GalleryImage])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("gallery image %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves gallery images with pagination, newest first.
func (r *GalleryRepo) List(ctx context.Context, limit, offset int) ([]*model.GalleryImage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.GalleryImage
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+galleryColumns+` FROM gallery_images ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
			limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.GalleryImage])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.GalleryImage, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a gallery image record by ID. Returns false when no row matched.
func (r *GalleryRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
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

// Count returns the total number of gallery images.
func (r *GalleryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM gallery_images`).Scan(&count)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return count, nil
}
