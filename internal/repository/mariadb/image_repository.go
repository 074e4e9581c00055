package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/usecase/images"
	"github.com/afrovibz/product-images-go/internal/uuid"
)

type ImageRepository struct {
	db *sql.DB
}

// compile-time check: *ImageRepository must satisfy port.ImageRepository
var _ port.ImageRepository = (*ImageRepository)(nil)

func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, img *model.ProductImage) error {
	log.Printf("creating database record for image #%s of product %q...", img.ID, img.ProductID)

	const query = `
      INSERT INTO product_images
        (id, product_id, original_filename, renditions, metadata, stats, position)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		img.ID, img.ProductID, img.OriginalFilename,
		img.Renditions, img.Metadata, img.Stats,
		img.Position,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductImage, error) {
	log.Printf("fetching image #%s from the database...", id)

	const query = `
      SELECT id, product_id, original_filename, renditions, metadata, stats, position, verified_at, created_at, updated_at
      FROM product_images
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var img model.ProductImage
	if err := row.Scan(
		&img.ID, &img.ProductID, &img.OriginalFilename,
		&img.Renditions, &img.Metadata, &img.Stats,
		&img.Position, &img.VerifiedAt,
		&img.CreatedAt, &img.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &img, nil
}

func (r *ImageRepository) ListByProduct(ctx context.Context, productID string) ([]model.ProductImage, error) {
	log.Printf("listing images of product %q from the database...", productID)

	const query = `
      SELECT id, product_id, original_filename, renditions, metadata, stats, position, verified_at, created_at, updated_at
      FROM product_images
      WHERE product_id = ?
      ORDER BY position ASC
    `
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var imgs []model.ProductImage
	for rows.Next() {
		var img model.ProductImage
		if err := rows.Scan(
			&img.ID, &img.ProductID, &img.OriginalFilename,
			&img.Renditions, &img.Metadata, &img.Stats,
			&img.Position, &img.VerifiedAt,
			&img.CreatedAt, &img.UpdatedAt,
		); err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, rows.Err()
}

func (r *ImageRepository) MaxPosition(ctx context.Context, productID string) (int, error) {
	const query = `
      SELECT COALESCE(MAX(position), 0)
      FROM product_images
      WHERE product_id = ?
    `
	var max int
	if err := r.db.QueryRowContext(ctx, query, productID).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

// Reorder rewrites the positions of a product's collection in one
// transaction. The current identifier set is locked first and compared
// against the requested order; any missing or extra id rejects the call.
func (r *ImageRepository) Reorder(ctx context.Context, productID string, ids []uuid.UUID) error {
	log.Printf("reordering the %d image(s) of product %q...", len(ids), productID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const selectQuery = `
      SELECT id
      FROM product_images
      WHERE product_id = ?
      FOR UPDATE
    `
	rows, err := tx.QueryContext(ctx, selectQuery, productID)
	if err != nil {
		return err
	}
	existing := make(map[string]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return err
		}
		existing[id.String()] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	_ = rows.Close()

	if len(ids) != len(existing) {
		return fmt.Errorf("%w: got %d identifiers, product has %d", images.ErrInvalidOrderList, len(ids), len(existing))
	}
	for _, id := range ids {
		if _, ok := existing[id.String()]; !ok {
			return fmt.Errorf("%w: unknown identifier %s", images.ErrInvalidOrderList, id)
		}
	}

	const updateQuery = `
      UPDATE product_images
      SET position = ?
      WHERE id = ? AND product_id = ?
    `
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, updateQuery, i+1, id, productID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting database record for image #%s...", id)

	const query = `DELETE FROM product_images WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *ImageRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	const query = `
      UPDATE product_images
      SET verified_at = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	return err
}

func (r *ImageRepository) ListUnverifiedBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	const query = `
      SELECT id
      FROM product_images
      WHERE verified_at IS NULL AND created_at < ?
    `
	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
