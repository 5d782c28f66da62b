package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/giftlist"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ giftlist.GiftService = (*GiftService)(nil)

const giftColumns = `id, position, name, price, purchase_url, image_url, query, comment, created_at, updated_at`

// GiftService implements giftlist.GiftService using SQLite.
// Positions are 1-based and kept contiguous.
type GiftService struct {
	db *DB
}

// NewGiftService creates a new GiftService.
func NewGiftService(db *DB) *GiftService {
	return &GiftService{db: db}
}

// CreateGift appends gift to the end of the list, assigning its ID,
// position and timestamps.
func (s *GiftService) CreateGift(ctx context.Context, gift *giftlist.Gift) error {
	if err := gift.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var last int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) FROM gifts`).Scan(&last); err != nil {
		return err
	}

	gift.ID = uuid.New().String()
	gift.Position = last + 1
	now := time.Now().UTC().Truncate(time.Second)
	gift.CreatedAt = now
	gift.UpdatedAt = now

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO gifts (`+giftColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, gift.ID, gift.Position, gift.Name, gift.Price, gift.PurchaseURL, gift.ImageURL, gift.Query, gift.Comment,
		gift.CreatedAt.Format(time.RFC3339), gift.UpdatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

// FindGiftByID retrieves a gift by ID.
func (s *GiftService) FindGiftByID(ctx context.Context, id string) (*giftlist.Gift, error) {
	return s.findOne(ctx, `SELECT `+giftColumns+` FROM gifts WHERE id = ?`, id)
}

// FindGiftByPosition retrieves the gift at a 1-based position.
func (s *GiftService) FindGiftByPosition(ctx context.Context, position int) (*giftlist.Gift, error) {
	if position < 1 {
		return nil, giftlist.Errorf(giftlist.EINVALID, "position must be at least 1")
	}
	return s.findOne(ctx, `SELECT `+giftColumns+` FROM gifts WHERE position = ?`, position)
}

func (s *GiftService) findOne(ctx context.Context, query string, arg any) (*giftlist.Gift, error) {
	gift, err := scanGift(s.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, giftlist.Errorf(giftlist.ENOTFOUND, "gift not found")
	}
	if err != nil {
		return nil, err
	}
	return gift, nil
}

// FindGifts retrieves gifts matching the filter ordered by position.
func (s *GiftService) FindGifts(ctx context.Context, filter giftlist.GiftFilter) ([]*giftlist.Gift, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + giftColumns + ` FROM gifts WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Query != nil {
		query.WriteString(" AND query = ?")
		args = append(args, *filter.Query)
	}

	query.WriteString(" ORDER BY position")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gifts := []*giftlist.Gift{}
	for rows.Next() {
		gift, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, gift)
	}

	return gifts, rows.Err()
}

// UpdateGift applies the non-nil fields of upd to the gift.
func (s *GiftService) UpdateGift(ctx context.Context, id string, upd giftlist.GiftUpdate) (*giftlist.Gift, error) {
	gift, err := s.FindGiftByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		gift.Name = *upd.Name
	}
	if upd.Price != nil {
		gift.Price = *upd.Price
	}
	if upd.PurchaseURL != nil {
		gift.PurchaseURL = *upd.PurchaseURL
	}
	if upd.ImageURL != nil {
		gift.ImageURL = *upd.ImageURL
	}
	if upd.Query != nil {
		gift.Query = *upd.Query
	}
	if upd.Comment != nil {
		gift.Comment = *upd.Comment
	}

	if err := gift.Validate(); err != nil {
		return nil, err
	}

	gift.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE gifts
		SET name = ?, price = ?, purchase_url = ?, image_url = ?, query = ?, comment = ?, updated_at = ?
		WHERE id = ?
	`, gift.Name, gift.Price, gift.PurchaseURL, gift.ImageURL, gift.Query, gift.Comment,
		gift.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return gift, nil
}

// DeleteGift removes a gift and shifts the following gifts up by one.
func (s *GiftService) DeleteGift(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRowContext(ctx, `SELECT position FROM gifts WHERE id = ?`, id).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		return giftlist.Errorf(giftlist.ENOTFOUND, "gift not found")
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM gifts WHERE id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE gifts SET position = position - 1 WHERE position > ?`, position); err != nil {
		return err
	}

	return tx.Commit()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGift(row scanner) (*giftlist.Gift, error) {
	var gift giftlist.Gift
	var createdAt, updatedAt string

	if err := row.Scan(&gift.ID, &gift.Position, &gift.Name, &gift.Price, &gift.PurchaseURL, &gift.ImageURL,
		&gift.Query, &gift.Comment, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if gift.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if gift.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &gift, nil
}
