package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hr-portal/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultTimeout      = 5 * time.Second
	uniqueViolationCode = "23505"
)

type record struct {
	Collection string `gorm:"primaryKey;size:64"`
	ID         string `gorm:"primaryKey;size:64"`
	Doc        string `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (record) TableName() string {
	return "records"
}

// PGStore implements store.Client over a single jsonb-document table. Patch
// takes a row lock before merging, so concurrent status transitions serialize
// at the database instead of racing in application code.
type PGStore struct {
	db      *gorm.DB
	timeout time.Duration
}

func New(db *gorm.DB) *PGStore {
	return &PGStore{db: db, timeout: defaultTimeout}
}

// Migrate creates the records table.
func (s *PGStore) Migrate() error {
	return s.db.AutoMigrate(&record{})
}

func (s *PGStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rec record
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return decode(rec.Doc)
}

func (s *PGStore) List(ctx context.Context, collection string, filter store.Filter) ([]map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q := s.db.WithContext(ctx).Where("collection = ?", collection)
	for field, value := range filter {
		q = q.Where("doc ->> ? = ?", field, value)
	}

	var recs []record
	if err := q.Find(&recs).Error; err != nil {
		return nil, unavailable(err)
	}
	out := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		doc, err := decode(rec.Doc)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *PGStore) Create(ctx context.Context, collection, id string, doc map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Create(&record{
		Collection: collection,
		ID:         id,
		Doc:        string(raw),
	}).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return store.ErrConflict
		}
		return unavailable(err)
	}
	return nil
}

func (s *PGStore) Patch(ctx context.Context, collection, id string, partial map[string]any) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var merged map[string]any
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec record
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("collection = ? AND id = ?", collection, id).
			First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return unavailable(err)
		}

		doc, err := decode(rec.Doc)
		if err != nil {
			return err
		}
		merged = store.Merge(doc, partial)
		raw, err := json.Marshal(merged)
		if err != nil {
			return err
		}
		err = tx.Model(&record{}).
			Where("collection = ? AND id = ?", collection, id).
			Update("doc", string(raw)).Error
		if err != nil {
			return unavailable(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *PGStore) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&record{})
	if res.Error != nil {
		return unavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func decode(raw string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("corrupt record: %w", err)
	}
	return doc, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}
