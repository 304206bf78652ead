package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_watchlist/internal/feature/watchlist/domain/entity"
	"stock_watchlist/internal/feature/watchlist/usecase"
)

// symbolGorm stores the watchlist as one row of a key-value table.
type symbolGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure symbolGorm implements SymbolStore.
var _ usecase.SymbolStore = (*symbolGorm)(nil)

// NewSymbolGorm creates a new instance of symbolGorm.
func NewSymbolGorm(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// Load returns the stored symbols, or an empty list if the row does not exist.
func (r *symbolGorm) Load(ctx context.Context) ([]string, error) {
	var model KVModel
	if err := r.db.WithContext(ctx).Where("name = ?", entity.StorageKey).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return decodeSymbols([]byte(model.Value))
}

// Save inserts or replaces the row.
func (r *symbolGorm) Save(ctx context.Context, symbols []string) error {
	raw, err := encodeSymbols(symbols)
	if err != nil {
		return err
	}
	model := KVModel{Name: entity.StorageKey, Value: string(raw), UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&model).Error
}
