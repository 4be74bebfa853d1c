package postgres

import (
	"context"

	"github.com/tobin/character-vault/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *itemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByCharacterIDAndName(ctx context.Context, characterID uint, name string) (*domain.OwnedItem, error) {
	var item domain.OwnedItem
	err := r.db.WithContext(ctx).
		Where("character_id = ? AND name = ?", characterID, name).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetByCharacterID(ctx context.Context, characterID uint) ([]domain.OwnedItem, error) {
	var items []domain.OwnedItem
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("name").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Upsert(ctx context.Context, item *domain.OwnedItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "character_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"count"}),
		}).
		Create(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, characterID uint, name string) error {
	return r.db.WithContext(ctx).
		Delete(&domain.OwnedItem{}, "character_id = ? AND name = ?", characterID, name).Error
}

func (r *itemRepository) DeleteByCharacterID(ctx context.Context, characterID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.OwnedItem{}, "character_id = ?", characterID).Error
}
