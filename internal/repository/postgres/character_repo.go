package postgres

import (
	"context"

	"github.com/tobin/character-vault/internal/domain"
	"gorm.io/gorm"
)

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *characterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) Create(ctx context.Context, character *domain.Character) error {
	return r.db.WithContext(ctx).Create(character).Error
}

func (r *characterRepository) GetByID(ctx context.Context, id uint) (*domain.Character, error) {
	var character domain.Character
	err := r.db.WithContext(ctx).First(&character, id).Error
	if err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *characterRepository) GetByIDAndUserID(ctx context.Context, id, userID uint) (*domain.Character, error) {
	var character domain.Character
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&character).Error
	if err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *characterRepository) GetByUserID(ctx context.Context, userID uint) ([]*domain.Character, error) {
	var characters []*domain.Character
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepository) Update(ctx context.Context, character *domain.Character) error {
	return r.db.WithContext(ctx).Save(character).Error
}

func (r *characterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Character{}, id).Error
}
