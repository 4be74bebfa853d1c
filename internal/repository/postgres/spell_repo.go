package postgres

import (
	"context"

	"github.com/tobin/character-vault/internal/domain"
	"gorm.io/gorm"
)

type spellRepository struct {
	db *gorm.DB
}

func NewSpellRepository(db *gorm.DB) *spellRepository {
	return &spellRepository{db: db}
}

func (r *spellRepository) Create(ctx context.Context, spell *domain.Spell) error {
	return r.db.WithContext(ctx).Create(spell).Error
}

func (r *spellRepository) GetVisibleByID(ctx context.Context, id, userID uint) (*domain.Spell, error) {
	var spell domain.Spell
	err := r.db.WithContext(ctx).
		Where("id = ? AND (owner_id IS NULL OR owner_id = ?)", id, userID).
		First(&spell).Error
	if err != nil {
		return nil, err
	}
	return &spell, nil
}

func (r *spellRepository) GetAllVisible(ctx context.Context, userID uint) ([]*domain.Spell, error) {
	var spells []*domain.Spell
	err := r.db.WithContext(ctx).
		Where("owner_id IS NULL OR owner_id = ?", userID).
		Order("level, name").
		Find(&spells).Error
	if err != nil {
		return nil, err
	}
	return spells, nil
}

type knownSpellRepository struct {
	db *gorm.DB
}

func NewKnownSpellRepository(db *gorm.DB) *knownSpellRepository {
	return &knownSpellRepository{db: db}
}

func (r *knownSpellRepository) Create(ctx context.Context, known *domain.KnownSpell) error {
	return r.db.WithContext(ctx).Create(known).Error
}

func (r *knownSpellRepository) GetByCharacterID(ctx context.Context, characterID uint) ([]domain.KnownSpell, error) {
	var known []domain.KnownSpell
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("spell_id").
		Find(&known).Error
	if err != nil {
		return nil, err
	}
	return known, nil
}

func (r *knownSpellRepository) Delete(ctx context.Context, characterID, spellID uint) error {
	return r.db.WithContext(ctx).
		Delete(&domain.KnownSpell{}, "character_id = ? AND spell_id = ?", characterID, spellID).Error
}

func (r *knownSpellRepository) DeleteByCharacterID(ctx context.Context, characterID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.KnownSpell{}, "character_id = ?", characterID).Error
}

func (r *knownSpellRepository) CountByCharacterID(ctx context.Context, characterID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.KnownSpell{}).
		Where("character_id = ?", characterID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
