package postgres

import (
	"context"

	"github.com/tobin/character-vault/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type abilityScoreRepository struct {
	db *gorm.DB
}

func NewAbilityScoreRepository(db *gorm.DB) *abilityScoreRepository {
	return &abilityScoreRepository{db: db}
}

func (r *abilityScoreRepository) CreateMany(ctx context.Context, scores []domain.AbilityScore) error {
	if len(scores) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&scores).Error
}

func (r *abilityScoreRepository) GetByCharacterID(ctx context.Context, characterID uint) ([]domain.AbilityScore, error) {
	var scores []domain.AbilityScore
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("ability_id").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *abilityScoreRepository) DeleteByCharacterID(ctx context.Context, characterID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.AbilityScore{}, "character_id = ?", characterID).Error
}

type savingThrowRepository struct {
	db *gorm.DB
}

func NewSavingThrowRepository(db *gorm.DB) *savingThrowRepository {
	return &savingThrowRepository{db: db}
}

func (r *savingThrowRepository) CreateMany(ctx context.Context, proficiencies []domain.SavingThrowProficiency) error {
	if len(proficiencies) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&proficiencies).Error
}

func (r *savingThrowRepository) GetByCharacterID(ctx context.Context, characterID uint) ([]domain.SavingThrowProficiency, error) {
	var proficiencies []domain.SavingThrowProficiency
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("ability_id").
		Find(&proficiencies).Error
	if err != nil {
		return nil, err
	}
	return proficiencies, nil
}

func (r *savingThrowRepository) DeleteByCharacterID(ctx context.Context, characterID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.SavingThrowProficiency{}, "character_id = ?", characterID).Error
}

type skillProficiencyRepository struct {
	db *gorm.DB
}

func NewSkillProficiencyRepository(db *gorm.DB) *skillProficiencyRepository {
	return &skillProficiencyRepository{db: db}
}

// Upsert writes the proficiency level for a (character, skill) pair. The
// unique index on the pair makes upgrading proficiency to expertise (or
// back) a level change rather than a second row.
func (r *skillProficiencyRepository) Upsert(ctx context.Context, proficiency *domain.SkillProficiency) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "character_id"}, {Name: "skill_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"level"}),
		}).
		Create(proficiency).Error
}

func (r *skillProficiencyRepository) GetByCharacterID(ctx context.Context, characterID uint) ([]domain.SkillProficiency, error) {
	var proficiencies []domain.SkillProficiency
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("skill_id").
		Find(&proficiencies).Error
	if err != nil {
		return nil, err
	}
	return proficiencies, nil
}

func (r *skillProficiencyRepository) GetByCharacterIDAndSkillID(ctx context.Context, characterID, skillID uint) (*domain.SkillProficiency, error) {
	var proficiency domain.SkillProficiency
	err := r.db.WithContext(ctx).
		Where("character_id = ? AND skill_id = ?", characterID, skillID).
		First(&proficiency).Error
	if err != nil {
		return nil, err
	}
	return &proficiency, nil
}

func (r *skillProficiencyRepository) Delete(ctx context.Context, characterID, skillID uint) error {
	return r.db.WithContext(ctx).
		Delete(&domain.SkillProficiency{}, "character_id = ? AND skill_id = ?", characterID, skillID).Error
}

func (r *skillProficiencyRepository) DeleteByCharacterIDAndLevel(ctx context.Context, characterID uint, level domain.ProficiencyLevel) error {
	return r.db.WithContext(ctx).
		Delete(&domain.SkillProficiency{}, "character_id = ? AND level = ?", characterID, level).Error
}
