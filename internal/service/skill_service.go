package service

import (
	"context"
	"errors"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository"
	"gorm.io/gorm"
)

// SkillService manages skill proficiency and expertise. A (character,
// skill) pair holds at most one level, so granting expertise displaces
// plain proficiency and vice versa.
type SkillService struct {
	skillProfRepo repository.SkillProficiencyRepository
	characterRepo repository.CharacterRepository
	lookupRepo    repository.LookupRepository
}

func NewSkillService(skillProfRepo repository.SkillProficiencyRepository, characterRepo repository.CharacterRepository, lookupRepo repository.LookupRepository) *SkillService {
	return &SkillService{
		skillProfRepo: skillProfRepo,
		characterRepo: characterRepo,
		lookupRepo:    lookupRepo,
	}
}

func (s *SkillService) AddProficiency(ctx context.Context, characterID, skillID uint) error {
	return s.setLevel(ctx, characterID, skillID, domain.Proficient)
}

func (s *SkillService) AddExpertise(ctx context.Context, characterID, skillID uint) error {
	return s.setLevel(ctx, characterID, skillID, domain.Expert)
}

// RemoveProficiency drops the pair only when it currently sits at plain
// proficiency; expertise stays untouched.
func (s *SkillService) RemoveProficiency(ctx context.Context, characterID, skillID uint) error {
	return s.removeLevel(ctx, characterID, skillID, domain.Proficient)
}

func (s *SkillService) RemoveExpertise(ctx context.Context, characterID, skillID uint) error {
	return s.removeLevel(ctx, characterID, skillID, domain.Expert)
}

// ListProficiencies returns the character's skill rows ascending by skill id.
func (s *SkillService) ListProficiencies(ctx context.Context, characterID uint) ([]domain.SkillProficiency, error) {
	return s.skillProfRepo.GetByCharacterID(ctx, characterID)
}

func (s *SkillService) setLevel(ctx context.Context, characterID, skillID uint, level domain.ProficiencyLevel) error {
	if err := s.check(ctx, characterID, skillID); err != nil {
		return err
	}
	return s.skillProfRepo.Upsert(ctx, &domain.SkillProficiency{
		CharacterID: characterID,
		SkillID:     skillID,
		Level:       level,
	})
}

func (s *SkillService) removeLevel(ctx context.Context, characterID, skillID uint, level domain.ProficiencyLevel) error {
	if err := s.check(ctx, characterID, skillID); err != nil {
		return err
	}
	existing, err := s.skillProfRepo.GetByCharacterIDAndSkillID(ctx, characterID, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSkillProficiencyMissing
		}
		return err
	}
	if existing.Level != level {
		return domain.ErrSkillProficiencyMissing
	}
	return s.skillProfRepo.Delete(ctx, characterID, skillID)
}

func (s *SkillService) check(ctx context.Context, characterID, skillID uint) error {
	if _, err := s.characterRepo.GetByID(ctx, characterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCharacterNotFound
		}
		return err
	}
	ok, err := s.lookupRepo.Exists(ctx, domain.SetSkills, int64(skillID))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrSkillNotFound
	}
	return nil
}
