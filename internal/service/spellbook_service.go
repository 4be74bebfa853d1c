package service

import (
	"context"
	"errors"
	"time"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SpellbookService manages the known-spell join. Both mutations require
// that the character belongs to the acting user and that the spell is
// visible to that user; the join row is only touched after both checks
// pass.
type SpellbookService struct {
	knownSpellRepo repository.KnownSpellRepository
	spellRepo      repository.SpellRepository
	characterRepo  repository.CharacterRepository
}

func NewSpellbookService(knownSpellRepo repository.KnownSpellRepository, spellRepo repository.SpellRepository, characterRepo repository.CharacterRepository) *SpellbookService {
	return &SpellbookService{
		knownSpellRepo: knownSpellRepo,
		spellRepo:      spellRepo,
		characterRepo:  characterRepo,
	}
}

func (s *SpellbookService) AddKnownSpell(ctx context.Context, characterID, spellID, userID uint) error {
	if err := s.checkMembership(ctx, characterID, spellID, userID); err != nil {
		return err
	}
	return s.knownSpellRepo.Create(ctx, &domain.KnownSpell{
		CharacterID: characterID,
		SpellID:     spellID,
	})
}

func (s *SpellbookService) RemoveKnownSpell(ctx context.Context, characterID, spellID, userID uint) error {
	if err := s.checkMembership(ctx, characterID, spellID, userID); err != nil {
		return err
	}
	return s.knownSpellRepo.Delete(ctx, characterID, spellID)
}

// checkMembership verifies ownership first, then spell existence; the
// first unmet condition names the error.
func (s *SpellbookService) checkMembership(ctx context.Context, characterID, spellID, userID uint) error {
	if _, err := s.characterRepo.GetByIDAndUserID(ctx, characterID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotCharacterOwner
		}
		return err
	}
	if _, err := s.spellRepo.GetVisibleByID(ctx, spellID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSpellNotFound
		}
		return err
	}
	return nil
}

// ListSpells returns the public catalog plus the user's homebrew spells.
func (s *SpellbookService) ListSpells(ctx context.Context, userID uint) ([]*domain.Spell, error) {
	return s.spellRepo.GetAllVisible(ctx, userID)
}

type CreateSpellInput struct {
	Name        string
	Level       int
	School      string
	Tags        []byte
	Description string
}

// CreateSpell adds a homebrew spell owned by (and visible only to) the
// creating user.
func (s *SpellbookService) CreateSpell(ctx context.Context, userID uint, input CreateSpellInput) (*domain.Spell, error) {
	spell := &domain.Spell{
		OwnerID:     &userID,
		Name:        input.Name,
		Level:       input.Level,
		School:      input.School,
		Tags:        datatypes.JSON(input.Tags),
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.spellRepo.Create(ctx, spell); err != nil {
		return nil, err
	}
	return spell, nil
}
