package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository"
	"gorm.io/gorm"
)

// CharacterService orchestrates the character aggregate: the character
// row plus ability scores, saving throws, skill proficiencies, inventory
// and known spells. Multi-record writes run inside one transaction so a
// failed step never leaves the aggregate half-written.
type CharacterService struct {
	repos     *repository.Repositories
	tx        repository.TxRunner
	validator *CharacterValidator
}

func NewCharacterService(repos *repository.Repositories, tx repository.TxRunner, validator *CharacterValidator) *CharacterService {
	return &CharacterService{
		repos:     repos,
		tx:        tx,
		validator: validator,
	}
}

// CharacterInput is the full scalar field set plus the ability-score
// array (fixed order strength through charisma) and the saving-throw
// ability ids.
type CharacterInput struct {
	UserID           uint
	Name             string
	RaceID           uint
	ClassID          uint
	BackgroundID     uint
	EthicsID         uint
	MoralityID       uint
	ProficiencyBonus int
	MaxHitPoints     int
	CurrentHitPoints int
	Level            int
	ArmorClass       int
	AbilityScores    []int
	SavingThrows     []uint
}

// Create validates the candidate, then writes the character row, its
// saving-throw proficiencies and its ability scores in one transaction.
// Returns the assigned id.
func (s *CharacterService) Create(ctx context.Context, input CharacterInput) (uint, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return 0, err
	}

	character := &domain.Character{
		UserID:           input.UserID,
		RaceID:           input.RaceID,
		ClassID:          input.ClassID,
		BackgroundID:     input.BackgroundID,
		EthicsID:         input.EthicsID,
		MoralityID:       input.MoralityID,
		Name:             input.Name,
		ProficiencyBonus: input.ProficiencyBonus,
		MaxHitPoints:     input.MaxHitPoints,
		CurrentHitPoints: input.CurrentHitPoints,
		Level:            input.Level,
		ArmorClass:       input.ArmorClass,
	}

	err := s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		if err := repos.Character.Create(ctx, character); err != nil {
			return err
		}
		if err := repos.SavingThrow.CreateMany(ctx, savingThrowRows(character.ID, input.SavingThrows)); err != nil {
			return err
		}
		return repos.AbilityScore.CreateMany(ctx, abilityScoreRows(character.ID, input.AbilityScores))
	})
	if err != nil {
		return 0, err
	}

	return character.ID, nil
}

// Update replaces every scalar field of the main form plus the
// saving-throw set and the ability-score set wholesale. Speed, initiative
// and experience have their own setters and are left untouched.
func (s *CharacterService) Update(ctx context.Context, id uint, input CharacterInput) error {
	character, err := s.repos.Character.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCharacterNotFound
		}
		return err
	}

	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	character.Name = input.Name
	character.RaceID = input.RaceID
	character.ClassID = input.ClassID
	character.BackgroundID = input.BackgroundID
	character.EthicsID = input.EthicsID
	character.MoralityID = input.MoralityID
	character.ProficiencyBonus = input.ProficiencyBonus
	character.MaxHitPoints = input.MaxHitPoints
	character.CurrentHitPoints = input.CurrentHitPoints
	character.Level = input.Level
	character.ArmorClass = input.ArmorClass

	return s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		if err := repos.Character.Update(ctx, character); err != nil {
			return err
		}
		if err := repos.SavingThrow.DeleteByCharacterID(ctx, id); err != nil {
			return err
		}
		if err := repos.SavingThrow.CreateMany(ctx, savingThrowRows(id, input.SavingThrows)); err != nil {
			return err
		}
		if err := repos.AbilityScore.DeleteByCharacterID(ctx, id); err != nil {
			return err
		}
		return repos.AbilityScore.CreateMany(ctx, abilityScoreRows(id, input.AbilityScores))
	})
}

// Get assembles the full sheet: scalars, sub-records, resolved reference
// details, and the known spells looked up one by one with the owner's
// visibility. A missing experience value reads as 0.
func (s *CharacterService) Get(ctx context.Context, id uint) (*domain.CharacterSheet, error) {
	character, err := s.repos.Character.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, err
	}

	savingThrows, err := s.repos.SavingThrow.GetByCharacterID(ctx, id)
	if err != nil {
		return nil, err
	}
	abilityScores, err := s.repos.AbilityScore.GetByCharacterID(ctx, id)
	if err != nil {
		return nil, err
	}
	skillProficiencies, err := s.repos.SkillProficiency.GetByCharacterID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repos.Item.GetByCharacterID(ctx, id)
	if err != nil {
		return nil, err
	}

	race, err := s.repos.Reference.GetRaceByID(ctx, character.RaceID)
	if err != nil {
		return nil, fmt.Errorf("resolving race: %w", err)
	}
	class, err := s.repos.Reference.GetClassByID(ctx, character.ClassID)
	if err != nil {
		return nil, fmt.Errorf("resolving class: %w", err)
	}
	background, err := s.repos.Reference.GetBackgroundByID(ctx, character.BackgroundID)
	if err != nil {
		return nil, fmt.Errorf("resolving background: %w", err)
	}

	known, err := s.repos.KnownSpell.GetByCharacterID(ctx, id)
	if err != nil {
		return nil, err
	}
	spells := make([]*domain.Spell, 0, len(known))
	for _, k := range known {
		spell, err := s.repos.Spell.GetVisibleByID(ctx, k.SpellID, character.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		spells = append(spells, spell)
	}

	experience := 0
	if character.Experience != nil {
		experience = *character.Experience
	}

	return &domain.CharacterSheet{
		Character:          *character,
		Race:               race,
		Class:              class,
		Background:         background,
		AbilityScores:      abilityScores,
		SavingThrows:       savingThrows,
		SkillProficiencies: skillProficiencies,
		Items:              items,
		Spells:             spells,
		Experience:         experience,
	}, nil
}

// List returns the user's characters for the picker page.
func (s *CharacterService) List(ctx context.Context, userID uint) ([]*domain.Character, error) {
	return s.repos.Character.GetByUserID(ctx, userID)
}

// Delete removes every dependent sub-record before the character row
// itself, in reference-integrity order: owned items, known spells,
// saving throws, skill expertise, ability scores, skill proficiencies.
func (s *CharacterService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repos.Character.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCharacterNotFound
		}
		return err
	}

	return s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		if err := repos.Item.DeleteByCharacterID(ctx, id); err != nil {
			return err
		}
		if err := repos.KnownSpell.DeleteByCharacterID(ctx, id); err != nil {
			return err
		}
		if err := repos.SavingThrow.DeleteByCharacterID(ctx, id); err != nil {
			return err
		}
		if err := repos.SkillProficiency.DeleteByCharacterIDAndLevel(ctx, id, domain.Expert); err != nil {
			return err
		}
		if err := repos.AbilityScore.DeleteByCharacterID(ctx, id); err != nil {
			return err
		}
		if err := repos.SkillProficiency.DeleteByCharacterIDAndLevel(ctx, id, domain.Proficient); err != nil {
			return err
		}
		return repos.Character.Delete(ctx, id)
	})
}

// AddHitPoints applies a delta to current hit points. The result may go
// negative; dropping below zero is the caller's business, not ours.
func (s *CharacterService) AddHitPoints(ctx context.Context, id uint, delta int) (*domain.Character, error) {
	return s.mutate(ctx, id, func(c *domain.Character) {
		c.CurrentHitPoints += delta
	})
}

// LevelUp increments the level by exactly one.
func (s *CharacterService) LevelUp(ctx context.Context, id uint) (*domain.Character, error) {
	return s.mutate(ctx, id, func(c *domain.Character) {
		c.Level++
	})
}

// SetExperience replaces the experience total.
func (s *CharacterService) SetExperience(ctx context.Context, id uint, experience int) (*domain.Character, error) {
	return s.mutate(ctx, id, func(c *domain.Character) {
		c.Experience = &experience
	})
}

func (s *CharacterService) SetArmorClass(ctx context.Context, id uint, armorClass int) (*domain.Character, error) {
	return s.mutate(ctx, id, func(c *domain.Character) {
		c.ArmorClass = armorClass
	})
}

func (s *CharacterService) SetSpeed(ctx context.Context, id uint, speed int) (*domain.Character, error) {
	return s.mutate(ctx, id, func(c *domain.Character) {
		c.Speed = &speed
	})
}

func (s *CharacterService) SetInitiative(ctx context.Context, id uint, initiative int) (*domain.Character, error) {
	return s.mutate(ctx, id, func(c *domain.Character) {
		c.Initiative = &initiative
	})
}

// SetAbilityScores replaces the whole six-score set.
func (s *CharacterService) SetAbilityScores(ctx context.Context, id uint, scores []int) error {
	if len(scores) != domain.AbilityCount {
		verr := &domain.ValidationError{}
		verr.Add("abilityScores", fmt.Sprintf("exactly %d ability scores are required", domain.AbilityCount))
		return verr
	}
	if _, err := s.repos.Character.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCharacterNotFound
		}
		return err
	}

	return s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		if err := repos.AbilityScore.DeleteByCharacterID(ctx, id); err != nil {
			return err
		}
		return repos.AbilityScore.CreateMany(ctx, abilityScoreRows(id, scores))
	})
}

// SetSavingThrows replaces the saving-throw proficiency set. Every id
// must be a valid ability.
func (s *CharacterService) SetSavingThrows(ctx context.Context, id uint, abilityIDs []uint) error {
	if _, err := s.repos.Character.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCharacterNotFound
		}
		return err
	}

	verr := &domain.ValidationError{}
	for _, abilityID := range abilityIDs {
		ok, err := s.repos.Lookup.Exists(ctx, domain.SetAbilities, int64(abilityID))
		if err != nil {
			return fmt.Errorf("checking saving throw: %w", err)
		}
		if !ok {
			verr.Add("savingThrows", fmt.Sprintf("ability %d does not exist", abilityID))
		}
	}
	if verr.HasErrors() {
		return verr
	}

	return s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		if err := repos.SavingThrow.DeleteByCharacterID(ctx, id); err != nil {
			return err
		}
		return repos.SavingThrow.CreateMany(ctx, savingThrowRows(id, abilityIDs))
	})
}

func (s *CharacterService) mutate(ctx context.Context, id uint, apply func(*domain.Character)) (*domain.Character, error) {
	character, err := s.repos.Character.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, err
	}

	apply(character)

	if err := s.repos.Character.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func savingThrowRows(characterID uint, abilityIDs []uint) []domain.SavingThrowProficiency {
	rows := make([]domain.SavingThrowProficiency, 0, len(abilityIDs))
	for _, abilityID := range abilityIDs {
		rows = append(rows, domain.SavingThrowProficiency{CharacterID: characterID, AbilityID: abilityID})
	}
	return rows
}

func abilityScoreRows(characterID uint, scores []int) []domain.AbilityScore {
	rows := make([]domain.AbilityScore, 0, len(scores))
	for i, score := range scores {
		rows = append(rows, domain.AbilityScore{
			CharacterID: characterID,
			AbilityID:   uint(i + 1),
			Score:       score,
		})
	}
	return rows
}
