package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository"
)

// CharacterValidator runs every check on a candidate character and
// reports all failures at once, so a submitter sees every problem with
// one submission instead of one at a time.
type CharacterValidator struct {
	lookupRepo repository.LookupRepository
}

func NewCharacterValidator(lookupRepo repository.LookupRepository) *CharacterValidator {
	return &CharacterValidator{lookupRepo: lookupRepo}
}

// Validate returns a *domain.ValidationError listing each failed check in
// check order, or a plain error when the store itself is unreachable.
func (v *CharacterValidator) Validate(ctx context.Context, input CharacterInput) error {
	verr := &domain.ValidationError{}

	if !validName(input.Name) {
		verr.Add("name", "name must consist of alphabetic words")
	}

	memberships := []struct {
		field string
		set   domain.ReferenceSet
		id    uint
	}{
		{"raceId", domain.SetRaces, input.RaceID},
		{"classId", domain.SetClasses, input.ClassID},
		{"backgroundId", domain.SetBackgrounds, input.BackgroundID},
		{"ethicsId", domain.SetEthics, input.EthicsID},
		{"moralityId", domain.SetMoralities, input.MoralityID},
	}
	for _, m := range memberships {
		ok, err := v.lookupRepo.Exists(ctx, m.set, int64(m.id))
		if err != nil {
			return fmt.Errorf("checking %s: %w", m.field, err)
		}
		if !ok {
			verr.Add(m.field, fmt.Sprintf("%s %d does not exist", strings.TrimSuffix(m.field, "Id"), m.id))
		}
	}

	if input.MaxHitPoints < 0 {
		verr.Add("maxHitPoints", "max hit points must not be negative")
	}
	if input.Level < 1 {
		verr.Add("level", "level must be at least 1")
	}
	if len(input.AbilityScores) != domain.AbilityCount {
		verr.Add("abilityScores", fmt.Sprintf("exactly %d ability scores are required", domain.AbilityCount))
	}

	for _, abilityID := range input.SavingThrows {
		ok, err := v.lookupRepo.Exists(ctx, domain.SetAbilities, int64(abilityID))
		if err != nil {
			return fmt.Errorf("checking saving throw: %w", err)
		}
		if !ok {
			verr.Add("savingThrows", fmt.Sprintf("ability %d does not exist", abilityID))
		}
	}

	ok, err := v.lookupRepo.Exists(ctx, domain.SetUsers, int64(input.UserID))
	if err != nil {
		return fmt.Errorf("checking user: %w", err)
	}
	if !ok {
		verr.Add("userId", fmt.Sprintf("user %d does not exist", input.UserID))
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// validName requires at least one whitespace-delimited word, each made of
// letters only.
func validName(name string) bool {
	words := strings.Fields(name)
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		for _, r := range word {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}
