package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/service"
)

// fakeLookup answers membership from in-memory sets, mirroring the real
// repository's contract: ids below 1 are never members.
type fakeLookup struct {
	sets map[domain.ReferenceSet]map[int64]bool
	err  error
}

func (f *fakeLookup) Exists(_ context.Context, set domain.ReferenceSet, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if id < 1 {
		return false, nil
	}
	return f.sets[set][id], nil
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{sets: map[domain.ReferenceSet]map[int64]bool{
		domain.SetRaces:       {1: true},
		domain.SetClasses:     {1: true},
		domain.SetBackgrounds: {1: true},
		domain.SetEthics:      {1: true},
		domain.SetMoralities:  {1: true},
		domain.SetAbilities:   {1: true, 2: true, 3: true, 4: true, 5: true, 6: true},
		domain.SetSkills:      {1: true},
		domain.SetUsers:       {1: true},
	}}
}

func validInput() service.CharacterInput {
	return service.CharacterInput{
		UserID:           1,
		Name:             "Bram Stonefist",
		RaceID:           1,
		ClassID:          1,
		BackgroundID:     1,
		EthicsID:         1,
		MoralityID:       1,
		MaxHitPoints:     10,
		CurrentHitPoints: 10,
		Level:            1,
		AbilityScores:    []int{15, 14, 13, 12, 10, 8},
		SavingThrows:     []uint{1, 3},
	}
}

func TestCharacterValidator_Validate(t *testing.T) {
	validator := service.NewCharacterValidator(newFakeLookup())
	ctx := context.Background()

	t.Run("valid input passes", func(t *testing.T) {
		assert.NoError(t, validator.Validate(ctx, validInput()))
	})

	tests := []struct {
		name    string
		mutate  func(*service.CharacterInput)
		message string
	}{
		{
			name:    "numeric name",
			mutate:  func(in *service.CharacterInput) { in.Name = "Br4m" },
			message: "name",
		},
		{
			name:    "empty name",
			mutate:  func(in *service.CharacterInput) { in.Name = "   " },
			message: "name",
		},
		{
			name:    "unknown race",
			mutate:  func(in *service.CharacterInput) { in.RaceID = 99 },
			message: "race 99 does not exist",
		},
		{
			name:    "unknown class",
			mutate:  func(in *service.CharacterInput) { in.ClassID = 99 },
			message: "class 99 does not exist",
		},
		{
			name:    "unknown background",
			mutate:  func(in *service.CharacterInput) { in.BackgroundID = 99 },
			message: "background 99 does not exist",
		},
		{
			name:    "unknown ethics",
			mutate:  func(in *service.CharacterInput) { in.EthicsID = 99 },
			message: "ethics 99 does not exist",
		},
		{
			name:    "unknown morality",
			mutate:  func(in *service.CharacterInput) { in.MoralityID = 99 },
			message: "morality 99 does not exist",
		},
		{
			name:    "negative max hit points",
			mutate:  func(in *service.CharacterInput) { in.MaxHitPoints = -1 },
			message: "max hit points",
		},
		{
			name:    "level zero",
			mutate:  func(in *service.CharacterInput) { in.Level = 0 },
			message: "level",
		},
		{
			name:    "five ability scores",
			mutate:  func(in *service.CharacterInput) { in.AbilityScores = []int{1, 2, 3, 4, 5} },
			message: "ability scores",
		},
		{
			name:    "unknown saving throw ability",
			mutate:  func(in *service.CharacterInput) { in.SavingThrows = []uint{1, 42} },
			message: "ability 42 does not exist",
		},
		{
			name:    "unknown user",
			mutate:  func(in *service.CharacterInput) { in.UserID = 7 },
			message: "user 7 does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			err := validator.Validate(ctx, input)
			require.Error(t, err)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCharacterValidator_AggregatesAllFailures(t *testing.T) {
	validator := service.NewCharacterValidator(newFakeLookup())

	input := validInput()
	input.Name = "Br4m"
	input.RaceID = 99
	input.Level = 0
	input.AbilityScores = nil
	input.UserID = 7

	err := validator.Validate(context.Background(), input)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 5)

	// Messages keep check order: name, references, scalars, scores, user.
	msg := err.Error()
	nameIdx := strings.Index(msg, "name")
	raceIdx := strings.Index(msg, "race 99")
	levelIdx := strings.Index(msg, "level")
	scoresIdx := strings.Index(msg, "ability scores")
	userIdx := strings.Index(msg, "user 7")
	assert.True(t, nameIdx < raceIdx && raceIdx < levelIdx && levelIdx < scoresIdx && scoresIdx < userIdx)
}

func TestCharacterValidator_StoreFailureIsNotValidation(t *testing.T) {
	lookup := newFakeLookup()
	lookup.err = errors.New("connection refused")
	validator := service.NewCharacterValidator(lookup)

	err := validator.Validate(context.Background(), validInput())
	require.Error(t, err)

	var verr *domain.ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "connection refused")
}
