package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository/postgres"
	"github.com/tobin/character-vault/internal/service"
	"github.com/tobin/character-vault/internal/testutil"
)

func newCharacterService(testDB *testutil.TestDB) *service.CharacterService {
	repos := postgres.NewRepositories(testDB.DB)
	tx := postgres.NewTxRunner(testDB.DB)
	validator := service.NewCharacterValidator(repos.Lookup)
	return service.NewCharacterService(repos, tx, validator)
}

func characterInput(userID uint) service.CharacterInput {
	return service.CharacterInput{
		UserID:           userID,
		Name:             "Vex Brightblade",
		RaceID:           1,
		ClassID:          5,
		BackgroundID:     6,
		EthicsID:         1,
		MoralityID:       1,
		ProficiencyBonus: 2,
		MaxHitPoints:     12,
		CurrentHitPoints: 12,
		Level:            1,
		ArmorClass:       16,
		AbilityScores:    []int{15, 14, 13, 12, 10, 8},
		SavingThrows:     []uint{1, 3},
	}
}

func TestCharacterService_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	characterService := newCharacterService(testDB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("assigns sequential ids", func(t *testing.T) {
		first, err := characterService.Create(ctx, characterInput(user.ID))
		require.NoError(t, err)

		second, err := characterService.Create(ctx, characterInput(user.ID))
		require.NoError(t, err)

		assert.Equal(t, first+1, second)
	})

	t.Run("stores ability scores and saving throws", func(t *testing.T) {
		id, err := characterService.Create(ctx, characterInput(user.ID))
		require.NoError(t, err)

		sheet, err := characterService.Get(ctx, id)
		require.NoError(t, err)
		require.Len(t, sheet.AbilityScores, domain.AbilityCount)
		assert.Equal(t, 15, sheet.AbilityScores[0].Score)
		require.Len(t, sheet.SavingThrows, 2)
	})

	t.Run("invalid candidate writes nothing", func(t *testing.T) {
		input := characterInput(user.ID)
		input.Name = "1nvalid"
		input.RaceID = 999

		_, err := characterService.Create(ctx, input)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Fields, 2)

		before, listErr := characterService.List(ctx, user.ID)
		require.NoError(t, listErr)
		for _, c := range before {
			assert.NotEqual(t, "1nvalid", c.Name)
		}
	})
}

func TestCharacterService_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	characterService := newCharacterService(testDB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("replaces scalars and sub-records", func(t *testing.T) {
		id, err := characterService.Create(ctx, characterInput(user.ID))
		require.NoError(t, err)

		updated := characterInput(user.ID)
		updated.Name = "Renamed Hero"
		updated.Level = 3
		updated.AbilityScores = []int{10, 10, 10, 10, 10, 10}
		updated.SavingThrows = []uint{2}
		require.NoError(t, characterService.Update(ctx, id, updated))

		sheet, err := characterService.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Hero", sheet.Character.Name)
		assert.Equal(t, 3, sheet.Character.Level)
		require.Len(t, sheet.AbilityScores, domain.AbilityCount)
		assert.Equal(t, 10, sheet.AbilityScores[3].Score)
		require.Len(t, sheet.SavingThrows, 1)
		assert.Equal(t, uint(2), sheet.SavingThrows[0].AbilityID)
	})

	t.Run("update keeps set-once fields", func(t *testing.T) {
		id, err := characterService.Create(ctx, characterInput(user.ID))
		require.NoError(t, err)
		_, err = characterService.SetExperience(ctx, id, 900)
		require.NoError(t, err)
		_, err = characterService.SetSpeed(ctx, id, 30)
		require.NoError(t, err)

		require.NoError(t, characterService.Update(ctx, id, characterInput(user.ID)))

		sheet, err := characterService.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 900, sheet.Experience)
		require.NotNil(t, sheet.Character.Speed)
		assert.Equal(t, 30, *sheet.Character.Speed)
	})

	t.Run("missing character is not a validation failure", func(t *testing.T) {
		err := characterService.Update(ctx, 99999, characterInput(user.ID))
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

		var vErr *domain.ValidationError
		assert.NotErrorAs(t, err, &vErr)
	})
}

func TestCharacterService_Get(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	characterService := newCharacterService(testDB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("assembles the full sheet", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)
		spell := testutil.NewSpellBuilder().Build(t, testDB.DB)
		require.NoError(t, repos.KnownSpell.Create(ctx, &domain.KnownSpell{CharacterID: character.ID, SpellID: spell.ID}))
		require.NoError(t, repos.Item.Upsert(ctx, &domain.OwnedItem{CharacterID: character.ID, Name: "rope", Count: 1}))

		sheet, err := characterService.Get(ctx, character.ID)
		require.NoError(t, err)
		assert.Equal(t, character.Name, sheet.Character.Name)
		assert.NotEmpty(t, sheet.Race.Name)
		assert.NotEmpty(t, sheet.Class.Name)
		assert.NotEmpty(t, sheet.Background.Name)
		require.Len(t, sheet.Spells, 1)
		assert.Equal(t, spell.Name, sheet.Spells[0].Name)
		require.Len(t, sheet.Items, 1)
	})

	t.Run("unset experience reads as zero", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)

		sheet, err := characterService.Get(ctx, character.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, sheet.Experience)
	})

	t.Run("unknown id fails not-found", func(t *testing.T) {
		_, err := characterService.Get(ctx, 99999)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})
}

func TestCharacterService_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	characterService := newCharacterService(testDB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("removes the character and every sub-record", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)
		spell := testutil.NewSpellBuilder().Build(t, testDB.DB)
		require.NoError(t, repos.KnownSpell.Create(ctx, &domain.KnownSpell{CharacterID: character.ID, SpellID: spell.ID}))
		require.NoError(t, repos.Item.Upsert(ctx, &domain.OwnedItem{CharacterID: character.ID, Name: "rope", Count: 1}))
		require.NoError(t, repos.SkillProficiency.Upsert(ctx, &domain.SkillProficiency{CharacterID: character.ID, SkillID: 4, Level: domain.Proficient}))

		require.NoError(t, characterService.Delete(ctx, character.ID))

		_, err := characterService.Get(ctx, character.ID)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

		count, err := repos.KnownSpell.CountByCharacterID(ctx, character.ID)
		require.NoError(t, err)
		assert.Zero(t, count)

		items, err := repos.Item.GetByCharacterID(ctx, character.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("double delete fails not-found", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)
		require.NoError(t, characterService.Delete(ctx, character.ID))

		assert.ErrorIs(t, characterService.Delete(ctx, character.ID), domain.ErrCharacterNotFound)
	})
}

func TestCharacterService_Setters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	characterService := newCharacterService(testDB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("hit point deltas accumulate and may go negative", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)

		updated, err := characterService.AddHitPoints(ctx, character.ID, -5)
		require.NoError(t, err)
		assert.Equal(t, 7, updated.CurrentHitPoints)

		updated, err = characterService.AddHitPoints(ctx, character.ID, -10)
		require.NoError(t, err)
		assert.Equal(t, -3, updated.CurrentHitPoints)
	})

	t.Run("level up increments by one", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).WithLevel(4).Build(t, testDB.DB)

		updated, err := characterService.LevelUp(ctx, character.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Level)
	})

	t.Run("value setters overwrite", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)

		updated, err := characterService.SetArmorClass(ctx, character.ID, 18)
		require.NoError(t, err)
		assert.Equal(t, 18, updated.ArmorClass)

		updated, err = characterService.SetInitiative(ctx, character.ID, 3)
		require.NoError(t, err)
		require.NotNil(t, updated.Initiative)
		assert.Equal(t, 3, *updated.Initiative)
	})

	t.Run("setters on a missing character fail not-found", func(t *testing.T) {
		_, err := characterService.AddHitPoints(ctx, 99999, 1)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})

	t.Run("ability scores require the full set", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)

		err := characterService.SetAbilityScores(ctx, character.ID, []int{10, 10, 10})

		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("saving throws require known abilities", func(t *testing.T) {
		character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)

		err := characterService.SetSavingThrows(ctx, character.ID, []uint{1, 42})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)

		require.NoError(t, characterService.SetSavingThrows(ctx, character.ID, []uint{2, 4}))
		sheet, err := characterService.Get(ctx, character.ID)
		require.NoError(t, err)
		require.Len(t, sheet.SavingThrows, 2)
	})
}
