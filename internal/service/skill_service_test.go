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

func TestSkillService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	skillService := service.NewSkillService(repos.SkillProficiency, repos.Character, repos.Lookup)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	character := testutil.NewCharacterBuilder(user.ID).Build(t, testDB.DB)

	const stealth = uint(4)

	levelOf := func(t *testing.T, skillID uint) domain.ProficiencyLevel {
		t.Helper()
		rows, err := skillService.ListProficiencies(ctx, character.ID)
		require.NoError(t, err)
		for _, row := range rows {
			if row.SkillID == skillID {
				return row.Level
			}
		}
		t.Fatalf("skill %d has no proficiency row", skillID)
		return ""
	}

	t.Run("proficiency and expertise displace each other", func(t *testing.T) {
		require.NoError(t, skillService.AddProficiency(ctx, character.ID, stealth))
		assert.Equal(t, domain.Proficient, levelOf(t, stealth))

		require.NoError(t, skillService.AddExpertise(ctx, character.ID, stealth))
		assert.Equal(t, domain.Expert, levelOf(t, stealth))

		rows, err := skillService.ListProficiencies(ctx, character.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		require.NoError(t, skillService.AddProficiency(ctx, character.ID, stealth))
		assert.Equal(t, domain.Proficient, levelOf(t, stealth))
	})

	t.Run("removal requires the matching level", func(t *testing.T) {
		require.NoError(t, skillService.AddExpertise(ctx, character.ID, stealth))

		err := skillService.RemoveProficiency(ctx, character.ID, stealth)
		assert.ErrorIs(t, err, domain.ErrSkillProficiencyMissing)
		assert.Equal(t, domain.Expert, levelOf(t, stealth))

		require.NoError(t, skillService.RemoveExpertise(ctx, character.ID, stealth))

		rows, err := skillService.ListProficiencies(ctx, character.ID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("removing an absent pair fails", func(t *testing.T) {
		err := skillService.RemoveExpertise(ctx, character.ID, stealth)
		assert.ErrorIs(t, err, domain.ErrSkillProficiencyMissing)
	})

	t.Run("unknown skill is rejected", func(t *testing.T) {
		err := skillService.AddProficiency(ctx, character.ID, 999)
		assert.ErrorIs(t, err, domain.ErrSkillNotFound)
	})

	t.Run("unknown character is rejected", func(t *testing.T) {
		err := skillService.AddExpertise(ctx, 99999, stealth)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})
}
