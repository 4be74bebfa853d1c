package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository/postgres"
	"github.com/tobin/character-vault/internal/testutil"
)

func TestLookupRepository_Exists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repo := postgres.NewLookupRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name string
		set  domain.ReferenceSet
		id   int64
		want bool
	}{
		{"seeded race", domain.SetRaces, 1, true},
		{"unknown race", domain.SetRaces, 99, false},
		{"seeded class", domain.SetClasses, 5, true},
		{"seeded background", domain.SetBackgrounds, 6, true},
		{"seeded ethics", domain.SetEthics, 3, true},
		{"unknown morality", domain.SetMoralities, 42, false},
		{"seeded ability", domain.SetAbilities, 6, true},
		{"seeded skill", domain.SetSkills, 18, true},
		{"unknown skill", domain.SetSkills, 19, false},
		{"existing user", domain.SetUsers, int64(user.ID), true},
		{"zero id", domain.SetRaces, 0, false},
		{"negative id", domain.SetRaces, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Exists(ctx, tt.set, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown set is an error", func(t *testing.T) {
		_, err := repo.Exists(ctx, domain.ReferenceSet("dragons"), 1)
		assert.Error(t, err)
	})
}
