package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobin/character-vault/internal/config"
	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/service"
	"gorm.io/gorm"
)

// fakeCharacterRepo serves name lookups from a fixed map.
type fakeCharacterRepo struct {
	characters map[uint]string
}

func (f *fakeCharacterRepo) GetByID(_ context.Context, id uint) (*domain.Character, error) {
	name, ok := f.characters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.Character{ID: id, Name: name}, nil
}

func (f *fakeCharacterRepo) Create(context.Context, *domain.Character) error { return nil }
func (f *fakeCharacterRepo) GetByIDAndUserID(context.Context, uint, uint) (*domain.Character, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCharacterRepo) GetByUserID(context.Context, uint) ([]*domain.Character, error) {
	return nil, nil
}
func (f *fakeCharacterRepo) Update(context.Context, *domain.Character) error { return nil }
func (f *fakeCharacterRepo) Delete(context.Context, uint) error              { return nil }

func newRecentService(ttl time.Duration) *service.RecentService {
	repo := &fakeCharacterRepo{characters: map[uint]string{
		2: "Ygritte",
		5: "Bram",
		7: "Tallow",
		9: "Moritz",
	}}
	return service.NewRecentService(repo, &config.Config{
		JWTSecret:     "test-secret",
		RecentListTTL: ttl,
	})
}

func TestRecentService_Touch(t *testing.T) {
	svc := newRecentService(15 * time.Minute)
	ctx := context.Background()

	t.Run("first visit starts a singleton list", func(t *testing.T) {
		list, token, err := svc.Touch(ctx, 5, "")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, uint(5), list[0].ID)
		assert.Equal(t, "Bram", list[0].Name)
		assert.NotEmpty(t, token)
	})

	t.Run("list survives a token round trip", func(t *testing.T) {
		_, token, err := svc.Touch(ctx, 5, "")
		require.NoError(t, err)
		_, token, err = svc.Touch(ctx, 2, token)
		require.NoError(t, err)
		list, _, err := svc.Touch(ctx, 9, token)
		require.NoError(t, err)

		require.Len(t, list, 3)
		assert.Equal(t, uint(9), list[0].ID)
		assert.Equal(t, uint(2), list[1].ID)
		assert.Equal(t, uint(5), list[2].ID)
	})

	t.Run("capacity overflow drops the oldest entry", func(t *testing.T) {
		var token string
		var err error
		for _, id := range []uint{5, 2, 9, 7} {
			_, token, err = svc.Touch(ctx, id, token)
			require.NoError(t, err)
		}

		list := svc.Decode(token)
		require.Len(t, list, 3)
		assert.Equal(t, uint(7), list[0].ID)
		assert.Equal(t, uint(9), list[1].ID)
		assert.Equal(t, uint(2), list[2].ID)
	})

	t.Run("unknown character fails not-found", func(t *testing.T) {
		_, _, err := svc.Touch(ctx, 404, "")
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})
}

func TestRecentService_Decode(t *testing.T) {
	svc := newRecentService(15 * time.Minute)

	t.Run("empty token decodes to empty list", func(t *testing.T) {
		assert.Empty(t, svc.Decode(""))
	})

	t.Run("garbage token decodes to empty list", func(t *testing.T) {
		assert.Empty(t, svc.Decode("not-a-token"))
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := service.NewRecentService(&fakeCharacterRepo{characters: map[uint]string{5: "Bram"}}, &config.Config{
			JWTSecret:     "other-secret",
			RecentListTTL: 15 * time.Minute,
		})
		_, token, err := other.Touch(context.Background(), 5, "")
		require.NoError(t, err)

		assert.Empty(t, svc.Decode(token))
	})

	t.Run("expired token decodes to empty list", func(t *testing.T) {
		expired := newRecentService(-1 * time.Minute)
		_, token, err := expired.Touch(context.Background(), 5, "")
		require.NoError(t, err)

		assert.Empty(t, expired.Decode(token))
	})
}
