package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tobin/character-vault/internal/config"
	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository"
	"gorm.io/gorm"
)

// RecentService maintains the recently-viewed characters list. The list
// is never stored server-side; it travels as a signed token the client
// hands back on the next visit. An expired or unreadable token simply
// starts a fresh list.
type RecentService struct {
	characterRepo repository.CharacterRepository
	secret        []byte
	ttl           time.Duration
}

func NewRecentService(characterRepo repository.CharacterRepository, cfg *config.Config) *RecentService {
	return &RecentService{
		characterRepo: characterRepo,
		secret:        []byte(cfg.JWTSecret),
		ttl:           cfg.RecentListTTL,
	}
}

type recentClaims struct {
	Characters domain.RecentList `json:"chars"`
	jwt.RegisteredClaims
}

// Touch records a visit to the character and returns the updated list
// together with the token carrying it.
func (s *RecentService) Touch(ctx context.Context, visitedID uint, previousToken string) (domain.RecentList, string, error) {
	character, err := s.characterRepo.GetByID(ctx, visitedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domain.ErrCharacterNotFound
		}
		return nil, "", err
	}

	previous := s.Decode(previousToken)
	next := previous.Touch(domain.RecentEntry{ID: character.ID, Name: character.Name})

	token, err := s.encode(next)
	if err != nil {
		return nil, "", err
	}
	return next, token, nil
}

// Decode recovers the list from a token. Anything invalid or expired
// decodes to an empty list; a stale token is not an error.
func (s *RecentService) Decode(token string) domain.RecentList {
	if token == "" {
		return nil
	}

	var claims recentClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}
	return claims.Characters
}

func (s *RecentService) encode(list domain.RecentList) (string, error) {
	now := time.Now()
	claims := recentClaims{
		Characters: list,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
