package service

import (
	"context"
	"errors"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository"
	"gorm.io/gorm"
)

var ErrReferenceNotFound = errors.New("reference entry not found")

// ReferenceService serves the race/class/background catalogs.
type ReferenceService struct {
	referenceRepo repository.ReferenceRepository
}

func NewReferenceService(referenceRepo repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{referenceRepo: referenceRepo}
}

func (s *ReferenceService) GetAllRaces(ctx context.Context) ([]*domain.Race, error) {
	return s.referenceRepo.GetAllRaces(ctx)
}

func (s *ReferenceService) GetRace(ctx context.Context, id uint) (*domain.Race, error) {
	race, err := s.referenceRepo.GetRaceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferenceNotFound
		}
		return nil, err
	}
	return race, nil
}

func (s *ReferenceService) GetAllClasses(ctx context.Context) ([]*domain.Class, error) {
	return s.referenceRepo.GetAllClasses(ctx)
}

func (s *ReferenceService) GetClass(ctx context.Context, id uint) (*domain.Class, error) {
	class, err := s.referenceRepo.GetClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferenceNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *ReferenceService) GetAllBackgrounds(ctx context.Context) ([]*domain.Background, error) {
	return s.referenceRepo.GetAllBackgrounds(ctx)
}

func (s *ReferenceService) GetBackground(ctx context.Context, id uint) (*domain.Background, error) {
	background, err := s.referenceRepo.GetBackgroundByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferenceNotFound
		}
		return nil, err
	}
	return background, nil
}
