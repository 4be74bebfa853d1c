package postgres

import (
	"context"

	"github.com/tobin/character-vault/internal/domain"
	"gorm.io/gorm"
)

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *referenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) GetAllRaces(ctx context.Context) ([]*domain.Race, error) {
	var races []*domain.Race
	err := r.db.WithContext(ctx).Order("id").Find(&races).Error
	if err != nil {
		return nil, err
	}
	return races, nil
}

func (r *referenceRepository) GetRaceByID(ctx context.Context, id uint) (*domain.Race, error) {
	var race domain.Race
	err := r.db.WithContext(ctx).First(&race, id).Error
	if err != nil {
		return nil, err
	}
	return &race, nil
}

func (r *referenceRepository) GetAllClasses(ctx context.Context) ([]*domain.Class, error) {
	var classes []*domain.Class
	err := r.db.WithContext(ctx).Order("id").Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *referenceRepository) GetClassByID(ctx context.Context, id uint) (*domain.Class, error) {
	var class domain.Class
	err := r.db.WithContext(ctx).First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *referenceRepository) GetAllBackgrounds(ctx context.Context) ([]*domain.Background, error) {
	var backgrounds []*domain.Background
	err := r.db.WithContext(ctx).Order("id").Find(&backgrounds).Error
	if err != nil {
		return nil, err
	}
	return backgrounds, nil
}

func (r *referenceRepository) GetBackgroundByID(ctx context.Context, id uint) (*domain.Background, error) {
	var background domain.Background
	err := r.db.WithContext(ctx).First(&background, id).Error
	if err != nil {
		return nil, err
	}
	return &background, nil
}
