package postgres

import (
	"context"
	"fmt"

	"github.com/tobin/character-vault/internal/domain"
	"gorm.io/gorm"
)

type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *lookupRepository {
	return &lookupRepository{db: db}
}

// Exists reports membership of id in the named lookup table. Ids below 1
// can never be members, so they fail without touching the store.
func (r *lookupRepository) Exists(ctx context.Context, set domain.ReferenceSet, id int64) (bool, error) {
	if id < 1 {
		return false, nil
	}

	model, err := lookupModel(set)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func lookupModel(set domain.ReferenceSet) (any, error) {
	switch set {
	case domain.SetRaces:
		return &domain.Race{}, nil
	case domain.SetClasses:
		return &domain.Class{}, nil
	case domain.SetBackgrounds:
		return &domain.Background{}, nil
	case domain.SetEthics:
		return &domain.Ethics{}, nil
	case domain.SetMoralities:
		return &domain.Morality{}, nil
	case domain.SetAbilities:
		return &domain.Ability{}, nil
	case domain.SetSkills:
		return &domain.Skill{}, nil
	case domain.SetUsers:
		return &domain.User{}, nil
	default:
		return nil, fmt.Errorf("unknown reference set %q", set)
	}
}
