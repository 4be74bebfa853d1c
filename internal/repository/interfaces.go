package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tobin/character-vault/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByDisplayName(ctx context.Context, displayName string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uint) (*domain.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

// LookupRepository answers pure membership questions against the lookup
// tables. Absence is a normal false result; only a store failure is an
// error.
type LookupRepository interface {
	Exists(ctx context.Context, set domain.ReferenceSet, id int64) (bool, error)
}

type ReferenceRepository interface {
	GetAllRaces(ctx context.Context) ([]*domain.Race, error)
	GetRaceByID(ctx context.Context, id uint) (*domain.Race, error)
	GetAllClasses(ctx context.Context) ([]*domain.Class, error)
	GetClassByID(ctx context.Context, id uint) (*domain.Class, error)
	GetAllBackgrounds(ctx context.Context) ([]*domain.Background, error)
	GetBackgroundByID(ctx context.Context, id uint) (*domain.Background, error)
}

type CharacterRepository interface {
	Create(ctx context.Context, character *domain.Character) error
	GetByID(ctx context.Context, id uint) (*domain.Character, error)
	GetByIDAndUserID(ctx context.Context, id, userID uint) (*domain.Character, error)
	GetByUserID(ctx context.Context, userID uint) ([]*domain.Character, error)
	Update(ctx context.Context, character *domain.Character) error
	Delete(ctx context.Context, id uint) error
}

type AbilityScoreRepository interface {
	CreateMany(ctx context.Context, scores []domain.AbilityScore) error
	GetByCharacterID(ctx context.Context, characterID uint) ([]domain.AbilityScore, error)
	DeleteByCharacterID(ctx context.Context, characterID uint) error
}

type SavingThrowRepository interface {
	CreateMany(ctx context.Context, proficiencies []domain.SavingThrowProficiency) error
	GetByCharacterID(ctx context.Context, characterID uint) ([]domain.SavingThrowProficiency, error)
	DeleteByCharacterID(ctx context.Context, characterID uint) error
}

type SkillProficiencyRepository interface {
	Upsert(ctx context.Context, proficiency *domain.SkillProficiency) error
	GetByCharacterID(ctx context.Context, characterID uint) ([]domain.SkillProficiency, error)
	GetByCharacterIDAndSkillID(ctx context.Context, characterID, skillID uint) (*domain.SkillProficiency, error)
	Delete(ctx context.Context, characterID, skillID uint) error
	DeleteByCharacterIDAndLevel(ctx context.Context, characterID uint, level domain.ProficiencyLevel) error
}

type ItemRepository interface {
	GetByCharacterIDAndName(ctx context.Context, characterID uint, name string) (*domain.OwnedItem, error)
	GetByCharacterID(ctx context.Context, characterID uint) ([]domain.OwnedItem, error)
	Upsert(ctx context.Context, item *domain.OwnedItem) error
	Delete(ctx context.Context, characterID uint, name string) error
	DeleteByCharacterID(ctx context.Context, characterID uint) error
}

type SpellRepository interface {
	Create(ctx context.Context, spell *domain.Spell) error
	// GetVisibleByID treats a spell owned by another user as absent.
	GetVisibleByID(ctx context.Context, id, userID uint) (*domain.Spell, error)
	GetAllVisible(ctx context.Context, userID uint) ([]*domain.Spell, error)
}

type KnownSpellRepository interface {
	Create(ctx context.Context, known *domain.KnownSpell) error
	GetByCharacterID(ctx context.Context, characterID uint) ([]domain.KnownSpell, error)
	Delete(ctx context.Context, characterID, spellID uint) error
	DeleteByCharacterID(ctx context.Context, characterID uint) error
	CountByCharacterID(ctx context.Context, characterID uint) (int64, error)
}

type Repositories struct {
	User             UserRepository
	Session          SessionRepository
	Lookup           LookupRepository
	Reference        ReferenceRepository
	Character        CharacterRepository
	AbilityScore     AbilityScoreRepository
	SavingThrow      SavingThrowRepository
	SkillProficiency SkillProficiencyRepository
	Item             ItemRepository
	Spell            SpellRepository
	KnownSpell       KnownSpellRepository
}

// TxRunner runs fn against transaction-scoped repositories; an error from
// fn rolls the whole sequence back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(repos *Repositories) error) error
}
