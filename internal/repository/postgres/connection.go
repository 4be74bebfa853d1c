package postgres

import (
	"context"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates every table of the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.Race{},
		&domain.Class{},
		&domain.Background{},
		&domain.Ethics{},
		&domain.Morality{},
		&domain.Ability{},
		&domain.Skill{},
		&domain.Character{},
		&domain.AbilityScore{},
		&domain.SavingThrowProficiency{},
		&domain.SkillProficiency{},
		&domain.OwnedItem{},
		&domain.Spell{},
		&domain.KnownSpell{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:             NewUserRepository(db),
		Session:          NewSessionRepository(db),
		Lookup:           NewLookupRepository(db),
		Reference:        NewReferenceRepository(db),
		Character:        NewCharacterRepository(db),
		AbilityScore:     NewAbilityScoreRepository(db),
		SavingThrow:      NewSavingThrowRepository(db),
		SkillProficiency: NewSkillProficiencyRepository(db),
		Item:             NewItemRepository(db),
		Spell:            NewSpellRepository(db),
		KnownSpell:       NewKnownSpellRepository(db),
	}
}

type txRunner struct {
	db *gorm.DB
}

// NewTxRunner wraps aggregate write sequences in a database transaction.
func NewTxRunner(db *gorm.DB) repository.TxRunner {
	return &txRunner{db: db}
}

func (r *txRunner) InTx(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
