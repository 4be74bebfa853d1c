package service

import (
	"github.com/tobin/character-vault/internal/config"
	"github.com/tobin/character-vault/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Reference *ReferenceService
	Character *CharacterService
	Inventory *InventoryService
	Spellbook *SpellbookService
	Skill     *SkillService
	Recent    *RecentService
}

func NewServices(repos *repository.Repositories, tx repository.TxRunner, cfg *config.Config) *Services {
	validator := NewCharacterValidator(repos.Lookup)

	return &Services{
		Auth:      NewAuthService(repos.User, repos.Session, cfg),
		Reference: NewReferenceService(repos.Reference),
		Character: NewCharacterService(repos, tx, validator),
		Inventory: NewInventoryService(repos.Item, repos.Character),
		Spellbook: NewSpellbookService(repos.KnownSpell, repos.Spell, repos.Character),
		Skill:     NewSkillService(repos.SkillProficiency, repos.Character, repos.Lookup),
		Recent:    NewRecentService(repos.Character, cfg),
	}
}
