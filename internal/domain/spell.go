package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Spell is either a public spell (OwnerID nil) or a homebrew spell visible
// only to its owner.
type Spell struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID     *uint          `json:"ownerId" gorm:"index"`
	Name        string         `json:"name" gorm:"not null"`
	Level       int            `json:"level"`
	School      string         `json:"school"`
	Tags        datatypes.JSON `json:"tags" gorm:"type:jsonb"` // e.g. ["Ritual", "Concentration"]
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type KnownSpell struct {
	CharacterID uint `json:"characterId" gorm:"primaryKey"`
	SpellID     uint `json:"spellId" gorm:"primaryKey"`
}
