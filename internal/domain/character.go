package domain

import "time"

type Character struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           uint      `json:"userId" gorm:"not null;index"`
	RaceID           uint      `json:"raceId" gorm:"not null"`
	ClassID          uint      `json:"classId" gorm:"not null"`
	BackgroundID     uint      `json:"backgroundId" gorm:"not null"`
	EthicsID         uint      `json:"ethicsId" gorm:"not null"`
	MoralityID       uint      `json:"moralityId" gorm:"not null"`
	Name             string    `json:"name" gorm:"not null"`
	ProficiencyBonus int       `json:"proficiencyBonus"`
	MaxHitPoints     int       `json:"maxHitPoints"`
	CurrentHitPoints int       `json:"currentHitPoints"`
	Level            int       `json:"level"`
	ArmorClass       int       `json:"armorClass"`
	Speed            *int      `json:"speed"`
	Initiative       *int      `json:"initiative"`
	Experience       *int      `json:"experience"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AbilityScore is one of the six scores of a character. The set is only
// ever replaced wholesale; there is no partial update.
type AbilityScore struct {
	CharacterID uint `json:"characterId" gorm:"primaryKey"`
	AbilityID   uint `json:"abilityId" gorm:"primaryKey"`
	Score       int  `json:"score" gorm:"not null"`
}

type SavingThrowProficiency struct {
	CharacterID uint `json:"characterId" gorm:"primaryKey"`
	AbilityID   uint `json:"abilityId" gorm:"primaryKey"`
}

// ProficiencyLevel makes proficiency and expertise mutually exclusive by
// construction: a (character, skill) pair holds at most one row, and the
// row carries exactly one level. No row means no proficiency at all.
type ProficiencyLevel string

const (
	Proficient ProficiencyLevel = "proficient"
	Expert     ProficiencyLevel = "expert"
)

type SkillProficiency struct {
	CharacterID uint             `json:"characterId" gorm:"primaryKey"`
	SkillID     uint             `json:"skillId" gorm:"primaryKey"`
	Level       ProficiencyLevel `json:"level" gorm:"not null"`
}

// CharacterSheet is the fully assembled read model: the character row plus
// every dependent sub-record and the resolved reference details.
type CharacterSheet struct {
	Character          Character                `json:"character"`
	Race               *Race                    `json:"race"`
	Class              *Class                   `json:"class"`
	Background         *Background              `json:"background"`
	AbilityScores      []AbilityScore           `json:"abilityScores"`
	SavingThrows       []SavingThrowProficiency `json:"savingThrows"`
	SkillProficiencies []SkillProficiency       `json:"skillProficiencies"`
	Items              []OwnedItem              `json:"items"`
	Spells             []*Spell                 `json:"spells"`
	Experience         int                      `json:"experience"`
}
