package domain

// ReferenceSet names a lookup table used purely for id membership checks.
type ReferenceSet string

const (
	SetRaces       ReferenceSet = "races"
	SetClasses     ReferenceSet = "classes"
	SetBackgrounds ReferenceSet = "backgrounds"
	SetEthics      ReferenceSet = "ethics"
	SetMoralities  ReferenceSet = "moralities"
	SetAbilities   ReferenceSet = "abilities"
	SetSkills      ReferenceSet = "skills"
	SetUsers       ReferenceSet = "users"
)

type Race struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Speed       int    `json:"speed"`
}

type Class struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	HitDie      int    `json:"hitDie"`
}

type Background struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
}

// Ethics is the lawful/neutral/chaotic axis of an alignment.
type Ethics struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Morality is the good/neutral/evil axis of an alignment.
type Morality struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Ability struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Skill struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"uniqueIndex;not null"`
	AbilityID uint   `json:"abilityId" gorm:"not null"`
}

// AbilityCount is the number of ability scores every character carries,
// in the fixed order strength, dexterity, constitution, intelligence,
// wisdom, charisma.
const AbilityCount = 6
