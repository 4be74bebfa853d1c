package postgres

import (
	"github.com/tobin/character-vault/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed loads the reference tables a fresh deployment needs. Rows carry
// explicit ids so lookups stay stable across environments; re-running is
// a no-op thanks to the conflict clause.
func Seed(db *gorm.DB) error {
	abilities := []domain.Ability{
		{ID: 1, Name: "Strength"},
		{ID: 2, Name: "Dexterity"},
		{ID: 3, Name: "Constitution"},
		{ID: 4, Name: "Intelligence"},
		{ID: 5, Name: "Wisdom"},
		{ID: 6, Name: "Charisma"},
	}

	skills := []domain.Skill{
		{ID: 1, Name: "Athletics", AbilityID: 1},
		{ID: 2, Name: "Acrobatics", AbilityID: 2},
		{ID: 3, Name: "Sleight of Hand", AbilityID: 2},
		{ID: 4, Name: "Stealth", AbilityID: 2},
		{ID: 5, Name: "Arcana", AbilityID: 4},
		{ID: 6, Name: "History", AbilityID: 4},
		{ID: 7, Name: "Investigation", AbilityID: 4},
		{ID: 8, Name: "Nature", AbilityID: 4},
		{ID: 9, Name: "Religion", AbilityID: 4},
		{ID: 10, Name: "Animal Handling", AbilityID: 5},
		{ID: 11, Name: "Insight", AbilityID: 5},
		{ID: 12, Name: "Medicine", AbilityID: 5},
		{ID: 13, Name: "Perception", AbilityID: 5},
		{ID: 14, Name: "Survival", AbilityID: 5},
		{ID: 15, Name: "Deception", AbilityID: 6},
		{ID: 16, Name: "Intimidation", AbilityID: 6},
		{ID: 17, Name: "Performance", AbilityID: 6},
		{ID: 18, Name: "Persuasion", AbilityID: 6},
	}

	races := []domain.Race{
		{ID: 1, Name: "Human", Description: "Versatile and ambitious.", Speed: 30},
		{ID: 2, Name: "Elf", Description: "Graceful and long-lived.", Speed: 30},
		{ID: 3, Name: "Dwarf", Description: "Stout and hardy.", Speed: 25},
		{ID: 4, Name: "Halfling", Description: "Small and nimble.", Speed: 25},
		{ID: 5, Name: "Half-Orc", Description: "Strong and enduring.", Speed: 30},
		{ID: 6, Name: "Gnome", Description: "Curious and inventive.", Speed: 25},
		{ID: 7, Name: "Tiefling", Description: "Marked by an infernal heritage.", Speed: 30},
	}

	classes := []domain.Class{
		{ID: 1, Name: "Barbarian", Description: "A fierce warrior fueled by rage.", HitDie: 12},
		{ID: 2, Name: "Bard", Description: "An inspiring magician of word and song.", HitDie: 8},
		{ID: 3, Name: "Cleric", Description: "A priestly champion of a deity.", HitDie: 8},
		{ID: 4, Name: "Druid", Description: "A priest of the old faith.", HitDie: 8},
		{ID: 5, Name: "Fighter", Description: "A master of martial combat.", HitDie: 10},
		{ID: 6, Name: "Rogue", Description: "A scoundrel who relies on skill and stealth.", HitDie: 8},
		{ID: 7, Name: "Wizard", Description: "A scholarly magic-user.", HitDie: 6},
	}

	backgrounds := []domain.Background{
		{ID: 1, Name: "Acolyte", Description: "Raised in the service of a temple."},
		{ID: 2, Name: "Criminal", Description: "A history on the wrong side of the law."},
		{ID: 3, Name: "Folk Hero", Description: "A champion of the common people."},
		{ID: 4, Name: "Noble", Description: "Born to wealth and privilege."},
		{ID: 5, Name: "Sage", Description: "A life spent among books."},
		{ID: 6, Name: "Soldier", Description: "Trained in an army or militia."},
	}

	ethics := []domain.Ethics{
		{ID: 1, Name: "Lawful"},
		{ID: 2, Name: "Neutral"},
		{ID: 3, Name: "Chaotic"},
	}

	moralities := []domain.Morality{
		{ID: 1, Name: "Good"},
		{ID: 2, Name: "Neutral"},
		{ID: 3, Name: "Evil"},
	}

	onConflict := clause.OnConflict{DoNothing: true}

	if err := db.Clauses(onConflict).Create(&abilities).Error; err != nil {
		return err
	}
	if err := db.Clauses(onConflict).Create(&skills).Error; err != nil {
		return err
	}
	if err := db.Clauses(onConflict).Create(&races).Error; err != nil {
		return err
	}
	if err := db.Clauses(onConflict).Create(&classes).Error; err != nil {
		return err
	}
	if err := db.Clauses(onConflict).Create(&backgrounds).Error; err != nil {
		return err
	}
	if err := db.Clauses(onConflict).Create(&ethics).Error; err != nil {
		return err
	}
	if err := db.Clauses(onConflict).Create(&moralities).Error; err != nil {
		return err
	}

	return nil
}
