package domain

// OwnedItem is one inventory line. Name is stored lowercase and acts as
// the merge key; Count is positive for as long as the row exists, a line
// whose count reaches zero is deleted instead of stored.
type OwnedItem struct {
	CharacterID uint   `json:"characterId" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"primaryKey"`
	Count       int    `json:"count" gorm:"not null"`
}
