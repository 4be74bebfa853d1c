package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/repository"
	"gorm.io/gorm"
)

// InventoryService keeps one line per (character, item name) with item
// names folded to lowercase, so "Sword" and "sword" merge into the same
// line.
type InventoryService struct {
	itemRepo      repository.ItemRepository
	characterRepo repository.CharacterRepository
}

func NewInventoryService(itemRepo repository.ItemRepository, characterRepo repository.CharacterRepository) *InventoryService {
	return &InventoryService{
		itemRepo:      itemRepo,
		characterRepo: characterRepo,
	}
}

// AddItem merges delta into the character's line for the item, creating
// the line when it does not exist yet.
func (s *InventoryService) AddItem(ctx context.Context, characterID uint, name string, delta int) error {
	if delta == 0 {
		return domain.ErrInvalidItemDelta
	}

	if _, err := s.characterRepo.GetByID(ctx, characterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCharacterNotFound
		}
		return err
	}

	name = strings.ToLower(name)

	count := delta
	existing, err := s.itemRepo.GetByCharacterIDAndName(ctx, characterID, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		count += existing.Count
	}

	return s.setCount(ctx, characterID, name, count)
}

// RemoveItem deducts from an existing line. The delta must be strictly
// negative; removal reuses the same merge primitive as AddItem.
func (s *InventoryService) RemoveItem(ctx context.Context, characterID uint, name string, delta int) error {
	if delta >= 0 {
		return domain.ErrRemoveDeltaNotNeg
	}

	name = strings.ToLower(name)

	existing, err := s.itemRepo.GetByCharacterIDAndName(ctx, characterID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	return s.setCount(ctx, characterID, name, existing.Count+delta)
}

// ListItems returns every inventory line of the character.
func (s *InventoryService) ListItems(ctx context.Context, characterID uint) ([]domain.OwnedItem, error) {
	return s.itemRepo.GetByCharacterID(ctx, characterID)
}

// setCount writes the merged count, deleting the line once it reaches
// zero or below. Removing more than is owned floors at deletion rather
// than failing.
func (s *InventoryService) setCount(ctx context.Context, characterID uint, name string, count int) error {
	if count <= 0 {
		return s.itemRepo.Delete(ctx, characterID, name)
	}
	return s.itemRepo.Upsert(ctx, &domain.OwnedItem{
		CharacterID: characterID,
		Name:        name,
		Count:       count,
	})
}
