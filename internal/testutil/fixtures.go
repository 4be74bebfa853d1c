package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tobin/character-vault/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	displayName string
	password    string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		displayName: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
	}
}

// WithDisplayName sets the display name
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.displayName = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		DisplayName:  b.displayName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID          uint   `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"displayName": b.displayName,
		"password":    b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	user := &domain.User{
		ID:          authResp.User.ID,
		DisplayName: authResp.User.DisplayName,
	}

	return user, authResp.AccessToken
}

// CharacterBuilder creates test characters with sensible defaults that
// pass validation against the seeded reference data.
type CharacterBuilder struct {
	character domain.Character
}

func NewCharacterBuilder(userID uint) *CharacterBuilder {
	return &CharacterBuilder{
		character: domain.Character{
			UserID:           userID,
			RaceID:           1,
			ClassID:          5,
			BackgroundID:     6,
			EthicsID:         1,
			MoralityID:       1,
			Name:             "Test Fighter",
			ProficiencyBonus: 2,
			MaxHitPoints:     12,
			CurrentHitPoints: 12,
			Level:            1,
			ArmorClass:       16,
		},
	}
}

func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// Build creates the character row together with a default ability-score
// set and saving throws.
func (b *CharacterBuilder) Build(t *testing.T, db *gorm.DB) *domain.Character {
	t.Helper()

	character := b.character
	if err := db.Create(&character).Error; err != nil {
		t.Fatalf("failed to create character: %v", err)
	}

	scores := []int{15, 14, 13, 12, 10, 8}
	for i, score := range scores {
		row := domain.AbilityScore{CharacterID: character.ID, AbilityID: uint(i + 1), Score: score}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to create ability score: %v", err)
		}
	}

	for _, abilityID := range []uint{1, 3} {
		row := domain.SavingThrowProficiency{CharacterID: character.ID, AbilityID: abilityID}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to create saving throw: %v", err)
		}
	}

	return &character
}

// SpellBuilder creates spells, public by default.
type SpellBuilder struct {
	spell domain.Spell
}

func NewSpellBuilder() *SpellBuilder {
	return &SpellBuilder{
		spell: domain.Spell{
			Name:      fmt.Sprintf("Test Spell %s", uuid.New().String()[:8]),
			Level:     1,
			School:    "Evocation",
			CreatedAt: time.Now(),
		},
	}
}

func (b *SpellBuilder) WithOwner(userID uint) *SpellBuilder {
	b.spell.OwnerID = &userID
	return b
}

func (b *SpellBuilder) WithName(name string) *SpellBuilder {
	b.spell.Name = name
	return b
}

func (b *SpellBuilder) Build(t *testing.T, db *gorm.DB) *domain.Spell {
	t.Helper()

	spell := b.spell
	if err := db.Create(&spell).Error; err != nil {
		t.Fatalf("failed to create spell: %v", err)
	}
	return &spell
}
