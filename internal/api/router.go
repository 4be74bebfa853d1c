package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/tobin/character-vault/internal/api/handlers"
	"github.com/tobin/character-vault/internal/api/middleware"
	"github.com/tobin/character-vault/internal/service"
	"github.com/tobin/character-vault/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	referenceHandler := handlers.NewReferenceHandler(services.Reference)
	characterHandler := handlers.NewCharacterHandler(services.Character, services.Recent, hub)
	inventoryHandler := handlers.NewInventoryHandler(services.Inventory, hub)
	spellHandler := handlers.NewSpellHandler(services.Spellbook, hub)
	skillHandler := handlers.NewSkillHandler(services.Skill, hub)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/refresh", authHandler.Refresh)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Reference data (public)
		r.Route("/races", func(r chi.Router) {
			r.Get("/", referenceHandler.GetAllRaces)
			r.Get("/{id}", referenceHandler.GetRace)
		})
		r.Route("/classes", func(r chi.Router) {
			r.Get("/", referenceHandler.GetAllClasses)
			r.Get("/{id}", referenceHandler.GetClass)
		})
		r.Route("/backgrounds", func(r chi.Router) {
			r.Get("/", referenceHandler.GetAllBackgrounds)
			r.Get("/{id}", referenceHandler.GetBackground)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			// Spell catalog
			r.Route("/spells", func(r chi.Router) {
				r.Get("/", spellHandler.List)
				r.Post("/", spellHandler.Create)
			})

			// Character aggregate
			r.Route("/characters", func(r chi.Router) {
				r.Post("/", characterHandler.Create)
				r.Get("/", characterHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", characterHandler.Get)
					r.Put("/", characterHandler.Update)
					r.Delete("/", characterHandler.Delete)

					r.Patch("/hit-points", characterHandler.AddHitPoints)
					r.Patch("/level-up", characterHandler.LevelUp)
					r.Patch("/experience", characterHandler.SetExperience)
					r.Patch("/armor-class", characterHandler.SetArmorClass)
					r.Patch("/speed", characterHandler.SetSpeed)
					r.Patch("/initiative", characterHandler.SetInitiative)

					r.Put("/ability-scores", characterHandler.SetAbilityScores)
					r.Put("/saving-throws", characterHandler.SetSavingThrows)

					r.Route("/items", func(r chi.Router) {
						r.Get("/", inventoryHandler.List)
						r.Post("/", inventoryHandler.Add)
						r.Delete("/", inventoryHandler.Remove)
					})

					r.Route("/skills/{skillId}", func(r chi.Router) {
						r.Post("/proficiency", skillHandler.AddProficiency)
						r.Delete("/proficiency", skillHandler.RemoveProficiency)
						r.Post("/expertise", skillHandler.AddExpertise)
						r.Delete("/expertise", skillHandler.RemoveExpertise)
					})
					r.Get("/skills", skillHandler.List)

					r.Post("/spells/{spellId}", spellHandler.AddKnown)
					r.Delete("/spells/{spellId}", spellHandler.RemoveKnown)
				})
			})
		})
	})

	// WebSocket sheet feed (token-authenticated in the handler)
	r.Get("/ws/characters/{id}", wsHandler.Handle)

	return r
}
