package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	handler "github.com/moodtunes/moodtunes-api/internal/adapters/http"
	"github.com/moodtunes/moodtunes-api/internal/app"
	"github.com/moodtunes/moodtunes-api/internal/catalog"
	"github.com/moodtunes/moodtunes-api/internal/config"
	"github.com/moodtunes/moodtunes-api/internal/mood"
	"github.com/moodtunes/moodtunes-api/internal/playlist"

	_ "github.com/moodtunes/moodtunes-api/docs"
)

// @title			MoodTunes Recommender API
// @version		1.0
// @description	Mood-aware song recommendation API for Tamil and regional-language music.
// @description	Classifies free-text messages into moods and resolves deterministic playlists.

// @contact.name	MoodTunes API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg := config.Load()

	// Load the song catalog once at startup. A corrupt catalog is a
	// startup failure, never a query-time error.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load song catalog: %v", err)
	}

	classifier := mood.NewClassifier(cfg.DefaultMood, cfg.ConfidenceDivisor)
	resolver := playlist.NewResolver(cat, cfg.MaxAlternatives)
	service := app.NewService(cat, classifier, resolver, cfg.DefaultLanguage)

	// Setup HTTP server
	r := gin.Default()
	h := handler.NewHandler(service)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	log.Printf("Starting MoodTunes Recommender API on %s", addr)
	log.Printf("Catalog: %d songs", cat.Len())
	log.Printf("Default mood: %s, default language: %s", cfg.DefaultMood, cfg.DefaultLanguage)
	log.Printf("Swagger UI: http://localhost%s/swagger/index.html", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
