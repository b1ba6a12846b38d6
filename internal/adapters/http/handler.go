package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moodtunes/moodtunes-api/internal/domain"
	"github.com/moodtunes/moodtunes-api/internal/ports"
)

// Handler holds the HTTP handlers for the recommendation API.
type Handler struct {
	service ports.RecommendationService
}

// NewHandler creates a new HTTP handler with the given recommendation service.
func NewHandler(service ports.RecommendationService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/chat", h.Chat)
		api.GET("/playlists", h.ResolvePlaylist)
		api.GET("/playlists/available", h.AvailablePlaylists)
		api.GET("/playlists/random", h.RandomPlaylist)
		api.GET("/playlists/smart", h.SmartPlaylist)
		api.GET("/songs/search", h.SearchSongs)
		api.GET("/songs/:id", h.SongByID)
		api.GET("/catalog/stats", h.CatalogStats)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Chat routes a free-text chat message through the mood pipeline.
//
//	@Summary		Chat with the music bot
//	@Description	Classifies the mood of the message, detects language and artist mentions,
//	@Description	and returns a resolved playlist for the derived intent.
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.ChatRequest	true	"Free-text user message"
//	@Success		200		{object}	domain.ChatReply
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.service.Chat(req.Message))
}

// ResolvePlaylist resolves a (mood, language) pair into a playlist.
//
//	@Summary		Resolve a mood playlist
//	@Description	Returns an ordered playlist for the mood/language combination, or a
//	@Description	structured failure with alternative suggestions when nothing matches.
//	@Tags			playlists
//	@Produce		json
//	@Param			mood		query		string	true	"Mood label (e.g. happy, sad, romantic)"
//	@Param			language	query		string	true	"Language (e.g. Tamil, Hindi)"
//	@Success		200	{object}	domain.PlaylistResult
//	@Failure		400	{object}	ErrorResponse
//	@Router			/api/v1/playlists [get]
func (h *Handler) ResolvePlaylist(c *gin.Context) {
	mood := c.Query("mood")
	language := c.Query("language")
	if mood == "" || language == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "query parameters 'mood' and 'language' are required",
		})
		return
	}

	c.JSON(http.StatusOK, h.service.ResolvePlaylist(mood, language))
}

// AvailablePlaylists lists every combination that has songs.
//
//	@Summary		List available playlists
//	@Description	Returns all mood/language combinations with at least one song, sorted by count.
//	@Tags			playlists
//	@Produce		json
//	@Success		200	{array}	domain.PlaylistSummary
//	@Router			/api/v1/playlists/available [get]
func (h *Handler) AvailablePlaylists(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.AvailablePlaylists())
}

// RandomPlaylist builds a random playlist.
//
//	@Summary		Random playlist
//	@Description	Returns up to 'count' random songs from the catalog (default 5).
//	@Tags			playlists
//	@Produce		json
//	@Param			count	query		int	false	"Number of songs"	default(5)
//	@Success		200	{object}	domain.PlaylistResult
//	@Router			/api/v1/playlists/random [get]
func (h *Handler) RandomPlaylist(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "5"))
	if err != nil || count < 1 {
		count = 5
	}
	c.JSON(http.StatusOK, h.service.RandomPlaylist(count))
}

// SmartPlaylist resolves a playlist for the current time of day.
//
//	@Summary		Time-of-day playlist
//	@Description	Picks a mood from the current hour (morning energy, evening romance, ...)
//	@Description	and resolves a playlist in the default language.
//	@Tags			playlists
//	@Produce		json
//	@Success		200	{object}	domain.PlaylistResult
//	@Router			/api/v1/playlists/smart [get]
func (h *Handler) SmartPlaylist(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SmartPlaylist(time.Now()))
}

// SearchSongs searches the catalog by free text.
//
//	@Summary		Search songs
//	@Description	Case-insensitive substring search over title, artist, singer and movie.
//	@Tags			songs
//	@Produce		json
//	@Param			q	query		string	true	"Search query"
//	@Success		200	{array}	domain.Song
//	@Failure		400	{object}	ErrorResponse
//	@Router			/api/v1/songs/search [get]
func (h *Handler) SearchSongs(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "query parameter 'q' is required",
		})
		return
	}

	songs := h.service.SearchCatalog(query)
	if songs == nil {
		songs = []domain.Song{}
	}
	c.JSON(http.StatusOK, songs)
}

// SongByID returns a single catalog record.
//
//	@Summary		Get song by id
//	@Tags			songs
//	@Produce		json
//	@Param			id	path		string	true	"Song id"
//	@Success		200	{object}	domain.Song
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/songs/{id} [get]
func (h *Handler) SongByID(c *gin.Context) {
	song, ok := h.service.SongByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "no song with id " + c.Param("id"),
		})
		return
	}
	c.JSON(http.StatusOK, song)
}

// CatalogStats aggregates catalog counts.
//
//	@Summary		Catalog statistics
//	@Description	Song counts by language, mood and provider.
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	domain.CatalogStats
//	@Router			/api/v1/catalog/stats [get]
func (h *Handler) CatalogStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CatalogStats())
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
