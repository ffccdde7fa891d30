package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jaki95/music-explorer/config"
	"github.com/jaki95/music-explorer/internal/dataset"
	"github.com/jaki95/music-explorer/internal/leaderboard"
	"github.com/jaki95/music-explorer/internal/quiz"
	"github.com/jaki95/music-explorer/internal/storage"
)

// Server handles HTTP requests for the music explorer backend.
type Server struct {
	cfg    *config.Config
	router *gin.Engine

	cache    *dataset.Cache
	sessions *quiz.Manager
	board    *leaderboard.Store
}

// New creates a new HTTP server instance wired to the configured storage
// backend.
func New(cfg *config.Config) (*Server, error) {
	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}

	candidates := make([]dataset.SourceCandidate, len(cfg.Dataset.Sources))
	for i, src := range cfg.Dataset.Sources {
		candidates[i] = dataset.SourceCandidate{Path: src.Path, Format: src.Format}
	}

	server := &Server{
		cfg:      cfg,
		router:   gin.Default(),
		cache:    dataset.NewCache(dataset.NewLoader(backend, candidates)),
		sessions: quiz.NewManager(cfg.Quiz.Rounds),
		board:    leaderboard.NewStore(backend, cfg.Leaderboard.Path),
	}

	server.setupRoutes(server.router)
	return server, nil
}

func newBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.Storage.Type {
	case "local":
		return storage.NewLocalBackend(cfg.Storage.DataDir)
	case "gcs":
		return storage.NewGCSBackend(context.Background(), cfg.Storage.Bucket, cfg.Storage.ObjectPrefix, cfg.Storage.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}

// setupRoutes configures the HTTP routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// Add CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", s.healthCheck)

	// API endpoints
	api := router.Group("/api/v1")
	{
		api.GET("/dataset", s.getDatasetSummary)
		api.GET("/dataset/tracks", s.listTracks)
		api.POST("/dataset/reload", s.reloadDataset)
		api.GET("/tracks/:id/player", s.getTrackPlayer)

		api.POST("/quiz/sessions", s.createQuizSession)
		api.GET("/quiz/sessions/:id", s.getQuizSession)
		api.POST("/quiz/sessions/:id/guess", s.submitGuess)
		api.POST("/quiz/sessions/:id/next", s.nextRound)

		api.GET("/leaderboard", s.getLeaderboard)
		api.POST("/leaderboard", s.recordScore)
	}
}

// Start starts the HTTP server
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "music-explorer",
	})
}
