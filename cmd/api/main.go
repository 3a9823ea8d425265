package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jtkorhonen/docmatch/internal/domain/matcher"
	"github.com/jtkorhonen/docmatch/internal/domain/records"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/config"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/logging"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/storage"
)

type APIServer struct {
	matcher *matcher.Matcher
	storage storage.Repository
}

func NewAPIServer(m *matcher.Matcher, storage storage.Repository) *APIServer {
	return &APIServer{
		matcher: m,
		storage: storage,
	}
}

// MatchAttachmentRequest carries a transaction and its candidate documents
type MatchAttachmentRequest struct {
	Transaction records.Transaction  `json:"transaction"`
	Attachments []records.Attachment `json:"attachments"`
}

// MatchTransactionRequest carries an attachment and its candidate transactions
type MatchTransactionRequest struct {
	Attachment   records.Attachment    `json:"attachment"`
	Transactions []records.Transaction `json:"transactions"`
}

// MatchResponse reports the resolved candidate, or null when nothing
// cleared the rules
type MatchResponse struct {
	Match  any     `json:"match"`
	Score  float64 `json:"score,omitempty"`
	Method string  `json:"method,omitempty"`
}

func (s *APIServer) matchAttachment(c *gin.Context) {
	var req MatchAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	candidates := make([]*records.Attachment, len(req.Attachments))
	for i := range req.Attachments {
		candidates[i] = &req.Attachments[i]
	}

	match := s.matcher.FindAttachment(&req.Transaction, candidates)
	if match == nil {
		c.JSON(http.StatusOK, MatchResponse{Match: nil})
		return
	}
	c.JSON(http.StatusOK, MatchResponse{
		Match:  match.Attachment,
		Score:  match.Score,
		Method: string(match.Method),
	})
}

func (s *APIServer) matchTransaction(c *gin.Context) {
	var req MatchTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	candidates := make([]*records.Transaction, len(req.Transactions))
	for i := range req.Transactions {
		candidates[i] = &req.Transactions[i]
	}

	match := s.matcher.FindTransaction(&req.Attachment, candidates)
	if match == nil {
		c.JSON(http.StatusOK, MatchResponse{Match: nil})
		return
	}
	c.JSON(http.StatusOK, MatchResponse{
		Match:  match.Transaction,
		Score:  match.Score,
		Method: string(match.Method),
	})
}

func (s *APIServer) getResults(c *gin.Context) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if _, err := fmt.Sscanf(l, "%d", &limit); err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
	}

	decisions, err := s.storage.RecentDecisions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
		return
	}
	c.JSON(http.StatusOK, decisions)
}

func (s *APIServer) getStats(c *gin.Context) {
	stats, err := s.storage.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func setupRouter(server *APIServer, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/match/attachment", server.matchAttachment)
		api.POST("/match/transaction", server.matchTransaction)
		api.GET("/results", server.getResults)
		api.GET("/stats", server.getStats)
	}

	return router
}

func main() {
	cfg := config.LoadOrEnv()
	logger := logging.NewLoggerWithScope(cfg.Logging, "api")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open audit store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	m := matcher.NewMatcher(cfg.Matching.ToMatcherConfig())
	server := NewAPIServer(m, store)
	router := setupRouter(server, cfg.Server.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting api server", "addr", addr)
	if err := router.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
