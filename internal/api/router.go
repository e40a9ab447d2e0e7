package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/futbol-backend-go/internal/config"
	"github.com/jengzang/futbol-backend-go/internal/handler"
	"github.com/jengzang/futbol-backend-go/internal/heatmap"
	"github.com/jengzang/futbol-backend-go/internal/middleware"
	"github.com/jengzang/futbol-backend-go/internal/repository"
	"github.com/jengzang/futbol-backend-go/internal/selection"
	"github.com/jengzang/futbol-backend-go/internal/service"
)

// Deps are the long-lived components the router is built from
type Deps struct {
	Config   *config.Config
	DB       *sql.DB
	Tracker  *selection.Tracker
	Limiter  *middleware.RateLimiter
	Provider service.Provider
}

// NewHeatmapService builds the heat-map service from configuration
func NewHeatmapService(cfg *config.Config, db *sql.DB) (*service.HeatmapService, error) {
	norm, err := heatmap.ParseNormalization(cfg.Heatmap.Normalization, cfg.Heatmap.FixedScale)
	if err != nil {
		return nil, err
	}
	return service.NewHeatmapService(
		repository.NewHeatmapRepository(db),
		repository.NewPlayerRepository(db),
		service.HeatmapOptions{
			Normalization: norm,
			GridSize:      cfg.Heatmap.GridSize,
			Fallback:      cfg.Heatmap.Fallback,
		},
	), nil
}

// NewImportService builds the importer over db and the data provider
func NewImportService(cfg *config.Config, db *sql.DB, provider service.Provider) *service.ImportService {
	return service.NewImportService(
		repository.NewImportTaskRepository(db),
		repository.NewCompetitionRepository(db),
		repository.NewMatchRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewHeatmapRepository(db),
		provider,
		cfg.Heatmap.GridSize,
	)
}

// SetupRouter 设置路由
func SetupRouter(deps Deps) (*gin.Engine, error) {
	cfg := deps.Config

	heatmapService, err := NewHeatmapService(cfg, deps.DB)
	if err != nil {
		return nil, err
	}
	signer := selection.NewTicketSigner(cfg.JWTSecret, cfg.Selection.TicketTTL)

	var catalog service.CatalogProvider
	if deps.Provider != nil {
		catalog = deps.Provider
	}

	competitionHandler := handler.NewCompetitionHandler(service.NewCompetitionService(repository.NewCompetitionRepository(deps.DB), catalog))
	matchHandler := handler.NewMatchHandler(service.NewMatchService(repository.NewMatchRepository(deps.DB), catalog))
	playerHandler := handler.NewPlayerHandler(service.NewPlayerService(repository.NewPlayerRepository(deps.DB)))
	heatmapHandler := handler.NewHeatmapHandler(heatmapService, deps.Tracker, signer)
	selectionHandler := handler.NewSelectionHandler(deps.Tracker, signer)
	liveHandler := handler.NewLiveHandler(heatmapService, deps.Tracker)
	importHandler := handler.NewImportHandler(NewImportService(cfg, deps.DB, deps.Provider))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+handler.SelectionTokenHeader+", "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Futbol Backend API is running",
			"sessions": deps.Tracker.Len(),
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	if deps.Limiter != nil {
		api.Use(middleware.RateLimit(deps.Limiter))
	}
	{
		// 赛事
		competitions := api.Group("/competitions")
		{
			competitions.GET("", competitionHandler.List)
			competitions.GET("/seasons", competitionHandler.Seasons)
			competitions.GET("/:competition_id/seasons/:season_id/matches", matchHandler.ListForSeason)
		}

		// 比赛
		matches := api.Group("/matches")
		{
			matches.GET("", matchHandler.List)
			matches.GET("/:match_id", matchHandler.Get)
		}

		// 球员与热力图
		players := api.Group("/players/:competition_id/:season_id")
		{
			players.GET("", playerHandler.List)
			players.GET("/:player_id/heatmap", heatmapHandler.Get)
			players.GET("/:player_id/heatmap/view", heatmapHandler.View)
		}

		// 选择会话
		api.POST("/selections", selectionHandler.Select)
		api.GET("/live", liveHandler.Serve)

		// 数据导入
		imports := api.Group("/imports")
		{
			imports.POST("", importHandler.CreateTask)
			imports.GET("", importHandler.ListTasks)
			imports.GET("/:id", importHandler.GetTask)
		}
	}

	return r, nil
}
