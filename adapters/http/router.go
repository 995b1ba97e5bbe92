package http

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/pkg/logger"
)

//go:embed static
var staticFiles embed.FS

type RouterConfig struct {
	SessionCookie string
	SessionTTL    time.Duration
	AssetsDir     string
}

type Handlers struct {
	Page    *PageHandler
	Profile *ProfileHandler
	Project *ProjectHandler
}

func NewRouter(cfg RouterConfig, handlers Handlers, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggerMiddleware(log),
		ErrorMiddleware(log),
	)

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatal("Embedded static files missing", err)
	}
	router.StaticFS("/static", http.FS(static))
	if cfg.AssetsDir != "" {
		router.Static("/assets", cfg.AssetsDir)
	}

	session := router.Group("/")
	session.Use(SessionMiddleware(cfg.SessionCookie, cfg.SessionTTL))
	{
		session.GET("/", handlers.Page.Index)
		session.POST("/api/ui/events", handlers.Page.HandleEvent)
	}

	api := router.Group("/api")
	{
		api.GET("/profile", handlers.Profile.GetProfile)
		api.GET("/skills", handlers.Profile.ListSkills)
		api.GET("/projects", handlers.Project.ListProjects)
		api.GET("/projects/:id", handlers.Project.GetProject)
	}

	return router
}
