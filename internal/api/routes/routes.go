package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/api/handlers"
	"github.com/yoockh/jobboard/internal/api/middleware"
)

type Deps struct {
	Profile     *handlers.ProfileHandler
	Resume      *handlers.ResumeHandler // nil when no bucket is configured
	Application *handlers.ApplicationHandler
	Job         *handlers.JobHandler
	Seed        *handlers.SeedHandler

	Auth           gin.HandlerFunc // defaults to middleware.JWTAuth()
	AllowedOrigins []string        // empty allows any origin
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(corsMiddleware(d.AllowedOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/health/db", d.Seed.Health)

	// Public browsing
	r.GET("/jobs", d.Job.List)
	r.GET("/jobs/:job_id", d.Job.Get)
	r.GET("/companies", d.Job.Companies)

	auth := d.Auth
	if auth == nil {
		auth = middleware.JWTAuth()
	}

	// Protected routes (JWT)
	me := r.Group("/")
	me.Use(auth)

	me.GET("/profile/me", d.Profile.Me)
	me.PUT("/profile/me", d.Profile.Update)
	if d.Resume != nil {
		me.POST("/profile/resume", d.Resume.Upload)
	}

	me.POST("/jobs/:job_id/apply", d.Application.Apply)
	me.GET("/applications/me", d.Application.Mine)

	admin := me.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/seed", d.Seed.Seed)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	var allowed []string
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
