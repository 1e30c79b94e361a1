package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/yoockh/jobboard/config"
	"github.com/yoockh/jobboard/internal/api/handlers"
	"github.com/yoockh/jobboard/internal/api/middleware"
	"github.com/yoockh/jobboard/internal/api/routes"
	"github.com/yoockh/jobboard/internal/app"
	"github.com/yoockh/jobboard/internal/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	settings, err := config.Load(viper.GetViper())
	if err != nil {
		log.WithError(err).Fatal("config error")
	}
	log.SetLevel(logger.ParseLevel(settings.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, settings, log)
	if err != nil {
		log.WithError(err).Fatal("app init error")
	}
	defer a.Close()

	if !a.Seeder.ConnectionCheck(ctx) {
		log.Warn("data store did not answer the startup check")
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	deps := routes.Deps{
		Profile:     handlers.NewProfileHandler(a.Profiles, log),
		Application: handlers.NewApplicationHandler(a.Applications, log),
		Job:         handlers.NewJobHandler(a.Jobs),
		Seed:        handlers.NewSeedHandler(a.Seeder),
		Auth: middleware.JWTAuthWithConfig(middleware.JWTConfig{
			Secret:   settings.JWTSecret,
			Issuer:   settings.JWTIssuer,
			Audience: settings.JWTAudience,
		}),
		AllowedOrigins: settings.AllowedOrigins(),
	}
	if a.Resumes != nil {
		deps.Resume = handlers.NewResumeHandler(a.Resumes)
	}
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", settings.Port).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
