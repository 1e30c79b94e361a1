package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/config"
	"github.com/yoockh/jobboard/internal/cache"
	"github.com/yoockh/jobboard/internal/repositories"
	mongorepo "github.com/yoockh/jobboard/internal/repositories/mongo"
	pgrepo "github.com/yoockh/jobboard/internal/repositories/postgres"
	suparepo "github.com/yoockh/jobboard/internal/repositories/supabase"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/storage"
)

// App is the dependency container shared by the HTTP server and the CLI.
type App struct {
	Settings *config.Settings
	Log      *logrus.Logger
	Repos    repositories.Set

	Profiles     services.ProfileService
	Applications services.ApplicationService
	Jobs         services.JobService
	Seeder       services.SeedService
	Resumes      services.ResumeService // nil without RESUME_BUCKET

	closers []func(context.Context) error
}

// New connects the configured gateway driver and the optional cache and
// bucket, then builds the services on top.
func New(ctx context.Context, s *config.Settings, log *logrus.Logger) (*App, error) {
	a := &App{Settings: s, Log: log}

	repos, err := a.openGateway(s)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Repos = repos
	log.WithField("driver", s.GatewayDriver).Info("gateway ready")

	var c cache.Cache
	if config.RedisConfigured(s.RedisAddr) {
		if err := config.InitRedis(s.RedisAddr); err != nil {
			// the cache is optional; run uncached rather than fail startup
			log.WithError(err).Warn("redis unavailable, listings will not be cached")
		} else {
			c = cache.NewRedisCache(config.RedisClient)
			a.closers = append(a.closers, func(context.Context) error { return config.RedisClient.Close() })
		}
	}

	var uploader storage.Uploader
	if s.ResumeBucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, s.ResumeBucket)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to init resume bucket: %w", err)
		}
		uploader = gcs
		a.closers = append(a.closers, func(context.Context) error { return gcs.Close() })
	}

	a.Profiles = services.NewProfileService(repos.Profiles)
	a.Applications = services.NewApplicationService(repos.Applications, c, log)
	a.Jobs = services.NewJobService(repos.Jobs, repos.Companies, c, log)
	a.Seeder = services.NewSeedService(repos.Companies, repos.Jobs, c, log)
	if uploader != nil {
		a.Resumes = services.NewResumeService(a.Profiles, uploader)
	}
	return a, nil
}

func (a *App) openGateway(s *config.Settings) (repositories.Set, error) {
	switch s.GatewayDriver {
	case config.DriverSupabase:
		if err := config.InitSupabase(s.SupabaseURL, s.SupabaseKey); err != nil {
			return repositories.Set{}, err
		}
		return suparepo.NewSet(config.SupabaseClient), nil

	case config.DriverPostgres:
		if err := config.InitPostgres(s.PostgresURI); err != nil {
			return repositories.Set{}, fmt.Errorf("postgres init: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return config.ClosePostgres() })
		return pgrepo.NewSet(config.PostgresDB), nil

	case config.DriverMongo:
		if err := config.InitMongo(s.MongoURI); err != nil {
			return repositories.Set{}, fmt.Errorf("mongo init: %w", err)
		}
		a.closers = append(a.closers, config.CloseMongo)
		db := config.MongoClient.Database(s.MongoDB)
		if err := config.EnsureMongoIndexes(db); err != nil {
			return repositories.Set{}, fmt.Errorf("mongo indexes: %w", err)
		}
		return mongorepo.NewSet(db), nil
	}
	return repositories.Set{}, fmt.Errorf("unknown gateway driver %q", s.GatewayDriver)
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && a.Log != nil {
			a.Log.WithError(err).Warn("close failed")
		}
	}
	a.closers = nil
}
