package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yoockh/jobboard/config"
	"github.com/yoockh/jobboard/internal/app"
	"github.com/yoockh/jobboard/internal/logger"
	"github.com/yoockh/jobboard/internal/models"
)

var rootCmd = &cobra.Command{
	Use:   "jobboard",
	Short: "Operate the job board data store",
	Long: `jobboard talks to the same data store as the HTTP server.
It can check the connection, seed sample companies and jobs, edit a
candidate profile and submit applications on a candidate's behalf.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		settings, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		log := logger.NewWithLevel(settings.LogLevel)
		log.SetOutput(cmd.ErrOrStderr())

		a, err := app.New(cmd.Context(), settings, log)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		opened = a
		cmd.SetContext(app.WithApp(cmd.Context(), a))
		return nil
	},
}

// opened is closed by Execute whether or not the command failed.
var opened *app.App

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("driver", "", "gateway driver: supabase, postgres or mongo (env GATEWAY_DRIVER)")
	pf.String("supabase-url", "", "Supabase project URL (env SUPABASE_URL)")
	pf.String("supabase-key", "", "Supabase API key (env SUPABASE_KEY)")
	pf.String("postgres-uri", "", "Postgres DSN (env POSTGRES_URI)")
	pf.String("mongo-uri", "", "MongoDB URI (env MONGO_URI)")
	pf.String("redis-addr", "", "Redis address for the listing cache (env REDIS_ADDR)")
	pf.String("log-level", "", "log level (env LOG_LEVEL)")

	bind := map[string]string{
		"gateway_driver": "driver",
		"supabase_url":   "supabase-url",
		"supabase_key":   "supabase-key",
		"postgres_uri":   "postgres-uri",
		"mongo_uri":      "mongo-uri",
		"redis_addr":     "redis-addr",
		"log_level":      "log-level",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.AddCommand(checkCmd, seedCmd, profileCmd, applyCmd)
}

// addIdentityFlags registers the flags that stand in for a signed-in user.
func addIdentityFlags(cmd *cobra.Command) {
	cmd.Flags().String("user-id", "", "auth user id (env JOBBOARD_USER_ID)")
	cmd.Flags().String("email", "", "auth email, used when the profile is first created (env JOBBOARD_EMAIL)")
	cmd.Flags().String("name", "", "display name, used when the profile is first created (env JOBBOARD_NAME)")
}

func identityFromFlags(cmd *cobra.Command) (models.Identity, error) {
	get := func(flag, env string) string {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			return v
		}
		return os.Getenv(env)
	}

	id := models.Identity{
		UserID:   get("user-id", "JOBBOARD_USER_ID"),
		Email:    get("email", "JOBBOARD_EMAIL"),
		FullName: get("name", "JOBBOARD_NAME"),
		Role:     models.RoleUser,
	}
	if id.UserID == "" {
		return id, fmt.Errorf("--user-id (or JOBBOARD_USER_ID) is required")
	}
	return id, nil
}

func mustApp(cmd *cobra.Command) *app.App {
	a := app.FromContext(cmd.Context())
	if a == nil {
		// PersistentPreRunE always sets it
		panic("app not initialized")
	}
	return a
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if opened != nil {
		opened.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		stop()
		os.Exit(1)
	}
}
