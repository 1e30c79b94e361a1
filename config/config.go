package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Settings is the process configuration. Every key is read from the
// environment (upper-cased) and may be overridden by a bound CLI flag.
type Settings struct {
	GatewayDriver string `mapstructure:"gateway_driver"`

	SupabaseURL string `mapstructure:"supabase_url"`
	SupabaseKey string `mapstructure:"supabase_key"`
	PostgresURI string `mapstructure:"postgres_uri"`
	MongoURI    string `mapstructure:"mongo_uri"`
	MongoDB     string `mapstructure:"mongo_db"`

	RedisAddr    string `mapstructure:"redis_addr"`    // optional; enables the listing cache
	ResumeBucket string `mapstructure:"resume_bucket"` // optional; enables resume upload

	JWTSecret   string `mapstructure:"supabase_jwt_secret"`
	JWTIssuer   string `mapstructure:"supabase_jwt_issuer"`
	JWTAudience string `mapstructure:"supabase_jwt_audience"`

	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	Port               string `mapstructure:"port"`
	LogLevel           string `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gateway_driver", DriverSupabase)
	v.SetDefault("supabase_url", "")
	v.SetDefault("supabase_key", "")
	v.SetDefault("postgres_uri", "")
	v.SetDefault("mongo_uri", "")
	v.SetDefault("mongo_db", "jobboard")
	v.SetDefault("redis_addr", "")
	v.SetDefault("resume_bucket", "")
	v.SetDefault("supabase_jwt_secret", "")
	v.SetDefault("supabase_jwt_issuer", "")
	v.SetDefault("supabase_jwt_audience", "")
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
}

// Load reads Settings through v. Pass viper.GetViper() to pick up flags bound
// on the global instance.
func Load(v *viper.Viper) (*Settings, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)
	v.AutomaticEnv()

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	s.GatewayDriver = strings.ToLower(strings.TrimSpace(s.GatewayDriver))

	switch s.GatewayDriver {
	case DriverSupabase:
		if s.SupabaseURL == "" || s.SupabaseKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_KEY must be set for the %s driver", s.GatewayDriver)
		}
	case DriverPostgres:
		if s.PostgresURI == "" {
			return nil, fmt.Errorf("POSTGRES_URI must be set for the %s driver", s.GatewayDriver)
		}
	case DriverMongo:
		if s.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI must be set for the %s driver", s.GatewayDriver)
		}
	default:
		return nil, fmt.Errorf("unknown GATEWAY_DRIVER %q (want supabase, postgres or mongo)", s.GatewayDriver)
	}
	return s, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (s *Settings) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(s.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
