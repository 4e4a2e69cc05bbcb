package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"2"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME" default:"Clockwise"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable         bool `envconfig:"ENABLE"`
			MaxRequests    int  `envconfig:"MAX_REQUESTS" default:"120"`
			WindowSeconds  int  `envconfig:"WINDOW_SECONDS" default:"60"`
			MemoryCapacity int  `envconfig:"MEMORY_CAPACITY" default:"8192"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Session struct {
		Store          string `envconfig:"STORE" default:"memory"`
		CookieName     string `envconfig:"COOKIE_NAME" default:"clockwise_session"`
		SecureCookie   bool   `envconfig:"SECURE_COOKIE"`
		Secret         string `envconfig:"SECRET"`
		TTLMinutes     int    `envconfig:"TTL_MINUTES" default:"720"`
		MemoryCapacity int    `envconfig:"MEMORY_CAPACITY" default:"4096"`
	} `envconfig:"SESSION"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

// SessionTTLSeconds is the idle lifetime of a stored session.
func (c *Config) SessionTTLSeconds() int {
	if c.Session.TTLMinutes <= 0 {
		return 0
	}

	return c.Session.TTLMinutes * 60
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		if err = envconfig.Process("", &conf); err != nil {
			err = fmt.Errorf("processing environment variables: %w", err)

			return
		}

		initialized = true

		log.Info().Str("session_store", conf.Session.Store).Msg("Service configuration initialized successfully")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
