// Package config provides configuration management for ytclipper.
// Configuration is loaded from environment variables, optionally seeded from
// a .env file, with sensible defaults.
package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Default values
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 8790
	DefaultLogLevel     = "info"
	DefaultPlayerDomain = "www.youtube.com"
	DefaultVideo        = "https://www.youtube.com/watch?v=BYizgB2FcAQ"
	DefaultSessionTTL   = 120 // minutes
	DefaultEnvFile      = ".env"

	// Environment variable names
	EnvHost         = "YTCLIPPER_HOST"
	EnvPort         = "YTCLIPPER_PORT"
	EnvLogLevel     = "YTCLIPPER_LOG_LEVEL"
	EnvPlayerDomain = "YTCLIPPER_PLAYER_DOMAIN"
	EnvDefaultVideo = "YTCLIPPER_DEFAULT_VIDEO"
	EnvPublicURL    = "YTCLIPPER_PUBLIC_URL"
	EnvSessionKey   = "YTCLIPPER_SESSION_KEY"
	EnvSessionTTL   = "YTCLIPPER_SESSION_TTL"
	EnvHeadless     = "YTCLIPPER_HEADLESS"

	sessionKeyLength = 64
)

// Config defines the application configuration interface
type Config interface {
	Host() string
	Port() int
	Addr() string
	LogLevel() string
	PlayerDomain() string
	DefaultVideo() string
	PublicURL() string
	LocalURL() string
	SessionKey() []byte
	SessionTTL() time.Duration
	Headless() bool
}

// EnvConfig reads configuration from environment variables
type EnvConfig struct {
	host         string
	port         int
	logLevel     string
	playerDomain string
	defaultVideo string
	publicURL    string
	sessionKey   []byte
	sessionTTL   time.Duration
	headless     bool
}

// Load seeds the environment from envFile (if it exists) and then calls New.
// Variables already set in the environment take precedence over the file.
func Load(envFile string) (*EnvConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return New()
}

// New creates a new EnvConfig with defaults and environment variable overrides
func New() (*EnvConfig, error) {
	cfg := &EnvConfig{
		host:         DefaultHost,
		port:         DefaultPort,
		logLevel:     DefaultLogLevel,
		playerDomain: DefaultPlayerDomain,
		defaultVideo: DefaultVideo,
		sessionTTL:   DefaultSessionTTL * time.Minute,
		headless:     true,
	}

	if h := os.Getenv(EnvHost); h != "" {
		cfg.host = h
	}

	// Override port from environment
	if p := os.Getenv(EnvPort); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid %s: port must be between 1 and 65535", EnvPort)
		}
		cfg.port = port
	}

	if ll := os.Getenv(EnvLogLevel); ll != "" {
		cfg.logLevel = ll
	}

	if pd := os.Getenv(EnvPlayerDomain); pd != "" {
		cfg.playerDomain = strings.TrimSuffix(strings.TrimPrefix(pd, "https://"), "/")
	}

	if dv, ok := os.LookupEnv(EnvDefaultVideo); ok {
		cfg.defaultVideo = dv
	}

	cfg.publicURL = strings.TrimRight(os.Getenv(EnvPublicURL), "/")

	if ttl := os.Getenv(EnvSessionTTL); ttl != "" {
		minutes, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvSessionTTL, err)
		}
		if minutes < 1 {
			return nil, fmt.Errorf("invalid %s: must be at least 1 minute", EnvSessionTTL)
		}
		cfg.sessionTTL = time.Duration(minutes) * time.Minute
	}

	if hl := os.Getenv(EnvHeadless); hl != "" {
		headless, err := strconv.ParseBool(hl)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvHeadless, err)
		}
		cfg.headless = headless
	}

	// Sessions die with the process, so a random key is fine when none is set.
	if key := os.Getenv(EnvSessionKey); key != "" {
		cfg.sessionKey = []byte(key)
	} else {
		cfg.sessionKey = make([]byte, sessionKeyLength)
		if _, err := rand.Read(cfg.sessionKey); err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
	}

	return cfg, nil
}

// Host returns the interface the HTTP server binds to
func (c *EnvConfig) Host() string {
	return c.host
}

// Port returns the HTTP server port
func (c *EnvConfig) Port() int {
	return c.port
}

// Addr returns host:port for the HTTP listener
func (c *EnvConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// LogLevel returns the log level (debug, info, warn, error)
func (c *EnvConfig) LogLevel() string {
	return c.logLevel
}

// PlayerDomain returns the host serving the embeddable player
func (c *EnvConfig) PlayerDomain() string {
	return c.playerDomain
}

// DefaultVideo returns the video prefilled in new sessions
func (c *EnvConfig) DefaultVideo() string {
	return c.defaultVideo
}

// PublicURL returns the externally visible base URL used in copied links, or
// "" when unset. The HTTP server then derives it from each request.
func (c *EnvConfig) PublicURL() string {
	return c.publicURL
}

// LocalURL is PublicURL when set, otherwise the listener address.
func (c *EnvConfig) LocalURL() string {
	if c.publicURL != "" {
		return c.publicURL
	}
	return "http://" + c.Addr()
}

func (c *EnvConfig) SessionKey() []byte {
	return c.sessionKey
}

func (c *EnvConfig) SessionTTL() time.Duration {
	return c.sessionTTL
}

func (c *EnvConfig) Headless() bool {
	return c.headless
}

// Version information (set at build time via ldflags)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
