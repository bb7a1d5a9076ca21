package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	// private values can be overridden with FORUM_<FIELD>, e.g. FORUM_JWT_KEY
	envPrefix = "forum"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	JwtTTL                time.Duration `yaml:"jwt_ttl" validate:"required"`
	LogLevel              string        `yaml:"log_level"`
	LogJSON               bool          `yaml:"log_json"`
	StorageDriver         string        `yaml:"storage_driver" validate:"omitempty,oneof=postgres memory"`
	ReplyFetchConcurrency int           `yaml:"reply_fetch_concurrency" validate:"gte=0"`
	SecureCookies         bool          `yaml:"secure_cookies"`
	HTTP                  HTTP          `yaml:"http"`
	// MemoryUsers seeds the users table of the memory driver
	MemoryUsers []MemoryUser `yaml:"memory_users" validate:"dive"`
}

type MemoryUser struct {
	Id       string `yaml:"id" validate:"required"`
	Username string `yaml:"username" validate:"required"`
}

type HTTP struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key" envconfig:"JWT_KEY" validate:"required"`
	Pg     Pg     `yaml:"pg" envconfig:"PG"`
}

type Pg struct {
	Host     string `yaml:"host" envconfig:"HOST"`
	Port     int    `yaml:"port" envconfig:"PORT"`
	User     string `yaml:"user" envconfig:"USER"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	Dbname   string `yaml:"dbname" envconfig:"DBNAME"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func (s *Config) setDefaults() {
	if s.Public.StorageDriver == "" {
		s.Public.StorageDriver = DriverPostgres
	}
	if s.Public.ReplyFetchConcurrency == 0 {
		s.Public.ReplyFetchConcurrency = 4
	}
	if s.Public.HTTP.Addr == "" {
		s.Public.HTTP.Addr = ":8080"
	}
	if s.Public.HTTP.ReadTimeout == 0 {
		s.Public.HTTP.ReadTimeout = 10 * time.Second
	}
	if s.Public.HTTP.WriteTimeout == 0 {
		s.Public.HTTP.WriteTimeout = 10 * time.Second
	}
}

// Validate checks required fields. Postgres credentials are required only for the postgres driver.
func (s *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(s.Public); err != nil {
		return fmt.Errorf("public config: %w", err)
	}
	if err := validate.Struct(s.Private); err != nil {
		return fmt.Errorf("private config: %w", err)
	}
	if s.Public.StorageDriver == DriverPostgres && (s.Private.Pg.Host == "" || s.Private.Pg.Dbname == "") {
		return fmt.Errorf("private config: pg.host and pg.dbname are required for the %s driver", DriverPostgres)
	}
	return nil
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides for private values and panics on invalid config.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if err := envconfig.Process(envPrefix, &private); err != nil {
		panic("can't apply environment overrides: " + err.Error())
	}

	cfg := &Config{Public: public, Private: private}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}
