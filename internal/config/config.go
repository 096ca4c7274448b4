package config

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Type     string `mapstructure:"type"` // sqlite or postgres
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslMode"`
	MaxConns int    `mapstructure:"maxConns"`
}

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwtSecret"`
	TokenDuration time.Duration `mapstructure:"tokenDuration"`
}

// StorageConfig points at an S3-compatible bucket. With no bucket set,
// uploads are kept inline as data URLs.
type StorageConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"accessKeyID"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	PublicBaseURL   string `mapstructure:"publicBaseURL"`
}

// SimulationConfig sets the artificial latency of the simulated services.
type SimulationConfig struct {
	AnalysisDelay time.Duration `mapstructure:"analysisDelay"`
	PaymentDelay  time.Duration `mapstructure:"paymentDelay"`
}

type Config struct {
	APIPort    int              `mapstructure:"apiPort"`
	LogLevel   string           `mapstructure:"logLevel"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	CORS       struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
	} `mapstructure:"cors"`
	Jobs struct {
		UsageRolloverInterval time.Duration `mapstructure:"usageRolloverInterval"`
	} `mapstructure:"jobs"`
}

// envKeys are bound explicitly so environment variables apply even when
// the key is absent from the file.
var envKeys = []string{
	"apiPort", "logLevel",
	"database.type", "database.path", "database.host", "database.port", "database.name",
	"database.user", "database.password", "database.sslMode", "database.maxConns",
	"auth.jwtSecret", "auth.tokenDuration",
	"storage.endpoint", "storage.region", "storage.bucket", "storage.accessKeyID",
	"storage.secretAccessKey", "storage.publicBaseURL",
	"simulation.analysisDelay", "simulation.paymentDelay",
	"cors.allowedOrigins", "jobs.usageRolloverInterval",
}

// LoadConfig loads the configuration from file and environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		log.Warnf("Could not read config file: %s. Using defaults or environment variables.", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	log.Debugf("Configuration loaded: port=%d db=%s storage=%q", cfg.APIPort, cfg.Database.Type, cfg.Storage.Bucket)
	return &cfg, nil
}

func isNotFound(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	// SetConfigFile reports a missing explicit path as a filesystem error
	return strings.Contains(err.Error(), "no such file or directory")
}

func applyDefaults(cfg *Config) {
	if cfg.APIPort == 0 {
		cfg.APIPort = 8081
		log.Println("APIPort not specified, using default 8081")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
		log.Println("Database type not specified, using sqlite")
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "/data/fitcoach.db"
		log.Println("Database path not specified, using default /data/fitcoach.db")
	}
	if cfg.Database.Type == "postgres" {
		if cfg.Database.Port == 0 {
			cfg.Database.Port = 5432
		}
		if cfg.Database.SSLMode == "" {
			cfg.Database.SSLMode = "disable"
		}
	}

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "change-me-in-production"
		log.Warn("auth.jwtSecret not specified, using an insecure development secret")
	}
	if cfg.Auth.TokenDuration <= 0 {
		cfg.Auth.TokenDuration = 24 * time.Hour
	}

	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "us-east-1"
	}

	if cfg.Simulation.AnalysisDelay == 0 {
		cfg.Simulation.AnalysisDelay = 3 * time.Second
	}
	if cfg.Simulation.PaymentDelay == 0 {
		cfg.Simulation.PaymentDelay = 3 * time.Second
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*", "capacitor://localhost"}
	}
	if cfg.Jobs.UsageRolloverInterval <= 0 {
		cfg.Jobs.UsageRolloverInterval = time.Hour
	}
}

// ConfigureLogging applies the configured log level.
func (c *Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
