package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Host       string
	Port       int
	Env        string
	UploadsDir string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ReportCacheTTL time.Duration
	SectorCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

// AnalysisConfig - параметры анализа по умолчанию: число сэмплов на
// сектор, радиальная полоса сэмплирования и гранулярность разбиения.
type AnalysisConfig struct {
	SamplesPerSector   int
	InnerRadiusFrac    float64
	OuterRadiusFrac    float64
	DefaultGranularity int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:       viper.GetString("API_HOST"),
			Port:       viper.GetInt("API_PORT"),
			Env:        viper.GetString("API_ENV"),
			UploadsDir: viper.GetString("UPLOADS_DIR"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ReportCacheTTL: time.Duration(viper.GetInt("REPORT_CACHE_TTL")) * time.Second,
			SectorCacheTTL: time.Duration(viper.GetInt("SECTOR_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
		Analysis: AnalysisConfig{
			SamplesPerSector:   viper.GetInt("ANALYSIS_SAMPLES_PER_SECTOR"),
			InnerRadiusFrac:    viper.GetFloat64("ANALYSIS_INNER_RADIUS_FRAC"),
			OuterRadiusFrac:    viper.GetFloat64("ANALYSIS_OUTER_RADIUS_FRAC"),
			DefaultGranularity: viper.GetInt("ANALYSIS_DEFAULT_GRANULARITY"),
		},
	}

	// Set default values if not provided
	if cfg.Server.UploadsDir == "" {
		cfg.Server.UploadsDir = "static/uploads"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "analysis-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Cache.ReportCacheTTL == 0 {
		cfg.Cache.ReportCacheTTL = time.Hour
	}
	if cfg.Cache.SectorCacheTTL == 0 {
		cfg.Cache.SectorCacheTTL = 24 * time.Hour
	}
	if cfg.Analysis.SamplesPerSector == 0 {
		cfg.Analysis.SamplesPerSector = 256
	}
	if cfg.Analysis.InnerRadiusFrac == 0 {
		cfg.Analysis.InnerRadiusFrac = 0.2
	}
	if cfg.Analysis.OuterRadiusFrac == 0 {
		cfg.Analysis.OuterRadiusFrac = 1.0
	}
	if cfg.Analysis.DefaultGranularity == 0 {
		cfg.Analysis.DefaultGranularity = 32
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
