package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// DataFile - один исходный GeoJSON файл и штат, к которому он относится.
// Порядок файлов в списке определяет детерминированное разрешение
// дубликатов имён деревень: побеждает более поздний файл.
type DataFile struct {
	Name  string
	State string
}

type DataConfig struct {
	Dir          string
	VillageFiles []DataFile
	WaterFiles   []DataFile
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled   bool
	AdviceTTL time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Data: DataConfig{
			Dir: viper.GetString("DATA_DIR"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:   viper.GetBool("CACHE_ENABLED"),
			AdviceTTL: time.Duration(viper.GetInt("ADVICE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "./data"
	}
	if cfg.Cache.AdviceTTL == 0 {
		cfg.Cache.AdviceTTL = 1 * time.Hour
	}
	cfg.Data.VillageFiles = defaultVillageFiles()
	cfg.Data.WaterFiles = defaultWaterFiles()

	return cfg, nil
}

// defaultVillageFiles - исходные файлы деревень по штатам
func defaultVillageFiles() []DataFile {
	return []DataFile{
		{Name: "centroids_mp.geojson", State: "Madhya Pradesh"},
		{Name: "villages_od.geojson", State: "Odisha"},
		{Name: "villages_tl.geojson", State: "Telangana"},
		{Name: "villages_tp.geojson", State: "Tripura"},
	}
}

// defaultWaterFiles - исходные файлы водоёмов по штатам
func defaultWaterFiles() []DataFile {
	return []DataFile{
		{Name: "fixed_waterbodies.geojson", State: "Madhya Pradesh"},
		{Name: "fixed_waterbodies_od.geojson", State: "Odisha"},
		{Name: "fixed_waterbodies_tl.geojson", State: "Telangana"},
		{Name: "fixed_waterbodies_tp.geojson", State: "Tripura"},
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
