package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 持久化驅動
const (
	DriverMemory = "memory"
	DriverBadger = "badger"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
)

// Config 總配置結構
type Config struct {
	App     AppConfig     `yaml:"app"`
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	MySQL   MySQLConfig   `yaml:"mysql"`
	Events  EventsConfig  `yaml:"events"`
}

type AppConfig struct {
	Name string `yaml:"name"`
	Env  string `yaml:"env"`
	Port int    `yaml:"port"`
}

type APIConfig struct {
	Prefix         string   `yaml:"prefix"`    // 被 mock 的路徑前綴，預設 /api
	SeedFile       string   `yaml:"seed_file"` // 選填: 初始資料 JSON 檔
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type StorageConfig struct {
	Driver    string `yaml:"driver"`     // memory | badger | redis | mysql
	Key       string `yaml:"key"`        // 資料集存放的鍵名
	BadgerDir string `yaml:"badger_dir"` // badger 資料目錄
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type EventsConfig struct {
	Path            string `yaml:"path"`          // websocket 事件端點
	RedisChannel    string `yaml:"redis_channel"` // 空字串代表不發送到 Redis
	ReadBufferSize  int    `yaml:"read_buffer_size"`
	WriteBufferSize int    `yaml:"write_buffer_size"`
	PongWaitSec     int    `yaml:"pong_wait_sec"`
}

// Load 讀取設定檔
// 優先讀取 config/config.yaml，接著載入 .env (若存在)，最後使用環境變數覆蓋
func Load(configPath ...string) (*Config, error) {
	dir := "./config"
	if len(configPath) > 0 {
		dir = configPath[0]
	}
	fullPath := filepath.Join(dir, "config.yaml")

	cfg := defaults()

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", fullPath, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml at %s: %w", fullPath, err)
	}

	// .env 不存在時忽略；已存在的環境變數不會被覆寫
	_ = godotenv.Load()

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 檢查設定是否可用
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverBadger, DriverRedis, DriverMySQL:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == DriverBadger && c.Storage.BadgerDir == "" {
		return fmt.Errorf("storage.badger_dir is required for the badger driver")
	}
	if c.App.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.App.Port)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		App:     AppConfig{Name: "mockapi", Env: "local", Port: 8080},
		API:     APIConfig{Prefix: "/api"},
		Storage: StorageConfig{Driver: DriverMemory, Key: "mockapi:snapshot", BadgerDir: "./data/badger"},
		MySQL:   MySQLConfig{Port: 3306},
		Events:  EventsConfig{Path: "/events", PongWaitSec: 60},
	}
}

func overrideWithEnv(cfg *Config) error {
	// App
	if val := os.Getenv(EnvAppEnv); val != "" {
		cfg.App.Env = val
	}
	if val := os.Getenv(EnvPort); val != "" {
		p, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		cfg.App.Port = p
	}

	// API
	if val := os.Getenv(EnvAPIPrefix); val != "" {
		cfg.API.Prefix = val
	}
	if val := os.Getenv(EnvSeedFile); val != "" {
		cfg.API.SeedFile = val
	}

	// Storage
	if val := os.Getenv(EnvStorageDriver); val != "" {
		cfg.Storage.Driver = val
	}
	if val := os.Getenv(EnvBadgerDir); val != "" {
		cfg.Storage.BadgerDir = val
	}

	// Redis
	if val := os.Getenv(EnvRedisAddr); val != "" {
		cfg.Redis.Addr = val
	}
	if val := os.Getenv(EnvRedisPassword); val != "" {
		cfg.Redis.Password = val
	}
	if val := os.Getenv(EnvRedisDB); val != "" {
		db, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRedisDB, err)
		}
		cfg.Redis.DB = db
	}

	// MySQL
	if val := os.Getenv(EnvMySQLHost); val != "" {
		cfg.MySQL.Host = val
	}
	if val := os.Getenv(EnvMySQLPort); val != "" {
		p, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMySQLPort, err)
		}
		cfg.MySQL.Port = p
	}
	if val := os.Getenv(EnvMySQLUser); val != "" {
		cfg.MySQL.User = val
	}
	if val := os.Getenv(EnvMySQLPassword); val != "" {
		cfg.MySQL.Password = val
	}
	if val := os.Getenv(EnvMySQLDB); val != "" {
		cfg.MySQL.DBName = val
	}

	// Events
	if val := os.Getenv(EnvEventsRedisChannel); val != "" {
		cfg.Events.RedisChannel = val
	}
	return nil
}
