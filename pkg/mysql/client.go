package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config 定義 MySQL 連線配置
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// DSN 組出 go-sql-driver 格式的連線字串
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Client 封裝 gorm.DB
type Client struct {
	db *gorm.DB
}

// NewClient 建立 MySQL 連線
//
// 參數:
//
//	cfg: Config - 連線配置
//
// 回傳值:
//
//	*Client: 封裝後的客戶端
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config) (*Client, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Client{db: db}, nil
}

// NewClientWithDB 以既有的 gorm.DB 建立 Client (測試用)
func NewClientWithDB(db *gorm.DB) *Client {
	return &Client{db: db}
}

// DB 回傳底層 gorm.DB
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Close 關閉連線池
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
