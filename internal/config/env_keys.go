package config

// Environment Variable Keys
const (
	// EnvAppEnv 定義應用程式執行環境 (local, dev, prod)
	EnvAppEnv = "APP_ENV"

	// EnvPort 定義 HTTP 服務 Port
	EnvPort = "PORT"

	// EnvAPIPrefix 定義被 mock 的 API 路徑前綴
	EnvAPIPrefix = "API_PREFIX"

	// EnvSeedFile 定義初始資料 JSON 檔路徑
	EnvSeedFile = "SEED_FILE"

	// EnvStorageDriver 定義持久化方式 (memory, badger, redis, mysql)
	EnvStorageDriver = "STORAGE_DRIVER"

	// EnvBadgerDir 定義 badger 資料目錄
	EnvBadgerDir = "BADGER_DIR"

	// EnvRedisAddr 定義 Redis 服務地址 (host:port)
	EnvRedisAddr = "REDIS_ADDR"

	// EnvRedisPassword 定義 Redis 密碼
	EnvRedisPassword = "REDIS_PASSWORD"

	// EnvRedisDB 定義 Redis DB 編號
	EnvRedisDB = "REDIS_DB"

	// EnvMySQLHost 定義 MySQL 主機
	EnvMySQLHost = "MYSQL_HOST"

	// EnvMySQLPort 定義 MySQL Port
	EnvMySQLPort = "MYSQL_PORT"

	// EnvMySQLUser 定義 MySQL 使用者
	EnvMySQLUser = "MYSQL_USER"

	// EnvMySQLPassword 定義 MySQL 密碼
	EnvMySQLPassword = "MYSQL_PASSWORD"

	// EnvMySQLDB 定義 MySQL 資料庫名稱
	EnvMySQLDB = "MYSQL_DB"

	// EnvEventsRedisChannel 定義事件發送的 Redis 頻道，空字串代表不發送
	EnvEventsRedisChannel = "EVENTS_REDIS_CHANNEL"
)
