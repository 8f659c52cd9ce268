// Package db はデータベース接続とマイグレーションを提供します。
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrUnsupportedDriver is returned for a DB_DRIVER other than postgres or sqlite.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// retryInterval は接続リトライの間隔です。
var retryInterval = 3 * time.Second

// Config はデータベース接続設定です。
type Config struct {
	Driver   string
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
	Path     string // sqlite only
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:   os.Getenv("DB_DRIVER"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
		Path:     os.Getenv("DB_PATH"),
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	if cfg.Path == "" {
		cfg.Path = "candidates.db"
	}
	return cfg
}

// BuildDSN はドライバーに応じたDSN文字列を生成します。
// SQLiteでは外部キー制約を常に有効にします。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.Path + "?_foreign_keys=1"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// Dialector はドライバー名からGORMのDialectorを返します。
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// ConnectWithRetry はtimeoutに達するまでopenerによる接続を繰り返します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener func(dsn string) (*gorm.DB, error)) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// OpenDB は設定に従って接続を確立します。
// 一意制約違反などはgorm.ErrDuplicatedKeyに変換されます。
func OpenDB(cfg Config) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)
	if _, err := Dialector(cfg.Driver, dsn); err != nil {
		return nil, err
	}
	return ConnectWithRetry(dsn, 60*time.Second, func(dsn string) (*gorm.DB, error) {
		dialector, _ := Dialector(cfg.Driver, dsn)
		return gorm.Open(dialector, &gorm.Config{TranslateError: true})
	})
}

// Migrate はモデルのテーブルを作成・更新します。
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
