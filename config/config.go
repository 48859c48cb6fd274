// Package config はアプリケーション設定を管理します。
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAuthToken は AUTH_TOKEN_VALUE 未設定時に使われるトークンです。
const DefaultAuthToken = "Password123"

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string

	// SQLiteデータベースのファイル名
	DBFile string

	// HTTPサーバーのホストとポート
	Host string
	Port string

	// Authorizationヘッダーと照合する固定トークン
	AuthToken string

	// ログ設定
	LogLevel  string
	LogFormat string

	// HTTPサーバーのタイムアウト
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// ルートエンドポイントで返すバージョン
	Version string
}

// NewConfig は .env と環境変数から設定を読み込み、Configインスタンスを生成します。
// .env が無い場合は環境変数のみを使い、読み込めない .env はエラーにします。
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return &Config{
		DataDir:         getEnv("DPS_DATA_DIR", "db"),
		DBFile:          getEnv("DPS_DB_FILE", "db.sqlite3"),
		Host:            getEnv("DPS_HOST", ""),
		Port:            getEnv("PORT", "3000"),
		AuthToken:       getEnv("AUTH_TOKEN_VALUE", DefaultAuthToken),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ReadTimeout:     getDuration("DPS_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getDuration("DPS_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("DPS_SHUTDOWN_TIMEOUT", 5*time.Second),
		Version:         getEnv("DPS_VERSION", "unknown"),
	}, nil
}

// Addr はHTTPサーバーの待ち受けアドレスを返します。
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration は不正な値の場合にデフォルト値を返します。
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
