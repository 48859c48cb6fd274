// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stsysd/dpsapi/config"
	"github.com/stsysd/dpsapi/logging"
	"go.uber.org/zap"
)

// portFlag は PORT 環境変数を上書きする --port フラグの値です。
var portFlag string

var rootCmd = &cobra.Command{
	Use:   "dpsapi",
	Short: "Projects and reports REST API backed by SQLite",
	// サブコマンド無しで起動した場合はサーバーを起動する
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "HTTP port (overrides PORT)")
}

// loadConfig は環境変数とフラグから設定を組み立てます。
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}
	return cfg, nil
}

// newLogger は設定に従ってロガーを生成します。
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
