package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/douhashi/issuelink/internal/config"
	"github.com/douhashi/issuelink/internal/logger"
	"github.com/douhashi/issuelink/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	rootCmd *cobra.Command
	appLog  logger.Logger
)

func init() {
	rootCmd = NewRootCmd()
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	// サブコマンドを追加
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newTemplatesCmd())
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issuelink",
		Short: "GitHubのIssue作成ページをプレフィルするURLを生成",
		Long: `issuelinkは、タイトル・本文・ラベルなどを事前入力した状態で
GitHubの "New Issue" ページを開くためのURLを生成するCLIツールです。`,
		Version: version.Get().Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// ロガーの初期化
			if verbose {
				os.Setenv("DEBUG", "true")
			}
			var err error
			appLog, err = logger.NewFromEnv()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")

	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig は設定ファイルを読み込む。--config未指定の場合は
// ~/.config/issuelink/issuelink.yml を探し、見つからなければ
// デフォルト値を使用する。
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()

	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".config", "issuelink", "issuelink.yml")
		}
	}

	cfg.LoadOrDefault(path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
