package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config はアプリケーション全体の設定
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Template TemplateConfig `mapstructure:"template"`
}

// DefaultsConfig は生成するURLに適用する既定値の設定
type DefaultsConfig struct {
	Owner      string   `mapstructure:"owner"`
	Repository string   `mapstructure:"repository"`
	Template   string   `mapstructure:"template"`
	Labels     []string `mapstructure:"labels"`
	Assignee   string   `mapstructure:"assignee"`
	Milestone  string   `mapstructure:"milestone"`
	Projects   string   `mapstructure:"projects"`
}

// TemplateConfig はIssueテンプレート関連の設定
type TemplateConfig struct {
	// Dir は .github/ISSUE_TEMPLATE を探すリポジトリルート
	Dir string `mapstructure:"dir"`
	// UseFrontmatter はテンプレートのfrontmatterで未設定フィールドを
	// 補完するかどうか
	UseFrontmatter bool `mapstructure:"use_frontmatter"`
}

// NewConfig は新しいConfigを作成する
func NewConfig() *Config {
	return &Config{
		Template: TemplateConfig{
			Dir: ".",
		},
	}
}

// Load は設定ファイルから設定を読み込む
func (c *Config) Load(configPath string) error {
	v := viper.New()

	// 設定ファイルのパスを設定
	v.SetConfigFile(configPath)

	// 環境変数の設定
	v.SetEnvPrefix("ISSUELINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// デフォルト値の設定
	v.SetDefault("template.dir", ".")
	v.SetDefault("template.use_frontmatter", false)

	// 設定ファイルを読み込む
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	// 設定を構造体にマッピング
	if err := v.Unmarshal(c); err != nil {
		return err
	}

	c.applyEnvironment()

	return nil
}

// LoadOrDefault は設定ファイルを読み込み、失敗した場合はデフォルト値を使用する
func (c *Config) LoadOrDefault(configPath string) {
	// ファイルが存在しない場合はデフォルト値と環境変数のみを使用
	if configPath == "" {
		c.applyEnvironment()
		return
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		c.applyEnvironment()
		return
	}

	// 設定ファイルを読み込む（エラー時はデフォルト値のまま）
	if err := c.Load(configPath); err != nil {
		c.applyEnvironment()
	}
}

// applyEnvironment はGitHub Actionsが提供するGITHUB_REPOSITORY
// （owner/repo形式）を既定値として取り込む。設定済みの値は上書きしない。
func (c *Config) applyEnvironment() {
	if c.Defaults.Owner != "" || c.Defaults.Repository != "" {
		return
	}

	slug := os.Getenv("GITHUB_REPOSITORY")
	if slug == "" {
		return
	}

	owner, repo, err := SplitSlug(slug)
	if err != nil {
		return
	}

	c.Defaults.Owner = owner
	c.Defaults.Repository = repo
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// テンプレートディレクトリが空の場合はカレントディレクトリを使用
	if c.Template.Dir == "" {
		c.Template.Dir = "."
	}

	// オーナーとリポジトリは片方だけの指定を許可しない
	if (c.Defaults.Owner == "") != (c.Defaults.Repository == "") {
		return fmt.Errorf("defaults.owner and defaults.repository must be set together")
	}

	return nil
}

// SplitSlug はowner/repo形式の文字列をオーナー名とリポジトリ名に分割する
func SplitSlug(slug string) (owner, repo string, err error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository format %q: expected owner/repo", slug)
	}
	return parts[0], parts[1], nil
}
