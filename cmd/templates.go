package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/douhashi/issuelink/internal/template"
)

func newTemplatesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "リポジトリ内のIssueテンプレートを一覧表示",
		Long: `.github/ISSUE_TEMPLATE 配下のIssueテンプレートを、frontmatterの
メタデータ（名前・説明・ラベル）とともに一覧表示します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, dir)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "リポジトリルートのパス（省略時は設定値）")

	return cmd
}

func runTemplates(cmd *cobra.Command, dir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	if dir == "" {
		dir = cfg.Template.Dir
	}

	templates, err := template.List(dir)
	if err != nil {
		return fmt.Errorf("テンプレートの一覧取得に失敗: %w", err)
	}

	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Issueテンプレートが見つかりませんでした")
		return nil
	}

	for _, fm := range templates {
		line := fm.FileName
		if fm.Name != "" {
			line += "\t" + fm.Name
		}
		if fm.About != "" {
			line += "\t" + fm.About
		}
		if len(fm.Labels) > 0 {
			line += "\t[" + strings.Join(fm.Labels, ",") + "]"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	return nil
}
