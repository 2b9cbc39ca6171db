package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douhashi/issuelink/internal/config"
	"github.com/douhashi/issuelink/internal/issueurl"
	"github.com/douhashi/issuelink/internal/template"
)

// buildOptions はbuildコマンドのフラグ値を保持する
type buildOptions struct {
	repo           string
	title          string
	body           string
	template       string
	labels         []string
	assignee       string
	milestone      string
	projects       string
	useFrontmatter bool
}

func newBuildCmd() *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build [owner/repo]",
		Short: "プレフィルURLを生成して出力",
		Long: `指定したフィールドを事前入力した状態でGitHubのIssue作成ページを
開くURLを生成し、標準出力に書き出します。

対象リポジトリは引数のowner/repo、--repoフラグ、設定ファイルのdefaults、
GITHUB_REPOSITORY環境変数の順で解決します。`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repo, "repo", "R", "", "対象リポジトリ（owner/repo形式）")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Issueのタイトル")
	cmd.Flags().StringVarP(&opts.body, "body", "b", "", "Issueの本文")
	cmd.Flags().StringVar(&opts.template, "template", "", "Issueテンプレートのファイル名")
	cmd.Flags().StringSliceVarP(&opts.labels, "label", "l", nil, "付与するラベル（複数指定可）")
	cmd.Flags().StringVarP(&opts.assignee, "assignee", "a", "", "担当者のユーザー名")
	cmd.Flags().StringVarP(&opts.milestone, "milestone", "m", "", "マイルストーンのID")
	cmd.Flags().StringVarP(&opts.projects, "projects", "p", "", "プロジェクトのID")
	cmd.Flags().BoolVar(&opts.useFrontmatter, "use-frontmatter", false, "テンプレートのfrontmatterで未設定フィールドを補完")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string, opts *buildOptions) error {
	// 1. 設定を読み込む
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	// 2. 対象リポジトリを解決する
	owner, repo, err := resolveRepo(args, opts.repo, cfg)
	if err != nil {
		return err
	}

	issue, err := issueurl.New(repo, owner)
	if err != nil {
		return err
	}

	// 3. フラグと設定ファイルの既定値からフィールドを設定する。
	// 明示的に指定されたフラグは空文字列でも有効なため、Changedで判定する。
	flags := cmd.Flags()
	if flags.Changed("title") {
		issue.Title(opts.title)
	}
	if flags.Changed("body") {
		issue.Body(opts.body)
	}

	templateName := ""
	switch {
	case flags.Changed("template"):
		templateName = opts.template
		issue.Template(templateName)
	case cfg.Defaults.Template != "":
		templateName = cfg.Defaults.Template
		issue.Template(templateName)
	}

	switch {
	case flags.Changed("label"):
		issue.LabelList(opts.labels...)
	case len(cfg.Defaults.Labels) > 0:
		issue.LabelList(cfg.Defaults.Labels...)
	}

	switch {
	case flags.Changed("assignee"):
		issue.Assignee(opts.assignee)
	case cfg.Defaults.Assignee != "":
		issue.Assignee(cfg.Defaults.Assignee)
	}

	switch {
	case flags.Changed("milestone"):
		issue.Milestone(opts.milestone)
	case cfg.Defaults.Milestone != "":
		issue.Milestone(cfg.Defaults.Milestone)
	}

	switch {
	case flags.Changed("projects"):
		issue.Projects(opts.projects)
	case cfg.Defaults.Projects != "":
		issue.Projects(cfg.Defaults.Projects)
	}

	// 4. テンプレートのfrontmatterで未設定フィールドを補完する
	if (opts.useFrontmatter || cfg.Template.UseFrontmatter) && templateName != "" {
		fm, err := template.Load(cfg.Template.Dir, templateName)
		if err != nil {
			appLog.Warn("テンプレートのfrontmatterを読み込めませんでした",
				"template", templateName,
				"dir", cfg.Template.Dir,
				"error", err)
		} else {
			fm.Apply(issue)
		}
	}

	// 5. URLを生成して出力する
	url, err := issue.URL()
	if err != nil {
		return fmt.Errorf("URLの生成に失敗: %w", err)
	}

	appLog.Debug("URLを生成しました", "owner", owner, "repository", repo)
	fmt.Fprintln(cmd.OutOrStdout(), url)

	return nil
}

// resolveRepo は対象リポジトリのオーナー名とリポジトリ名を解決する
func resolveRepo(args []string, repoFlag string, cfg *config.Config) (owner, repo string, err error) {
	switch {
	case len(args) == 1:
		return config.SplitSlug(args[0])
	case repoFlag != "":
		return config.SplitSlug(repoFlag)
	case cfg.Defaults.Owner != "" && cfg.Defaults.Repository != "":
		return cfg.Defaults.Owner, cfg.Defaults.Repository, nil
	default:
		return "", "", fmt.Errorf("対象リポジトリが指定されていません（owner/repo引数、--repo、設定ファイルのいずれかで指定してください）")
	}
}
