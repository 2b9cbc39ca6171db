// Package template はリポジトリ内のIssueテンプレートのfrontmatterを扱う。
//
// GitHubのIssueテンプレートは .github/ISSUE_TEMPLATE/ 配下のMarkdownファイルで、
// 先頭のYAML frontmatterにname, about, title, labels, assigneesなどの
// メタデータを持つ。このパッケージはメタデータの読み取りのみを行い、
// テンプレート本文の検証は行わない。
package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/douhashi/issuelink/internal/issueurl"
)

// Dir はリポジトリルートから見たIssueテンプレートの配置ディレクトリ
const Dir = ".github/ISSUE_TEMPLATE"

// ErrNoFrontmatter はテンプレートにfrontmatterが存在しない場合のエラー
var ErrNoFrontmatter = errors.New("template has no frontmatter")

// LabelList はfrontmatterのラベル指定を表す。
// GitHubはYAMLのリスト形式とカンマ区切りの文字列形式の両方を受け付けるため、
// どちらの形式でもデコードできるようにする。
type LabelList []string

// UnmarshalYAML はyaml.Unmarshalerを実装する
func (l *LabelList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = nil
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				*l = append(*l, item)
			}
		}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("unexpected YAML node kind for labels: %d", value.Kind)
	}
}

// Frontmatter はIssueテンプレートのメタデータを表す
type Frontmatter struct {
	Name      string    `yaml:"name"`
	About     string    `yaml:"about"`
	Title     string    `yaml:"title"`
	Labels    LabelList `yaml:"labels"`
	Assignees LabelList `yaml:"assignees"`
	FileName  string    `yaml:"-"`
}

// Parse はテンプレートファイルの内容から先頭のfrontmatterブロックを
// デコードする。frontmatterが存在しない場合はErrNoFrontmatterを返す。
func Parse(data []byte) (*Frontmatter, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !strings.HasPrefix(content, "---\n") {
		return nil, ErrNoFrontmatter
	}

	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, ErrNoFrontmatter
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil, fmt.Errorf("failed to parse template frontmatter: %w", err)
	}

	return &fm, nil
}

// Load は指定ディレクトリのテンプレートファイルを読み込み、
// frontmatterを返す。dirはリポジトリルート（.github/ の親）を指定する。
func Load(dir, name string) (*Frontmatter, error) {
	path := filepath.Join(dir, Dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	fm, err := Parse(data)
	if err != nil {
		return nil, err
	}

	fm.FileName = name
	return fm, nil
}

// List はテンプレートディレクトリ内のすべてのテンプレートの
// frontmatterをファイル名順で返す。frontmatterを持たないファイルは
// 無視する。
func List(dir string) ([]*Frontmatter, error) {
	entries, err := os.ReadDir(filepath.Join(dir, Dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read template directory: %w", err)
	}

	var templates []*Frontmatter
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".md" && ext != ".yml" && ext != ".yaml" {
			continue
		}

		fm, err := Load(dir, entry.Name())
		if err != nil {
			continue
		}
		templates = append(templates, fm)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].FileName < templates[j].FileName
	})

	return templates, nil
}

// Apply はfrontmatterの値をIssueの未設定フィールドに反映する。
// 呼び出し側が明示的に設定したフィールドは上書きしない。
// assigneeは単一指定のため先頭のみを使用する。
func (f *Frontmatter) Apply(issue *issueurl.Issue) {
	if f.Title != "" && !issue.IsSet("title") {
		issue.Title(f.Title)
	}
	if len(f.Labels) > 0 && !issue.IsSet("labels") {
		issue.LabelList(f.Labels...)
	}
	if len(f.Assignees) > 0 && !issue.IsSet("assignee") {
		issue.Assignee(f.Assignees[0])
	}
}
