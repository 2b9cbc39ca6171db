// Package issueurl はGitHubの "New Issue" ページをプレフィルするURLを組み立てる。
//
// GitHubは issues/new のクエリパラメータでフォームの各項目を事前入力できる。
// 例:
//
//	https://github.com/douhashi/issuelink/issues/new?title=Bug&labels=bug%2Curgent
//
// この仕組みを使うと、アプリケーションがスタックトレースや実行環境の情報を
// 埋め込んだ「Issueを開く」リンクをユーザーに提示できる。
package issueurl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// baseURLFormat はIssue作成ページのベースURL（owner, repositoryの順）
const baseURLFormat = "https://github.com/%s/%s/issues/new"

// paramOrder はクエリパラメータの出力順序。
// 設定した順序に関わらず、常にこの順序で出力する。
var paramOrder = []string{
	"title",
	"body",
	"template",
	"labels",
	"assignee",
	"milestone",
	"projects",
}

// params はプレフィル対象のフィールドを保持する構造体。
// nilは未設定を表し、URLから省略される。空文字列は設定済みとして扱い、
// 空のパラメータ値（name=）として出力される。
type params struct {
	Title     *string `url:"title,omitempty"`
	Body      *string `url:"body,omitempty"`
	Template  *string `url:"template,omitempty"`
	Labels    *string `url:"labels,omitempty"`
	Assignee  *string `url:"assignee,omitempty"`
	Milestone *string `url:"milestone,omitempty"`
	Projects  *string `url:"projects,omitempty"`
}

// Issue はプレフィルURLの組み立て対象となるIssueを表す。
// リポジトリのオーナーと名前は構築時に固定され、各フィールドは
// セッターで何度でも上書きできる。
type Issue struct {
	owner      string
	repository string
	params     params
}

// New は新しいIssueを作成する。
// repositoryまたはownerが空の場合はエラーを返す。
func New(repository, owner string) (*Issue, error) {
	if repository == "" {
		return nil, ErrEmptyRepository
	}
	if owner == "" {
		return nil, ErrEmptyOwner
	}

	return &Issue{
		owner:      owner,
		repository: repository,
	}, nil
}

// Owner はリポジトリのオーナー名を返す
func (i *Issue) Owner() string {
	return i.owner
}

// Repository はリポジトリ名を返す
func (i *Issue) Repository() string {
	return i.repository
}

// Title はIssueのタイトルを設定する
func (i *Issue) Title(title string) {
	i.params.Title = &title
}

// Body はIssueの本文を設定する
func (i *Issue) Body(body string) {
	i.params.Body = &body
}

// Template は使用するIssueテンプレートのファイル名を設定する。
// テンプレートは .github/ISSUE_TEMPLATE/<ファイル名> に置かれているもので、
// 値にはファイル名のみを指定する（例: bug_report.md）。
func (i *Issue) Template(template string) {
	i.params.Template = &template
}

// Labels はカンマ区切りのラベル名を設定する。
// 例: bug,production,high-severity
//
// この機能を使うにはIssue作成者にリポジトリへの書き込み権限が必要。
func (i *Issue) Labels(labels string) {
	i.params.Labels = &labels
}

// LabelList はラベル名のリストを設定する。
// 指定した順序を保ったままカンマ区切りで連結して保持する。
func (i *Issue) LabelList(labels ...string) {
	i.Labels(strings.Join(labels, ","))
}

// Assignee は担当者のユーザー名を設定する。
//
// この機能を使うにはIssue作成者にリポジトリへの書き込み権限が必要。
func (i *Issue) Assignee(assignee string) {
	i.params.Assignee = &assignee
}

// Milestone は紐付けるマイルストーンのID（番号）を設定する。
// IDはリポジトリの https://github.com/<owner>/<repository>/milestone/<ID>
// で確認できる。
//
// この機能を使うにはIssue作成者にリポジトリへの書き込み権限が必要。
func (i *Issue) Milestone(milestone string) {
	i.params.Milestone = &milestone
}

// Projects は紐付けるプロジェクトのID（番号）を設定する。
// 複数指定する場合はカンマ区切り。
//
// この機能を使うにはIssue作成者にリポジトリへの書き込み権限が必要。
func (i *Issue) Projects(projects string) {
	i.params.Projects = &projects
}

// IsSet は指定した名前のパラメータが設定済みかどうかを返す。
// 名前はクエリパラメータ名（title, body, template, labels, assignee,
// milestone, projects）で指定する。
func (i *Issue) IsSet(name string) bool {
	vals, err := query.Values(i.params)
	if err != nil {
		return false
	}
	return vals.Has(name)
}

// URL は現在の状態からプレフィルURLを生成する。
// 設定済みのフィールドのみを固定順序で出力し、値はフォーム形式で
// パーセントエンコードする（スペースは + になる）。
// 状態を変更しないため、同じ状態で何度呼んでも同じ文字列を返す。
func (i *Issue) URL() (string, error) {
	base := fmt.Sprintf(baseURLFormat, i.owner, i.repository)

	vals, err := query.Values(i.params)
	if err != nil {
		return "", &URLError{Err: err}
	}

	if len(vals) == 0 {
		return base, nil
	}

	var b strings.Builder
	b.WriteString(base)
	sep := "?"
	for _, name := range paramOrder {
		if !vals.Has(name) {
			continue
		}
		b.WriteString(sep)
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(vals.Get(name)))
		sep = "&"
	}

	return b.String(), nil
}
