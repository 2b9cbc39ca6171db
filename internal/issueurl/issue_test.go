package issueurl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// GitHubのIssueプレフィルURLの期待値（エンコード規約の検証用フィクスチャ）
	githubIssueLink = "https://github.com/EstebanBorai/github-issue-url/issues/new?title=Null%3A+The+Billion+Dollar+Mistake&body=Null+is+a+flag.+It+represents+different+situations+depending+on+the+context+in+which+it+is+used+and+invoked.+This+yields+the+most+serious+error+in+software+development%3A+Coupling+a+hidden+decision+in+the+contract+between+an+object+and+who+uses+it.&template=bug_report.md&labels=bug%2Cproduction%2Chigh-severity&assignee=EstebanBorai&milestone=1&projects=1"

	sampleIssueBody = "Null is a flag. It represents different situations depending on the context in which it is used and invoked. This yields the most serious error in software development: Coupling a hidden decision in the contract between an object and who uses it."
)

func TestNew(t *testing.T) {
	t.Run("正常系: オーナーとリポジトリ名を指定して作成できる", func(t *testing.T) {
		issue, err := New("issuelink", "douhashi")
		require.NoError(t, err)
		require.NotNil(t, issue)

		assert.Equal(t, "douhashi", issue.Owner())
		assert.Equal(t, "issuelink", issue.Repository())

		// 作成直後はすべてのフィールドが未設定
		for _, name := range paramOrder {
			assert.False(t, issue.IsSet(name), "param %s should be unset", name)
		}
	})

	t.Run("異常系: リポジトリ名が空の場合はエラー", func(t *testing.T) {
		issue, err := New("", "douhashi")
		assert.Nil(t, issue)
		assert.ErrorIs(t, err, ErrEmptyRepository)
		assert.Equal(t, "repository name is not defined", err.Error())
	})

	t.Run("異常系: オーナー名が空の場合はエラー", func(t *testing.T) {
		issue, err := New("issuelink", "")
		assert.Nil(t, issue)
		assert.ErrorIs(t, err, ErrEmptyOwner)
		assert.Equal(t, "repository owner is not defined", err.Error())
	})

	t.Run("異常系: 両方が空の場合はリポジトリ名のエラーを返す", func(t *testing.T) {
		issue, err := New("", "")
		assert.Nil(t, issue)
		assert.ErrorIs(t, err, ErrEmptyRepository)
	})
}

func TestIssue_URL(t *testing.T) {
	t.Run("正常系: 全フィールドを設定したURLを生成できる", func(t *testing.T) {
		issue, err := New("github-issue-url", "EstebanBorai")
		require.NoError(t, err)

		issue.Title("Null: The Billion Dollar Mistake")
		issue.Body(sampleIssueBody)
		issue.Template("bug_report.md")
		issue.Labels("bug,production,high-severity")
		issue.Assignee("EstebanBorai")
		issue.Milestone("1")
		issue.Projects("1")

		got, err := issue.URL()
		require.NoError(t, err)
		assert.Equal(t, githubIssueLink, got)
	})

	t.Run("正常系: フィールド未設定の場合はベースURLのみを返す", func(t *testing.T) {
		issue, err := New("x", "y")
		require.NoError(t, err)

		got, err := issue.URL()
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/y/x/issues/new", got)
	})

	t.Run("正常系: 設定順序に関わらずパラメータは固定順序で出力される", func(t *testing.T) {
		issue, err := New("issuelink", "douhashi")
		require.NoError(t, err)

		// paramOrderの逆順で設定する
		issue.Projects("2")
		issue.Milestone("1")
		issue.Assignee("douhashi")
		issue.Labels("bug")
		issue.Template("bug_report.md")
		issue.Body("body")
		issue.Title("title")

		got, err := issue.URL()
		require.NoError(t, err)
		assert.Equal(t,
			"https://github.com/douhashi/issuelink/issues/new?title=title&body=body&template=bug_report.md&labels=bug&assignee=douhashi&milestone=1&projects=2",
			got)
	})

	t.Run("正常系: 同じ状態での呼び出しは同じ結果を返す", func(t *testing.T) {
		issue, err := New("issuelink", "douhashi")
		require.NoError(t, err)
		issue.Title("idempotent")

		first, err := issue.URL()
		require.NoError(t, err)
		second, err := issue.URL()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("正常系: 同じフィールドの再設定は最後の値が有効", func(t *testing.T) {
		issue, err := New("issuelink", "douhashi")
		require.NoError(t, err)

		issue.Title("first")
		issue.Title("second")

		got, err := issue.URL()
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/douhashi/issuelink/issues/new?title=second", got)
	})

	t.Run("正常系: 空文字列の設定は未設定とは区別され空値として出力される", func(t *testing.T) {
		issue, err := New("issuelink", "douhashi")
		require.NoError(t, err)

		issue.Title("")

		assert.True(t, issue.IsSet("title"))
		got, err := issue.URL()
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/douhashi/issuelink/issues/new?title=", got)
	})

	t.Run("正常系: URL生成後もセッターは有効で次回のURLに反映される", func(t *testing.T) {
		issue, err := New("issuelink", "douhashi")
		require.NoError(t, err)

		issue.Title("before")
		_, err = issue.URL()
		require.NoError(t, err)

		issue.Title("after")
		got, err := issue.URL()
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/douhashi/issuelink/issues/new?title=after", got)
	})
}

func TestIssue_Setters(t *testing.T) {
	tests := []struct {
		name      string
		set       func(*Issue)
		wantParam string
		wantValue string
	}{
		{
			name:      "title: スペースとコロンがエンコードされる",
			set:       func(i *Issue) { i.Title("Bug: crash on startup") },
			wantParam: "title",
			wantValue: "Bug%3A+crash+on+startup",
		},
		{
			name:      "body: 改行がエンコードされる",
			set:       func(i *Issue) { i.Body("line1\nline2") },
			wantParam: "body",
			wantValue: "line1%0Aline2",
		},
		{
			name:      "template: ファイル名はそのまま出力される",
			set:       func(i *Issue) { i.Template("bug_report.md") },
			wantParam: "template",
			wantValue: "bug_report.md",
		},
		{
			name:      "labels: カンマは%2Cにエンコードされる",
			set:       func(i *Issue) { i.Labels("bug,production") },
			wantParam: "labels",
			wantValue: "bug%2Cproduction",
		},
		{
			name:      "labels: リスト指定は順序を保ってカンマ区切りになる",
			set:       func(i *Issue) { i.LabelList("bug", "production", "high-severity") },
			wantParam: "labels",
			wantValue: "bug%2Cproduction%2Chigh-severity",
		},
		{
			name:      "assignee: ユーザー名を設定できる",
			set:       func(i *Issue) { i.Assignee("douhashi") },
			wantParam: "assignee",
			wantValue: "douhashi",
		},
		{
			name:      "milestone: 番号を文字列として設定できる",
			set:       func(i *Issue) { i.Milestone("1") },
			wantParam: "milestone",
			wantValue: "1",
		},
		{
			name:      "projects: 番号を文字列として設定できる",
			set:       func(i *Issue) { i.Projects("1") },
			wantParam: "projects",
			wantValue: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue, err := New("issuelink", "douhashi")
			require.NoError(t, err)

			tt.set(issue)

			// 対象フィールドのみが設定されている
			for _, name := range paramOrder {
				if name == tt.wantParam {
					assert.True(t, issue.IsSet(name))
				} else {
					assert.False(t, issue.IsSet(name), "param %s should be unset", name)
				}
			}

			got, err := issue.URL()
			require.NoError(t, err)
			assert.Equal(t,
				"https://github.com/douhashi/issuelink/issues/new?"+tt.wantParam+"="+tt.wantValue,
				got)
		})
	}
}

func TestURLError(t *testing.T) {
	t.Run("正常系: 元のエラーを保持してUnwrapできる", func(t *testing.T) {
		cause := errors.New("boom")
		err := &URLError{Err: cause}

		assert.Equal(t, "failed to build issue URL: boom", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}
