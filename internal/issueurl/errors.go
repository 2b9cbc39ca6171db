package issueurl

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOwner はリポジトリのオーナー名が空の場合のエラー
	ErrEmptyOwner = errors.New("repository owner is not defined")
	// ErrEmptyRepository はリポジトリ名が空の場合のエラー
	ErrEmptyRepository = errors.New("repository name is not defined")
)

// URLError はURL生成時のエンコード失敗を表すエラー
type URLError struct {
	Err error
}

// Error はerrorインターフェースを実装する
func (e *URLError) Error() string {
	return fmt.Sprintf("failed to build issue URL: %v", e.Err)
}

// Unwrap は元のエラーを返す
func (e *URLError) Unwrap() error {
	return e.Err
}
