package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	t.Run("正常系: サブコマンドが登録されている", func(t *testing.T) {
		cmd := NewRootCmd()
		require.NotNil(t, cmd)
		assert.Equal(t, "issuelink", cmd.Use)

		var names []string
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		assert.Contains(t, names, "build")
		assert.Contains(t, names, "templates")
	})

	t.Run("正常系: ヘルプを表示できる", func(t *testing.T) {
		out, err := executeCommand(t, "--help")
		require.NoError(t, err)
		assert.Contains(t, out, "issuelink")
		assert.Contains(t, out, "build")
	})
}
