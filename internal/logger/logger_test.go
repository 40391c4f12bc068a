package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	cleanup, err := Setup(Config{Dir: dir})
	require.NoError(t, err)

	L().Info("test.entry", "key", "value")
	path := Path()
	assert.Equal(t, filepath.Join(dir, "logs", "arquetipo.log"), path)

	require.NoError(t, cleanup())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"test.entry"`)
	assert.Contains(t, string(content), `"key":"value"`)
}

func TestCleanupRestoresDiscard(t *testing.T) {
	dir := t.TempDir()

	cleanup, err := Setup(Config{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, cleanup())

	assert.Empty(t, Path())
	// Logging after cleanup must not panic or resurrect the file.
	L().Info("after.cleanup")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "arquetipo.log"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(content), "after.cleanup"))
}
