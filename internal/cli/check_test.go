package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rovo-lsp/internal/config"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckFileCleanSource(t *testing.T) {
	path := writeSource(t, t.TempDir(), "ok.rs", strings.Join([]string{
		"/// Get a user",
		"/// # Responses",
		"/// 200: Json<User> - The user",
		"/// # Path Parameters",
		"/// id: The identifier",
		"#[rovo]",
		"async fn get_user(Path(id): Path<u64>) -> Json<User> {}",
		"",
	}, "\n"))
	assert.NoError(t, checkFile(path, config.DefaultConfig()))
}

func TestCheckFileFailsOnFirstError(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.rs", strings.Join([]string{
		"/// # Responses",
		"/// 600: () - out of range",
		"/// 700: () - also bad, but never reached",
		"#[rovo]",
		"async fn bad() {}",
		"",
	}, "\n"))
	err := checkFile(path, config.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+":2:")
	assert.Contains(t, err.Error(), "Invalid HTTP status code: 600")
	assert.NotContains(t, err.Error(), "700")
}

func TestCheckFileWarningsDoNotFail(t *testing.T) {
	path := writeSource(t, t.TempDir(), "warn.rs", strings.Join([]string{
		"/// Get a user",
		"#[rovo]",
		"async fn get_user(Path(id): Path<u64>) -> Json<User> {}",
		"",
	}, "\n"))
	assert.NoError(t, checkFile(path, config.DefaultConfig()))
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.rs", "fn a() {}\n")
	writeSource(t, dir, "b.txt", "not rust\n")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeSource(t, sub, "c.rs", "fn c() {}\n")
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	writeSource(t, target, "gen.rs", "fn gen() {}\n")

	files, err := collectSourceFiles([]string{dir})
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, strings.HasSuffix(f, ".rs"))
		assert.NotContains(t, f, "target")
	}
}

func TestCollectSourceFilesMissingPath(t *testing.T) {
	_, err := collectSourceFiles([]string{filepath.Join(t.TempDir(), "ghost")})
	assert.Error(t, err)
}
