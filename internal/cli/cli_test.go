package cli_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/iw2rmb/codepad/internal/cli"
	"github.com/iw2rmb/codepad/snippet"
)

// isolate points config and snippet lookups at a temp dir and returns the
// snippets directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("NO_COLOR", "1")
	// Empty values count as unset.
	for _, k := range []string{"LANGUAGE", "RUNNER_ENDPOINT", "SNIPPETS_DIR", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv("CODEPAD_"+k, "")
	}
	return filepath.Join(dir, "data", "codepad", "snippets")
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	require.NotNil(t, cmd)
	assert.Equal(t, "codepad", cmd.Name())
	assert.NotEmpty(t, cmd.Short)

	for _, name := range []string{"format", "run", "snippets", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "debug", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc")
}

func TestFormat_Stdin(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "if x:\ny\n", "format")
	require.NoError(t, err)
	assert.Equal(t, "if x:\n    y\n    ", out)
}

func TestFormat_WriteFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "main.c")
	require.NoError(t, os.WriteFile(path, []byte("int main() {\nreturn 0;\n}"), 0o600))

	out, _, err := execute(t, "", "format", "-w", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int main() {\n    return 0;\n}", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFormat_WriteNeedsFile(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "x", "format", "-w")
	require.Error(t, err)
}

func TestFormat_MissingFile(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "", "format", filepath.Join(t.TempDir(), "nope.py"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func pistonServer(t *testing.T, response string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Language", gjson.GetBytes(body, "language").String())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_Success(t *testing.T) {
	isolate(t)
	srv := pistonServer(t, `{"run":{"stdout":"hi\n","stderr":"","code":0,"output":"hi\n"}}`)
	t.Setenv("CODEPAD_RUNNER_ENDPOINT", srv.URL)

	out, _, err := execute(t, "print('hi')", "run", "--language", "python")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestRun_Failure(t *testing.T) {
	isolate(t)
	srv := pistonServer(t, `{"run":{"stdout":"","stderr":"boom","code":1,"output":"boom"}}`)
	t.Setenv("CODEPAD_RUNNER_ENDPOINT", srv.URL)

	_, errOut, err := execute(t, "raise", "run", "-l", "python")
	require.ErrorIs(t, err, cli.ErrRunFailed)
	assert.Contains(t, errOut, "boom")
}

func TestRun_DetectsLanguageFromFile(t *testing.T) {
	isolate(t)
	var gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotLang = gjson.GetBytes(body, "language").String()
		_, _ = w.Write([]byte(`{"run":{"code":0,"output":"ok"}}`))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("CODEPAD_RUNNER_ENDPOINT", srv.URL)

	path := filepath.Join(t.TempDir(), "main.rb")
	require.NoError(t, os.WriteFile(path, []byte("puts 1\n"), 0o600))

	_, _, err := execute(t, "", "run", path)
	require.NoError(t, err)
	assert.Equal(t, "ruby", gotLang)
}

func TestRun_EmptyCode(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "   ", "run", "-l", "go")
	require.Error(t, err)
}

func TestSnippets(t *testing.T) {
	dir := isolate(t)
	store := snippet.NewFileStore(dir)
	saved, err := store.Save(context.Background(), snippet.Snippet{
		Title:    "hello",
		Language: "python",
		Content:  "print('hello')",
	})
	require.NoError(t, err)

	out, _, err := execute(t, "", "snippets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, saved.ID)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "Python")

	out, _, err = execute(t, "", "snippets", "show", saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "print('hello')\n", out)

	_, _, err = execute(t, "", "snippets", "delete", saved.ID)
	require.NoError(t, err)

	_, _, err = execute(t, "", "snippets", "show", saved.ID)
	require.ErrorIs(t, err, snippet.ErrNotFound)
}

func TestInvalidColorMode(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "x", "format", "--color", "sometimes")
	require.Error(t, err)
}

func TestMissingExplicitConfig(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "x", "format", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
