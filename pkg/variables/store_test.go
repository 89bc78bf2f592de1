package variables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(content), 0o600))
	return dir
}

func TestStore_Load(t *testing.T) {
	dir := writeEnv(t, "HOST=example.com\nTOKEN=a=b=c\n\nEMPTY=\n")
	store := NewStore(WithDir(dir), WithLogger(zaptest.NewLogger(t)))

	vars, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, Mapping{
		"HOST":  "example.com",
		"TOKEN": "a=b=c",
		"EMPTY": "",
	}, vars)
}

func TestStore_Load_MissingFile(t *testing.T) {
	store := NewStore(WithDir(t.TempDir()), WithLogger(zaptest.NewLogger(t)))

	vars, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, vars)
	require.NotNil(t, vars)
}

func TestStore_Load_NoTrimming(t *testing.T) {
	dir := writeEnv(t, " KEY = value \r\n")
	vars, err := NewStore(WithDir(dir), WithLogger(zaptest.NewLogger(t))).Load()
	require.NoError(t, err)
	require.Equal(t, Mapping{" KEY ": " value "}, vars)
}

func TestStore_Load_CommentLines(t *testing.T) {
	dir := writeEnv(t, "#NOTE=ignored?\nA=1\nplain line\n")

	vars, err := NewStore(WithDir(dir), WithLogger(zaptest.NewLogger(t))).Load()
	require.NoError(t, err)
	require.Equal(t, Mapping{"#NOTE": "ignored?", "A": "1"}, vars)

	vars, err = NewStore(WithDir(dir), WithSkipComments(), WithLogger(zaptest.NewLogger(t))).Load()
	require.NoError(t, err)
	require.Equal(t, Mapping{"A": "1"}, vars)
}

func TestStore_Load_ReadsFreshEachCall(t *testing.T) {
	dir := writeEnv(t, "A=1\n")
	store := NewStore(WithDir(dir), WithLogger(zaptest.NewLogger(t)))

	vars, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "1", vars["A"])

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("A=2\n"), 0o600))
	vars, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "2", vars["A"])
}

func TestStore_CustomFileName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vars.local"), []byte("X=y\n"), 0o600))

	store := NewStore(WithDir(dir), WithFileName("vars.local"), WithLogger(zaptest.NewLogger(t)))
	path, err := store.Path()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "vars.local"), path)

	vars, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, Mapping{"X": "y"}, vars)
}

func TestStore_DefaultsToWorkingDirectory(t *testing.T) {
	dir := writeEnv(t, "CWD=yes\n")
	t.Chdir(dir)

	vars, err := NewStore(WithLogger(zaptest.NewLogger(t))).Load()
	require.NoError(t, err)
	require.Equal(t, "yes", vars["CWD"])
}

func TestIsComment(t *testing.T) {
	require.True(t, IsComment("# note"))
	require.True(t, IsComment("  #indented"))
	require.False(t, IsComment("KEY=#value"))
	require.False(t, IsComment(""))
}
