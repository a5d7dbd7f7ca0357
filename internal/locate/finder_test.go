package locate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRepo(t *testing.T) (root, pic string) {
	t.Helper()
	root = t.TempDir()
	pic = filepath.Join(root, PicDir)
	require.NoError(t, os.MkdirAll(pic, 0o755))
	return root, pic
}

func TestFindFromNestedDir(t *testing.T) {
	root, pic := makeRepo(t)
	nested := filepath.Join(root, "scripts", "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok := NewFinder().Find(nested)
	require.True(t, ok)
	assert.Equal(t, pic, got)
}

func TestFindFromRoot(t *testing.T) {
	root, pic := makeRepo(t)

	got, ok := NewFinder().Find(root)
	require.True(t, ok)
	assert.Equal(t, pic, got)
}

func TestFindUsesFirstMatchingStart(t *testing.T) {
	first, firstPic := makeRepo(t)
	second, _ := makeRepo(t)

	got, ok := NewFinder().Find("", first, second)
	require.True(t, ok)
	assert.Equal(t, firstPic, got)
}

func TestFindSkipsStartWithoutPics(t *testing.T) {
	empty := t.TempDir()
	root, pic := makeRepo(t)

	got, ok := NewFinder().Find(empty, root)
	require.True(t, ok)
	assert.Equal(t, pic, got)
}

func TestFindIgnoresPlainFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, PicDir), []byte("x"), 0o644))

	_, ok := NewFinder().Find(root)
	assert.False(t, ok)
}

func TestResolveFromWorkingDir(t *testing.T) {
	root, pic := makeRepo(t)
	nested := filepath.Join(root, "scripts")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	want, err := filepath.EvalSymlinks(pic)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(NewFinder().Resolve())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveFallback(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)

	got := NewFinder().Resolve()
	assert.True(t, strings.HasSuffix(got, string(filepath.Separator)+PicDir), got)
	assert.True(t, filepath.IsAbs(got))
}
