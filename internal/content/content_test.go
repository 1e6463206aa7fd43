package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/alertbox/internal/dom"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "terms.md"), "Accept the **terms**?\n")
	writeFile(t, filepath.Join(dir, "nested", "deep", "welcome.txt"), "Welcome")
	writeFile(t, filepath.Join(dir, "skip.json"), "{}")

	doc := dom.New()
	entries, err := Load(doc, []string{
		filepath.Join(dir, "**", "*.md"),
		filepath.Join(dir, "**", "*.txt"),
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	terms := doc.GetElementByID("terms")
	require.NotNil(t, terms)
	assert.Equal(t, "Accept the **terms**?", terms.Content())

	welcome := doc.GetElementByID("welcome")
	require.NotNil(t, welcome)
	assert.Equal(t, "Welcome", welcome.Content())

	assert.Nil(t, doc.GetElementByID("skip"))
	assert.Empty(t, doc.Body().Children(), "content never renders in the body")
}

func TestLoad_OverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "A")

	doc := dom.New()
	entries, err := Load(doc, []string{
		filepath.Join(dir, "*.md"),
		filepath.Join(dir, "**", "*.md"),
	})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Len(t, doc.Head().Children(), 1)
}

func TestLoad_DuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one", "intro.md"), "one")
	writeFile(t, filepath.Join(dir, "two", "intro.md"), "two")

	_, err := Load(dom.New(), []string{filepath.Join(dir, "**", "*.md")})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoad_NoMatches(t *testing.T) {
	entries, err := Load(dom.New(), []string{filepath.Join(t.TempDir(), "*.md")})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestID(t *testing.T) {
	assert.Equal(t, "terms", ID("/a/b/terms.md"))
	assert.Equal(t, "archive.tar", ID("archive.tar.gz"))
	assert.Equal(t, "README", ID("README"))
}
