package bookmark

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndResolve(t *testing.T) {
	dir := t.TempDir()
	b := NewBookmarker()

	token, err := b.Create(dir)
	require.NoError(t, err)

	resolved, stale, err := b.Resolve(token)
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, dir, resolved)
}

func TestCreate_RejectsFilesAndMissingPaths(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	b := NewBookmarker()

	_, err := b.Create(file)
	assert.Error(t, err)
	_, err = b.Create(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestResolve_StaleWhenDirectoryRemoved(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, os.Mkdir(dir, 0755))
	b := NewBookmarker()

	token, err := b.Create(dir)
	require.NoError(t, err)
	require.NoError(t, os.Remove(dir))

	resolved, stale, err := b.Resolve(token)
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Equal(t, dir, resolved, "stale token still carries its path")

	_, err = b.Create(resolved)
	assert.Error(t, err, "re-creation from a vanished directory fails")
}

func TestResolve_StaleWhenDirectoryReplaced(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "repo")
	require.NoError(t, os.Mkdir(dir, 0755))
	b := NewBookmarker()

	token, err := b.Create(dir)
	require.NoError(t, err)

	// the old directory stays alive, so the new one gets a different inode
	require.NoError(t, os.Rename(dir, filepath.Join(base, "moved")))
	require.NoError(t, os.Mkdir(dir, 0755))

	resolved, stale, err := b.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, dir, resolved)
	if isUnixIdentity() {
		assert.True(t, stale)
	}
}

func TestResolve_CorruptTokens(t *testing.T) {
	b := NewBookmarker()
	token, err := b.Create(t.TempDir())
	require.NoError(t, err)

	tampered := bytes.Replace(token, []byte(`"path":"`), []byte(`"path":"/evil`), 1)

	for name, tok := range map[string][]byte{
		"garbage":  []byte("not json"),
		"empty":    nil,
		"tampered": tampered,
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := b.Resolve(tok)
			assert.ErrorIs(t, err, ErrCorruptToken)
		})
	}
}

func TestCreate_RecordsCreationTime(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	b := &Bookmarker{now: func() time.Time { return fixed }}

	token, err := b.Create(t.TempDir())
	require.NoError(t, err)

	p, err := decode(token)
	require.NoError(t, err)
	assert.True(t, p.Created.Equal(fixed))
}

func TestStartAccess(t *testing.T) {
	dir := t.TempDir()
	b := NewBookmarker()

	session, err := b.StartAccess(dir)
	require.NoError(t, err)
	assert.NoError(t, session.Stop())
	assert.NoError(t, session.Stop(), "stopping twice is harmless")

	_, err = b.StartAccess(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
