package directory_test

import (
	"os"
	"path/filepath"
	"testing"

	"opsworker/internal/adapters/out/directory"
	"opsworker/internal/core/domain/model/engineer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should read nicknames and exclusions", func(t *testing.T) {
		d, err := directory.Parse([]byte(`
nicknames:
  "0201324": Mansyur
  "0202171": Hilmi
excluded:
  - "0202403"
  - "0200601"
`))
		require.NoError(t, err)

		nick, ok := d.Nickname("0201324")
		assert.True(t, ok)
		assert.Equal(t, "Mansyur", nick)

		_, ok = d.Nickname("0209999")
		assert.False(t, ok)

		assert.Equal(t, engineer.NewIDSet("0202403", "0200601"), d.Excluded())
	})

	t.Run("should accept an empty document", func(t *testing.T) {
		d, err := directory.Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, d.Excluded())
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := directory.Parse([]byte("nickname:\n  a: b\n"))
		assert.ErrorContains(t, err, "parse engineer directory")
	})
}

func TestLoad(t *testing.T) {
	t.Run("should return an empty directory without a path", func(t *testing.T) {
		d, err := directory.Load("")
		require.NoError(t, err)
		assert.Empty(t, d.Excluded())
	})

	t.Run("should load the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engineers.yaml")
		require.NoError(t, os.WriteFile(path, []byte("excluded: [\"0201217\"]\n"), 0o600))

		d, err := directory.Load(path)
		require.NoError(t, err)
		assert.True(t, d.Excluded().Has("0201217"))
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := directory.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
