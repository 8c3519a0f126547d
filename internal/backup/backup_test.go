package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func TestName(t *testing.T) {
	assert.Equal(t, "credentials_20240309140507", Name("/home/u/.aws/credentials", stamp))
}

func TestRun_CopiesBytes(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("[123456789012_Admin]\naws_access_key_id=X\n\n\ttrailing \r\n")
	require.NoError(t, afero.WriteFile(fs, "/aws/credentials", content, 0600))

	dest, ok, err := Run(fs, "/aws/credentials", "/aws/creds_backups", stamp)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/aws/creds_backups", "credentials_20240309140507"), dest)

	got, err := afero.ReadFile(fs, dest)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// Source is untouched
	src, err := afero.ReadFile(fs, "/aws/credentials")
	require.NoError(t, err)
	assert.Equal(t, content, src)
}

func TestRun_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()

	dest, ok, err := Run(fs, "/aws/credentials", "/aws/creds_backups", stamp)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, dest)

	exists, err := afero.DirExists(fs, "/aws/creds_backups")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAll_SharedTimestamp(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/aws/credentials", []byte("creds"), 0600))
	require.NoError(t, afero.WriteFile(fs, "/aws/config", []byte("cfg"), 0644))

	copies, err := All(fs, "/aws/creds_backups", stamp, "/aws/credentials", "/aws/config", "/aws/missing")
	require.NoError(t, err)
	require.Len(t, copies, 2)

	assert.Equal(t, "/aws/creds_backups/credentials_20240309140507", copies[0].Dest)
	assert.Equal(t, "/aws/creds_backups/config_20240309140507", copies[1].Dest)

	cfg, err := afero.ReadFile(fs, copies[1].Dest)
	require.NoError(t, err)
	assert.Equal(t, "cfg", string(cfg))
}

func TestRun_ReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/aws/credentials", []byte("creds"), 0600))
	require.NoError(t, base.MkdirAll("/aws/creds_backups", 0700))

	_, _, err := Run(afero.NewReadOnlyFs(base), "/aws/credentials", "/aws/creds_backups", stamp)
	assert.Error(t, err)
}
