package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLimited_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payslip.pdf")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

	data, err := ReadLimited(path, MaxUploadSize)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestReadLimited_Missing(t *testing.T) {
	_, err := ReadLimited(filepath.Join(t.TempDir(), "absent"), MaxUploadSize)
	assert.Error(t, err)
}

func TestReadLimited_Directory(t *testing.T) {
	_, err := ReadLimited(t.TempDir(), MaxUploadSize)
	assert.ErrorContains(t, err, "directory")
}

func TestReadLimited_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 32), 0o600))

	_, err := ReadLimited(path, 16)
	assert.ErrorContains(t, err, "size limit")
}
