package drives

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceSize(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "disk.img")
	require.NoError(t, os.WriteFile(image, make([]byte, 4096), 0644))

	size, err := DeviceSize(image)
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), size)

	_, err = DeviceSize(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = DeviceSize(dir)
	assert.Error(t, err, "directories are not devices")
}

func TestMountUsage(t *testing.T) {
	usage, err := MountUsage(t.TempDir())
	require.NoError(t, err)
	assert.NotZero(t, usage.Total)
	assert.LessOrEqual(t, usage.Used, usage.Total)

	_, err = MountUsage(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
