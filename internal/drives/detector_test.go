package drives

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partitionsHeader = "major minor  #blocks  name\n\n"

// fakeHost lays out a device directory, a partition table and a mount registry
// under one temp dir. Every named device becomes an empty regular file.
type fakeHost struct {
	dir        string
	devDir     string
	partitions string
	mounts     string
}

func newFakeHost(t *testing.T, devices ...string) *fakeHost {
	t.Helper()
	dir := t.TempDir()
	h := &fakeHost{
		dir:        dir,
		devDir:     filepath.Join(dir, "dev"),
		partitions: filepath.Join(dir, "partitions"),
		mounts:     filepath.Join(dir, "mounts"),
	}
	require.NoError(t, os.Mkdir(h.devDir, 0755))
	for _, d := range devices {
		require.NoError(t, os.WriteFile(h.dev(d), nil, 0644))
	}
	require.NoError(t, os.WriteFile(h.mounts, []byte("proc /proc proc rw 0 0\n"), 0644))
	return h
}

func (h *fakeHost) dev(name string) string {
	return filepath.Join(h.devDir, name)
}

func (h *fakeHost) writePartitions(t *testing.T, rows string) {
	t.Helper()
	require.NoError(t, os.WriteFile(h.partitions, []byte(partitionsHeader+rows), 0644))
}

func (h *fakeHost) mount(t *testing.T, device, mountPoint string) {
	t.Helper()
	f, err := os.OpenFile(h.mounts, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s %s ext4 rw 0 0\n", h.dev(device), mountPoint)
	require.NoError(t, err)
}

func (h *fakeHost) enumerator() *Enumerator {
	return &Enumerator{
		PartitionsPath: h.partitions,
		DevDir:         h.devDir,
		Mounts:         ProcMounts{Path: h.mounts},
	}
}

func TestEnumeratePartitionsSkipMounted(t *testing.T) {
	h := newFakeHost(t, "sda", "sda1", "sdb")
	h.writePartitions(t,
		"   8        0  488386584 sda\n"+
			"   8        1  488385536 sda1\n"+
			"   8       16  976762584 sdb\n")
	h.mount(t, "sda1", "/mnt/data")
	h.mount(t, "sdb", "/mnt/backup")

	list, err := h.enumerator().Enumerate(EnumerateOptions{SkipMounted: true, ListPartitions: true})
	require.NoError(t, err)
	assert.Equal(t, []string{h.dev("sda")}, list.Devices)
	assert.Equal(t, NoPreferred, list.Preferred)
}

func TestEnumeratePartitionsKeepsMountedWhenAsked(t *testing.T) {
	h := newFakeHost(t, "sda", "sda1", "sdb")
	h.writePartitions(t,
		"   8        0  488386584 sda\n"+
			"   8        1  488385536 sda1\n"+
			"   8       16  976762584 sdb\n")
	h.mount(t, "sda1", "/mnt/data")

	list, err := h.enumerator().Enumerate(EnumerateOptions{ListPartitions: true})
	require.NoError(t, err)
	assert.Equal(t, []string{h.dev("sda"), h.dev("sda1"), h.dev("sdb")}, list.Devices)
}

func TestEnumeratePartitionRows(t *testing.T) {
	h := newFakeHost(t)
	h.writePartitions(t,
		"   8        0  488386584 sda\n"+
			"   8        2          1 sda2\n"+
			"   8        5          0 sda5\n"+
			"   8\n"+
			" 259        0  500107608 nvme0n1 1\n"+
			" 179        1    1048576 mmcblk0p1\n")

	list, err := h.enumerator().Enumerate(EnumerateOptions{ListPartitions: true})
	require.NoError(t, err)
	assert.Equal(t, []string{h.dev("sda"), h.dev("nvme0n1"), h.dev("mmcblk0p1")}, list.Devices)
}

func TestEnumerateCapsAtMaxItems(t *testing.T) {
	h := newFakeHost(t)
	h.writePartitions(t,
		"   8        0  100 sda\n"+
			"   8       16  100 sdb\n"+
			"   8       32  100 sdc\n")

	list, err := h.enumerator().Enumerate(EnumerateOptions{ListPartitions: true, MaxItems: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{h.dev("sda"), h.dev("sdb")}, list.Devices)
}

func TestEnumerateGlobMode(t *testing.T) {
	h := newFakeHost(t, "sdb", "hda", "sda", "sdc1", "xvda", "hdb1", "loop0")
	h.mount(t, "sdc1", "/media/stick")

	t.Run("PrefixOrder", func(t *testing.T) {
		list, err := h.enumerator().Enumerate(EnumerateOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{
			h.dev("hda"), h.dev("hdb1"),
			h.dev("sda"), h.dev("sdb"), h.dev("sdc1"),
		}, list.Devices)
	})

	t.Run("SkipMounted", func(t *testing.T) {
		list, err := h.enumerator().Enumerate(EnumerateOptions{SkipMounted: true})
		require.NoError(t, err)
		assert.Equal(t, []string{h.dev("hda"), h.dev("hdb1"), h.dev("sda"), h.dev("sdb")}, list.Devices)
	})

	t.Run("CustomPrefixes", func(t *testing.T) {
		e := h.enumerator()
		e.GlobPrefixes = []string{"xvd", "loop"}
		list, err := e.Enumerate(EnumerateOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{h.dev("xvda"), h.dev("loop0")}, list.Devices)
	})
}

func TestEnumeratePreferredDevice(t *testing.T) {
	h := newFakeHost(t, "sda", "sdc")
	require.NoError(t, os.WriteFile(h.dev("sdb"), []byte("WBFS\x00\x00\x00\x01rest of header"), 0644))
	h.writePartitions(t,
		"   8        0  100 sda\n"+
			"   8       16  100 sdb\n"+
			"   8       32  100 sdc\n")

	list, err := h.enumerator().Enumerate(EnumerateOptions{ListPartitions: true})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Preferred)

	device, ok := list.PreferredDevice()
	assert.True(t, ok)
	assert.Equal(t, h.dev("sdb"), device)
}

func TestEnumeratePreferredFirstMatchWins(t *testing.T) {
	h := newFakeHost(t)
	for _, name := range []string{"sda", "sdb", "sdc"} {
		require.NoError(t, os.WriteFile(h.dev(name), []byte("WBFS"), 0644))
	}

	list, err := h.enumerator().Enumerate(EnumerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Preferred)
}

func TestEnumerateUnreadableCandidatesAreNotPreferred(t *testing.T) {
	// sdb is in the partition table but has no device file: the probe fails
	// and enumeration continues.
	h := newFakeHost(t, "sda")
	require.NoError(t, os.WriteFile(h.dev("sdc"), []byte("WBFS"), 0644))
	h.writePartitions(t,
		"   8        0  100 sda\n"+
			"   8       16  100 sdb\n"+
			"   8       32  100 sdc\n")

	list, err := h.enumerator().Enumerate(EnumerateOptions{ListPartitions: true})
	require.NoError(t, err)
	assert.Len(t, list.Devices, 3)
	assert.Equal(t, 2, list.Preferred)
}

func TestEnumerateCustomProbe(t *testing.T) {
	h := newFakeHost(t, "sda", "sdb")

	var probed []string
	e := h.enumerator()
	e.Probe = ProbeFunc(func(device string) (bool, error) {
		probed = append(probed, filepath.Base(device))
		if filepath.Base(device) == "sda" {
			return false, ErrProbeInconclusive
		}
		return true, nil
	})

	list, err := e.Enumerate(EnumerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"sda", "sdb"}, probed)
	assert.Equal(t, 1, list.Preferred)
}

func TestEnumerateErrors(t *testing.T) {
	h := newFakeHost(t, "sda")

	t.Run("MissingPartitionTable", func(t *testing.T) {
		list, err := h.enumerator().Enumerate(EnumerateOptions{ListPartitions: true})
		require.Error(t, err)
		assert.True(t, IsIOError(err))
		assert.Empty(t, list.Devices)
		assert.Equal(t, NoPreferred, list.Preferred)

		var ioErr *IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, h.partitions, ioErr.Path)
	})

	t.Run("MissingMountRegistry", func(t *testing.T) {
		e := h.enumerator()
		e.Mounts = ProcMounts{Path: filepath.Join(h.dir, "no-mounts")}

		_, err := e.Enumerate(EnumerateOptions{SkipMounted: true})
		assert.True(t, IsIOError(err))

		list, err := e.Enumerate(EnumerateOptions{})
		require.NoError(t, err, "registry is only read when skipping mounted devices")
		assert.Equal(t, []string{h.dev("sda")}, list.Devices)
	})
}

func TestDeviceListHelpers(t *testing.T) {
	list := DeviceList{Devices: []string{"/dev/sda", "/dev/sdb"}, Preferred: NoPreferred}

	_, ok := list.PreferredDevice()
	assert.False(t, ok)
	assert.Equal(t, 1, list.IndexOf("/dev/sdb"))
	assert.Equal(t, -1, list.IndexOf("/dev/sdc"))

	list.Preferred = 5
	_, ok = list.PreferredDevice()
	assert.False(t, ok)
}

func TestMagicProbe(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "full")
	short := filepath.Join(dir, "short")
	offset := filepath.Join(dir, "offset")
	require.NoError(t, os.WriteFile(full, []byte("WBFSdata"), 0644))
	require.NoError(t, os.WriteFile(short, []byte("WB"), 0644))
	require.NoError(t, os.WriteFile(offset, []byte("\x00\x00WBFS"), 0644))

	p := NewMagicProbe(WBFSMagic)

	ok, err := p.Probe(full)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Probe(short)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.Probe(offset)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = MagicProbe{Magic: WBFSMagic, Offset: 2}.Probe(offset)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.Probe(filepath.Join(dir, "absent"))
	assert.True(t, errors.Is(err, ErrProbeInconclusive))

	ok, err = MagicProbe{}.Probe(full)
	require.NoError(t, err)
	assert.False(t, ok)
}
