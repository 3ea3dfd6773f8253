package browse

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (with the given contents) and directories (names
// ending in "/") under a fresh temp dir.
func makeTree(t *testing.T, entries map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range entries {
		path := filepath.Join(dir, name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// dirSize is what the filesystem reports for a directory's own size.
func dirSize(t *testing.T, path string) uint64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return uint64(info.Size())
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestListFiltersAndSorts(t *testing.T) {
	dir := makeTree(t, map[string]string{
		"b.iso":   "12345",
		"a.txt":   "x",
		"sub/":    "",
		".hidden": "",
	})

	entries, err := List(dir, Options{Extension: ".iso"})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "sub", Kind: Directory, Size: dirSize(t, filepath.Join(dir, "sub"))},
		{Name: "b.iso", Kind: File, Size: 5},
	}, entries)
}

func TestListReportsEveryEntryOnce(t *testing.T) {
	dir := makeTree(t, map[string]string{
		"zeta.wbfs":      "",
		"Alpha.iso":      "",
		"alpha.iso":      "",
		"games/":         "",
		"Backups/":       "",
		"games/inner":    "nested entries are not listed",
		"readme":         "",
		"with space.iso": "",
	})

	entries, err := List(dir, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Backups", "games",
		"Alpha.iso", "alpha.iso", "readme", "with space.iso", "zeta.wbfs",
	}, names(entries))
}

func TestListHidden(t *testing.T) {
	dir := makeTree(t, map[string]string{
		".config/":  "",
		".disc.iso": "",
		"disc.iso":  "",
	})

	entries, err := List(dir, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"disc.iso"}, names(entries))

	entries, err = List(dir, Options{ShowHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{".config", ".disc.iso", "disc.iso"}, names(entries))
}

func TestListSymlinks(t *testing.T) {
	dir := makeTree(t, map[string]string{
		"target/":   "",
		"image.iso": "abc",
	})
	require.NoError(t, os.Symlink("target", filepath.Join(dir, "linkdir")))
	require.NoError(t, os.Symlink("image.iso", filepath.Join(dir, "link.iso")))
	require.NoError(t, os.Symlink("nowhere", filepath.Join(dir, "dangling")))

	entries, err := List(dir, Options{Extension: ".iso"})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "linkdir", Kind: Directory, Size: dirSize(t, filepath.Join(dir, "target"))},
		{Name: "target", Kind: Directory, Size: dirSize(t, filepath.Join(dir, "target"))},
		{Name: "dangling", Kind: Unknown},
		{Name: "image.iso", Kind: File, Size: 3},
		{Name: "link.iso", Kind: File, Size: 3},
	}, entries)
}

func TestListIsStable(t *testing.T) {
	tree := map[string]string{"sub/": "", ".hidden/": "", ".dot.iso": ""}
	for i := 0; i < 40; i++ {
		tree[fmt.Sprintf("disc%02d.iso", i)] = "x"
		tree[fmt.Sprintf("note%02d.txt", i)] = ""
		tree[fmt.Sprintf("dir%02d/", i)] = ""
	}
	dir := makeTree(t, tree)

	for _, opts := range []Options{
		{},
		{Extension: ".iso"},
		{ShowHidden: true},
		{Extension: ".iso", ShowHidden: true, MaxItems: 50},
		{MaxItems: 7},
	} {
		first, err := List(dir, opts)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := List(dir, opts)
			require.NoError(t, err)
			assert.Equal(t, first, again, "%+v", opts)
		}
	}
}

func TestListMaxItems(t *testing.T) {
	dir := makeTree(t, map[string]string{
		"c.iso": "", "a.iso": "", "b.iso": "", "dir/": "",
	})

	entries, err := List(dir, Options{MaxItems: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"dir", "a.iso"}, names(entries))

	entries, err = List(dir, Options{MaxItems: 10})
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestListEmptyDirectory(t *testing.T) {
	entries, err := List(t.TempDir(), Options{ShowHidden: true})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListErrors(t *testing.T) {
	dir := makeTree(t, map[string]string{"file.iso": ""})

	for _, path := range []string{
		filepath.Join(dir, "missing"),
		filepath.Join(dir, "file.iso"),
	} {
		entries, err := List(path, Options{})
		require.Error(t, err, path)
		assert.Nil(t, entries)
		assert.True(t, errors.Is(err, ErrOpenDir))

		var openErr *OpenError
		require.True(t, errors.As(err, &openErr))
		assert.Equal(t, path, openErr.Dir)
	}
}

func TestListDoesNotLeakDescriptors(t *testing.T) {
	fds := func() int {
		entries, err := os.ReadDir("/proc/self/fd")
		if err != nil {
			return -1
		}
		return len(entries)
	}
	if fds() < 0 {
		t.Skip("/proc/self/fd not available")
	}

	dir := makeTree(t, map[string]string{"a.iso": "", "sub/": ""})
	before := fds()
	for i := 0; i < 50; i++ {
		_, err := List(dir, Options{})
		require.NoError(t, err)
		_, err = List(filepath.Join(dir, "missing"), Options{})
		require.Error(t, err)
	}
	assert.Equal(t, before, fds())
}

func TestEntryFormatting(t *testing.T) {
	assert.Equal(t, "", Entry{Name: "sub", Kind: Directory}.SizeString())
	assert.Equal(t, "", Entry{Name: "broken", Kind: Unknown}.SizeString())
	assert.Equal(t, "5 B", Entry{Name: "x", Kind: File, Size: 5}.SizeString())
	assert.Equal(t, "4.0 GiB", Entry{Name: "game.iso", Kind: File, Size: 4 << 30}.SizeString())

	assert.Equal(t, "sub/", Entry{Name: "sub", Kind: Directory}.DisplayName())
	assert.Equal(t, "game.iso", Entry{Name: "game.iso", Kind: File}.DisplayName())

	assert.Equal(t, "dir", Directory.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestEntryJSON(t *testing.T) {
	dir := makeTree(t, map[string]string{"sub/": "", "b.iso": "12345"})
	require.NoError(t, os.Symlink("nowhere", filepath.Join(dir, "dangling")))

	entries, err := List(dir, Options{})
	require.NoError(t, err)

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"dir"`)
	assert.Contains(t, string(data), `"kind":"unknown"`)

	var decoded []Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entries, decoded)

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("socket")))
	require.NoError(t, k.UnmarshalText([]byte("file")))
	assert.Equal(t, File, k)
}
