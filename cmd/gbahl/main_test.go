package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/gbahl/compression"
)

// testROM writes a small image with a header, a compressed block at 0x100,
// two pointers to it and a free-space tail. It returns the image path.
func testROM(t *testing.T) string {
	t.Helper()

	b := make([]byte, 0x1000)
	copy(b[0xA0:], "TESTROM")
	copy(b[0xAC:], "BTST01")
	copy(b[0x100:], []byte{0x10, 0x06, 0x00, 0x00, 0x20, 0xAA, 0xBB, 0x00, 0x00, 0xCC})
	copy(b[0x200:], []byte{0x00, 0x01, 0x00, 0x08})
	copy(b[0x233:], []byte{0x00, 0x01, 0x00, 0x08})
	for i := 0x800; i < len(b); i++ {
		b[i] = 0xFF
	}

	path := filepath.Join(t.TempDir(), "test.gba")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func runCmd(t *testing.T, opts options, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := run(opts, args, &out)
	return out.String(), err
}

func TestRun_Usage(t *testing.T) {
	path := testROM(t)

	_, err := runCmd(t, options{ROM: path})
	require.ErrorIs(t, err, errUsage)
	_, err = runCmd(t, options{ROM: path}, "explode")
	require.ErrorIs(t, err, errUsage)
	_, err = runCmd(t, options{ROM: path}, "pointer")
	require.ErrorIs(t, err, errUsage)
	_, err = runCmd(t, options{}, "header")
	require.ErrorIs(t, err, errUsage)
}

func TestRun_Header(t *testing.T) {
	out, err := runCmd(t, options{ROM: testROM(t)}, "header")
	require.NoError(t, err)
	require.Equal(t, "title: TESTROM\ncode:  BTST\nmaker: 01\n", out)
}

func TestRun_Pointer(t *testing.T) {
	path := testROM(t)

	out, err := runCmd(t, options{ROM: path}, "pointer", "0x200")
	require.NoError(t, err)
	require.Equal(t, "0x000200: 0x000100\n", out)

	out, err = runCmd(t, options{ROM: path}, "pointer", "0x300")
	require.NoError(t, err)
	require.Equal(t, "0x000300: null\n", out)

	_, err = runCmd(t, options{ROM: path}, "pointer", "0x10000")
	require.Error(t, err)
}

func TestRun_SizeAndDecompress(t *testing.T) {
	path := testROM(t)

	out, err := runCmd(t, options{ROM: path}, "size", "0x100")
	require.NoError(t, err)
	require.Equal(t, "0x000100: 10\n", out)

	_, err = runCmd(t, options{ROM: path}, "size", "0x300")
	require.Error(t, err)

	dst := filepath.Join(t.TempDir(), "block.bin")
	out, err = runCmd(t, options{ROM: path}, "decompress", "0x100", dst)
	require.NoError(t, err)
	require.Equal(t, "0x000100: 6 bytes from a 10 byte block\n", out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB, 0xBB, 0xBB, 0xBB, 0xCC}, data)
}

func TestRun_Compress(t *testing.T) {
	path := testROM(t)
	src := filepath.Join(t.TempDir(), "data.bin")
	data := bytes.Repeat([]byte{0xAA}, 6)
	require.NoError(t, os.WriteFile(src, data, 0o600))

	out, err := runCmd(t, options{ROM: path, VRAMSafe: true}, "compress", src, "0x400")
	require.NoError(t, err)
	require.Equal(t, "0x000400: wrote 9 byte block for 6 bytes\n", out)

	image, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0x10, 0x06, 0x00, 0x00, 0x20, 0xAA, 0xAA, 0x10, 0x01}, image[0x400:0x409])

	got, err := compression.DecompressLZ(image[0x400:])
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestRun_FindAndFreeSpace(t *testing.T) {
	path := testROM(t)

	out, err := runCmd(t, options{ROM: path}, "find", "00010008")
	require.NoError(t, err)
	require.Equal(t, "0x000200\n", out)

	out, err = runCmd(t, options{ROM: path}, "find", "00010008", "0x201")
	require.NoError(t, err)
	require.Equal(t, "0x000233\n", out)

	out, err = runCmd(t, options{ROM: path}, "find", "00010008", "0x201", "4")
	require.NoError(t, err)
	require.Equal(t, "not found\n", out)

	_, err = runCmd(t, options{ROM: path}, "find", "zz")
	require.Error(t, err)

	out, err = runCmd(t, options{ROM: path}, "freespace", "16", "0", "0x100")
	require.NoError(t, err)
	require.Equal(t, "0x000800\n", out)
}

func TestRun_RepointWithConfig(t *testing.T) {
	path := testROM(t)
	cfgPath := filepath.Join(t.TempDir(), "offsets.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 1\noffsets:\n  Block: 0x100\n  Moved: 0x900\n"), 0o600))

	opts := options{ROM: path, Config: cfgPath}
	out, err := runCmd(t, opts, "repoint", "Block", "Moved")
	require.NoError(t, err)
	require.Equal(t, []string{"0x000200", "0x000233"}, strings.Fields(out))

	out, err = runCmd(t, opts, "pointer", "0x233")
	require.NoError(t, err)
	require.Equal(t, "0x000233: 0x000900\n", out)

	_, err = runCmd(t, opts, "repoint", "Nowhere", "Moved")
	require.Error(t, err)
}
