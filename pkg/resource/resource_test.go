package resource_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/dmitrymomot/sharedkit/pkg/encryption"
	"github.com/dmitrymomot/sharedkit/pkg/resource"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"text/plain.txt":   {Data: []byte("hello")},
		"text/bom.txt":     {Data: []byte("\xEF\xBB\xBFwith bom")},
		"text/latin1.txt":  {Data: []byte{'c', 'a', 'f', 0xE9}},
		"text/utf16le.txt": {Data: []byte{0xFF, 0xFE, 'h', 0, 'i', 0}},
		"bin/data.bin":     {Data: []byte{0x00, 0x01, 0x02}},
	}
}

func TestData(t *testing.T) {
	t.Parallel()

	data, err := resource.Data(testFS(), "bin/data.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, data)

	_, err = resource.Data(testFS(), "missing.txt")
	require.ErrorIs(t, err, resource.ErrNotFound)
	assert.Contains(t, err.Error(), "missing.txt")

	_, err = resource.Data(testFS(), "")
	assert.ErrorIs(t, err, resource.ErrEmptyName)

	_, err = resource.Data(nil, "x")
	assert.ErrorIs(t, err, resource.ErrNilFS)
}

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		decode   func(string) (string, error)
		expected string
	}{
		{
			name:     "plain utf8",
			file:     "text/plain.txt",
			expected: "hello",
		},
		{
			name:     "strips utf8 bom",
			file:     "text/bom.txt",
			expected: "with bom",
		},
		{
			name: "latin1",
			file: "text/latin1.txt",
			decode: func(name string) (string, error) {
				return resource.TextEncoded(testFS(), name, charmap.ISO8859_1)
			},
			expected: "café",
		},
		{
			name: "utf16 with bom",
			file: "text/utf16le.txt",
			decode: func(name string) (string, error) {
				return resource.TextEncoded(testFS(), name, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
			},
			expected: "hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			decode := tt.decode
			if decode == nil {
				decode = func(name string) (string, error) { return resource.Text(testFS(), name) }
			}
			got, err := decode(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestText_EmbeddedMigrations(t *testing.T) {
	t.Parallel()

	names, err := resource.Names(encryption.Migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{"migrations/00001_encryption_keys.sql"}, names)

	sql, err := resource.Text(encryption.Migrations, names[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(sql, "-- +goose Up"))
}

func TestSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dest := filepath.Join(dir, "nested", "out.bin")

	require.NoError(t, resource.Save(testFS(), "bin/data.bin", dest))

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, written)

	assert.ErrorIs(t, resource.Save(testFS(), "bin/data.bin", ""), resource.ErrSaveFailed)
	assert.ErrorIs(t, resource.Save(testFS(), "nope", filepath.Join(dir, "x")), resource.ErrNotFound)
}

func TestNames(t *testing.T) {
	t.Parallel()

	names, err := resource.Names(testFS(), "text/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"text/bom.txt", "text/latin1.txt", "text/plain.txt", "text/utf16le.txt"}, names)

	_, err = resource.Names(testFS(), "[")
	assert.ErrorIs(t, err, resource.ErrUnreadable)
}

func TestReadBuildInfo(t *testing.T) {
	t.Parallel()

	info, err := resource.ReadBuildInfo()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))

	_, ok := info.Dependency("example.invalid/none")
	assert.False(t, ok)
}
