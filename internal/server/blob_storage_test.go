package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_validateObjectName(t *testing.T) {
	hexName := strings.Repeat("ab", 32)

	tests := []struct {
		name    string
		object  string
		wantErr bool
	}{
		{"index object", "index.bin", false},
		{"data object", "data/" + hexName + ".bin", false},
		{"short digest", "data/" + strings.Repeat("0f", 16) + ".bin", false},
		{"empty name", "", true},
		{"bare hex without prefix", hexName + ".bin", true},
		{"missing suffix", "data/" + hexName, true},
		{"uppercase hex", "data/" + strings.ToUpper(hexName) + ".bin", true},
		{"non-hex characters", "data/" + strings.Repeat("zz", 32) + ".bin", true},
		{"too short", "data/abcd.bin", true},
		{"too long", "data/" + strings.Repeat("ab", 40) + ".bin", true},
		{"path traversal", "data/../../etc/passwd", true},
		{"nested path", "data/sub/" + hexName + ".bin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateObjectName(tt.object)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidObjectName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileBlobStorage_PutGetRoundTrip(t *testing.T) {
	storage, err := newFileBlobStorage(t.TempDir())
	require.NoError(t, err)

	name := "data/" + strings.Repeat("cd", 32) + ".bin"
	content := []byte("sealed object bytes")

	require.NoError(t, storage.Put(name, content))

	got, err := storage.Get(name)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFileBlobStorage_GetMissing(t *testing.T) {
	storage, err := newFileBlobStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Get("index.bin")

	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestFileBlobStorage_LastWriteWins(t *testing.T) {
	storage, err := newFileBlobStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Put("index.bin", []byte("first")))
	require.NoError(t, storage.Put("index.bin", []byte("second")))

	got, err := storage.Get("index.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestFileBlobStorage_RejectsInvalidNames(t *testing.T) {
	storage, err := newFileBlobStorage(t.TempDir())
	require.NoError(t, err)

	require.ErrorIs(t, storage.Put("data/../escape.bin", []byte("x")), ErrInvalidObjectName)

	_, err = storage.Get("data/../escape.bin")
	require.ErrorIs(t, err, ErrInvalidObjectName)
}
