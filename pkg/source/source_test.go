package source_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/source"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		encoding     string
		wantText     string
		wantEncoding string
	}{
		{
			name:         "windows-1251",
			file:         "cp1251.deck",
			encoding:     "windows-1251",
			wantText:     ";Имя\nUNIT=MM\n",
			wantEncoding: "windows-1251",
		},
		{
			name:         "encoding label alias",
			file:         "cp1251.deck",
			encoding:     "cp1251",
			wantText:     ";Имя\nUNIT=MM\n",
			wantEncoding: "windows-1251",
		},
		{
			name:         "utf-8 bom is stripped",
			file:         "bom_utf8.deck",
			encoding:     "",
			wantText:     "UNIT=MM\n",
			wantEncoding: "utf-8",
		},
		{
			name:         "utf-16 bom overrides the requested encoding",
			file:         "bom_utf16le.deck",
			encoding:     "windows-1251",
			wantText:     "UNIT=MM",
			wantEncoding: "utf-16le",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := source.Read(filepath.Join("testdata", tt.file), tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, script.Text)
			assert.Equal(t, tt.wantEncoding, script.Encoding)
			assert.Equal(t, filepath.Join("testdata", tt.file), script.Name)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := source.Read(filepath.Join(t.TempDir(), "missing.deck"), "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceRead))
}

func TestReadFrom(t *testing.T) {
	t.Run("plain utf-8", func(t *testing.T) {
		script, err := source.ReadFrom(strings.NewReader("UNIT=MM"), "<stdin>", "utf-8")
		require.NoError(t, err)
		assert.Equal(t, "UNIT=MM", script.Text)
		assert.Equal(t, "<stdin>", script.Name)
	})

	t.Run("invalid utf-8 asks for an encoding", func(t *testing.T) {
		_, err := source.ReadFrom(bytes.NewReader([]byte{';', 0xC8, 0xEC, 0xFF}), "legacy.deck", "")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceDecode))
		assert.Equal(t, "utf-8", errors.GetErrorDetails(err)["encoding"])
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := source.ReadFrom(strings.NewReader("UNIT=MM"), "x", "klingon")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceDecode))
	})
}

func TestLookup(t *testing.T) {
	_, name, err := source.Lookup(" latin1 ")
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", name)

	_, name, err = source.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)
}
