package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
}

func TestFileReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Jo"}`), 0o644))

	fr := &FileReader[sample]{fileFlagValue: path}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, "Jo", got.Name)
}

func TestFileReader_Stdin(t *testing.T) {
	fr := &FileReader[sample]{Stdin: strings.NewReader(`{"name":"Al"}`)}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, "Al", got.Name)
}

func TestFileReader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		fr := &FileReader[sample]{fileFlagValue: filepath.Join(t.TempDir(), "nope.json")}
		_, err := fr.Read()
		assert.ErrorContains(t, err, "open file")
	})

	t.Run("unknown field", func(t *testing.T) {
		fr := &FileReader[sample]{Stdin: strings.NewReader(`{"nickname":"x"}`)}
		_, err := fr.Read()
		assert.ErrorContains(t, err, "decode JSON")
	})
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, sample{Name: "Jo"}))
	assert.JSONEq(t, `{"name":"Jo"}`, out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	require.NoError(t, WriteWith(&out, &errOut, func() {}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestMarshalError(t *testing.T) {
	got := MarshalError("bad input", map[string]any{"field": "age"})
	assert.JSONEq(t, `{"message":"bad input","data":{"field":"age"}}`, got)
}
