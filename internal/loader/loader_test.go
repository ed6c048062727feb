package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

const minimalSpec = `openapi: 3.1.0
info:
  title: OpenBar API
  version: 1.0.0
paths:
  /account:
    get:
      operationId: getAccount
      responses:
        "200":
          description: the connected account
components:
  schemas:
    UUID:
      type: string
      format: uuid
`

func TestLoad(t *testing.T) {
	result, err := Load([]byte(minimalSpec))
	require.NoError(t, err)

	require.Equal(t, "3.1.0", result.Version)
	require.NotNil(t, result.Document)
	require.NotNil(t, result.Root)
	require.Equal(t, []byte(minimalSpec), result.RawData)
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalSpec), 0644))

	result, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "3.1.0", result.Version)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading spec file")
}

func TestLoadParseError(t *testing.T) {
	_, err := Load([]byte("\t: not: valid: yaml: ["))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing OpenAPI document")
}

func TestLoadUnsupportedVersion(t *testing.T) {
	_, err := Load([]byte("swagger: \"2.0\"\ninfo:\n  title: old\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported OpenAPI version")
}

func TestRenderRoundTrip(t *testing.T) {
	result, err := Load([]byte(minimalSpec))
	require.NoError(t, err)

	out, err := result.Render()
	require.NoError(t, err)

	var first, second yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &first))

	reparsed, err := Load(out)
	require.NoError(t, err)
	again, err := reparsed.Render()
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(again, &second))

	require.Equal(t, string(out), string(again))
}

func TestWriteFile(t *testing.T) {
	result, err := Load([]byte(minimalSpec))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, result.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	reparsed, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, "3.1.0", reparsed.Version)
}
