package render

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageName(t *testing.T) {
	assert.Equal(t, "vertex", stageName(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", stageName(gl.FRAGMENT_SHADER))
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.glsl")
	require.NoError(t, os.WriteFile(path, []byte("#version 330 core\n"), 0644))
	assert.Equal(t, "#version 330 core\n", LoadSource(path))
}

func TestLoadSourceMissingFile(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "does_not_exist.glsl")
	source := LoadSource(path)

	// A missing file yields empty source plus a logged diagnostic, not an
	// error return.
	assert.Empty(t, source)
	assert.Contains(t, buf.String(), "does_not_exist.glsl")
}
