package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsShaderSource(t *testing.T) {
	assert.True(t, IsShaderSource("assets/shaders/scene/scene.frag"))
	assert.True(t, IsShaderSource("x.vert"))
	assert.False(t, IsShaderSource("scene.frag.swp"))
	assert.False(t, IsShaderSource("textures/brick.jpg"))
}

func TestWatchShadersReportsEdits(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "scene")
	require.NoError(t, os.Mkdir(sub, 0o755))

	w, err := WatchShaders(root)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("x"), 0o644))
	frag := filepath.Join(sub, "scene.frag")
	require.NoError(t, os.WriteFile(frag, []byte("void main() {}"), 0o644))

	select {
	case path := <-w.Reloads():
		assert.Equal(t, frag, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload request")
	}

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatchShadersMissingDir(t *testing.T) {
	_, err := WatchShaders(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
