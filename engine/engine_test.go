package engine

import (
	"os"
	"path/filepath"
	"testing"

	iface "ObbTileServer/interface"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestReadLinesReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	err := os.WriteFile(path, []byte("plane\r\nship\n\nharbor\n"), 0o644)
	assert.NoError(t, err)

	names, err := ReadLinesReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"plane", "ship", "harbor"}, names)

	_, err = ReadLinesReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestDetector_Unloaded(t *testing.T) {
	d := &Detector{}

	t.Run("Test New without backend", func(t *testing.T) {
		assert.False(t, d.New())
	})

	t.Run("Test LoadModel without backend", func(t *testing.T) {
		names := iface.NamesConf{IsFile: false, Data: []string{"plane", "ship"}}
		ok, err := d.LoadModel("model/test.onnx", names, 0.5, 0.4, false)
		assert.False(t, ok)
		assert.ErrorIs(t, err, iface.ErrDetectorUnavailable)
	})

	t.Run("Test LoadModel bad names", func(t *testing.T) {
		ok, err := d.LoadModel("model/test.onnx", iface.NamesConf{IsFile: false, Data: 42}, 0.5, 0.4, false)
		assert.False(t, ok)
		assert.ErrorIs(t, err, iface.ErrDetectorUnavailable)
	})

	t.Run("Test Detect before load", func(t *testing.T) {
		img := gocv.NewMatWithSize(64, 64, gocv.MatTypeCV8UC3)
		defer img.Close()
		_, err := d.Detect(img)
		assert.ErrorIs(t, err, iface.ErrDetectorUnavailable)
	})

	t.Run("Test Destroy resets", func(t *testing.T) {
		d.Destroy()
		assert.Equal(t, "", d.ModelPath)
		assert.Equal(t, float32(0), d.Conf)
		assert.Equal(t, float32(0), d.Iou)
		assert.Equal(t, false, d.UseGPU)
		assert.Equal(t, uintptr(0), d.Instance)
		assert.Equal(t, UNREGISTERED, d.State)
	})
}

func TestLoadEngine_Errors(t *testing.T) {
	t.Run("Test missing config", func(t *testing.T) {
		err := LoadEngine(filepath.Join(t.TempDir(), "backend.yaml"))
		assert.ErrorIs(t, err, iface.ErrDetectorUnavailable)
	})

	t.Run("Test unsupported backend", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backend.yaml")
		err := os.WriteFile(path, []byte("useBackend: tensorrt\n"), 0o644)
		assert.NoError(t, err)
		err = LoadEngine(path)
		assert.ErrorIs(t, err, iface.ErrDetectorUnavailable)
	})

	t.Run("Test missing library", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "backend.yaml")
		err := os.WriteFile(path, []byte("useBackend: obb\nbackendDir: "+dir+"\n"), 0o644)
		assert.NoError(t, err)
		err = LoadEngine(path)
		assert.ErrorIs(t, err, iface.ErrDetectorUnavailable)
	})
}
