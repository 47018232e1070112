package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Terminal prints canvases inline, using the iTerm image protocol. Other
// terminals will show garbage, so this is opt in.
type Terminal struct {
	Out io.Writer
}

func (t Terminal) Show(c *Canvas) error {
	f, err := os.CreateTemp("", "calipers-*.png")
	if err != nil {
		return errors.Wrap(err, "creating frame file")
	}
	defer os.Remove(f.Name())

	err = c.EncodePNG(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "writing frame %s", f.Name())
	}
	return errors.Wrap(imgcat.CatFile(f.Name(), t.Out), "printing frame")
}

// FrameWriter saves canvases as numbered PNG files in a directory.
type FrameWriter struct {
	Dir   string
	count int
}

func (w *FrameWriter) Write(c *Canvas) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating frame directory %s", w.Dir)
	}
	w.count++
	path := filepath.Join(w.Dir, fmt.Sprintf("frame-%05d.png", w.count))
	if err := c.SavePNG(path); err != nil {
		return "", errors.Wrapf(err, "saving frame %s", path)
	}
	return path, nil
}

func (w *FrameWriter) Count() int {
	return w.count
}
