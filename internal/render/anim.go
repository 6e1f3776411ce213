package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	"github.com/icza/mjpeg"

	"outbreak/internal/outbreak"
)

// FrameDelay is the GIF delay per frame in 1/100 s.
const FrameDelay = 75

func Frames(snaps []outbreak.Snapshot, cellPx int) []*image.RGBA {
	out := make([]*image.RGBA, len(snaps))
	for i, s := range snaps {
		out[i] = Frame(s, cellPx)
	}
	return out
}

func WriteGIF(w io.Writer, frames []*image.RGBA, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames")
	}
	pal := Palette()
	anim := &gif.GIF{}
	for _, f := range frames {
		p := image.NewPaletted(f.Bounds(), pal)
		draw.Draw(p, p.Bounds(), f, f.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

// WriteAVI stores frames as a Motion-JPEG AVI at path.
func WriteAVI(path string, frames []*image.RGBA, fps int32) (err error) {
	if len(frames) == 0 {
		return fmt.Errorf("no frames")
	}
	b := frames[0].Bounds()
	aw, err := mjpeg.New(path, int32(b.Dx()), int32(b.Dy()), fps)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := aw.Close(); err == nil {
			err = cerr
		}
	}()
	var buf bytes.Buffer
	for i, f := range frames {
		buf.Reset()
		if err := jpeg.Encode(&buf, f, &jpeg.Options{Quality: 90}); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// Animate writes <dir>/<name>.gif or <dir>/<name>.avi and returns the path.
func Animate(dir, name, format string, snaps []outbreak.Snapshot, cellPx int) (string, error) {
	frames := Frames(snaps, cellPx)
	switch format {
	case "gif":
		path := filepath.Join(dir, name+".gif")
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		if err := WriteGIF(f, frames, FrameDelay); err != nil {
			f.Close()
			return "", err
		}
		return path, f.Close()
	case "avi":
		path := filepath.Join(dir, name+".avi")
		// 0.75 s per frame rounds to 1 fps
		return path, WriteAVI(path, frames, 1)
	}
	return "", fmt.Errorf("unknown animation format %q", format)
}
