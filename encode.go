package main

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	// source formats beyond the stdlib ones
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var jpegOptions = jpeg.Options{Quality: 90}
var gifOptions = gif.Options{}
var webpOptions = nativewebp.Options{}

type encfunc func(io.Writer, image.Image) error

func jpgencode(out io.Writer, in image.Image) error {
	return jpeg.Encode(out, in, &jpegOptions)
}

func gifencode(out io.Writer, in image.Image) error {
	return gif.Encode(out, in, &gifOptions)
}

// nativewebp only produces lossless VP8L, which is what we want for logos.
func webpencode(out io.Writer, in image.Image) error {
	return nativewebp.Encode(out, in, &webpOptions)
}

const defaultCodec = "native"

// webpEncoders holds the available WebP codecs by name. The vips build
// registers a libvips backed one.
var webpEncoders = map[string]encfunc{
	defaultCodec: webpencode,
}

var extencoders = map[string]encfunc{
	".jpg":  jpgencode,
	".jpeg": jpgencode,
	".png":  png.Encode,
	".gif":  gifencode,
}

// encoderFor picks the encoder for a destination path by its extension.
// codec only matters for .webp destinations.
func encoderFor(path, codec string) (encfunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		enc, ok := webpEncoders[codec]
		if !ok {
			return nil, fmt.Errorf("unknown webp codec %q", codec)
		}
		return enc, nil
	}
	enc, ok := extencoders[ext]
	if !ok {
		return nil, fmt.Errorf("no encoder for extension %q (%s)", ext, path)
	}
	return enc, nil
}

func decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
