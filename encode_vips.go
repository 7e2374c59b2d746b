//go:build vips

package main

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/h2non/bimg"
)

// libvips wants encoded bytes, so hand it a png first
func vipsencode(out io.Writer, in image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, in); err != nil {
		return err
	}
	webp, err := bimg.NewImage(buf.Bytes()).Convert(bimg.WEBP)
	if err != nil {
		return err
	}
	_, err = out.Write(webp)
	return err
}

func init() {
	webpEncoders["vips"] = vipsencode
}
