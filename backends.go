package main

import (
	"fmt"
	"image"
	"io"
)

type backend interface {
	fmt.Stringer
	Exists(path string) bool
	Open(path string) (io.ReadCloser, error)
	writeLocalType(path string, img image.Image, enc encfunc) (*hash, error)
	fullPath(path string) string
}
