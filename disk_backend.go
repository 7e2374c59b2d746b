package main

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
)

// diskBackend resolves relative paths against Root.
type diskBackend struct {
	Root string
}

func newDiskBackend(root string) diskBackend {
	return diskBackend{Root: root}
}

func (d diskBackend) String() string {
	return "Disk"
}

func (d diskBackend) fullPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.Root, path)
}

func (d diskBackend) Exists(path string) bool {
	if _, err := os.Stat(d.fullPath(path)); err != nil {
		return false
	}
	return true
}

func (d diskBackend) Open(path string) (io.ReadCloser, error) {
	return os.Open(d.fullPath(path))
}

// writeLocalType encodes img and replaces whatever is at path with it,
// creating the parent directory first. The payload is encoded in memory,
// so an encoder failure leaves an existing file alone.
func (d diskBackend) writeLocalType(path string, img image.Image, enc encfunc) (*hash, error) {
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return nil, err
	}

	fullpath := d.fullPath(path)
	if err := os.MkdirAll(filepath.Dir(fullpath), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(fullpath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	if _, err = f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = f.Close(); err != nil {
		return nil, err
	}
	return hashFromBytes(buf.Bytes()), nil
}
