package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-kit/log"
)

type sourceNotFoundError struct {
	Path string
}

func (e *sourceNotFoundError) Error() string {
	return "Source file not found: " + e.Path
}

type destination struct {
	Name string
	Path string
	enc  encfunc
}

type converter struct {
	source       string
	destinations []destination
	backend      backend
	logger       log.Logger
	metrics      *runMetrics
}

// newConverter resolves the encoders for both destinations up front, so a
// bad extension or codec is caught before anything touches the disk.
func newConverter(s siteConfig, sl log.Logger, m *runMetrics) (*converter, error) {
	c := &converter{
		source:  s.Source,
		backend: s.Backend,
		logger:  sl,
		metrics: m,
	}
	for _, d := range []destination{
		{Name: "primary", Path: s.Primary},
		{Name: "secondary", Path: s.Secondary},
	} {
		enc, err := encoderFor(d.Path, s.Codec)
		if err != nil {
			return nil, err
		}
		d.enc = enc
		c.destinations = append(c.destinations, d)
	}
	return c, nil
}

// Run decodes the source once and writes it to each destination in order,
// stopping at the first error. A destination already written stays written.
func (c *converter) Run() error {
	t0 := time.Now()
	err := c.run()
	switch {
	case err == nil:
		c.metrics.conversions.WithLabelValues(resultSuccess).Inc()
		c.metrics.duration.Observe(time.Since(t0).Seconds())
		_ = c.logger.Log("level", "INFO", "msg", "finished conversion", "time", time.Since(t0))
	case isSourceNotFound(err):
		c.metrics.conversions.WithLabelValues(resultMissingSource).Inc()
		_ = c.logger.Log("level", "ERR", "msg", "source file not found",
			"path", c.backend.fullPath(c.source))
	default:
		c.metrics.conversions.WithLabelValues(resultFailure).Inc()
		_ = c.logger.Log("level", "ERR", "msg", "conversion failed", "error", err)
	}
	return err
}

func (c *converter) run() error {
	if !c.backend.Exists(c.source) {
		return &sourceNotFoundError{Path: c.backend.fullPath(c.source)}
	}

	f, err := c.backend.Open(c.source)
	if err != nil {
		return fmt.Errorf("opening %s: %w", c.backend.fullPath(c.source), err)
	}
	img, format, err := decode(bufio.NewReader(f))
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", c.backend.fullPath(c.source), err)
	}
	b := img.Bounds()
	_ = c.logger.Log("level", "INFO", "msg", "decoded source", "path", c.source,
		"format", format, "width", b.Dx(), "height", b.Dy())

	for _, d := range c.destinations {
		digest, err := c.backend.writeLocalType(d.Path, img, d.enc)
		if err != nil {
			return fmt.Errorf("writing %s: %w", c.backend.fullPath(d.Path), err)
		}
		c.metrics.writes.WithLabelValues(d.Name).Inc()
		_ = c.logger.Log("level", "INFO", "msg", "wrote destination",
			"destination", d.Name, "path", d.Path, "sha1", digest)
	}
	return nil
}

func isSourceNotFound(err error) bool {
	var nf *sourceNotFoundError
	return errors.As(err, &nf)
}

// report prints the single result line for the user.
func report(w io.Writer, err error) {
	var nf *sourceNotFoundError
	switch {
	case err == nil:
		fmt.Fprintln(w, "Conversion successful")
	case errors.As(err, &nf):
		fmt.Fprintln(w, nf.Error())
	default:
		fmt.Fprintf(w, "Error converting image: %v\n", err)
	}
}
