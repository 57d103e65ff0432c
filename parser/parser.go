// Package parser reads Circom R1CS binary files into an immutable document
// model and converts the result into Gnark-compatible structures.
//
// The container is section based and section order is not guaranteed, so a
// parse is two passes over a seekable input: first the full section table is
// scanned, then the header and constraints sections are decoded in dependency
// order. Coefficients are canonicalized while decoding; any zero-padded
// encoding of a residue yields the same element.
package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark/logger"
)

type parseConfig struct {
	observer          Observer
	strictConstraints bool
	checkWireBounds   bool
}

// Option configures a Parse or ParseFile call.
type Option func(*parseConfig)

// WithObserver routes parse checkpoint events to o instead of the default
// zerolog-backed observer.
func WithObserver(o Observer) Option {
	return func(cfg *parseConfig) { cfg.observer = o }
}

// WithStrictConstraints makes a missing constraints section an error when the
// header declares a nonzero constraint count. The default mirrors the
// reference tooling: an empty constraint list and a logged warning.
func WithStrictConstraints() Option {
	return func(cfg *parseConfig) { cfg.strictConstraints = true }
}

// WithWireBoundsCheck rejects terms whose wire id is not below the header
// wire count. The format itself does not require this check.
func WithWireBoundsCheck() Option {
	return func(cfg *parseConfig) { cfg.checkWireBounds = true }
}

// ParseFile opens and parses the R1CS file at path. The file handle is
// closed on every return path.
func ParseFile(path string, opts ...Option) (*R1CS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open R1CS file: %w", err)
	}
	defer f.Close()
	return Parse(f, opts...)
}

// Parse reads a full R1CS container from r. The reader must support seeking:
// sections may appear in any byte order, so the whole section table is
// scanned before any section body is interpreted. On error no document is
// returned; there is no partial success.
func Parse(r io.ReadSeeker, opts ...Option) (*R1CS, error) {
	cfg := parseConfig{observer: newLogObserver()}
	for _, opt := range opts {
		opt(&cfg)
	}

	fileSize, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine input size: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind input: %w", err)
	}

	sections, err := scanSections(r, fileSize, cfg.observer)
	if err != nil {
		return nil, err
	}

	header, err := readHeader(r, sections)
	if err != nil {
		return nil, err
	}
	cfg.observer.HeaderParsed(header)

	constraints, found, err := readConstraints(r, sections, header, &cfg)
	if err != nil {
		return nil, err
	}
	if !found && header.NConstraints > 0 {
		if cfg.strictConstraints {
			return nil, ErrMissingConstraintsSection
		}
		log := logger.Logger()
		log.Warn().
			Uint32("declared", header.NConstraints).
			Msg("r1cs header declares constraints but the file has no constraints section")
	}

	return &R1CS{header: *header, constraints: constraints}, nil
}
