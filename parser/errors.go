package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when the file does not start with the "r1cs" tag.
	ErrBadMagic = errors.New("invalid R1CS file: wrong magic bytes")

	// ErrMissingHeaderSection is returned when no header section exists after a
	// full scan of the section table.
	ErrMissingHeaderSection = errors.New("R1CS file is missing header section")

	// ErrMissingConstraintsSection is returned in strict mode when the header
	// declares constraints but no constraints section exists.
	ErrMissingConstraintsSection = errors.New("R1CS file is missing constraints section")
)

// UnsupportedVersionError is returned when the container version is not the
// supported one. It carries the offending value for diagnostics.
type UnsupportedVersionError struct {
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported R1CS version: %d", e.Version)
}

// TruncatedSectionError is returned when a section's declared size extends
// past the end of the file.
type TruncatedSectionError struct {
	Type     uint32
	Offset   int64
	Size     uint64
	FileSize int64
}

func (e *TruncatedSectionError) Error() string {
	return fmt.Sprintf("truncated R1CS file: section type %d at offset %d declares %d bytes but the file is %d bytes long",
		e.Type, e.Offset, e.Size, e.FileSize)
}

// FieldDecodeError is returned when the raw bytes of a coefficient cannot be
// read in full. The canonicalizing reduction itself is total, so this only
// surfaces short reads on malformed files.
type FieldDecodeError struct {
	Err error
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf("failed to decode field element: %v", e.Err)
}

func (e *FieldDecodeError) Unwrap() error {
	return e.Err
}

// WireOutOfRangeError is returned by the wire bounds check when a term
// references a wire at or beyond the header wire count.
type WireOutOfRangeError struct {
	WireID uint32
	NWires uint32
}

func (e *WireOutOfRangeError) Error() string {
	return fmt.Sprintf("wire id %d out of range: circuit declares %d wires", e.WireID, e.NWires)
}
