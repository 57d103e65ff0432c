package parser

import (
	"fmt"
	"io"
)

// r1csMagic is the fixed 4-byte tag at the start of every R1CS file.
var r1csMagic = [4]byte{'r', '1', 'c', 's'}

// supportedVersion is the only container version this parser accepts.
const supportedVersion = 1

// Section types defined by the circom R1CS format. Sections of any other
// type are recorded during the scan but never dereferenced.
const (
	SectionHeader      uint32 = 1
	SectionConstraints uint32 = 2
	SectionWireMap     uint32 = 3
)

// SectionInfo records one entry of the section table: the section type, the
// absolute offset of its body and the body size in bytes.
type SectionInfo struct {
	Type   uint32
	Offset int64
	Size   uint64
}

// scanSections verifies the magic and version, then walks the full section
// table, recording every section in file order and seeking past each body
// without interpreting it. Sections may appear in any order in the file, so
// the complete table is needed before any body can be decoded.
//
// Each section's claimed end offset is checked against the file size, so a
// truncated file fails here with a typed error instead of at some later read.
func scanSections(r io.ReadSeeker, fileSize int64, obs Observer) ([]SectionInfo, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if magic != r1csMagic {
		return nil, ErrBadMagic
	}

	version, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read version: %w", err)
	}
	if version != supportedVersion {
		return nil, &UnsupportedVersionError{Version: version}
	}

	nSections, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read section count: %w", err)
	}

	sections := make([]SectionInfo, 0, nSections)
	for i := uint32(0); i < nSections; i++ {
		typ, err := readUint32(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read type of section %d: %w", i, err)
		}
		size, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read size of section %d: %w", i, err)
		}
		offset, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, fmt.Errorf("failed to locate body of section %d: %w", i, err)
		}
		if size > uint64(fileSize) || offset > fileSize-int64(size) {
			return nil, &TruncatedSectionError{Type: typ, Offset: offset, Size: size, FileSize: fileSize}
		}

		s := SectionInfo{Type: typ, Offset: offset, Size: size}
		sections = append(sections, s)
		obs.SectionFound(s)

		if _, err := r.Seek(offset+int64(size), io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to seek past section %d: %w", i, err)
		}
	}
	return sections, nil
}
