package parser

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
)

// headerFixedBytes is the size of the fixed-width header fields: field size,
// four u32 counts, the u64 label count and the u32 constraint count.
const headerFixedBytes = 4 + 4*4 + 8 + 4

// readHeader locates the first header section in file order and decodes it.
// Later header sections, if any, are ignored.
func readHeader(r io.ReadSeeker, sections []SectionInfo) (*Header, error) {
	for _, s := range sections {
		if s.Type != SectionHeader {
			continue
		}
		if _, err := r.Seek(s.Offset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to seek to header section: %w", err)
		}
		return decodeHeader(r, s.Size)
	}
	return nil, ErrMissingHeaderSection
}

// decodeHeader reads the header fields in their fixed order. sectionSize
// bounds the declared field size before the prime modulus is allocated.
func decodeHeader(r io.Reader, sectionSize uint64) (*Header, error) {
	var h Header
	var err error

	if h.FieldSize, err = readUint32(r); err != nil {
		return nil, fmt.Errorf("failed to read field size: %w", err)
	}
	if h.FieldSize == 0 {
		return nil, fmt.Errorf("invalid field size 0 in header")
	}
	if uint64(h.FieldSize)+headerFixedBytes > sectionSize {
		return nil, fmt.Errorf("header section of %d bytes is too small for field size %d", sectionSize, h.FieldSize)
	}

	h.PrimeBytes = make([]byte, h.FieldSize)
	if _, err := io.ReadFull(r, h.PrimeBytes); err != nil {
		return nil, fmt.Errorf("failed to read prime modulus: %w", err)
	}
	if h.Prime().Sign() == 0 {
		return nil, fmt.Errorf("invalid all-zero prime modulus in header")
	}

	if h.NWires, err = readUint32(r); err != nil {
		return nil, fmt.Errorf("failed to read wire count: %w", err)
	}
	if h.NPubOut, err = readUint32(r); err != nil {
		return nil, fmt.Errorf("failed to read public output count: %w", err)
	}
	if h.NPubIn, err = readUint32(r); err != nil {
		return nil, fmt.Errorf("failed to read public input count: %w", err)
	}
	if h.NPrvtIn, err = readUint32(r); err != nil {
		return nil, fmt.Errorf("failed to read private input count: %w", err)
	}
	if h.NLabels, err = readUint64(r); err != nil {
		return nil, fmt.Errorf("failed to read label count: %w", err)
	}
	if h.NConstraints, err = readUint32(r); err != nil {
		return nil, fmt.Errorf("failed to read constraint count: %w", err)
	}
	return &h, nil
}

// CurveID maps the header prime to one of the curves implemented by
// gnark-crypto. The second return value is false when the prime is not the
// scalar field of any known curve.
func (h *Header) CurveID() (ecc.ID, bool) {
	prime := h.Prime()
	for _, id := range ecc.Implemented() {
		if id.ScalarField().Cmp(prime) == 0 {
			return id, true
		}
	}
	return ecc.UNKNOWN, false
}

// CurveID reports the curve whose scalar field matches the circuit prime.
func (r *R1CS) CurveID() (ecc.ID, bool) {
	return r.header.CurveID()
}
