package parser

import (
	"bufio"
	"fmt"
	"io"
)

// readConstraints locates the first constraints section in file order and
// decodes the number of constraint records declared by the header. The found
// flag is false when no constraints section exists; the missing-section
// policy is the caller's.
func readConstraints(r io.ReadSeeker, sections []SectionInfo, h *Header, cfg *parseConfig) ([]Constraint, bool, error) {
	for _, s := range sections {
		if s.Type != SectionConstraints {
			continue
		}
		if _, err := r.Seek(s.Offset, io.SeekStart); err != nil {
			return nil, false, fmt.Errorf("failed to seek to constraints section: %w", err)
		}
		constraints, err := decodeConstraints(bufio.NewReader(r), h, cfg)
		if err != nil {
			return nil, true, err
		}
		return constraints, true, nil
	}
	return nil, false, nil
}

// decodeConstraints reads h.NConstraints records, each made of the three
// linear combinations A, B and C in that fixed order.
func decodeConstraints(r io.Reader, h *Header, cfg *parseConfig) ([]Constraint, error) {
	codec := newFieldCodec(h)
	constraints := make([]Constraint, 0, h.NConstraints)
	for i := uint32(0); i < h.NConstraints; i++ {
		var c Constraint
		var err error
		if c.A, err = decodeLinearCombination(r, codec, h, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode constraint %d (A): %w", i, err)
		}
		if c.B, err = decodeLinearCombination(r, codec, h, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode constraint %d (B): %w", i, err)
		}
		if c.C, err = decodeLinearCombination(r, codec, h, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode constraint %d (C): %w", i, err)
		}
		constraints = append(constraints, c)
		cfg.observer.ConstraintParsed(int(i), &c)
	}
	return constraints, nil
}

// decodeLinearCombination reads one sparse (wire id, coefficient) list in
// file order. Wire ids are not validated against the header wire count
// unless WithWireBoundsCheck was set.
func decodeLinearCombination(r io.Reader, codec *fieldCodec, h *Header, cfg *parseConfig) (LinearCombination, error) {
	nTerms, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read term count: %w", err)
	}
	lc := make(LinearCombination, nTerms)
	for i := range lc {
		wire, err := readUint32(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read wire id of term %d: %w", i, err)
		}
		if cfg.checkWireBounds && wire >= h.NWires {
			return nil, &WireOutOfRangeError{WireID: wire, NWires: h.NWires}
		}
		coeff, err := codec.read(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read coefficient of term %d: %w", i, err)
		}
		lc[i] = Term{WireID: wire, Coefficient: coeff}
	}
	return lc, nil
}
