package parser

import "math/big"

// Header holds the circuit metadata read from the header section of an R1CS
// file. PrimeBytes keeps the prime field modulus exactly as serialized
// (little-endian, not necessarily minimal); use Prime for the numeric value.
type Header struct {
	FieldSize    uint32 // byte width of one serialized field element
	PrimeBytes   []byte
	NWires       uint32
	NPubOut      uint32
	NPubIn       uint32
	NPrvtIn      uint32
	NLabels      uint64 // consumed for forward compatibility, never interpreted
	NConstraints uint32
}

// Prime returns the prime field modulus as a big integer.
func (h *Header) Prime() *big.Int {
	return leBytesToBigInt(h.PrimeBytes)
}

// Term is one entry of a linear combination: a wire index and its canonical
// coefficient in [0, prime).
type Term struct {
	WireID      uint32
	Coefficient *big.Int
}

// LinearCombination is a sparse weighted sum of wires, in file order.
// Duplicate wire ids are legal and preserved unmerged; consumers that assume
// one term per wire must merge themselves.
type LinearCombination []Term

// Constraint represents the relation (A·w)·(B·w) = C·w over wire values w.
type Constraint struct {
	A LinearCombination
	B LinearCombination
	C LinearCombination
}

// R1CS is the parsed, immutable document: the header plus the ordered
// constraint list. It is constructed by Parse or ParseFile and never
// modified afterwards.
type R1CS struct {
	header      Header
	constraints []Constraint
}

// Header returns a copy of the parsed header.
func (r *R1CS) Header() Header {
	return r.header
}

// NumWires returns the total number of wires in the circuit, including the
// constant one wire at index 0.
func (r *R1CS) NumWires() uint32 {
	return r.header.NWires
}

// NumPublicOutputs returns the number of public output wires.
func (r *R1CS) NumPublicOutputs() uint32 {
	return r.header.NPubOut
}

// NumPublicInputs returns the number of public input wires.
func (r *R1CS) NumPublicInputs() uint32 {
	return r.header.NPubIn
}

// NumPrivateInputs returns the number of private input wires.
func (r *R1CS) NumPrivateInputs() uint32 {
	return r.header.NPrvtIn
}

// NumConstraints returns the constraint count declared by the header. The
// number of constraints actually loaded is len(Constraints()); the two
// differ only for files missing their constraints section.
func (r *R1CS) NumConstraints() uint32 {
	return r.header.NConstraints
}

// NumLabels returns the label count declared by the header.
func (r *R1CS) NumLabels() uint64 {
	return r.header.NLabels
}

// PrimeFieldModulus returns the raw little-endian bytes of the prime field
// modulus as found in the file.
func (r *R1CS) PrimeFieldModulus() []byte {
	return r.header.PrimeBytes
}

// Constraints returns the parsed constraints in file order.
func (r *R1CS) Constraints() []Constraint {
	return r.constraints
}
