package parser

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Circuit replays a parsed Circom circuit as a gnark frontend.Circuit. The
// wire layout follows the Circom convention: wire 0 is the constant one,
// public outputs and public inputs come next, private wires last.
type Circuit struct {
	Public []frontend.Variable `gnark:",public"`
	Secret []frontend.Variable `gnark:",secret"`

	doc *R1CS
}

// Define asserts (A·w)·(B·w) = C·w for every parsed constraint.
func (c *Circuit) Define(api frontend.API) error {
	wires := make([]frontend.Variable, 0, 1+len(c.Public)+len(c.Secret))
	wires = append(wires, 1)
	wires = append(wires, c.Public...)
	wires = append(wires, c.Secret...)

	for i := range c.doc.constraints {
		cs := &c.doc.constraints[i]
		a, err := lcSum(api, cs.A, wires)
		if err != nil {
			return fmt.Errorf("constraint %d (A): %w", i, err)
		}
		b, err := lcSum(api, cs.B, wires)
		if err != nil {
			return fmt.Errorf("constraint %d (B): %w", i, err)
		}
		o, err := lcSum(api, cs.C, wires)
		if err != nil {
			return fmt.Errorf("constraint %d (C): %w", i, err)
		}
		api.AssertIsEqual(api.Mul(a, b), o)
	}
	return nil
}

func lcSum(api frontend.API, lc LinearCombination, wires []frontend.Variable) (frontend.Variable, error) {
	sum := frontend.Variable(0)
	for _, t := range lc {
		if int(t.WireID) >= len(wires) {
			return nil, &WireOutOfRangeError{WireID: t.WireID, NWires: uint32(len(wires))}
		}
		sum = api.Add(sum, api.Mul(t.Coefficient, wires[t.WireID]))
	}
	return sum, nil
}

// GnarkCircuit builds a compile-ready placeholder circuit from the parsed
// document. It fails when the header declares fewer wires than the constant
// one wire plus its public wires.
func (r *R1CS) GnarkCircuit() (*Circuit, error) {
	nPublic := int(r.header.NPubOut) + int(r.header.NPubIn)
	nSecret := int(r.header.NWires) - 1 - nPublic
	if nSecret < 0 {
		return nil, fmt.Errorf("header declares %d wires for %d public wires plus the constant wire",
			r.header.NWires, nPublic)
	}
	return &Circuit{
		Public: make([]frontend.Variable, nPublic),
		Secret: make([]frontend.Variable, nSecret),
		doc:    r,
	}, nil
}

// CompileGnark compiles the parsed circuit into a gnark constraint system
// over the curve whose scalar field matches the circuit prime. It only
// rebuilds structure; proving, verification and witness solving are up to
// the caller.
func (r *R1CS) CompileGnark() (constraint.ConstraintSystem, error) {
	id, ok := r.CurveID()
	if !ok {
		return nil, fmt.Errorf("prime modulus does not match the scalar field of any curve implemented by gnark-crypto")
	}
	circuit, err := r.GnarkCircuit()
	if err != nil {
		return nil, err
	}
	// Circom circuits may carry wires no constraint references.
	ccs, err := frontend.Compile(id.ScalarField(), r1cs.NewBuilder, circuit, frontend.IgnoreUnconstrainedInputs())
	if err != nil {
		return nil, fmt.Errorf("failed to compile circuit: %w", err)
	}
	return ccs, nil
}
