package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGnarkCircuitShape(t *testing.T) {
	circuit, err := Parse(bytes.NewReader(simpleCircuitImage()))
	require.NoError(t, err)

	gc, err := circuit.GnarkCircuit()
	require.NoError(t, err)
	// 5 wires: constant one, 1 public output, 1 public input, 2 internal.
	require.Len(t, gc.Public, 2)
	require.Len(t, gc.Secret, 2)
}

func TestGnarkCircuitInconsistentWireCounts(t *testing.T) {
	doc := &R1CS{header: Header{NWires: 1, NPubOut: 3}}
	_, err := doc.GnarkCircuit()
	require.Error(t, err)
}

func TestCompileGnarkSimpleCircuit(t *testing.T) {
	circuit, err := Parse(bytes.NewReader(simpleCircuitImage()))
	require.NoError(t, err)

	ccs, err := circuit.CompileGnark()
	require.NoError(t, err)
	require.GreaterOrEqual(t, ccs.GetNbConstraints(), 1)
}

func TestCompileGnarkUnknownPrime(t *testing.T) {
	doc := &R1CS{header: Header{
		FieldSize:  4,
		PrimeBytes: []byte{7, 0, 0, 0},
		NWires:     2,
	}}
	_, err := doc.CompileGnark()
	require.Error(t, err)
}
