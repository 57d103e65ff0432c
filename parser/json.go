package parser

import "encoding/json"

// circuitJSON is the JSON shape of a parsed circuit, following the snarkjs
// field naming. Constraint terms are emitted as arrays instead of wire-keyed
// maps so duplicate wire ids survive the encoding.
type circuitJSON struct {
	FieldSize    uint32          `json:"n8"`
	Prime        string          `json:"prime"`
	NWires       uint32          `json:"nVars"`
	NPubOut      uint32          `json:"nOutputs"`
	NPubIn       uint32          `json:"nPubInputs"`
	NPrvtIn      uint32          `json:"nPrvInputs"`
	NLabels      uint64          `json:"nLabels"`
	NConstraints uint32          `json:"nConstraints"`
	Constraints  [][3][]termJSON `json:"constraints"`
}

type termJSON struct {
	Wire  uint32 `json:"wire"`
	Value string `json:"value"`
}

// MarshalJSON encodes the parsed circuit with decimal coefficient strings.
func (r *R1CS) MarshalJSON() ([]byte, error) {
	out := circuitJSON{
		FieldSize:    r.header.FieldSize,
		Prime:        r.header.Prime().String(),
		NWires:       r.header.NWires,
		NPubOut:      r.header.NPubOut,
		NPubIn:       r.header.NPubIn,
		NPrvtIn:      r.header.NPrvtIn,
		NLabels:      r.header.NLabels,
		NConstraints: r.header.NConstraints,
		Constraints:  make([][3][]termJSON, len(r.constraints)),
	}
	for i, c := range r.constraints {
		out.Constraints[i] = [3][]termJSON{lcJSON(c.A), lcJSON(c.B), lcJSON(c.C)}
	}
	return json.Marshal(out)
}

func lcJSON(lc LinearCombination) []termJSON {
	terms := make([]termJSON, len(lc))
	for i, t := range lc {
		terms[i] = termJSON{Wire: t.WireID, Value: t.Coefficient.String()}
	}
	return terms
}
