package parser

import (
	"fmt"
	"strings"
)

// String renders the term as coefficient·x{wire}.
func (t Term) String() string {
	return fmt.Sprintf("%v·x%d", t.Coefficient, t.WireID)
}

// String renders the combination as a sum of its terms; an empty combination
// renders as the literal zero.
func (lc LinearCombination) String() string {
	if len(lc) == 0 {
		return "0"
	}
	parts := make([]string, len(lc))
	for i, t := range lc {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// String renders the constraint as (A) · (B) = C. Diagnostic only.
func (c Constraint) String() string {
	return fmt.Sprintf("(%s) · (%s) = %s", c.A, c.B, c.C)
}

// Info returns a human-readable summary of the circuit: wire and constraint
// counts, a prefix of the prime modulus and up to three sample constraints.
func (r *R1CS) Info() string {
	var sb strings.Builder
	sb.WriteString("R1CS circuit information:\n")
	fmt.Fprintf(&sb, "  Total wires: %d\n", r.NumWires())
	fmt.Fprintf(&sb, "  Public outputs: %d\n", r.NumPublicOutputs())
	fmt.Fprintf(&sb, "  Public inputs: %d\n", r.NumPublicInputs())
	fmt.Fprintf(&sb, "  Private inputs: %d\n", r.NumPrivateInputs())
	fmt.Fprintf(&sb, "  Constraints: %d\n", r.NumConstraints())
	fmt.Fprintf(&sb, "  Constraints loaded: %d\n", len(r.constraints))

	prime := r.PrimeFieldModulus()
	n := len(prime)
	if n > 8 {
		n = 8
	}
	fmt.Fprintf(&sb, "  Prime field modulus (first %d bytes): %v\n", n, prime[:n])

	if len(r.constraints) > 0 {
		sb.WriteString("\nSample constraints:\n")
		for i, c := range r.constraints {
			if i == 3 {
				fmt.Fprintf(&sb, "  ... and %d more constraints\n", len(r.constraints)-3)
				break
			}
			fmt.Fprintf(&sb, "  Constraint #%d: %s\n", i, c)
		}
	}
	return sb.String()
}
