package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vocdoni/circomr1cs/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: example <circuit.r1cs>")
		return
	}

	circuit, err := parser.ParseFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to parse R1CS file: %v", err)
	}

	fmt.Printf("Parsed circuit with %d wires and %d constraints\n",
		circuit.NumWires(), circuit.NumConstraints())
	for i, c := range circuit.Constraints() {
		fmt.Printf("Constraint #%d: %s\n", i, c)
	}

	// Rebuild the circuit as a gnark constraint system when the prime
	// matches a supported curve.
	if _, ok := circuit.CurveID(); ok {
		ccs, err := circuit.CompileGnark()
		if err != nil {
			log.Fatalf("failed to compile gnark constraint system: %v", err)
		}
		fmt.Printf("Compiled gnark constraint system with %d constraints\n", ccs.GetNbConstraints())
	}
}
