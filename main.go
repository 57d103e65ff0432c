package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"github.com/vocdoni/circomr1cs/parser"
)

func init() {
	logger.Logger().Level(zerolog.DebugLevel)
}

func main() {
	strict := flag.Bool("strict", false, "fail when the header declares constraints but no constraints section exists")
	checkWires := flag.Bool("check-wires", false, "reject terms whose wire id is out of range")
	asJSON := flag.Bool("json", false, "print the parsed circuit as JSON instead of the text summary")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <circuit.r1cs>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var opts []parser.Option
	if *strict {
		opts = append(opts, parser.WithStrictConstraints())
	}
	if *checkWires {
		opts = append(opts, parser.WithWireBoundsCheck())
	}

	path := flag.Arg(0)
	fmt.Printf("Reading R1CS file from: %s\n", path)
	circuit, err := parser.ParseFile(path, opts...)
	if err != nil {
		fmt.Printf("Error parsing R1CS file: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		data, err := json.MarshalIndent(circuit, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding circuit as JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Print(circuit.Info())
	if id, ok := circuit.CurveID(); ok {
		fmt.Printf("  Curve: %s\n", id)
	}
}
