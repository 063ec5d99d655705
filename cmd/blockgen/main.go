// blockgen generates linked race block definitions from a YAML description.
// For each block it emits three coupled definitions over pkg/race: the
// identifier type with one constant per member, the linked block type, and
// the matching result variant. With -arities it instead regenerates the
// generic BlockN/LinkN/ResultN containers themselves.
//
// Usage:
//
//	blockgen -config blocks.yaml -o blocks_gen.go
//	blockgen -arities 5 -package race -o block_gen.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cecil-the-coder/race-kit/internal/gen"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML block-definition file")
	arities := flag.Int("arities", 0, "Generate the generic containers for arities 1..N instead of named blocks")
	pkg := flag.String("package", "race", "Package name for -arities output")
	outPath := flag.String("o", "", "Output file (defaults to stdout)")
	flag.Parse()

	var (
		src []byte
		err error
	)
	switch {
	case *arities > 0:
		src, err = gen.EmitArities(*pkg, *arities)
	case *configPath != "":
		var f *gen.File
		if f, err = gen.Load(*configPath); err == nil {
			src, err = gen.Emit(f)
		}
	default:
		log.Fatal("Error: either -config or -arities is required")
	}
	if err != nil {
		log.Fatalf("blockgen: %v", err)
	}

	if *outPath == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			log.Fatalf("write stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
	fmt.Printf("wrote %s\n", *outPath)
}
