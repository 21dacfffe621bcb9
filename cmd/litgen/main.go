// litgen - literal codec generator
//
// Usage:
//
//	litgen -manifest literals.yaml [-o out.go] [-pkg name]
//	litgen version
//
// Reads a YAML manifest of (name, literal) pairs and writes one Go
// file defining a codec type per literal. Intended to be run via
// go:generate:
//
//	//go:generate litgen -manifest literals.yaml -o literals_gen.go
//
// If -o is omitted, the generated source goes to stdout. -pkg
// overrides the package name from the manifest.
package main

import (
	"fmt"
	"os"

	"github.com/Neumenon/litwire/litgen"
)

const version = "0.1.0"

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "version" {
		fmt.Printf("litgen %s\n", version)
		return
	}

	manifestPath := ""
	outPath := ""
	pkgName := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-manifest", "--manifest":
			i++
			if i >= len(args) {
				fatal("missing value for -manifest")
			}
			manifestPath = args[i]
		case "-o", "--o":
			i++
			if i >= len(args) {
				fatal("missing value for -o")
			}
			outPath = args[i]
		case "-pkg", "--pkg":
			i++
			if i >= len(args) {
				fatal("missing value for -pkg")
			}
			pkgName = args[i]
		case "-h", "-help", "--help":
			printUsage()
			return
		default:
			fatal("unknown argument: %s", args[i])
		}
	}

	if manifestPath == "" {
		printUsage()
		os.Exit(1)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		fatal("read manifest: %v", err)
	}

	mf, err := litgen.ParseManifest(data)
	if err != nil {
		fatal("%v", err)
	}

	pkg := mf.Package
	if pkgName != "" {
		pkg = pkgName
	}

	src, err := litgen.Generate(pkg, mf.Defs)
	if err != nil {
		fatal("%v", err)
	}

	if outPath == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		fatal("write %s: %v", outPath, err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  litgen -manifest literals.yaml [-o out.go] [-pkg name]")
	fmt.Fprintln(os.Stderr, "  litgen version")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "litgen: "+format+"\n", args...)
	os.Exit(1)
}
