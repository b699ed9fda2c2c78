package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/janjongboom/qcbor-go/cborgen/core"
)

// CLI is cborgen's command-line surface: generate MarshalCBOR/
// UnmarshalCBOR pairs for struct types, either for a single file or
// for a whole directory tree.
//
// core.Run fails closed on any field it cannot encode (see
// buildStructSpec), so in directory mode one unsupported field in one
// struct normally aborts the entire walk. --keep-going trades that
// for a best-effort run: failing files are skipped and reported at
// the end instead of stopping the walk.
type CLI struct {
	Input     string   `short:"i" help:"Input Go file or directory (recursive)" default:"."`
	Output    string   `short:"o" help:"Output file (file input only; defaults to {input}_cbor.go)"`
	Structs   []string `short:"s" help:"Only generate for these struct types (may be repeated)"`
	KeepGoing bool     `short:"k" help:"In directory mode, skip files that fail to generate instead of aborting the walk"`
	Verbose   bool     `short:"v" help:"Enable verbose diagnostics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cborgen"),
		kong.Description("Generate MarshalCBOR/UnmarshalCBOR methods for struct types."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	input := strings.TrimSpace(cli.Input)
	if input == "" {
		input = "."
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		if cli.Output != "" {
			return errors.New("--output is not allowed when input is a directory")
		}
		return runForDir(input, cli)
	}

	out := cli.Output
	if strings.TrimSpace(out) == "" {
		out = defaultOutputPath(input)
	}
	return generateForFile(input, out, cli.Verbose, cli.Structs)
}

// runForDir generates a "*_cbor.go" companion for every eligible Go
// source file under dir. It first collects the candidate paths, then
// processes that list, so a --keep-going run can finish the walk even
// after a file fails: failures are recorded and reported together
// once every candidate has had a chance to run, rather than aborting
// mid-walk.
func runForDir(dir string, cli *CLI) error {
	paths, err := collectSources(dir)
	if err != nil {
		return err
	}

	var failures []string
	for _, path := range paths {
		outPath := defaultOutputPath(path)
		if err := generateForFile(path, outPath, cli.Verbose, cli.Structs); err != nil {
			if !cli.KeepGoing {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(os.Stderr, "cborgen: %s: %v\n", path, err)
			failures = append(failures, path)
			continue
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d file(s) failed to generate: %s", len(failures), len(paths), strings.Join(failures, ", "))
	}
	return nil
}

// collectSources walks dir and returns every regular .go file
// eligible for generation: not a test file, and not an already
// generated "*_cbor.go" companion.
func collectSources(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %q: %w", path, err)
		}
		if entry.IsDir() {
			return nil
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			return nil
		}
		if strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, "_cbor.go") {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %q: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// defaultOutputPath derives the "*_cbor.go" filename for
// a given input Go file path.
func defaultOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	if !strings.HasSuffix(base, ".go") {
		return filepath.Join(dir, base+"_cbor.go")
	}
	name := strings.TrimSuffix(base, ".go") + "_cbor.go"
	return filepath.Join(dir, name)
}

func generateForFile(inputPath, outputPath string, verbose bool, structs []string) error {
	return core.Run(inputPath, outputPath, core.Options{Verbose: verbose, Structs: structs})
}
