// Command mathdown preprocesses Markdown with LaTeX math spans and
// writes the result as text, HTML or ANSI terminal output.
//
// Usage:
//
//	mathdown [flags] [input.md]
//
// With no input file, the document is read from stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	mathdown "github.com/riverfjs/mathdown-go"
)

var ErrUnknownFormat = errors.New("unknown format (want text, html or term)")

func main() {
	var (
		format      = pflag.StringP("format", "f", "text", "output format: text, html or term")
		output      = pflag.StringP("output", "o", "", "output file (default stdout)")
		symbolsPath = pflag.String("symbols", "", "YAML file with extra symbol replacements")
		noMath      = pflag.Bool("no-math", false, "skip math conversion, pass $ spans through")
		wordWrap    = pflag.Int("wrap", 80, "word wrap column for term output")
		verbose     = pflag.BoolP("verbose", "v", false, "log processing details to stderr")
	)
	pflag.Parse()

	if err := run(pflag.Args(), *format, *output, *symbolsPath, *noMath, *wordWrap, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "mathdown: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, format, output, symbolsPath string, noMath bool, wordWrap int, verbose bool) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	opts := []mathdown.Option{
		mathdown.WithMathConversion(!noMath),
		mathdown.WithConfig(&mathdown.RenderConfig{WordWrap: wordWrap}),
	}
	if symbolsPath != "" {
		symbols, err := mathdown.LoadSymbolsFile(symbolsPath)
		if err != nil {
			return err
		}
		if verbose {
			mathdown.Logger.Printf("loaded %d extra symbols from %s", len(symbols), symbolsPath)
		}
		opts = append(opts, mathdown.WithExtraSymbols(symbols))
	}

	start := time.Now()
	var result string
	switch format {
	case "text":
		result = mathdown.RenderableText(input, opts...)
	case "html":
		result, err = mathdown.RenderHTML(context.Background(), input, opts...)
	case "term":
		result, err = mathdown.RenderTerminal(input, opts...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}
	if verbose {
		mathdown.Logger.Printf("processed %d bytes to %d bytes of %s in %s",
			len(input), len(result), format, time.Since(start))
	}

	return writeOutput(output, result)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func writeOutput(path, result string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, result)
		return err
	}
	if err := os.WriteFile(path, []byte(result), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
