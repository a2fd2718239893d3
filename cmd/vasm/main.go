// Command vasm compiles LR Assembly source into one of six target
// bytecode formats.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/voltlang/vasm/pkg/vasm"
)

const helpText = `usage: vasm [options] FILE

  -f, --format FORMAT       target format: openlud, nexfuse, mercury, solarisvm, jade, siax
  -o, --output PATH         output path (default a.out)
      --no-stylist          disable the style pass
      --strict, --enforce-stylist
                             abort on any style diagnostic
  -ln, --allow-large-numbers disable lex-time numeric range checking
  -le                       force little-endian output
  -be                       force big-endian output
  -h, --help                show this page
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("vasm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		format    string
		output    string
		noStylist bool
		strict    bool
		allowBig  bool
		littleEnd bool
		bigEnd    bool
		showHelp  bool
	)

	fs.StringVar(&format, "f", "", "target format")
	fs.StringVar(&format, "format", "", "target format")
	fs.StringVar(&output, "o", "a.out", "output path")
	fs.StringVar(&output, "output", "a.out", "output path")
	fs.BoolVar(&noStylist, "no-stylist", false, "disable the style pass")
	fs.BoolVar(&strict, "strict", false, "abort on any style diagnostic")
	fs.BoolVar(&strict, "enforce-stylist", false, "abort on any style diagnostic")
	fs.BoolVar(&allowBig, "ln", false, "disable lex-time numeric range checking")
	fs.BoolVar(&allowBig, "allow-large-numbers", false, "disable lex-time numeric range checking")
	fs.BoolVar(&littleEnd, "le", false, "force little-endian output")
	fs.BoolVar(&bigEnd, "be", false, "force big-endian output")
	fs.BoolVar(&showHelp, "h", false, "show help")
	fs.BoolVar(&showHelp, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showHelp {
		printHelp()
		return 0
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "vasm: exactly one input file is required")
		fs.Usage()
		return 2
	}
	inputPath := rest[0]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vasm: failed to read %q: %v\n", inputPath, err)
		return 1
	}

	opts := vasm.NewOptions()
	opts.Files = []string{inputPath}
	opts.Output = output
	opts.StylistEnabled = !noStylist
	opts.StrictStylist = strict
	opts.AllowBigNumbers = allowBig

	if format != "" {
		f, ok := vasm.ParseFormat(format)
		if !ok {
			fmt.Fprintf(os.Stderr, "vasm: unknown format %q\n", format)
			return 1
		}
		opts.SetFormatFromCLI(f)
	}

	switch {
	case littleEnd && bigEnd:
		fmt.Fprintln(os.Stderr, "vasm: use either -le or -be, not both")
		return 2
	case littleEnd:
		opts.Endian = vasm.LittleEndian
	case bigEnd:
		opts.Endian = vasm.BigEndian
	}

	reporter := vasm.NewReporter(os.Stderr, inputPath, string(source), isTerminal(os.Stderr))

	result, compileErr := vasm.Compile(string(source), opts)
	for _, d := range diagnosticsOrEmpty(result) {
		reporter.ReportDiagnostic(d)
	}
	if compileErr != nil {
		reporter.ReportError(compileErr)
		return 1
	}

	if err := os.WriteFile(opts.Output, result.Bytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "vasm: failed to write %q: %v\n", opts.Output, err)
		return 1
	}

	fmt.Printf("compiled %d bytes -> %s\n", len(result.Bytes), opts.Output)
	return 0
}

func diagnosticsOrEmpty(r *vasm.Result) []vasm.Diagnostic {
	if r == nil {
		return nil
	}
	return r.Diagnostics
}

func printHelp() {
	if path, err := exec.LookPath("man"); err == nil {
		cmd := exec.Command(path, "vasm")
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if cmd.Run() == nil {
			return
		}
	}
	fmt.Print(helpText)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
