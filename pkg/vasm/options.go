package vasm

import "strings"

// Format identifies a target bytecode format.
type Format string

const (
	FormatUnset     Format = ""
	FormatOpenLUD   Format = "openlud"
	FormatNexFUSE   Format = "nexfuse"
	FormatMercury   Format = "mercury"
	FormatSolarisVM Format = "solarisvm"
	FormatJADE      Format = "jade"
	FormatSiAX      Format = "siax"
)

// ParseFormat resolves a CLI/directive argument to a Format, matching
// case-insensitively.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case string(FormatOpenLUD):
		return FormatOpenLUD, true
	case string(FormatNexFUSE):
		return FormatNexFUSE, true
	case string(FormatMercury):
		return FormatMercury, true
	case string(FormatSolarisVM):
		return FormatSolarisVM, true
	case string(FormatJADE):
		return FormatJADE, true
	case string(FormatSiAX):
		return FormatSiAX, true
	default:
		return FormatUnset, false
	}
}

// Endian selects the byte order used when persisting multi-byte width
// elements.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

// Options is the compile options struct: set from the CLI, then mutated
// in place by the preprocessor as it walks the AST.
type Options struct {
	Files             []string
	Output            string
	Format            Format
	StylistEnabled    bool
	StrictStylist     bool
	AllowBigNumbers   bool
	Endian            Endian
	OptimizationLevel uint8

	// formatLockedByCLI records that Format was set from the command line,
	// so a later [compat ...] directive must not override it: CLI --format
	// supersedes the directive, which is applied only if the CLI did not
	// already set the value.
	formatLockedByCLI bool
}

// NewOptions returns Options with sane defaults, matching gocpu's own CLI:
// stylist on, non-strict, little-endian, no optimization.
func NewOptions() *Options {
	return &Options{
		Output:         "a.out",
		StylistEnabled: true,
		Endian:         LittleEndian,
	}
}

// SetFormatFromCLI records the --format flag's value and locks it against
// later [compat ...] directives.
func (o *Options) SetFormatFromCLI(f Format) {
	o.Format = f
	o.formatLockedByCLI = true
}
