// Package output formats CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors honors NO_COLOR and dumb terminals in auto mode.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return os.Getenv("TERM") != "dumb"
	}
}

// Printer writes status lines, colored when enabled.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

func NewPrinter(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) Info(format string, args ...any) {
	p.print(p.out, color.FgCyan, "", "", format, args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.print(p.out, color.FgGreen, "✓ ", "[OK] ", format, args...)
}

func (p *Printer) Warning(format string, args ...any) {
	p.print(p.err, color.FgYellow, "⚠ ", "[WARN] ", format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.print(p.err, color.FgRed, "✗ ", "[ERROR] ", format, args...)
}

func (p *Printer) print(w io.Writer, attr color.Attribute, colorPrefix, plainPrefix, format string, args ...any) {
	if p.useColors {
		c := color.New(attr)
		c.EnableColor()
		c.Fprintf(w, colorPrefix+format+"\n", args...)
		return
	}
	fmt.Fprintf(w, plainPrefix+format+"\n", args...)
}

// Mark renders a boolean column.
func (p *Printer) Mark(v bool) string {
	switch {
	case v && p.useColors:
		return color.New(color.FgGreen).Sprint("●")
	case v:
		return "yes"
	default:
		return ""
	}
}
