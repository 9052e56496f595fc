// Package output provides context-aware output for postgen.
// Stdout carries the setup transcript and the guidance block.
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/raphi011/postgen/internal/ui/styles"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
// When styled, status lines are colored with the shared lipgloss styles.
type Printer struct {
	w      io.Writer
	styled bool
}

// New creates a new unstyled Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewStyled creates a Printer that colors status lines when styled is true.
func NewStyled(w io.Writer, styled bool) *Printer {
	return &Printer{w: w, styled: styled}
}

// WithPrinter attaches an unstyled Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// WithStyledPrinter attaches p to the context.
func WithStyledPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Success writes a line in the success color.
func (p *Printer) Success(line string) {
	p.styledLine(line, styles.SuccessStyle.Render)
}

// Warn writes a line in the warning color.
func (p *Printer) Warn(line string) {
	p.styledLine(line, styles.WarningStyle.Render)
}

// Error writes a line in the error color.
func (p *Printer) Error(line string) {
	p.styledLine(line, styles.ErrorStyle.Render)
}

// Muted writes a dimmed line.
func (p *Printer) Muted(line string) {
	p.styledLine(line, styles.MutedStyle.Render)
}

// Heading writes a bold line.
func (p *Printer) Heading(line string) {
	p.styledLine(line, styles.Bold.Render)
}

func (p *Printer) styledLine(line string, render func(...string) string) {
	if p.styled {
		line = render(line)
	}
	fmt.Fprintln(p.w, line)
}

// Styled reports whether status lines are colored.
func (p *Printer) Styled() bool {
	return p.styled
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
