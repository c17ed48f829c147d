package inspect

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/elements"
	"github.com/npillmayer/elements/bytestr"
)

// Printer lists payloads of type T, using label to render each of them.
type Printer[T any] struct {
	config *Config
	label  func(T) string
	pos    *color.Color
	absent *color.Color
}

// NewPrinter creates a printer. If label is nil, payloads are rendered with
// fmt's %v verb. If config is nil, ConfigFromTerminal is consulted.
func NewPrinter[T any](label func(T) string, config *Config) *Printer[T] {
	if label == nil {
		label = func(item T) string { return fmt.Sprintf("%v", item) }
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	p := &Printer[T]{
		config: config,
		label:  label,
		pos:    color.New(color.FgBlue),
		absent: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.pos, p.absent} {
		if config.Colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print lists the payloads of c on stdout.
func (p *Printer[T]) Print(c elements.Container[T]) error {
	return p.Fprint(os.Stdout, c)
}

// Fprint lists the payloads of c on w: a header line with the number of
// payloads, then one line per payload with its position and its label.
func (p *Printer[T]) Fprint(w io.Writer, c elements.Container[T]) error {
	if elements.IsAbsent(c) {
		_, err := p.absent.Fprintln(w, "<absent>")
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: container is nil", elements.ErrAbsentInput)
	}
	var labels []string
	var widths []int
	maxw := 0
	c.ForEach(func(item T) bool {
		l := p.label(item)
		lw := bytestr.StringWidth(l, p.config.Context)
		labels, widths = append(labels, l), append(widths, lw)
		maxw = max(maxw, lw)
		return true
	})
	digits := len(strconv.Itoa(max(len(labels)-1, 0)))
	if avail := p.config.LineWidth - digits - 4; p.config.LineWidth > 0 && maxw > avail {
		maxw = max(avail, 0)
	}
	tracer().Debugf("inspect: listing %d payloads, label column %d cells", len(labels), maxw)
	lw := &lineWriter{w: w}
	lw.printf("%d items\n", len(labels))
	for i, l := range labels {
		if lw.err != nil {
			break
		}
		_, err := p.pos.Fprintf(w, "%*d", digits, i)
		lw.check(err)
		lw.printf("  %s%s |\n", l, strings.Repeat(" ", max(maxw-widths[i], 0)))
	}
	return lw.err
}

// lineWriter remembers the first write error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func (lw *lineWriter) check(err error) {
	if lw.err == nil {
		lw.err = err
	}
}
