package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/openmrn/cdi-gen/internal/config"
	"github.com/openmrn/cdi-gen/internal/templates"
)

// Layout controls how byte tokens are wrapped inside the array body.
type Layout struct {
	// BytesPerGroup is the number of tokens between soft wraps.
	BytesPerGroup int
	// BytesPerLine is the number of tokens after which the echo comment is written.
	BytesPerLine int
	// Indent prefixes every body line.
	Indent string
}

// DefaultLayout returns the layout of the NMRAnet CDI sources: 15 tokens per
// group, 70 per line, three spaces of indentation.
func DefaultLayout() Layout {
	return Layout{
		BytesPerGroup: config.DefaultBytesPerGroup,
		BytesPerLine:  config.DefaultBytesPerLine,
		Indent:        config.DefaultIndent,
	}
}

// Emitter writes a byte stream as a C++ constant uint8_t array definition.
type Emitter struct {
	// Include is the header named in the #include directive.
	Include string
	// Symbol is the name of the array being defined.
	Symbol string
	// Layout controls the token wrapping.
	Layout Layout
}

// NewEmitter returns an Emitter with the NMRAnet defaults.
func NewEmitter() *Emitter {
	return &Emitter{
		Include: config.DefaultInclude,
		Symbol:  config.DefaultSymbol,
		Layout:  DefaultLayout(),
	}
}

// Result summarizes one emitted array.
type Result struct {
	// Input is the name written into the header comment.
	Input string
	// Output is the path of the generated file, if any.
	Output string
	// Bytes is the number of data bytes, not counting the sentinel.
	Bytes int
	// Lines is the number of full lines closed by an echo comment.
	Lines int
}

// Emit reads r to the end and writes the complete array definition to w.
// name is echoed in the header comment and is normally the input path.
// Every input byte becomes one decimal token, in order, and a single 0
// sentinel token closes the data.
func (e *Emitter) Emit(w io.Writer, r io.Reader, name string) (Result, error) {
	res := Result{Input: name}
	if e.Layout.BytesPerGroup <= 0 || e.Layout.BytesPerLine <= 0 {
		return res, fmt.Errorf("invalid layout: group %d, line %d", e.Layout.BytesPerGroup, e.Layout.BytesPerLine)
	}

	bw := bufio.NewWriter(w)

	header := struct {
		Input   string
		Include string
		Symbol  string
	}{
		Input:   name,
		Include: e.Include,
		Symbol:  e.Symbol,
	}
	if err := executeTemplate(bw, templates.Header, header); err != nil {
		return res, err
	}

	if err := e.writeBody(bw, r, &res); err != nil {
		return res, err
	}

	footer := struct{ Sentinel int }{Sentinel: 0}
	if err := executeTemplate(bw, templates.Footer, footer); err != nil {
		return res, err
	}

	if err := bw.Flush(); err != nil {
		return res, fmt.Errorf("failed to write array: %w", err)
	}
	return res, nil
}

// writeBody writes the byte tokens and their echo comments. It leaves the
// writer positioned after an indent, ready for the sentinel.
func (e *Emitter) writeBody(w *bufio.Writer, r io.Reader, res *Result) error {
	br := bufio.NewReader(r)
	indent := e.Layout.Indent

	var (
		cnt     int
		comment []byte
		token   []byte
	)

	w.WriteString(indent)
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		token = appendToken(token[:0], c)
		w.Write(token)
		cnt++
		res.Bytes++
		if isEchoable(c) {
			comment = append(comment, c)
		}

		if cnt >= e.Layout.BytesPerLine {
			w.WriteString("\n")
			w.WriteString(indent)
			w.WriteString("/* ")
			w.Write(comment)
			w.WriteString(" */\n\n")
			w.WriteString(indent)
			cnt = 0
			comment = comment[:0]
			res.Lines++
		} else if cnt%e.Layout.BytesPerGroup == 0 {
			w.WriteString("\n")
			w.WriteString(indent)
		}
	}

	if cnt != 0 {
		w.WriteString(indent)
		w.WriteString("// | ")
		w.Write(comment)
		w.WriteString(" |\n")
		w.WriteString(indent)
	}

	// Write errors are sticky in bufio.Writer.
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write array: %w", err)
	}
	return nil
}

// appendToken appends the decimal form of c followed by ", ". Values below
// 100 get one leading space.
func appendToken(dst []byte, c byte) []byte {
	if c < 100 {
		dst = append(dst, ' ')
	}
	dst = strconv.AppendUint(dst, uint64(c), 10)
	return append(dst, ',', ' ')
}

// isEchoable reports whether c is copied into the line comment. Everything
// from the space character up is echoed, including bytes above 0x7e.
func isEchoable(c byte) bool {
	return c >= ' '
}
