package diag

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Render writes a human-readable report of err to w:
//
//	shapes.bn:3:9: error[E0003]: undefined: y
//	  3 | let x: y + 1
//	    |        ^
//
// The source excerpt is shown only when src is non-nil and err carries a
// position inside it.
func Render(w io.Writer, err error, src []byte) error {
	kind := KindOf(err)
	pos := PosOf(err)

	var buf bytes.Buffer
	if pos.IsValid() {
		fmt.Fprintf(&buf, "%s: ", pos)
	}
	fmt.Fprintf(&buf, "error[%s]: %s\n", kind.Code(), Message(err))

	if line, ok := sourceLine(src, int(pos.Line())); ok && pos.IsValid() {
		num := fmt.Sprint(pos.Line())
		gutter := strings.Repeat(" ", len(num))
		fmt.Fprintf(&buf, "  %s | %s\n", num, line)
		fmt.Fprintf(&buf, "  %s | %s^\n", gutter, caretPad(line, int(pos.Col())-1))
	}

	_, werr := w.Write(buf.Bytes())
	return werr
}

// sourceLine returns the 1-based line n of src without its line ending.
func sourceLine(src []byte, n int) (string, bool) {
	if src == nil || n < 1 {
		return "", false
	}
	for i := 1; ; i++ {
		j := bytes.IndexByte(src, '\n')
		if i == n {
			if j >= 0 {
				src = src[:j]
			}
			return string(bytes.TrimRight(src, "\r")), true
		}
		if j < 0 {
			return "", false
		}
		src = src[j+1:]
	}
}

// caretPad returns whitespace as wide as the first n bytes of line,
// keeping tabs so the caret lines up.
func caretPad(line string, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i < len(line) && line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
