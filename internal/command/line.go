package command

import "strings"

// MaxLineLen bounds the memory an unterminated command line may hold. Lines
// that exceed it before a newline arrives are discarded wholesale.
const MaxLineLen = 32

// LineBuffer assembles newline-terminated command lines from arbitrary byte
// chunks.
type LineBuffer struct {
	buf      []byte
	overflow bool
}

// Feed consumes a chunk and returns any complete lines, trimmed of CR/LF and
// surrounding whitespace. Empty lines are dropped.
func (l *LineBuffer) Feed(chunk []byte) []string {
	var lines []string
	for _, b := range chunk {
		if b == '\n' {
			if !l.overflow {
				line := strings.TrimSpace(string(l.buf))
				if line != "" {
					lines = append(lines, line)
				}
			}
			l.buf = l.buf[:0]
			l.overflow = false
			continue
		}
		if l.overflow {
			continue
		}
		if len(l.buf) >= MaxLineLen {
			// Too long without a terminator: drop everything up to the next
			// newline to bound memory.
			l.buf = l.buf[:0]
			l.overflow = true
			continue
		}
		l.buf = append(l.buf, b)
	}
	return lines
}
