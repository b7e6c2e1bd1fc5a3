package logio

import (
	"fmt"
	"strings"

	"github.com/sergev/BCause/internal/runeio"
)

const (
	ansiBoldWhite = "\x1b[1;37m"
	ansiBoldRed   = "\x1b[1;31m"
	ansiReset     = "\x1b[0m"
)

// Diagnostic formats a compiler diagnostic as "<prog>: error: <message>",
// with the program name in bold white, the "error:" marker in bold red, and
// a reset escape after each colored span. The message text is written
// uncolored; quoted source spans inside it are not highlighted.
// Colors are only emitted when color is true; otherwise the plain
// "<prog>: error: <message>" form is returned.
func Diagnostic(prog, message string, color bool) string {
	if !color {
		return fmt.Sprintf("%v: error: %v", prog, message)
	}
	var sb strings.Builder
	writeColored(&sb, ansiBoldWhite, prog+":")
	sb.WriteByte(' ')
	writeColored(&sb, ansiBoldRed, "error:")
	sb.WriteByte(' ')
	sb.WriteString(message)
	return sb.String()
}

func writeColored(sb *strings.Builder, code, text string) {
	runeio.WriteANSIString(sb, code)
	sb.WriteString(text)
	runeio.WriteANSIString(sb, ansiReset)
}
