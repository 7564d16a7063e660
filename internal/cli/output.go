package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

type outputOptions struct {
	color   bool
	unicode bool
	quiet   bool
}

var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
	outOpt              = outputOptions{color: true, unicode: true}
)

func setOutputOptions(stdout, stderr io.Writer, opt outputOptions) {
	if stdout != nil {
		outStdout = stdout
	}
	if stderr != nil {
		outStderr = stderr
	}
	outOpt = opt
}

// profile is plain ANSI when colour is on; status glyphs only need the
// 16 base colours.
func (o outputOptions) profile() termenv.Profile {
	if o.color {
		return termenv.ANSI
	}
	return termenv.Ascii
}

func paint(s, color string) string {
	p := outOpt.profile()
	return p.String(s).Foreground(p.Color(color)).String()
}

func sym(unicode, ascii string) string {
	if outOpt.unicode {
		return unicode
	}
	return ascii
}

func info(msg string) {
	if outOpt.quiet {
		return
	}
	fmt.Fprintf(outStdout, "%s  %s\n", paint("i", "4"), msg)
}

func success(msg string) {
	if outOpt.quiet {
		return
	}
	fmt.Fprintf(outStdout, "%s  %s\n", paint(sym("✓", "OK"), "2"), msg)
}

func warn(msg string) {
	if outOpt.quiet {
		return
	}
	fmt.Fprintf(outStderr, "%s  %s\n", paint(sym("!", "WARN"), "3"), msg)
}

func errMsg(msg string) {
	fmt.Fprintf(outStderr, "%s  %s\n", paint(sym("x", "ERR"), "1"), msg)
}

func step(msg string) {
	if outOpt.quiet {
		return
	}
	fmt.Fprintf(outStdout, "%s  %s\n", paint(sym("→", ">"), "8"), msg)
}

func kv(key, value string) {
	key = strings.TrimSpace(key)
	if key == "" {
		fmt.Fprintf(outStdout, "  %s\n", value)
		return
	}
	fmt.Fprintf(outStdout, "  %s %s\n", outOpt.profile().String(key+":").Bold().String(), value)
}
