package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/NielsdaWheelz/stackup/internal/render"
)

// LineProvider reads answers line by line. Used when stdin is not a TTY
// (piped input) and in tests. Secret answers are read without echo when
// the input is a terminal.
type LineProvider struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the terminal descriptor for hidden input, or -1.
	fd int
	// readPassword reads one line without echo.
	readPassword func(fd int) ([]byte, error)
}

// NewLineProvider creates a LineProvider over in/out.
func NewLineProvider(in io.Reader, out io.Writer) *LineProvider {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &LineProvider{
		in:           bufio.NewReader(in),
		out:          out,
		fd:           fd,
		readPassword: term.ReadPassword,
	}
}

// Section prints a section header.
func (l *LineProvider) Section(title, hint string) {
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, render.Section(title))
	if hint != "" {
		fmt.Fprintln(l.out, render.Muted("  "+hint))
	}
}

// Ask prints the label (and default) and reads one line.
func (l *LineProvider) Ask(q Question) (string, error) {
	label := "  " + render.Marker() + " " + q.Label
	if q.Default != "" && !q.Secret {
		label += " " + render.Muted("["+q.Default+"]")
	}
	fmt.Fprint(l.out, label+": ")

	if q.Secret && l.fd >= 0 {
		b, err := l.readPassword(l.fd)
		fmt.Fprintln(l.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return l.readLine()
}

// Confirm asks a y/N (or Y/n) question. Empty input takes def.
func (l *LineProvider) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(l.out, "  %s %s %s: ", render.Marker(), label, render.Muted("["+hint+"]"))

	line, err := l.readLine()
	if err != nil {
		return false, err
	}
	ans := strings.ToLower(strings.TrimSpace(line))
	if ans == "" {
		return def, nil
	}
	return ans == "y" || ans == "yes", nil
}

// readLine reads up to and excluding the next newline. EOF ends the line.
func (l *LineProvider) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
