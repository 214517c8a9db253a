package asciiart

import "github.com/muesli/termenv"

// defaultForeground selects the terminal's own foreground colour (SGR 39).
type defaultForeground struct{}

func (defaultForeground) Sequence(bg bool) string {
	if bg {
		return "49"
	}
	return "39"
}

// colorize brackets run with the start sequence of b's colour and a reset:
// "\033[<code>m" + run + "\033[0m". The ANSI profile is forced so the output
// does not depend on what the current terminal advertises.
func colorize(run string, b Bucket) string {
	return termenv.ANSI.String(run).Foreground(b.Color).String()
}
