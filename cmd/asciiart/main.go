package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/asciiart"
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		exit(err.Error(), 1)
	}
}

func init() {
	// -v is taken by --verbose.
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := newApp(stdin, stdout, stderr)
	if len(args) > 0 {
		args = append([]string{args[0]}, permuteArgs(args[1:], app.Flags)...)
	}
	return app.Run(args)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	cmd := &command{
		stdin:  stdin,
		stdout: stdout,
		log:    log.New(stderr, "asciiart: ", 0),
	}

	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "asciiart"
	app.Usage = "A command-line tool for rendering images as ASCII art."
	app.UsageText = "1) asciiart [options] FILE\n" +
		/*      */ "   2) asciiart [options] - < FILE"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "colored, c",
			Usage: "Colors each character with one of the 16 ANSI terminal colors.",
		},
		cli.BoolFlag{
			Name:  "invert-brightness, i",
			Usage: "Maps dark pixels to bold characters and bright pixels to thin ones.",
		},
		cli.Float64Flag{
			Name:  "thumbnail-percentage, T",
			Usage: "`PERCENTAGE` in (0,1] the image is scaled down by before rendering.",
			Value: asciiart.DefaultThumbnailPercentage,
		},
		cli.IntFlag{
			Name:  "resolution-multiplier, R",
			Usage: "`COUNT` of characters printed per pixel.",
			Value: asciiart.DefaultResolutionMultiplier,
		},
		cli.IntFlag{
			Name:  "fix-resolution, F",
			Usage: "`DIVISOR` applied to brightness before the character lookup. One of 1, 2, 4, 8, 16, 32, 64, 128.",
			Value: asciiart.DefaultFixResolution,
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "Prints diagnostics to stderr.",
		},
	}
	app.OnUsageError = usageError
	app.Action = cmd.action
	return app
}

type command struct {
	stdin   io.Reader
	stdout  io.Writer
	log     *log.Logger
	verbose bool
}

func (cmd *command) logV(format string, args ...interface{}) {
	if cmd.verbose {
		cmd.log.Printf(format, args...)
	}
}

func (cmd *command) action(c *cli.Context) error {
	cmd.verbose = c.Bool("verbose")

	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return &asciiart.InvalidArgumentError{
			Name:   "path",
			Value:  []string(c.Args()),
			Reason: "exactly one image path is required",
		}
	}
	cmd.logV("config: %+v", cfg)

	path := c.Args().First()
	var grid asciiart.Grid
	if path == "-" {
		grid, err = asciiart.Decode(cmd.stdin, cfg.ThumbnailPercentage)
	} else {
		grid, err = asciiart.Load(path, cfg.ThumbnailPercentage)
	}
	if err != nil {
		return err
	}
	cmd.logV("loaded %s as a %dx%d grid", path, grid.Width(), grid.Height())

	out := bufio.NewWriter(cmd.stdout)
	if err := asciiart.Render(out, grid, cfg); err != nil {
		return err
	}
	return out.Flush()
}

func configFromContext(c *cli.Context) (asciiart.Config, error) {
	opts := []asciiart.Option{
		asciiart.WithThumbnailPercentage(c.Float64("thumbnail-percentage")),
		asciiart.WithResolutionMultiplier(c.Int("resolution-multiplier")),
		asciiart.WithFixResolution(c.Int("fix-resolution")),
	}
	if c.Bool("colored") {
		opts = append(opts, asciiart.WithColor())
	}
	if c.Bool("invert-brightness") {
		opts = append(opts, asciiart.WithInvertedBrightness())
	}
	cfg := asciiart.NewConfig(opts...)
	return cfg, cfg.Validate()
}

// usageError reports unparsable flags without printing the help text.
func usageError(c *cli.Context, err error, isSubcommand bool) error {
	return &asciiart.InvalidArgumentError{
		Name:   "flags",
		Value:  []string(c.Args()),
		Reason: err.Error(),
	}
}

// permuteArgs moves flags ahead of positional arguments so that
// "asciiart image.png -c" parses like "asciiart -c image.png". Flags that
// take a value keep it attached. Everything after "--" is positional.
func permuteArgs(args []string, flags []cli.Flag) []string {
	valued := make(map[string]bool)
	for _, f := range flags {
		if _, ok := f.(cli.BoolFlag); ok {
			continue
		}
		for _, name := range strings.Split(f.GetName(), ",") {
			name = strings.TrimSpace(name)
			valued["-"+name] = true
			valued["--"+name] = true
		}
	}

	var opts, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			positional = append(positional, arg)
		default:
			opts = append(opts, arg)
			if valued[arg] && i+1 < len(args) {
				i++
				opts = append(opts, args[i])
			}
		}
	}
	if len(positional) == 0 {
		return opts
	}
	return append(append(opts, "--"), positional...)
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
