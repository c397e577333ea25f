// eza lists directories with themed colors.
//
// The engine behind it resolves styles from the LS_COLORS and
// EZA_COLORS environment variables, an optional YAML theme file, and a
// built-in default theme:
//
//	eza                     # colors when stdout is a terminal
//	eza --long /tmp         # adds a size column
//	eza --color=always | less -R
//	EZA_COLORS='*.log=38;5;244' eza
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/vladdoster/eza/internal/config"
	"github.com/vladdoster/eza/internal/render"
	"github.com/vladdoster/eza/internal/style"
	"github.com/vladdoster/eza/internal/theme"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("eza", flag.ContinueOnError)
	flags.SetOutput(stderr)

	colorFlag := flags.String("color", "", "When to use colors: always, auto, never")
	scaleFlag := flags.Bool("color-scale", false, "Graduated colors for file sizes")
	themeFlag := flags.String("theme", "", "Path to a YAML theme file")
	longFlag := flags.Bool("long", false, "Show a size column")
	allFlag := flags.Bool("all", false, "Show entries starting with a dot")
	debugFlag := flags.Bool("debug", false, "Verbose diagnostics on stderr")
	versionFlag := flags.Bool("version", false, "Print the version and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	setupLogging(stderr, *debugFlag)

	if *versionFlag {
		fmt.Fprintf(stdout, "eza %s\n", version)
		return 0
	}

	visited := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { visited[f.Name] = true })

	resolved, err := config.Resolve(config.CliFlags{
		Color:         *colorFlag,
		ColorScale:    *scaleFlag,
		ThemeFile:     *themeFlag,
		ColorSet:      visited["color"],
		ColorScaleSet: visited["color-scale"],
		ThemeFileSet:  visited["theme"],
	}, os.LookupEnv)
	if err != nil {
		fmt.Fprintln(stderr, "eza:", err)
		return 2
	}

	isatty := false
	if f, ok := stdout.(*os.File); ok {
		isatty = term.IsTerminal(int(f.Fd()))
	}

	th := resolved.Options().ToTheme(isatty)

	dir := "."
	if flags.NArg() > 0 {
		dir = flags.Arg(0)
	}

	if err := list(stdout, dir, th, *longFlag, *allFlag); err != nil {
		fmt.Fprintln(stderr, "eza:", err)
		return 1
	}
	return 0
}

func setupLogging(stderr io.Writer, debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zlog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func list(out io.Writer, dir string, th *theme.Theme, long, all bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if !all && e.Name()[0] == '.' {
			continue
		}

		name := render.Paint(entryStyle(th, dir, e), e.Name())
		if !long {
			fmt.Fprintln(out, name)
			continue
		}

		cell := render.Paint(th.UI.Punctuation, "-")
		cellWidth := 1
		if info, err := e.Info(); err == nil && !e.IsDir() {
			num, unit, _ := humanSize(info.Size())
			cell = sizeCell(th, info.Size())
			cellWidth = runewidth.StringWidth(num + unit)
		}

		pad := sizeColumnWidth - cellWidth
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(out, "%s%s %s\n", spaces(pad), cell, name)
	}
	return nil
}

const sizeColumnWidth = 8

func spaces(n int) string {
	return fmt.Sprintf("%*s", n, "")
}

// entryStyle picks the style painting one directory entry: file-kind
// slots for everything the mode identifies, the theme's file-style
// resolver for plain files.
func entryStyle(th *theme.Theme, dir string, e fs.DirEntry) style.Style {
	mode := e.Type()

	switch {
	case mode&fs.ModeSymlink != 0:
		if _, err := os.Stat(filepath.Join(dir, e.Name())); err != nil {
			return th.BrokenFilename()
		}
		return th.UI.FileKinds.Symlink
	case e.IsDir():
		return th.UI.FileKinds.Directory
	case mode&fs.ModeNamedPipe != 0:
		return th.UI.FileKinds.Pipe
	case mode&fs.ModeSocket != 0:
		return th.UI.FileKinds.Socket
	case mode&fs.ModeCharDevice != 0:
		return th.UI.FileKinds.CharDevice
	case mode&fs.ModeDevice != 0:
		return th.UI.FileKinds.BlockDevice
	}

	if info, err := e.Info(); err == nil && info.Mode()&0o111 != 0 {
		return th.UI.FileKinds.Executable
	}
	return th.FileStyleOrNormal(e.Name())
}

// sizeCell formats a byte count with the size slots of the theme, one
// number and unit style per magnitude tier.
func sizeCell(th *theme.Theme, size int64) string {
	num, unit, tier := humanSize(size)

	var numberStyle, unitStyle style.Style
	switch tier {
	case 0:
		numberStyle, unitStyle = th.UI.Size.NumberByte, th.UI.Size.UnitByte
	case 1:
		numberStyle, unitStyle = th.UI.Size.NumberKilo, th.UI.Size.UnitKilo
	case 2:
		numberStyle, unitStyle = th.UI.Size.NumberMega, th.UI.Size.UnitMega
	case 3:
		numberStyle, unitStyle = th.UI.Size.NumberGiga, th.UI.Size.UnitGiga
	default:
		numberStyle, unitStyle = th.UI.Size.NumberHuge, th.UI.Size.UnitHuge
	}

	return render.Paint(numberStyle, num) + render.Paint(unitStyle, unit)
}

// humanSize renders a byte count in 1024-based units and reports the
// magnitude tier (0 = bytes, 1 = kilo, ...).
func humanSize(n int64) (string, string, int) {
	const step = 1024
	if n < step {
		return strconv.FormatInt(n, 10), "", 0
	}

	units := []string{"K", "M", "G", "T", "P"}
	value := float64(n)
	tier := 0
	for value >= step && tier < len(units) {
		value /= step
		tier++
	}

	if value >= 10 {
		return strconv.FormatInt(int64(value+0.5), 10), units[tier-1], tier
	}
	return strconv.FormatFloat(value, 'f', 1, 64), units[tier-1], tier
}
