package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdlex"
	"pkt.systems/version"
)

const defaultThemeName = "default"

func init() {
	version.SetDefaultModule("pkt.systems/mdlex")
}

type options struct {
	themeName       string
	themeSet        bool
	width           int
	osc8            string
	boring          bool
	positions       bool
	keepFrontMatter bool
	noValidate      bool
	stats           bool
	outPath         string
}

func main() {
	var (
		opts        options
		listThemes  bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("mdlex", pflag.ExitOnError)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.IntVarP(&opts.width, "width", "w", 0, "Truncate lines to this width (0 uses terminal width if available)")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks on link lines: auto|on|off")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVarP(&opts.positions, "positions", "p", true, "Prefix tokens with line:column")
	flags.BoolVar(&opts.keepFrontMatter, "keep-front-matter", false, "Tokenize front matter instead of skipping it")
	flags.BoolVar(&opts.noValidate, "no-validate", false, "Skip UTF-8 and binary input checks")
	flags.BoolVar(&opts.stats, "stats", false, "Print token counts per kind instead of tokens")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdlex [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	opts.themeSet = flags.Changed("theme")

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes(os.Stdout)
		return
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	theme, ok := mdlex.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(os.Stderr)
		os.Exit(2)
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		os.Exit(2)
	}
	tty := isTerminal(writer)
	if opts.boring || (!tty && !opts.themeSet) {
		theme = mdlex.BoringTheme()
	}
	width := opts.width
	if width <= 0 && tty {
		width = terminalWidth(0)
	}

	if err := run(reader, writer, opts, theme, width, osc8); err != nil {
		fmt.Fprintf(os.Stderr, "mdlex: %v\n", err)
		os.Exit(1)
	}
}

func run(r io.Reader, w io.Writer, opts options, theme mdlex.Theme, width int, osc8 bool) error {
	toks, err := mdlex.TokenizeReader(r,
		mdlex.WithValidation(!opts.noValidate),
		mdlex.WithFrontMatter(!opts.keepFrontMatter),
	)
	if err != nil {
		return err
	}
	if opts.stats {
		return writeStats(w, toks)
	}
	return mdlex.Format(mdlex.FormatRequest{
		Writer:  w,
		Tokens:  toks,
		Width:   width,
		Theme:   theme,
		Options: []mdlex.FormatOption{mdlex.WithOSC8(osc8), mdlex.WithPositions(opts.positions)},
	})
}

func writeStats(w io.Writer, toks []mdlex.Token) error {
	counts := mdlex.CountKinds(toks)
	for k := mdlex.KindParagraph; k.Produced(); k++ {
		if counts[k] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-15s %d\n", k, counts[k]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-15s %d\n", "total", len(toks))
	return err
}

func printThemes(w io.Writer) {
	for _, name := range mdlex.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return mdlex.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	body, err := mdlex.OpenURL(context.Background(), nil, raw)
	if err != nil {
		return nil, nil, err
	}
	return body, body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
