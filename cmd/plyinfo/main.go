package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/plykit/parser"
	"github.com/wippyai/plykit/ply"
)

type runOptions struct {
	file       string
	headerOnly bool
	asYAML     bool
	normalize  bool
}

func main() {
	var (
		file        = flag.String("file", "", "Path to PLY file")
		configPath  = flag.String("config", "", "Decoder config file (TOML)")
		headerOnly  = flag.Bool("header", false, "Print the header only")
		asYAML      = flag.Bool("yaml", false, "Print the header as YAML")
		normalize   = flag.Bool("normalize", false, "Run the consistency normalizer after decoding")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging to stderr")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: plyinfo -file <model.ply> [-config plyinfo.toml] [-header] [-yaml] [-normalize] [-v]")
		fmt.Fprintln(os.Stderr, "       plyinfo -file <model.ply> -i  (interactive mode)")
		os.Exit(1)
	}

	cfg := defaultCLIConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *verbose {
		cfg.LogLevel = zapcore.DebugLevel
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := parser.NewDefault(parser.WithConfig(cfg.Parser), parser.WithLogger(logger))

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(ctx, p, *file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := runOptions{
		file:       *file,
		headerOnly: *headerOnly,
		asYAML:     *asYAML,
		normalize:  *normalize,
	}
	st := newStyles(term.IsTerminal(int(os.Stdout.Fd())))
	if err := run(ctx, p, opts, os.Stdout, st); err != nil {
		logger.Debug("decode failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, st.err.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func run(ctx context.Context, p *parser.Parser[ply.DefaultElement], opts runOptions, w io.Writer, st styles) error {
	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	if opts.headerOnly {
		header, err := p.ReadHeader(ctx, bufio.NewReader(f))
		if err != nil {
			return fmt.Errorf("decode header: %w", err)
		}
		return printHeader(w, st, opts, header)
	}

	model, err := p.ReadPly(ctx, f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := printHeader(w, st, opts, &model.Header); err != nil {
		return err
	}
	writePayloadSummary(w, st, model)

	if opts.normalize {
		if err := model.Normalize(); err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
		fmt.Fprintln(w, st.ok.Render("\nNormalize: ok"))
	}
	return nil
}

func printHeader(w io.Writer, st styles, opts runOptions, h *ply.Header) error {
	if opts.asYAML {
		return writeYAML(w, h)
	}
	writeHeader(w, st, opts.file, h)
	return nil
}
