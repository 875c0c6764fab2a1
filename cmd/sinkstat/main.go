// Command sinkstat streams a file through a codec into a chosen
// destination and reports how the destination's buffer grew.
package main

import (
	"compress/flate"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bytesink"
	"github.com/wippyai/bytesink/dest"
	"github.com/wippyai/bytesink/sinkio"
)

type config struct {
	input       string
	output      string
	codec       string
	level       int
	destination string
	verbose     bool
}

func main() {
	var (
		input       = flag.String("in", "", "Input file to encode")
		output      = flag.String("out", "", "Write encoded result to this file (optional)")
		codec       = flag.String("codec", "deflate", "Codec: brotli, deflate or store")
		level       = flag.Int("level", 1, "Compression level")
		destination = flag.String("dest", "grow", "Destination: grow, fixed:<bytes> or stream")
		verbose     = flag.Bool("v", false, "Verbose logging of destination events")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: sinkstat -in <file> [-codec brotli|deflate|store] [-dest grow|fixed:<n>|stream] [-out file]")
		fmt.Fprintln(os.Stderr, "       sinkstat -in <file> -i  (interactive mode)")
		os.Exit(1)
	}

	cfg := config{
		input:       *input,
		output:      *output,
		codec:       *codec,
		level:       *level,
		destination: *destination,
		verbose:     *verbose,
	}

	if cfg.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dest.SetLogger(l)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rep, err := encode(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printReport(rep)
}

// flushEvent records one growth (or forwarding) step of the destination.
type flushEvent struct {
	oldCap int
	newCap int
}

// statsDestination wraps any destination and records its flush history.
type statsDestination struct {
	bytesink.Destination
	events []flushEvent
}

func (s *statsDestination) Flush() error {
	before := len(s.Destination.Window().Buf)
	if err := s.Destination.Flush(); err != nil {
		return err
	}
	s.events = append(s.events, flushEvent{oldCap: before, newCap: len(s.Destination.Window().Buf)})
	return nil
}

type report struct {
	cfg         config
	inputBytes  int64
	outputBytes int
	capacity    int
	copied      int
	events      []flushEvent
}

func encode(cfg config) (*report, error) {
	in, err := os.Open(cfg.input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	var (
		buf  []byte
		size int
		d    bytesink.Destination
		out  io.Writer = io.Discard
	)

	var outFile *os.File
	if cfg.output != "" {
		outFile, err = os.Create(cfg.output)
		if err != nil {
			return nil, fmt.Errorf("create output: %w", err)
		}
		defer outFile.Close()
		out = outFile
	}

	switch {
	case cfg.destination == "grow":
		m := dest.NewMemory(nil)
		if err := m.Attach(&buf, &size); err != nil {
			return nil, err
		}
		d = m
	case strings.HasPrefix(cfg.destination, "fixed:"):
		n, err := strconv.Atoi(strings.TrimPrefix(cfg.destination, "fixed:"))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid fixed destination size %q", cfg.destination)
		}
		buf = make([]byte, n)
		f := dest.NewFixed()
		if err := f.Attach(&buf, &size); err != nil {
			return nil, err
		}
		d = f
	case cfg.destination == "stream":
		s := dest.NewStream()
		if err := s.Attach(out, &size); err != nil {
			return nil, err
		}
		d = s
	default:
		return nil, fmt.Errorf("unknown destination %q", cfg.destination)
	}

	sd := &statsDestination{Destination: d}
	w := sinkio.NewWriter(sd)

	var cw io.WriteCloser
	switch cfg.codec {
	case "brotli":
		cw = brotli.NewWriterLevel(w, cfg.level)
	case "deflate":
		fw, err := flate.NewWriter(w, cfg.level)
		if err != nil {
			return nil, fmt.Errorf("deflate: %w", err)
		}
		cw = fw
	case "store":
		cw = nopCloser{w}
	default:
		return nil, fmt.Errorf("unknown codec %q", cfg.codec)
	}

	read, err := io.Copy(cw, in)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := cw.Close(); err != nil {
		return nil, fmt.Errorf("codec close: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish: %w", err)
	}

	if cfg.destination != "stream" && outFile != nil {
		if _, err := outFile.Write(buf[:size]); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
	}

	rep := &report{
		cfg:         cfg,
		inputBytes:  read,
		outputBytes: size,
		capacity:    len(buf),
		events:      sd.events,
	}
	for _, ev := range sd.events {
		rep.copied += ev.oldCap
	}
	if cfg.destination == "stream" {
		// Stream flushes forward rather than copy; capacity never changes.
		rep.capacity = 0
		rep.copied = 0
	}
	return rep, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func printReport(rep *report) {
	fmt.Printf("Input:    %s (%d bytes)\n", rep.cfg.input, rep.inputBytes)
	fmt.Printf("Codec:    %s (level %d)\n", rep.cfg.codec, rep.cfg.level)
	fmt.Printf("Dest:     %s\n", rep.cfg.destination)
	fmt.Printf("Output:   %d bytes\n", rep.outputBytes)
	if rep.capacity > 0 {
		fmt.Printf("Capacity: %d bytes (%d flushes, %d bytes copied during growth)\n",
			rep.capacity, len(rep.events), rep.copied)
	} else {
		fmt.Printf("Flushes:  %d\n", len(rep.events))
	}

	if len(rep.events) > 0 {
		fmt.Println("\nGrowth timeline:")
		for i, ev := range rep.events {
			if ev.newCap != ev.oldCap {
				fmt.Printf("  flush %2d: %7d -> %7d bytes\n", i+1, ev.oldCap, ev.newCap)
			} else {
				fmt.Printf("  flush %2d: forwarded %d bytes\n", i+1, ev.oldCap)
			}
		}
	}
}
