// Command ipp-query talks IPP to network printers.
//
// It can discover printers via mDNS, fetch printer and job attributes,
// submit and cancel print jobs, and record every exchange to a binary
// trace file for later inspection.
//
// Usage:
//
//	ipp-query [flags]
//
// Flags:
//
//	-uri string         Printer URI (ipp://host[:port]/path)
//	-config string      Configuration file path (YAML)
//	-discover           Discover printers via mDNS and list them
//	-attrs string       Comma-separated attribute names to request
//	-timeout duration   Per-request timeout (default 30s)
//	-trace string       Write an exchange trace to this file
//	-dump-trace string  Print the events of a trace file and exit
//	-user string        Value for requesting-user-name
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-interactive        Enable interactive command mode
//
// Examples:
//
//	# List printers on the local network
//	ipp-query -discover
//
//	# Fetch the full attribute set of a printer
//	ipp-query -uri ipp://printer.local/ipp/print
//
//	# Fetch selected attributes, recording the exchange
//	ipp-query -uri ipp://printer.local/ipp/print \
//	    -attrs printer-name,printer-state -trace session.itrace
//
//	# Inspect a recorded trace
//	ipp-query -dump-trace session.itrace
//
//	# Interactive session
//	ipp-query -uri ipp://printer.local/ipp/print -interactive
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/ipp-protocol/ipp-go/cmd/ipp-query/interactive"
	"github.com/ipp-protocol/ipp-go/pkg/client"
	"github.com/ipp-protocol/ipp-go/pkg/discovery"
	"github.com/ipp-protocol/ipp-go/pkg/trace"
	"github.com/ipp-protocol/ipp-go/pkg/wire"
)

func main() {
	var (
		uri          = flag.String("uri", "", "Printer URI (ipp://host[:port]/path)")
		configPath   = flag.String("config", "", "Configuration file path (YAML)")
		discoverFlag = flag.Bool("discover", false, "Discover printers via mDNS and list them")
		attrNames    = flag.String("attrs", "", "Comma-separated attribute names to request")
		timeout      = flag.Duration("timeout", 0, "Per-request timeout")
		traceFile    = flag.String("trace", "", "Write an exchange trace to this file")
		dumpTrace    = flag.String("dump-trace", "", "Print the events of a trace file and exit")
		userName     = flag.String("user", "", "Value for requesting-user-name")
		logLevel     = flag.String("log-level", "", "Log level: debug, info, warn, error")
		interactiveF = flag.Bool("interactive", false, "Enable interactive command mode")
	)
	flag.Parse()

	cfg := &FileConfig{}
	if *configPath != "" {
		loaded, err := loadFileConfig(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if *uri != "" {
		cfg.PrinterURI = *uri
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if *traceFile != "" {
		cfg.TraceFile = *traceFile
	}
	if *userName != "" {
		cfg.UserName = *userName
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if *dumpTrace != "" {
		if err := dumpTraceFile(os.Stdout, *dumpTrace); err != nil {
			fatal(err)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tracer, closeTracer, err := newTracer(cfg.TraceFile, logger)
	if err != nil {
		fatal(err)
	}
	defer closeTracer()

	browser := discovery.NewMDNSBrowser(discovery.BrowserConfig{
		BrowseTimeout: discovery.BrowseTimeout,
		Interface:     cfg.Interface,
	})
	defer browser.Stop()

	if *discoverFlag && !*interactiveF {
		if err := listPrinters(ctx, os.Stdout, browser); err != nil {
			fatal(err)
		}
		return
	}

	clientCfg := client.ClientConfig{
		RequestTimeout: cfg.Timeout,
		Tracer:         tracer,
		UserName:       cfg.UserName,
	}

	if *interactiveF {
		session, err := interactive.New(interactive.Config{
			PrinterURI:   cfg.PrinterURI,
			ClientConfig: clientCfg,
			Browser:      browser,
		})
		if err != nil {
			fatal(err)
		}
		session.Run(ctx, cancel)
		return
	}

	if cfg.PrinterURI == "" {
		fmt.Fprintln(os.Stderr, "Error: -uri, -discover or -interactive required")
		flag.Usage()
		os.Exit(1)
	}

	c, err := client.NewClient(cfg.PrinterURI, clientCfg)
	if err != nil {
		fatal(err)
	}

	var names []string
	if *attrNames != "" {
		for _, name := range strings.Split(*attrNames, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}

	attrs, err := c.GetPrinterAttributes(ctx, names...)
	if err != nil {
		// A printer-side status error still carries attributes worth showing.
		if attrs == nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	printAttributes(os.Stdout, attrs)
}

// newLogger builds the operational logger.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "", "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// newTracer builds the exchange tracer: a file logger when a path is
// configured, fanned out to slog at debug level.
func newTracer(path string, logger *slog.Logger) (trace.Logger, func(), error) {
	slogTracer := trace.NewSlogAdapter(logger)
	if path == "" {
		return slogTracer, func() {}, nil
	}

	fileLogger, err := trace.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open trace file: %w", err)
	}
	return trace.NewMultiLogger(fileLogger, slogTracer), func() { _ = fileLogger.Close() }, nil
}

// listPrinters browses until the context expires and prints every
// discovered queue.
func listPrinters(ctx context.Context, w io.Writer, browser discovery.Browser) error {
	ctx, cancel := context.WithTimeout(ctx, discovery.BrowseTimeout)
	defer cancel()

	results, err := browser.BrowsePrinters(ctx)
	if err != nil {
		return err
	}

	found := 0
	for svc := range results {
		found++
		fmt.Fprintf(w, "%-30s %s\n", svc.InstanceName, svc.URI())
		if svc.MakeModel != "" {
			fmt.Fprintf(w, "    model:   %s\n", svc.MakeModel)
		}
		if svc.Note != "" {
			fmt.Fprintf(w, "    where:   %s\n", svc.Note)
		}
		if len(svc.Formats) > 0 {
			fmt.Fprintf(w, "    formats: %s\n", strings.Join(svc.Formats, ", "))
		}
	}
	if found == 0 {
		fmt.Fprintln(w, "No printers found")
	}
	return nil
}

// printAttributes renders every group of an attribute list, names sorted.
func printAttributes(w io.Writer, list *wire.AttributeList) {
	groups := []wire.DelimiterTag{
		wire.TagOperationAttributes,
		wire.TagJobAttributes,
		wire.TagPrinterAttributes,
		wire.TagUnsupportedAttributes,
	}
	for _, group := range groups {
		attrs := list.Group(group)
		if len(attrs) == 0 {
			continue
		}

		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintf(w, "%s:\n", group)
		for _, name := range names {
			fmt.Fprintf(w, "  %s = %s\n", name, attrs[name].Value())
		}
	}
}

// dumpTraceFile prints every event of a recorded trace.
func dumpTraceFile(w io.Writer, path string) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read trace: %w", err)
		}

		fmt.Fprintf(w, "%s %-3s %-8s %s",
			event.Timestamp.Format(time.RFC3339Nano),
			event.Direction, event.Category, event.ExchangeID)
		switch {
		case event.Message != nil:
			m := event.Message
			if m.Operation != nil {
				fmt.Fprintf(w, " %s", m.Operation)
			}
			if m.Status != nil {
				fmt.Fprintf(w, " %s", m.Status)
			}
			fmt.Fprintf(w, " id=%d attrs=%d", m.RequestID, m.Attributes)
			if m.Elapsed != nil {
				fmt.Fprintf(w, " elapsed=%s", m.Elapsed)
			}
		case event.Document != nil:
			fmt.Fprintf(w, " %d bytes", event.Document.Size)
			if event.Document.Format != "" {
				fmt.Fprintf(w, " (%s)", event.Document.Format)
			}
		case event.Error != nil:
			fmt.Fprintf(w, " %s", event.Error.Message)
		}
		fmt.Fprintln(w)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
