// Package interactive provides the interactive command-line interface
// for ipp-query.
package interactive

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ipp-protocol/ipp-go/pkg/client"
	"github.com/ipp-protocol/ipp-go/pkg/discovery"
	"github.com/ipp-protocol/ipp-go/pkg/wire"
)

// Config provides the session's dependencies.
type Config struct {
	// PrinterURI is the initial printer, may be empty.
	PrinterURI string

	// ClientConfig is used for every client the session creates.
	ClientConfig client.ClientConfig

	// Browser performs printer discovery.
	Browser discovery.Browser
}

// Session handles interactive mode for ipp-query.
type Session struct {
	config Config
	rl     *readline.Instance

	client *client.Client

	// Last discovery results, for "use <n>".
	printers []*discovery.PrinterService
}

// New creates a new interactive session.
func New(config Config) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ipp> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := &Session{
		config: config,
		rl:     rl,
	}

	if config.PrinterURI != "" {
		if err := s.connect(config.PrinterURI); err != nil {
			rl.Close()
			return nil, err
		}
	}

	return s, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Session) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop.
func (s *Session) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		fields := strings.Fields(input)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			s.printHelp()
		case "discover":
			s.cmdDiscover(ctx)
		case "use":
			s.cmdUse(args)
		case "attrs":
			s.cmdAttrs(ctx, args)
		case "print":
			s.cmdPrint(ctx, args)
		case "jobs":
			s.cmdJobs(ctx)
		case "job":
			s.cmdJob(ctx, args)
		case "cancel":
			s.cmdCancel(ctx, args)
		case "quit", "exit":
			cancel()
			return
		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (s *Session) printHelp() {
	fmt.Fprint(s.rl.Stdout(), `Commands:
  discover             - Discover printers via mDNS
  use <n|uri>          - Select printer by discovery index or URI
  attrs [name ...]     - Fetch printer attributes
  print <file> [type]  - Print a file (type is a MIME media type)
  jobs                 - List jobs
  job <id>             - Show one job
  cancel <id>          - Cancel a job
  quit                 - Exit
`)
}

// connect switches the session to a new printer.
func (s *Session) connect(uri string) error {
	c, err := client.NewClient(uri, s.config.ClientConfig)
	if err != nil {
		return err
	}
	s.client = c
	return nil
}

// requireClient reports whether a printer is selected.
func (s *Session) requireClient() bool {
	if s.client == nil {
		fmt.Fprintln(s.rl.Stdout(), "No printer selected (use 'discover' then 'use <n>', or 'use <uri>')")
		return false
	}
	return true
}

func (s *Session) cmdDiscover(ctx context.Context) {
	out := s.rl.Stdout()
	fmt.Fprintln(out, "Browsing...")

	ctx, cancel := context.WithTimeout(ctx, discovery.BrowseTimeout)
	defer cancel()

	results, err := s.config.Browser.BrowsePrinters(ctx)
	if err != nil {
		fmt.Fprintf(out, "Discovery failed: %v\n", err)
		return
	}

	s.printers = s.printers[:0]
	for svc := range results {
		s.printers = append(s.printers, svc)
		fmt.Fprintf(out, "  [%d] %-30s %s\n", len(s.printers), svc.InstanceName, svc.URI())
	}
	if len(s.printers) == 0 {
		fmt.Fprintln(out, "No printers found")
	}
}

func (s *Session) cmdUse(args []string) {
	out := s.rl.Stdout()
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: use <n|uri>")
		return
	}

	target := args[0]
	if n, err := strconv.Atoi(target); err == nil {
		if n < 1 || n > len(s.printers) {
			fmt.Fprintf(out, "No discovery result [%d]\n", n)
			return
		}
		target = s.printers[n-1].URI()
	}

	if err := s.connect(target); err != nil {
		fmt.Fprintf(out, "Cannot use %s: %v\n", target, err)
		return
	}
	fmt.Fprintf(out, "Using %s\n", s.client.PrinterURI())
}

func (s *Session) cmdAttrs(ctx context.Context, names []string) {
	if !s.requireClient() {
		return
	}
	out := s.rl.Stdout()

	attrs, err := s.client.GetPrinterAttributes(ctx, names...)
	if err != nil {
		fmt.Fprintf(out, "Get-Printer-Attributes failed: %v\n", err)
		if attrs == nil {
			return
		}
	}
	writeAttributes(out, attrs)
}

func (s *Session) cmdPrint(ctx context.Context, args []string) {
	if !s.requireClient() {
		return
	}
	out := s.rl.Stdout()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(out, "Usage: print <file> [mime-type]")
		return
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(out, "Cannot open %s: %v\n", args[0], err)
		return
	}
	defer f.Close()

	req := client.PrintJobRequest{
		JobName:  args[0],
		Document: f,
	}
	if len(args) == 2 {
		req.Format = args[1]
	}

	job, err := s.client.PrintJob(ctx, req)
	if err != nil {
		fmt.Fprintf(out, "Print-Job failed: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Job %d created (%s)\n", job.ID, job.State)
}

func (s *Session) cmdJobs(ctx context.Context) {
	if !s.requireClient() {
		return
	}
	out := s.rl.Stdout()

	attrs, err := s.client.GetJobs(ctx)
	if err != nil {
		fmt.Fprintf(out, "Get-Jobs failed: %v\n", err)
		if attrs == nil {
			return
		}
	}
	writeAttributes(out, attrs)
}

func (s *Session) cmdJob(ctx context.Context, args []string) {
	if !s.requireClient() {
		return
	}
	out := s.rl.Stdout()

	id, ok := parseJobID(out, args)
	if !ok {
		return
	}
	job, err := s.client.GetJobAttributes(ctx, id)
	if err != nil {
		fmt.Fprintf(out, "Get-Job-Attributes failed: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Job %d: %s", job.ID, job.State)
	if len(job.StateReasons) > 0 {
		fmt.Fprintf(out, " (%s)", strings.Join(job.StateReasons, ", "))
	}
	if job.URI != "" {
		fmt.Fprintf(out, " %s", job.URI)
	}
	fmt.Fprintln(out)
}

func (s *Session) cmdCancel(ctx context.Context, args []string) {
	if !s.requireClient() {
		return
	}
	out := s.rl.Stdout()

	id, ok := parseJobID(out, args)
	if !ok {
		return
	}
	if err := s.client.CancelJob(ctx, id); err != nil {
		fmt.Fprintf(out, "Cancel-Job failed: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Job %d canceled\n", id)
}

func parseJobID(out io.Writer, args []string) (int32, bool) {
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: <command> <job-id>")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(out, "Bad job ID %q\n", args[0])
		return 0, false
	}
	return int32(id), true
}

// writeAttributes renders every group of an attribute list, names sorted.
func writeAttributes(w io.Writer, list *wire.AttributeList) {
	for _, group := range []wire.DelimiterTag{
		wire.TagOperationAttributes,
		wire.TagJobAttributes,
		wire.TagPrinterAttributes,
		wire.TagUnsupportedAttributes,
	} {
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
