// Package trace provides structured protocol tracing for IPP exchanges.
//
// This package defines the Logger interface and Event types for capturing
// request/response traffic between a client and a printer. It is separate
// from operational logging (slog) - a trace is a complete machine-readable
// record of every exchange, suitable for later inspection and replay
// analysis.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Tracer = trace.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.Tracer, _ = trace.NewFileLogger("/var/log/ipp/query.itrace")
//
//	// Both: use MultiLogger
//	cfg.Tracer = trace.NewMultiLogger(
//	    trace.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files use CBOR encoding with .itrace extension; events are
// concatenated without framing, so a streaming decoder reads them back.
package trace
