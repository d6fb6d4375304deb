package discovery

import (
	"context"
	"time"
)

// Browser provides mDNS printer browsing capabilities.
type Browser interface {
	// BrowsePrinters searches for printers speaking plain IPP.
	// The channel is closed when the context is cancelled or browsing completes.
	BrowsePrinters(ctx context.Context) (<-chan *PrinterService, error)

	// BrowseSecurePrinters searches for printers speaking IPP over TLS.
	BrowseSecurePrinters(ctx context.Context) (<-chan *PrinterService, error)

	// FindByName searches for a printer with the given instance name.
	// Returns when found or when context is cancelled/timeout.
	FindByName(ctx context.Context, name string) (*PrinterService, error)

	// Stop stops all active browsing operations.
	Stop()
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// BrowseTimeout is the default timeout for browse operations.
	// Default: 10 seconds.
	BrowseTimeout time.Duration

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		BrowseTimeout: BrowseTimeout,
		Interface:     "",
	}
}

// FilterFunc is a function that filters browse results.
type FilterFunc func(*PrinterService) bool

// FilterByFormat returns a filter that matches printers supporting any of
// the given document formats.
func FilterByFormat(formats ...string) FilterFunc {
	wanted := make(map[string]struct{})
	for _, f := range formats {
		wanted[f] = struct{}{}
	}

	return func(svc *PrinterService) bool {
		for _, f := range svc.Formats {
			if _, ok := wanted[f]; ok {
				return true
			}
		}
		return false
	}
}

// FilterColor returns a filter that matches printers with color support.
func FilterColor() FilterFunc {
	return func(svc *PrinterService) bool {
		return svc.Color
	}
}

// FilterBrowseResults filters a channel of printer services.
func FilterBrowseResults(in <-chan *PrinterService, filter FilterFunc) <-chan *PrinterService {
	out := make(chan *PrinterService)
	go func() {
		defer close(out)
		for svc := range in {
			if filter(svc) {
				out <- svc
			}
		}
	}()
	return out
}
