package discovery

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypeIPP is the service type for printers speaking plain IPP.
	ServiceTypeIPP = "_ipp._tcp"

	// ServiceTypeIPPS is the service type for printers speaking IPP over TLS.
	ServiceTypeIPPS = "_ipps._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the registered IPP port.
	DefaultPort = 631
)

// TXT record key constants, per the Bonjour Printing specification.
const (
	TXTKeyTxtVers      = "txtvers"  // TXT record version (always "1")
	TXTKeyQueueTotal   = "qtotal"   // Number of queues (always "1")
	TXTKeyResourcePath = "rp"       // Resource path of the print queue
	TXTKeyMakeModel    = "ty"       // Make and model, user-displayable
	TXTKeyNote         = "note"     // Location note
	TXTKeyPDL          = "pdl"      // Supported document formats (comma-separated)
	TXTKeyUUID         = "UUID"     // Printer UUID
	TXTKeyTLS          = "TLS"      // TLS version; presence signals TLS support
	TXTKeyColor        = "Color"    // "T" if color printing is supported
	TXTKeyDuplex       = "Duplex"   // "T" if duplex printing is supported
	TXTKeyPriority     = "priority" // Queue priority (0-99)
	TXTKeyAdminURL     = "adminurl" // Web administration URL
)

// Timing constants.
const (
	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 10 * time.Second
)

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63

	// MaxPriority is the maximum queue priority.
	MaxPriority = 99
)

// Discovery errors.
var (
	ErrInvalidTXTRecord    = errors.New("invalid TXT record format")
	ErrMissingRequired     = errors.New("missing required field")
	ErrInvalidPriority     = errors.New("priority out of range")
	ErrInstanceNameTooLong = errors.New("instance name exceeds 63 characters")
	ErrNotFound            = errors.New("service not found")
)

// PrinterInfo is the printer metadata carried in TXT records.
type PrinterInfo struct {
	// ResourcePath is the queue path below the printer's root ("ipp/print").
	ResourcePath string

	// MakeModel is the user-displayable make and model.
	MakeModel string

	// Note is the configured location.
	Note string

	// Formats lists the supported document formats (MIME media types).
	Formats []string

	// UUID is the printer's UUID, if published.
	UUID string

	// TLS is the published TLS version; non-empty means IPPS is available.
	TLS string

	// Color indicates color printing support.
	Color bool

	// Duplex indicates two-sided printing support.
	Duplex bool

	// Priority is the queue priority (0-99, lower is preferred).
	Priority int

	// AdminURL is the web administration URL.
	AdminURL string
}

// PrinterService is a printer discovered via mDNS.
type PrinterService struct {
	// InstanceName is the mDNS instance name (the printer's advertised name).
	InstanceName string

	// Host is the mDNS hostname.
	Host string

	// Port is the service port.
	Port uint16

	// Addresses are the resolved IP addresses (aggregated across interfaces).
	Addresses []string

	// Secure indicates the service was found under the IPPS service type.
	Secure bool

	// PrinterInfo is the decoded TXT metadata.
	PrinterInfo
}

// URI builds the printer URI for this service: scheme, host, port and the
// advertised resource path.
func (s *PrinterService) URI() string {
	scheme := "ipp"
	if s.Secure {
		scheme = "ipps"
	}
	host := strings.TrimSuffix(s.Host, ".")
	path := strings.TrimPrefix(s.ResourcePath, "/")
	if path == "" {
		return fmt.Sprintf("%s://%s:%d/", scheme, host, s.Port)
	}
	return fmt.Sprintf("%s://%s:%d/%s", scheme, host, s.Port, path)
}
