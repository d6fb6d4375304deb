// Package discovery provides mDNS/DNS-SD discovery of IPP printers.
//
// Printers announce themselves under the _ipp._tcp (and _ipps._tcp for
// TLS) service types with a TXT record describing the print queue, per
// the Bonjour Printing specification. This package decodes those
// announcements into PrinterService values and aggregates addresses
// across network interfaces.
//
// # Browsing
//
//	browser := discovery.NewMDNSBrowser(discovery.DefaultBrowserConfig())
//	results, err := browser.BrowsePrinters(ctx)
//	for svc := range results {
//	    fmt.Println(svc.InstanceName, svc.URI())
//	}
//
// FindByName resolves a single printer by its advertised instance name.
// The Advertiser half is the inverse: it announces a queue, which is
// useful when standing in for a real printer on a test network.
package discovery
