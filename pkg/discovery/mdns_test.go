package discovery

import (
	"context"
	"net"
	"testing"

	"github.com/enbility/zeroconf/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(instance string, txt []string, v4 ...string) *zeroconf.ServiceEntry {
	entry := &zeroconf.ServiceEntry{}
	entry.Instance = instance
	entry.HostName = "printer.local."
	entry.Port = 631
	entry.Text = txt
	for _, addr := range v4 {
		entry.AddrIPv4 = append(entry.AddrIPv4, net.ParseIP(addr))
	}
	return entry
}

func TestEntryToPrinter(t *testing.T) {
	entry := testEntry("ACME LaserWriter",
		[]string{"txtvers=1", "rp=ipp/print", "ty=ACME LaserWriter 9000", "Color=T"},
		"192.168.1.20")

	svc := entryToPrinter(entry, false)
	require.NotNil(t, svc)

	assert.Equal(t, "ACME LaserWriter", svc.InstanceName)
	assert.Equal(t, "printer.local.", svc.Host)
	assert.Equal(t, uint16(631), svc.Port)
	assert.Equal(t, []string{"192.168.1.20"}, svc.Addresses)
	assert.Equal(t, "ipp/print", svc.ResourcePath)
	assert.True(t, svc.Color)
	assert.False(t, svc.Secure)
	assert.Equal(t, "ipp://printer.local:631/ipp/print", svc.URI())
}

func TestEntryToPrinterSecure(t *testing.T) {
	entry := testEntry("ACME LaserWriter",
		[]string{"rp=ipp/print", "TLS=1.2"}, "192.168.1.20")

	svc := entryToPrinter(entry, true)
	require.NotNil(t, svc)
	assert.True(t, svc.Secure)
	assert.Equal(t, "ipps://printer.local:631/ipp/print", svc.URI())
}

func TestEntryToPrinterBadTXT(t *testing.T) {
	// No rp key: not a usable print queue announcement.
	entry := testEntry("Mystery Device", []string{"ty=Something"}, "192.168.1.20")
	assert.Nil(t, entryToPrinter(entry, false))
}

func TestMergeAddresses(t *testing.T) {
	merged := mergeAddresses(
		[]string{"192.168.1.20", "fe80::1"},
		[]string{"192.168.1.20", "10.0.0.5"},
	)
	assert.Equal(t, []string{"192.168.1.20", "fe80::1", "10.0.0.5"}, merged)
}

func TestRemoveAddresses(t *testing.T) {
	entry := testEntry("ACME LaserWriter", nil, "192.168.1.20")

	remaining := removeAddresses([]string{"192.168.1.20", "10.0.0.5"}, entry)
	assert.Equal(t, []string{"10.0.0.5"}, remaining)
}

func TestBrowserStopPreventsNewBrowses(t *testing.T) {
	browser := NewMDNSBrowser(DefaultBrowserConfig())
	browser.Stop()

	_, err := browser.browse(context.Background(), ServiceTypeIPP, false)
	assert.Error(t, err)
}
