package discovery

import (
	"fmt"
	"strconv"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodePrinterTXT creates TXT records advertising a print queue.
func EncodePrinterTXT(info *PrinterInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	// Required fields
	txt[TXTKeyTxtVers] = "1"
	txt[TXTKeyQueueTotal] = "1"
	txt[TXTKeyResourcePath] = info.ResourcePath

	// Optional fields
	if info.MakeModel != "" {
		txt[TXTKeyMakeModel] = info.MakeModel
	}
	if info.Note != "" {
		txt[TXTKeyNote] = info.Note
	}
	if len(info.Formats) > 0 {
		txt[TXTKeyPDL] = strings.Join(info.Formats, ",")
	}
	if info.UUID != "" {
		txt[TXTKeyUUID] = info.UUID
	}
	if info.TLS != "" {
		txt[TXTKeyTLS] = info.TLS
	}
	if info.Color {
		txt[TXTKeyColor] = "T"
	}
	if info.Duplex {
		txt[TXTKeyDuplex] = "T"
	}
	if info.Priority > 0 {
		txt[TXTKeyPriority] = strconv.Itoa(info.Priority)
	}
	if info.AdminURL != "" {
		txt[TXTKeyAdminURL] = info.AdminURL
	}

	return txt
}

// DecodePrinterTXT parses the TXT records of a discovered print queue.
func DecodePrinterTXT(txt TXTRecordMap) (*PrinterInfo, error) {
	info := &PrinterInfo{}

	// Parse resource path (required)
	var ok bool
	info.ResourcePath, ok = txt[TXTKeyResourcePath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyResourcePath)
	}

	// Optional fields
	info.MakeModel = txt[TXTKeyMakeModel]
	info.Note = txt[TXTKeyNote]
	info.UUID = txt[TXTKeyUUID]
	info.TLS = txt[TXTKeyTLS]
	info.AdminURL = txt[TXTKeyAdminURL]
	info.Color = isTrueFlag(txt[TXTKeyColor])
	info.Duplex = isTrueFlag(txt[TXTKeyDuplex])

	if pdl, ok := txt[TXTKeyPDL]; ok {
		info.Formats = parseFormats(pdl)
	}

	if pStr, ok := txt[TXTKeyPriority]; ok {
		p, err := strconv.Atoi(pStr)
		if err != nil || p < 0 || p > MaxPriority {
			return nil, ErrInvalidPriority
		}
		info.Priority = p
	}

	return info, nil
}

// isTrueFlag parses the "T"/"F" boolean convention of printer TXT records.
func isTrueFlag(s string) bool {
	return strings.EqualFold(s, "T")
}

// parseFormats parses the comma-separated pdl value.
func parseFormats(s string) []string {
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		formats = append(formats, p)
	}
	if len(formats) == 0 {
		return nil
	}
	return formats
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value" strings.
// This format is commonly used by mDNS libraries.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInstanceNameTooLong)
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}
