package wire

// Well-known attribute names.
const (
	AttributesCharset         = "attributes-charset"
	AttributesNaturalLanguage = "attributes-natural-language"
	PrinterURI                = "printer-uri"

	CharsetConfigured                  = "charset-configured"
	CharsetSupported                   = "charset-supported"
	ColorSupported                     = "color-supported"
	CompressionSupported               = "compression-supported"
	CopiesDefault                      = "copies-default"
	CopiesSupported                    = "copies-supported"
	DocumentFormat                     = "document-format"
	DocumentFormatDefault              = "document-format-default"
	DocumentFormatSupported            = "document-format-supported"
	FinishingsDefault                  = "finishings-default"
	FinishingsSupported                = "finishings-supported"
	GeneratedNaturalLanguageSupported  = "generated-natural-language-supported"
	IppVersionsSupported               = "ipp-versions-supported"
	MediaDefault                       = "media-default"
	MediaSupported                     = "media-supported"
	NaturalLanguageConfigured          = "natural-language-configured"
	OperationsSupported                = "operations-supported"
	OrientationRequestedDefault        = "orientation-requested-default"
	OrientationRequestedSupported      = "orientation-requested-supported"
	OutputBinDefault                   = "output-bin-default"
	OutputBinSupported                 = "output-bin-supported"
	PagesPerMinute                     = "pages-per-minute"
	PdlOverrideSupported               = "pdl-override-supported"
	PrintQualityDefault                = "print-quality-default"
	PrintQualitySupported              = "print-quality-supported"
	PrinterInfo                        = "printer-info"
	PrinterIsAcceptingJobs             = "printer-is-accepting-jobs"
	PrinterLocation                    = "printer-location"
	PrinterMakeAndModel                = "printer-make-and-model"
	PrinterMoreInfo                    = "printer-more-info"
	PrinterName                        = "printer-name"
	PrinterResolutionDefault           = "printer-resolution-default"
	PrinterResolutionSupported         = "printer-resolution-supported"
	PrinterState                       = "printer-state"
	PrinterStateMessage                = "printer-state-message"
	PrinterStateReasons                = "printer-state-reasons"
	PrinterUpTime                      = "printer-up-time"
	PrinterURISupported                = "printer-uri-supported"
	QueuedJobCount                     = "queued-job-count"
	RequestedAttributes                = "requested-attributes"
	SidesDefault                       = "sides-default"
	SidesSupported                     = "sides-supported"
	URIAuthenticationSupported         = "uri-authentication-supported"
	URISecuritySupported               = "uri-security-supported"

	JobID              = "job-id"
	JobName            = "job-name"
	JobState           = "job-state"
	JobStateReasons    = "job-state-reasons"
	JobURI             = "job-uri"
	LastDocument       = "last-document"
	RequestingUserName = "requesting-user-name"
	StatusMessage      = "status-message"
)

// headerAttrs are the three distinguished operation attributes that must
// lead every serialized message, in this exact order.
var headerAttrs = [...]string{
	AttributesCharset,
	AttributesNaturalLanguage,
	PrinterURI,
}

// isHeaderAttr reports whether name is one of the three header attributes.
func isHeaderAttr(name string) bool {
	for _, h := range headerAttrs {
		if h == name {
			return true
		}
	}
	return false
}
