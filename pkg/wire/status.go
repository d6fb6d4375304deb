package wire

import "fmt"

// Status is an IPP status code as defined by RFC 8011. Codes below
// 0x0100 indicate success.
type Status uint16

const (
	StatusOk                   Status = 0x0000
	StatusOkIgnoredAttributes  Status = 0x0001
	StatusOkConflictAttributes Status = 0x0002

	StatusBadRequest            Status = 0x0400
	StatusForbidden             Status = 0x0401
	StatusNotAuthenticated      Status = 0x0402
	StatusNotAuthorized         Status = 0x0403
	StatusNotPossible           Status = 0x0404
	StatusTimeout               Status = 0x0405
	StatusNotFound              Status = 0x0406
	StatusGone                  Status = 0x0407
	StatusRequestEntityTooLarge Status = 0x0408
	StatusRequestValueTooLong   Status = 0x0409
	StatusDocumentFormatError   Status = 0x040a
	StatusAttributesOrValues    Status = 0x040b
	StatusURISchemeNotSupported Status = 0x040c
	StatusCharsetNotSupported   Status = 0x040d
	StatusConflictingAttributes Status = 0x040e

	StatusInternalError            Status = 0x0500
	StatusOperationNotSupported    Status = 0x0501
	StatusServiceUnavailable       Status = 0x0502
	StatusVersionNotSupported      Status = 0x0503
	StatusDeviceError              Status = 0x0504
	StatusTemporaryError           Status = 0x0505
	StatusNotAcceptingJobs         Status = 0x0506
	StatusBusy                     Status = 0x0507
	StatusJobCanceled              Status = 0x0508
	StatusMultipleJobsNotSupported Status = 0x0509
)

// IsSuccess returns true for the successful-ok family of codes.
func (s Status) IsSuccess() bool { return s < 0x0100 }

// IsError returns true for client-error and server-error codes.
func (s Status) IsError() bool { return !s.IsSuccess() }

// String returns the status keyword as registered with IANA.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "successful-ok"
	case StatusOkIgnoredAttributes:
		return "successful-ok-ignored-or-substituted-attributes"
	case StatusOkConflictAttributes:
		return "successful-ok-conflicting-attributes"
	case StatusBadRequest:
		return "client-error-bad-request"
	case StatusForbidden:
		return "client-error-forbidden"
	case StatusNotAuthenticated:
		return "client-error-not-authenticated"
	case StatusNotAuthorized:
		return "client-error-not-authorized"
	case StatusNotPossible:
		return "client-error-not-possible"
	case StatusTimeout:
		return "client-error-timeout"
	case StatusNotFound:
		return "client-error-not-found"
	case StatusGone:
		return "client-error-gone"
	case StatusRequestEntityTooLarge:
		return "client-error-request-entity-too-large"
	case StatusRequestValueTooLong:
		return "client-error-request-value-too-long"
	case StatusDocumentFormatError:
		return "client-error-document-format-not-supported"
	case StatusAttributesOrValues:
		return "client-error-attributes-or-values-not-supported"
	case StatusURISchemeNotSupported:
		return "client-error-uri-scheme-not-supported"
	case StatusCharsetNotSupported:
		return "client-error-charset-not-supported"
	case StatusConflictingAttributes:
		return "client-error-conflicting-attributes"
	case StatusInternalError:
		return "server-error-internal-error"
	case StatusOperationNotSupported:
		return "server-error-operation-not-supported"
	case StatusServiceUnavailable:
		return "server-error-service-unavailable"
	case StatusVersionNotSupported:
		return "server-error-version-not-supported"
	case StatusDeviceError:
		return "server-error-device-error"
	case StatusTemporaryError:
		return "server-error-temporary-error"
	case StatusNotAcceptingJobs:
		return "server-error-not-accepting-jobs"
	case StatusBusy:
		return "server-error-busy"
	case StatusJobCanceled:
		return "server-error-job-canceled"
	case StatusMultipleJobsNotSupported:
		return "server-error-multiple-document-jobs-not-supported"
	default:
		return fmt.Sprintf("0x%04x", uint16(s))
	}
}
