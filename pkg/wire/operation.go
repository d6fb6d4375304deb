package wire

import "fmt"

// Operation is an IPP operation code as defined by RFC 8011.
type Operation uint16

const (
	OpPrintJob             Operation = 0x0002
	OpPrintURI             Operation = 0x0003
	OpValidateJob          Operation = 0x0004
	OpCreateJob            Operation = 0x0005
	OpSendDocument         Operation = 0x0006
	OpSendURI              Operation = 0x0007
	OpCancelJob            Operation = 0x0008
	OpGetJobAttributes     Operation = 0x0009
	OpGetJobs              Operation = 0x000a
	OpGetPrinterAttributes Operation = 0x000b
	OpHoldJob              Operation = 0x000c
	OpReleaseJob           Operation = 0x000d
	OpRestartJob           Operation = 0x000e
	OpPausePrinter         Operation = 0x0010
	OpResumePrinter        Operation = 0x0011
	OpPurgeJobs            Operation = 0x0012
)

// String returns the operation name as registered with IANA.
func (o Operation) String() string {
	switch o {
	case OpPrintJob:
		return "Print-Job"
	case OpPrintURI:
		return "Print-URI"
	case OpValidateJob:
		return "Validate-Job"
	case OpCreateJob:
		return "Create-Job"
	case OpSendDocument:
		return "Send-Document"
	case OpSendURI:
		return "Send-URI"
	case OpCancelJob:
		return "Cancel-Job"
	case OpGetJobAttributes:
		return "Get-Job-Attributes"
	case OpGetJobs:
		return "Get-Jobs"
	case OpGetPrinterAttributes:
		return "Get-Printer-Attributes"
	case OpHoldJob:
		return "Hold-Job"
	case OpReleaseJob:
		return "Release-Job"
	case OpRestartJob:
		return "Restart-Job"
	case OpPausePrinter:
		return "Pause-Printer"
	case OpResumePrinter:
		return "Resume-Printer"
	case OpPurgeJobs:
		return "Purge-Jobs"
	default:
		return fmt.Sprintf("0x%04x", uint16(o))
	}
}
