// Package merr defines the conversion-pipeline error taxonomy shared by the
// resolver, sniffer, dispatcher, converters, and MCP transport.
package merr

import "fmt"

// Kind identifies which class of failure an Error represents. Kept as a
// string rather than an int so it reads directly in structured log output
// without a lookup table.
type Kind string

const (
	UnsupportedURIScheme  Kind = "UnsupportedURIScheme"
	URIFetchError         Kind = "URIFetchError"
	UnsupportedFormatErr  Kind = "UnsupportedFormatError"
	FileConversionErr     Kind = "FileConversionError"
	MissingDependencyErr  Kind = "MissingDependencyError"
	InvalidRequest        Kind = "InvalidRequest"
	Cancelled             Kind = "Cancelled"
)

// Error wraps a Kind, a human-readable message, and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs an *Error of the given kind, wrapping cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// JSONRPCCode maps a Kind to the application-level JSON-RPC error code that
// the MCP server logs alongside a tool failure; the MCP SDK, not this
// mapping, decides the error sent to the client. Codes stay in the <= -32000 range
// reserved for application errors by the JSON-RPC 2.0 spec. -32002 is
// reserved by the transport layer itself for "server not initialized" and
// is never returned here.
func JSONRPCCode(kind Kind) int {
	switch kind {
	case UnsupportedURIScheme:
		return -32010
	case URIFetchError:
		return -32011
	case UnsupportedFormatErr:
		return -32012
	case FileConversionErr:
		return -32013
	case MissingDependencyErr:
		return -32014
	case InvalidRequest:
		return -32602 // reuse the standard "invalid params" code
	case Cancelled:
		return -32015
	default:
		return -32603 // internal error
	}
}
