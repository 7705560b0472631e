package protocol

import (
	"errors"
	"fmt"
)

var ErrNotImplemented = errors.New("not implemented")

// Kind classifies the errors returned by the client.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindUsage
	KindTransport
	KindRemote
	KindParse
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUsage:
		return "usage"
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindParse:
		return "parse"
	case KindNotImplemented:
		return "not implemented"
	default:
		return "unknown"
	}
}

// URIError is returned when a connection URI can't be turned into a transport.
type URIError struct {
	URI string
	Err error
}

func (e *URIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid uri %q: %v", e.URI, e.Err)
	}
	return fmt.Sprintf("invalid uri %q", e.URI)
}

func (e *URIError) Unwrap() error { return e.Err }

// ParameterError reports a parameter the command does not accept, or a
// required one that was not supplied.
type ParameterError struct {
	Command string
	Name    string
	Missing bool
}

func (e *ParameterError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: missing required parameter %q", e.Command, e.Name)
	}
	return fmt.Sprintf("%s: unexpected parameter %q", e.Command, e.Name)
}

// TransportError wraps a network failure talking to the server.
type TransportError struct {
	Command string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Command, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError carries the description of a FAIL response.
type RemoteError struct {
	Description string
}

func (e *RemoteError) Error() string {
	if e.Description == "" {
		return "remote operation failed"
	}
	return e.Description
}

// ParseError means the response body was not a valid envelope.
type ParseError struct {
	Body []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// KindOf reports which class of failure err belongs to.
func KindOf(err error) Kind {
	var (
		uriErr       *URIError
		paramErr     *ParameterError
		transportErr *TransportError
		remoteErr    *RemoteError
		parseErr     *ParseError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNotImplemented):
		return KindNotImplemented
	case errors.As(err, &uriErr):
		return KindConfiguration
	case errors.As(err, &paramErr):
		return KindUsage
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &remoteErr):
		return KindRemote
	case errors.As(err, &parseErr):
		return KindParse
	default:
		return KindUnknown
	}
}
