package transport

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Glimesh/goems/pkg/protocol"
	"github.com/Glimesh/goems/pkg/transport/httpapi"
	"github.com/Glimesh/goems/pkg/transport/telnet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	SchemeHTTP   = "http"
	SchemeTelnet = "telnet"

	DefaultHTTPPort   = 7777
	DefaultTelnetPort = 1112
)

type Transport interface {
	// Name of the transport, eg: HTTP
	Name() string

	SetLogger(logrus.FieldLogger)

	// Send issues command with params and returns the raw response body.
	Send(ctx context.Context, command string, params protocol.Params) ([]byte, error)
}

// Target is where commands are sent, parsed once from the connection URI.
type Target struct {
	Scheme   string
	Hostname string
	Port     int
}

// ParseTarget parses a scheme://hostname:port URI. Only known schemes are
// accepted; a missing port falls back to the scheme's default.
func ParseTarget(uri string) (Target, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return Target{}, &protocol.URIError{URI: uri, Err: err}
	}

	var port int
	switch u.Scheme {
	case SchemeHTTP:
		port = DefaultHTTPPort
	case SchemeTelnet:
		port = DefaultTelnetPort
	default:
		return Target{}, &protocol.URIError{URI: uri}
	}

	if u.Hostname() == "" {
		return Target{}, &protocol.URIError{URI: uri, Err: errors.New("missing hostname")}
	}
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return Target{}, &protocol.URIError{URI: uri, Err: errors.Errorf("bad port %q", p)}
		}
	}

	return Target{Scheme: u.Scheme, Hostname: u.Hostname(), Port: port}, nil
}

// Options are passed down to the transport variant that supports them.
type Options struct {
	HTTPClient httpapi.Doer
}

// New builds the transport variant for the URI's scheme.
func New(uri string, opts Options, logger logrus.FieldLogger) (Transport, error) {
	target, err := ParseTarget(uri)
	if err != nil {
		return nil, err
	}

	var t Transport
	switch target.Scheme {
	case SchemeHTTP:
		t = httpapi.New(target.Hostname, target.Port, opts.HTTPClient)
	case SchemeTelnet:
		t = telnet.New(target.Hostname, target.Port)
	default:
		return nil, &protocol.URIError{URI: uri}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}
	t.SetLogger(logger.WithFields(logrus.Fields{
		"transport": t.Name(),
	}))

	return t, nil
}
