// Package ems is a client for the HTTP control API of EvoStream Media Server.
//
// Each method maps to one remote command. Required arguments are positional,
// optional ones go in a per-command options struct. Parameters are checked
// against the command's allow-list before anything is sent, and every call
// returns the "data" payload of the server's response verbatim.
package ems

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Glimesh/goems/pkg/protocol"
	"github.com/Glimesh/goems/pkg/transport"
	"github.com/Glimesh/goems/pkg/transport/httpapi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Client struct {
	transport transport.Transport
	limiter   *rate.Limiter
	timeout   time.Duration

	log logrus.FieldLogger
}

type settings struct {
	httpClient httpapi.Doer
	logger     logrus.FieldLogger
	timeout    time.Duration
	rateLimit  rate.Limit
	burst      int
}

type Option func(*settings)

// WithLogger sets the logger used by the client and its transport.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *settings) {
		s.logger = log
	}
}

// WithHTTPClient replaces the HTTP client used by the http transport.
func WithHTTPClient(client httpapi.Doer) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

// WithTimeout bounds every call. Zero means no limit besides the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithRateLimit paces outgoing calls to perSecond with the given burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *settings) {
		s.rateLimit = rate.Limit(perSecond)
		s.burst = burst
	}
}

// New connects a client to uri, eg: http://127.0.0.1:7777.
func New(uri string, opts ...Option) (*Client, error) {
	s := apply(opts)

	t, err := transport.New(uri, transport.Options{HTTPClient: s.httpClient}, s.logger)
	if err != nil {
		return nil, err
	}

	return newClient(t, s), nil
}

// NewWithTransport builds a client on top of an existing transport.
func NewWithTransport(t transport.Transport, opts ...Option) *Client {
	return newClient(t, apply(opts))
}

func apply(opts []Option) settings {
	s := settings{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	return s
}

func newClient(t transport.Transport, s settings) *Client {
	c := &Client{
		transport: t,
		timeout:   s.timeout,
		log:       s.logger.WithField("transport", t.Name()),
	}
	if s.rateLimit > 0 {
		burst := s.burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(s.rateLimit, burst)
	}
	return c
}

// Call validates params against cmd, sends it and decodes the response.
// All typed methods go through here; it is exported for commands issued
// by name, eg: from a command line.
func (c *Client) Call(ctx context.Context, cmd protocol.Command, params protocol.Params) (json.RawMessage, error) {
	if err := cmd.Validate(params); err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrapf(err, "%s: waiting for rate limiter", cmd.Name)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.log.Debugf("Calling %s with %d params", cmd.Name, len(params))
	raw, err := c.transport.Send(ctx, cmd.Name, params)
	if err != nil {
		return nil, err
	}

	data, err := protocol.Decode(raw)
	if err != nil {
		c.log.WithError(err).Debugf("%s failed", cmd.Name)
		return nil, err
	}
	return data, nil
}

// Bool returns a pointer to v, for optional flags.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for optional numbers.
func Int(v int) *int { return &v }
