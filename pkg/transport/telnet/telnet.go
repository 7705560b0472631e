package telnet

import (
	"context"

	"github.com/Glimesh/goems/pkg/protocol"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client stands in for the line based telnet interface of EMS. The scheme
// is recognised so URIs using it fail at call time with a clear error.
type Client struct {
	hostname string
	port     int

	log logrus.FieldLogger
}

func New(hostname string, port int) *Client {
	return &Client{
		hostname: hostname,
		port:     port,
		log:      logrus.StandardLogger(),
	}
}

func (c *Client) SetLogger(log logrus.FieldLogger) {
	c.log = log
}

func (c *Client) Name() string {
	return "Telnet"
}

func (c *Client) Send(ctx context.Context, command string, params protocol.Params) ([]byte, error) {
	c.log.Debugf("Refusing %s for %s:%d", command, c.hostname, c.port)
	return nil, errors.Wrap(protocol.ErrNotImplemented, "telnet protocol")
}
