package httpapi

import (
	"context"
	"encoding/base64"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Glimesh/goems/pkg/protocol"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const HeaderRequestID = "X-Request-Id"

// Doer is the part of *http.Client the transport needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	hostname string
	port     int

	httpClient Doer
	log        logrus.FieldLogger
}

// New returns an HTTP transport for hostname:port. When httpClient is nil
// a client that opens a fresh connection per request is used.
func New(hostname string, port int, httpClient Doer) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				DisableKeepAlives: true,
			},
		}
	}
	return &Client{
		hostname:   hostname,
		port:       port,
		httpClient: httpClient,
		log:        logrus.StandardLogger(),
	}
}

func (c *Client) SetLogger(log logrus.FieldLogger) {
	c.log = log
}

func (c *Client) Name() string {
	return "HTTP"
}

// MakeURI builds the request path for command. Parameters travel base64
// encoded in a single "params" query value so they need no escaping.
func MakeURI(command string, params protocol.Params) string {
	uri := "/" + command
	if len(params) > 0 {
		uri += "?params=" + base64.StdEncoding.EncodeToString([]byte(params.Encode()))
	}
	return uri
}

func (c *Client) baseURL() string {
	return "http://" + net.JoinHostPort(c.hostname, strconv.Itoa(c.port))
}

func (c *Client) Send(ctx context.Context, command string, params protocol.Params) ([]byte, error) {
	requestID := uuid.New().String()
	log := c.log.WithFields(logrus.Fields{
		"command":    command,
		"request_id": requestID,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+MakeURI(command, params), nil)
	if err != nil {
		return nil, &protocol.TransportError{Command: command, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set(HeaderRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("Request failed")
		return nil, &protocol.TransportError{Command: command, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &protocol.TransportError{Command: command, Err: errors.Wrap(err, "read response")}
	}

	log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"latency": time.Since(start),
		"bytes":   len(body),
	}).Debug("Request completed")
	if resp.StatusCode != http.StatusOK {
		// EMS reports failures inside the envelope; the body is still handed back.
		log.Warnf("Unexpected HTTP status %s", resp.Status)
	}

	return body, nil
}
