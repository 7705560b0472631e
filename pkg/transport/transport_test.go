package transport

import (
	"context"
	"testing"

	"github.com/Glimesh/goems/pkg/protocol"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	cases := []struct {
		uri  string
		want Target
	}{
		{"http://127.0.0.1:7777", Target{Scheme: "http", Hostname: "127.0.0.1", Port: 7777}},
		{"http://ems.example.com:8080", Target{Scheme: "http", Hostname: "ems.example.com", Port: 8080}},
		{"http://ems.example.com", Target{Scheme: "http", Hostname: "ems.example.com", Port: DefaultHTTPPort}},
		{"telnet://ems:1112", Target{Scheme: "telnet", Hostname: "ems", Port: 1112}},
		{"http://[::1]:7777", Target{Scheme: "http", Hostname: "::1", Port: 7777}},
	}

	for _, c := range cases {
		t.Run(c.uri, func(t *testing.T) {
			got, err := ParseTarget(c.uri)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseTargetRejects(t *testing.T) {
	for _, uri := range []string{"ftp://host:21", "host:7777", "", "http://:7777", "http://host:99999", "://bad"} {
		t.Run(uri, func(t *testing.T) {
			_, err := ParseTarget(uri)
			require.Error(t, err)

			var uriErr *protocol.URIError
			require.ErrorAs(t, err, &uriErr)
			assert.Equal(t, uri, uriErr.URI)
			assert.Equal(t, protocol.KindConfiguration, protocol.KindOf(err))
		})
	}
}

func TestNew(t *testing.T) {
	assert := assert.New(t)
	logger := logrus.New()

	tr, err := New("http://127.0.0.1:7777", Options{}, logger)
	require.NoError(t, err)
	assert.Equal("HTTP", tr.Name())

	tr, err = New("telnet://127.0.0.1:1112", Options{}, nil)
	require.NoError(t, err)
	assert.Equal("Telnet", tr.Name())

	_, err = New("ftp://host:21", Options{}, logger)
	assert.EqualError(err, `invalid uri "ftp://host:21"`)
}

func TestTelnetNotImplemented(t *testing.T) {
	tr, err := New("telnet://127.0.0.1:1112", Options{}, nil)
	require.NoError(t, err)

	for _, command := range []string{"listStreams", "pullStream", "version"} {
		_, err := tr.Send(context.Background(), command, protocol.Params{{Key: "uri", Value: "rtmp://x/y"}})
		assert.ErrorIs(t, err, protocol.ErrNotImplemented)
		assert.Equal(t, protocol.KindNotImplemented, protocol.KindOf(err))
	}
}
