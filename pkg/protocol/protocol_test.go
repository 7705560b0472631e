package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsEncodeKeepsInsertionOrder(t *testing.T) {
	assert := assert.New(t)

	var params Params
	params.Add("b", "two")
	params.Add("a", 1)
	params.Add("keepAlive", true)
	params.Add("forceTcp", false)
	params.Add("localStreamNames", []string{"one", "two"})
	params.Add("bandwidths", []int{128, 256})

	assert.Equal("b=two a=1 keepAlive=1 forceTcp=0 localStreamNames=one,two bandwidths=128,256", params.Encode())
	assert.Equal([]string{"b", "a", "keepAlive", "forceTcp", "localStreamNames", "bandwidths"}, params.Keys())
}

func TestParamsSkipsUnsetValues(t *testing.T) {
	assert := assert.New(t)

	ttl := 0
	keepAlive := false

	var params Params
	params.Str("localStreamName", "")
	params.Int("rangeStart", nil)
	params.Bool("forceTcp", nil)
	params.List("targetStreamNames", nil)
	params.Ints("bandwidths", []int{})
	params.Int("ttl", &ttl)
	params.Bool("keepAlive", &keepAlive)

	assert.Equal("ttl=0 keepAlive=0", params.Encode())

	value, ok := params.Get("ttl")
	assert.True(ok)
	assert.Equal("0", value)

	_, ok = params.Get("rangeStart")
	assert.False(ok)
}

func TestCommandValidate(t *testing.T) {
	cmd := Command{
		Name:     "addStreamAlias",
		Required: []string{"localStreamName", "aliasName"},
		Optional: []string{"expirePeriod"},
	}

	t.Run("accepts allow-listed keys", func(t *testing.T) {
		params := Params{{"localStreamName", "cam"}, {"aliasName", "a"}, {"expirePeriod", "-300"}}
		assert.NoError(t, cmd.Validate(params))
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		params := Params{{"localStreamName", "cam"}, {"aliasName", "a"}, {"bogus", "1"}}
		err := cmd.Validate(params)

		var paramErr *ParameterError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, "bogus", paramErr.Name)
		assert.False(t, paramErr.Missing)
		assert.Equal(t, KindUsage, KindOf(err))
		assert.Contains(t, err.Error(), `"bogus"`)
	})

	t.Run("unknown key reported before missing one", func(t *testing.T) {
		err := cmd.Validate(Params{{"nope", "1"}})

		var paramErr *ParameterError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, "nope", paramErr.Name)
	})

	t.Run("rejects missing required key", func(t *testing.T) {
		err := cmd.Validate(Params{{"localStreamName", "cam"}})

		var paramErr *ParameterError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, "aliasName", paramErr.Name)
		assert.True(t, paramErr.Missing)
	})
}

func TestDecodeOK(t *testing.T) {
	data, err := Decode([]byte(`{"status":"OK","data":{"count":5}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":5}`, string(data))

	var payload struct {
		Count int `json:"count"`
	}
	require.NoError(t, DecodeInto([]byte(`{"status":"OK","data":{"count":5}}`), &payload))
	assert.Equal(t, 5, payload.Count)
}

func TestDecodeOKWithoutData(t *testing.T) {
	data, err := Decode([]byte(`{"status":"OK","description":"done"}`))
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDecodeFail(t *testing.T) {
	_, err := Decode([]byte(`{"status":"FAIL","description":"stream not found"}`))
	require.Error(t, err)
	assert.Equal(t, "stream not found", err.Error())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, KindRemote, KindOf(err))
}

func TestDecodeMalformed(t *testing.T) {
	bodies := map[string]string{
		"truncated":      `{"status":"OK","da`,
		"garbled":        "\x00\x01<html>",
		"missing status": `{"data":[]}`,
		"unknown status": `{"status":"MAYBE"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(body))
			require.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)

			var remoteErr *RemoteError
			assert.False(t, errors.As(err, &remoteErr))
			assert.Equal(t, KindParse, KindOf(err))
		})
	}
}

func TestDecodeIntoWrongShape(t *testing.T) {
	var count int
	err := DecodeInto([]byte(`{"status":"OK","data":{"count":5}}`), &count)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)

	var syntaxErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestKindOf(t *testing.T) {
	assert := assert.New(t)

	cause := fmt.Errorf("dial tcp: connection refused")

	assert.Equal(KindUnknown, KindOf(nil))
	assert.Equal(KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(KindConfiguration, KindOf(&URIError{URI: "ftp://host:21"}))
	assert.Equal(KindTransport, KindOf(&TransportError{Command: "listStreams", Err: cause}))
	assert.Equal(KindNotImplemented, KindOf(pkgerrors.Wrap(ErrNotImplemented, "telnet")))
	assert.Equal(KindTransport, KindOf(pkgerrors.Wrap(&TransportError{Err: cause}, "call")))
	assert.Equal("usage", KindUsage.String())
}

func TestErrorMessages(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(`invalid uri "ftp://host:21"`, (&URIError{URI: "ftp://host:21"}).Error())
	assert.Equal("remote operation failed", (&RemoteError{}).Error())

	cause := errors.New("connection refused")
	err := &TransportError{Command: "listStreams", Err: cause}
	assert.ErrorIs(err, cause)
	assert.Equal("listStreams: transport: connection refused", err.Error())
}
