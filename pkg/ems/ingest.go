package ems

import (
	"context"
	"encoding/json"

	"github.com/Glimesh/goems/pkg/protocol"
)

// ListHTTPStreamingSessions lists the players currently connected over
// HLS, HDS, MSS or DASH.
func (c *Client) ListHTTPStreamingSessions(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdListHTTPStreamingSessions, nil)
}

// CreateIngestPoint accepts RTMP publishes on privateStreamName and exposes
// them to players as publicStreamName.
func (c *Client) CreateIngestPoint(ctx context.Context, privateStreamName, publicStreamName string) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("privateStreamName", privateStreamName)
	p.Add("publicStreamName", publicStreamName)
	return c.Call(ctx, CmdCreateIngestPoint, p)
}

func (c *Client) RemoveIngestPoint(ctx context.Context, privateStreamName string) (json.RawMessage, error) {
	return c.Call(ctx, CmdRemoveIngestPoint, protocol.Params{{Key: "privateStreamName", Value: privateStreamName}})
}

func (c *Client) ListIngestPoints(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdListIngestPoints, nil)
}

// StartWebRTC connects the server to the WebRTC rendezvous server at
// ersIP:ersPort and joins roomID.
func (c *Client) StartWebRTC(ctx context.Context, ersIP string, ersPort int, roomID string) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("ersip", ersIP)
	p.Add("ersport", ersPort)
	p.Add("roomId", roomID)
	return c.Call(ctx, CmdStartWebRTC, p)
}
