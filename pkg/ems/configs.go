package ems

import (
	"context"
	"encoding/json"

	"github.com/Glimesh/goems/pkg/protocol"
)

// ListConfig returns the push/pull/record/packaging entries the server
// restores on restart.
func (c *Client) ListConfig(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdListConfig, nil)
}

type RemoveConfigOptions struct {
	ID                *int
	GroupName         string
	RemoveHLSHDSFiles *bool
}

// RemoveConfig stops and forgets a config entry, by ID or by group name.
func (c *Client) RemoveConfig(ctx context.Context, opts RemoveConfigOptions) (json.RawMessage, error) {
	var p protocol.Params
	p.Int("id", opts.ID)
	p.Str("groupName", opts.GroupName)
	p.Bool("removeHlsHdsFiles", opts.RemoveHLSHDSFiles)
	return c.Call(ctx, CmdRemoveConfig, p)
}

func (c *Client) GetConfigInfo(ctx context.Context, id int) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("id", id)
	return c.Call(ctx, CmdGetConfigInfo, p)
}
