package ems

import (
	"context"
	"encoding/json"

	"github.com/Glimesh/goems/pkg/protocol"
)

type StreamAliasOptions struct {
	// ExpirePeriod in seconds. Negative values make the alias single use,
	// valid for the absolute value of seconds.
	ExpirePeriod *int
}

// AddStreamAlias lets players reach localStreamName as aliasName.
func (c *Client) AddStreamAlias(ctx context.Context, localStreamName, aliasName string, opts StreamAliasOptions) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("localStreamName", localStreamName)
	p.Add("aliasName", aliasName)
	p.Int("expirePeriod", opts.ExpirePeriod)
	return c.Call(ctx, CmdAddStreamAlias, p)
}

func (c *Client) ListStreamAliases(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdListStreamAliases, nil)
}

func (c *Client) RemoveStreamAlias(ctx context.Context, aliasName string) (json.RawMessage, error) {
	return c.Call(ctx, CmdRemoveStreamAlias, protocol.Params{{Key: "aliasName", Value: aliasName}})
}

func (c *Client) FlushStreamAliases(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdFlushStreamAliases, nil)
}

// AddGroupNameAlias makes the packaging group groupName reachable as aliasName.
func (c *Client) AddGroupNameAlias(ctx context.Context, groupName, aliasName string) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("groupName", groupName)
	p.Add("aliasName", aliasName)
	return c.Call(ctx, CmdAddGroupNameAlias, p)
}

func (c *Client) FlushGroupNameAliases(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdFlushGroupNameAliases, nil)
}

func (c *Client) GetGroupNameByAlias(ctx context.Context, aliasName string) (json.RawMessage, error) {
	return c.Call(ctx, CmdGetGroupNameByAlias, protocol.Params{{Key: "aliasName", Value: aliasName}})
}

func (c *Client) ListGroupNameAliases(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdListGroupNameAliases, nil)
}

func (c *Client) RemoveGroupNameAlias(ctx context.Context, aliasName string) (json.RawMessage, error) {
	return c.Call(ctx, CmdRemoveGroupNameAlias, protocol.Params{{Key: "aliasName", Value: aliasName}})
}
