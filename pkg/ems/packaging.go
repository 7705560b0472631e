package ems

import (
	"context"
	"encoding/json"

	"github.com/Glimesh/goems/pkg/protocol"
)

// PackagingOptions are shared by every adaptive streaming job.
type PackagingOptions struct {
	KeepAlive            *bool
	OverwriteDestination *bool
	StaleRetentionCount  *int
	CleanupDestination   *bool
	// Bandwidths in kbps, one per local stream name.
	Bandwidths []int
	GroupName  string
	// PlaylistType is "appending" or "rolling".
	PlaylistType   string
	PlaylistLength *int
	// ChunkLength in seconds.
	ChunkLength *int
	ChunkOnIDR  *bool
}

func (o PackagingOptions) params(p *protocol.Params) {
	p.Bool("keepAlive", o.KeepAlive)
	p.Bool("overwriteDestination", o.OverwriteDestination)
	p.Int("staleRetentionCount", o.StaleRetentionCount)
	p.Bool("cleanupDestination", o.CleanupDestination)
	p.Ints("bandwidths", o.Bandwidths)
	p.Str("groupName", o.GroupName)
	p.Str("playlistType", o.PlaylistType)
	p.Int("playlistLength", o.PlaylistLength)
	p.Int("chunkLength", o.ChunkLength)
	p.Bool("chunkOnIDR", o.ChunkOnIDR)
}

type HLSOptions struct {
	PackagingOptions

	CreateMasterPlaylist *bool
	PlaylistName         string
	MaxChunkLength       *int
	ChunkBaseName        string
	DRMType              string
	AESKeyCount          *int
	AudioOnly            *bool
	HLSResume            *bool
	CleanupOnClose       *bool
	UseByteRange         *bool
	FileLength           *int
	UseSystemTime        *bool
	OffsetTime           *int
	StartOffset          *int
}

func (o HLSOptions) params(p *protocol.Params) {
	o.PackagingOptions.params(p)
	p.Bool("createMasterPlaylist", o.CreateMasterPlaylist)
	p.Str("playlistName", o.PlaylistName)
	p.Int("maxChunkLength", o.MaxChunkLength)
	p.Str("chunkBaseName", o.ChunkBaseName)
	p.Str("drmType", o.DRMType)
	p.Int("AESKeyCount", o.AESKeyCount)
	p.Bool("audioOnly", o.AudioOnly)
	p.Bool("hlsResume", o.HLSResume)
	p.Bool("cleanupOnClose", o.CleanupOnClose)
	p.Bool("useByteRange", o.UseByteRange)
	p.Int("fileLength", o.FileLength)
	p.Bool("useSystemTime", o.UseSystemTime)
	p.Int("offsetTime", o.OffsetTime)
	p.Int("startOffset", o.StartOffset)
}

// CreateHLSStream starts HLS packaging of localStreamNames into targetFolder.
func (c *Client) CreateHLSStream(ctx context.Context, localStreamNames []string, targetFolder string, opts HLSOptions) (json.RawMessage, error) {
	return c.Call(ctx, CmdCreateHLSStream, packagingParams(localStreamNames, targetFolder, opts.params))
}

type HDSOptions struct {
	PackagingOptions

	ChunkBaseName        string
	ManifestName         string
	CreateMasterPlaylist *bool
}

func (o HDSOptions) params(p *protocol.Params) {
	o.PackagingOptions.params(p)
	p.Str("chunkBaseName", o.ChunkBaseName)
	p.Str("manifestName", o.ManifestName)
	p.Bool("createMasterPlaylist", o.CreateMasterPlaylist)
}

func (c *Client) CreateHDSStream(ctx context.Context, localStreamNames []string, targetFolder string, opts HDSOptions) (json.RawMessage, error) {
	return c.Call(ctx, CmdCreateHDSStream, packagingParams(localStreamNames, targetFolder, opts.params))
}

type MSSOptions struct {
	PackagingOptions

	ManifestName string
	// ISMType selects the manifest flavour, 0 for ismc and 1 for isml.
	ISMType         *int
	IsLive          *bool
	PublishingPoint string
	// IngestMode is "single" or "loop".
	IngestMode string
}

func (o MSSOptions) params(p *protocol.Params) {
	o.PackagingOptions.params(p)
	p.Str("manifestName", o.ManifestName)
	p.Int("ismType", o.ISMType)
	p.Bool("isLive", o.IsLive)
	p.Str("publishingPoint", o.PublishingPoint)
	p.Str("ingestMode", o.IngestMode)
}

func (c *Client) CreateMSSStream(ctx context.Context, localStreamNames []string, targetFolder string, opts MSSOptions) (json.RawMessage, error) {
	return c.Call(ctx, CmdCreateMSSStream, packagingParams(localStreamNames, targetFolder, opts.params))
}

type DASHOptions struct {
	PackagingOptions

	ManifestName string
	// DynamicProfile is set for live DASH and cleared for VOD.
	DynamicProfile *bool
}

func (o DASHOptions) params(p *protocol.Params) {
	o.PackagingOptions.params(p)
	p.Str("manifestName", o.ManifestName)
	p.Bool("dynamicProfile", o.DynamicProfile)
}

func (c *Client) CreateDASHStream(ctx context.Context, localStreamNames []string, targetFolder string, opts DASHOptions) (json.RawMessage, error) {
	return c.Call(ctx, CmdCreateDASHStream, packagingParams(localStreamNames, targetFolder, opts.params))
}

func packagingParams(localStreamNames []string, targetFolder string, opts func(*protocol.Params)) protocol.Params {
	var p protocol.Params
	p.Add("localStreamNames", localStreamNames)
	p.Add("targetFolder", targetFolder)
	opts(&p)
	return p
}
