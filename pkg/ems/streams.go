package ems

import (
	"context"
	"encoding/json"

	"github.com/Glimesh/goems/pkg/protocol"
)

type PullStreamOptions struct {
	// KeepAlive makes the server reconnect to the source once a second
	// after the connection drops.
	KeepAlive       *bool
	LocalStreamName string
	// ForceTCP forces TCP for RTSP sources instead of negotiating.
	ForceTCP              *bool
	TCURL                 string
	PageURL               string
	SWFURL                string
	RangeStart            *int
	RangeEnd              *int
	TTL                   *int
	TOS                   *int
	RTCPDetectionInterval *int
	EmulateUserAgent      string
	IsAudio               *bool
	// Hex without 0x prefix, for raw mpegts elementary streams.
	AudioCodecBytes string
	SPSBytes        string
	PPSBytes        string
	SSMIP           string
	HTTPProxy       string
}

func (o PullStreamOptions) params(p *protocol.Params) {
	p.Bool("keepAlive", o.KeepAlive)
	p.Str("localStreamName", o.LocalStreamName)
	p.Bool("forceTcp", o.ForceTCP)
	p.Str("tcUrl", o.TCURL)
	p.Str("pageUrl", o.PageURL)
	p.Str("swfUrl", o.SWFURL)
	p.Int("rangeStart", o.RangeStart)
	p.Int("rangeEnd", o.RangeEnd)
	p.Int("ttl", o.TTL)
	p.Int("tos", o.TOS)
	p.Int("rtcpDetectionInterval", o.RTCPDetectionInterval)
	p.Str("emulateUserAgent", o.EmulateUserAgent)
	p.Bool("isAudio", o.IsAudio)
	p.Str("audioCodecBytes", o.AudioCodecBytes)
	p.Str("spsBytes", o.SPSBytes)
	p.Str("ppsBytes", o.PPSBytes)
	p.Str("ssmIp", o.SSMIP)
	p.Str("httpProxy", o.HTTPProxy)
}

// PullStream pulls an external RTMP, RTSP or mpegts stream into the server.
func (c *Client) PullStream(ctx context.Context, uri string, opts PullStreamOptions) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("uri", uri)
	opts.params(&p)
	return c.Call(ctx, CmdPullStream, p)
}

type PushStreamOptions struct {
	KeepAlive        *bool
	LocalStreamName  string
	TargetStreamName string
	// TargetStreamType is "live", "record" or "append" for RTMP targets.
	TargetStreamType       string
	TCURL                  string
	PageURL                string
	SWFURL                 string
	TTL                    *int
	TOS                    *int
	EmulateUserAgent       string
	RTMPAbsoluteTimestamps *bool
	SendChunkSizeRequest   *bool
	UseSourcePTS           *bool
}

func (o PushStreamOptions) params(p *protocol.Params) {
	p.Bool("keepAlive", o.KeepAlive)
	p.Str("localStreamName", o.LocalStreamName)
	p.Str("targetStreamName", o.TargetStreamName)
	p.Str("targetStreamType", o.TargetStreamType)
	p.Str("tcUrl", o.TCURL)
	p.Str("pageUrl", o.PageURL)
	p.Str("swfUrl", o.SWFURL)
	p.Int("ttl", o.TTL)
	p.Int("tos", o.TOS)
	p.Str("emulateUserAgent", o.EmulateUserAgent)
	p.Bool("rtmpAbsoluteTimestamps", o.RTMPAbsoluteTimestamps)
	p.Bool("sendChunkSizeRequest", o.SendChunkSizeRequest)
	p.Bool("useSourcePts", o.UseSourcePTS)
}

// PushStream pushes a local stream to the external destination uri.
func (c *Client) PushStream(ctx context.Context, uri string, opts PushStreamOptions) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("uri", uri)
	opts.params(&p)
	return c.Call(ctx, CmdPushStream, p)
}

type RecordOptions struct {
	// Type is the container, eg: "mp4", "ts" or "flv".
	Type                string
	Overwrite           *bool
	KeepAlive           *bool
	ChunkLength         *int
	WaitForIDR          *bool
	WinQtCompat         *bool
	DateFolderStructure *bool
}

func (o RecordOptions) params(p *protocol.Params) {
	p.Str("type", o.Type)
	p.Bool("overwrite", o.Overwrite)
	p.Bool("keepAlive", o.KeepAlive)
	p.Int("chunkLength", o.ChunkLength)
	p.Bool("waitForIDR", o.WaitForIDR)
	p.Bool("winQtCompat", o.WinQtCompat)
	p.Bool("dateFolderStructure", o.DateFolderStructure)
}

// Record writes localStreamName to pathToFile on the server.
func (c *Client) Record(ctx context.Context, localStreamName, pathToFile string, opts RecordOptions) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("localStreamName", localStreamName)
	p.Add("pathToFile", pathToFile)
	opts.params(&p)
	return c.Call(ctx, CmdRecord, p)
}

type TranscodeOptions struct {
	TargetStreamNames           []string
	GroupName                   string
	VideoBitrates               []string
	VideoSizes                  []string
	VideoAdvancedParamsProfiles []string
	AudioBitrates               []string
	AudioChannelsCounts         []string
	AudioFrequencies            []string
	AudioAdvancedParamsProfiles []string
	Overlays                    []string
	Croppings                   []string
	KeepAlive                   *bool
	CommandFlags                string
}

func (o TranscodeOptions) params(p *protocol.Params) {
	p.List("targetStreamNames", o.TargetStreamNames)
	p.Str("groupName", o.GroupName)
	p.List("videoBitrates", o.VideoBitrates)
	p.List("videoSizes", o.VideoSizes)
	p.List("videoAdvancedParamsProfiles", o.VideoAdvancedParamsProfiles)
	p.List("audioBitrates", o.AudioBitrates)
	p.List("audioChannelsCounts", o.AudioChannelsCounts)
	p.List("audioFrequencies", o.AudioFrequencies)
	p.List("audioAdvancedParamsProfiles", o.AudioAdvancedParamsProfiles)
	p.List("overlays", o.Overlays)
	p.List("croppings", o.Croppings)
	p.Bool("keepAlive", o.KeepAlive)
	p.Str("commandFlags", o.CommandFlags)
}

// Transcode transcodes source into one or more destinations. Per
// destination settings are matched by position.
func (c *Client) Transcode(ctx context.Context, source string, destinations []string, opts TranscodeOptions) (json.RawMessage, error) {
	var p protocol.Params
	p.Add("source", source)
	p.Add("destinations", destinations)
	opts.params(&p)
	return c.Call(ctx, CmdTranscode, p)
}

func (c *Client) ListStreamsIDs(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdListStreamsIDs, nil)
}

// StreamSelector picks a stream either by its numeric ID or by local name.
type StreamSelector struct {
	ID              *int
	LocalStreamName string
}

func (o StreamSelector) params(p *protocol.Params) {
	p.Int("id", o.ID)
	p.Str("localStreamName", o.LocalStreamName)
}

func (c *Client) GetStreamInfo(ctx context.Context, stream StreamSelector) (json.RawMessage, error) {
	var p protocol.Params
	stream.params(&p)
	return c.Call(ctx, CmdGetStreamInfo, p)
}

type ListStreamsOptions struct {
	DisableInternalStreams *bool
}

// ListStreams returns details for every active stream.
func (c *Client) ListStreams(ctx context.Context, opts ListStreamsOptions) (json.RawMessage, error) {
	var p protocol.Params
	p.Bool("disableInternalStreams", opts.DisableInternalStreams)
	return c.Call(ctx, CmdListStreams, p)
}

func (c *Client) GetStreamsCount(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CmdGetStreamsCount, nil)
}

type ShutdownStreamOptions struct {
	StreamSelector
	// Permanently also removes the stream's config entry so it is not
	// pulled or pushed again.
	Permanently *bool
}

func (c *Client) ShutdownStream(ctx context.Context, opts ShutdownStreamOptions) (json.RawMessage, error) {
	var p protocol.Params
	opts.StreamSelector.params(&p)
	p.Bool("permanently", opts.Permanently)
	return c.Call(ctx, CmdShutdownStream, p)
}

func (c *Client) IsStreamRunning(ctx context.Context, stream StreamSelector) (json.RawMessage, error) {
	var p protocol.Params
	stream.params(&p)
	return c.Call(ctx, CmdIsStreamRunning, p)
}
