package ems

import (
	"sort"

	"github.com/Glimesh/goems/pkg/protocol"
)

var (
	CmdPullStream = protocol.Command{
		Name:     "pullStream",
		Required: []string{"uri"},
		Optional: []string{"keepAlive", "localStreamName", "forceTcp", "tcUrl",
			"pageUrl", "swfUrl", "rangeStart", "rangeEnd", "ttl", "tos",
			"rtcpDetectionInterval", "emulateUserAgent", "isAudio",
			"audioCodecBytes", "spsBytes", "ppsBytes", "ssmIp", "httpProxy"},
	}
	CmdPushStream = protocol.Command{
		Name:     "pushStream",
		Required: []string{"uri"},
		Optional: []string{"keepAlive", "localStreamName", "targetStreamName",
			"targetStreamType", "tcUrl", "pageUrl", "swfUrl", "ttl", "tos",
			"emulateUserAgent", "rtmpAbsoluteTimestamps",
			"sendChunkSizeRequest", "useSourcePts"},
	}
	CmdCreateHLSStream = protocol.Command{
		Name:     "createhlsstream",
		Required: []string{"localStreamNames", "targetFolder"},
		Optional: []string{"keepAlive", "overwriteDestination",
			"staleRetentionCount", "createMasterPlaylist", "cleanupDestination",
			"bandwidths", "groupName", "playlistType", "playlistLength",
			"playlistName", "chunkLength", "maxChunkLength", "chunkBaseName",
			"chunkOnIDR", "drmType", "AESKeyCount", "audioOnly", "hlsResume",
			"cleanupOnClose", "useByteRange", "fileLength", "useSystemTime",
			"offsetTime", "startOffset"},
	}
	CmdCreateHDSStream = protocol.Command{
		Name:     "createhdsstream",
		Required: []string{"localStreamNames", "targetFolder"},
		Optional: []string{"bandwidths", "chunkBaseName", "chunkLength",
			"chunkOnIDR", "groupName", "keepAlive", "manifestName",
			"overwriteDestination", "playlistType", "playlistLength",
			"staleRetentionCount", "createMasterPlaylist", "cleanupDestination"},
	}
	CmdCreateMSSStream = protocol.Command{
		Name:     "createmssstream",
		Required: []string{"localStreamNames", "targetFolder"},
		Optional: []string{"bandwidths", "groupName", "playlistType",
			"playlistLength", "manifestName", "chunkLength", "chunkOnIDR",
			"keepAlive", "overwriteDestination", "staleRetentionCount",
			"cleanupDestination", "ismType", "isLive", "publishingPoint",
			"ingestMode"},
	}
	CmdCreateDASHStream = protocol.Command{
		Name:     "createdashstream",
		Required: []string{"localStreamNames", "targetFolder"},
		Optional: []string{"bandwidths", "groupName", "playlistType",
			"playlistLength", "manifestName", "chunkLength", "chunkOnIDR",
			"keepAlive", "overwriteDestination", "staleRetentionCount",
			"cleanupDestination", "dynamicProfile"},
	}
	CmdRecord = protocol.Command{
		Name:     "record",
		Required: []string{"localStreamName", "pathToFile"},
		Optional: []string{"type", "overwrite", "keepAlive", "chunkLength",
			"waitForIDR", "winQtCompat", "dateFolderStructure"},
	}
	CmdTranscode = protocol.Command{
		Name:     "transcode",
		Required: []string{"source", "destinations"},
		Optional: []string{"targetStreamNames", "groupName", "videoBitrates",
			"videoSizes", "videoAdvancedParamsProfiles", "audioBitrates",
			"audioChannelsCounts", "audioFrequencies",
			"audioAdvancedParamsProfiles", "overlays", "croppings", "keepAlive",
			"commandFlags"},
	}

	CmdListStreamsIDs  = protocol.Command{Name: "listStreamsIds"}
	CmdGetStreamInfo   = protocol.Command{Name: "getStreamInfo", Optional: []string{"id", "localStreamName"}}
	CmdListStreams     = protocol.Command{Name: "listStreams", Optional: []string{"disableInternalStreams"}}
	CmdGetStreamsCount = protocol.Command{Name: "getStreamsCount"}
	CmdShutdownStream  = protocol.Command{Name: "shutdownStream", Optional: []string{"id", "localStreamName", "permanently"}}
	CmdIsStreamRunning = protocol.Command{Name: "isStreamRunning", Optional: []string{"id", "localStreamName"}}

	CmdListConfig    = protocol.Command{Name: "listConfig"}
	CmdRemoveConfig  = protocol.Command{Name: "removeConfig", Optional: []string{"id", "groupName", "removeHlsHdsFiles"}}
	CmdGetConfigInfo = protocol.Command{Name: "getConfigInfo", Required: []string{"id"}}

	CmdAddStreamAlias        = protocol.Command{Name: "addStreamAlias", Required: []string{"localStreamName", "aliasName"}, Optional: []string{"expirePeriod"}}
	CmdListStreamAliases     = protocol.Command{Name: "listStreamAliases"}
	CmdRemoveStreamAlias     = protocol.Command{Name: "removeStreamAlias", Required: []string{"aliasName"}}
	CmdFlushStreamAliases    = protocol.Command{Name: "flushStreamAliases"}
	CmdAddGroupNameAlias     = protocol.Command{Name: "addGroupNameAlias", Required: []string{"groupName", "aliasName"}}
	CmdFlushGroupNameAliases = protocol.Command{Name: "flushGroupNameAliases"}
	CmdGetGroupNameByAlias   = protocol.Command{Name: "getGroupNameByAlias", Required: []string{"aliasName"}}
	CmdListGroupNameAliases  = protocol.Command{Name: "listGroupNameAliases"}
	CmdRemoveGroupNameAlias  = protocol.Command{Name: "removeGroupNameAlias", Required: []string{"aliasName"}}

	CmdListHTTPStreamingSessions = protocol.Command{Name: "listHttpStreamingSessions"}
	CmdCreateIngestPoint         = protocol.Command{Name: "createIngestPoint", Required: []string{"privateStreamName", "publicStreamName"}}
	CmdRemoveIngestPoint         = protocol.Command{Name: "removeIngestPoint", Required: []string{"privateStreamName"}}
	CmdListIngestPoints          = protocol.Command{Name: "listIngestPoints"}
	CmdStartWebRTC               = protocol.Command{Name: "startwebrtc", Required: []string{"ersip", "ersport", "roomId"}}
)

// Commands indexes every known command by its wire name.
var Commands = index(
	CmdPullStream, CmdPushStream,
	CmdCreateHLSStream, CmdCreateHDSStream, CmdCreateMSSStream, CmdCreateDASHStream,
	CmdRecord, CmdTranscode,
	CmdListStreamsIDs, CmdGetStreamInfo, CmdListStreams, CmdGetStreamsCount,
	CmdShutdownStream, CmdIsStreamRunning,
	CmdListConfig, CmdRemoveConfig, CmdGetConfigInfo,
	CmdAddStreamAlias, CmdListStreamAliases, CmdRemoveStreamAlias, CmdFlushStreamAliases,
	CmdAddGroupNameAlias, CmdFlushGroupNameAliases, CmdGetGroupNameByAlias,
	CmdListGroupNameAliases, CmdRemoveGroupNameAlias,
	CmdListHTTPStreamingSessions,
	CmdCreateIngestPoint, CmdRemoveIngestPoint, CmdListIngestPoints,
	CmdStartWebRTC,
)

func index(cmds ...protocol.Command) map[string]protocol.Command {
	m := make(map[string]protocol.Command, len(cmds))
	for _, cmd := range cmds {
		m[cmd.Name] = cmd
	}
	return m
}

// CommandNames returns the known command names in sorted order.
func CommandNames() []string {
	names := make([]string, 0, len(Commands))
	for name := range Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
