package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A personal dotfile manager"
	MsgTrackShort      = "Copy a file into storage and track it under a name"
	MsgUntrackShort    = "Stop tracking a name"
	MsgExportShort     = "Copy a stored file back to its original location"
	MsgImportShort     = "Copy a file from its original location into storage"
	MsgListShort       = "List tracked names"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgTracked        = "Tracked %s as %s"
	MsgUntracked      = "Untracked %s, stored copy kept at %s"
	MsgPurged         = "Untracked %s and removed %s"
	MsgAlreadyTracked = "%s is already tracked from %s, nothing changed"
	MsgNotTracked     = "%s is not tracked, nothing to do"

	// Version output; %s are commit and build date
	MsgVersionFormat = "dot version {{.Version}}\nCommit: %s\nBuilt:  %s\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagManifest = "Manifest file to use instead of the configured one"
	MsgFlagColor    = "Color output: auto, always or never"
	MsgFlagPurge    = "Also delete the stored copy"
	MsgFlagOutput   = "Output format: text, long, yaml or toml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/track-long.txt
	msgTrackLongRaw string
	MsgTrackLong    = strings.TrimSpace(msgTrackLongRaw)

	//go:embed msgs/track-example.txt
	msgTrackExampleRaw string
	MsgTrackExample    = strings.TrimRight(msgTrackExampleRaw, "\n")

	//go:embed msgs/untrack-long.txt
	msgUntrackLongRaw string
	MsgUntrackLong    = strings.TrimSpace(msgUntrackLongRaw)

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
