package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Install files and overlay trees for packaging"
	MsgInstallShort = "Install a single file"
	MsgOverlayShort = "Overlay a directory tree onto a destination"
	MsgConfigShort  = "Print the effective configuration"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgDryRunNotice     = "DRY RUN MODE - No changes were made"
	MsgOverlaySummary   = "%d installed, %d created, %d skipped, %d failed, %d hooks run"
	MsgProblemsHeader   = "Entries not installed:"
	MsgVersionFormat    = "pkghelper version %s\n"
	MsgCommitFormat     = "Commit: %s\n"
	MsgBuiltFormat      = "Built:  %s\n"
	MsgConfigFileFormat = "# config file: %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagFormat    = "Output format: auto, term or text"
	MsgFlagConfig    = "Read configuration from this file"
	MsgFlagMode      = "Permission mode of the installed file, in octal"
	MsgFlagStrip     = "Strip debug symbols from the installed file"
	MsgFlagExtraArgs = "Additional arguments passed to the install program"
	MsgFlagStrict    = "Fail when any entry could not be installed"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/overlay-long.txt
	msgOverlayLongRaw string
	MsgOverlayLong    = strings.TrimSpace(msgOverlayLongRaw)
)

const (
	MsgInstallExample = `  # Install a stripped binary
  pkghelper install build/bin/app '$DESTDIR/usr/local/bin/app' --mode 755 --strip

  # Pass extra flags to install(1)
  pkghelper install app.conf /etc/app.conf --extra_args "-o root -g root"`

	MsgOverlayExample = `  # Overlay a staged tree onto the package root
  pkghelper install_overlay overlay/ '$DESTDIR'

  # Fail if any entry could not be installed
  pkghelper install_overlay --strict overlay/ out/`
)
