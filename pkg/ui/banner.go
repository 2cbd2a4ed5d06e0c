package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version information - overridable at build time via ldflags:
// go build -ldflags "-X github.com/modelaudit/modelaudit/pkg/ui.Version=1.0.0"
var (
	Version   = "0.3.0"
	BuildDate = "dev"
)

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses progress output).
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled.
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

const bannerArt = `
                     __     __               ___ __
   ____ ___  ____  _/ /__  / /___ ___  ______/ (_) /_
  / __ '__ \/ __ \/ __/ _ \/ / __ '/ / / / __  / / __/
 / / / / / / /_/ / /_/  __/ / /_/ / /_/ / /_/ / / /_
/_/ /_/ /_/\____/\__/\___/_/\__,_/\__,_/\__,_/_/\__/
`

// PrintBanner prints the application banner with version info to
// stderr, keeping stdout clean for artifacts.
func PrintBanner() {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, BannerStyle.Render(bannerArt))
	fmt.Fprintf(os.Stderr, "  %s %s\n\n",
		SubtitleStyle.Render("ai safety benchmark"),
		VersionStyle.Render("v"+Version))
}
