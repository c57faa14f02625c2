package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session status colors
const (
	ColorClosed             Color = "8"   // Gray
	ColorFailed             Color = "1"   // Red
	ColorLoading            Color = "3"   // Yellow
	ColorNeedsAuthorization Color = "208" // Orange
	ColorReady              Color = "2"   // Green
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Reference colors
const (
	ColorBranch       Color = "2"   // Green - local branches
	ColorFolder       Color = "33"  // Blue - tree folders
	ColorMatch        Color = "226" // Yellow - search hits
	ColorRemoteBranch Color = "1"   // Red - remote-tracking branches
	ColorSHA          Color = "178" // Gold - commit ids
	ColorTag          Color = "141" // Purple - tags
)

// Working tree colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
	ColorModified  Color = "3" // Yellow
	ColorUntracked Color = "8" // Gray
)
