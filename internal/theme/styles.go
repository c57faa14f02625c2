package theme

import "github.com/charmbracelet/lipgloss"

// Main output styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Reference styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorBranch)

	CurrentBranchStyle = lipgloss.NewStyle().
				Foreground(ColorBranch).
				Bold(true)

	FolderStyle = lipgloss.NewStyle().
			Foreground(ColorFolder).
			Bold(true)

	RemoteBranchStyle = lipgloss.NewStyle().
				Foreground(ColorRemoteBranch)

	SHAStyle = lipgloss.NewStyle().
			Foreground(ColorSHA)

	TagStyle = lipgloss.NewStyle().
			Foreground(ColorTag)
)

// Working tree status styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)

	ModifiedStyle = lipgloss.NewStyle().
			Foreground(ColorModified)

	UntrackedStyle = lipgloss.NewStyle().
			Foreground(ColorUntracked)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// SessionStatusStyle returns the style for a session status name
func SessionStatusStyle(status string) lipgloss.Style {
	switch status {
	case "ready":
		return lipgloss.NewStyle().Foreground(ColorReady)
	case "loading":
		return lipgloss.NewStyle().Foreground(ColorLoading)
	case "requires re-authorization":
		return lipgloss.NewStyle().Foreground(ColorNeedsAuthorization)
	case "failed":
		return lipgloss.NewStyle().Foreground(ColorFailed)
	default:
		return lipgloss.NewStyle().Foreground(ColorClosed)
	}
}

// FileStatusStyle returns the style for a two-letter porcelain code
func FileStatusStyle(code string) lipgloss.Style {
	switch {
	case code == "??":
		return UntrackedStyle
	case len(code) == 2 && (code[0] == 'D' || code[1] == 'D'):
		return DeletionsStyle
	case len(code) == 2 && (code[0] == 'A' || code[1] == 'A'):
		return AdditionsStyle
	default:
		return ModifiedStyle
	}
}
