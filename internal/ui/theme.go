package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colours for the dashboard.
type Theme struct {
	Bg            lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color

	Added     lipgloss.Color
	Modified  lipgloss.Color
	Deleted   lipgloss.Color
	Renamed   lipgloss.Color
	Conflict  lipgloss.Color
	Untracked lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	CommitHash  lipgloss.Color
	BranchLocal lipgloss.Color
	BranchHead  lipgloss.Color
	Remote      lipgloss.Color
	Stash       lipgloss.Color
}

// DarkTheme returns the default dark palette (Catppuccin Mocha).
func DarkTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		SurfaceHover:  lipgloss.Color("#313152"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#7c7cf0"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#b4befe"),

		Added:     lipgloss.Color("#a6e3a1"),
		Modified:  lipgloss.Color("#f9e2af"),
		Deleted:   lipgloss.Color("#f38ba8"),
		Renamed:   lipgloss.Color("#89dceb"),
		Conflict:  lipgloss.Color("#fab387"),
		Untracked: lipgloss.Color("#9399b2"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),

		CommitHash:  lipgloss.Color("#f9e2af"),
		BranchLocal: lipgloss.Color("#a6e3a1"),
		BranchHead:  lipgloss.Color("#89b4fa"),
		Remote:      lipgloss.Color("#f38ba8"),
		Stash:       lipgloss.Color("#fab387"),
	}
}

// LightTheme returns a light palette (Catppuccin Latte).
func LightTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#eff1f5"),
		Surface:       lipgloss.Color("#e6e9ef"),
		SurfaceHover:  lipgloss.Color("#dce0e8"),
		Border:        lipgloss.Color("#bcc0cc"),
		BorderFocused: lipgloss.Color("#1e66f5"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#9ca0b0"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary:   lipgloss.Color("#1e66f5"),
		Secondary: lipgloss.Color("#7287fd"),

		Added:     lipgloss.Color("#40a02b"),
		Modified:  lipgloss.Color("#df8e1d"),
		Deleted:   lipgloss.Color("#d20f39"),
		Renamed:   lipgloss.Color("#04a5e5"),
		Conflict:  lipgloss.Color("#fe640b"),
		Untracked: lipgloss.Color("#6c6f85"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),

		CommitHash:  lipgloss.Color("#df8e1d"),
		BranchLocal: lipgloss.Color("#40a02b"),
		BranchHead:  lipgloss.Color("#1e66f5"),
		Remote:      lipgloss.Color("#d20f39"),
		Stash:       lipgloss.Color("#fe640b"),
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Panels
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// List items
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListDimmed   lipgloss.Style

	// Text
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style

	// Git file statuses
	FileAdded     lipgloss.Style
	FileModified  lipgloss.Style
	FileDeleted   lipgloss.Style
	FileRenamed   lipgloss.Style
	FileConflict  lipgloss.Style
	FileUntracked lipgloss.Style

	// Diff
	DiffAdded      lipgloss.Style
	DiffRemoved    lipgloss.Style
	DiffContext    lipgloss.Style
	DiffHeader     lipgloss.Style
	DiffHunkHeader lipgloss.Style

	// Commit / refs
	CommitHash lipgloss.Style
	CommitMsg  lipgloss.Style
	Author     lipgloss.Style
	Date       lipgloss.Style
	BranchName lipgloss.Style
	BranchHead lipgloss.Style
	RemoteName lipgloss.Style
	StashName  lipgloss.Style

	// Overlays
	Popup        lipgloss.Style
	PopupTitle   lipgloss.Style
	InputBox     lipgloss.Style
	InputCursor  lipgloss.Style
	InputError   lipgloss.Style
	Notification lipgloss.Style

	ErrorText lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.Panel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	s.PanelFocused = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderFocused).Padding(0, 1)
	s.PanelTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true)

	s.ListItem = lipgloss.NewStyle().Foreground(t.Text).PaddingLeft(2)
	s.ListSelected = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).Bold(true).PaddingLeft(1)
	s.ListDimmed = lipgloss.NewStyle().Foreground(t.TextSubtle).PaddingLeft(2)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Body = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.FileAdded = lipgloss.NewStyle().Foreground(t.Added)
	s.FileModified = lipgloss.NewStyle().Foreground(t.Modified)
	s.FileDeleted = lipgloss.NewStyle().Foreground(t.Deleted).Strikethrough(true)
	s.FileRenamed = lipgloss.NewStyle().Foreground(t.Renamed)
	s.FileConflict = lipgloss.NewStyle().Foreground(t.Conflict).Bold(true)
	s.FileUntracked = lipgloss.NewStyle().Foreground(t.Untracked)

	s.DiffAdded = lipgloss.NewStyle().Foreground(t.Added)
	s.DiffRemoved = lipgloss.NewStyle().Foreground(t.Deleted)
	s.DiffContext = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.DiffHeader = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.DiffHunkHeader = lipgloss.NewStyle().Foreground(t.Secondary).Italic(true)

	s.CommitHash = lipgloss.NewStyle().Foreground(t.CommitHash)
	s.CommitMsg = lipgloss.NewStyle().Foreground(t.Text)
	s.Author = lipgloss.NewStyle().Foreground(t.Primary)
	s.Date = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.BranchName = lipgloss.NewStyle().Foreground(t.BranchLocal)
	s.BranchHead = lipgloss.NewStyle().Foreground(t.BranchHead).Bold(true)
	s.RemoteName = lipgloss.NewStyle().Foreground(t.Remote)
	s.StashName = lipgloss.NewStyle().Foreground(t.Stash)

	s.Popup = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(t.Primary).Padding(1, 2)
	s.PopupTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true).Align(lipgloss.Center)
	s.InputBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderFocused).Padding(0, 1)
	s.InputCursor = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Text)
	s.InputError = lipgloss.NewStyle().Foreground(t.Error)
	s.Notification = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Warning).Padding(0, 1).Bold(true)

	s.ErrorText = lipgloss.NewStyle().Foreground(t.Error)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
