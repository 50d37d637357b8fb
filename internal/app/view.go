package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/easygit/easygit/internal/git"
	"github.com/easygit/easygit/internal/ui"
)

// View renders the entire dashboard. This is a pure function, no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyH := m.height - lipgloss.Height(header) - 1
	if bodyH < 2 {
		bodyH = 2
	}

	leftW := m.width / 2
	rightW := m.width - leftW

	branchesH := bodyH * 7 / 10
	stashesH := bodyH - branchesH
	commitsH := bodyH * 7 / 10
	detailsH := bodyH - commitsH

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderBranches(leftW, branchesH),
		m.renderStashes(leftW, stashesH),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCommits(rightW, commitsH),
		m.renderDetails(rightW, detailsH),
	)

	screen := lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		footer,
	)

	switch st := m.mode.(type) {
	case modePopup:
		return ui.PlaceCentre(m.width, m.height, m.renderPopup(st.sub))
	case modeInput:
		return ui.PlaceCentre(m.width, m.height, m.renderInputOverlay(st.kind))
	}
	return screen
}

// ── Header and footer ────────────────────────────────────────────────

func (m Model) renderHeader() string {
	s := m.styles
	name := m.status.RepoName
	if name == "" {
		name = "repository"
	}
	parts := []string{s.Title.Render(name)}
	if m.branchInfo.Current != "" {
		parts = append(parts, s.BranchHead.Render("on "+m.branchInfo.Current))
	}
	switch {
	case m.status.Error != "":
		parts = append(parts, s.ErrorText.Render(m.status.Error))
	case m.status.IsClean():
		parts = append(parts, s.Muted.Render("working tree clean"))
	default:
		staged, unstaged, untracked := m.status.Counts()
		parts = append(parts, s.Muted.Render(fmt.Sprintf(
			"%d staged · %d unstaged · %d untracked", staged, unstaged, untracked)))
	}
	line := ui.JoinHints("  ", parts...)
	return s.Panel.Width(m.width - 2).Render(ui.Truncate(line, m.width-4))
}

func (m Model) renderFooter() string {
	if msg := m.notice.Message(); msg != "" {
		return m.styles.Notification.Render(ui.Truncate(msg, m.width-2))
	}
	var region Region
	switch st := m.mode.(type) {
	case modeNormal:
		region = st.region
	case modePopup:
		region = st.sub
	case modeInput:
		return m.styles.Muted.Render("enter submit · esc cancel")
	}
	return m.styles.Muted.Render(ui.Truncate(region.Hints(), m.width-2))
}

// ── Panels ───────────────────────────────────────────────────────────

// renderPanel frames content in a bordered box, highlighting the border when
// the region has focus.
func (m Model) renderPanel(r Region, focused bool, w, h int, content string) string {
	s := m.styles
	style := s.Panel
	title := s.PanelTitle.Render(r.Label())
	if focused {
		style = s.PanelFocused.BorderForeground(r.FocusColor(s.Theme))
		title = s.PanelTitle.Foreground(r.FocusColor(s.Theme)).Render(r.Label())
	}
	inner := lipgloss.JoinVertical(lipgloss.Left, title, content)
	return style.Width(w - 2).Height(h - 2).Render(inner)
}

// listHeight is the rows available for list items inside a panel: the border
// takes two rows and the title one.
func listHeight(panelH int) int {
	h := panelH - 3
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) focusedRegion() (Region, bool) {
	switch st := m.mode.(type) {
	case modeNormal:
		return st.region, true
	case modePopup:
		return st.sub, true
	}
	return 0, false
}

func (m Model) renderBranches(w, h int) string {
	focused, _ := m.focusedRegion()
	isFocused := focused == RegionBranches
	s := m.styles

	if m.branchInfo.Status != "" {
		return m.renderPanel(RegionBranches, isFocused, w, h, s.ErrorText.Render(m.branchInfo.Status))
	}

	rows := listHeight(h)
	hover := -1
	if m.branchInfo.Hovered != nil {
		hover = *m.branchInfo.Hovered
	}
	start, end := ui.Window(len(m.branchInfo.Branches), hover, rows)

	var b strings.Builder
	for i := start; i < end; i++ {
		br := m.branchInfo.Branches[i]
		line := br.Name
		if br.IsRemote {
			line = s.RemoteName.Render(br.Name)
		} else if br.Name == m.branchInfo.Current {
			line = s.BranchHead.Render("* " + br.Name)
		} else {
			line = s.BranchName.Render(br.Name)
		}
		if br.Ahead > 0 || br.Behind > 0 {
			line += s.Muted.Render(fmt.Sprintf(" ↑%d ↓%d", br.Ahead, br.Behind))
		}
		if br.Name == m.branchInfo.Selected {
			line += s.Muted.Render(" ◆")
		}
		b.WriteString(m.listRow(line, i == hover, w-4))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return m.renderPanel(RegionBranches, isFocused, w, h, b.String())
}

func (m Model) renderCommits(w, h int) string {
	focused, _ := m.focusedRegion()
	isFocused := focused == RegionCommits
	s := m.styles

	if m.commits.Status != "" {
		return m.renderPanel(RegionCommits, isFocused, w, h, s.ErrorText.Render(m.commits.Status))
	}

	rows := listHeight(h)
	hover := -1
	if m.commits.Hovered != nil {
		hover = *m.commits.Hovered
	}
	start, end := ui.Window(len(m.commits.Commits), hover, rows)

	var b strings.Builder
	for i := start; i < end; i++ {
		c := m.commits.Commits[i]
		line := s.CommitHash.Render(c.ID) + " " + s.CommitMsg.Render(c.Summary)
		if len(c.Branches) > 0 {
			line += s.BranchName.Render(" (" + strings.Join(c.Branches, ", ") + ")")
		}
		b.WriteString(m.listRow(line, i == hover, w-4))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return m.renderPanel(RegionCommits, isFocused, w, h, b.String())
}

func (m Model) renderDetails(w, h int) string {
	focused, _ := m.focusedRegion()
	s := m.styles
	c, ok := m.commits.HoveredCommit()
	if !ok {
		return m.renderPanel(RegionDetails, focused == RegionDetails, w, h, s.Muted.Render("no commit"))
	}
	lines := []string{
		s.CommitHash.Render(c.ID) + " " + s.CommitMsg.Render(ui.Truncate(c.Summary, w-12)),
		s.Author.Render(c.Author) + " " + s.Date.Render(c.When.Format("2006-01-02 15:04")),
	}
	if len(c.Branches) > 0 {
		lines = append(lines, s.BranchName.Render(strings.Join(c.Branches, ", ")))
	}
	return m.renderPanel(RegionDetails, focused == RegionDetails, w, h,
		strings.Join(lines, "\n"))
}

func (m Model) renderStashes(w, h int) string {
	focused, _ := m.focusedRegion()
	isFocused := focused == RegionStashes
	s := m.styles

	if len(m.stashes) == 0 {
		return m.renderPanel(RegionStashes, isFocused, w, h, s.Muted.Render("no stashes"))
	}

	rows := listHeight(h)
	hover := -1
	if m.stashHover != nil {
		hover = *m.stashHover
	}
	start, end := ui.Window(len(m.stashes), hover, rows)

	var b strings.Builder
	for i := start; i < end; i++ {
		st := m.stashes[i]
		line := s.StashName.Render(fmt.Sprintf("stash@{%d}", st.Index)) + " " + s.Body.Render(st.Message)
		if st.Branch != "" {
			line += s.Muted.Render(" on " + st.Branch)
		}
		b.WriteString(m.listRow(line, i == hover, w-4))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return m.renderPanel(RegionStashes, isFocused, w, h, b.String())
}

// listRow styles a single list line, applying the hover background.
func (m Model) listRow(line string, hovered bool, w int) string {
	if hovered {
		return m.styles.ListSelected.Render(ui.PadRight(line, w))
	}
	return m.styles.ListItem.Render(line)
}

// ── Commit popup ─────────────────────────────────────────────────────

func (m Model) popupSize() (w, h int) {
	w = m.width * 4 / 5
	h = m.height * 4 / 5
	if w < 40 {
		w = m.width
	}
	if h < 10 {
		h = m.height
	}
	return w, h
}

// resizeDiff keeps the diff viewport in sync with the popup geometry.
func (m *Model) resizeDiff() {
	pw, ph := m.popupSize()
	m.diff.Width = pw - pw/3 - 6
	m.diff.Height = ph - 10
	if m.diff.Width < 10 {
		m.diff.Width = 10
	}
	if m.diff.Height < 3 {
		m.diff.Height = 3
	}
}

func (m Model) renderPopup(sub Region) string {
	s := m.styles
	pw, ph := m.popupSize()
	listW := pw / 3
	rightW := pw - listW - 4
	listH := ph - 6
	msgH := 3
	diffH := ph - msgH - 7

	changes := m.renderPanel(RegionChanges, sub == RegionChanges, listW, listH,
		m.renderChangeList(listW, listH))
	viewer := m.renderPanel(RegionChangeViewer, sub == RegionChangeViewer, rightW, diffH,
		m.diff.View())

	preview := m.msgEd.Value()
	if preview == "" {
		preview = s.Muted.Render("press enter to edit")
	}
	message := m.renderPanel(RegionCommitMessage, sub == RegionCommitMessage, rightW, msgH+2,
		ui.Truncate(preview, rightW-4))

	right := lipgloss.JoinVertical(lipgloss.Left, viewer, message)
	body := lipgloss.JoinHorizontal(lipgloss.Top, changes, right)
	footer := s.Muted.Render(sub.Hints())
	return s.Popup.Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

func (m Model) renderChangeList(w, h int) string {
	s := m.styles
	if m.status.Error != "" {
		return s.ErrorText.Render(m.status.Error)
	}
	if len(m.status.Changes) == 0 {
		return s.Muted.Render("working tree clean")
	}

	rows := listHeight(h)
	hover := -1
	if m.status.Hovered != nil {
		hover = *m.status.Hovered
	}
	start, end := ui.Window(len(m.status.Changes), hover, rows)

	var b strings.Builder
	for i := start; i < end; i++ {
		c := m.status.Changes[i]
		marker := " "
		if c.Staged {
			marker = "●"
		}
		line := marker + " " + m.changeStyle(c.Change).Render(ui.Truncate(c.Path, w-12)) +
			s.Muted.Render(" "+c.Change.Label())
		b.WriteString(m.listRow(line, i == hover, w-4))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) changeStyle(c git.ChangeType) lipgloss.Style {
	s := m.styles
	switch c {
	case git.ChangeAdded:
		return s.FileAdded
	case git.ChangeModified, git.ChangeTypeChange:
		return s.FileModified
	case git.ChangeDeleted:
		return s.FileDeleted
	case git.ChangeRenamed, git.ChangeCopied:
		return s.FileRenamed
	case git.ChangeUnmerged:
		return s.FileConflict
	case git.ChangeUntracked:
		return s.FileUntracked
	default:
		return s.Body
	}
}

// renderDiff colours raw unified diff text line by line.
func renderDiff(s ui.Styles, text string) string {
	if text == "" {
		return s.Muted.Render("no diff")
	}
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"),
			strings.HasPrefix(line, "diff "), strings.HasPrefix(line, "index "):
			out[i] = s.DiffHeader.Render(line)
		case strings.HasPrefix(line, "@@"):
			out[i] = s.DiffHunkHeader.Render(line)
		case strings.HasPrefix(line, "+"):
			out[i] = s.DiffAdded.Render(line)
		case strings.HasPrefix(line, "-"):
			out[i] = s.DiffRemoved.Render(line)
		default:
			out[i] = s.DiffContext.Render(line)
		}
	}
	return strings.Join(out, "\n")
}

// ── Text-input overlay ───────────────────────────────────────────────

func (m Model) renderInputOverlay(kind inputKind) string {
	s := m.styles
	ed := m.branchEd.LineEditor
	if kind == inputCommitMessage {
		ed = m.msgEd
	}

	w := m.width / 2
	if w < 30 {
		w = m.width - 4
	}

	lines := []string{
		s.PopupTitle.Width(w - 6).Render(kind.title()),
		s.InputBox.Width(w - 8).Render(renderInputLine(s, ed.Value(), ed.Cursor())),
	}
	if ed.Err() != "" {
		lines = append(lines, s.InputError.Render(ed.Err()))
	}
	lines = append(lines, s.Muted.Render("enter submit · esc cancel"))
	return s.Popup.Width(w).Render(strings.Join(lines, "\n"))
}

// renderInputLine paints the buffer with a block cursor at the byte offset.
func renderInputLine(s ui.Styles, value string, cursor int) string {
	before := value[:cursor]
	rest := value[cursor:]
	cell := " "
	after := ""
	if rest != "" {
		r := []rune(rest)
		cell = string(r[0])
		after = string(r[1:])
	}
	return s.Body.Render(before) + s.InputCursor.Render(cell) + s.Body.Render(after)
}
