// Package app contains the dashboard controller: the view-models, the focus
// state machine, selection reconciliation and the refresh loop.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/easygit/easygit/internal/config"
	"github.com/easygit/easygit/internal/git"
	"github.com/easygit/easygit/internal/input"
	"github.com/easygit/easygit/internal/notify"
	"github.com/easygit/easygit/internal/ui"
)

// tickMsg drives the periodic refresh.
type tickMsg time.Time

// RefreshMsg requests an immediate state refresh. The filesystem watcher
// sends it into the program from outside.
type RefreshMsg struct{}

// Model is the top-level Bubbletea model owning all dashboard state. It is
// the only writer of the view-models; every mutation happens inside Update.
type Model struct {
	svc    git.Service
	cfg    *config.Config
	styles ui.Styles
	keys   KeyMap

	width  int
	height int

	mode         focusMode
	returnRegion Region // main-screen region restored when the popup closes

	branchInfo BranchInfo
	commits    CommitsState
	status     RepoStatus
	stashes    []git.StashEntry
	stashHover *int

	diff viewport.Model

	branchEd input.BranchEditor
	msgEd    input.LineEditor

	notice *notify.Notice
}

// New creates the dashboard model.
func New(svc git.Service, cfg *config.Config) Model {
	return Model{
		svc:          svc,
		cfg:          cfg,
		styles:       ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		keys:         DefaultKeyMap(),
		mode:         modeNormal{region: RegionBranches},
		returnRegion: RegionBranches,
		diff:         viewport.New(0, 0),
		notice:       notify.New(),
	}
}

// Init schedules the first tick and triggers the initial refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.scheduleTick(),
		func() tea.Msg { return RefreshMsg{} },
	)
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeDiff()
		return m, nil

	case tickMsg:
		m.notice.ExpireIfDue()
		m.refreshAll(nil)
		return m, m.scheduleTick()

	case RefreshMsg:
		m.refreshAll(nil)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey routes a key press according to the active focus mode. Bubbletea
// only delivers press and repeat events, so no release filtering is needed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch st := m.mode.(type) {
	case modeInput:
		return m.handleInputKey(msg, st)
	case modePopup:
		return m.handlePopupKey(msg, st)
	case modeNormal:
		return m.handleNormalKey(msg, st)
	}
	return m, nil
}

// ── Main screen ──────────────────────────────────────────────────────

func (m Model) handleNormalKey(msg tea.KeyMsg, st modeNormal) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusBranches):
		m.mode = modeNormal{region: RegionBranches}
		return m, nil
	case key.Matches(msg, m.keys.FocusCommits):
		m.mode = modeNormal{region: RegionCommits}
		return m, nil
	case key.Matches(msg, m.keys.FocusDetails):
		m.mode = modeNormal{region: RegionDetails}
		return m, nil
	case key.Matches(msg, m.keys.FocusStashes):
		m.mode = modeNormal{region: RegionStashes}
		return m, nil

	case key.Matches(msg, m.keys.OpenPopup):
		m.returnRegion = st.region
		m.mode = modePopup{sub: RegionChanges}
		m.refreshDiff()
		return m, nil
	}

	switch st.region {
	case RegionBranches:
		return m.handleBranchKey(msg)
	case RegionCommits, RegionDetails:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCommitHover(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCommitHover(1)
		}
		return m, nil
	case RegionStashes:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveStashHover(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveStashHover(1)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleBranchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveBranchHover(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveBranchHover(1)
	case key.Matches(msg, m.keys.Enter):
		m.checkoutHovered()
	case key.Matches(msg, m.keys.DeleteBranch):
		m.deleteHovered()
	case key.Matches(msg, m.keys.NewBranch):
		m.branchEd.Reset()
		m.mode = modeInput{kind: inputBranchName, ret: m.mode}
	case key.Matches(msg, m.keys.Update):
		m.updateCurrent()
	case key.Matches(msg, m.keys.Push):
		m.pushCurrent()
	}
	return m, nil
}

// ── Commit popup ─────────────────────────────────────────────────────

func (m Model) handlePopupKey(msg tea.KeyMsg, st modePopup) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Close):
		m.mode = modeNormal{region: m.returnRegion}
		return m, nil
	case key.Matches(msg, m.keys.SubChanges):
		m.mode = modePopup{sub: RegionChanges}
		return m, nil
	case key.Matches(msg, m.keys.SubViewer):
		m.mode = modePopup{sub: RegionChangeViewer}
		return m, nil
	case key.Matches(msg, m.keys.SubMessage):
		m.mode = modePopup{sub: RegionCommitMessage}
		return m, nil
	}

	switch st.sub {
	case RegionChanges:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveChangeHover(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveChangeHover(1)
		case key.Matches(msg, m.keys.Enter):
			m.toggleStageHovered()
		case key.Matches(msg, m.keys.Discard):
			m.discardHovered()
		}
		return m, nil
	case RegionChangeViewer:
		var cmd tea.Cmd
		m.diff, cmd = m.diff.Update(msg)
		return m, cmd
	case RegionCommitMessage:
		if key.Matches(msg, m.keys.Enter) {
			m.mode = modeInput{kind: inputCommitMessage, ret: m.mode}
		}
		return m, nil
	}
	return m, nil
}

// ── Text-input overlay ───────────────────────────────────────────────

// handleInputKey owns all keys while an overlay is active: esc cancels,
// enter submits, everything else goes to the editor.
func (m Model) handleInputKey(msg tea.KeyMsg, st modeInput) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.activeEditor(st.kind).Reset()
		m.mode = st.ret
		return m, nil
	case tea.KeyEnter:
		return m.submitInput(st)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.insertRune(st.kind, r)
		}
	case tea.KeySpace:
		m.insertRune(st.kind, ' ')
	case tea.KeyBackspace:
		m.activeEditor(st.kind).DeleteBack()
	case tea.KeyDelete:
		m.activeEditor(st.kind).DeleteForward()
	case tea.KeyLeft:
		m.activeEditor(st.kind).MoveLeft()
	case tea.KeyRight:
		m.activeEditor(st.kind).MoveRight()
	case tea.KeyHome, tea.KeyCtrlA:
		m.activeEditor(st.kind).Home()
	case tea.KeyEnd, tea.KeyCtrlE:
		m.activeEditor(st.kind).End()
	}
	return m, nil
}

// activeEditor returns the plain editor backing the overlay. The branch
// variant's insertion policy is applied in insertRune.
func (m *Model) activeEditor(kind inputKind) *input.LineEditor {
	if kind == inputBranchName {
		return &m.branchEd.LineEditor
	}
	return &m.msgEd
}

func (m *Model) insertRune(kind inputKind, r rune) {
	if kind == inputBranchName {
		m.branchEd.InsertRune(r)
		return
	}
	m.msgEd.InsertRune(r)
}

func (m Model) submitInput(st modeInput) (tea.Model, tea.Cmd) {
	switch st.kind {
	case inputBranchName:
		name := m.branchEd.Value()
		if name == "" {
			m.branchEd.SetErr("branch name required")
			return m, nil
		}
		m.branchEd.Reset()
		m.mode = st.ret
		if err := m.svc.CreateBranch(name); err != nil {
			m.notify(err.Error())
			return m, nil
		}
		m.refreshAll(nil)
	case inputCommitMessage:
		message := m.msgEd.Value()
		if message == "" {
			m.msgEd.SetErr("commit message required")
			return m, nil
		}
		m.msgEd.Reset()
		m.mode = st.ret
		if err := m.svc.Commit(message); err != nil {
			m.notify(err.Error())
			return m, nil
		}
		m.notify("committed")
		m.refreshAll(nil)
	}
	return m, nil
}

// ── Hover movement ───────────────────────────────────────────────────

func (m *Model) moveBranchHover(delta int) {
	m.branchInfo.Hovered = moveHover(m.branchInfo.Hovered, delta, len(m.branchInfo.Branches))
}

func (m *Model) moveCommitHover(delta int) {
	m.commits.Hovered = moveHover(m.commits.Hovered, delta, len(m.commits.Commits))
}

func (m *Model) moveStashHover(delta int) {
	m.stashHover = moveHover(m.stashHover, delta, len(m.stashes))
}

func (m *Model) moveChangeHover(delta int) {
	m.status.Hovered = moveHover(m.status.Hovered, delta, len(m.status.Changes))
	m.refreshDiff()
}

// moveHover steps the hover by delta within [0, n), clamped at the edges.
func moveHover(hover *int, delta, n int) *int {
	if n == 0 {
		return nil
	}
	idx := 0
	if hover != nil {
		idx = *hover + delta
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return &idx
}

// ── Mutating actions ─────────────────────────────────────────────────

// Mutation errors never touch the view-model: the action notifies and the
// next refresh re-reads whatever state git is actually in.

func (m *Model) checkoutHovered() {
	b, ok := m.branchInfo.HoveredBranch()
	if !ok {
		return
	}
	if b.IsRemote {
		local, err := m.svc.CheckoutRemote(b.RemoteRef)
		if err != nil {
			m.notify(err.Error())
			return
		}
		m.branchInfo.Selected = local
	} else {
		if err := m.svc.Checkout(b.Name); err != nil {
			m.notify(err.Error())
			return
		}
		m.branchInfo.Selected = b.Name
	}
	m.refreshAll(nil)
}

func (m *Model) deleteHovered() {
	b, ok := m.branchInfo.HoveredBranch()
	if !ok || b.IsRemote {
		return
	}
	if err := m.svc.DeleteBranch(b.Name); err != nil {
		m.notify(fmt.Sprintf("delete %s: %v", b.Name, err))
		return
	}
	m.notify(fmt.Sprintf("deleted %s", b.Name))
	hover := m.branchInfo.Hovered
	m.refreshBranches(hover)
}

func (m *Model) updateCurrent() {
	if err := m.svc.FetchRemotes(); err != nil {
		m.notify(err.Error())
		return
	}
	if err := m.svc.PullCurrent(); err != nil {
		m.notify(err.Error())
		return
	}
	m.notify("updated " + m.branchInfo.Current)
	m.refreshAll(nil)
}

func (m *Model) pushCurrent() {
	if err := m.svc.PushCurrent(); err != nil {
		m.notify(err.Error())
		return
	}
	m.notify("pushed " + m.branchInfo.Current)
	m.refreshAll(nil)
}

func (m *Model) toggleStageHovered() {
	c, ok := m.status.HoveredChange()
	if !ok {
		return
	}
	var err error
	if c.Staged {
		err = m.svc.Unstage(c.Path)
	} else {
		err = m.svc.Stage(c.Path)
	}
	if err != nil {
		m.notify(err.Error())
		return
	}
	m.refreshStatus(c.Path)
}

func (m *Model) discardHovered() {
	c, ok := m.status.HoveredChange()
	if !ok || c.Staged {
		return
	}
	if err := m.svc.Discard(c.Path, c.Change == git.ChangeUntracked); err != nil {
		m.notify(err.Error())
		return
	}
	m.refreshStatus("")
}

func (m *Model) notify(message string) {
	m.notice.Set(message, m.cfg.NotificationTTL())
}

// ── Refresh ──────────────────────────────────────────────────────────

// refreshAll re-fetches every collection and reconciles hovers. A nil
// explicitBranch means no caller claimed a branch position, so the branch
// hover snaps to the checked-out branch.
func (m *Model) refreshAll(explicitBranch *int) {
	m.refreshBranches(explicitBranch)
	m.refreshCommits()
	m.refreshStatus("")
	m.refreshStashes()
}

func (m *Model) refreshBranches(explicit *int) {
	branches, err := m.svc.BranchSummaries()
	if err != nil {
		m.branchInfo = BranchInfo{Status: err.Error(), Selected: m.branchInfo.Selected}
		return
	}
	current, _ := m.svc.CurrentBranch()
	m.branchInfo = BranchInfo{
		Branches: branches,
		Current:  current,
		Hovered:  reconcileBranchHover(branches, current, explicit),
		Selected: reconcileBranchSelected(branches, m.branchInfo.Selected),
	}
}

func (m *Model) refreshCommits() {
	commits, err := m.svc.CommitLog(m.cfg.MaxLogEntries)
	if err != nil {
		m.commits = CommitsState{Status: err.Error()}
		return
	}
	prevID := ""
	if c, ok := m.commits.HoveredCommit(); ok {
		prevID = c.ID
	}
	m.commits = CommitsState{
		Commits: commits,
		Hovered: reconcileCommitHover(commits, prevID),
	}
}

func (m *Model) refreshStatus(preferred string) {
	lines, err := m.svc.StatusReport()
	if err != nil {
		m.status = RepoStatus{Error: err.Error(), RepoName: m.status.RepoName}
		m.refreshDiff()
		return
	}
	changes := git.DecodeStatusReport(lines)
	m.status = RepoStatus{
		Changes:  changes,
		RepoName: m.svc.RepoName(),
		Hovered:  reconcileChangeHover(changes, preferred, m.status.Hovered),
	}
	m.refreshDiff()
}

func (m *Model) refreshStashes() {
	stashes, err := m.svc.StashList()
	if err != nil {
		return
	}
	m.stashes = stashes
	if len(stashes) == 0 {
		m.stashHover = nil
	} else if m.stashHover != nil && *m.stashHover >= len(stashes) {
		last := len(stashes) - 1
		m.stashHover = &last
	}
}

// refreshDiff loads the hovered change's diff into the viewer.
func (m *Model) refreshDiff() {
	c, ok := m.status.HoveredChange()
	if !ok {
		m.diff.SetContent("")
		return
	}
	text, err := m.svc.Diff(c.Staged, c.Path)
	if err != nil {
		m.diff.SetContent(m.styles.ErrorText.Render(err.Error()))
		return
	}
	m.diff.SetContent(renderDiff(m.styles, text))
}
