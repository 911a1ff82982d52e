// Package ui implements the interactive terminal UI: a Bubble Tea model
// wrapping core.Controller/core.AppState, rendering the breadcrumb, main
// pane (ring chart + file list), status bar, hint bar, and the Help/
// ErrorList/ExportMenu modals spec.md §4.6 names.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ZingerLittleBee/DiskLens/internal/core"
	"github.com/ZingerLittleBee/DiskLens/internal/model"
	"github.com/ZingerLittleBee/DiskLens/internal/scanner"
)

// toastDuration is how long the most recent scan error stays visible in
// the status bar before fading (spec.md §4.7: "~3 seconds").
const toastDuration = 3 * time.Second

// App is the root Bubble Tea model.
type App struct {
	ctrl *core.Controller
	cfg  scanner.ScanConfig
	root string

	state      core.AppState
	keys       KeyMap
	errorList  ErrorListState
	exportMenu ExportMenuState

	events  <-chan core.Event
	lastErr error
	toast   string
	toastAt time.Time

	width, height int
}

// NewApp builds the initial model. The scan itself starts in Init.
func NewApp(ctrl *core.Controller, root string, cfg scanner.ScanConfig) App {
	return App{
		ctrl:  ctrl,
		cfg:   cfg,
		root:  root,
		state: core.NewAppState(),
		keys:  DefaultKeyMap(),
	}
}

type eventMsg struct {
	event  core.Event
	events <-chan core.Event
}
type toastExpireMsg struct{ at time.Time }

// Init starts the scan and begins listening for its events.
func (a App) Init() tea.Cmd {
	events := a.ctrl.Run(context.Background(), a.root, a.cfg)
	a.events = events
	return a.listenForEvents(events)
}

func (a App) listenForEvents(events <-chan core.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg{event: event, events: events}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case eventMsg:
		// Init runs on a copy of the model, so the channel it started is
		// carried on each message and stored here for re-arming.
		a.events = msg.events
		return a.handleEvent(msg.event)

	case toastExpireMsg:
		if !msg.at.Before(a.toastAt) {
			a.toast = ""
		}
		return a, nil
	}
	return a, nil
}

func (a App) handleEvent(event core.Event) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case core.ProgressEvent:
		a.state.ProgressSnapshot = e.Snapshot
		return a, a.listenForEvents(a.events)

	case core.ScanErrorEvent:
		a.state.ErrorCount++
		a.toast = fmt.Sprintf("%s: %s", e.Err.Kind, e.Err.Path)
		a.toastAt = time.Now()
		return a, tea.Batch(
			a.listenForEvents(a.events),
			a.expireToastAfter(toastDuration),
		)

	case core.ScanCompleteEvent:
		if e.Err != nil {
			a.lastErr = e.Err
			return a, nil
		}
		a.state.Result = e.Result
		a.state.CurrentPath = e.Result.Root.Path
		a.state.ViewMode = core.ViewNormal
		return a, nil
	}
	return a, nil
}

func (a App) expireToastAfter(d time.Duration) tea.Cmd {
	at := time.Now()
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpireMsg{at: at}
	})
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state.ViewMode {
	case core.ViewHelp:
		if key.Matches(msg, a.keys.Help) || msg.String() == "esc" {
			a.state.ViewMode = core.ViewNormal
		}
		return a, nil

	case core.ViewErrorList:
		return a.handleErrorListKey(msg)

	case core.ViewExportMenu:
		return a.handleExportMenuKey(msg)

	case core.ViewScanning:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	return a.handleNormalKey(msg)
}

func (a App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wasG := a.state.PendingG
	if msg.String() != "g" {
		a.state.PendingG = false
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.state.ViewMode = core.ViewHelp
		return a, nil

	case key.Matches(msg, a.keys.Errors):
		a.state.ViewMode = core.ViewErrorList
		return a, nil

	case key.Matches(msg, a.keys.Export):
		a.state.ViewMode = core.ViewExportMenu
		return a, nil

	case key.Matches(msg, a.keys.Sort):
		a.state.CycleSort()
		return a, nil

	case key.Matches(msg, a.keys.Thresh):
		a.state.CycleThreshold()
		return a, nil

	case msg.String() == "g":
		if wasG {
			a.state.JumpFirst()
		} else {
			a.state.PendingG = true
		}
		return a, nil

	case msg.String() == "G":
		a.state.JumpLast(len(a.state.SortedChildren()))
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.state.MoveSelection(1, len(a.state.SortedChildren()))
		return a, nil

	case key.Matches(msg, a.keys.Up):
		a.state.MoveSelection(-1, len(a.state.SortedChildren()))
		return a, nil

	case key.Matches(msg, a.keys.Tab):
		a.state.ToggleFocus()
		return a, nil

	case key.Matches(msg, a.keys.Enter):
		children := a.state.SortedChildren()
		if a.state.SelectedIndex < len(children) {
			a.state.Enter(children[a.state.SelectedIndex])
		}
		return a, nil

	case key.Matches(msg, a.keys.Back):
		a.state.Back()
		return a, nil
	}

	return a, nil
}

func (a App) handleErrorListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "e":
		a.state.ViewMode = core.ViewNormal
	case "s":
		a.errorList.SortKind = !a.errorList.SortKind
	case "up", "k":
		if a.errorList.Selected > 0 {
			a.errorList.Selected--
		}
	case "down", "j":
		if a.state.Result != nil && a.errorList.Selected < len(a.state.Result.Errors)-1 {
			a.errorList.Selected++
		}
	case "c":
		if a.state.Result != nil {
			errs := a.errorList.sortedErrors(a.state.Result.Errors)
			if a.errorList.Selected < len(errs) {
				copyPathToClipboard(errs[a.errorList.Selected].Path)
			}
		}
	}
	return a, nil
}

func (a App) handleExportMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.state.ViewMode = core.ViewNormal
	case "j":
		if a.state.Result != nil {
			doExport(&a.exportMenu, a.state.Result)
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "starting…"
	}

	if a.state.ViewMode == core.ViewScanning {
		return a.renderScanning()
	}

	breadcrumb := BreadcrumbStyle.Width(a.width).Render(a.state.CurrentPath)
	statusBar := a.renderStatusBar()
	hintBar := a.renderHintBar()

	mainHeight := a.height - 4
	if mainHeight < 3 {
		mainHeight = 3
	}
	listWidth := a.width * 3 / 5
	ringWidth := a.width - listWidth

	list := renderFileList(a.state, listWidth, mainHeight)
	ring := renderRing(a.state, ringWidth, mainHeight)
	main := lipgloss.JoinHorizontal(lipgloss.Top, list, ring)

	content := lipgloss.JoinVertical(lipgloss.Left, breadcrumb, main, statusBar, hintBar)

	switch a.state.ViewMode {
	case core.ViewHelp:
		return a.overlay(renderHelp())
	case core.ViewErrorList:
		var errs []model.ScanError
		if a.state.Result != nil {
			errs = a.state.Result.Errors
		}
		return a.overlay(renderErrorList(errs, a.errorList, a.width*2/3, a.height*2/3))
	case core.ViewExportMenu:
		return a.overlay(renderExportMenu(a.exportMenu, a.width/2, a.height/3))
	}

	return content
}

func (a App) overlay(modal string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (a App) renderScanning() string {
	snap := a.state.ProgressSnapshot
	line := fmt.Sprintf("scanning… %d files, %s, %s",
		snap.FilesScanned, model.HumanSize(snap.BytesScanned), snap.Elapsed.Round(time.Second))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, line)
}

func (a App) renderStatusBar() string {
	parts := []string{
		fmt.Sprintf("errors: %d", a.state.ErrorCount),
		fmt.Sprintf("sort: %s", a.state.SortMode),
		fmt.Sprintf("threshold: %.1f%%", a.state.Threshold()*100),
	}
	if children := a.state.SortedChildren(); a.state.SelectedIndex < len(children) {
		if selected := children[a.state.SelectedIndex]; selected.Kind == model.File {
			if t := fileType(selected.Path); t != "" {
				parts = append(parts, fmt.Sprintf("type: %s", t))
			}
		}
	}
	if a.lastErr != nil {
		parts = append(parts, fmt.Sprintf("scan error: %v", a.lastErr))
	}
	if a.toast != "" && time.Since(a.toastAt) < toastDuration {
		return ToastStyle.Width(a.width).Render(a.toast)
	}
	return StatusBarStyle.Width(a.width).Render(strings.Join(parts, "   "))
}

func (a App) renderHintBar() string {
	hints := []string{"j/k: move", "enter: open", "h: back", "tab: focus", "?: help", "q: quit"}
	return HintBarStyle.Width(a.width).Render(strings.Join(hints, "  "))
}
