package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/reviews/internal/browser"
	"github.com/naveenspark/reviews/internal/reviews"
	"github.com/naveenspark/reviews/pkg/client"
)

// wheelLines is how far one mouse wheel notch scrolls.
const wheelLines = 3

// pageLoadedMsg carries one provider result back to the update loop.
type pageLoadedMsg struct {
	res reviews.PageResult
}

type copyResultMsg struct{ err error }
type openResultMsg struct{ err error }

// App is the root Bubbletea model.
type App struct {
	ctx       context.Context
	ctrl      *reviews.Controller
	list      listModel
	keys      KeyMap
	spinner   spinner.Model
	source    string
	statusMsg string
	statusErr bool
	width     int
	height    int
}

// NewApp creates the review list application. ctx bounds every page
// request the app issues.
func NewApp(ctx context.Context, ctrl *reviews.Controller, source string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	return App{
		ctx:     ctx,
		ctrl:    ctrl,
		list:    newListModel(ctrl),
		keys:    DefaultKeyMap(),
		spinner: sp,
		source:  source,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadFirst())
}

// loadFirst requests the first page of an empty list.
func (a App) loadFirst() tea.Cmd {
	return waitForPage(a.ctrl.RequestNextPage(a.ctx))
}

// maybeLoad evaluates the load trigger at the list's current offset.
func (a App) maybeLoad() tea.Cmd {
	if a.list.height <= 0 {
		return nil
	}
	ch := a.ctrl.MaybeRequestNextPage(a.ctx,
		float64(a.list.height),
		float64(a.list.contentHeight()),
		float64(a.list.offset))
	return waitForPage(ch)
}

func waitForPage(ch <-chan reviews.PageResult) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return pageLoadedMsg{res: <-ch}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(1) + status(1) + help(1) = 3 lines
		a.list.width = msg.Width
		a.list.height = max(msg.Height-3, 0)
		a.list = a.list.clamp().ensureCursorVisible()
		return a, a.maybeLoad()

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case pageLoadedMsg:
		a.ctrl.OnPageResult(msg.res)
		a.list = a.list.clamp()
		if err := a.ctrl.LastError(); err != nil {
			a.setError(loadFailureStatus(err))
			return a, nil
		}
		a.setStatus("")
		return a, a.maybeLoad()

	case copyResultMsg:
		if msg.err != nil {
			a.setError(fmt.Sprintf("copy failed: %v", msg.err))
		} else {
			a.setStatus("copied!")
		}
		return a, nil

	case openResultMsg:
		if msg.err != nil {
			a.setError(fmt.Sprintf("open failed: %v", msg.err))
		} else {
			a.setStatus("opened avatar")
		}
		return a, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return a.scroll(-wheelLines)
		case tea.MouseButtonWheelDown:
			return a.scroll(wheelLines)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	half := max(a.list.height/2, 1)
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Down):
		a.list = a.list.moveCursor(1)
		return a, a.maybeLoad()
	case key.Matches(msg, a.keys.Up):
		a.list = a.list.moveCursor(-1)
		return a, a.maybeLoad()
	case key.Matches(msg, a.keys.HalfPageDown):
		return a.scroll(half)
	case key.Matches(msg, a.keys.HalfPageUp):
		return a.scroll(-half)
	case key.Matches(msg, a.keys.PageDown):
		return a.scroll(max(a.list.height, 1))
	case key.Matches(msg, a.keys.PageUp):
		return a.scroll(-max(a.list.height, 1))
	case key.Matches(msg, a.keys.Top):
		a.list = a.list.top()
		return a, a.maybeLoad()
	case key.Matches(msg, a.keys.Bottom):
		a.list = a.list.bottom()
		return a, a.maybeLoad()
	case key.Matches(msg, a.keys.Expand):
		if row, ok := a.selectedReview(); ok {
			row.RequestExpand()
			a.list = a.list.clamp().ensureCursorVisible()
		}
		return a, nil
	case key.Matches(msg, a.keys.Copy):
		if row, ok := a.selectedReview(); ok {
			text := row.Text
			return a, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(text)}
			}
		}
	case key.Matches(msg, a.keys.Open):
		if row, ok := a.selectedReview(); ok {
			if row.Avatar.URL == "" {
				a.setStatus("no avatar for " + row.Name)
				return a, nil
			}
			link := row.Avatar.URL
			return a, func() tea.Msg {
				return openResultMsg{err: browser.Open(link)}
			}
		}
	case key.Matches(msg, a.keys.Reload):
		a.ctrl.Reset()
		a.list = a.list.top()
		a.setStatus("")
		return a, a.loadFirst()
	}
	return a, nil
}

// setStatus shows an informational message; "" clears the line.
func (a *App) setStatus(msg string) {
	a.statusMsg, a.statusErr = msg, false
}

func (a *App) setError(msg string) {
	a.statusMsg, a.statusErr = msg, true
}

// loadFailureStatus words a failed page for the status line. Every failure
// stays retryable by scrolling; the wording only hints at what to fix.
func loadFailureStatus(err error) string {
	switch {
	case client.IsUnauthorized(err):
		return "feed rejected the token, check --token"
	case client.IsRetryable(err):
		return "couldn't load reviews, scroll to retry"
	default:
		return "feed returned an error, scroll to retry"
	}
}

// scroll moves the viewport; the trigger is evaluated at the new offset.
func (a App) scroll(lines int) (tea.Model, tea.Cmd) {
	a.list = a.list.scrollBy(lines)
	return a, a.maybeLoad()
}

func (a App) selectedReview() (reviews.ReviewRow, bool) {
	return a.list.rowItem(a.list.cursor)
}

func (a App) View() string {
	s := a.ctrl.State()

	// Header: title left, progress right
	title := " " + titleStyle.Render("Reviews")
	progress := fmt.Sprintf("%d loaded", s.Reviews())
	if s.CountKnown {
		progress = fmt.Sprintf("%d of %d", s.Reviews(), s.Count)
	}
	right := metaStyle.Render(progress+" · "+a.source) + " "
	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(right), 1)
	header := title + strings.Repeat(" ", gap) + right

	body := strings.Join(a.list.lines(), "\n")

	var status string
	switch {
	case s.Loading():
		status = " " + a.spinner.View() + " " + dimStyle.Render("loading reviews…")
	case a.statusMsg != "" && a.statusErr:
		status = " " + errorStyle.Render(a.statusMsg)
	case a.statusMsg != "":
		status = " " + dimStyle.Render(a.statusMsg)
	}

	parts := make([]string, 0, len(a.keys.ShortHelp()))
	for _, b := range a.keys.ShortHelp() {
		parts = append(parts, helpEntry(b.Help().Key, b.Help().Desc))
	}
	help := " " + strings.Join(parts, "  ")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, body, status, help)
}
