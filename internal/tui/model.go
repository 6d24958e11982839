package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/tui/components/footer"
	"github.com/garrettladley/healthion/internal/tui/theme"
	"github.com/garrettladley/healthion/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	signedOutPage
	dashboardPage
)

type state struct {
	dashboard  DashboardState
	splashDone bool
	refreshing bool
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps

	bindings    []binding
	updates     chan string
	unsubscribe func()
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	var (
		bindings = deps.Resources.bindings()
		updates  = make(chan string, updateBuffer)
	)

	m := Model{
		page:        splashPage,
		theme:       theme.New(),
		deps:        deps,
		bindings:    bindings,
		updates:     updates,
		unsubscribe: subscribeAll(bindings, updates),
	}
	m.state.dashboard.AuthIndicator.Status = oauth.Status{Pending: true}
	return m
}

// Close detaches the model from its hooks.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splashDuration, func(time.Time) tea.Msg {
			return SplashTickMsg{}
		}),
		resolveAuthCmd(m.deps.Ctx, m.deps.Auth),
		listenUpdatesCmd(m.deps.Ctx, m.updates),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.page == dashboardPage && m.authStatus().Resolved() && !m.state.refreshing {
				m.state.refreshing = true
				return m, refreshAllCmd(m.deps.Ctx, m.bindings)
			}
		}

	case SplashTickMsg:
		m.state.splashDone = true
		m.page = m.landingPage()

	case AuthStatusMsg:
		if msg.Err != nil {
			m.deps.Logger.Error("failed to resolve auth status", xslog.Error(msg.Err))
		}
		m.state.dashboard.AuthIndicator.Status = msg.Status
		if m.state.splashDone {
			m.page = m.landingPage()
		}
		if msg.Status.Resolved() {
			return m, tea.Batch(
				activateCmd(m.deps.Ctx, m.bindings, msg.Status),
				fetchIdentityCmd(m.deps.Ctx, m.deps.Identity),
			)
		}

	case IdentityMsg:
		m.state.dashboard.Identity = msg.Identity
		if msg.Identity != nil {
			m.state.dashboard.AuthIndicator.Email = msg.Identity.Email
		}

	case ResourceUpdatedMsg:
		return m, listenUpdatesCmd(m.deps.Ctx, m.updates)

	case RefreshedMsg:
		m.state.refreshing = false
		if msg.Err != nil {
			m.deps.Logger.Warn("refresh finished with errors", xslog.Error(msg.Err))
		}
	}

	return m, nil
}

func (m *Model) authStatus() oauth.Status {
	return m.state.dashboard.AuthIndicator.Status
}

func (m *Model) landingPage() page {
	status := m.authStatus()
	switch {
	case status.Pending, status.Authenticated:
		return dashboardPage
	default:
		return signedOutPage
	}
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.LogoView(),
		)
	case signedOutPage:
		content = m.withFooter(m.SignedOutView())
	case dashboardPage:
		content = m.withFooter(m.DashboardView())
	}

	view.SetContent(content)
	return view
}

// withFooter centers body above the footer, which carries the version and the
// auth indicator.
func (m *Model) withFooter(body string) string {
	foot := footer.New(m.AuthIndicatorView(), m.viewportWidth).Render()
	bodyHeight := max(m.viewportHeight-lipgloss.Height(foot), 0)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.Place(
			m.viewportWidth,
			bodyHeight,
			lipgloss.Center,
			lipgloss.Center,
			body,
		),
		foot,
	)
}
