// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main view for the slackline TUI.
package chat

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/slackline-tui/internal/config"
	"github.com/jeranaias/slackline-tui/internal/model"
	"github.com/jeranaias/slackline-tui/internal/session"
	"github.com/jeranaias/slackline-tui/internal/slack"
	"github.com/jeranaias/slackline-tui/internal/ui/components"
	"github.com/jeranaias/slackline-tui/internal/ui/styles"
)

// requestTimeout bounds each API round-trip issued from a command.
const requestTimeout = 15 * time.Second

// API is the request/response surface the chat view consumes. It is
// satisfied by *slack.Client; tests substitute fakes.
type API interface {
	StartSession(ctx context.Context) (streamURL string, self model.User, err error)
	ListChannels(ctx context.Context) ([]model.Channel, error)
	JoinChannel(ctx context.Context, name string) (model.Channel, error)
	ChannelHistory(ctx context.Context, channelID string) ([]slack.HistoryMessage, string, error)
	MarkChannel(ctx context.Context, channelID, ts string) error
	ListUsers(ctx context.Context) ([]model.User, error)
}

// =============================================================================
// FOCUS
// =============================================================================

// Focus names which widget receives keystrokes.
type Focus int

const (
	FocusChannels Focus = iota
	FocusInput
)

// =============================================================================
// CHANNEL LIST ITEMS
// =============================================================================

type channelItem struct {
	ch model.Channel
}

func (i channelItem) FilterValue() string { return i.ch.Name }

// channelDelegate renders channels as compact one-line entries.
type channelDelegate struct {
	theme *styles.Theme
}

func (d channelDelegate) Height() int                             { return 1 }
func (d channelDelegate) Spacing() int                            { return 0 }
func (d channelDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d channelDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(channelItem)
	if !ok {
		return
	}
	label := "#" + it.ch.Name
	if index == m.Index() {
		fmt.Fprint(w, d.theme.ChannelItemSelected.Render("> "+label))
		return
	}
	fmt.Fprint(w, d.theme.ChannelItem.Render(label))
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the whole client.
type Model struct {
	cfg      *config.Config
	api      API
	dialOpts slack.DialOptions
	stream   *slack.Stream

	// Domain state. The window and session are mutated only from Update.
	sess       *session.Session
	window     *model.Window
	ids        *model.MessageIDGenerator
	reconciler *Reconciler
	sequencer  *Sequencer

	// UI components
	theme       *styles.Theme
	header      *components.Header
	statusBar   *components.StatusBar
	channelList list.Model
	viewport    viewport.Model
	input       textinput.Model
	spinner     spinner.Model
	keys        KeyMap

	focus     Focus
	width     int
	height    int
	connected bool

	// fatalErr survives tea.Quit so main can report and exit non-zero.
	fatalErr error
}

// New wires up the chat model. The stream is not dialed yet; Init kicks
// off the startup sequence.
func New(cfg *config.Config, api API, dialOpts slack.DialOptions) Model {
	theme := styles.NewTheme()

	sess := session.New()
	window := model.NewWindow()
	ids := &model.MessageIDGenerator{}

	channelList := list.New(nil, channelDelegate{theme: theme}, cfg.UI.ChannelListWidth, 10)
	channelList.SetShowTitle(false)
	channelList.SetShowStatusBar(false)
	channelList.SetShowHelp(false)
	channelList.SetFilteringEnabled(false)
	channelList.DisableQuitKeybindings()

	input := textinput.New()
	input.Placeholder = "Message"
	input.CharLimit = 4000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		cfg:         cfg,
		api:         api,
		dialOpts:    dialOpts,
		sess:        sess,
		window:      window,
		ids:         ids,
		reconciler:  NewReconciler(ids, window, sess),
		sequencer:   NewSequencer(sess, window),
		theme:       theme,
		header:      components.NewHeader(theme),
		statusBar:   components.NewStatusBar(theme),
		channelList: channelList,
		viewport:    viewport.New(80, 20),
		input:       input,
		spinner:     sp,
		keys:        DefaultKeyMap(),
		focus:       FocusChannels,
	}
}

// Init starts the startup sequence: directory fetches and the streaming
// session, all in flight at once.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadChannelsCmd(),
		m.loadUsersCmd(),
		m.startSessionCmd(),
	)
}

// FatalErr returns the error that ended the program, if any. main reads
// this after the program loop exits.
func (m Model) FatalErr() error {
	return m.fatalErr
}

// Window exposes the render surface for tests.
func (m Model) Window() *model.Window {
	return m.window
}

// Session exposes the session for tests.
func (m Model) Session() *session.Session {
	return m.sess
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m Model) loadChannelsCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		channels, err := api.ListChannels(ctx)
		return ChannelsLoadedMsg{Channels: channels, Err: err}
	}
}

func (m Model) loadUsersCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		users, err := api.ListUsers(ctx)
		return UsersLoadedMsg{Users: users, Err: err}
	}
}

func (m Model) startSessionCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		streamURL, self, err := api.StartSession(ctx)
		return SessionStartedMsg{StreamURL: streamURL, Self: self, Err: err}
	}
}

func (m Model) dialCmd(streamURL string) tea.Cmd {
	opts := m.dialOpts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		stream, err := slack.Dial(ctx, streamURL, opts)
		return StreamConnectedMsg{Stream: stream, Err: err}
	}
}

// waitEventCmd blocks on the next stream event. Update re-issues it
// after consuming each event, so events are handled strictly one at a
// time in arrival order.
func waitEventCmd(stream *slack.Stream) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-stream.Events()
		if !ok {
			return StreamEventMsg{Closed: true}
		}
		return StreamEventMsg{Event: ev}
	}
}

func (m Model) joinCmd(gen int, name string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ch, err := api.JoinChannel(ctx, name)
		return ChannelJoinedMsg{Gen: gen, Channel: ch, Err: err}
	}
}

func (m Model) historyCmd(gen int, channelID string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msgs, latest, err := api.ChannelHistory(ctx, channelID)
		return HistoryLoadedMsg{Gen: gen, Messages: msgs, Latest: latest, Err: err}
	}
}

// markReadCmd is fire-and-forget: nothing downstream waits on it.
func (m Model) markReadCmd(channelID, ts string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return MarkedReadMsg{Err: api.MarkChannel(ctx, channelID, ts)}
	}
}
