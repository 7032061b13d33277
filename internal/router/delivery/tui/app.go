package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weather-ai-bot/internal/model"
	"weather-ai-bot/internal/router"
)

const (
	title       = "Weather + AI Bot"
	placeholder = "Ask about the date, the weather in a city, or anything else..."
	maxInput    = 2000
)

// App is the bubbletea model for the chat screen.
type App struct {
	ctx    context.Context
	router router.Router

	input      textinput.Model
	transcript []model.Turn
	pending    bool

	width    int
	height   int
	quitting bool
}

type replyMsg struct {
	reply string
}

// NewApp creates the chat model. ctx bounds every routed turn.
func NewApp(ctx context.Context, r router.Router) *App {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = maxInput
	input.Width = 60
	input.Prompt = "> You: "
	input.Focus()

	return &App{
		ctx:    ctx,
		router: r,
		input:  input,
	}
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, r router.Router) error {
	p := tea.NewProgram(NewApp(ctx, r), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, keys.Enter):
			return a, a.submit()
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if msg.Width > 10 {
			a.input.Width = msg.Width - 10
		}
		return a, nil

	case replyMsg:
		if n := len(a.transcript); n > 0 {
			a.transcript[n-1].Reply = msg.reply
		}
		a.pending = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit routes the current input. Only one turn is in flight at a time.
func (a *App) submit() tea.Cmd {
	text := strings.TrimSpace(a.input.Value())
	if text == "" || a.pending {
		return nil
	}
	a.input.Reset()

	switch strings.ToLower(text) {
	case "exit", "quit":
		a.quitting = true
		return tea.Quit
	}

	a.transcript = append(a.transcript, model.Turn{Input: text})
	a.pending = true
	return a.route(text)
}

func (a *App) route(text string) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{reply: a.router.Route(a.ctx, text)}
	}
}
