// Package tui implements the interactive chat session over the query
// engine using bubbletea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marimarques/cobrador/internal/cli"
	"github.com/marimarques/cobrador/internal/conversation"
	"github.com/marimarques/cobrador/internal/engine"
	"github.com/marimarques/cobrador/internal/storage"
)

// answerMsg carries one finished engine response back into the update loop.
type answerMsg struct {
	texto string
}

// Model holds the chat session state. One question is in flight at a time:
// the input is ignored while busy, which serializes access to the
// conversational context as the engine requires.
type Model struct {
	ctx      context.Context
	eng      *engine.Engine
	sessao   *conversation.Context
	store    *storage.Store
	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model
	linhas   []string
	width    int
	height   int
	busy     bool
	ready    bool
	quitting bool
}

func newModel(ctx context.Context, eng *engine.Engine, store *storage.Store) Model {
	input := textinput.New()
	input.Placeholder = "Pergunte algo sobre os dados..."
	input.Focus()
	input.CharLimit = 200

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(cli.PrimaryColor)

	return Model{
		ctx:    ctx,
		eng:    eng,
		sessao: conversation.New(),
		store:  store,
		input:  input,
		spin:   spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		altura := msg.Height - 6
		if altura < 3 {
			altura = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, altura)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = altura
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			pergunta := strings.TrimSpace(m.input.Value())
			if pergunta == "" {
				return m, nil
			}
			m.input.Reset()
			m.linhas = append(m.linhas, cli.UserStyle.Render("você: ")+pergunta)
			m.busy = true
			m.refresh()
			return m, tea.Batch(m.spin.Tick, m.perguntar(pergunta))
		}

	case answerMsg:
		m.busy = false
		m.linhas = append(m.linhas, cli.RenderAnswer(msg.texto), "")
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// perguntar runs one question through the engine off the update loop and
// appends both sides to the persisted transcript. Transcript failures are
// ignored: the log is best effort and never blocks an answer.
func (m Model) perguntar(pergunta string) tea.Cmd {
	return func() tea.Msg {
		if m.store != nil {
			_ = m.store.AppendTranscript(m.ctx, "usuario", pergunta)
		}
		resposta := m.eng.Answer(m.ctx, pergunta, m.sessao)
		if m.store != nil {
			_ = m.store.AppendTranscript(m.ctx, "bot", resposta)
		}
		return answerMsg{texto: resposta}
	}
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.linhas, "\n"))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "carregando..."
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("cobrador · assistente de cobrança"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View() + cli.SubtleStyle.Render(" consultando..."))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("enter envia · esc sai"))
	return b.String()
}
