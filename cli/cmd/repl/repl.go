package repl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/yex/lang"
	"github.com/ardnew/yex/log"
)

const (
	prompt     = "yex> "
	echoPrefix = ">> "
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// options collects the adjustable parameters of a session.
type options struct {
	historyFile string
	maxDepth    int
}

// Option adjusts session behavior.
type Option func(*options)

// WithHistoryFile sets the path of the persistent history file. An empty
// path keeps history in memory only.
func WithHistoryFile(path string) Option {
	return func(o *options) { o.historyFile = path }
}

// WithMaxDepth overrides the evaluation depth limit.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// Run starts an interactive session on the terminal and blocks until the
// user exits with Ctrl+D on an empty line or Ctrl+C.
func Run(ctx context.Context, logger log.Logger, opts ...Option) error {
	o := options{maxDepth: lang.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	hist, err := loadHistory(o.historyFile)
	if err != nil {
		// A missing or unreadable history file is not fatal.
		logger.Warn("failed to load history",
			slog.String("path", o.historyFile),
			slog.String("error", err.Error()),
		)
		hist = &history{}
	}

	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = promptStyle
	input.Focus()

	m := &model{
		ctx:      ctx,
		input:    input,
		env:      lang.NewEnv(),
		history:  hist,
		histIdx:  hist.Len(),
		logger:   logger,
		maxDepth: o.maxDepth,
	}

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// model is the bubbletea state of one session.
type model struct {
	ctx   context.Context
	input textinput.Model

	env   *lang.Env
	names []string

	history *history
	histIdx int
	pending string

	comp completer

	logger   log.Logger
	maxDepth int
	quitting bool
}

// Init implements [tea.Model].
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyEnter:
		m.comp.reset()
		return m, m.submit()
	case tea.KeyUp:
		m.browse(-1)
		return m, nil
	case tea.KeyDown:
		m.browse(+1)
		return m, nil
	case tea.KeyTab:
		m.cycle()
		return m, nil
	}

	m.comp.reset()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *model) View() string {
	if m.quitting {
		return ""
	}
	view := m.input.View()
	if hint := m.comp.hint(); hint != "" {
		view += "\n" + hintStyle.Render(hint)
	}
	return view + "\n"
}

// browse moves through input history. The line being typed is stashed so
// stepping past the newest entry restores it.
func (m *model) browse(delta int) {
	next := m.histIdx + delta
	if next < 0 || next > m.history.Len() {
		return
	}
	if m.histIdx == m.history.Len() {
		m.pending = m.input.Value()
	}
	m.histIdx = next
	if next == m.history.Len() {
		m.input.SetValue(m.pending)
	} else {
		m.input.SetValue(m.history.At(next))
	}
	m.input.CursorEnd()
}

// cycle starts or advances Tab completion over the trailing identifier
// fragment.
func (m *model) cycle() {
	if !m.comp.active() {
		m.comp.start(m.input.Value(), m.names)
	} else {
		m.comp.next()
	}
	if line, ok := m.comp.current(); ok {
		m.input.SetValue(line)
		m.input.CursorEnd()
	}
}

// submit evaluates the current line and emits its transcript above the
// prompt.
func (m *model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.pending = ""
	if line == "" {
		return nil
	}

	if err := m.history.Append(line); err != nil {
		m.logger.Warn("failed to persist history",
			slog.String("error", err.Error()),
		)
	}
	m.histIdx = m.history.Len()

	var sb strings.Builder
	sb.WriteString(promptStyle.Render(prompt))
	sb.WriteString(line)

	var out strings.Builder
	result, err := m.eval(line, &out)
	if text := out.String(); text != "" {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(text, "\n"))
	}
	if err != nil {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(err.Error()))
	} else {
		sb.WriteString("\n")
		sb.WriteString(echoStyle.Render(echoPrefix + result.String()))
	}
	return tea.Println(sb.String())
}

// eval parses and evaluates one line, installing bare `let` bindings in
// the session environment.
func (m *model) eval(line string, out *strings.Builder) (lang.Value, error) {
	opts := []lang.Option{
		lang.WithOutput(out),
		lang.WithLogger(m.logger),
		lang.WithMaxDepth(m.maxDepth),
	}

	expr, bind, err := lang.ParseInteractive(m.ctx, line, lang.WithLogger(m.logger))
	if err != nil {
		return lang.Value{}, err
	}
	if bind != nil {
		v, env, err := lang.EvalBinding(m.ctx, bind, m.env, opts...)
		if err != nil {
			return lang.Value{}, err
		}
		m.env = env
		m.names = append(m.names, bind.Name)
		return v, nil
	}

	v, err := lang.Eval(m.ctx, expr, m.env, opts...)
	if err != nil {
		return lang.Value{}, lang.Annotate(err, line)
	}
	return v, nil
}
