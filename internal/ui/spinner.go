package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner reports progress of one long-running step.
type Spinner interface {
	Start(msg string)
	Succeed(msg string)
	Fail(msg string)
}

// NewSpinner returns an animated spinner when animate is set and a plain
// line-based one otherwise.
func NewSpinner(out io.Writer, styles Styles, animate bool) Spinner {
	if animate {
		return &Animated{Out: out, Styles: styles}
	}
	return &Plain{Out: out, Styles: styles}
}

// Plain writes one status line per call.
type Plain struct {
	Out    io.Writer
	Styles Styles
}

func (p *Plain) Start(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Styles.Muted.Render("-"), msg)
}

func (p *Plain) Succeed(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Styles.Success.Render("✔"), msg)
}

func (p *Plain) Fail(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Styles.Error.Render("✖"), msg)
}

type finishMsg struct {
	ok   bool
	text string
}

type spinnerModel struct {
	sp     spinner.Model
	label  string
	final  string
	styles Styles
}

func (m spinnerModel) Init() tea.Cmd { return m.sp.Tick }

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case finishMsg:
		mark := m.styles.Success.Render("✔")
		if !msg.ok {
			mark = m.styles.Error.Render("✖")
		}
		m.final = mark + " " + msg.text
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.final != "" {
		return m.final + "\n"
	}
	return m.sp.View() + " " + m.label
}

// Animated draws a bubbles spinner on Out until Succeed or Fail.
type Animated struct {
	Out    io.Writer
	Styles Styles

	mu   sync.Mutex
	prog *tea.Program
	done chan struct{}
}

func (a *Animated) Start(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.prog != nil {
		return
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = a.Styles.Accent

	a.prog = tea.NewProgram(
		spinnerModel{sp: sp, label: msg, styles: a.Styles},
		tea.WithOutput(a.Out),
		tea.WithInput(nil),
	)
	a.done = make(chan struct{})
	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		_, _ = p.Run()
	}(a.prog, a.done)
}

func (a *Animated) Succeed(msg string) { a.finish(true, msg) }

func (a *Animated) Fail(msg string) { a.finish(false, msg) }

func (a *Animated) finish(ok bool, msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.prog == nil {
		(&Plain{Out: a.Out, Styles: a.Styles}).finish(ok, msg)
		return
	}
	a.prog.Send(finishMsg{ok: ok, text: msg})
	<-a.done
	a.prog = nil
}

func (p *Plain) finish(ok bool, msg string) {
	if ok {
		p.Succeed(msg)
		return
	}
	p.Fail(msg)
}
