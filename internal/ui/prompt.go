package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"makeabet/internal/chain"
	"makeabet/internal/scaffold"
)

// ErrCancelled is returned when the user aborts the prompts.
var ErrCancelled = errors.New("scaffold creation cancelled")

// Answers carries what the command line already supplied. Zero fields are
// asked for; Merchant is nil when the flag was not given.
type Answers struct {
	ProjectName    string
	Merchant       *bool
	TargetChain    string
	PackageManager scaffold.PackageManager
}

// Complete reports whether nothing is left to ask.
func (a Answers) Complete() bool {
	return a.ProjectName != "" && a.Merchant != nil && a.TargetChain != "" && a.PackageManager != ""
}

// Prompter turns partial Answers into complete scaffold options.
type Prompter interface {
	Prompt(ctx context.Context, a Answers) (scaffold.Options, error)
}

// Defaults fills missing answers without asking.
type Defaults struct{}

func (Defaults) Prompt(_ context.Context, a Answers) (scaffold.Options, error) {
	o := scaffold.Options{
		ProjectName:           a.ProjectName,
		IncludeMerchantModule: true,
		TargetChain:           a.TargetChain,
		PackageManager:        a.PackageManager,
	}
	if o.ProjectName == "" {
		o.ProjectName = scaffold.DefaultProjectName
	}
	if a.Merchant != nil {
		o.IncludeMerchantModule = *a.Merchant
	}
	if o.TargetChain == "" {
		o.TargetChain = chain.DefaultKey
	}
	if o.PackageManager == "" {
		o.PackageManager = scaffold.PNPM
	}
	return o, nil
}

// Interactive asks for missing answers with a bubbletea form.
type Interactive struct {
	In     io.Reader
	Out    io.Writer
	Styles Styles
}

func (p Interactive) Prompt(ctx context.Context, a Answers) (scaffold.Options, error) {
	if a.Complete() {
		return Defaults{}.Prompt(ctx, a)
	}
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(NewForm(a, p.Styles), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return scaffold.Options{}, ctxErr
		}
		return scaffold.Options{}, fmt.Errorf("prompt: %w", err)
	}
	form := final.(Form)
	if form.Cancelled() {
		return scaffold.Options{}, ErrCancelled
	}
	return form.Options(), nil
}

type step int

const (
	stepName step = iota
	stepMerchant
	stepChain
	stepPackageManager
)

// Form is the tea.Model behind Interactive. It walks through the
// questions the Answers leave open, one per screen.
type Form struct {
	answers Answers
	steps   []step
	cur     int

	name     textinput.Model
	merchant bool
	chains   []chain.Metadata
	chainIdx int
	pmIdx    int

	err       string
	done      bool
	cancelled bool
	styles    Styles
}

// NewForm builds the form for whatever a leaves open.
func NewForm(a Answers, styles Styles) Form {
	ti := textinput.New()
	ti.Placeholder = scaffold.DefaultProjectName
	ti.SetValue(scaffold.DefaultProjectName)
	ti.CharLimit = 128
	ti.Focus()

	f := Form{
		answers:  a,
		name:     ti,
		merchant: true,
		chains:   chain.ScaffoldTargets(),
		styles:   styles,
	}
	if a.Merchant != nil {
		f.merchant = *a.Merchant
	}
	if a.ProjectName == "" {
		f.steps = append(f.steps, stepName)
	}
	if a.Merchant == nil {
		f.steps = append(f.steps, stepMerchant)
	}
	if a.TargetChain == "" {
		f.steps = append(f.steps, stepChain)
	}
	if a.PackageManager == "" {
		f.steps = append(f.steps, stepPackageManager)
	}
	f.done = len(f.steps) == 0
	return f
}

func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.done {
		return f, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and other non-key messages belong to the text input.
		if f.steps[f.cur] == stepName {
			var cmd tea.Cmd
			f.name, cmd = f.name.Update(msg)
			return f, cmd
		}
		return f, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		f.cancelled = true
		return f, tea.Quit
	case tea.KeyEnter:
		return f.commit()
	}

	switch f.steps[f.cur] {
	case stepName:
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		f.err = ""
		return f, cmd
	case stepMerchant:
		switch key.String() {
		case "left", "right", "tab", "shift+tab", "h", "l", " ":
			f.merchant = !f.merchant
		case "y":
			f.merchant = true
		case "n":
			f.merchant = false
		}
	case stepChain:
		f.chainIdx = move(f.chainIdx, len(f.chains), key.String())
	case stepPackageManager:
		f.pmIdx = move(f.pmIdx, len(scaffold.PackageManagers), key.String())
	}
	return f, nil
}

func move(i, n int, key string) int {
	switch key {
	case "up", "k", "shift+tab":
		return (i - 1 + n) % n
	case "down", "j", "tab":
		return (i + 1) % n
	}
	return i
}

func (f Form) commit() (tea.Model, tea.Cmd) {
	if f.steps[f.cur] == stepName && strings.TrimSpace(f.name.Value()) == "" {
		f.err = "Please enter a name"
		return f, nil
	}
	f.cur++
	if f.cur == len(f.steps) {
		f.done = true
		return f, tea.Quit
	}
	return f, nil
}

func (f Form) View() string {
	if f.done || f.cancelled {
		return ""
	}
	s := f.styles
	var b strings.Builder
	switch f.steps[f.cur] {
	case stepName:
		b.WriteString(s.Title.Render("Project directory name?") + "\n")
		b.WriteString(f.name.View() + "\n")
		if f.err != "" {
			b.WriteString(s.Error.Render(f.err) + "\n")
		}
	case stepMerchant:
		b.WriteString(s.Title.Render("Include the merchant portal module?") + "\n")
		yes, no := s.Muted.Render("Yes"), s.Muted.Render("No")
		if f.merchant {
			yes = s.Selected.Render("Yes")
		} else {
			no = s.Selected.Render("No")
		}
		b.WriteString("  " + yes + " / " + no + "\n")
	case stepChain:
		b.WriteString(s.Title.Render("Target chain?") + "\n")
		for i, c := range f.chains {
			b.WriteString(choice(s, i == f.chainIdx, c.Name) + "\n")
		}
	case stepPackageManager:
		b.WriteString(s.Title.Render("Which package manager?") + "\n")
		for i, pm := range scaffold.PackageManagers {
			b.WriteString(choice(s, i == f.pmIdx, string(pm)) + "\n")
		}
	}
	b.WriteString(s.Muted.Render("enter to confirm, esc to cancel") + "\n")
	return b.String()
}

func choice(s Styles, selected bool, label string) string {
	if selected {
		return s.Selected.Render("> " + label)
	}
	return "  " + label
}

// Done reports whether every question has been answered.
func (f Form) Done() bool { return f.done }

// Cancelled reports whether the user pressed esc or ctrl+c.
func (f Form) Cancelled() bool { return f.cancelled }

// Options merges the supplied answers with the form's selections.
func (f Form) Options() scaffold.Options {
	o := scaffold.Options{
		ProjectName:           f.answers.ProjectName,
		IncludeMerchantModule: f.merchant,
		TargetChain:           f.answers.TargetChain,
		PackageManager:        f.answers.PackageManager,
	}
	if o.ProjectName == "" {
		o.ProjectName = strings.TrimSpace(f.name.Value())
	}
	if o.TargetChain == "" && len(f.chains) > 0 {
		o.TargetChain = f.chains[f.chainIdx].Key
	}
	if o.PackageManager == "" {
		o.PackageManager = scaffold.PackageManagers[f.pmIdx]
	}
	return o
}
