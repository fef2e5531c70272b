package ui

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makeabet/internal/scaffold"
)

func boolPtr(b bool) *bool { return &b }

func press(t *testing.T, f Form, keys ...tea.KeyMsg) Form {
	t.Helper()
	for _, k := range keys {
		m, _ := f.Update(k)
		f = m.(Form)
	}
	return f
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	right = tea.KeyMsg{Type: tea.KeyRight}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestForm_AllDefaults(t *testing.T) {
	f := NewForm(Answers{}, PlainStyles())
	assert.Len(t, f.steps, 4)

	f = press(t, f, enter, enter, enter, enter)
	require.True(t, f.Done())
	assert.Equal(t, scaffold.Options{
		ProjectName:           "makeabet-app",
		IncludeMerchantModule: true,
		TargetChain:           "sepolia",
		PackageManager:        scaffold.PNPM,
	}, f.Options())
}

func TestForm_NameInputReceivesBlink(t *testing.T) {
	f := NewForm(Answers{}, PlainStyles())
	blink := f.Init()()

	_, cmd := f.Update(blink)
	assert.NotNil(t, cmd, "text input should schedule the next blink")

	f = NewForm(Answers{ProjectName: "demo"}, PlainStyles())
	_, cmd = f.Update(blink)
	assert.Nil(t, cmd)
}

func TestForm_Selections(t *testing.T) {
	f := NewForm(Answers{}, PlainStyles())

	f.name.SetValue("")
	f = press(t, f, runes("bets"), enter)
	f = press(t, f, right, enter)
	f = press(t, f, down, down, enter)
	f = press(t, f, down, enter)

	require.True(t, f.Done())
	assert.Equal(t, scaffold.Options{
		ProjectName:           "bets",
		IncludeMerchantModule: false,
		TargetChain:           "base-sepolia",
		PackageManager:        scaffold.NPM,
	}, f.Options())
}

func TestForm_SelectWraps(t *testing.T) {
	f := NewForm(Answers{ProjectName: "x", Merchant: boolPtr(true), TargetChain: "sepolia"}, PlainStyles())
	require.Len(t, f.steps, 1)

	f = press(t, f, tea.KeyMsg{Type: tea.KeyUp}, enter)
	assert.Equal(t, scaffold.Yarn, f.Options().PackageManager)
}

func TestForm_EmptyNameRejected(t *testing.T) {
	f := NewForm(Answers{}, PlainStyles())
	f.name.SetValue("   ")

	f = press(t, f, enter)
	assert.False(t, f.Done())
	assert.Equal(t, 0, f.cur)
	assert.Contains(t, f.View(), "Please enter a name")
}

func TestForm_Cancel(t *testing.T) {
	f := NewForm(Answers{}, PlainStyles())
	m, cmd := f.Update(esc)
	f = m.(Form)

	assert.True(t, f.Cancelled())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestForm_SkipsSuppliedAnswers(t *testing.T) {
	f := NewForm(Answers{ProjectName: "given", PackageManager: scaffold.Yarn, Merchant: boolPtr(false)}, PlainStyles())
	assert.Equal(t, []step{stepChain}, f.steps)
	assert.Contains(t, f.View(), "Target chain?")

	f = press(t, f, down, enter)
	o := f.Options()
	assert.Equal(t, "given", o.ProjectName)
	assert.False(t, o.IncludeMerchantModule)
	assert.Equal(t, "arbitrum-sepolia", o.TargetChain)
	assert.Equal(t, scaffold.Yarn, o.PackageManager)
}

func TestDefaults_Prompt(t *testing.T) {
	o, err := Defaults{}.Prompt(context.Background(), Answers{TargetChain: "base-sepolia", Merchant: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, scaffold.Options{
		ProjectName:           scaffold.DefaultProjectName,
		IncludeMerchantModule: false,
		TargetChain:           "base-sepolia",
		PackageManager:        scaffold.PNPM,
	}, o)
}

func TestInteractive_CompleteAnswersSkipProgram(t *testing.T) {
	a := Answers{ProjectName: "p", Merchant: boolPtr(true), TargetChain: "sepolia", PackageManager: scaffold.NPM}
	o, err := Interactive{}.Prompt(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "p", o.ProjectName)
	assert.Equal(t, scaffold.NPM, o.PackageManager)
}

func TestPlainSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, PlainStyles(), false)
	s.Start("Preparing MakeABet scaffold")
	s.Fail("Failed to create scaffold")

	assert.Equal(t, "- Preparing MakeABet scaffold\n✖ Failed to create scaffold\n", buf.String())
}

func TestSpinnerModel_Finish(t *testing.T) {
	m := spinnerModel{label: "working", styles: PlainStyles()}
	next, cmd := m.Update(finishMsg{ok: true, text: "Scaffold ready"})

	assert.Equal(t, "✔ Scaffold ready\n", next.View())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSuccessMessage(t *testing.T) {
	o := scaffold.Options{ProjectName: "bets", PackageManager: scaffold.Yarn}
	got := SuccessMessage(PlainStyles(), o)

	assert.Contains(t, got, "Success!")
	assert.Contains(t, got, "Scaffold created at bets.")
	assert.Contains(t, got, "  cd bets\n  yarn install\n  yarn run dev\n")
	assert.Contains(t, got, "Merchant portal module skipped.")
	assert.Contains(t, got, "deploy to Railway!")
}
