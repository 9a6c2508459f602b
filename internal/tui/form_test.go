package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papeleta/papel/internal/api"
	"github.com/papeleta/papel/internal/nav"
)

// countingSpec builds a two-field form whose submit action only counts calls.
func countingSpec(calls *atomic.Int32, result string, err error) FormSpec {
	return FormSpec{
		Key:         nav.KeyMerge,
		Title:       "Juntar PDFs",
		SubmitLabel: "juntar",
		FallbackErr: "Falha ao juntar os PDFs",
		ResultLabel: "UUID",
		Fields: []FieldSpec{
			{Label: "Primeiro PDF", Missing: "Selecione o primeiro PDF"},
			{Label: "Segundo PDF", Missing: "Selecione o segundo PDF"},
		},
		Submit: func(ctx context.Context, values []string) (string, error) {
			calls.Add(1)
			return result, err
		},
	}
}

// drainCmd runs a command tree to completion and returns the produced messages.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drainCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// doneFrom extracts the formDoneMsg from a drained command.
func doneFrom(t *testing.T, msgs []tea.Msg) formDoneMsg {
	t.Helper()
	for _, m := range msgs {
		if done, ok := m.(formDoneMsg); ok {
			return done
		}
	}
	t.Fatal("no formDoneMsg produced")
	return formDoneMsg{}
}

func TestForm_MissingFieldIsLocalValidation(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := NewForm(countingSpec(&calls, "id", nil), NewStyles(DefaultTheme()))

	if cmd := f.submit(); cmd != nil {
		t.Fatal("submit with empty fields returned a command, want none")
	}
	if got := f.errMsg; got != "Selecione o primeiro PDF" {
		t.Fatalf("errMsg = %q, want first field's message", got)
	}
	if calls.Load() != 0 {
		t.Fatalf("submit action ran %d times, want 0", calls.Load())
	}

	// Second field missing once the first is filled.
	f.inputs[0].SetValue("a.pdf")
	if cmd := f.submit(); cmd != nil {
		t.Fatal("submit returned a command, want none")
	}
	if got := f.errMsg; got != "Selecione o segundo PDF" {
		t.Fatalf("errMsg = %q, want second field's message", got)
	}
}

func TestForm_SubmitHappyPath(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := NewForm(countingSpec(&calls, "uuid-123", nil), NewStyles(DefaultTheme()))
	f.inputs[0].SetValue("a.pdf")
	f.inputs[1].SetValue("b.pdf")

	cmd := f.submit()
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	if !f.busy {
		t.Fatal("form not busy while request in flight")
	}

	f.finish(doneFrom(t, drainCmd(cmd)))

	if f.busy {
		t.Fatal("form still busy after completion")
	}
	if f.result != "uuid-123" {
		t.Fatalf("result = %q, want uuid-123", f.result)
	}
	if f.errMsg != "" {
		t.Fatalf("errMsg = %q, want empty alongside a result", f.errMsg)
	}
	if calls.Load() != 1 {
		t.Fatalf("submit action ran %d times, want 1", calls.Load())
	}
}

func TestForm_BusyBlocksResubmission(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := NewForm(countingSpec(&calls, "id", nil), NewStyles(DefaultTheme()))
	f.inputs[0].SetValue("a.pdf")
	f.inputs[1].SetValue("b.pdf")

	first := f.submit()
	if first == nil {
		t.Fatal("first submit returned no command")
	}
	if cmd := f.submit(); cmd != nil {
		t.Fatal("second submit while busy returned a command, want none")
	}
}

func TestForm_NewSubmissionClearsPreviousOutcome(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := NewForm(countingSpec(&calls, "id", nil), NewStyles(DefaultTheme()))
	f.inputs[0].SetValue("a.pdf")
	f.inputs[1].SetValue("b.pdf")
	f.result = "resultado-antigo"
	f.errMsg = "erro antigo"

	f.submit()

	if f.result != "" || f.errMsg != "" {
		t.Fatalf("result/errMsg = %q/%q, want both cleared on submit", f.result, f.errMsg)
	}
}

func TestForm_StaleCompletionIsDiscarded(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := NewForm(countingSpec(&calls, "id", nil), NewStyles(DefaultTheme()))
	f.inputs[0].SetValue("a.pdf")
	f.inputs[1].SetValue("b.pdf")

	cmd := f.submit()
	done := doneFrom(t, drainCmd(cmd))

	// The form is closed (reset) before the response lands.
	f.Reset()
	f.finish(done)

	if f.result != "" || f.errMsg != "" || f.busy {
		t.Fatalf("stale completion mutated form: result=%q errMsg=%q busy=%v", f.result, f.errMsg, f.busy)
	}
}

func TestDisplayError_Taxonomy(t *testing.T) {
	t.Parallel()

	const fallback = "Falha ao enviar o PDF"

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "service detail wins",
			err:  &api.Error{Status: 400, Detail: "PDF possui menos páginas que o intervalo"},
			want: "PDF possui menos páginas que o intervalo",
		},
		{
			name: "detail-less service error falls back",
			err:  &api.Error{Status: 500},
			want: fallback,
		},
		{
			name: "transport error falls back",
			err:  &url.Error{Op: "Post", URL: "http://x", Err: errors.New("connection refused")},
			want: fallback,
		},
		{
			name: "local validation text is shown as-is",
			err:  fmt.Errorf("a.txt: apenas arquivos .pdf são aceitos"),
			want: "a.txt: apenas arquivos .pdf são aceitos",
		},
	}
	for _, tc := range cases {
		if got := displayError(tc.err, fallback); got != tc.want {
			t.Fatalf("%s: displayError = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestForm_ErrorCompletionShowsMessage(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	spec := countingSpec(&calls, "", &api.Error{Status: 404, Detail: "Arquivo não encontrado"})
	f := NewForm(spec, NewStyles(DefaultTheme()))
	f.inputs[0].SetValue("a.pdf")
	f.inputs[1].SetValue("b.pdf")

	f.finish(doneFrom(t, drainCmd(f.submit())))

	if f.errMsg != "Arquivo não encontrado" {
		t.Fatalf("errMsg = %q, want service detail", f.errMsg)
	}
	if f.result != "" {
		t.Fatalf("result = %q, want empty alongside an error", f.result)
	}
}
