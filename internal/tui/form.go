package tui

import (
	"context"
	"errors"
	"net/url"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papeleta/papel/internal/api"
	"github.com/papeleta/papel/internal/nav"
)

// FieldSpec declares one required form input. Missing is the validation
// message shown when the field is left empty on submit.
type FieldSpec struct {
	Label       string
	Placeholder string
	Missing     string
}

// FormSpec parametrizes the generic form executor: the four operations differ
// only in their fields, their submit action, and their fallback error.
type FormSpec struct {
	Key         nav.ViewKey
	Title       string
	SubmitLabel string
	FallbackErr string
	ResultLabel string
	Fields      []FieldSpec

	// Submit performs the single network call and returns the user-visible
	// result string (a UUID, or a saved file path for downloads).
	Submit func(ctx context.Context, values []string) (string, error)
}

// formDoneMsg is the completion of one form submission. key and seq let the app
// drop responses that arrive after the form was closed or resubmitted.
type formDoneMsg struct {
	key    nav.ViewKey
	seq    int
	result string
	err    error
}

// Form is one live form instance. Each form owns its inputs, busy flag, and
// result/error display; forms never talk to each other.
type Form struct {
	spec   FormSpec
	inputs []textinput.Model
	focus  int
	busy   bool
	seq    int // submission counter; stale completions are discarded
	result string
	errMsg string
	spin   spinner.Model
	styles Styles
}

// NewForm builds a form from its spec.
func NewForm(spec FormSpec, styles Styles) *Form {
	inputs := make([]textinput.Model, len(spec.Fields))
	for i, field := range spec.Fields {
		in := textinput.New()
		in.Placeholder = field.Placeholder
		in.CharLimit = 512
		in.Width = 48
		inputs[i] = in
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Busy

	f := &Form{
		spec:   spec,
		inputs: inputs,
		spin:   spin,
		styles: styles,
	}
	f.setFocus(0)
	return f
}

// Reset returns the form to its pristine state. Called when the form stops
// being displayed; bumping seq invalidates any response still in flight.
func (f *Form) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.busy = false
	f.seq++
	f.result = ""
	f.errMsg = ""
	f.setFocus(0)
}

func (f *Form) setFocus(idx int) {
	if len(f.inputs) == 0 {
		return
	}
	if idx < 0 {
		idx = len(f.inputs) - 1
	}
	if idx >= len(f.inputs) {
		idx = 0
	}
	f.focus = idx
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// Update handles key messages while the form is open.
func (f *Form) Update(msg tea.Msg, keys KeyMap) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.NextField):
			f.setFocus(f.focus + 1)
			return nil
		case key.Matches(msg, keys.PrevField):
			f.setFocus(f.focus - 1)
			return nil
		case key.Matches(msg, keys.Enter):
			return f.submit()
		}

		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return cmd

	case spinner.TickMsg:
		if !f.busy {
			return nil
		}
		var cmd tea.Cmd
		f.spin, cmd = f.spin.Update(msg)
		return cmd
	}
	return nil
}

// submit validates the required inputs and, when they are all present, issues
// exactly one request. While a request is in flight further submissions are
// ignored.
func (f *Form) submit() tea.Cmd {
	if f.busy {
		return nil
	}

	values := make([]string, len(f.inputs))
	for i := range f.inputs {
		values[i] = f.inputs[i].Value()
	}
	for i, v := range values {
		if v == "" {
			f.result = ""
			f.errMsg = f.spec.Fields[i].Missing
			return nil
		}
	}

	f.busy = true
	f.seq++
	f.result = ""
	f.errMsg = ""

	seq := f.seq
	spec := f.spec
	return tea.Batch(
		f.spin.Tick,
		func() tea.Msg {
			// No cancellation: the request runs to completion or failure
			// even if the user navigates away meanwhile.
			result, err := spec.Submit(context.Background(), values)
			return formDoneMsg{key: spec.Key, seq: seq, result: result, err: err}
		},
	)
}

// finish applies a completion. Stale sequence numbers are dropped so a
// response from before a Reset cannot resurrect old state.
func (f *Form) finish(msg formDoneMsg) {
	if msg.seq != f.seq {
		return
	}
	f.busy = false
	if msg.err != nil {
		f.result = ""
		f.errMsg = displayError(msg.err, f.spec.FallbackErr)
		return
	}
	f.errMsg = ""
	f.result = msg.result
}

// displayError picks the user-visible message for a failed submission: the
// service's detail when it sent one, the operation fallback for detail-less
// failures and transport errors, and the error text itself for local
// validation errors raised before any request went out.
func displayError(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return fallback
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fallback
	}
	return err.Error()
}
