package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings with built-in help text. Top navigation uses
// function keys so it stays reachable while a form input has focus.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding

	// Top navigation bar (works anywhere, form open or not)
	NavHome     key.Binding
	NavUpload   key.Binding
	NavDownload key.Binding
	NavMerge    key.Binding
	NavSplit    key.Binding

	// Menu grid
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	// Form
	NextField key.Binding
	PrevField key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "sair"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "sair"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "voltar"),
		),

		NavHome: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "início"),
		),
		NavUpload: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "enviar"),
		),
		NavDownload: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "baixar"),
		),
		NavMerge: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "juntar"),
		),
		NavSplit: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "dividir"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "descer"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "esquerda"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "direita"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "abrir"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "próximo campo"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "campo anterior"),
		),
	}
}
