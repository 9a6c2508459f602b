package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papeleta/papel/internal/nav"
)

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Carregando..."
	}
	if a.width < 60 || a.height < 16 {
		return "Terminal muito pequeno. Redimensione para pelo menos 60x16."
	}

	sections := []string{a.renderNavBar()}

	if a.showHero {
		sections = append(sections, a.renderHero())
	}

	if form, ok := a.openForm(); ok {
		sections = append(sections, a.renderForm(form))
	} else {
		sections = append(sections, a.renderMenu())
	}

	sections = append(sections, a.renderStatusLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderNavBar renders the top navigation menu. The active item follows the
// open form, or Início when the menu is shown.
func (a *App) renderNavBar() string {
	type item struct {
		key   nav.ViewKey
		label string
		hint  string
	}
	items := []item{
		{nav.KeyHome, "Início", "F1"},
		{nav.KeyUpload, "Enviar", "F2"},
		{nav.KeyDownload, "Baixar", "F3"},
		{nav.KeyMerge, "Juntar", "F4"},
		{nav.KeySplit, "Dividir", "F5"},
	}

	active := nav.KeyHome
	if d, open := a.host.Open(); open {
		active = d.Key
	}

	var parts []string
	for _, it := range items {
		label := fmt.Sprintf("%s %s", it.hint, it.label)
		if it.key == active {
			parts = append(parts, a.styles.BarActive.Render(label))
		} else {
			parts = append(parts, a.styles.BarItem.Render(label))
		}
	}
	bar := strings.Join(parts, "")
	return a.styles.Bar.Width(a.width).Render(bar)
}

func (a *App) renderHero() string {
	title := a.styles.Hero.Render("papel — operações com PDF")
	subtitle := a.styles.Subtitle.Render("Envie, baixe, junte e divida PDFs pelo terminal")
	block := lipgloss.JoinVertical(lipgloss.Center, title, subtitle)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, block) + "\n"
}

// renderMenu renders the grid of operation cards.
func (a *App) renderMenu() string {
	cards := a.registry.Descriptors()
	cardWidth := (a.width - 8) / menuColumns
	if cardWidth > 44 {
		cardWidth = 44
	}

	var rows []string
	for start := 0; start < len(cards); start += menuColumns {
		var row []string
		for i := start; i < start+menuColumns && i < len(cards); i++ {
			d := cards[i]
			body := lipgloss.JoinVertical(lipgloss.Left,
				a.styles.CardTitle.Render(d.Label),
				a.styles.CardDesc.Width(cardWidth-4).Render(d.Description),
			)
			style := a.styles.Card
			if i == a.menuCursor {
				style = a.styles.CardActive
			}
			row = append(row, style.Width(cardWidth).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, grid)
}

// renderForm renders the open form: title, inputs, busy/result/error line.
func (a *App) renderForm(f *Form) string {
	var lines []string
	lines = append(lines, a.styles.CardTitle.Render(f.spec.Title), "")

	for i, field := range f.spec.Fields {
		lines = append(lines,
			a.styles.FieldLabel.Render(field.Label),
			f.inputs[i].View(),
			"",
		)
	}

	switch {
	case f.busy:
		lines = append(lines, a.styles.Busy.Render(f.spin.View()+"Enviando..."))
	case f.errMsg != "":
		lines = append(lines, a.styles.Error.Render(f.errMsg))
	case f.result != "":
		lines = append(lines, a.styles.Result.Render(fmt.Sprintf("%s: %s", f.spec.ResultLabel, f.result)))
	default:
		lines = append(lines, a.styles.Subtitle.Render(fmt.Sprintf("enter para %s", f.spec.SubmitLabel)))
	}

	box := a.styles.FormBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box)
}

func (a *App) renderStatusLine() string {
	var help string
	if _, open := a.host.Open(); open {
		help = "tab campos • enter enviar • esc voltar • F1-F5 navegar • ctrl+c sair"
	} else {
		help = "↑↓←→ navegar • enter abrir • 1-4 atalhos • F1-F5 menu • q sair"
	}
	return a.styles.Status.Width(a.width).Render(help)
}
