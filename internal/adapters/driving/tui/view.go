package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

// newField builds one labelled text input.
func newField(label string) formField {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 32
	return formField{label: label, input: ti}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Futon Quiz"))
	b.WriteString("\n\n")

	switch a.ports.Session.Step() {
	case domain.StepStart:
		b.WriteString(a.styles.Normal.Render(
			"Answer a few questions and we will match you with the\n" +
				"futons that fit how you sleep."))
		b.WriteString("\n\n")
		b.WriteString(a.styles.Help.Render("enter start · q quit"))

	case domain.StepPeopleCount:
		b.WriteString(a.styles.Subtitle.Render("Who sleeps on the futon?"))
		b.WriteString("\n\n")
		b.WriteString(a.viewChoices(peopleChoices))
		b.WriteString(a.viewFooter("↑/↓ choose · enter next · esc back"))

	case domain.StepWeight:
		b.WriteString(a.styles.Subtitle.Render("Body weight"))
		b.WriteString("\n\n")
		b.WriteString(a.viewForm(false))
		b.WriteString(a.viewFooter("tab next field · enter continue · esc back"))

	case domain.StepSleepPosition:
		b.WriteString(a.styles.Subtitle.Render(
			fmt.Sprintf("%s: how do you usually sleep?", a.currentPersonLabel())))
		b.WriteString("\n\n")
		b.WriteString(a.viewChoices(positionLabels))
		b.WriteString(a.viewFooter("↑/↓ choose · enter next · esc back"))

	case domain.StepPreference:
		b.WriteString(a.styles.Subtitle.Render(
			fmt.Sprintf("%s: how firm do you like it?", a.currentPersonLabel())))
		b.WriteString("\n\n")
		b.WriteString(a.viewChoices(firmnessLabels))
		b.WriteString(a.viewFooter("↑/↓ choose · enter next · esc back"))

	case domain.StepContactInfo:
		b.WriteString(a.styles.Subtitle.Render("Where can we reach you?"))
		b.WriteString("\n\n")
		b.WriteString(a.viewForm(true))
		b.WriteString(a.viewFooter("tab next field · space toggle consent · enter finish · esc back"))

	case domain.StepRecommendation:
		b.WriteString(a.viewResults())
	}

	return a.styles.Border.Render(b.String())
}

// viewChoices renders a cursor list.
func (a *App) viewChoices(labels []string) string {
	var b strings.Builder
	for i, label := range labels {
		if i == a.cursor {
			b.WriteString(a.styles.Selected.Render("> " + label))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// viewForm renders the text inputs, plus the consent toggle on the
// contact step.
func (a *App) viewForm(withConsent bool) string {
	var b strings.Builder
	for i, f := range a.fields {
		label := f.label
		if i == a.focus {
			b.WriteString(a.styles.Subtitle.Render(label))
		} else {
			b.WriteString(a.styles.Muted.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}

	if withConsent {
		box := "[ ]"
		if a.consent {
			box = "[x]"
		}
		line := box + " Yes, you may contact me about my recommendations"
		if a.focus == len(a.fields) {
			b.WriteString(a.styles.Selected.Render(line))
		} else {
			b.WriteString(a.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// viewResults renders the ranked recommendations.
func (a *App) viewResults() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Your matches"))
	b.WriteString("\n\n")

	switch {
	case a.loading:
		b.WriteString(a.styles.Muted.Render("Scoring the catalog..."))
		b.WriteString("\n")
	case a.errMsg != "":
		b.WriteString(a.styles.Error.Render(a.errMsg))
		b.WriteString("\n")
	case len(a.results) == 0:
		b.WriteString(a.styles.Normal.Render("Nothing in the catalog fits these answers."))
		b.WriteString("\n")
	default:
		for i, r := range a.results {
			marker := "  "
			style := a.styles.Normal
			if i == a.resultCursor {
				marker = "> "
				style = a.styles.Selected
			}
			b.WriteString(style.Render(fmt.Sprintf("%s%d. %s", marker, i+1, r.Title)))
			b.WriteString("  ")
			b.WriteString(a.styles.Score.Render(fmt.Sprintf("score %d", r.Score)))
			b.WriteString("\n")
			b.WriteString(a.styles.Muted.Render(
				fmt.Sprintf("     %.2f %s", float64(r.Price)/100, r.Vendor)))
			b.WriteString("\n")
		}
	}

	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Success.Render(a.status))
		b.WriteString("\n")
	}

	help := "↑/↓ choose · r restart · q quit"
	if a.ports.Cart != nil {
		help = "↑/↓ choose · enter add to cart · r restart · q quit"
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(help))
	return b.String()
}

// viewFooter renders the validation line and key hints.
func (a *App) viewFooter(help string) string {
	var b strings.Builder
	if a.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(a.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(help))
	return b.String()
}

// currentPersonLabel names the person being asked on per-person steps.
func (a *App) currentPersonLabel() string {
	return personLabels[orderedPersons[a.person]]
}
