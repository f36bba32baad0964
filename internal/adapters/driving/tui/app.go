package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nordfuton/quizmatch-cli/internal/adapters/driving/tui/styles"
	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
	"github.com/nordfuton/quizmatch-cli/internal/core/services"
)

// recommendationsMsg carries the scoring result into the update loop.
type recommendationsMsg struct {
	results []domain.ScoredProduct
	err     error
}

// leadResultMsg reports the lead submission outcome.
type leadResultMsg struct {
	err error
}

// cartResultMsg reports the add-to-cart outcome.
type cartResultMsg struct {
	variantID string
	err       error
}

// formField pairs a text input with its prompt label.
type formField struct {
	label string
	input textinput.Model
}

// App is the quiz wizard following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// cursor is the highlighted choice on choice steps.
	cursor int

	// person is the person being asked on per-person steps.
	person int

	// fields are the text inputs on form steps.
	fields []formField

	// focus is the focused field index. On the contact step an index
	// equal to len(fields) means the consent toggle.
	focus int

	// consent mirrors the marketing consent toggle.
	consent bool

	// contact accumulates contact details between renders.
	contact domain.ContactInfo

	// errMsg is the last validation or scoring error to display.
	errMsg string

	// status is a transient confirmation line on the results screen.
	status string

	// loading is true while the catalog is being scored.
	loading bool

	// results holds the ranked recommendations.
	results []domain.ScoredProduct

	// resultCursor is the highlighted recommendation.
	resultCursor int

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// choices per step, in display order.
var (
	peopleChoices     = []string{"Just me", "Two of us"}
	positionChoices   = []domain.SleepPosition{domain.PositionSide, domain.PositionBack, domain.PositionStomach}
	firmnessChoices   = []domain.Firmness{domain.FirmnessSoft, domain.FirmnessMedium, domain.FirmnessHard}
	positionLabels    = []string{"On my side", "On my back", "On my stomach"}
	firmnessLabels    = []string{"Soft", "Medium", "Firm"}
	personLabels      = map[domain.Person]string{domain.Person1: "Person 1", domain.Person2: "Person 2"}
	orderedPersons    = []domain.Person{domain.Person1, domain.Person2}
	contactFieldNames = []string{"Name", "Email", "Phone", "Comments (optional)"}
)

// NewApp creates a new quiz wizard with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("quizmatch - Futon Quiz"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case recommendationsMsg:
		a.loading = false
		a.resultCursor = 0
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.results = msg.results
		return a, a.submitLeadCmd()

	case leadResultMsg:
		if msg.err != nil {
			a.status = "Could not send your answers: " + msg.err.Error()
		} else if a.consent {
			a.status = "Your answers are on their way, we will be in touch."
		}
		return a, nil

	case cartResultMsg:
		if msg.err != nil {
			a.status = "Add to cart failed: " + msg.err.Error()
		} else {
			a.status = "Added variant " + msg.variantID + " to the cart."
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateKey(msg)
	}

	return a, nil
}

// updateKey dispatches a key press to the active step.
func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := a.ports.Session

	switch session.Step() {
	case domain.StepStart:
		switch msg.String() {
		case "q", "esc":
			return a, tea.Quit
		case "enter":
			return a, a.advance()
		}
		return a, nil

	case domain.StepPeopleCount:
		return a.updateChoice(msg, len(peopleChoices), func(i int) error {
			return session.SetPeopleCount(i + 1)
		})

	case domain.StepWeight:
		return a.updateWeightForm(msg)

	case domain.StepSleepPosition:
		return a.updatePersonChoice(msg, len(positionChoices), func(p domain.Person, i int) error {
			return session.SetSleepPosition(p, positionChoices[i])
		})

	case domain.StepPreference:
		return a.updatePersonChoice(msg, len(firmnessChoices), func(p domain.Person, i int) error {
			return session.SetPreference(p, firmnessChoices[i])
		})

	case domain.StepContactInfo:
		return a.updateContactForm(msg)

	case domain.StepRecommendation:
		return a.updateResults(msg)
	}

	return a, nil
}

// updateChoice handles a single choice list.
func (a *App) updateChoice(msg tea.KeyMsg, n int, apply func(int) error) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < n-1 {
			a.cursor++
		}
	case "esc":
		a.retreat()
	case "enter":
		if err := apply(a.cursor); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		return a, a.advance()
	}
	return a, nil
}

// updatePersonChoice handles a choice asked once per person. The step
// only advances after the last person has answered.
func (a *App) updatePersonChoice(msg tea.KeyMsg, n int, apply func(domain.Person, int) error) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < n-1 {
			a.cursor++
		}
	case "esc":
		if a.person > 0 {
			a.person--
			a.cursor = 0
			return a, nil
		}
		a.retreat()
	case "enter":
		if err := apply(orderedPersons[a.person], a.cursor); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.errMsg = ""
		if a.person+1 < a.personCount() {
			a.person++
			a.cursor = 0
			return a, nil
		}
		return a, a.advance()
	}
	return a, nil
}

// updateWeightForm handles the weight and height inputs.
func (a *App) updateWeightForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.retreat()
		return a, nil
	case "tab", "down":
		return a, a.focusField((a.focus + 1) % len(a.fields))
	case "shift+tab", "up":
		return a, a.focusField((a.focus + len(a.fields) - 1) % len(a.fields))
	case "enter":
		if a.focus < len(a.fields)-1 {
			return a, a.focusField(a.focus + 1)
		}
		if err := a.applyWeightForm(); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		return a, a.advance()
	}

	var cmd tea.Cmd
	a.fields[a.focus].input, cmd = a.fields[a.focus].input.Update(msg)
	return a, cmd
}

// applyWeightForm parses the inputs and records them on the session.
// Weights are required, heights may be left blank.
func (a *App) applyWeightForm() error {
	for i, p := range orderedPersons[:a.personCount()] {
		weight := a.fields[i*2].input.Value()
		kg, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil {
			return fmt.Errorf("%s: weight must be a number", personLabels[p])
		}
		if err := a.ports.Session.SetWeight(p, kg); err != nil {
			return fmt.Errorf("%s: %w", personLabels[p], err)
		}

		height := strings.TrimSpace(a.fields[i*2+1].input.Value())
		if height == "" {
			continue
		}
		cm, err := strconv.ParseFloat(height, 64)
		if err != nil {
			return fmt.Errorf("%s: height must be a number", personLabels[p])
		}
		if err := a.ports.Session.SetHeight(p, cm); err != nil {
			return fmt.Errorf("%s: %w", personLabels[p], err)
		}
	}
	return nil
}

// updateContactForm handles the contact inputs and the consent toggle.
func (a *App) updateContactForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onConsent := a.focus == len(a.fields)

	switch msg.String() {
	case "esc":
		a.retreat()
		return a, nil
	case "tab", "down":
		return a, a.focusField((a.focus + 1) % (len(a.fields) + 1))
	case "shift+tab", "up":
		return a, a.focusField((a.focus + len(a.fields)) % (len(a.fields) + 1))
	case "enter":
		if !onConsent {
			return a, a.focusField(a.focus + 1)
		}
		a.applyContactForm()
		return a, a.advance()
	}

	if onConsent {
		switch msg.String() {
		case " ":
			a.consent = !a.consent
		case "y":
			a.consent = true
		case "n":
			a.consent = false
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.fields[a.focus].input, cmd = a.fields[a.focus].input.Update(msg)
	return a, cmd
}

// applyContactForm copies the inputs onto the session.
func (a *App) applyContactForm() {
	a.contact = domain.ContactInfo{
		Name:             strings.TrimSpace(a.fields[0].input.Value()),
		Email:            strings.TrimSpace(a.fields[1].input.Value()),
		Phone:            strings.TrimSpace(a.fields[2].input.Value()),
		Comments:         strings.TrimSpace(a.fields[3].input.Value()),
		MarketingConsent: a.consent,
	}
	a.ports.Session.SetContact(a.contact)
}

// updateResults handles navigation on the recommendation screen.
func (a *App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	case "up", "k":
		if a.resultCursor > 0 {
			a.resultCursor--
		}
	case "down", "j":
		if a.resultCursor < len(a.results)-1 {
			a.resultCursor++
		}
	case "r":
		a.ports.Session.Restart()
		a.resetStep()
		a.results = nil
		a.status = ""
		a.errMsg = ""
	case "enter":
		return a, a.addToCartCmd()
	}
	return a, nil
}

// advance moves the session forward and prepares the next step's state.
func (a *App) advance() tea.Cmd {
	if err := a.ports.Session.Advance(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			a.errMsg = "Missing: " + strings.Join(verr.Missing, ", ")
		} else {
			a.errMsg = err.Error()
		}
		return nil
	}
	a.resetStep()

	if a.ports.Session.Step() == domain.StepRecommendation {
		a.loading = true
		return a.recommendCmd()
	}
	return textinput.Blink
}

// retreat moves the session back one step.
func (a *App) retreat() {
	a.ports.Session.Retreat()
	a.resetStep()
}

// resetStep clears per-step state and builds the step's inputs.
func (a *App) resetStep() {
	a.cursor = 0
	a.person = 0
	a.focus = 0
	a.errMsg = ""
	a.fields = nil

	switch a.ports.Session.Step() {
	case domain.StepWeight:
		for _, p := range orderedPersons[:a.personCount()] {
			a.fields = append(a.fields,
				newField(personLabels[p]+" weight (kg)"),
				newField(personLabels[p]+" height (cm, optional)"),
			)
		}
		a.fields[0].input.Focus()
	case domain.StepContactInfo:
		for _, name := range contactFieldNames {
			a.fields = append(a.fields, newField(name))
		}
		a.fields[0].input.SetValue(a.contact.Name)
		a.fields[1].input.SetValue(a.contact.Email)
		a.fields[2].input.SetValue(a.contact.Phone)
		a.fields[3].input.SetValue(a.contact.Comments)
		a.fields[0].input.Focus()
	}
}

// focusField moves input focus to index i.
func (a *App) focusField(i int) tea.Cmd {
	if i < 0 || i > len(a.fields) {
		return nil
	}
	for j := range a.fields {
		a.fields[j].input.Blur()
	}
	a.focus = i
	if i < len(a.fields) {
		return a.fields[i].input.Focus()
	}
	return nil
}

// personCount returns how many people the flow collects answers for.
func (a *App) personCount() int {
	if a.ports.Session.Snapshot().PeopleCount == 2 {
		return 2
	}
	return 1
}

// recommendCmd scores the catalog against the finished answers.
func (a *App) recommendCmd() tea.Cmd {
	ctx := a.ctx
	answers := a.ports.Session.Snapshot()
	return func() tea.Msg {
		results, err := a.ports.Recommender.Recommend(ctx, answers)
		return recommendationsMsg{results: results, err: err}
	}
}

// submitLeadCmd sends the lead once results are in. With no sink, or
// without consent, nothing leaves the terminal.
func (a *App) submitLeadCmd() tea.Cmd {
	if a.ports.Leads == nil || !a.consent {
		return nil
	}
	ctx := a.ctx
	lead := services.BuildLead(a.ports.Session.Snapshot(), a.results)
	return func() tea.Msg {
		return leadResultMsg{err: a.ports.Leads.Submit(ctx, lead)}
	}
}

// addToCartCmd puts the highlighted recommendation's default variant in
// the cart.
func (a *App) addToCartCmd() tea.Cmd {
	if a.ports.Cart == nil || a.resultCursor >= len(a.results) {
		return nil
	}
	variant, ok := a.results[a.resultCursor].DefaultVariant()
	if !ok {
		a.status = "No purchasable variant for this product."
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		return cartResultMsg{variantID: variant.ID, err: a.ports.Cart.Add(ctx, variant.ID)}
	}
}

// Ready reports whether the first window size was received.
func (a *App) Ready() bool {
	return a.ready
}

// Results returns the current recommendations. Used by tests.
func (a *App) Results() []domain.ScoredProduct {
	return a.results
}

// Err returns the last error message shown to the shopper.
func (a *App) Err() string {
	return a.errMsg
}
