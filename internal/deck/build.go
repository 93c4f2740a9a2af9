package deck

import (
	"errors"
	"fmt"
	"time"

	"github.com/papapumpkin/bulletin/internal/appearance"
	"github.com/papapumpkin/bulletin/internal/cards"
)

// Flow is a deck turned into linked pages.
type Flow struct {
	Name       string
	Root       *cards.Page
	Pages      []*cards.Page // deck order
	Appearance appearance.Config
}

// Page returns the page with id, or nil.
func (f *Flow) Page(id string) *cards.Page {
	for _, p := range f.Pages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Build validates d and turns it into a Flow. Validation problems are
// returned joined, each as a *ValidationError, and wrapped in ErrInvalid.
func Build(d *Deck) (*Flow, error) {
	if verrs := Validate(d); len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i := range verrs {
			errs[i] = &verrs[i]
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	byID := make(map[string]*cards.Page, len(d.Pages))
	flow := &Flow{Name: d.Name(), Appearance: d.Appearance}
	for _, spec := range d.Pages {
		p := newPage(spec)
		byID[spec.ID] = p
		flow.Pages = append(flow.Pages, p)
	}

	for _, spec := range d.Pages {
		p := byID[spec.ID]
		if spec.Next != "" {
			if err := cards.Link(p, byID[spec.Next]); err != nil {
				return nil, fmt.Errorf("linking %q: %w", spec.ID, err)
			}
		}
		// Verbs were checked by Validate.
		action, _ := ParseVerb(spec.actionVerb())
		alternative, _ := ParseVerb(spec.alternativeVerb())
		p.OnAction(handler(action, byID))
		p.OnAlternative(handler(alternative, byID))

		if spec.IndicatorSeconds > 0 {
			wait := time.Duration(spec.IndicatorSeconds) * time.Second
			p.OnPresented(func(shown *cards.Page) {
				shown.Schedule(wait, func(m *cards.Manager) { m.HideIndicator() })
			})
		}
	}

	flow.Root = byID[d.RootID()]
	return flow, nil
}

func newPage(spec PageSpec) *cards.Page {
	p := cards.NewPage(spec.ID, cards.StandardContent{
		Title:            spec.Title,
		Description:      spec.Description,
		ActionTitle:      spec.Action,
		AlternativeTitle: spec.Alternative,
	})
	if spec.Dismissable != nil {
		p.Flags.Dismissable = *spec.Dismissable
	}
	if spec.CloseButton != nil {
		p.Flags.RequiresCloseButton = *spec.CloseButton
	}
	p.Flags.StartsWithIndicator = spec.StartsIndicator
	return p
}

// handler maps a verb to a page handler. Refusals are reported by the
// manager's recorder, so the handler drops the returned error.
func handler(v Verb, byID map[string]*cards.Page) cards.Handler {
	switch v.Kind {
	case VerbNext:
		return func(p *cards.Page) { _ = p.Manager().DisplayNext() }
	case VerbPush:
		target := byID[v.Target]
		return func(p *cards.Page) { _ = p.Manager().Push(target) }
	case VerbPop:
		return func(p *cards.Page) { _ = p.Manager().Pop() }
	case VerbRoot:
		return func(p *cards.Page) { _ = p.Manager().PopToRoot() }
	case VerbDismiss:
		// The card's own button closes the flow even when outside
		// dismissal is disabled.
		return func(p *cards.Page) { _ = p.Manager().ForceDismiss(true) }
	default:
		return nil
	}
}
