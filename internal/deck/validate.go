package deck

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Validate checks a deck for structural correctness: required fields,
// unique IDs, known link targets, valid verbs, and next links without
// cycles. It returns every problem found.
func Validate(d *Deck) []ValidationError {
	var errs []ValidationError
	add := func(cat ValidationCategory, pageID, field string, err error) {
		errs = append(errs, ValidationError{
			Category:   cat,
			PageID:     pageID,
			SourceFile: d.SourceFile,
			Field:      field,
			Err:        err,
		})
	}

	if len(d.Pages) == 0 {
		add(ValCatMissingField, "", "page", ErrNoPages)
		return errs
	}

	if err := d.Appearance.Validate(); err != nil {
		add(ValCatAppearance, "", "appearance", err)
	}

	seen := make(map[string]bool, len(d.Pages))
	var ids []string
	for _, p := range d.Pages {
		if p.ID == "" {
			add(ValCatMissingField, "", "id", fmt.Errorf("%w: id", ErrMissingField))
			continue
		}
		if p.Title == "" {
			add(ValCatMissingField, p.ID, "title", fmt.Errorf("%w: title", ErrMissingField))
		}
		if seen[p.ID] {
			add(ValCatDuplicateID, p.ID, "id", fmt.Errorf("%w: %q", ErrDuplicateID, p.ID))
			continue
		}
		seen[p.ID] = true
		ids = append(ids, p.ID)
	}

	unknown := func(pageID, field, target string) {
		errs = append(errs, ValidationError{
			Category:   ValCatUnknownTarget,
			PageID:     pageID,
			SourceFile: d.SourceFile,
			Field:      field,
			Err:        fmt.Errorf("%w: %q", ErrUnknownPage, target),
			Suggestion: suggest(target, ids),
		})
	}

	if d.Meta.Root != "" && !seen[d.Meta.Root] {
		unknown("", "deck.root", d.Meta.Root)
	}

	for _, p := range d.Pages {
		if p.ID == "" {
			continue
		}
		if p.Next != "" && !seen[p.Next] {
			unknown(p.ID, "next", p.Next)
		}

		verbs := []struct{ field, value string }{
			{"on_action", p.actionVerb()},
			{"on_alternative", p.alternativeVerb()},
		}
		for _, v := range verbs {
			verb, err := ParseVerb(v.value)
			if err != nil {
				add(ValCatUnknownVerb, p.ID, v.field, err)
				continue
			}
			switch {
			case verb.Kind == VerbPush && !seen[verb.Target]:
				unknown(p.ID, v.field, verb.Target)
			case verb.Kind == VerbNext && p.Next == "":
				add(ValCatUnknownTarget, p.ID, v.field, fmt.Errorf("%w: %s is next but the page has no next", ErrUnknownPage, v.field))
			}
		}

		if p.IndicatorSeconds < 0 {
			add(ValCatBoundsViolation, p.ID, "indicator_seconds",
				fmt.Errorf("indicator_seconds must be >= 0, got %d", p.IndicatorSeconds))
		}
		if p.IndicatorSeconds > 0 && !p.StartsIndicator {
			add(ValCatBoundsViolation, p.ID, "indicator_seconds", ErrIndicatorWithoutStart)
		}
	}

	if cycle := nextCycle(d.Pages); len(cycle) > 0 {
		add(ValCatCycle, cycle[0], "next", fmt.Errorf("%w: %s", ErrNextCycle, strings.Join(cycle, " -> ")))
	}

	return errs
}

// nextCycle returns the ids along the first next-link loop found, ending
// with the repeated id, or nil.
func nextCycle(pages []PageSpec) []string {
	next := make(map[string]string, len(pages))
	for _, p := range pages {
		if p.ID != "" {
			next[p.ID] = p.Next
		}
	}

	done := make(map[string]bool, len(pages))
	for _, p := range pages {
		if p.ID == "" || done[p.ID] {
			continue
		}
		onPath := make(map[string]int)
		var path []string
		for id := p.ID; id != ""; id = next[id] {
			if at, ok := onPath[id]; ok {
				return append(path[at:], id)
			}
			if done[id] {
				break
			}
			onPath[id] = len(path)
			path = append(path, id)
		}
		for _, id := range path {
			done[id] = true
		}
	}
	return nil
}

// suggest returns the candidate closest to name, if it is close enough to be
// a plausible typo.
func suggest(name string, candidates []string) string {
	maxDistance := 1
	if len(name) >= 4 {
		maxDistance = 2
	}
	if len(name) > 8 {
		maxDistance = 3
	}

	best, bestDistance := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if d <= maxDistance && (bestDistance == -1 || d < bestDistance) {
			best, bestDistance = c, d
		}
	}
	return best
}
