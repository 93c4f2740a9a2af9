package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const onboarding = `
[deck]
name = "onboarding"

[appearance]
tint_color = "#FF00FF"

[[page]]
id = "welcome"
title = "Welcome"
description = "Glad you're here."
action = "Continue"
alternative = "Skip tour"
next = "notifications"
dismissable = false

[[page]]
id = "notifications"
title = "Stay in the loop"
action = "Enable"
alternative = "Details"
on_alternative = "push:details"
next = "done"

[[page]]
id = "details"
title = "Why notifications?"
action = "Back"
on_action = "pop"

[[page]]
id = "done"
title = "All set"
action = "Finish"
starts_with_indicator = true
indicator_seconds = 2
`

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("parses every table", func(t *testing.T) {
		t.Parallel()
		d, err := Load(writeDeck(t, onboarding))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if d.Name() != "onboarding" || len(d.Pages) != 4 {
			t.Errorf("name=%q pages=%d, want onboarding and 4", d.Name(), len(d.Pages))
		}
		if d.Appearance.TintColor != "#FF00FF" {
			t.Errorf("TintColor = %q, want #FF00FF", d.Appearance.TintColor)
		}
		if d.RootID() != "welcome" {
			t.Errorf("RootID() = %q, want welcome", d.RootID())
		}
		if d.Pages[0].Dismissable == nil || *d.Pages[0].Dismissable {
			t.Error("welcome should be explicitly non-dismissable")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrNoDeck) {
			t.Errorf("Load error = %v, want ErrNoDeck", err)
		}
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte("[[page]]\nid = \"a\"\ntitel = \"typo\"\n"), "typo.toml")
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse error = %v, want ErrParse", err)
		}
	})

	t.Run("name falls back to the file", func(t *testing.T) {
		t.Parallel()
		d, err := Parse([]byte("[[page]]\nid = \"a\"\ntitle = \"A\"\n"), "tour.toml")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if d.Name() != "tour" {
			t.Errorf("Name() = %q, want tour", d.Name())
		}
	})
}

func TestParseVerb(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Verb
		wantErr bool
	}{
		{in: "next", want: Verb{Kind: VerbNext}},
		{in: "push:details", want: Verb{Kind: VerbPush, Target: "details"}},
		{in: "pop", want: Verb{Kind: VerbPop}},
		{in: "root", want: Verb{Kind: VerbRoot}},
		{in: "dismiss", want: Verb{Kind: VerbDismiss}},
		{in: "none", want: Verb{Kind: VerbNone}},
		{in: "push:", wantErr: true},
		{in: "jump", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVerb(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVerb) {
					t.Errorf("ParseVerb(%q) error = %v, want ErrUnknownVerb", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseVerb(%q) = %+v, %v; want %+v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	page := func(id, title string) PageSpec { return PageSpec{ID: id, Title: title} }

	tests := []struct {
		name    string
		deck    Deck
		wantCat ValidationCategory
		wantErr error
	}{
		{
			name:    "no pages",
			deck:    Deck{},
			wantCat: ValCatMissingField,
			wantErr: ErrNoPages,
		},
		{
			name:    "missing title",
			deck:    Deck{Pages: []PageSpec{page("a", "")}},
			wantCat: ValCatMissingField,
			wantErr: ErrMissingField,
		},
		{
			name:    "duplicate id",
			deck:    Deck{Pages: []PageSpec{page("a", "A"), page("a", "B")}},
			wantCat: ValCatDuplicateID,
			wantErr: ErrDuplicateID,
		},
		{
			name:    "unknown next",
			deck:    Deck{Pages: []PageSpec{{ID: "a", Title: "A", Next: "b"}}},
			wantCat: ValCatUnknownTarget,
			wantErr: ErrUnknownPage,
		},
		{
			name:    "unknown root",
			deck:    Deck{Meta: Meta{Root: "zzz"}, Pages: []PageSpec{page("a", "A")}},
			wantCat: ValCatUnknownTarget,
			wantErr: ErrUnknownPage,
		},
		{
			name:    "unknown verb",
			deck:    Deck{Pages: []PageSpec{{ID: "a", Title: "A", OnAction: "jump"}}},
			wantCat: ValCatUnknownVerb,
			wantErr: ErrUnknownVerb,
		},
		{
			name:    "next verb without next link",
			deck:    Deck{Pages: []PageSpec{{ID: "a", Title: "A", OnAlternative: "next"}}},
			wantCat: ValCatUnknownTarget,
			wantErr: ErrUnknownPage,
		},
		{
			name: "next cycle",
			deck: Deck{Pages: []PageSpec{
				{ID: "a", Title: "A", Next: "b"},
				{ID: "b", Title: "B", Next: "a"},
			}},
			wantCat: ValCatCycle,
			wantErr: ErrNextCycle,
		},
		{
			name:    "indicator seconds without indicator",
			deck:    Deck{Pages: []PageSpec{{ID: "a", Title: "A", IndicatorSeconds: 3}}},
			wantCat: ValCatBoundsViolation,
			wantErr: ErrIndicatorWithoutStart,
		},
		{
			name:    "bad appearance",
			deck:    Deck{Pages: []PageSpec{page("a", "A")}, Appearance: appearanceWithBorder("dotted")},
			wantCat: ValCatAppearance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := Validate(&tt.deck)
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range errs {
				if e.Category == tt.wantCat && (tt.wantErr == nil || errors.Is(&e, tt.wantErr)) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not include category %s", errs, tt.wantCat)
			}
		})
	}

	t.Run("valid deck has no errors", func(t *testing.T) {
		t.Parallel()
		d, err := Parse([]byte(onboarding), "onboarding.toml")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if errs := Validate(d); len(errs) != 0 {
			t.Errorf("Validate() = %v, want none", errs)
		}
	})

	t.Run("unknown targets get a suggestion", func(t *testing.T) {
		t.Parallel()
		d := Deck{SourceFile: "x.toml", Pages: []PageSpec{
			{ID: "welcome", Title: "W", Next: "detials"},
			{ID: "details", Title: "D"},
		}}
		errs := Validate(&d)
		if len(errs) != 1 {
			t.Fatalf("Validate() = %v, want one error", errs)
		}
		if errs[0].Suggestion != "details" {
			t.Errorf("Suggestion = %q, want details", errs[0].Suggestion)
		}
		if !strings.Contains(errs[0].Error(), `did you mean "details"`) {
			t.Errorf("Error() = %q, want did-you-mean hint", errs[0].Error())
		}
	})
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	ids := []string{"welcome", "notifications", "done"}
	tests := []struct {
		name string
		want string
	}{
		{"welcom", "welcome"},
		{"notifcations", "notifications"},
		{"Done", "done"},
		{"elsewhere", ""},
	}
	for _, tt := range tests {
		if got := suggest(tt.name, ids); got != tt.want {
			t.Errorf("suggest(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
