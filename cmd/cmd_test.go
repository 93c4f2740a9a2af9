package cmd

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papapumpkin/bulletin/internal/ui"
)

func TestCommandsRegistered(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"run", "validate", "history", "telemetry"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			found := false
			for _, c := range rootCmd.Commands() {
				if c.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected %q subcommand to be registered on rootCmd", name)
			}
		})
	}
}

func TestRunCmd_Flags(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"watch", "no-animation", "telemetry", "width", "once"} {
		t.Run(flag, func(t *testing.T) {
			t.Parallel()
			if runCmd.Flags().Lookup(flag) == nil {
				t.Errorf("expected flag %q to be registered on run command", flag)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestValidateDecks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.toml", `
[[page]]
id = "a"
title = "A"
next = "b"

[[page]]
id = "b"
title = "B"
`)
	bad := writeFile(t, dir, "bad.toml", `
[[page]]
id = "a"
title = "A"
next = "c"
`)
	missing := filepath.Join(dir, "missing.toml")

	var buf bytes.Buffer
	failed := validateDecks(ui.NewWriter(&buf, false), []string{good, bad, missing})
	if failed != 2 {
		t.Errorf("failed = %d, want 2", failed)
	}
	out := buf.String()
	for _, want := range []string{"2 page(s), no errors", "unknown page ID", "deck file not found"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLoadFlowRejectsInvalidDeck(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "dup.toml", `
[[page]]
id = "a"
title = "A"

[[page]]
id = "a"
title = "again"
`)
	var buf bytes.Buffer
	if _, err := loadFlow(ui.NewWriter(&buf, false), path); err == nil {
		t.Fatal("expected an error for a duplicate id")
	}
	if !strings.Contains(buf.String(), "duplicate_id") {
		t.Errorf("validation report missing, got:\n%s", buf.String())
	}
}

func TestPrintEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "navigation event",
			line: `{"ts":"2026-03-01T12:00:05Z","kind":"push","session":"1234abcd-0000-0000-0000-000000000000","page":"details","data":{"from":"welcome","depth":1}}`,
			want: []string{"[12:00:05]", "push", "session=1234abcd", "page=details", "depth=1 from=welcome"},
		},
		{
			name: "undecodable line",
			line: `not json`,
			want: []string{"??? not json"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			printEvent(&buf, tt.line)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("printEvent output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestLineTailHoldsPartialLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	writer, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer writer.Close()
	reader, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	tail := &lineTail{r: bufio.NewReader(reader)}

	if _, err := writer.WriteString(`{"ts":"2026-03-01T12:00:05Z","kind":"pu`); err != nil {
		t.Fatalf("write: %v", err)
	}
	tail.drain(&buf)
	if buf.Len() != 0 {
		t.Fatalf("unterminated line was printed: %q", buf.String())
	}

	if _, err := writer.WriteString(`sh","page":"details"}` + "\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	tail.drain(&buf)
	out := buf.String()
	if strings.Contains(out, "???") {
		t.Errorf("split line printed as undecodable: %q", out)
	}
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "page=details") {
		t.Errorf("want one decoded push event, got %q", out)
	}
}
