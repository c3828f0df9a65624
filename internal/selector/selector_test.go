package selector

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mxgoldstein/log-current/pkg/models"
)

func changedSet(names ...string) *models.Snapshot {
	s := models.NewSnapshot(len(names))
	for i, name := range names {
		s.Add(models.FileRecord{Name: name, Size: int64(i + 1)})
	}
	return s
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected int
		wantErr  bool
	}{
		{"0", 2, 0, false},
		{"2", 2, 2, false},
		{"3", 2, None, true},
		{"-1", 2, None, true},
		{"abc", 2, None, true},
		{"1x", 2, None, true},
		{"", 2, None, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSelection(tt.input, tt.max)
			if got != tt.expected {
				t.Errorf("ParseSelection(%q) = %d, want %d", tt.input, got, tt.expected)
			}
			if tt.wantErr {
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					t.Errorf("ParseSelection(%q) error = %v, want *InputError", tt.input, err)
				}
			} else if err != nil {
				t.Errorf("ParseSelection(%q) error = %v", tt.input, err)
			}
		})
	}
}

func TestPrompt_Select(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"First entry", "0\n", 0},
		{"Second entry", "1\n", 1},
		{"Quit", "2\n", None},
		{"End of input", "", None},
		{"Retry after garbage", "foo\n1\n", 1},
		{"Retry after out of range", "7\n-3\n0\n", 0},
		{"Tokens on one line", "x 1", 1},
		{"Garbage then EOF", "nope", None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompt(strings.NewReader(tt.input), &out)

			got, err := p.Select(context.Background(), changedSet("error.log", "access.log"))
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Select() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestPrompt_Output(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("bad\n0\n"), &out)

	if _, err := p.Select(context.Background(), changedSet("app.log")); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	want := "Active log files:\n\n" +
		"0: app.log\n" +
		"1: Quit\n" +
		"[0-1]: " +
		"Invalid selection \"bad\", enter a number between 0 and 1\n" +
		"[0-1]: "
	if out.String() != want {
		t.Errorf("Select() output = %q, want %q", out.String(), want)
	}
}

func TestPrompt_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompt(strings.NewReader("0\n"), &bytes.Buffer{})
	got, err := p.Select(ctx, changedSet("app.log"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Select() error = %v, want context.Canceled", err)
	}
	if got != None {
		t.Errorf("Select() = %d, want None", got)
	}
}

func TestAuto_Select(t *testing.T) {
	var out bytes.Buffer
	a := NewAuto(&out)

	got, err := a.Select(context.Background(), changedSet("first.log", "second.log"))
	if err != nil || got != 0 {
		t.Fatalf("Select() = %d, %v, want 0, nil", got, err)
	}
	if want := "Active log files:\n\nfirst.log\n"; out.String() != want {
		t.Errorf("Select() output = %q, want %q", out.String(), want)
	}

	out.Reset()
	got, _ = a.Select(context.Background(), changedSet())
	if got != None {
		t.Errorf("Select(empty) = %d, want None", got)
	}
	if out.Len() != 0 {
		t.Errorf("Select(empty) printed %q", out.String())
	}
}

func TestFuzzy_EmptySet(t *testing.T) {
	got, err := NewFuzzy().Select(context.Background(), changedSet())
	if err != nil || got != None {
		t.Errorf("Select(empty) = %d, %v, want None, nil", got, err)
	}
}

func TestFuzzy_Preview(t *testing.T) {
	records := changedSet("app.log").Records()
	p := preview(records)

	if got := p(0, 80, 24); got != "Name: app.log\nSize: 1 bytes" {
		t.Errorf("preview(0) = %q", got)
	}
	if got := p(-1, 80, 24); !strings.Contains(got, "Select the log file") {
		t.Errorf("preview(-1) = %q", got)
	}
}
