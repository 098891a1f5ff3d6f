package render

import (
	"bytes"
	"testing"

	"github.com/pthm-cable/torus/board"
)

func TestFrameFormat(t *testing.T) {
	b, err := board.New(2, 3)
	if err != nil {
		t.Fatalf("board.New failed: %v", err)
	}
	b.Set(0, 0, true)
	b.Set(0, 2, true)
	b.Set(1, 1, true)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Frame(7, b); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	want := "Cycle: 7\no.o\n.o.\n\n"
	if got := buf.String(); got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestFrameSequence(t *testing.T) {
	b, err := board.New(1, 2)
	if err != nil {
		t.Fatalf("board.New failed: %v", err)
	}
	b.Set(0, 0, true)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Frame(0, b); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	b.Set(0, 0, false)
	if err := w.Frame(1, b); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	want := "Cycle: 0\no.\n\nCycle: 1\n..\n\n"
	if got := buf.String(); got != want {
		t.Errorf("frames = %q, want %q", got, want)
	}
}

func TestNotice(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Notice("Cycle detected at generation 4. Stopping."); err != nil {
		t.Fatalf("Notice failed: %v", err)
	}

	want := "Cycle detected at generation 4. Stopping.\n"
	if got := buf.String(); got != want {
		t.Errorf("notice = %q, want %q", got, want)
	}
}
