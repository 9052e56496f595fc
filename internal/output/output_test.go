package output

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		if p == nil {
			t.Fatal("FromContext returned nil")
		}
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Print("hello", " ", "world")
	if got := buf.String(); got != "hello world" {
		t.Errorf("Print() wrote %q, want %q", got, "hello world")
	}
}

func TestPrinter_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Printf("count: %d", 42)
	if got := buf.String(); got != "count: 42" {
		t.Errorf("Printf() wrote %q, want %q", got, "count: 42")
	}
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Println("line one")
	p.Println("line two")
	want := "line one\nline two\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_Writer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)
	p := FromContext(ctx)

	w := p.Writer()
	if w != &buf {
		t.Error("Writer() should return the underlying writer")
	}

	// Write directly through the writer
	if _, err := w.Write([]byte("direct")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := buf.String(); got != "direct" {
		t.Errorf("direct Write produced %q, want %q", got, "direct")
	}
}

func TestPrinter_StatusLines(t *testing.T) {
	t.Parallel()

	t.Run("unstyled writes plain lines", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := New(&buf)
		p.Heading("📚 Initializing git repository...")
		p.Success("✅ Git repository initialized")
		p.Warn("⚠️  Failed to install dependencies")
		p.Error("❌ git: not found on PATH")
		p.Muted("⏭️  Skipping deps")
		want := "📚 Initializing git repository...\n✅ Git repository initialized\n⚠️  Failed to install dependencies\n" +
			"❌ git: not found on PATH\n⏭️  Skipping deps\n"
		if got := buf.String(); got != want {
			t.Errorf("status lines = %q, want %q", got, want)
		}
	})

	t.Run("styled keeps text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := NewStyled(&buf, true)
		if !p.Styled() {
			t.Fatal("Styled() = false, want true")
		}
		p.Success("✅ Dependencies installed")
		if got := buf.String(); !strings.Contains(got, "✅ Dependencies installed") {
			t.Errorf("styled Success wrote %q, want it to contain the message", got)
		}
	})
}

func TestWithStyledPrinter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := NewStyled(&buf, false)
	ctx := WithStyledPrinter(context.Background(), p)
	if FromContext(ctx) != p {
		t.Error("FromContext did not return the attached printer")
	}
}
