package controller

import (
	"strings"
	"testing"

	m "github.com/mouse-blink/stamp/internal/model"
)

func TestStyledUI_DisplayHeaderResult(t *testing.T) {
	cmd, buf := newTestCommand()

	for _, state := range m.States() {
		result := m.FileResult{Source: m.Source{Path: "lib/a.rb"}, State: state}
		if err := NewStyledUI(cmd).DisplayHeaderResult(result); err != nil {
			t.Fatalf("DisplayHeaderResult(%s) error = %v", state, err)
		}
	}

	assertContains(t, buf.String(), "GOOD", "NONE", "DATE", "EMPTY", "WROTE", "lib/a.rb")
}

func TestStyledUI_DisplayManifest(t *testing.T) {
	cmd, buf := newTestCommand()

	if err := NewStyledUI(cmd).DisplayManifest("Manifest.static", []m.Path{"a"}); err != nil {
		t.Fatalf("DisplayManifest() error = %v", err)
	}

	assertContains(t, buf.String(), "Manifest.static", "(1 files)")
}

func TestStyledUI_DisplayDiff(t *testing.T) {
	cmd, buf := newTestCommand()

	if err := NewStyledUI(cmd).DisplayDiff("pom.xml", []string{"<version>1.0</version>"}, []string{"<version>1.1</version>"}); err != nil {
		t.Fatalf("DisplayDiff() error = %v", err)
	}

	assertContains(t, buf.String(), "a/pom.xml", "-<version>1.0</version>", "+<version>1.1</version>")
}

func TestStyledUI_InheritsSimpleOutput(t *testing.T) {
	cmd, buf := newTestCommand()

	if err := NewStyledUI(cmd).DisplayFiles([]m.Path{"x.rb"}); err != nil {
		t.Fatalf("DisplayFiles() error = %v", err)
	}

	if got := buf.String(); got != "x.rb\n" {
		t.Fatalf("DisplayFiles() output = %q", got)
	}
}

func TestStyledUI_DisplayHeaderSummary(t *testing.T) {
	cmd, buf := newTestCommand()

	results := []m.FileResult{
		{Source: m.Source{Path: "a.rb"}, State: m.StateGood},
		{Source: m.Source{Path: "b.rb"}, State: m.StateWrote},
		{Source: m.Source{Path: "c.rb"}, State: m.StateNone},
	}

	if err := NewStyledUI(cmd).DisplayHeaderSummary(results, []m.FileFailure{{Path: "d.rb"}}); err != nil {
		t.Fatalf("DisplayHeaderSummary() error = %v", err)
	}

	assertContains(t, buf.String(), "GOOD", "FAILED", "2/4 current")
}

func TestStyledUI_DisplayHeaderSummary_Empty(t *testing.T) {
	cmd, buf := newTestCommand()

	if err := NewStyledUI(cmd).DisplayHeaderSummary(nil, nil); err != nil {
		t.Fatalf("DisplayHeaderSummary() error = %v", err)
	}

	if strings.Contains(buf.String(), "current") {
		t.Fatalf("empty run should have no progress bar:\n%s", buf.String())
	}
}

func TestStyledUI_DisplayCounts(t *testing.T) {
	rows := []m.CountRow{
		{Name: "JAVA", Path: "src/main/java/acme/Acme.java", Lines: 4, Code: 3},
		{Name: "JAVA", Lines: 4, Code: 3},
		{Name: "TOTAL", Lines: 4, Code: 3},
	}

	t.Run("summary", func(t *testing.T) {
		cmd, buf := newTestCommand()

		if err := NewStyledUI(cmd).DisplayCounts(rows, false); err != nil {
			t.Fatalf("DisplayCounts() error = %v", err)
		}

		output := buf.String()
		assertContains(t, output, "Lines", "JAVA", "TOTAL")

		if strings.Contains(output, "Acme.java") {
			t.Fatalf("file rows should be hidden without verbose:\n%s", output)
		}
	})

	t.Run("verbose", func(t *testing.T) {
		cmd, buf := newTestCommand()

		if err := NewStyledUI(cmd).DisplayCounts(rows, true); err != nil {
			t.Fatalf("DisplayCounts() error = %v", err)
		}

		assertContains(t, buf.String(), "src/main/java/acme/Acme.java")
	})
}
