package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khaos-studio/uxkit/internal/workspace"
)

func TestRenderPreviewExpandsPartials(t *testing.T) {
	project := t.TempDir()
	if _, err := workspace.Init(project, io.Discard); err != nil {
		t.Fatalf("workspace.Init: %v", err)
	}
	tpl := filepath.Join(project, "preview.md")
	if err := os.WriteFile(tpl, []byte("Hello\n{{>footer}}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("UXKIT_ROOT", "")
	t.Chdir(project)
	renderContextFile, renderOutput = "", ""

	var out bytes.Buffer
	renderCmd.SetOut(&out)
	defer renderCmd.SetOut(nil)

	if err := renderCmd.RunE(renderCmd, []string{tpl}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "Generated by") {
		t.Errorf("footer partial not expanded in preview:\n%s", out.String())
	}
	if strings.Contains(out.String(), "{{>") {
		t.Errorf("partial reference left in preview:\n%s", out.String())
	}

	t.Run("outside a workspace", func(t *testing.T) {
		dir := t.TempDir()
		tpl := filepath.Join(dir, "loose.md")
		if err := os.WriteFile(tpl, []byte("{{>footer}}"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Chdir(dir)

		var out bytes.Buffer
		renderCmd.SetOut(&out)
		defer renderCmd.SetOut(nil)

		if err := renderCmd.RunE(renderCmd, []string{tpl}); err != nil {
			t.Fatalf("render: %v", err)
		}
		// No registry to consult, so the reference passes through.
		if !strings.Contains(out.String(), "{{>footer}}") {
			t.Errorf("expected verbatim partial reference, got:\n%s", out.String())
		}
	})
}
