package render_test

import (
	"strings"
	"testing"

	"github.com/openyieldtables/go-yieldtables/pkg/render"
)

func TestSanitizeFragment_KeepsChrome(t *testing.T) {
	fragment := `<header class="site"><nav><a href="/about">About</a></nav></header>`

	got := render.SanitizeFragment(fragment)
	if !strings.Contains(got, "<nav>") {
		t.Fatalf("nav stripped: %q", got)
	}
	if !strings.Contains(got, `href="/about"`) {
		t.Fatalf("link href stripped: %q", got)
	}
}

func TestSanitizeFragment_DropsScripts(t *testing.T) {
	fragment := `<div onclick="steal()">ok</div><script>alert(1)</script>`

	got := render.SanitizeFragment(fragment)
	if strings.Contains(got, "script") || strings.Contains(got, "onclick") {
		t.Fatalf("script content survived sanitizing: %q", got)
	}
	if !strings.Contains(got, "<div>ok</div>") {
		t.Fatalf("benign markup lost: %q", got)
	}
}

func TestSanitizeFragment_Empty(t *testing.T) {
	if got := render.SanitizeFragment("   "); got != "" {
		t.Fatalf("whitespace fragment = %q, want empty", got)
	}
}
