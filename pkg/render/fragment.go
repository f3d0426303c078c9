package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// SanitizeFragment cleans externally supplied page chrome markup before it
// is injected verbatim into a rendered document. The policy keeps the
// structural and head-level elements page fragments are made of and drops
// scripts and event handlers.
func SanitizeFragment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := fragmentSanitizer()
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"meta", "link", "title", "style",
			"header", "nav", "div", "span", "p", "ul", "ol", "li",
			"h1", "h2", "h3", "h4", "a", "img", "small", "strong", "em",
		)

		policy.AllowAttrs("charset", "name", "content", "http-equiv").OnElements("meta")
		policy.AllowAttrs("rel", "href", "type", "media", "sizes").OnElements("link")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href", "target", "rel").OnElements("a")
		policy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
		policy.AllowAttrs("class", "id").Globally()

		fragmentPolicy = policy
	})
	return fragmentPolicy
}
