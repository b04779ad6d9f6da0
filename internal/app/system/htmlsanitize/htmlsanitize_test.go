package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/lotusandpine/studiohub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	result := htmlsanitize.Sanitize("")
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	result := htmlsanitize.Sanitize("Hello, World!")
	if result != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	result := htmlsanitize.Sanitize(input)
	if result != input {
		t.Errorf("expected safe HTML preserved, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	result := htmlsanitize.Sanitize(input)
	if result != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<button onclick="alert('xss')">Click</button>`
	result := htmlsanitize.Sanitize(input)
	if result == input {
		t.Error("expected onclick attribute to be removed")
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	result := htmlsanitize.Sanitize(input)
	if result == input {
		t.Error("expected javascript: href to be removed")
	}
}

func TestSanitize_AllowsSafeLinks(t *testing.T) {
	input := `<a href="https://example.com">Link</a>`
	result := htmlsanitize.Sanitize(input)
	// Safe link should be preserved (bluemonday adds rel="nofollow")
	if result == "" || !strings.Contains(result, "https://example.com") {
		t.Errorf("expected safe link preserved, got %q", result)
	}
}

func TestSanitize_AllowsTables(t *testing.T) {
	input := `<table><thead><tr><th>Header</th></tr></thead><tbody><tr><td>Cell</td></tr></tbody></table>`
	result := htmlsanitize.Sanitize(input)
	if result != input {
		t.Errorf("expected table preserved, got %q", result)
	}
}

func TestStripTags_PlainText(t *testing.T) {
	result := htmlsanitize.StripTags("Dana 0501234567")
	if result != "Dana 0501234567" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestStripTags_RemovesAllMarkup(t *testing.T) {
	input := `<b>Dana</b><script>alert('x')</script>`
	result := htmlsanitize.StripTags(input)
	if result != "Dana" {
		t.Errorf("expected all markup removed, got %q", result)
	}
}

func TestStripTags_ReturnsPlainTextNotEntities(t *testing.T) {
	// The result is handed to html/template, which escapes it itself;
	// leaving bluemonday's entities in would escape the text twice.
	input := "Tea & cookies, it's fun"
	result := htmlsanitize.StripTags(input)
	if result != input {
		t.Errorf("expected plain text back, got %q", result)
	}

	if got := htmlsanitize.StripTags("<b>5 < 6 && 7 > 2</b>"); got != "5 < 6 && 7 > 2" {
		t.Errorf("expected unescaped text, got %q", got)
	}
}
