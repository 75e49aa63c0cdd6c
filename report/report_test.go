package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quinex/quinex"
)

func sampleResult(t *testing.T) quinex.ParseResult {
	t.Helper()
	result, err := quinex.Parse("about 344 million €", quinex.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return result
}

func TestTextFormatter(t *testing.T) {
	result := sampleResult(t)
	var buf bytes.Buffer
	if err := GetFormatter("text").Format(&buf, result, Options{}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "single_quantity") {
		t.Errorf("expected output to mention single_quantity, got: %s", out)
	}
	if !strings.Contains(out, "344000000") {
		t.Errorf("expected output to contain the normalized value, got: %s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	result := sampleResult(t)
	var buf bytes.Buffer
	if err := GetFormatter("json").Format(&buf, result, Options{}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"Text"`) {
		t.Errorf("expected JSON output to contain Text field, got: %s", buf.String())
	}
}

func TestMarkdownFormatter(t *testing.T) {
	result := sampleResult(t)
	var buf bytes.Buffer
	if err := GetFormatter("markdown").Format(&buf, result, Options{}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "| # | value | unit | uncertainty | modifier |") {
		t.Errorf("expected a markdown table header, got: %s", out)
	}
}

func TestGetFormatterFallsBackToText(t *testing.T) {
	if GetFormatter("nonexistent").Name() != "text" {
		t.Error("expected unknown formatter name to fall back to text")
	}
}

func TestYAMLFormatter(t *testing.T) {
	result := sampleResult(t)
	var buf bytes.Buffer
	if err := GetFormatter("yaml").Format(&buf, result, Options{}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "text: about 344 million") && !strings.Contains(out, "Text: about 344 million") {
		t.Errorf("expected YAML output to contain the original text, got: %s", out)
	}
}

func TestHTMLFormatter(t *testing.T) {
	result := sampleResult(t)
	var buf bytes.Buffer
	if err := GetFormatter("html").Format(&buf, result, Options{}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected the markdown table to render as HTML, got: %s", out)
	}
}
