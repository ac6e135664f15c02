package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("missing_required_field", nil); msg != "required field missing" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("missing_required_field", nil); msg == "required field missing" || msg == "" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestTranslator_Custom(t *testing.T) {
	SetTranslator(fixed("x"))
	if T("utf8", nil) != "x" {
		t.Fatalf("custom translator not used")
	}
	SetTranslator(nil)
	if T("utf8", nil) != "invalid utf-8 string" {
		t.Fatalf("nil translator must restore the default")
	}
	if T("no_such_code", nil) != "" {
		t.Fatalf("unknown codes render empty")
	}
}
