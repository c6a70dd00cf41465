package ui

import "testing"

func TestLocalization_Languages(t *testing.T) {
	l := NewLocalization()

	if l.GetText(KeyOpenInBrowser) != "Open" {
		t.Errorf("Expected English by default, got %q", l.GetText(KeyOpenInBrowser))
	}

	l.SetLanguage("ru")
	if l.GetText(KeyOpenInBrowser) != "Открыть" {
		t.Errorf("Unexpected Russian text %q", l.GetText(KeyOpenInBrowser))
	}

	l.SetLanguage("xx")
	if l.GetText(KeyOpenInBrowser) != "Открыть" {
		t.Error("Unknown language should keep the current one")
	}

	l.SetLanguage("system")
	if l.GetText(KeyOpenInBrowser) != "Open" {
		t.Errorf("Expected 'system' to resolve to English, got %q", l.GetText(KeyOpenInBrowser))
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if l.GetText(KeyLoading) != "Iniciando…" {
		t.Errorf("Expected Portuguese loading text, got %q", l.GetText(KeyLoading))
	}
	if l.GetText("missing_key") != "missing_key" {
		t.Error("Expected unknown key to fall back to the key itself")
	}
}
