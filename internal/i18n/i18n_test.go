package i18n

import (
	"strings"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code string
		want Language
		ok   bool
	}{
		{"en", LangEnglish, true},
		{"en_US.UTF-8", LangEnglish, true},
		{"zh_CN.UTF-8", LangChinese, true},
		{" ZH-tw ", LangChinese, true},
		{"fr_FR", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLanguage(%q) = %q, %v; want %q, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTranslate(t *testing.T) {
	prev := GetLanguage()
	defer SetLanguage(prev)

	SetLanguage(LangEnglish)
	if got := T(MsgVersion, "1.2.3"); got != "verbose version 1.2.3" {
		t.Errorf("en: %q", got)
	}
	if got := T(ErrLoadAt, 3, 5, "boom"); got != "line 3:5: boom" {
		t.Errorf("en: %q", got)
	}

	SetLanguage(LangChinese)
	if got := T(ErrLoadAt, 3, 5, "boom"); !strings.Contains(got, "3") || got == "line 3:5: boom" {
		t.Errorf("zh: %q", got)
	}

	if got := T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key: %q", got)
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range enMessages {
		if _, ok := zhMessages[key]; !ok {
			t.Errorf("zh is missing %s", key)
		}
	}
	for key := range zhMessages {
		if _, ok := enMessages[key]; !ok {
			t.Errorf("en is missing %s", key)
		}
	}
}
