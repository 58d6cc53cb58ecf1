// Package i18n provides translated messages for the verbose command-line tools.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language represents a supported language
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

var (
	currentLang Language
	mu          sync.RWMutex
	once        sync.Once
)

// Init initializes the i18n system by detecting the system language.
// This is called automatically on first use, but can be called explicitly.
func Init() {
	once.Do(func() {
		lang := detectLanguage()
		mu.Lock()
		if currentLang == "" {
			currentLang = lang
		}
		mu.Unlock()
	})
}

// SetLanguage sets the current language manually.
func SetLanguage(lang Language) {
	Init()
	mu.Lock()
	currentLang = lang
	mu.Unlock()
}

// GetLanguage returns the current language.
func GetLanguage() Language {
	Init()
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T translates a message key to the current language.
// If the key is not found, returns the key itself.
// Supports format arguments like fmt.Sprintf.
func T(key string, args ...any) string {
	var messages map[string]string
	switch GetLanguage() {
	case LangChinese:
		messages = zhMessages
	default:
		messages = enMessages
	}

	template, ok := messages[key]
	if !ok {
		// Fallback to English
		template, ok = enMessages[key]
		if !ok {
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(template, args...)
	}
	return template
}

// ParseLanguage parses a language code such as "zh_CN.UTF-8", "zh-CN" or "en".
// It returns false for languages without a translation table.
func ParseLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))

	switch {
	case strings.HasPrefix(code, "zh"):
		return LangChinese, true
	case strings.HasPrefix(code, "en"):
		return LangEnglish, true
	}
	return "", false
}

// detectLanguage detects the system language from the environment.
func detectLanguage() Language {
	for _, envVar := range []string{"VERBOSE_LANG", "LC_ALL", "LANG", "LANGUAGE"} {
		if lang, ok := ParseLanguage(os.Getenv(envVar)); ok {
			return lang
		}
	}
	return LangEnglish
}
