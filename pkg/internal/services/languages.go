package services

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectLanguage guesses the language of user-written text. The detector is
// expensive to build, so it is constructed lazily and shared.
func DetectLanguage(text string) string {
	if len(text) == 0 {
		return "unknown"
	}

	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			WithLowAccuracyMode().
			Build()
	})

	if language, ok := languageDetector.DetectLanguageOf(text); ok {
		return language.IsoCode639_1().String()
	}
	return "unknown"
}
