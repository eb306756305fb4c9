// Package nlp implements the text-processing passes that run on every
// participant turn: language detection, the substantiveness gate, and
// anonymization.
package nlp

import (
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
)

type Language = string

const (
	LangEN    Language = "en"
	LangAR    Language = "ar"
	LangMixed Language = "mixed"
)

// Arabic script blocks: basic, supplement, extended-A, presentation forms.
var arabicRE = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}]`)
var latinRE = regexp.MustCompile(`[a-zA-Z]`)

// Detector decides whether a turn is Arabic, English, or mixed. The script
// ratio handles the clear cases; the statistical fallback is only consulted
// in the ambiguous band, so its cost stays off the hot path.
type Detector struct {
	fallback func(text string) (Language, bool)
}

func NewDetector() *Detector {
	return &Detector{fallback: statisticalDetect}
}

// NewDetectorWithFallback allows tests to substitute the statistical
// classifier.
func NewDetectorWithFallback(fallback func(text string) (Language, bool)) *Detector {
	return &Detector{fallback: fallback}
}

func (d *Detector) Detect(text string) Language {
	if strings.TrimSpace(text) == "" {
		return LangEN
	}

	arabicChars := len(arabicRE.FindAllString(text, -1))
	latinChars := len(latinRE.FindAllString(text, -1))
	total := arabicChars + latinChars
	if total == 0 {
		return LangEN
	}

	ratio := float64(arabicChars) / float64(total)
	switch {
	case ratio > 0.6:
		return LangAR
	case ratio < 0.2:
		return LangEN
	}

	if d.fallback != nil {
		if lang, ok := d.fallback(text); ok {
			return lang
		}
	}
	return LangMixed
}

func (d *Detector) IsArabic(text string) bool {
	return d.Detect(text) == LangAR
}

// IsRTL reports whether the text should be rendered right-to-left.
func (d *Detector) IsRTL(text string) bool {
	lang := d.Detect(text)
	return lang == LangAR || lang == LangMixed
}

func statisticalDetect(text string) (Language, bool) {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "", false
	}
	switch info.Lang {
	case whatlanggo.Arb:
		return LangAR, true
	case whatlanggo.Eng:
		return LangEN, true
	}
	// A confident hit on some third language still means the span is not
	// predominantly Arabic, which is what callers branch on.
	return LangEN, true
}
