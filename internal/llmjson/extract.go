// Package llmjson recovers the JSON object a language model was asked to
// emit, tolerating the decoration models wrap around it: markdown fences,
// leading prose, trailing commas, Python-style literals.
package llmjson

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoObject reports that no parseable JSON object could be recovered.
var ErrNoObject = errors.New("llmjson: no json object found")

var (
	fenceRE         = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	trailingCommaRE = regexp.MustCompile(`,\s*([\]}])`)
)

// ExtractObject pulls the first JSON object out of raw model output and
// unmarshals it into dst. Recovery stages run in order of strictness:
// a direct parse of the cleaned text, then a balanced-brace scan, then a
// lenient pass that converts single-quoted pseudo-JSON.
func ExtractObject(raw string, dst any) error {
	cleaned := Clean(raw)
	if cleaned == "" {
		return ErrNoObject
	}

	if json.Unmarshal([]byte(cleaned), dst) == nil {
		return nil
	}

	if candidate, ok := scanObject(cleaned); ok {
		if json.Unmarshal([]byte(candidate), dst) == nil {
			return nil
		}
		relaxed := relax(candidate)
		if json.Unmarshal([]byte(relaxed), dst) == nil {
			return nil
		}
	}

	if json.Unmarshal([]byte(relax(cleaned)), dst) == nil {
		return nil
	}
	return ErrNoObject
}

// Clean strips markdown fences and trailing commas and trims whitespace.
// The fence body wins over surrounding prose when both are present.
func Clean(raw string) string {
	text := strings.TrimSpace(raw)
	if m := fenceRE.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	} else {
		// A fence the model never closed.
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}
	return trailingCommaRE.ReplaceAllString(text, "$1")
}

// scanObject returns the first balanced top-level {...} run. The scan is
// aware of string literals and escapes so braces inside values do not
// unbalance the count.
func scanObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// relax converts single-quoted pseudo-JSON and Python literal spellings
// into strict JSON. Quote conversion walks the text so apostrophes inside
// double-quoted strings survive.
func relax(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inDouble := false
	inSingle := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			b.WriteByte(c)
			escaped = true
		case '"':
			if inSingle {
				// Becomes a quote inside a converted string.
				b.WriteString(`\"`)
			} else {
				inDouble = !inDouble
				b.WriteByte(c)
			}
		case '\'':
			if inDouble {
				b.WriteByte(c)
			} else {
				inSingle = !inSingle
				b.WriteByte('"')
			}
		default:
			b.WriteByte(c)
		}
	}
	out := b.String()
	out = strings.ReplaceAll(out, ": None", ": null")
	out = strings.ReplaceAll(out, ": True", ": true")
	out = strings.ReplaceAll(out, ": False", ": false")
	return trailingCommaRE.ReplaceAllString(out, "$1")
}
