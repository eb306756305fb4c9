package nlp

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// EntitySpan is one named entity reported by the external recognizer.
// Offsets are byte offsets into the UTF-8 text that was tagged.
type EntitySpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// EntityTagger is the boundary to the statistical NER model. It is allowed
// to fail; the anonymizer treats any error as "rule-based redaction only".
type EntityTagger interface {
	Tag(ctx context.Context, text string) ([]EntitySpan, error)
}

var (
	emailRE = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// International and local digit-group formats: optional country code,
	// optional area code, then two 3-4 digit groups.
	phoneRE = regexp.MustCompile(`(?:\+?\d{1,3}[\s-]?)?(?:\(?\d{1,4}\)?[\s-]?)?\d{3,4}[\s-]?\d{3,4}`)

	idRE = regexp.MustCompile(`\b(?:ID|id|Id)[:\s#]?\s*\d{3,}\b`)

	// RE2's \b only understands ASCII word characters, so the Arabic
	// patterns anchor on an explicit non-Arabic separator instead.
	arabicHonorificRE = regexp.MustCompile(`(^|[^\p{Arabic}])(السيد|السيدة|الأستاذ|الأستاذة|المهندس|المهندسة|الدكتور|الدكتورة|أبو|أم|بن|ابن|آل)\s+\p{Arabic}+`)

	arabicLocationRE = regexp.MustCompile(`(^|[^\p{Arabic}])(شارع|منطقة|حي|مدينة|محافظة|قرية|بناية|مبنى|طابق)\s+[\p{Arabic}\s]+`)
)

// nerLabelMap accepts both the recognizer's canonical lowercase labels and
// the spaCy-style tags some deployments emit.
var nerLabelMap = map[string]string{
	"person":       "[PERSON]",
	"organization": "[ORGANIZATION]",
	"location":     "[LOCATION]",
	"facility":     "[FACILITY]",
	"group":        "[GROUP]",
	"PERSON":       "[PERSON]",
	"ORG":          "[ORGANIZATION]",
	"GPE":          "[LOCATION]",
	"LOC":          "[LOCATION]",
	"FAC":          "[FACILITY]",
	"NORP":         "[GROUP]",
}

var placeholderTypes = []string{
	"[PERSON]", "[ORGANIZATION]", "[LOCATION]", "[EMAIL]",
	"[PHONE]", "[ID]", "[FACILITY]", "[GROUP]",
}

var collapseREs = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(placeholderTypes))
	for _, p := range placeholderTypes {
		quoted := regexp.QuoteMeta(p)
		res = append(res, regexp.MustCompile(quoted+`(?:\s*`+quoted+`)+`))
	}
	return res
}()

// Anonymizer replaces identifying spans with category placeholders. The
// rule passes run first because they are the most reliable; the NER pass
// only sees what the rules left behind.
type Anonymizer struct {
	tagger EntityTagger
}

func NewAnonymizer(tagger EntityTagger) *Anonymizer {
	return &Anonymizer{tagger: tagger}
}

// AnonymizedPair keeps the verbatim text beside the redacted copy. The
// original form is access-restricted audit material.
type AnonymizedPair struct {
	Original   string `json:"original"`
	Anonymized string `json:"anonymized"`
}

func (a *Anonymizer) AnonymizeWithOriginal(ctx context.Context, text string) AnonymizedPair {
	return AnonymizedPair{
		Original:   text,
		Anonymized: a.Anonymize(ctx, text),
	}
}

// Anonymize runs the ordered redaction passes. Pass order matters: each
// pass operates on the output of the previous one, and the NER
// substitution goes rightmost-first so earlier replacements cannot shift
// the offsets of spans not yet processed.
func (a *Anonymizer) Anonymize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	result := text
	result = emailRE.ReplaceAllString(result, "[EMAIL]")
	result = phoneRE.ReplaceAllString(result, "[PHONE]")
	result = idRE.ReplaceAllString(result, "[ID]")
	result = arabicHonorificRE.ReplaceAllString(result, "$1[PERSON]")
	result = arabicLocationRE.ReplaceAllString(result, "$1[LOCATION]")

	if a.tagger != nil {
		spans, err := a.tagger.Tag(ctx, result)
		if err != nil {
			logutil.GetLogger(ctx).Warn("entity tagger failed, using rule-based redaction only", zap.Error(err))
		} else {
			result = substituteSpans(result, spans)
		}
	}

	for _, re := range collapseREs {
		result = re.ReplaceAllStringFunc(result, func(run string) string {
			idx := strings.Index(run, "]")
			return run[:idx+1]
		})
	}
	return result
}

func substituteSpans(text string, spans []EntitySpan) string {
	// Rightmost first keeps the remaining offsets valid.
	sorted := make([]EntitySpan, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})
	for _, span := range sorted {
		replacement, ok := nerLabelMap[span.Label]
		if !ok {
			continue
		}
		if span.Start < 0 || span.End > len(text) || span.Start >= span.End {
			continue
		}
		text = text[:span.Start] + replacement + text[span.End:]
	}
	return text
}
