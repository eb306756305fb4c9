package nlp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTagger struct {
	spans []EntitySpan
	err   error
	seen  string
}

func (f *fakeTagger) Tag(_ context.Context, text string) ([]EntitySpan, error) {
	f.seen = text
	return f.spans, f.err
}

func TestAnonymizeEmail(t *testing.T) {
	a := NewAnonymizer(nil)
	out := a.Anonymize(context.Background(), "contact me at john.doe@acme-corp.com about this")
	require.Equal(t, "contact me at [EMAIL] about this", out)
}

func TestAnonymizePhone(t *testing.T) {
	a := NewAnonymizer(nil)
	out := a.Anonymize(context.Background(), "call me at +962 79 123 4567 tomorrow")
	require.NotContains(t, out, "123")
	require.Contains(t, out, "[PHONE]")
}

func TestAnonymizeIDNumber(t *testing.T) {
	a := NewAnonymizer(nil)
	out := a.Anonymize(context.Background(), "my badge is ID: 98321 in the system")
	require.Contains(t, out, "[ID]")
	require.NotContains(t, out, "98321")
}

func TestAnonymizeArabicHonorific(t *testing.T) {
	a := NewAnonymizer(nil)
	out := a.Anonymize(context.Background(), "تحدثت مع السيد أحمد عن المشكلة")
	require.Contains(t, out, "[PERSON]")
	require.NotContains(t, out, "أحمد")
}

func TestAnonymizeArabicHonorificAtStart(t *testing.T) {
	a := NewAnonymizer(nil)
	out := a.Anonymize(context.Background(), "الدكتور خالد لم يحضر الاجتماع")
	require.True(t, strings.HasPrefix(out, "[PERSON]"), out)
}

func TestAnonymizeNERSpans(t *testing.T) {
	text := "I spoke with Ahmad about the warehouse"
	tagger := &fakeTagger{spans: []EntitySpan{
		{Start: 13, End: 18, Label: "PERSON"},
	}}
	a := NewAnonymizer(tagger)
	out := a.Anonymize(context.Background(), text)
	require.Equal(t, "I spoke with [PERSON] about the warehouse", out)
	require.Equal(t, text, tagger.seen)
}

func TestAnonymizeNERFailureFallsBackToRules(t *testing.T) {
	tagger := &fakeTagger{err: errors.New("sidecar down")}
	a := NewAnonymizer(tagger)
	out := a.Anonymize(context.Background(), "reach me on jane@corp.example please soon")
	require.Equal(t, "reach me on [EMAIL] please soon", out)
}

func TestAnonymizeUnknownLabelIgnored(t *testing.T) {
	tagger := &fakeTagger{spans: []EntitySpan{{Start: 0, End: 4, Label: "DATE"}}}
	a := NewAnonymizer(tagger)
	out := a.Anonymize(context.Background(), "июнь was a hard month for everyone here")
	require.NotContains(t, out, "[")
}

func TestAnonymizeCollapsesAdjacentPlaceholders(t *testing.T) {
	// Two adjacent person spans collapse into one placeholder.
	text := "Omar Karim missed the deadline"
	tagger := &fakeTagger{spans: []EntitySpan{
		{Start: 0, End: 4, Label: "PERSON"},
		{Start: 5, End: 10, Label: "PERSON"},
	}}
	a := NewAnonymizer(tagger)
	out := a.Anonymize(context.Background(), text)
	require.Equal(t, "[PERSON] missed the deadline", out)
}

func TestAnonymizeOutOfRangeSpanIgnored(t *testing.T) {
	tagger := &fakeTagger{spans: []EntitySpan{{Start: 10, End: 500, Label: "PERSON"}}}
	a := NewAnonymizer(tagger)
	out := a.Anonymize(context.Background(), "short harmless text here")
	require.Equal(t, "short harmless text here", out)
}

func TestAnonymizeIdempotent(t *testing.T) {
	a := NewAnonymizer(nil)
	input := "email sam@ex.co or call 0791 234 567, tell السيدة ليلى"
	once := a.Anonymize(context.Background(), input)
	twice := a.Anonymize(context.Background(), once)
	require.Equal(t, once, twice)
}

func TestAnonymizeEmptyPassthrough(t *testing.T) {
	a := NewAnonymizer(nil)
	require.Equal(t, "", a.Anonymize(context.Background(), ""))
	require.Equal(t, "   ", a.Anonymize(context.Background(), "   "))
}
