package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectArabic(t *testing.T) {
	d := NewDetector()
	require.Equal(t, LangAR, d.Detect("المشكلة الكبيرة في التواصل بين الأقسام"))
}

func TestDetectEnglish(t *testing.T) {
	d := NewDetector()
	require.Equal(t, LangEN, d.Detect("the biggest problem is communication between departments"))
}

func TestDetectEmptyDefaultsToEnglish(t *testing.T) {
	d := NewDetector()
	require.Equal(t, LangEN, d.Detect(""))
	require.Equal(t, LangEN, d.Detect("   "))
	require.Equal(t, LangEN, d.Detect("1234 !!!"))
}

func TestDetectMixedUsesFallback(t *testing.T) {
	// Half Arabic, half Latin letters puts the ratio in the ambiguous band.
	text := "نعم yes نعم yes"

	called := false
	d := NewDetectorWithFallback(func(string) (Language, bool) {
		called = true
		return "", false
	})
	require.Equal(t, LangMixed, d.Detect(text))
	require.True(t, called)

	d = NewDetectorWithFallback(func(string) (Language, bool) {
		return LangAR, true
	})
	require.Equal(t, LangAR, d.Detect(text))
}

func TestDetectMostlyArabicIgnoresFallback(t *testing.T) {
	d := NewDetectorWithFallback(func(string) (Language, bool) {
		t.Fatal("fallback should not run for a clear case")
		return "", false
	})
	require.Equal(t, LangAR, d.Detect("العمل صعب جدا هذه الايام ok"))
}

func TestIsRTL(t *testing.T) {
	d := NewDetectorWithFallback(func(string) (Language, bool) { return "", false })
	require.True(t, d.IsRTL("المشكلة في الاجتماعات الطويلة"))
	require.False(t, d.IsRTL("meetings run too long"))
	require.True(t, d.IsRTL("نعم yes نعم yes"))
}
