package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSubstantive(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"normal statement", "The weekly report takes three hours to prepare by hand", true},
		{"arabic statement", "الاجتماعات تأخذ وقتاً طويلاً جداً كل أسبوع بدون نتائج", true},
		{"too short", "it is bad", false},
		{"too few words", "miscommunication!!!", false},
		{"dismissive", "I don't know anything about that really", false},
		{"dismissive casing", "NO IDEA what you are asking about", false},
		{"meta conversational", "can you explain what you mean by that question", false},
		{"empty", "", false},
		{"whitespace only", "    \n\t  ", false},
		{"exactly at char boundary", "a bb ccc dddd e", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsSubstantive(tt.text))
		})
	}
}

func TestIsSubstantiveCountsRunesNotBytes(t *testing.T) {
	// 14 Arabic runes across 3 words is many more bytes but still short.
	require.False(t, IsSubstantive("كلمة كلمة كلمة"))
}
