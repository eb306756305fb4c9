package llmjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type classification struct {
	PrimaryCategory string   `json:"primary_category"`
	Tags            []string `json:"tags"`
	Confidence      int      `json:"confidence"`
}

func TestExtractPlainObject(t *testing.T) {
	var out classification
	err := ExtractObject(`{"primary_category": "time_management", "tags": ["meetings"], "confidence": 85}`, &out)
	require.NoError(t, err)
	require.Equal(t, "time_management", out.PrimaryCategory)
	require.Equal(t, 85, out.Confidence)
}

func TestExtractFencedObject(t *testing.T) {
	raw := "Here is the classification:\n```json\n{\"primary_category\": \"working_conditions\", \"confidence\": 70}\n```\nHope that helps!"
	var out classification
	require.NoError(t, ExtractObject(raw, &out))
	require.Equal(t, "working_conditions", out.PrimaryCategory)
}

func TestExtractUnclosedFence(t *testing.T) {
	raw := "```json\n{\"primary_category\": \"work_organization\", \"confidence\": 60}"
	var out classification
	require.NoError(t, ExtractObject(raw, &out))
	require.Equal(t, "work_organization", out.PrimaryCategory)
}

func TestExtractTrailingComma(t *testing.T) {
	raw := `{"primary_category": "integrated_training", "tags": ["skills",], "confidence": 90,}`
	var out classification
	require.NoError(t, ExtractObject(raw, &out))
	require.Equal(t, []string{"skills"}, out.Tags)
	require.Equal(t, 90, out.Confidence)
}

func TestExtractObjectBuriedInProse(t *testing.T) {
	raw := `Sure! Based on the note, I classified it as follows: {"primary_category": "strategic_implementation", "confidence": 55} Let me know if you need anything else.`
	var out classification
	require.NoError(t, ExtractObject(raw, &out))
	require.Equal(t, "strategic_implementation", out.PrimaryCategory)
}

func TestExtractBracesInsideStrings(t *testing.T) {
	raw := `{"primary_category": "time_management", "tags": ["loops {and} braces"], "confidence": 40}`
	var out classification
	require.NoError(t, ExtractObject(raw, &out))
	require.Equal(t, []string{"loops {and} braces"}, out.Tags)
}

func TestExtractSingleQuotedPseudoJSON(t *testing.T) {
	raw := `{'primary_category': 'communication_coordination_cooperation', 'tags': ['silos'], 'confidence': 75}`
	var out classification
	require.NoError(t, ExtractObject(raw, &out))
	require.Equal(t, "communication_coordination_cooperation", out.PrimaryCategory)
	require.Equal(t, []string{"silos"}, out.Tags)
}

func TestExtractPythonLiterals(t *testing.T) {
	raw := `{"primary_category": "working_conditions", "secondary_category": None, "confidence": 65}`
	var out struct {
		PrimaryCategory   string  `json:"primary_category"`
		SecondaryCategory *string `json:"secondary_category"`
		Confidence        int     `json:"confidence"`
	}
	require.NoError(t, ExtractObject(raw, &out))
	require.Nil(t, out.SecondaryCategory)
	require.Equal(t, 65, out.Confidence)
}

func TestExtractNoObject(t *testing.T) {
	var out classification
	require.ErrorIs(t, ExtractObject("I cannot classify this note.", &out), ErrNoObject)
	require.ErrorIs(t, ExtractObject("", &out), ErrNoObject)
}

func TestCleanPrefersFenceBody(t *testing.T) {
	raw := "noise before\n```json\n{\"a\": 1}\n```\nnoise after"
	require.Equal(t, `{"a": 1}`, Clean(raw))
}
