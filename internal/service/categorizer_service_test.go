package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hakimdiab/seamnote/internal/ai"
	"github.com/hakimdiab/seamnote/internal/seam"
)

type fakeChatOracle struct {
	replies []string
	errs    []error
	calls   int
	last    []ai.Message
}

func (f *fakeChatOracle) Chat(_ context.Context, messages []ai.Message) (string, error) {
	f.last = messages
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	reply := ""
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return reply, err
}

func TestCategorizeValidResponse(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "time_management", "secondary_category": null, "tags": ["meetings", "interruptions"], "confidence": 85}`,
	}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "meetings consume the whole morning")
	require.Equal(t, seam.KeyTimeManagement, result.PrimaryCategory)
	require.Equal(t, []string{"meetings", "interruptions"}, result.Tags)
	require.Equal(t, 85, result.Confidence)
	require.True(t, result.Categorized())
}

func TestCategorizeRetriesOnce(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		"sorry, I cannot do that",
		`{"primary_category": "working_conditions", "confidence": 60}`,
	}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "the office is too loud to focus")
	require.Equal(t, 2, oracle.calls)
	require.Equal(t, seam.KeyWorkingConditions, result.PrimaryCategory)
}

func TestCategorizeNeutralRecordAfterTwoFailures(t *testing.T) {
	oracle := &fakeChatOracle{errs: []error{errors.New("down"), errors.New("down")}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "some note text")
	require.Equal(t, 2, oracle.calls)
	require.False(t, result.Categorized())
	require.Empty(t, result.PrimaryCategory)
	require.Zero(t, result.Confidence)
}

func TestCategorizeClampsConfidence(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "work_organization", "confidence": 190}`,
	}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "nobody knows who owns the handoff")
	require.Equal(t, 100, result.Confidence)
}

func TestCategorizeDefaultConfidence(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "integrated_training", "tags": ["onboarding"]}`,
	}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "new hires learn by trial and error")
	require.Equal(t, defaultConfidence, result.Confidence)
}

func TestCategorizeCapsTagsAtThree(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "time_management", "tags": ["meetings", "interruptions", "deadlines", "reporting", "overtime"], "confidence": 75}`,
	}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "too many things eat the day")
	require.Equal(t, []string{"meetings", "interruptions", "deadlines"}, result.Tags)
}

func TestCategorizeNormalizesAlias(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "communication_3cs", "confidence": 70}`,
	}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "departments never talk to each other")
	require.Equal(t, seam.KeyCommunication3Cs, result.PrimaryCategory)
}

func TestCategorizeRejectsUnknownCategory(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "made_up_category", "confidence": 70}`,
		`{"primary_category": "also_wrong", "confidence": 70}`,
	}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "something ambiguous")
	require.False(t, result.Categorized())
}

func TestCategorizeDropsSecondaryEqualToPrimary(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "time_management", "secondary_category": "time_management", "confidence": 50}`,
	}}
	s := NewCategorizerService(oracle)
	result := s.Categorize(context.Background(), "deadlines slip constantly around here")
	require.Empty(t, result.SecondaryCategory)
}

func TestCategorizeCachesResult(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "time_management", "confidence": 80}`,
	}}
	s := NewCategorizerService(oracle)
	text := "every urgent task preempts the planned ones"
	first := s.Categorize(context.Background(), text)
	second := s.Categorize(context.Background(), text)
	require.Equal(t, 1, oracle.calls)
	require.Equal(t, first, second)
}

func TestCategorizePromptCarriesTaxonomy(t *testing.T) {
	oracle := &fakeChatOracle{replies: []string{
		`{"primary_category": "time_management", "confidence": 80}`,
	}}
	s := NewCategorizerService(oracle)
	s.Categorize(context.Background(), "note")
	require.Len(t, oracle.last, 2)
	require.Equal(t, ai.RoleSystem, oracle.last[0].Role)
	for _, key := range seam.CategoryOrder {
		require.Contains(t, oracle.last[0].Content, key)
	}
	require.Contains(t, oracle.last[1].Content, "Classify this field note:")
}
