package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/hakimdiab/seamnote/internal/ai"
	"github.com/hakimdiab/seamnote/internal/llmjson"
	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/seam"
)

const defaultConfidence = 50

// The prompt asks for 1 to 3 tags; anything past that is discarded.
const maxTags = 3

// Older prompt revisions used a different key for the communication
// category. Oracle output is normalized to the canonical key here.
var categoryAliases = map[string]string{
	"communication_3cs": seam.KeyCommunication3Cs,
}

// CategorizerService assigns taxonomy categories to anonymized notes. It
// never returns an error: any failure degrades to the neutral record so
// the interview flow is unaffected.
type CategorizerService struct {
	oracle ai.IChatOracle
	cache  *expirable.LRU[string, model.Classification]
}

func NewCategorizerService(oracle ai.IChatOracle) *CategorizerService {
	cache := expirable.NewLRU[string, model.Classification](4096, nil, 2*time.Hour)
	return &CategorizerService{oracle: oracle, cache: cache}
}

type rawClassification struct {
	PrimaryCategory   string   `json:"primary_category"`
	SecondaryCategory string   `json:"secondary_category"`
	Tags              []string `json:"tags"`
	Confidence        *int     `json:"confidence"`
}

func (s *CategorizerService) Categorize(ctx context.Context, anonymizedText string) model.Classification {
	logger := logutil.GetLogger(ctx)
	key := cacheKey(anonymizedText)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: seam.CategorizationSystemPrompt()},
		{Role: ai.RoleUser, Content: fmt.Sprintf("Classify this field note:\n\n%q", anonymizedText)},
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		reply, err := s.oracle.Chat(ctx, messages)
		if err != nil {
			lastErr = err
			continue
		}
		var raw rawClassification
		if err := llmjson.ExtractObject(reply, &raw); err != nil {
			lastErr = err
			continue
		}
		result, err := normalize(raw)
		if err != nil {
			lastErr = err
			continue
		}
		s.cache.Add(key, result)
		return result
	}

	logger.Warn("categorization failed, recording neutral classification", zap.Error(lastErr))
	return model.Classification{Tags: []string{}}
}

func normalize(raw rawClassification) (model.Classification, error) {
	primary, err := normalizeCategory(raw.PrimaryCategory)
	if err != nil {
		return model.Classification{}, err
	}
	if primary == "" {
		return model.Classification{}, fmt.Errorf("no primary category in response")
	}
	// An unusable secondary is dropped, not fatal.
	secondary, err := normalizeCategory(raw.SecondaryCategory)
	if err != nil || secondary == primary {
		secondary = ""
	}

	tags := make([]string, 0, len(raw.Tags))
	for _, tag := range raw.Tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	confidence := defaultConfidence
	if raw.Confidence != nil {
		confidence = *raw.Confidence
	}
	if confidence < 0 {
		confidence = 0
	} else if confidence > 100 {
		confidence = 100
	}

	return model.Classification{
		PrimaryCategory:   primary,
		SecondaryCategory: secondary,
		Tags:              tags,
		Confidence:        confidence,
	}, nil
}

func normalizeCategory(key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", nil
	}
	if canonical, ok := categoryAliases[key]; ok {
		key = canonical
	}
	if seam.CategoryByKey(key) == nil {
		return "", fmt.Errorf("unknown category: %s", key)
	}
	return key, nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
