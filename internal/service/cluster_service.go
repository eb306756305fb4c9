package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/hakimdiab/seamnote/internal/ai"
	"github.com/hakimdiab/seamnote/internal/cluster"
	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
	"github.com/hakimdiab/seamnote/internal/repo"
)

const embedBatchSize = 32
const maxSampleTexts = 5

// ClusterService groups field notes across sessions by semantic
// similarity, so recurring dysfunctions surface on the dashboard.
type ClusterService struct {
	notes     *repo.FieldNoteRepo
	runs      *repo.ClusterRunRepo
	embedder  ai.IEmbedOracle
	threshold float64
}

func NewClusterService(notes *repo.FieldNoteRepo, runs *repo.ClusterRunRepo, embedder ai.IEmbedOracle, threshold float64) *ClusterService {
	if threshold <= 0 {
		threshold = cluster.DefaultThreshold
	}
	return &ClusterService{notes: notes, runs: runs, embedder: embedder, threshold: threshold}
}

// BackfillEmbeddings embeds notes that do not have a vector yet. Embedding
// failures propagate so the caller can retry later.
func (s *ClusterService) BackfillEmbeddings(ctx context.Context) (int, error) {
	logger := logutil.GetLogger(ctx)
	done := 0
	for {
		pending, err := s.notes.ListMissingEmbedding(ctx, embedBatchSize)
		if err != nil {
			return done, err
		}
		if len(pending) == 0 {
			return done, nil
		}
		texts := make([]string, 0, len(pending))
		for _, note := range pending {
			texts = append(texts, note.AnonymizedText)
		}
		vectors, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return done, err
		}
		for i, note := range pending {
			if err := s.notes.SetEmbedding(ctx, note.ID, vectors[i]); err != nil {
				return done, err
			}
			done++
		}
		logger.Debug("embedded field note batch", zap.Int("count", len(pending)))
		if len(pending) < embedBatchSize {
			return done, nil
		}
	}
}

// ClusterAll embeds any pending notes, clusters everything, persists the
// per-note assignments and records a run snapshot.
func (s *ClusterService) ClusterAll(ctx context.Context) (*model.ClusterRun, []model.ClusterGroup, error) {
	logger := logutil.GetLogger(ctx)
	if _, err := s.BackfillEmbeddings(ctx); err != nil {
		return nil, nil, err
	}

	all, err := s.notes.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	notes := make([]model.FieldNote, 0, len(all))
	for _, note := range all {
		if len(note.Embedding) > 0 {
			notes = append(notes, note)
		}
	}

	embeddings := make([][]float32, len(notes))
	for i := range notes {
		embeddings[i] = notes[i].Embedding
	}
	result := cluster.Cluster(embeddings, s.threshold)

	for i := range notes {
		label := result.Labels[i]
		if err := s.notes.SetClusterID(ctx, notes[i].ID, &label); err != nil {
			return nil, nil, err
		}
	}

	groups := buildGroups(notes, result)
	encoded, err := json.Marshal(groups)
	if err != nil {
		return nil, nil, err
	}
	run := &model.ClusterRun{
		ID:           newID(),
		RanAt:        time.Now().Unix(),
		SessionCount: countSessions(notes),
		Result:       string(encoded),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, nil, err
	}
	logger.Info("clustering run recorded",
		zap.Int("notes", len(notes)),
		zap.Int("groups", len(groups)))
	return run, groups, nil
}

// LatestGroups returns the group list of the most recent run.
func (s *ClusterService) LatestGroups(ctx context.Context) (*model.ClusterRun, []model.ClusterGroup, error) {
	run, err := s.runs.Latest(ctx)
	if err != nil {
		return nil, nil, err
	}
	var groups []model.ClusterGroup
	if err := json.Unmarshal([]byte(run.Result), &groups); err != nil {
		return nil, nil, errs.ErrInternal
	}
	return run, groups, nil
}

// buildGroups derives the dashboard view of each cluster: the category by
// majority vote over member notes, the centroid-nearest representative
// text, and the first few member texts as samples. Groups where no member
// was categorized are dropped. Output is sorted by size, largest first.
func buildGroups(notes []model.FieldNote, result cluster.Result) []model.ClusterGroup {
	groups := make([]model.ClusterGroup, 0, len(result.Groups))
	for id, group := range result.Groups {
		votes := map[string]int{}
		samples := make([]string, 0, maxSampleTexts)
		for _, idx := range group.Indices {
			note := notes[idx]
			if note.PrimaryCategory != "" {
				votes[note.PrimaryCategory]++
			}
			if len(samples) < maxSampleTexts {
				samples = append(samples, note.AnonymizedText)
			}
		}
		category := majority(votes)
		if category == "" {
			continue
		}
		groups = append(groups, model.ClusterGroup{
			ClusterID:      id,
			Size:           len(group.Indices),
			Representative: notes[group.Representative].AnonymizedText,
			Category:       category,
			SampleTexts:    samples,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Size != groups[j].Size {
			return groups[i].Size > groups[j].Size
		}
		return groups[i].ClusterID < groups[j].ClusterID
	})
	return groups
}

func majority(votes map[string]int) string {
	best := ""
	bestCount := 0
	keys := make([]string, 0, len(votes))
	for key := range votes {
		keys = append(keys, key)
	}
	// Deterministic tie-break.
	sort.Strings(keys)
	for _, key := range keys {
		if votes[key] > bestCount {
			best = key
			bestCount = votes[key]
		}
	}
	return best
}

func countSessions(notes []model.FieldNote) int {
	seen := map[string]bool{}
	for _, note := range notes {
		seen[note.SessionID] = true
	}
	return len(seen)
}
