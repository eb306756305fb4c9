package job

import (
	"context"

	"github.com/hakimdiab/seamnote/internal/service"
)

// EmbeddingBackfillJob embeds field notes whose vector is still missing,
// typically because the embed oracle was down when the note was written.
type EmbeddingBackfillJob struct {
	clusters *service.ClusterService
}

func NewEmbeddingBackfillJob(clusters *service.ClusterService) *EmbeddingBackfillJob {
	return &EmbeddingBackfillJob{clusters: clusters}
}

func (j *EmbeddingBackfillJob) Name() string {
	return "embedding_backfill"
}

func (j *EmbeddingBackfillJob) Run(ctx context.Context) error {
	if j.clusters == nil {
		return nil
	}
	_, err := j.clusters.BackfillEmbeddings(ctx)
	return err
}
