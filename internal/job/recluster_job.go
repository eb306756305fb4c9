package job

import (
	"context"

	"github.com/hakimdiab/seamnote/internal/service"
)

// ReclusterJob refreshes the cross-session cluster snapshot nightly.
type ReclusterJob struct {
	clusters *service.ClusterService
}

func NewReclusterJob(clusters *service.ClusterService) *ReclusterJob {
	return &ReclusterJob{clusters: clusters}
}

func (j *ReclusterJob) Name() string {
	return "recluster"
}

func (j *ReclusterJob) Run(ctx context.Context) error {
	if j.clusters == nil {
		return nil
	}
	_, _, err := j.clusters.ClusterAll(ctx)
	return err
}
