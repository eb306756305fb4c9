package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClusterEmptyInput(t *testing.T) {
	result := Cluster(nil, DefaultThreshold)
	require.Empty(t, result.Labels)
	require.Empty(t, result.Groups)
}

func TestClusterSingleInput(t *testing.T) {
	result := Cluster([][]float32{{1, 0, 0}}, DefaultThreshold)
	require.Equal(t, []int{0}, result.Labels)
	require.Len(t, result.Groups, 1)
	require.Equal(t, 0, result.Groups[0].Representative)
	require.Equal(t, []int{0}, result.Groups[0].Indices)
}

func TestClusterOrthogonalPairStaysApart(t *testing.T) {
	// Cosine distance between orthogonal vectors is 1.0, above threshold.
	result := Cluster([][]float32{{1, 0}, {0, 1}}, DefaultThreshold)
	require.Len(t, result.Groups, 2)
	require.NotEqual(t, result.Labels[0], result.Labels[1])
}

func TestClusterNearDuplicatesMerge(t *testing.T) {
	embeddings := [][]float32{
		{1, 0, 0},
		{0.99, 0.05, 0},
		{0, 0, 1},
	}
	result := Cluster(embeddings, DefaultThreshold)
	require.Len(t, result.Groups, 2)
	require.Equal(t, result.Labels[0], result.Labels[1])
	require.NotEqual(t, result.Labels[0], result.Labels[2])
}

func TestClusterThresholdMonotonicity(t *testing.T) {
	embeddings := [][]float32{
		{1, 0, 0},
		{0.8, 0.6, 0},
		{0, 1, 0},
		{0, 0.6, 0.8},
		{0, 0, 1},
	}
	prev := -1
	for _, threshold := range []float64{0.05, 0.2, 0.5, 0.9, 1.99} {
		result := Cluster(embeddings, threshold)
		if prev >= 0 {
			require.LessOrEqual(t, len(result.Groups), prev,
				"a looser threshold must never produce more clusters")
		}
		prev = len(result.Groups)
	}
}

func TestClusterLabelsAreDense(t *testing.T) {
	embeddings := [][]float32{
		{1, 0}, {0, 1}, {1, 0.01}, {0.01, 1},
	}
	result := Cluster(embeddings, DefaultThreshold)
	seen := map[int]bool{}
	for _, label := range result.Labels {
		require.GreaterOrEqual(t, label, 0)
		require.Less(t, label, len(result.Groups))
		seen[label] = true
	}
	require.Len(t, seen, len(result.Groups))
}

func TestClusterRepresentativeNearCentroid(t *testing.T) {
	// The middle vector sits between its two neighbors, so it is the
	// closest member to the centroid.
	embeddings := [][]float32{
		{1, 0, 0},
		{0.95, 0.1, 0},
		{0.9, 0.2, 0},
	}
	result := Cluster(embeddings, DefaultThreshold)
	require.Len(t, result.Groups, 1)
	require.Equal(t, 1, result.Groups[0].Representative)
}

func TestClusterDeterministic(t *testing.T) {
	embeddings := [][]float32{
		{1, 0}, {0.98, 0.1}, {0, 1}, {0.1, 0.99},
	}
	first := Cluster(embeddings, DefaultThreshold)
	second := Cluster(embeddings, DefaultThreshold)
	require.Equal(t, first.Labels, second.Labels)
}

func TestCosineDistanceZeroVector(t *testing.T) {
	require.Equal(t, 1.0, cosineDistance([]float32{0, 0}, []float32{1, 0}))
}

func TestClusterMismatchedDimensionIsolated(t *testing.T) {
	// A vector of a different dimension (e.g. stored under a previous
	// embedding model) stays a singleton rather than panicking.
	embeddings := [][]float32{
		{1, 0, 0},
		{0.99, 0.05, 0},
		{1, 0},
	}
	result := Cluster(embeddings, DefaultThreshold)
	require.Equal(t, result.Labels[0], result.Labels[1])
	require.NotEqual(t, result.Labels[0], result.Labels[2])
	require.Equal(t, []int{2}, result.Groups[result.Labels[2]].Indices)
}
