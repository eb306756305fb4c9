// Package cluster groups embedding vectors by agglomerative merging with
// average linkage over cosine distance. No library in our stack ships this
// algorithm, so it is implemented directly on slices.
package cluster

import (
	"math"
	"sort"
)

// DefaultThreshold is the cosine-distance cut below which clusters merge.
const DefaultThreshold = 0.5

// Group is one final cluster. Representative indexes the member closest to
// the group centroid; for a singleton it is the sole member.
type Group struct {
	Indices        []int
	Representative int
}

// Result labels every input vector. Labels are dense ints assigned by the
// order of each cluster's first member, so a rerun over the same input is
// deterministic.
type Result struct {
	Labels []int
	Groups map[int]Group
}

// Cluster merges the closest pair of clusters while their average cosine
// distance stays below threshold. Zero or one input returns the obvious
// degenerate result.
func Cluster(embeddings [][]float32, threshold float64) Result {
	n := len(embeddings)
	switch n {
	case 0:
		return Result{Labels: []int{}, Groups: map[int]Group{}}
	case 1:
		return Result{
			Labels: []int{0},
			Groups: map[int]Group{0: {Indices: []int{0}, Representative: 0}},
		}
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := cosineDistance(embeddings[i], embeddings[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	for len(clusters) > 1 {
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				d := averageLinkage(clusters[i], clusters[j], dist)
				if d < best {
					best = d
					bi, bj = i, j
				}
			}
		}
		if best >= threshold {
			break
		}
		clusters[bi] = append(clusters[bi], clusters[bj]...)
		clusters = append(clusters[:bj], clusters[bj+1:]...)
	}

	// Label by each cluster's earliest member so output order is stable.
	for _, c := range clusters {
		sort.Ints(c)
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i][0] < clusters[j][0]
	})

	labels := make([]int, n)
	groups := make(map[int]Group, len(clusters))
	for id, members := range clusters {
		for _, m := range members {
			labels[m] = id
		}
		groups[id] = Group{
			Indices:        members,
			Representative: representative(members, embeddings),
		}
	}
	return Result{Labels: labels, Groups: groups}
}

func averageLinkage(a, b []int, dist [][]float64) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			sum += dist[i][j]
		}
	}
	return sum / float64(len(a)*len(b))
}

// representative picks the member with the smallest Euclidean distance to
// the cluster centroid, lowest index winning ties.
func representative(members []int, embeddings [][]float32) int {
	if len(members) == 1 {
		return members[0]
	}
	dim := len(embeddings[members[0]])
	centroid := make([]float64, dim)
	for _, m := range members {
		for d, v := range embeddings[m] {
			centroid[d] += float64(v)
		}
	}
	for d := range centroid {
		centroid[d] /= float64(len(members))
	}

	best := members[0]
	bestDist := math.Inf(1)
	for _, m := range members {
		var sum float64
		for d, v := range embeddings[m] {
			diff := float64(v) - centroid[d]
			sum += diff * diff
		}
		if sum < bestDist {
			bestDist = sum
			best = m
		}
	}
	return best
}

func cosineDistance(a, b []float32) float64 {
	// Vectors of unequal dimension cannot be compared; treating them as
	// maximally distant keeps a stray vector in its own singleton instead
	// of panicking.
	if len(a) != len(b) {
		return 1
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 1
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	// Float noise can push similarity a hair outside [-1, 1].
	if sim > 1 {
		sim = 1
	} else if sim < -1 {
		sim = -1
	}
	return 1 - sim
}
