package model

// ClusterRun snapshots one clustering execution. Group ids are small
// integers local to the run; they carry no meaning across runs.
type ClusterRun struct {
	ID           string `json:"id" db:"id"`
	RanAt        int64  `json:"ran_at" db:"ran_at"`
	SessionCount int    `json:"session_count" db:"session_count"`
	Result       string `json:"result" db:"result"`
}

type ClusterGroup struct {
	ClusterID      int      `json:"cluster_id"`
	Size           int      `json:"size"`
	Representative string   `json:"representative_text"`
	Category       string   `json:"category"`
	SampleTexts    []string `json:"sample_texts"`
}
