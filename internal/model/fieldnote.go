package model

// FieldNote is the processed record derived from one substantive participant
// turn. OriginalText is access-restricted audit material; AnonymizedText is
// the form exposed everywhere else. ClusterID and Embedding are assigned
// after creation by the clustering pipeline, everything else is write-once.
type FieldNote struct {
	ID                string    `json:"id" db:"id"`
	SessionID         string    `json:"session_id" db:"session_id"`
	OriginalText      string    `json:"-" db:"original_text"`
	AnonymizedText    string    `json:"anonymized_text" db:"anonymized_text"`
	PrimaryCategory   string    `json:"primary_category,omitempty" db:"primary_category"`
	SecondaryCategory string    `json:"secondary_category,omitempty" db:"secondary_category"`
	Tags              []string  `json:"tags" db:"-"`
	Confidence        int       `json:"confidence" db:"confidence"`
	ClusterID         *int      `json:"cluster_id,omitempty" db:"cluster_id"`
	Embedding         []float32 `json:"-" db:"-"`
	Language          string    `json:"language" db:"language"`
	Ctime             int64     `json:"ctime" db:"ctime"`
}

// Classification is the outcome of categorizing one anonymized note. A zero
// value (no categories, no tags, zero confidence) is the neutral record the
// categorizer falls back to when the oracle cannot be parsed.
type Classification struct {
	PrimaryCategory   string   `json:"primary_category"`
	SecondaryCategory string   `json:"secondary_category,omitempty"`
	Tags              []string `json:"tags"`
	Confidence        int      `json:"confidence"`
}

func (c Classification) Categorized() bool {
	return c.PrimaryCategory != ""
}
