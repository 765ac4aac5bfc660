package models

// CandidateRecord is one candidate extracted from the uploaded document.
// Only Score is guaranteed present and in range; every other field may be
// empty if the model could not determine it.
type CandidateRecord struct {
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience,omitempty"`
	Education       string   `json:"education,omitempty"`
	Score           int      `json:"score" validate:"min=0,max=100"`
	Role            string   `json:"role"`
	Summary         string   `json:"summary"`
}

// AnalysisResult is the validated output of one analysis run. Zero entries
// means the model found no candidates. Ordering is the model's emission
// order; ranking happens downstream in the leaderboard engine.
type AnalysisResult []CandidateRecord

// UploadedDocument holds the raw upload for the duration of one request.
// It is never persisted by the pipeline itself; the optional backup store
// is the only consumer of the raw bytes after extraction.
type UploadedDocument struct {
	Data     []byte
	MIMEType string
	Filename string
	Size     int64
}
