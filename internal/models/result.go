package models

type AnalyzeResponse struct {
	Success  bool           `json:"success"`
	Analysis AnalysisResult `json:"analysis"`
	FileURL  *string        `json:"fileUrl"`
}

type LeaderboardRequest struct {
	Candidates AnalysisResult `json:"candidates"`
	TopN       int            `json:"topN"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
