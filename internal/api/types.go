package api

// RecordItem describes a normalized record in a transport-friendly format.
type RecordItem struct {
	ID              string `json:"id"`
	AudioURL        string `json:"audio_url"`
	FinalCaption    string `json:"final_caption"`
	ASR             string `json:"asr"`
	FinalCaptionASR string `json:"final_caption_asr"`
	JSON            string `json:"json"`
}

// RecordListResponse wraps one page of records for API responses.
type RecordListResponse struct {
	Items    []RecordItem `json:"items"`
	Total    int          `json:"total"`
	Matched  int          `json:"matched"`
	Page     int          `json:"page"`
	Pages    int          `json:"pages"`
	PageSize int          `json:"page_size"`
	Query    string       `json:"query"`
	Field    string       `json:"field"`
	Error    string       `json:"error,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
