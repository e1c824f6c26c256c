package domain

// Suggestion 是搜索下拉里的一条建议。
type Suggestion struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	SecondaryLabel string `json:"secondaryLabel"`
	Kind           Kind   `json:"kind"`
	Year           int    `json:"year"`
	Poster         string `json:"poster,omitempty"`
}
