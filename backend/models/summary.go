package models

type DSASummary struct {
	Total   int64 `json:"total"`
	Done    int64 `json:"done"`
	Revisit int64 `json:"revisit"`
}

type CSSummary struct {
	Total int64 `json:"total"`
	Done  int64 `json:"done"`
}

type HabitSummary struct {
	Days int64 `json:"days"`
}

// Summary is recomputed on every request and never stored.
type Summary struct {
	DSA      DSASummary   `json:"dsa"`
	CS       CSSummary    `json:"cs"`
	Exercise HabitSummary `json:"exercise"`
	Coding   HabitSummary `json:"coding"`
}
