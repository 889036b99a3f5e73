package models

type DashboardResponse struct {
	Stats    Stats      `json:"stats"`
	TopPages []PageStat `json:"topPages"`
}

type Stats struct {
	Events     int `json:"events"`
	Posts      int `json:"posts"`
	Media      int `json:"media"`
	Categories int `json:"categories"`
}

type PageStat struct {
	Page            string  `json:"page"`
	Views           int64   `json:"views"`
	PopularityScore float64 `json:"popularityScore"`
}
