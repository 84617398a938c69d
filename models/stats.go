package models

type Stats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalContests  int64 `json:"total_contests"`
	TotalJoined    int64 `json:"total_joined"`
	TotalRosters   int64 `json:"total_rosters"`
	JoinsLast7Days int64 `json:"joins_last_7_days"`
}
