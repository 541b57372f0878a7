package model

type UserStatistic struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name,omitempty"`
	Value       int    `json:"value"`
	CurrentRank int    `json:"current_rank"`
}

type GetLeaderBoardRequest struct {
	Period string `json:"period"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetLeaderBoardResponse struct {
	Leaderboard []UserStatistic `json:"leaderboard"`
}
