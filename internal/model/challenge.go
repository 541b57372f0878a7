package model

type JoinChallengeRequest struct {
	ChallengeCode string `json:"challenge_code"`
}

type JoinChallengeResponse struct {
	ID          string `json:"id"`
	TargetEndAt string `json:"target_end_at,omitempty"`
}

type AbandonChallengeRequest struct {
	ID string `json:"id"`
}

type AbandonChallengeResponse struct{}

type Challenge struct {
	Code         string `json:"code"`
	Domain       string `json:"domain"`
	Difficulty   string `json:"difficulty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	XPReward     int64  `json:"xp_reward"`
	DurationDays int    `json:"duration_days,omitempty"`
}

type GetListChallengeRequest struct {
	Domain string `json:"domain"`
}

type GetListChallengeResponse struct {
	Challenges []Challenge `json:"challenges"`
}

type UserChallenge struct {
	ID            string `json:"id"`
	ChallengeCode string `json:"challenge_code"`
	Domain        string `json:"domain"`
	Status        string `json:"status"`
	Progress      int    `json:"progress"`
	JoinedAt      string `json:"joined_at"`
	TargetEndAt   string `json:"target_end_at,omitempty"`
	CompletedAt   string `json:"completed_at,omitempty"`
}

type GetMyChallengesRequest struct {
	Status string `json:"status"`
}

type GetMyChallengesResponse struct {
	Challenges []UserChallenge `json:"challenges"`
}
