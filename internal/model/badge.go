package model

type Badge struct {
	Code        string `json:"code"`
	Category    string `json:"category"`
	Rarity      string `json:"rarity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AwardedAt   string `json:"awarded_at,omitempty"`
}

type GetMyBadgesRequest struct{}

type GetMyBadgesResponse struct {
	Badges []Badge `json:"badges"`
}

type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
