package client

// PublicMetrics mirrors the public_metrics object of the metrics API.
// Counters are pointers so that an absent field can be told apart from zero.
type PublicMetrics struct {
	FollowersCount *int64 `json:"followers_count,omitempty"`
	FollowingCount *int64 `json:"following_count,omitempty"`
	TweetCount     *int64 `json:"tweet_count,omitempty"`
	ListedCount    *int64 `json:"listed_count,omitempty"`
}

type UserData struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"name,omitempty"`
	Username      string         `json:"username,omitempty"`
	PublicMetrics *PublicMetrics `json:"public_metrics,omitempty"`
}

// UserResponse is the success body of the user-by-username endpoint.
// Raw keeps the body exactly as received.
type UserResponse struct {
	Data *UserData `json:"data,omitempty"`
	Raw  []byte    `json:"-"`
}

type whoAmIResponse struct {
	Name string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}
