package api

// UserProfile is the full profile of a user as served by /users endpoints
type UserProfile struct {
	UserID            int64    `json:"userId"`
	Username          string   `json:"username"`
	Active            bool     `json:"active"`
	Email             string   `json:"email"`
	Provider          string   `json:"provider"`
	ProfilePictureURL string   `json:"profilePictureUrl,omitempty"`
	Biography         string   `json:"biography,omitempty"`
	Roles             []string `json:"roles"`
	Permissions       []string `json:"permissions"`
}

// UserSummary is the compact listing row used by the admin dashboard
type UserSummary struct {
	UserID            int64    `json:"userId"`
	Username          string   `json:"username"`
	Email             string   `json:"email"`
	ProfilePictureURL string   `json:"profilePictureUrl,omitempty"`
	Active            bool     `json:"active"`
	Roles             []string `json:"roles"`
}

// UpdateProfileRequest carries the editable profile fields.
// Nil fields are left unchanged by the server.
type UpdateProfileRequest struct {
	Username          *string `json:"username,omitempty"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
	Biography         *string `json:"biography,omitempty"`
}

// UserStats aggregates a user's review, comment and reaction activity
type UserStats struct {
	ID                int64  `json:"id"`
	Username          string `json:"username"`
	Biography         string `json:"biography,omitempty"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	JoinDate          string `json:"joinDate"`

	TotalAlbumReviews int     `json:"totalAlbumReviews"`
	TotalSongReviews  int     `json:"totalSongReviews"`
	TotalReviews      int     `json:"totalReviews"`
	AverageRating     float64 `json:"averageRating"`

	TotalComments  int `json:"totalComments"`
	TotalReactions int `json:"totalReactions"`

	ReviewsThisMonth   int `json:"reviewsThisMonth"`
	CommentsThisMonth  int `json:"commentsThisMonth"`
	ReactionsThisMonth int `json:"reactionsThisMonth"`
}

// SetUserActiveRequest is the admin payload for banning or reactivating a user
type SetUserActiveRequest struct {
	Active bool `json:"active"`
}
