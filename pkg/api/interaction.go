package api

// ReviewKind discriminates song and album reviews
type ReviewKind string

const (
	ReviewKindSong  ReviewKind = "SONG"
	ReviewKindAlbum ReviewKind = "ALBUM"
)

// Review is a song or album review. Kind tells which of SongID/AlbumID
// is meaningful; consumers must switch on Kind rather than probe fields.
type Review struct {
	ReviewID    int64      `json:"reviewId"`
	Kind        ReviewKind `json:"kind"`
	SongID      int64      `json:"songId,omitempty"`
	AlbumID     int64      `json:"albumId,omitempty"`
	Rating      int        `json:"rating"` // 1..5
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date"`
	Active      bool       `json:"active"`
	UserID      int64      `json:"userId"`
	Username    string     `json:"username,omitempty"`
}

// CreateReviewRequest is the payload for creating a song or album review
type CreateReviewRequest struct {
	Rating      int    `json:"rating"`
	Description string `json:"description,omitempty"`
}

// Comment on a review
type Comment struct {
	CommentID int64  `json:"commentId"`
	ReviewID  int64  `json:"reviewId"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	Active    bool   `json:"active"`
}

// CommentRequest is the payload for creating a comment
type CommentRequest struct {
	Text string `json:"text"`
}

// ReactionType enumerates the supported reactions
type ReactionType string

const (
	ReactionLike    ReactionType = "LIKE"
	ReactionLove    ReactionType = "LOVE"
	ReactionWow     ReactionType = "WOW"
	ReactionDislike ReactionType = "DISLIKE"
)

// ReactedType tells what kind of entity a reaction targets
type ReactedType string

const (
	ReactedReview  ReactedType = "REVIEW"
	ReactedComment ReactedType = "COMMENT"
)

// Reaction as returned by the reaction endpoints
type Reaction struct {
	ReactionID   int64        `json:"reactionId"`
	UserID       int64        `json:"userId"`
	Username     string       `json:"username"`
	ReactionType ReactionType `json:"reactionType"`
	ReactedType  ReactedType  `json:"reactedType"`
	ReactedID    int64        `json:"reactedId"`
	CreatedAt    string       `json:"createdAt,omitempty"`
}

// ReactionRequest is the payload for creating or replacing a reaction
type ReactionRequest struct {
	ReactionType ReactionType `json:"reactionType"`
	ReactedType  ReactedType  `json:"reactedType"`
	ReactedID    int64        `json:"reactedId"`
}
