// Package api is the HTTP client for the Echoed backend. All
// authenticated traffic goes through the transport.Authorizer injected
// via WithHTTPClient; a bare Client doubles as the Refresher for it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

// Client is the HTTP client for the Echoed REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, typically to
// install the token-refreshing transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClientID sets the install identifier sent as X-Client-Id
func WithClientID(id string) Option {
	return func(c *Client) {
		c.clientID = id
	}
}

// NewClient creates a new API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login authenticates with email/username and password
func (c *Client) Login(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
	var resp pkgapi.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req pkgapi.SignupRequest) (*pkgapi.AuthResponse, error) {
	var resp pkgapi.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Refresh exchanges the refresh token for a new access token. It
// satisfies transport.Refresher, so it must be called on a Client
// without the Authorizer installed.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*pkgapi.AuthResponse, error) {
	var resp pkgapi.AuthResponse
	req := pkgapi.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// ChangePassword changes the current user's password
func (c *Client) ChangePassword(ctx context.Context, req pkgapi.ChangePasswordRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/users/me/password", req, nil); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}

// Me fetches the profile of the authenticated user
func (c *Client) Me(ctx context.Context) (*pkgapi.UserProfile, error) {
	var resp pkgapi.UserProfile
	if err := c.doRequest(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// UserByUsername fetches a user profile by username
func (c *Client) UserByUsername(ctx context.Context, username string) (*pkgapi.UserProfile, error) {
	var resp pkgapi.UserProfile
	path := "/users/" + url.PathEscape(username)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}

// UserStats fetches a user's activity statistics
func (c *Client) UserStats(ctx context.Context, username string) (*pkgapi.UserStats, error) {
	var resp pkgapi.UserStats
	path := "/users/" + url.PathEscape(username) + "/stats"
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get user stats request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile updates editable fields of the current user's profile
func (c *Client) UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.UserProfile, error) {
	var resp pkgapi.UserProfile
	if err := c.doRequest(ctx, http.MethodPatch, "/users/me", req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// UnifiedSearch searches songs, artists and albums in one call
func (c *Client) UnifiedSearch(ctx context.Context, query string, page, size int) (*pkgapi.UnifiedSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var resp pkgapi.UnifiedSearchResponse
	path := "/spotify/unified-search?" + params.Encode()
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return &resp, nil
}

// CreateSongReview posts a review for a song
func (c *Client) CreateSongReview(ctx context.Context, spotifyID string, req pkgapi.CreateReviewRequest) (*pkgapi.Review, error) {
	var resp pkgapi.Review
	path := "/reviews/songs?spotifyId=" + url.QueryEscape(spotifyID)
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("create song review request failed: %w", err)
	}
	return &resp, nil
}

// CreateAlbumReview posts a review for an album
func (c *Client) CreateAlbumReview(ctx context.Context, spotifyID string, req pkgapi.CreateReviewRequest) (*pkgapi.Review, error) {
	var resp pkgapi.Review
	path := "/reviews/albums?spotifyId=" + url.QueryEscape(spotifyID)
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("create album review request failed: %w", err)
	}
	return &resp, nil
}

// SongReviews fetches reviews for a song
func (c *Client) SongReviews(ctx context.Context, spotifyID string, page, size int) (*pkgapi.PagedResponse[pkgapi.Review], error) {
	return c.reviews(ctx, "/reviews/songs/"+url.PathEscape(spotifyID), page, size)
}

// AlbumReviews fetches reviews for an album
func (c *Client) AlbumReviews(ctx context.Context, spotifyID string, page, size int) (*pkgapi.PagedResponse[pkgapi.Review], error) {
	return c.reviews(ctx, "/reviews/albums/"+url.PathEscape(spotifyID), page, size)
}

func (c *Client) reviews(ctx context.Context, path string, page, size int) (*pkgapi.PagedResponse[pkgapi.Review], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var resp pkgapi.PagedResponse[pkgapi.Review]
	if err := c.doRequest(ctx, http.MethodGet, path+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("list reviews request failed: %w", err)
	}
	return &resp, nil
}

// DeleteReview deletes a review by id
func (c *Client) DeleteReview(ctx context.Context, reviewID int64) error {
	path := fmt.Sprintf("/reviews/%d", reviewID)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete review request failed: %w", err)
	}
	return nil
}

// CreateComment posts a comment on a review
func (c *Client) CreateComment(ctx context.Context, reviewID int64, req pkgapi.CommentRequest) (*pkgapi.Comment, error) {
	var resp pkgapi.Comment
	path := fmt.Sprintf("/reviews/%d/comments", reviewID)
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("create comment request failed: %w", err)
	}
	return &resp, nil
}

// ReviewComments fetches the comments of a review
func (c *Client) ReviewComments(ctx context.Context, reviewID int64, page, size int) (*pkgapi.PagedResponse[pkgapi.Comment], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var resp pkgapi.PagedResponse[pkgapi.Comment]
	path := fmt.Sprintf("/reviews/%d/comments?%s", reviewID, params.Encode())
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list comments request failed: %w", err)
	}
	return &resp, nil
}

// DeleteComment deletes a comment by id
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	path := fmt.Sprintf("/comments/%d", commentID)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete comment request failed: %w", err)
	}
	return nil
}

// React creates or replaces a reaction on a review or comment
func (c *Client) React(ctx context.Context, req pkgapi.ReactionRequest) (*pkgapi.Reaction, error) {
	var resp pkgapi.Reaction
	if err := c.doRequest(ctx, http.MethodPost, "/reactions", req, &resp); err != nil {
		return nil, fmt.Errorf("reaction request failed: %w", err)
	}
	return &resp, nil
}

// DeleteReaction removes a reaction by id
func (c *Client) DeleteReaction(ctx context.Context, reactionID int64) error {
	path := fmt.Sprintf("/reactions/%d", reactionID)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete reaction request failed: %w", err)
	}
	return nil
}

// ListUsers fetches the admin user listing
func (c *Client) ListUsers(ctx context.Context, page, size int) (*pkgapi.PagedResponse[pkgapi.UserSummary], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var resp pkgapi.PagedResponse[pkgapi.UserSummary]
	if err := c.doRequest(ctx, http.MethodGet, "/admin/users?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	return &resp, nil
}

// SetUserActive bans or reactivates a user (admin)
func (c *Client) SetUserActive(ctx context.Context, userID int64, active bool) error {
	path := fmt.Sprintf("/admin/users/%d/active", userID)
	req := pkgapi.SetUserActiveRequest{Active: active}
	if err := c.doRequest(ctx, http.MethodPut, path, req, nil); err != nil {
		return fmt.Errorf("set user active request failed: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request against the backend
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	u := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var errResp pkgapi.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			statusErr.Message = errResp.Message
		} else if err == nil && errResp.Error != "" {
			statusErr.Message = errResp.Error
		} else {
			statusErr.Message = string(respBody)
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
