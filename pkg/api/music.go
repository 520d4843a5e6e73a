package api

// Song as returned by the unified search and detail endpoints
type Song struct {
	SpotifyID   string   `json:"spotifyId"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists,omitempty"`
	AlbumName   string   `json:"albumName,omitempty"`
	DurationMS  int      `json:"durationMs,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	PreviewURL  string   `json:"previewUrl,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
}

// Album as returned by the unified search and detail endpoints
type Album struct {
	SpotifyID   string   `json:"spotifyId"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists,omitempty"`
	TotalTracks int      `json:"totalTracks,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
}

// Artist as returned by the unified search and detail endpoints
type Artist struct {
	SpotifyID string   `json:"spotifyId"`
	Name      string   `json:"name"`
	Genres    []string `json:"genres,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
}

// UnifiedSearchResponse groups the three paged result sets of one query
type UnifiedSearchResponse struct {
	Songs   PagedResponse[Song]   `json:"songs"`
	Artists PagedResponse[Artist] `json:"artists"`
	Albums  PagedResponse[Album]  `json:"albums"`
	Query   string                `json:"query"`
}
