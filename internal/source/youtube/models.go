package youtube

// playlistItemsResponse is the subset of the YouTube Data API v3
// playlistItems.list response this source reads.
type playlistItemsResponse struct {
	NextPageToken string         `json:"nextPageToken"`
	Items         []playlistItem `json:"items"`
}

type playlistItem struct {
	Snippet snippet `json:"snippet"`
}

type snippet struct {
	Title       string     `json:"title"`
	PublishedAt string     `json:"publishedAt"`
	ResourceID  resourceID `json:"resourceId"`
	Thumbnails  thumbnails `json:"thumbnails"`
}

type resourceID struct {
	VideoID string `json:"videoId"`
}

type thumbnails struct {
	High    *thumbnail `json:"high"`
	Default *thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}
