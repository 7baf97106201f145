package drive

// fileListResponse is the subset of the Drive v3 files.list response this
// source reads.
type fileListResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Files         []file `json:"files"`
}

type file struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MimeType      string `json:"mimeType"`
	ThumbnailLink string `json:"thumbnailLink"`
	WebViewLink   string `json:"webViewLink"`
	CreatedTime   string `json:"createdTime"`
}
