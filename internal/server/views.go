package server

import (
	"time"

	"church_sync/internal/domain"
	"church_sync/internal/titledate"
)

// sermonView is the listing shape the site renders: the stored row plus
// the display date normalized from the title.
type sermonView struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	YoutubeURL   string    `json:"youtube_url"`
	VideoID      string    `json:"video_id"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Preacher     string    `json:"preacher"`
	DisplayDate  string    `json:"display_date,omitempty"`
	PreachedAt   time.Time `json:"preached_at"`
}

func newSermonView(s domain.Sermon) sermonView {
	return sermonView{
		ID:           s.ID,
		Title:        s.Title,
		YoutubeURL:   s.YoutubeURL,
		VideoID:      s.VideoID,
		ThumbnailURL: s.ThumbnailURL,
		Preacher:     s.Preacher,
		DisplayDate:  titledate.DisplayDate(s.Title),
		PreachedAt:   s.PreachedAt,
	}
}

func sermonViews(sermons []domain.Sermon) []sermonView {
	views := make([]sermonView, len(sermons))
	for i, s := range sermons {
		views[i] = newSermonView(s)
	}
	return views
}
