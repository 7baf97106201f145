package domain

import "time"

// Sermon categories as they appear on the site. The column is free text;
// these are the two labels the sync pipeline assigns.
const (
	CategorySunday = "주일설교"
	CategoryDawn   = "새벽설교"
)

// Sermon is one video in the sermon gallery. YoutubeURL is the canonical
// external identifier: it is reconstructed from the video ID, unique across
// rows, and used for deduplication.
type Sermon struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	YoutubeURL   string    `db:"youtube_url"`
	VideoID      string    `db:"video_id"`
	ThumbnailURL *string   `db:"thumbnail_url"`
	Preacher     string    `db:"preacher"`
	PreachedAt   time.Time `db:"preached_at"`
	CreatedAt    time.Time `db:"created_at"`
}

// Bulletin is one news/bulletin entry. DriveFileID is the external
// identifier for rows that came from the Drive folder; it is empty for
// manually submitted entries and unique when present.
type Bulletin struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	ImageURL    *string   `db:"image_url"`
	LinkURL     *string   `db:"link_url"`
	DriveFileID *string   `db:"drive_file_id"`
	PublishedAt time.Time `db:"published_at"`
	CreatedAt   time.Time `db:"created_at"`
}

type SyncState struct {
	ID           int64     `db:"id"`
	SourceID     string    `db:"source_id"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	TotalSynced  int64     `db:"total_synced"`
}
