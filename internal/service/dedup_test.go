package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"church_sync/internal/domain"
)

func sermonKey(s domain.Sermon) string { return s.YoutubeURL }

func TestFilterNew(t *testing.T) {
	candidates := []domain.Sermon{
		{YoutubeURL: "https://www.youtube.com/watch?v=aaaaaaaaaaa"},
		{YoutubeURL: "https://www.youtube.com/watch?v=bbbbbbbbbbb"},
		{YoutubeURL: "https://www.youtube.com/watch?v=ccccccccccc"},
	}
	existing := map[string]struct{}{
		"https://www.youtube.com/watch?v=bbbbbbbbbbb": {},
	}

	got := filterNew(candidates, existing, sermonKey)

	assert.Len(t, got, 2)
	assert.Equal(t, candidates[0], got[0])
	assert.Equal(t, candidates[2], got[1])
}

func TestFilterNew_Idempotent(t *testing.T) {
	candidates := []domain.Sermon{
		{YoutubeURL: "https://www.youtube.com/watch?v=aaaaaaaaaaa"},
		{YoutubeURL: "https://www.youtube.com/watch?v=bbbbbbbbbbb"},
	}
	existing := map[string]struct{}{
		"https://www.youtube.com/watch?v=aaaaaaaaaaa": {},
	}

	once := filterNew(candidates, existing, sermonKey)
	twice := filterNew(once, existing, sermonKey)

	assert.Equal(t, once, twice)
}

func TestFilterNew_AllExisting(t *testing.T) {
	candidates := []domain.Sermon{
		{YoutubeURL: "https://www.youtube.com/watch?v=aaaaaaaaaaa"},
	}
	existing := map[string]struct{}{
		"https://www.youtube.com/watch?v=aaaaaaaaaaa": {},
	}

	assert.Empty(t, filterNew(candidates, existing, sermonKey))
}

func TestFilterNew_EmptyInputs(t *testing.T) {
	assert.Empty(t, filterNew(nil, map[string]struct{}{}, sermonKey))
	assert.Empty(t, filterNew([]domain.Sermon{}, nil, sermonKey))
}

func TestFilterNew_DropsEmptyIdentifiers(t *testing.T) {
	candidates := []domain.Bulletin{
		{Title: "manual entry"},
		{Title: "1123_주일주보", DriveFileID: ptr("file-1")},
	}

	got := filterNew(candidates, map[string]struct{}{}, func(b domain.Bulletin) string {
		if b.DriveFileID == nil {
			return ""
		}
		return *b.DriveFileID
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "1123_주일주보", got[0].Title)
}

func ptr[T any](v T) *T { return &v }
