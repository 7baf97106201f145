package titledate

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  time.Time
		ok    bool
	}{
		{
			name:  "dotted date with korean suffix",
			title: "2025.11.23 주일설교",
			want:  time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date in the middle of the title",
			title: "위더처치 2024.01.07 새벽예배",
			want:  time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "first of several dates wins",
			title: "2023.12.31 송구영신 (재방송 2024.01.01)",
			want:  time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "no date", title: "행사 안내"},
		{name: "empty title", title: ""},
		{name: "dashes not recognized", title: "2025-11-23 주일설교"},
		{name: "bare digit run not recognized", title: "20251123 주일설교"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTitle(tt.title)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "2025-11-23", DisplayDate("2025.11.23 주일설교"))
	assert.Equal(t, "", DisplayDate("행사 안내"))
	assert.Equal(t, "", DisplayDate(""))
}

func TestBulletinKey(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
	}{
		{name: "four digit legacy prefix", title: "1123_주일주보", want: 20251123},
		{name: "six digit prefix", title: "260105_주일주보", want: 20260105},
		{name: "full eight digit prefix", title: "20251123 주보", want: 20251123},
		{name: "no digits", title: "행사 안내", want: 0},
		{name: "empty", title: "", want: 0},
		{name: "digits not leading", title: "주보 1123", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BulletinKey(tt.title))
		})
	}
}

func TestBulletinKeyOrdersUnmatchedLast(t *testing.T) {
	titles := []string{"행사 안내", "1123_주일주보", "260105_주일주보", "1116_주일주보"}

	sort.SliceStable(titles, func(i, j int) bool {
		return BulletinKey(titles[i]) > BulletinKey(titles[j])
	})

	assert.Equal(t, []string{"260105_주일주보", "1123_주일주보", "1116_주일주보", "행사 안내"}, titles)
}

func TestFromTitleOrdersUnmatchedLast(t *testing.T) {
	titles := []string{"행사 안내", "2025.11.23 주일설교", "2024.03.10 새벽예배"}

	sort.SliceStable(titles, func(i, j int) bool {
		di, _ := FromTitle(titles[i])
		dj, _ := FromTitle(titles[j])
		return di.After(dj)
	})

	assert.Equal(t, []string{"2025.11.23 주일설교", "2024.03.10 새벽예배", "행사 안내"}, titles)
}
