package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"church_sync/internal/domain"
	"church_sync/internal/titledate"
)

// ListingService prepares content for the public pages. Sermons order by
// the date embedded in their titles, bulletins by the numeric title prefix;
// in both cases titles without a recognized date sort last.
type ListingService struct {
	sermons   SermonStore
	bulletins BulletinStore
}

func NewListingService(sermons SermonStore, bulletins BulletinStore) *ListingService {
	return &ListingService{
		sermons:   sermons,
		bulletins: bulletins,
	}
}

// ListSermons returns sermons newest-first by title date. A non-empty
// category keeps sermons whose label matches, or whose title contains the
// category's keyword (older rows predate consistent labels). limit > 0
// truncates the result; the home page shows three per category.
func (s *ListingService) ListSermons(ctx context.Context, category string, limit int) ([]domain.Sermon, error) {
	sermons, err := s.sermons.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sermons: %w", err)
	}

	if category != "" {
		keyword := categoryKeyword(category)
		filtered := sermons[:0]
		for _, sermon := range sermons {
			if sermon.Preacher == category ||
				(keyword != "" && strings.Contains(sermon.Title, keyword)) {
				filtered = append(filtered, sermon)
			}
		}
		sermons = filtered
	}

	sort.SliceStable(sermons, func(i, j int) bool {
		di, _ := titledate.FromTitle(sermons[i].Title)
		dj, _ := titledate.FromTitle(sermons[j].Title)
		return di.After(dj)
	})

	if limit > 0 && len(sermons) > limit {
		sermons = sermons[:limit]
	}

	return sermons, nil
}

// ListBulletins returns bulletins newest-first by the numeric title prefix.
func (s *ListingService) ListBulletins(ctx context.Context) ([]domain.Bulletin, error) {
	bulletins, err := s.bulletins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bulletins: %w", err)
	}

	sort.SliceStable(bulletins, func(i, j int) bool {
		return titledate.BulletinKey(bulletins[i].Title) > titledate.BulletinKey(bulletins[j].Title)
	})

	return bulletins, nil
}

// categoryKeyword maps a category label to the substring older titles used
// before labels were consistent ("주일설교" → "주일").
func categoryKeyword(category string) string {
	return strings.TrimSuffix(category, "설교")
}
