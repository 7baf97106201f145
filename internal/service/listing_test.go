package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"church_sync/internal/domain"
	"church_sync/internal/service/mocks"
)

type ListingTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sermons   *mocks.MockSermonStore
	bulletins *mocks.MockBulletinStore

	service *ListingService
}

func (s *ListingTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sermons = mocks.NewMockSermonStore(s.ctrl)
	s.bulletins = mocks.NewMockBulletinStore(s.ctrl)
	s.service = NewListingService(s.sermons, s.bulletins)
}

func (s *ListingTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestListingTestSuite(t *testing.T) {
	suite.Run(t, new(ListingTestSuite))
}

func (s *ListingTestSuite) TestListSermons_OrdersByTitleDateNewestFirst() {
	ctx := context.Background()

	stored := []domain.Sermon{
		{ID: 1, Title: "2024.03.10 주일설교", Preacher: domain.CategorySunday},
		{ID: 2, Title: "행사 안내", Preacher: domain.CategorySunday},
		{ID: 3, Title: "2025.11.23 주일설교", Preacher: domain.CategorySunday},
	}

	s.sermons.EXPECT().List(ctx).Return(stored, nil)

	got, err := s.service.ListSermons(ctx, "", 0)

	s.NoError(err)
	s.Equal([]int64{3, 1, 2}, ids(got))
}

func (s *ListingTestSuite) TestListSermons_FiltersByCategoryOrTitleKeyword() {
	ctx := context.Background()

	stored := []domain.Sermon{
		{ID: 1, Title: "2025.11.23 주일설교", Preacher: domain.CategorySunday},
		{ID: 2, Title: "2025.11.20 새벽예배", Preacher: domain.CategoryDawn},
		// Old row without a label, matched by title keyword.
		{ID: 3, Title: "2024.01.07 주일예배", Preacher: ""},
	}

	s.sermons.EXPECT().List(ctx).Return(stored, nil)

	got, err := s.service.ListSermons(ctx, domain.CategorySunday, 0)

	s.NoError(err)
	s.Equal([]int64{1, 3}, ids(got))
}

func (s *ListingTestSuite) TestListSermons_Limit() {
	ctx := context.Background()

	stored := []domain.Sermon{
		{ID: 1, Title: "2025.11.09 주일설교", Preacher: domain.CategorySunday},
		{ID: 2, Title: "2025.11.16 주일설교", Preacher: domain.CategorySunday},
		{ID: 3, Title: "2025.11.23 주일설교", Preacher: domain.CategorySunday},
		{ID: 4, Title: "2025.11.02 주일설교", Preacher: domain.CategorySunday},
	}

	s.sermons.EXPECT().List(ctx).Return(stored, nil)

	got, err := s.service.ListSermons(ctx, domain.CategorySunday, 3)

	s.NoError(err)
	s.Equal([]int64{3, 2, 1}, ids(got))
}

func (s *ListingTestSuite) TestListBulletins_OrdersByTitlePrefix() {
	ctx := context.Background()

	stored := []domain.Bulletin{
		{ID: 1, Title: "1123_주일주보"},
		{ID: 2, Title: "행사 안내"},
		{ID: 3, Title: "260105_주일주보"},
		{ID: 4, Title: "1116_주일주보"},
	}

	s.bulletins.EXPECT().List(ctx).Return(stored, nil)

	got, err := s.service.ListBulletins(ctx)

	s.NoError(err)

	gotIDs := make([]int64, len(got))
	for i, b := range got {
		gotIDs[i] = b.ID
	}
	s.Equal([]int64{3, 1, 4, 2}, gotIDs)
}

func ids(sermons []domain.Sermon) []int64 {
	out := make([]int64, len(sermons))
	for i, s := range sermons {
		out[i] = s.ID
	}
	return out
}
