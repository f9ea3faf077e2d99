package services

import (
	"errors"

	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// ErrPageOutOfRange is returned for page numbers past the end of the scope.
// Overflow is an error here, never a silent clamp to the last page.
var ErrPageOutOfRange = errors.New("page number is out of range")

const DefaultFeedPageSize = 10

type FeedPage struct {
	Items       []*models.Post `json:"items"`
	TotalCount  int64          `json:"total_count"`
	PageNumber  int            `json:"page_number"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

func FeedPageSize() int {
	if size := viper.GetInt("feed.page_size"); size > 0 {
		return size
	}
	return DefaultFeedPageSize
}

// PaginateFeed splits the scoped feed into fixed-size pages. Pages are
// 1-indexed; page 1 of an empty scope succeeds with zero items.
func PaginateFeed(tx *gorm.DB, page int) (FeedPage, error) {
	out := FeedPage{PageNumber: page}
	if page < 1 {
		return out, ErrPageOutOfRange
	}

	size := FeedPageSize()

	count, err := CountFeed(tx)
	if err != nil {
		return out, err
	}
	out.TotalCount = count

	lastPage := int((count + int64(size) - 1) / int64(size))
	if lastPage == 0 {
		lastPage = 1
	}
	if page > lastPage {
		return out, ErrPageOutOfRange
	}

	items, err := ListFeed(tx, size, (page-1)*size)
	if err != nil {
		return out, err
	}

	out.Items = items
	out.HasNext = page < lastPage
	out.HasPrevious = page > 1

	return out, nil
}
