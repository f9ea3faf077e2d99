package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	localCache "github.com/emberworks/quillfeed/pkg/internal/cache"
	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func GetAccountFollow(userID uint, authorID uint) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("account_id = ? AND author_id = ?", userID, authorID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %v", err)
	}
	return &follow, nil
}

func IsFollowing(userID uint, authorID uint) bool {
	follow, err := GetAccountFollow(userID, authorID)
	return err == nil && follow != nil
}

// FollowAccount records the edge. Following twice keeps a single edge and is
// not an error; following yourself is rejected outright.
func FollowAccount(user models.Account, target models.Account) (models.Follow, error) {
	if user.ID == target.ID {
		return models.Follow{}, fmt.Errorf("you cannot follow yourself")
	}

	if follow, err := GetAccountFollow(user.ID, target.ID); err != nil {
		return models.Follow{}, err
	} else if follow != nil {
		return *follow, nil
	}

	follow := models.Follow{
		AccountID: user.ID,
		AuthorID:  target.ID,
	}

	if err := database.C.Save(&follow).Error; err != nil {
		return follow, err
	}

	InvalidateFollowedAccounts(user.ID)
	return follow, nil
}

// UnfollowAccount removes the edge if there is one. Unfollowing someone you
// never followed is a no-op.
func UnfollowAccount(user models.Account, target models.Account) error {
	follow, err := GetAccountFollow(user.ID, target.ID)
	if err != nil {
		return err
	}
	if follow == nil {
		return nil
	}

	if err := database.C.Delete(follow).Error; err != nil {
		return err
	}

	InvalidateFollowedAccounts(user.ID)
	return nil
}

type followedAccountsState struct {
	Followed []uint
}

func followedAccountsCacheKey(userID uint) string {
	return fmt.Sprintf("followed-accounts-query#%d", userID)
}

// ListFollowedAccounts resolves the set of author ids the user follows.
// The set feeds the personalized feed scope, so it is cached briefly and
// invalidated whenever the user's edges change.
func ListFollowedAccounts(userID uint) ([]uint, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	statusCacheKey := followedAccountsCacheKey(userID)
	statusCache, err := marshal.Get(ctx, statusCacheKey, new(followedAccountsState))
	if err == nil {
		return statusCache.(*followedAccountsState).Followed, nil
	}

	var follows []models.Follow
	if err := database.C.Where("account_id = ?", userID).Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("unable to list follow edges: %v", err)
	}

	followed := lo.Map(follows, func(item models.Follow, _ int) uint {
		return item.AuthorID
	})

	_ = marshal.Set(
		ctx,
		statusCacheKey,
		followedAccountsState{Followed: followed},
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"followed-accounts-query", fmt.Sprintf("user#%d", userID)}),
	)
	localCache.R.Wait()

	return followed, nil
}

func InvalidateFollowedAccounts(userID uint) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	_ = marshal.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{fmt.Sprintf("user#%d", userID)}),
	)
	localCache.R.Wait()
}
