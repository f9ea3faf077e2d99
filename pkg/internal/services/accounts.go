package services

import (
	"fmt"
	"regexp"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

var accountNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func NewAccount(account models.Account) (models.Account, error) {
	if !accountNamePattern.MatchString(account.Name) {
		return account, fmt.Errorf("invalid account name, allowed characters are a-z, 0-9, dash and underscore")
	}

	var count int64
	if err := database.C.
		Model(&models.Account{}).
		Where("name = ?", account.Name).
		Count(&count).Error; err != nil {
		return account, fmt.Errorf("unable to count existing accounts: %v", err)
	}
	if count > 0 {
		return account, fmt.Errorf("account name was taken")
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

// DeleteAccountResources removes the account record and everything hanging off it
// in one transaction. Invoked from the admin surface when the upstream identity
// provider reports a deletion.
func DeleteAccountResources(id uint) error {
	tx := database.C.Begin()

	tx.Delete(&models.Comment{}, "author_id = ?", id)
	tx.Delete(&models.Comment{},
		"post_id IN (?)",
		tx.Model(&models.Post{}).Select("id").Where("author_id = ?", id),
	)
	tx.Delete(&models.Post{}, "author_id = ?", id)
	tx.Delete(&models.Follow{}, "account_id = ? OR author_id = ?", id, id)
	tx.Delete(&models.Account{}, "id = ?", id)

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("unable to delete account resources: %v", err)
	}

	InvalidateFollowedAccounts(id)
	log.Info().Uint("account", id).Msg("Deleted account with its resources.")
	return nil
}
