package models

// Follow is a directed edge: the account wants the author's posts in its feed.
// The composite unique index keeps the edge set free of duplicates.
type Follow struct {
	BaseModel

	AccountID uint    `json:"account_id" gorm:"uniqueIndex:idx_follow_edge"`
	Account   Account `json:"account" gorm:"constraint:OnDelete:CASCADE"`

	AuthorID uint    `json:"author_id" gorm:"uniqueIndex:idx_follow_edge"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`
}
