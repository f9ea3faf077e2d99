package models

// Account is the local mirror of an identity from the upstream auth provider.
// Authentication itself never happens here; the gateway hands us the actor id.
type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex" validate:"lowercase,alphanum"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	Banner      string `json:"banner"`

	Posts []Post `json:"posts" gorm:"foreignKey:AuthorID"`
}
