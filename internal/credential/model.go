// File: internal/credential/model.go
package credential

import (
	"wedding_directory_backend/internal/common"
)

// Credential is a username/password-hash pair. Usernames are unique and
// compared case-sensitively.
type Credential struct {
	common.BaseModel
	Username     string `gorm:"type:text;not null;uniqueIndex:idx_logins_username" json:"username"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
}

// TableName keeps the collection name used by the directory since its first release.
func (Credential) TableName() string {
	return "logins"
}

// Sanitize removes the hash so the value can leave the package.
func (c *Credential) Sanitize() {
	c.PasswordHash = ""
}
