package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleProdEng Role = "prodeng"
	RoleOther   Role = "other"
)

// ParseRole принимает только роли из закрытого перечня.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleProdEng, RoleOther:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role"`
}
