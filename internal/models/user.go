package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	JoinedAt     time.Time `json:"joinedAt"`
}

// UserFilter narrows the user listing. Zero values mean "no constraint".
type UserFilter struct {
	Role   string
	Search string
}

// UserUpdate carries the optional fields of a profile update. Nil means
// "leave unchanged". Password, when set, replaces the stored hash.
type UserUpdate struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

func (u UserUpdate) HasFields() bool {
	return u.Username != nil || u.Password != nil || u.FullName != nil || u.Email != nil || u.Role != nil
}
