package domain

import "time"

type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// IsManager reports whether the user receives alerts for every task.
func (u *User) IsManager() bool {
	for _, r := range ManagerRoles {
		if u.Role == r {
			return true
		}
	}
	return false
}
