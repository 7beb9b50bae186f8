package entity

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVO"
	UserInactive UserStatus = "INACTIVO"
)

// RoleAdmin marks accounts this panel must never deactivate.
const RoleAdmin = "ADMIN"

type User struct {
	ID       int64      `json:"id"`
	Name     string     `json:"nombre"`
	Surname  string     `json:"apellido"`
	Email    string     `json:"email"`
	Phone    string     `json:"telefono"`
	RoleName string     `json:"rolNombre"`
	Status   UserStatus `json:"estado"`
}

func (u *User) FullName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

func (u *User) IsAdmin() bool {
	return u.RoleName == RoleAdmin
}
