package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema.
type User struct {
	ID             int64
	Username       string
	HashedPassword string // bcrypt hash, nunca plano en dominio después de persistir
	Role           string // admin, user
}
