package db_models

const RoleAdmin = "admin"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"not null;default:admin"`
}
