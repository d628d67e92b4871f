package users

type User struct {
	UserName     string
	Name         string
	PasswordHash []byte
}
