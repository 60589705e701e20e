package auth

import "strings"

// Claims representa la identidad que viaja en el token de sesión.
type Claims struct {
	Email string
	Name  string
}

// NormalizeEmail es la forma canónica con la que se firma, se guarda y se
// busca un email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
