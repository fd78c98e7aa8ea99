package auth

import (
	"fmt"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword - создает bcrypt-хеш пароля (соль и cost внутри хеша)
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	return string(hashedPassword), nil
}

// CheckPassword - сверяет пароль с хешем; на битом хеше просто false
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
