package database

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Birthdate    string    `json:"birthdate"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func CreateUser(u *User) error {
	u.ID = uuid.New().String()
	_, err := DB.Exec(`
		INSERT INTO users (id, username, email, phone, birthdate, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.Email, u.Phone, u.Birthdate, u.PasswordHash)
	return err
}

func GetUserByEmail(email string) (*User, error) {
	u := &User{}
	err := DB.QueryRow(`
		SELECT id, username, email, phone, birthdate, password_hash, created_at
		FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Birthdate, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func EmailTaken(email string) (bool, error) {
	var n int
	if err := DB.QueryRow(`SELECT COUNT(1) FROM users WHERE email = $1`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
