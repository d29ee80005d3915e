package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/forwardpoint/backend/internal/db"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type UserRepo struct {
	db db.DB
}

type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	IsAdmin  bool   `db:"is_admin"`
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, username, password string, isAdmin bool) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO users (username, password, is_admin) VALUES ($1, $2, $3)",
		username, string(hashedPassword), isAdmin)
	return err
}

// Authenticate verifies the password and reports whether the user is an
// operator. Unknown user and wrong password are indistinguishable to the
// caller.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var user User
	err := r.db.Get(ctx, &user,
		"SELECT * FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrInvalidCredentials
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return false, ErrInvalidCredentials
	}
	return user.IsAdmin, nil
}
