package persistence

import (
	"context"
	"database/sql"

	"mytube-channels/domain/model"
	"mytube-channels/domain/repository"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, user_name, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.UserName, &u.CreatedAt)
	return u, err
}
