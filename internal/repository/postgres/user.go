package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.NewUser) (model.User, error) {
	query := `INSERT INTO users AS u (username, email, hashed_password, role, avatar, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.HashedPassword, string(user.Role), user.Avatar, user.IsActive,
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`
	return r.getOne(ctx, "id", query, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE lower(u.username) = lower($1)`
	return r.getOne(ctx, "username", query, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE lower(u.email) = lower($1)`
	return r.getOne(ctx, "email", query, email)
}

func (r *UserRepository) UpdateByID(ctx context.Context, id int64, fields model.UserFields) (model.User, error) {
	a := args{}
	set, ok := buildUserUpdate(fields, &a)
	if !ok {
		return r.GetByID(ctx, id)
	}

	query := `UPDATE users AS u SET ` + set + ` WHERE u.id = ` + a.add(id) + ` RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, a...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) RemoveByID(ctx context.Context, id int64) (model.User, error) {
	query := `DELETE FROM users AS u WHERE u.id = $1 RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to remove user: %w", err)
	}

	return user, nil
}

// ConfirmEmailIfUnconfirmed flips is_email_confirmed in a single statement. It returns
// model.ErrNotFound when the user is missing or was already confirmed.
func (r *UserRepository) ConfirmEmailIfUnconfirmed(ctx context.Context, id int64) (model.User, error) {
	query := `UPDATE users AS u SET is_email_confirmed = TRUE, updated_at = now()
			  WHERE u.id = $1 AND u.is_email_confirmed = FALSE
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to confirm email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Count(ctx context.Context, filters model.UserFilters) (int, error) {
	a := args{}
	query := `SELECT count(*) FROM users u` + buildUserWhere(filters, &a)

	var count int
	if err := r.db.QueryRow(ctx, query, a...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func (r *UserRepository) List(ctx context.Context, filters model.UserFilters, page model.Pagination) ([]model.UserWithCount, error) {
	a := args{}
	where := buildUserWhere(filters, &a)
	query := `SELECT ` + userColumns + `, count(c.id) AS contacts_count
			  FROM users u LEFT JOIN contacts c ON c.user_id = u.id` +
		where +
		` GROUP BY u.id` +
		buildUserOrder(filters) +
		` OFFSET ` + a.add(page.Skip) + ` LIMIT ` + a.add(page.Limit)

	rows, err := r.db.Query(ctx, query, a...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var result []model.UserWithCount
	for rows.Next() {
		var row model.UserWithCount
		var role string
		err := rows.Scan(
			&row.User.ID, &row.User.Username, &row.User.Email, &row.User.HashedPassword, &role,
			&row.User.Avatar, &row.User.IsActive, &row.User.IsEmailConfirmed,
			&row.User.CreatedAt, &row.User.UpdatedAt, &row.ContactsCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		row.User.Role = model.Role(role)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return result, nil
}

func (r *UserRepository) CountContacts(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM contacts WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return count, nil
}

func (r *UserRepository) getOne(ctx context.Context, by, query string, arg any) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", by, err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	var role string
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.HashedPassword, &role,
		&user.Avatar, &user.IsActive, &user.IsEmailConfirmed,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	user.Role = model.Role(role)
	return user, nil
}
