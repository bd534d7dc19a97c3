package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

// ContactRepository stores contacts. Every query is filtered by the owning user.
type ContactRepository struct {
	db *Connection
}

func NewContactRepository(db *Connection) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

func (r *ContactRepository) Create(ctx context.Context, ownerID int64, in model.ContactInput) (model.Contact, error) {
	query := `INSERT INTO contacts AS c (user_id, first_name, last_name, email, phone_number, birthdate, info)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + contactColumns

	contact, err := scanContact(r.db.QueryRow(ctx, query,
		ownerID, in.FirstName, in.LastName, in.Email, in.PhoneNumber, in.Birthdate, in.Info,
	))
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, ownerID, id int64) (model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts c WHERE c.id = $1 AND c.user_id = $2`

	contact, err := scanContact(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.ErrNotFound
		}
		return model.Contact{}, fmt.Errorf("failed to get contact: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) Count(ctx context.Context, ownerID int64, filters model.ContactFilters) (int, error) {
	a := args{}
	query := `SELECT count(*) FROM contacts c` + buildContactWhere(ownerID, filters, &a)

	var count int
	if err := r.db.QueryRow(ctx, query, a...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	return count, nil
}

func (r *ContactRepository) List(
	ctx context.Context,
	ownerID int64,
	filters model.ContactFilters,
	page model.Pagination,
) ([]model.Contact, error) {
	a := args{}
	query := `SELECT ` + contactColumns + ` FROM contacts c` +
		buildContactWhere(ownerID, filters, &a) +
		contactOrder +
		` OFFSET ` + a.add(page.Skip) + ` LIMIT ` + a.add(page.Limit)

	rows, err := r.db.Query(ctx, query, a...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var result []model.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		result = append(result, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return result, nil
}

// ListBirthdaysBetween returns a page of contacts whose birthday falls between from and to,
// together with the number of matching contacts. A page past the end yields a zero total.
func (r *ContactRepository) ListBirthdaysBetween(
	ctx context.Context,
	ownerID int64,
	from, to time.Time,
	page model.Pagination,
) ([]model.Contact, int, error) {
	a := args{}
	query := `SELECT ` + contactColumns + `, count(*) OVER () AS total
			  FROM contacts c WHERE c.user_id = ` + a.add(ownerID) +
		` AND ` + buildBirthdayWindow(from, to, &a) +
		buildBirthdayOrder(from, &a) +
		` OFFSET ` + a.add(page.Skip) + ` LIMIT ` + a.add(page.Limit)

	rows, err := r.db.Query(ctx, query, a...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list upcoming birthdays: %w", err)
	}
	defer rows.Close()

	var (
		result []model.Contact
		total  int
	)
	for rows.Next() {
		var c model.Contact
		err := rows.Scan(
			&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber,
			&c.Birthdate, &c.Info, &c.CreatedAt, &c.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate upcoming birthdays: %w", err)
	}

	return result, total, nil
}

func (r *ContactRepository) UpdateByID(
	ctx context.Context,
	ownerID, id int64,
	fields model.ContactFields,
) (model.Contact, error) {
	a := args{}
	set, ok := buildContactUpdate(fields, &a)
	if !ok {
		return r.GetByID(ctx, ownerID, id)
	}

	query := `UPDATE contacts AS c SET ` + set +
		` WHERE c.id = ` + a.add(id) + ` AND c.user_id = ` + a.add(ownerID) +
		` RETURNING ` + contactColumns

	contact, err := scanContact(r.db.QueryRow(ctx, query, a...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.ErrNotFound
		}
		return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) RemoveByID(ctx context.Context, ownerID, id int64) (model.Contact, error) {
	query := `DELETE FROM contacts AS c WHERE c.id = $1 AND c.user_id = $2 RETURNING ` + contactColumns

	contact, err := scanContact(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.ErrNotFound
		}
		return model.Contact{}, fmt.Errorf("failed to remove contact: %w", err)
	}

	return contact, nil
}

func scanContact(row pgx.Row) (model.Contact, error) {
	var c model.Contact
	err := row.Scan(
		&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber,
		&c.Birthdate, &c.Info, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return model.Contact{}, err
	}
	return c, nil
}
