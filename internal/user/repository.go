package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

type Repository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, email, passwordHash, role string) (StaffAccount, error)
	FindByEmail(ctx context.Context, email string) (*StaffAccount, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Init creates the accounts table. Kept out of the core store schema: the
// three catalog/order tables are the store's contract, accounts are this
// package's own concern.
func (r *repository) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS staff_accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE,
			password_hash TEXT,
			role TEXT,
			created_at TEXT
		)
	`)
	return err
}

func (r *repository) Create(ctx context.Context, email, passwordHash, role string) (StaffAccount, error) {
	a := StaffAccount{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().Format("2006-01-02 15:04:05"),
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO staff_accounts (email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?)
	`, a.Email, a.PasswordHash, a.Role, a.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return StaffAccount{}, ErrEmailExists
		}
		return StaffAccount{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return StaffAccount{}, err
	}
	a.ID = uint(id)

	return a, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*StaffAccount, error) {
	var a StaffAccount
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role, created_at
		FROM staff_accounts
		WHERE email = ?
	`, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}
