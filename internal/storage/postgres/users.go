package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campusBooker/internal/models"
	"campusBooker/internal/storage"
)

func (s *Storage) CreateUser(user models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		user.Username,
		user.PasswordHash,
		user.FullName,
		user.Email,
		user.Role,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.User(id)
}

func (s *Storage) User(id int) (*models.User, error) {
	query := `SELECT id, username, full_name, email, role, joined_at FROM users WHERE id = $1`

	var user models.User
	err := s.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.Role,
		&user.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UserByUsername returns the user together with the password hash for
// credential verification.
func (s *Storage) UserByUsername(username string) (*models.User, error) {
	query := `SELECT id, username, password_hash, full_name, email, role, joined_at FROM users WHERE username = $1`

	var user models.User
	err := s.DB.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FullName,
		&user.Email,
		&user.Role,
		&user.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) AllUsers(filter models.UserFilter) ([]models.User, error) {
	query := `SELECT id, username, full_name, email, role, joined_at FROM users WHERE 1=1`
	var args []interface{}

	if filter.Role != "" {
		args = append(args, filter.Role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (username ILIKE $%d OR full_name ILIKE $%d OR email ILIKE $%d)", n, n, n)
	}

	query += " ORDER BY id DESC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err = rows.Scan(
			&user.ID,
			&user.Username,
			&user.FullName,
			&user.Email,
			&user.Role,
			&user.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (s *Storage) UpdateUser(id int, upd models.UserUpdate) (*models.User, error) {
	var set []string
	var args []interface{}

	addField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Username != nil {
		addField("username", *upd.Username)
	}
	if upd.FullName != nil {
		addField("full_name", *upd.FullName)
	}
	if upd.Email != nil {
		addField("email", *upd.Email)
	}
	if upd.Role != nil {
		addField("role", *upd.Role)
	}
	if upd.Password != nil {
		// The handler replaces Password with the bcrypt hash before
		// the update reaches storage.
		addField("password_hash", *upd.Password)
	}

	if len(set) == 0 {
		return nil, storage.ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	if _, err := s.DB.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.User(id)
}

func (s *Storage) DeleteUser(id int) error {
	if _, err := s.DB.Exec(`DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
