package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campusBooker/internal/models"
	"campusBooker/internal/storage"

	"github.com/lib/pq"
)

const hallColumns = `id, name, capacity, location, facilities, is_available, created_at, updated_at`

func (s *Storage) CreateHall(hall models.Hall) (*models.Hall, error) {
	query := `
		INSERT INTO halls (name, capacity, location, facilities, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		hall.Name,
		hall.Capacity,
		hall.Location,
		pq.Array(hall.Facilities),
		hall.IsAvailable,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create hall: %w", err)
	}

	return s.Hall(id)
}

func (s *Storage) Hall(id int) (*models.Hall, error) {
	query := `SELECT ` + hallColumns + ` FROM halls WHERE id = $1`

	hall, err := scanHall(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	return hall, nil
}

func (s *Storage) AllHalls() ([]models.Hall, error) {
	query := `SELECT ` + hallColumns + ` FROM halls ORDER BY name ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get halls: %w", err)
	}
	defer rows.Close()

	halls := []models.Hall{}
	for rows.Next() {
		hall, err := scanHall(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hall: %w", err)
		}
		halls = append(halls, *hall)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating halls: %w", err)
	}

	return halls, nil
}

func (s *Storage) UpdateHall(id int, upd models.HallUpdate) (*models.Hall, error) {
	var set []string
	var args []interface{}

	addField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		addField("name", *upd.Name)
	}
	if upd.Capacity != nil {
		addField("capacity", *upd.Capacity)
	}
	if upd.Location != nil {
		addField("location", *upd.Location)
	}
	if upd.Facilities != nil {
		addField("facilities", pq.Array(*upd.Facilities))
	}
	if upd.IsAvailable != nil {
		addField("is_available", *upd.IsAvailable)
	}

	if len(set) == 0 {
		return nil, storage.ErrNoFields
	}

	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE halls SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	if _, err := s.DB.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to update hall: %w", err)
	}

	return s.Hall(id)
}

func (s *Storage) DeleteHall(id int) error {
	if _, err := s.DB.Exec(`DELETE FROM halls WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete hall: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHall(row rowScanner) (*models.Hall, error) {
	var hall models.Hall
	var updatedAt sql.NullTime

	err := row.Scan(
		&hall.ID,
		&hall.Name,
		&hall.Capacity,
		&hall.Location,
		pq.Array(&hall.Facilities),
		&hall.IsAvailable,
		&hall.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		hall.UpdatedAt = &updatedAt.Time
	}
	if hall.Facilities == nil {
		hall.Facilities = []string{}
	}

	return &hall, nil
}
