package postgres

import (
	"database/sql"

	"kursbot/internal/domain"
)

// ProfileRepo implements repository.ProfileRepository
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Exists checks if a profile with this user ID is registered
func (r *ProfileRepo) Exists(userID int64) (bool, error) {
	var one int
	query := `SELECT 1 FROM profiles WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Create inserts a new profile. The unique constraint on user_id makes
// registration idempotent: a concurrent or repeated insert for the same
// user ID affects zero rows and is reported as "already exists".
func (r *ProfileRepo) Create(p domain.Profile) (bool, error) {
	query := `
		INSERT INTO profiles (user_id, first_name, last_name, username)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`
	res, err := r.db.Exec(query, p.UserID, p.FirstName, p.LastName, p.Username)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Update overwrites the mutable fields of an existing profile
func (r *ProfileRepo) Update(userID int64, firstName, username, lastName string) (bool, error) {
	query := `
		UPDATE profiles
		SET first_name = $1, username = $2, last_name = $3
		WHERE user_id = $4
	`
	res, err := r.db.Exec(query, firstName, username, lastName, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ListAll returns all profiles in insertion order
func (r *ProfileRepo) ListAll() ([]domain.Profile, error) {
	query := `
		SELECT id, user_id, first_name, last_name, username, created_at
		FROM profiles
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Username, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}
