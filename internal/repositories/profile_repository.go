package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "bolao-backend/internal/config"
	"bolao-backend/internal/domain"
)

// Profile is the caller identity row read by the authorization gate.
type Profile struct {
	ID   int64
	Name string
	Role string
}

func (p Profile) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(p.Role), "admin")
}

type ProfileRepository struct {
	DB *sql.DB
}

func (r ProfileRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ProfileRepository) table() string {
	return "users_profiles"
}

// GetByID fetches the profile row for one user.
func (r ProfileRepository) GetByID(id int64) (Profile, error) {
	if id <= 0 {
		return Profile{}, domain.ValidationError{Field: "id", Msg: "inválido"}
	}
	db := r.db()
	if db == nil {
		return Profile{}, domain.QueryError{Op: "profile", Err: errors.New("banco não inicializado")}
	}

	query := `
		SELECT id,
		       COALESCE(name,''),
		       COALESCE(role,'')
		FROM ` + r.table() + `
		WHERE id = ? LIMIT 1`

	var p Profile
	if err := db.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, domain.NotFoundError{Resource: "perfil", Err: err}
		}
		return Profile{}, domain.QueryError{Op: "profile", Err: err}
	}
	return p, nil
}
