// Package seed inserts the default roles and usuarios on an empty database.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"giit-backend/pkg/database"
)

type Rol struct {
	Nombre      string
	Descripcion string
}

type Usuario struct {
	Rol          string // nombre_rol
	Nombre       string
	Apellido     string
	Email        string
	Password     string // plain text, hashed trước khi insert
	Telefono     string
	Institucion  string
	Especialidad string
}

var DefaultRoles = []Rol{
	{Nombre: "administrador", Descripcion: "Usuario con acceso total al sistema"},
	{Nombre: "investigador", Descripcion: "Usuario que participa en proyectos y publicaciones"},
}

var DefaultUsuarios = []Usuario{
	{
		Rol: "administrador", Nombre: "Admin", Apellido: "Principal",
		Email: "admin@example.com", Password: "admin123", Telefono: "1234567890",
		Institucion: "Universidad Nacional", Especialidad: "Sistemas",
	},
	{
		Rol: "investigador", Nombre: "Jhon", Apellido: "Doe",
		Email: "investigador@example.com", Password: "inv123", Telefono: "0987654321",
		Institucion: "Universidad Nacional", Especialidad: "Ingeniería de Software",
	},
}

// Run seeds DefaultRoles and DefaultUsuarios in one transaction when the
// roles table is empty. It reports whether anything was inserted.
// cost <= 0 means bcrypt.DefaultCost.
func Run(ctx context.Context, db database.TxBeginner, cost int) (bool, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	return database.WithTransactionResult(ctx, db, func(tx pgx.Tx) (bool, error) {
		var hasRoles bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM roles)`).Scan(&hasRoles); err != nil {
			return false, fmt.Errorf("check roles: %w", err)
		}
		if hasRoles {
			return false, nil
		}

		ids := make(map[string]int64, len(DefaultRoles))
		for _, r := range DefaultRoles {
			var id int64
			err := tx.QueryRow(ctx,
				`INSERT INTO roles (nombre_rol, descripcion) VALUES ($1, $2) RETURNING id_rol`,
				r.Nombre, r.Descripcion,
			).Scan(&id)
			if err != nil {
				return false, fmt.Errorf("insert rol %s: %w", r.Nombre, err)
			}
			ids[r.Nombre] = id
		}

		for _, u := range DefaultUsuarios {
			rolID, ok := ids[u.Rol]
			if !ok {
				return false, fmt.Errorf("usuario %s references unknown rol %s", u.Email, u.Rol)
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
			if err != nil {
				return false, fmt.Errorf("hash password for %s: %w", u.Email, err)
			}
			_, err = tx.Exec(ctx, `
				INSERT INTO usuarios (id_rol, nombre, apellido, email, password, telefono,
				                      institucion, especialidad, estado)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'activo')`,
				rolID, u.Nombre, u.Apellido, u.Email, string(hash), u.Telefono,
				u.Institucion, u.Especialidad,
			)
			if err != nil {
				return false, fmt.Errorf("insert usuario %s: %w", u.Email, err)
			}
		}

		log.Info().
			Int("roles", len(DefaultRoles)).
			Int("usuarios", len(DefaultUsuarios)).
			Msg("[SEED] default data inserted")
		return true, nil
	})
}
