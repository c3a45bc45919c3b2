package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giit-backend/internal/domains/rol/model"
	"giit-backend/internal/shared/utils"
)

// postgresRepository implements Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const rolColumns = `id_rol, nombre_rol, descripcion`

func scanRol(row pgx.Row) (*model.Rol, error) {
	var r model.Rol
	if err := row.Scan(&r.IDRol, &r.NombreRol, &r.Descripcion); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *postgresRepository) Create(ctx context.Context, rol *model.Rol) (*model.Rol, error) {
	query := `
		INSERT INTO roles (nombre_rol, descripcion)
		VALUES ($1, $2)
		RETURNING ` + rolColumns

	created, err := scanRol(r.pool.QueryRow(ctx, query, rol.NombreRol, rol.Descripcion))
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, model.NewRolNameExists()
		}
		return nil, model.NewRolRepositoryError(err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Rol, error) {
	query := `SELECT ` + rolColumns + ` FROM roles WHERE id_rol = $1`

	rol, err := scanRol(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRolRepositoryError(err)
	}
	return rol, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, nombre string) (*model.Rol, error) {
	query := `SELECT ` + rolColumns + ` FROM roles WHERE nombre_rol = $1`

	rol, err := scanRol(r.pool.QueryRow(ctx, query, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRolRepositoryError(err)
	}
	return rol, nil
}

func (r *postgresRepository) List(ctx context.Context, page utils.Pagination) ([]*model.Rol, error) {
	query := `SELECT ` + rolColumns + ` FROM roles ORDER BY id_rol LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, page.Limit, page.Skip)
	if err != nil {
		return nil, model.NewRolRepositoryError(err)
	}
	defer rows.Close()

	roles := make([]*model.Rol, 0)
	for rows.Next() {
		rol, err := scanRol(rows)
		if err != nil {
			return nil, model.NewRolRepositoryError(err)
		}
		roles = append(roles, rol)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewRolRepositoryError(err)
	}
	return roles, nil
}

func (r *postgresRepository) Update(ctx context.Context, rol *model.Rol) (*model.Rol, error) {
	query := `
		UPDATE roles SET nombre_rol = $2, descripcion = $3
		WHERE id_rol = $1
		RETURNING ` + rolColumns

	updated, err := scanRol(r.pool.QueryRow(ctx, query, rol.IDRol, rol.NombreRol, rol.Descripcion))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, model.NewRolNotFound()
		case utils.IsUniqueViolation(err):
			return nil, model.NewRolNameExists()
		}
		return nil, model.NewRolRepositoryError(err)
	}
	return updated, nil
}

// Delete relies on the usuarios.id_rol foreign key as the final guard.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id_rol = $1`, id)
	if err != nil {
		if utils.IsForeignKeyViolation(err) {
			return model.NewRolHasUsuarios()
		}
		return model.NewRolRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewRolNotFound()
	}
	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM roles WHERE id_rol = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) HasUsuarios(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM usuarios WHERE id_rol = $1)`, id).Scan(&exists)
	return exists, err
}
