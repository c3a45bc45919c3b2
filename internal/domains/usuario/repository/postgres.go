package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	rolModel "giit-backend/internal/domains/rol/model"
	"giit-backend/internal/domains/usuario/model"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/utils"
)

// postgresRepository implements Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// usuarioSelect projects u.* plus the joined rol; alias u must be a usuarios row
const usuarioSelect = `
	SELECT u.id_usuario, u.id_rol, u.nombre, u.apellido, u.email, u.password,
	       u.telefono, u.institucion, u.especialidad, u.foto_perfil, u.estado,
	       u.fecha_registro, u.ultimo_acceso,
	       r.id_rol, r.nombre_rol, r.descripcion`

func scanUsuario(row pgx.Row) (*model.Usuario, error) {
	var u model.Usuario
	var rol rolModel.Rol
	err := row.Scan(
		&u.IDUsuario, &u.IDRol, &u.Nombre, &u.Apellido, &u.Email, &u.Password,
		&u.Telefono, &u.Institucion, &u.Especialidad, &u.FotoPerfil, &u.Estado,
		&u.FechaRegistro, &u.UltimoAcceso,
		&rol.IDRol, &rol.NombreRol, &rol.Descripcion,
	)
	if err != nil {
		return nil, err
	}
	u.Rol = &rol
	return &u, nil
}

// writeError maps constraint violations raised by INSERT/UPDATE
func writeError(err error) error {
	switch {
	case utils.IsUniqueViolation(err):
		return model.NewEmailAlreadyRegistered()
	case utils.IsForeignKeyViolation(err):
		return model.NewRolSpecifiedNotFound()
	}
	return model.NewUsuarioRepositoryError(err)
}

func (r *postgresRepository) Create(ctx context.Context, u *model.Usuario) (*model.Usuario, error) {
	query := `
		WITH u AS (
			INSERT INTO usuarios (id_rol, nombre, apellido, email, password, telefono,
			                      institucion, especialidad, foto_perfil, estado)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)` + usuarioSelect + `
		FROM u JOIN roles r ON r.id_rol = u.id_rol`

	created, err := scanUsuario(r.pool.QueryRow(ctx, query,
		u.IDRol, u.Nombre, u.Apellido, u.Email, u.Password, u.Telefono,
		u.Institucion, u.Especialidad, u.FotoPerfil, u.Estado,
	))
	if err != nil {
		return nil, writeError(err)
	}
	return created, nil
}

func (r *postgresRepository) findOne(ctx context.Context, where string, arg any) (*model.Usuario, error) {
	query := usuarioSelect + `
		FROM usuarios u JOIN roles r ON r.id_rol = u.id_rol
		WHERE ` + where

	u, err := scanUsuario(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewUsuarioRepositoryError(err)
	}
	return u, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Usuario, error) {
	return r.findOne(ctx, "u.id_usuario = $1", id)
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	return r.findOne(ctx, "lower(u.email) = lower($1)", email)
}

func (r *postgresRepository) List(ctx context.Context, page utils.Pagination) ([]*model.Usuario, error) {
	query := usuarioSelect + `
		FROM usuarios u JOIN roles r ON r.id_rol = u.id_rol
		ORDER BY u.id_usuario
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, page.Limit, page.Skip)
	if err != nil {
		return nil, model.NewUsuarioRepositoryError(err)
	}
	defer rows.Close()

	usuarios := make([]*model.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, model.NewUsuarioRepositoryError(err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewUsuarioRepositoryError(err)
	}
	return usuarios, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *model.Usuario) (*model.Usuario, error) {
	query := `
		WITH u AS (
			UPDATE usuarios SET
				id_rol = $2, nombre = $3, apellido = $4, email = $5, password = $6,
				telefono = $7, institucion = $8, especialidad = $9, foto_perfil = $10,
				estado = $11
			WHERE id_usuario = $1
			RETURNING *
		)` + usuarioSelect + `
		FROM u JOIN roles r ON r.id_rol = u.id_rol`

	updated, err := scanUsuario(r.pool.QueryRow(ctx, query,
		u.IDUsuario, u.IDRol, u.Nombre, u.Apellido, u.Email, u.Password,
		u.Telefono, u.Institucion, u.Especialidad, u.FotoPerfil, u.Estado,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewUsuarioNotFound()
		}
		return nil, writeError(err)
	}
	return updated, nil
}

// Delete maps a foreign key violation to a conflict: the usuario is still
// referenced even when the configured policy skipped the pre-check.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	if err != nil {
		if utils.IsForeignKeyViolation(err) {
			return model.NewUsuarioHasDependents()
		}
		return model.NewUsuarioRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewUsuarioNotFound()
	}
	return nil
}

func (r *postgresRepository) TouchLastAccess(ctx context.Context, id int64, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE usuarios SET ultimo_acceso = $2 WHERE id_usuario = $1`, id, at)
	if err != nil {
		return model.NewUsuarioRepositoryError(err)
	}
	return nil
}

func (r *postgresRepository) FindApprover(ctx context.Context, id int64) (*approval.Approver, error) {
	a := approval.Approver{ID: id}
	err := r.pool.QueryRow(ctx,
		`SELECT nombre, apellido FROM usuarios WHERE id_usuario = $1`, id,
	).Scan(&a.Nombre, &a.Apellido)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM usuarios WHERE id_usuario = $1)`, id)
}

func (r *postgresRepository) HasLineas(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM lineas_investigacion WHERE id_responsable = $1)`, id)
}

func (r *postgresRepository) HasPublicaciones(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx,
		`SELECT EXISTS(SELECT 1 FROM publicaciones WHERE id_autor_principal = $1 OR id_aprobador = $1)`, id)
}

func (r *postgresRepository) HasProductos(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx,
		`SELECT EXISTS(SELECT 1 FROM productos WHERE id_responsable = $1 OR id_aprobador = $1)`, id)
}

func (r *postgresRepository) HasEventos(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM eventos WHERE id_creador = $1)`, id)
}
