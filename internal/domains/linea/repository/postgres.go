package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giit-backend/internal/domains/linea/model"
	"giit-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const lineaColumns = `id_linea, nombre, descripcion, imagen_logo, id_responsable, fecha_creacion, estado`

func scanLinea(row pgx.Row) (*model.LineaInvestigacion, error) {
	var l model.LineaInvestigacion
	err := row.Scan(&l.IDLinea, &l.Nombre, &l.Descripcion, &l.ImagenLogo,
		&l.IDResponsable, &l.FechaCreacion, &l.Estado)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func writeError(err error) error {
	if utils.IsForeignKeyViolation(err) {
		return model.NewResponsableNotFound()
	}
	return model.NewLineaRepositoryError(err)
}

func (r *postgresRepository) Create(ctx context.Context, l *model.LineaInvestigacion) (*model.LineaInvestigacion, error) {
	query := `
		INSERT INTO lineas_investigacion (nombre, descripcion, imagen_logo, id_responsable, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + lineaColumns

	created, err := scanLinea(r.pool.QueryRow(ctx, query,
		l.Nombre, l.Descripcion, l.ImagenLogo, l.IDResponsable, l.Estado))
	if err != nil {
		return nil, writeError(err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.LineaInvestigacion, error) {
	l, err := scanLinea(r.pool.QueryRow(ctx,
		`SELECT `+lineaColumns+` FROM lineas_investigacion WHERE id_linea = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewLineaRepositoryError(err)
	}
	return l, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.LineaFilter, page utils.Pagination) ([]*model.LineaInvestigacion, error) {
	var f utils.Filter
	if filter.Estado != nil {
		f.Add("estado", "=", *filter.Estado)
	}
	limit, args := f.Page(page)
	query := `SELECT ` + lineaColumns + ` FROM lineas_investigacion` + f.Where() + ` ORDER BY id_linea` + limit

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, model.NewLineaRepositoryError(err)
	}

	lineas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.LineaInvestigacion, error) {
		return scanLinea(row)
	})
	if err != nil {
		return nil, model.NewLineaRepositoryError(err)
	}
	return lineas, nil
}

func (r *postgresRepository) Update(ctx context.Context, l *model.LineaInvestigacion) (*model.LineaInvestigacion, error) {
	query := `
		UPDATE lineas_investigacion SET
			nombre = $2, descripcion = $3, imagen_logo = $4, id_responsable = $5, estado = $6
		WHERE id_linea = $1
		RETURNING ` + lineaColumns

	updated, err := scanLinea(r.pool.QueryRow(ctx, query,
		l.IDLinea, l.Nombre, l.Descripcion, l.ImagenLogo, l.IDResponsable, l.Estado))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewLineaNotFound()
		}
		return nil, writeError(err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lineas_investigacion WHERE id_linea = $1`, id)
	if err != nil {
		if utils.IsForeignKeyViolation(err) {
			return model.NewLineaHasDependents()
		}
		return model.NewLineaRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewLineaNotFound()
	}
	return nil
}

func (r *postgresRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM lineas_investigacion WHERE id_linea = $1)`, id)
}

func (r *postgresRepository) HasPublicaciones(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM publicaciones WHERE id_linea = $1)`, id)
}

func (r *postgresRepository) HasProductos(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM productos WHERE id_linea = $1)`, id)
}
