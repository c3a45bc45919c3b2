package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giit-backend/internal/domains/carrusel/model"
	"giit-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const fotoColumns = `id, url, orden, fecha_creacion`

func scanFoto(row pgx.Row) (*model.CarruselFoto, error) {
	var f model.CarruselFoto
	if err := row.Scan(&f.ID, &f.URL, &f.Orden, &f.FechaCreacion); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *postgresRepository) Create(ctx context.Context, f *model.CarruselFoto) (*model.CarruselFoto, error) {
	created, err := scanFoto(r.pool.QueryRow(ctx,
		`INSERT INTO carrusel_fotos (url, orden) VALUES ($1, $2) RETURNING `+fotoColumns,
		f.URL, f.Orden))
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, model.NewOrdenTaken(f.Orden)
		}
		return nil, model.NewCarruselRepositoryError(err)
	}
	return created, nil
}

func (r *postgresRepository) findOne(ctx context.Context, where string, arg any) (*model.CarruselFoto, error) {
	f, err := scanFoto(r.pool.QueryRow(ctx, `SELECT `+fotoColumns+` FROM carrusel_fotos WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewCarruselRepositoryError(err)
	}
	return f, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.CarruselFoto, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *postgresRepository) FindByOrden(ctx context.Context, orden int) (*model.CarruselFoto, error) {
	return r.findOne(ctx, "orden = $1", orden)
}

func (r *postgresRepository) List(ctx context.Context) ([]*model.CarruselFoto, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+fotoColumns+` FROM carrusel_fotos ORDER BY orden`)
	if err != nil {
		return nil, model.NewCarruselRepositoryError(err)
	}

	fotos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.CarruselFoto, error) {
		return scanFoto(row)
	})
	if err != nil {
		return nil, model.NewCarruselRepositoryError(err)
	}
	return fotos, nil
}

func (r *postgresRepository) Update(ctx context.Context, f *model.CarruselFoto) (*model.CarruselFoto, error) {
	updated, err := scanFoto(r.pool.QueryRow(ctx,
		`UPDATE carrusel_fotos SET url = $2, orden = $3 WHERE id = $1 RETURNING `+fotoColumns,
		f.ID, f.URL, f.Orden))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, model.NewFotoNotFound()
		case utils.IsUniqueViolation(err):
			return nil, model.NewOrdenTaken(f.Orden)
		}
		return nil, model.NewCarruselRepositoryError(err)
	}
	return updated, nil
}

func (r *postgresRepository) UpdateOrden(ctx context.Context, id int64, orden int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE carrusel_fotos SET orden = $2 WHERE id = $1`, id, orden)
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return model.NewOrdenTaken(orden)
		}
		return model.NewCarruselRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewFotoNotFound()
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM carrusel_fotos WHERE id = $1`, id)
	if err != nil {
		return model.NewCarruselRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewFotoNotFound()
	}
	return nil
}
