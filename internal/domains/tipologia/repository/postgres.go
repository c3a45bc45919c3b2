package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giit-backend/internal/domains/tipologia/model"
	"giit-backend/internal/shared/utils"
)

// postgresRepository implements Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanTipologia(row pgx.Row) (*model.Tipologia, error) {
	var t model.Tipologia
	if err := row.Scan(&t.IDTipologia, &t.Nombre); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepository) Create(ctx context.Context, t *model.Tipologia) (*model.Tipologia, error) {
	created, err := scanTipologia(r.pool.QueryRow(ctx,
		`INSERT INTO tipologias (nombre) VALUES ($1) RETURNING id_tipologia, nombre`, t.Nombre))
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, model.NewTipologiaNameExists()
		}
		return nil, model.NewTipologiaRepositoryError(err)
	}
	return created, nil
}

func (r *postgresRepository) findOne(ctx context.Context, where string, arg any) (*model.Tipologia, error) {
	t, err := scanTipologia(r.pool.QueryRow(ctx,
		`SELECT id_tipologia, nombre FROM tipologias WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewTipologiaRepositoryError(err)
	}
	return t, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Tipologia, error) {
	return r.findOne(ctx, "id_tipologia = $1", id)
}

func (r *postgresRepository) FindByName(ctx context.Context, nombre string) (*model.Tipologia, error) {
	return r.findOne(ctx, "nombre = $1", nombre)
}

func (r *postgresRepository) List(ctx context.Context, page utils.Pagination) ([]*model.Tipologia, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id_tipologia, nombre FROM tipologias ORDER BY id_tipologia LIMIT $1 OFFSET $2`,
		page.Limit, page.Skip)
	if err != nil {
		return nil, model.NewTipologiaRepositoryError(err)
	}

	tipologias, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Tipologia, error) {
		return scanTipologia(row)
	})
	if err != nil {
		return nil, model.NewTipologiaRepositoryError(err)
	}
	return tipologias, nil
}

func (r *postgresRepository) Update(ctx context.Context, t *model.Tipologia) (*model.Tipologia, error) {
	updated, err := scanTipologia(r.pool.QueryRow(ctx,
		`UPDATE tipologias SET nombre = $2 WHERE id_tipologia = $1 RETURNING id_tipologia, nombre`,
		t.IDTipologia, t.Nombre))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, model.NewTipologiaNotFound()
		case utils.IsUniqueViolation(err):
			return nil, model.NewTipologiaNameExists()
		}
		return nil, model.NewTipologiaRepositoryError(err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tipologias WHERE id_tipologia = $1`, id)
	if err != nil {
		if utils.IsForeignKeyViolation(err) {
			return model.NewTipologiaHasProductos()
		}
		return model.NewTipologiaRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewTipologiaNotFound()
	}
	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tipologias WHERE id_tipologia = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) HasProductos(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM productos WHERE id_tipologia = $1)`, id).Scan(&exists)
	return exists, err
}
