package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giit-backend/internal/domains/evento/model"
	"giit-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const eventoColumns = `
	id_evento, nombre, descripcion, tipo_evento, fecha_inicio, fecha_fin, lugar,
	organizador, enlace, foto_evento, id_creador, fecha_registro`

func scanEvento(row pgx.Row) (*model.Evento, error) {
	var e model.Evento
	err := row.Scan(
		&e.IDEvento, &e.Nombre, &e.Descripcion, &e.TipoEvento, &e.FechaInicio, &e.FechaFin,
		&e.Lugar, &e.Organizador, &e.Enlace, &e.FotoEvento, &e.IDCreador, &e.FechaRegistro,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func writeError(err error) error {
	if utils.IsForeignKeyViolation(err) {
		return model.NewCreadorNotFound()
	}
	return model.NewEventoRepositoryError(err)
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Evento) (*model.Evento, error) {
	query := `
		INSERT INTO eventos (nombre, descripcion, tipo_evento, fecha_inicio, fecha_fin, lugar,
		                     organizador, enlace, foto_evento, id_creador)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventoColumns

	created, err := scanEvento(r.pool.QueryRow(ctx, query,
		e.Nombre, e.Descripcion, e.TipoEvento, e.FechaInicio, e.FechaFin, e.Lugar,
		e.Organizador, e.Enlace, e.FotoEvento, e.IDCreador,
	))
	if err != nil {
		return nil, writeError(err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Evento, error) {
	e, err := scanEvento(r.pool.QueryRow(ctx, `SELECT `+eventoColumns+` FROM eventos WHERE id_evento = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewEventoRepositoryError(err)
	}
	return e, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.EventoFilter, page utils.Pagination) ([]*model.Evento, error) {
	var f utils.Filter
	if filter.FechaInicio != nil {
		f.Add("fecha_inicio", ">=", *filter.FechaInicio)
	}
	if filter.FechaFin != nil {
		f.Add("fecha_fin", "<=", *filter.FechaFin)
	}
	if filter.TipoEvento != nil {
		f.Add("tipo_evento", "=", *filter.TipoEvento)
	}
	if filter.IDCreador != nil {
		f.Add("id_creador", "=", *filter.IDCreador)
	}
	limit, args := f.Page(page)

	query := `SELECT ` + eventoColumns + ` FROM eventos` + f.Where() + ` ORDER BY id_evento` + limit

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, model.NewEventoRepositoryError(err)
	}

	eventos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Evento, error) {
		return scanEvento(row)
	})
	if err != nil {
		return nil, model.NewEventoRepositoryError(err)
	}
	return eventos, nil
}

func (r *postgresRepository) Update(ctx context.Context, e *model.Evento) (*model.Evento, error) {
	query := `
		UPDATE eventos SET
			nombre = $2, descripcion = $3, tipo_evento = $4, fecha_inicio = $5, fecha_fin = $6,
			lugar = $7, organizador = $8, enlace = $9, foto_evento = $10, id_creador = $11
		WHERE id_evento = $1
		RETURNING ` + eventoColumns

	updated, err := scanEvento(r.pool.QueryRow(ctx, query,
		e.IDEvento, e.Nombre, e.Descripcion, e.TipoEvento, e.FechaInicio, e.FechaFin,
		e.Lugar, e.Organizador, e.Enlace, e.FotoEvento, e.IDCreador,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewEventoNotFound()
		}
		return nil, writeError(err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM eventos WHERE id_evento = $1`, id)
	if err != nil {
		return model.NewEventoRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewEventoNotFound()
	}
	return nil
}
