package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giit-backend/internal/domains/publicacion/model"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const publicacionColumns = `
	id_publicacion, titulo, resumen, autores, revista_conferencia, fecha_publicacion,
	enlace, id_linea, id_autor_principal, estado, fecha_registro, fecha_aprobacion, id_aprobador`

func scanPublicacion(row pgx.Row) (*model.Publicacion, error) {
	var p model.Publicacion
	err := row.Scan(
		&p.IDPublicacion, &p.Titulo, &p.Resumen, &p.Autores, &p.RevistaConferencia,
		&p.FechaPublicacion, &p.Enlace, &p.IDLinea, &p.IDAutorPrincipal, &p.Estado,
		&p.FechaRegistro, &p.FechaAprobacion, &p.IDAprobador,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// writeError maps FK violations to the reference that disappeared
func writeError(err error) error {
	if utils.IsForeignKeyViolation(err) {
		switch utils.ConstraintName(err) {
		case "publicaciones_id_linea_fkey":
			return model.NewLineaSpecifiedNotFound()
		case "publicaciones_id_aprobador_fkey":
			return approval.ErrApproverNotFound
		default:
			return model.NewAutorNotFound()
		}
	}
	return model.NewPublicacionRepositoryError(err)
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Publicacion) (*model.Publicacion, error) {
	query := `
		INSERT INTO publicaciones (titulo, resumen, autores, revista_conferencia, fecha_publicacion,
		                           enlace, id_linea, id_autor_principal, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + publicacionColumns

	created, err := scanPublicacion(r.pool.QueryRow(ctx, query,
		p.Titulo, p.Resumen, p.Autores, p.RevistaConferencia, p.FechaPublicacion,
		p.Enlace, p.IDLinea, p.IDAutorPrincipal, p.Estado,
	))
	if err != nil {
		return nil, writeError(err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Publicacion, error) {
	p, err := scanPublicacion(r.pool.QueryRow(ctx,
		`SELECT `+publicacionColumns+` FROM publicaciones WHERE id_publicacion = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewPublicacionRepositoryError(err)
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.PublicacionFilter, page utils.Pagination) ([]*model.Publicacion, error) {
	var f utils.Filter
	if filter.Estado != nil {
		f.Add("estado", "=", *filter.Estado)
	}
	if filter.IDLinea != nil {
		f.Add("id_linea", "=", *filter.IDLinea)
	}
	if filter.IDAutor != nil {
		f.Add("id_autor_principal", "=", *filter.IDAutor)
	}
	limit, args := f.Page(page)

	query := `SELECT ` + publicacionColumns + ` FROM publicaciones` + f.Where() +
		` ORDER BY id_publicacion` + limit

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, model.NewPublicacionRepositoryError(err)
	}

	publicaciones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Publicacion, error) {
		return scanPublicacion(row)
	})
	if err != nil {
		return nil, model.NewPublicacionRepositoryError(err)
	}
	return publicaciones, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Publicacion) (*model.Publicacion, error) {
	query := `
		UPDATE publicaciones SET
			titulo = $2, resumen = $3, autores = $4, revista_conferencia = $5,
			fecha_publicacion = $6, enlace = $7, id_linea = $8, id_autor_principal = $9
		WHERE id_publicacion = $1
		RETURNING ` + publicacionColumns

	updated, err := scanPublicacion(r.pool.QueryRow(ctx, query,
		p.IDPublicacion, p.Titulo, p.Resumen, p.Autores, p.RevistaConferencia,
		p.FechaPublicacion, p.Enlace, p.IDLinea, p.IDAutorPrincipal,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewPublicacionNotFound()
		}
		return nil, writeError(err)
	}
	return updated, nil
}

// UpdateApproval persists a computed transition. Without Stamp only estado changes.
func (r *postgresRepository) UpdateApproval(ctx context.Context, id int64, t *approval.Transition) (*model.Publicacion, error) {
	var row pgx.Row
	if t.Stamp {
		row = r.pool.QueryRow(ctx, `
			UPDATE publicaciones SET estado = $2, id_aprobador = $3, fecha_aprobacion = $4
			WHERE id_publicacion = $1
			RETURNING `+publicacionColumns,
			id, t.State, t.ApproverID, t.ApprovedAt)
	} else {
		row = r.pool.QueryRow(ctx, `
			UPDATE publicaciones SET estado = $2
			WHERE id_publicacion = $1
			RETURNING `+publicacionColumns,
			id, t.State)
	}

	updated, err := scanPublicacion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewPublicacionNotFound()
		}
		return nil, writeError(err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM publicaciones WHERE id_publicacion = $1`, id)
	if err != nil {
		return model.NewPublicacionRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewPublicacionNotFound()
	}
	return nil
}
