package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giit-backend/internal/domains/producto/model"
	"giit-backend/internal/shared/approval"
	"giit-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const productoColumns = `
	id_producto, nombre, descripcion, id_tipologia, id_linea, id_responsable, fecha_creacion,
	estado_desarrollo, estado_aprobacion, fecha_aprobacion, id_aprobador,
	enlace, repositorio, imagen_referencia, fecha_registro`

func scanProducto(row pgx.Row) (*model.Producto, error) {
	var p model.Producto
	err := row.Scan(
		&p.IDProducto, &p.Nombre, &p.Descripcion, &p.IDTipologia, &p.IDLinea, &p.IDResponsable,
		&p.FechaCreacion, &p.EstadoDesarrollo, &p.EstadoAprobacion, &p.FechaAprobacion,
		&p.IDAprobador, &p.Enlace, &p.Repositorio, &p.ImagenReferencia, &p.FechaRegistro,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func writeError(err error) error {
	if utils.IsForeignKeyViolation(err) {
		switch utils.ConstraintName(err) {
		case "productos_id_tipologia_fkey":
			return model.NewTipologiaSpecifiedNotFound()
		case "productos_id_linea_fkey":
			return model.NewLineaSpecifiedNotFound()
		case "productos_id_aprobador_fkey":
			return approval.ErrApproverNotFound
		default:
			return model.NewResponsableNotFound()
		}
	}
	return model.NewProductoRepositoryError(err)
}

// one scans a RETURNING row, mapping no rows to NotFound
func one(row pgx.Row) (*model.Producto, error) {
	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewProductoNotFound()
		}
		return nil, writeError(err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Producto) (*model.Producto, error) {
	query := `
		INSERT INTO productos (nombre, descripcion, id_tipologia, id_linea, id_responsable,
		                       fecha_creacion, estado_desarrollo, estado_aprobacion,
		                       enlace, repositorio, imagen_referencia)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productoColumns

	return one(r.pool.QueryRow(ctx, query,
		p.Nombre, p.Descripcion, p.IDTipologia, p.IDLinea, p.IDResponsable,
		p.FechaCreacion, p.EstadoDesarrollo, p.EstadoAprobacion,
		p.Enlace, p.Repositorio, p.ImagenReferencia,
	))
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Producto, error) {
	p, err := scanProducto(r.pool.QueryRow(ctx,
		`SELECT `+productoColumns+` FROM productos WHERE id_producto = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewProductoRepositoryError(err)
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ProductoFilter, page utils.Pagination) ([]*model.Producto, error) {
	var f utils.Filter
	if filter.EstadoDesarrollo != nil {
		f.Add("estado_desarrollo", "=", *filter.EstadoDesarrollo)
	}
	if filter.EstadoAprobacion != nil {
		f.Add("estado_aprobacion", "=", *filter.EstadoAprobacion)
	}
	if filter.IDLinea != nil {
		f.Add("id_linea", "=", *filter.IDLinea)
	}
	if filter.IDTipologia != nil {
		f.Add("id_tipologia", "=", *filter.IDTipologia)
	}
	if filter.IDResponsable != nil {
		f.Add("id_responsable", "=", *filter.IDResponsable)
	}
	limit, args := f.Page(page)

	query := `SELECT ` + productoColumns + ` FROM productos` + f.Where() + ` ORDER BY id_producto` + limit

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, model.NewProductoRepositoryError(err)
	}

	productos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Producto, error) {
		return scanProducto(row)
	})
	if err != nil {
		return nil, model.NewProductoRepositoryError(err)
	}
	return productos, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Producto) (*model.Producto, error) {
	query := `
		UPDATE productos SET
			nombre = $2, descripcion = $3, id_tipologia = $4, id_linea = $5, id_responsable = $6,
			fecha_creacion = $7, estado_desarrollo = $8, enlace = $9, repositorio = $10,
			imagen_referencia = $11
		WHERE id_producto = $1
		RETURNING ` + productoColumns

	return one(r.pool.QueryRow(ctx, query,
		p.IDProducto, p.Nombre, p.Descripcion, p.IDTipologia, p.IDLinea, p.IDResponsable,
		p.FechaCreacion, p.EstadoDesarrollo, p.Enlace, p.Repositorio, p.ImagenReferencia,
	))
}

func (r *postgresRepository) UpdateEstadoDesarrollo(ctx context.Context, id int64, estado string) (*model.Producto, error) {
	return one(r.pool.QueryRow(ctx,
		`UPDATE productos SET estado_desarrollo = $2 WHERE id_producto = $1 RETURNING `+productoColumns,
		id, estado))
}

// UpdateApproval persists a computed transition on the approval axis only.
func (r *postgresRepository) UpdateApproval(ctx context.Context, id int64, t *approval.Transition) (*model.Producto, error) {
	if t.Stamp {
		return one(r.pool.QueryRow(ctx, `
			UPDATE productos SET estado_aprobacion = $2, id_aprobador = $3, fecha_aprobacion = $4
			WHERE id_producto = $1
			RETURNING `+productoColumns,
			id, t.State, t.ApproverID, t.ApprovedAt))
	}
	return one(r.pool.QueryRow(ctx,
		`UPDATE productos SET estado_aprobacion = $2 WHERE id_producto = $1 RETURNING `+productoColumns,
		id, t.State))
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM productos WHERE id_producto = $1`, id)
	if err != nil {
		return model.NewProductoRepositoryError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewProductoNotFound()
	}
	return nil
}
