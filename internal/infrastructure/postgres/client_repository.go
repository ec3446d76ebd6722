package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
	"github.com/jhoicas/labora-api/pkg/brdoc"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

var clientColumns = []string{
	"id", "full_name", "email",
	"COALESCE(cpf, '') AS cpf", "COALESCE(cnpj, '') AS cnpj",
	"phone", "is_whatsapp", "address", "created_at", "updated_at",
}

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	sql, args, err := builder().
		Insert("clients").
		Columns("id", "full_name", "email", "cpf", "cnpj", "phone", "is_whatsapp", "address", "created_at", "updated_at").
		Values(c.ID, c.FullName, c.Email, nullIfEmpty(c.CPF), nullIfEmpty(c.CNPJ), c.Phone, c.IsWhatsApp, c.Address, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert client: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Update reemplaza los campos editables del cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	sql, args, err := builder().
		Update("clients").
		Set("full_name", c.FullName).
		Set("email", c.Email).
		Set("cpf", nullIfEmpty(c.CPF)).
		Set("cnpj", nullIfEmpty(c.CNPJ)).
		Set("phone", c.Phone).
		Set("is_whatsapp", c.IsWhatsApp).
		Set("address", c.Address).
		Set("updated_at", c.UpdatedAt).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update client: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un cliente por ID. Retorna nil, nil si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	sql, args, err := builder().Select(clientColumns...).From("clients").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get client: %w", err)
	}
	var c entity.Client
	if err := pgxscan.Get(ctx, r.q, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List clientes más recientes primero.
func (r *ClientRepo) List(ctx context.Context, f repository.ClientFilter) ([]*entity.Client, error) {
	q := builder().Select(clientColumns...).From("clients").OrderBy("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients: %w", err)
	}
	var list []*entity.Client
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

// Search busca por nombre, CPF o CNPJ sin distinguir mayúsculas.
func (r *ClientRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Client, error) {
	sql, args, err := clientSearchQuery(term, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search clients: %w", err)
	}
	var list []*entity.Client
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return list, nil
}

// clientSearchQuery OR de ILIKE sobre full_name/cpf/cnpj; si el término tiene dígitos
// también se comparan contra los dígitos del documento guardado.
func clientSearchQuery(term string, limit int) squirrel.SelectBuilder {
	pattern := containsPattern(term)
	or := squirrel.Or{
		squirrel.ILike{"full_name": pattern},
		squirrel.ILike{"cpf": pattern},
		squirrel.ILike{"cnpj": pattern},
	}
	if d := brdoc.Digits(term); d != "" {
		or = append(or, squirrel.Expr(`regexp_replace(COALESCE(cpf, cnpj), '\D', '', 'g') LIKE ?`, "%"+d+"%"))
	}
	q := builder().Select(clientColumns...).From("clients").Where(or).OrderBy("created_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q
}
