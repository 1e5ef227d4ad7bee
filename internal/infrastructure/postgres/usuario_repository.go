package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, nombre, email, password_hash, rol, estado_mayorista, unidades_mes_actual, fecha_vencimiento_mayorista, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Email, u.PasswordHash, u.Rol, u.EstadoMayorista,
		u.UnidadesMesActual, u.FechaVencimientoMayorista, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario")
}

// GetByEmail obtiene un usuario por email.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get usuario by email")
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.EstadoMayorista,
		&u.UnidadesMesActual, &u.FechaVencimientoMayorista, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update actualiza un usuario existente.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, email = $3, password_hash = $4, rol = $5,
			estado_mayorista = $6, unidades_mes_actual = $7, fecha_vencimiento_mayorista = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Email, u.PasswordHash, u.Rol, u.EstadoMayorista,
		u.UnidadesMesActual, u.FechaVencimientoMayorista, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ListConPedidos lista todos los usuarios con su conteo de pedidos (listado admin).
func (r *UsuarioRepo) ListConPedidos() ([]*entity.UsuarioConPedidos, error) {
	query := `
		SELECT u.id, u.nombre, u.email, u.password_hash, u.rol, u.estado_mayorista,
			u.unidades_mes_actual, u.fecha_vencimiento_mayorista, u.created_at, u.updated_at,
			COUNT(p.id) AS total_pedidos
		FROM usuarios u
		LEFT JOIN pedidos p ON p.usuario_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsuarioConPedidos
	for rows.Next() {
		var u entity.UsuarioConPedidos
		if err := rows.Scan(
			&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.EstadoMayorista,
			&u.UnidadesMesActual, &u.FechaVencimientoMayorista, &u.CreatedAt, &u.UpdatedAt,
			&u.TotalPedidos,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
