package postgres

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// builder squirrel con placeholders $n de PostgreSQL.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	return pgCode(err) == "23514"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// likeEscaper escapa los comodines de LIKE en el término del usuario.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern patrón "%term%" con comodines escapados.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// nullIfEmpty mapea "" a NULL (columnas uuid opcionales, cpf/cnpj).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
