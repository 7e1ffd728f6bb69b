package admin

import (
	"fmt"
	"regexp"
	"strings"

	"bolao-backend/internal/domain"
)

// The ten recognized filter operators. A request carrying anything else is
// rejected outright instead of silently losing the predicate.
const (
	OpEq    = "eq"
	OpNeq   = "neq"
	OpGt    = "gt"
	OpGte   = "gte"
	OpLt    = "lt"
	OpLte   = "lte"
	OpLike  = "like"
	OpILike = "ilike"
	OpIn    = "in"
	OpIs    = "is"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validIdent(name string) bool {
	return identPattern.MatchString(name)
}

// BuildWhere folds the filters left-to-right into an AND-ed WHERE clause
// with `?` placeholders. Empty input yields an empty clause.
func BuildWhere(filters []Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	parts := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))

	for _, f := range filters {
		col := strings.TrimSpace(f.Column)
		if !validIdent(col) {
			return "", nil, domain.ValidationError{Field: "filters", Msg: fmt.Sprintf("coluna inválida: %q", f.Column)}
		}

		switch f.Operator {
		case OpEq:
			parts = append(parts, col+" = ?")
			args = append(args, f.Value)
		case OpNeq:
			parts = append(parts, col+" <> ?")
			args = append(args, f.Value)
		case OpGt:
			parts = append(parts, col+" > ?")
			args = append(args, f.Value)
		case OpGte:
			parts = append(parts, col+" >= ?")
			args = append(args, f.Value)
		case OpLt:
			parts = append(parts, col+" < ?")
			args = append(args, f.Value)
		case OpLte:
			parts = append(parts, col+" <= ?")
			args = append(args, f.Value)
		case OpLike:
			parts = append(parts, col+" LIKE ?")
			args = append(args, f.Value)
		case OpILike:
			// MySQL não tem ILIKE
			parts = append(parts, "LOWER("+col+") LIKE LOWER(?)")
			args = append(args, f.Value)
		case OpIn:
			values, ok := f.Value.([]any)
			if !ok {
				return "", nil, domain.ValidationError{Field: "filters", Msg: fmt.Sprintf("operador in exige lista em %q", col)}
			}
			if len(values) == 0 {
				// IN () é inválido em SQL; lista vazia não casa com nada
				parts = append(parts, "1 = 0")
				continue
			}
			placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
			parts = append(parts, col+" IN ("+placeholders+")")
			args = append(args, values...)
		case OpIs:
			if isNotNullValue(f.Value) {
				parts = append(parts, col+" IS NOT NULL")
			} else {
				parts = append(parts, col+" IS NULL")
			}
		default:
			return "", nil, domain.ValidationError{Field: "filters", Msg: fmt.Sprintf("operador de filtro inválido: %q", f.Operator)}
		}
	}

	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

func isNotNullValue(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "not null" || s == "not_null" || s == "not.null"
}

// BuildOrder renders the single-column sort. Direction defaults to DESC
// when ascending is absent.
func BuildOrder(o *OrderBy) (string, error) {
	if o == nil || strings.TrimSpace(o.Column) == "" {
		return "", nil
	}
	col := strings.TrimSpace(o.Column)
	if !validIdent(col) {
		return "", domain.ValidationError{Field: "orderBy", Msg: fmt.Sprintf("coluna inválida: %q", o.Column)}
	}
	dir := "DESC"
	if o.Ascending != nil && *o.Ascending {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir, nil
}

// defaultWindow is assumed when offset is given without limit.
const defaultWindow = 20

// BuildLimit translates limit/offset into a MySQL LIMIT clause. Offset
// without limit gets the default window.
func BuildLimit(limit, offset *int) string {
	switch {
	case limit == nil && offset == nil:
		return ""
	case offset == nil:
		return fmt.Sprintf(" LIMIT %d", *limit)
	default:
		n := defaultWindow
		if limit != nil {
			n = *limit
		}
		return fmt.Sprintf(" LIMIT %d, %d", *offset, n)
	}
}

// selectColumns validates the projection; "*" (default) stays as-is.
func selectColumns(sel string) (string, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" || sel == "*" {
		return "*", nil
	}
	cols := strings.Split(sel, ",")
	for i, c := range cols {
		c = strings.TrimSpace(c)
		if !validIdent(c) {
			return "", domain.ValidationError{Field: "select", Msg: fmt.Sprintf("coluna inválida: %q", c)}
		}
		cols[i] = c
	}
	return strings.Join(cols, ", "), nil
}
