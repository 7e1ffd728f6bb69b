package admin

import (
	"database/sql"
	"strconv"
	"strings"
)

// scanRows reads every row into a column→value map. The MySQL driver hands
// text-protocol results back as []byte, so values are coerced by the
// declared column type before they reach the JSON envelope.
func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = coerce(values[i], types[i].DatabaseTypeName())
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func coerce(v any, dbType string) any {
	raw, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(raw)

	switch strings.ToUpper(dbType) {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT":
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	case "DECIMAL", "FLOAT", "DOUBLE", "NUMERIC":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
