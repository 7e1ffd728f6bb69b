package admin

import (
	"strings"

	"bolao-backend/internal/domain"
)

// allowedTables is the fixed set of tables the gateway may touch. Anything
// else is rejected before a query is built, regardless of action.
var allowedTables = map[string]struct{}{
	"users_profiles":         {},
	"matches":                {},
	"predictions":            {},
	"teams":                  {},
	"players":                {},
	"tournaments":            {},
	"tournament_seasons":     {},
	"payments":               {},
	"deposits":               {},
	"current_round":          {},
	"prize_pool":             {},
	"user_tournament_points": {},
	"notifications":          {},
}

// ValidateTable checks the allow-list once, before dispatch.
func ValidateTable(table string) error {
	name := strings.TrimSpace(table)
	if _, ok := allowedTables[name]; !ok {
		return domain.InvalidTableError{Table: table}
	}
	return nil
}
