package admin

import (
	"testing"

	"bolao-backend/internal/domain"
)

func TestValidateTableAllowsFixedSet(t *testing.T) {
	allowed := []string{
		"users_profiles", "matches", "predictions", "teams", "players",
		"tournaments", "tournament_seasons", "payments", "deposits",
		"current_round", "prize_pool", "user_tournament_points", "notifications",
	}
	for _, table := range allowed {
		if err := ValidateTable(table); err != nil {
			t.Fatalf("table %q should be allowed, got %v", table, err)
		}
	}
}

func TestValidateTableRejectsEverythingElse(t *testing.T) {
	for _, table := range []string{"", "mysql.user", "information_schema", "payments; DROP TABLE users_profiles", "Payments"} {
		err := ValidateTable(table)
		if err == nil {
			t.Fatalf("table %q should be rejected", table)
		}
		if !domain.IsInvalidTable(err) {
			t.Fatalf("expected InvalidTableError for %q, got %v", table, err)
		}
	}
}
