package handlers

import (
	"net/http"

	intconfig "bolao-backend/internal/config"
	"bolao-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Dashboard aggregates the counters shown on the admin home screen.
//
// GET /api/admin/dashboard
func Dashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := resolveAdmin(c); err != nil {
			respondGatewayError(c, err)
			return
		}

		db := intconfig.DB

		var (
			userCount           int64
			pendingPayments     int64
			pendingPaymentTotal float64
			pendingDeposits     int64
			predictionCount     int64
			openMatches         int64
		)

		steps := []struct {
			query string
			dest  []any
		}{
			{"SELECT COUNT(*) FROM users_profiles", []any{&userCount}},
			{"SELECT COUNT(*), COALESCE(SUM(amount),0) FROM payments WHERE status = 'pending'", []any{&pendingPayments, &pendingPaymentTotal}},
			{"SELECT COUNT(*) FROM deposits WHERE status = 'pending'", []any{&pendingDeposits}},
			{"SELECT COUNT(*) FROM predictions", []any{&predictionCount}},
			{"SELECT COUNT(*) FROM matches WHERE status = 'scheduled'", []any{&openMatches}},
		}
		for _, s := range steps {
			if err := db.QueryRow(s.query).Scan(s.dest...); err != nil {
				respondGatewayError(c, domain.QueryError{Op: "dashboard", Err: err})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"users":                 userCount,
				"pending_payments":      pendingPayments,
				"pending_payment_total": pendingPaymentTotal,
				"pending_deposits":      pendingDeposits,
				"predictions":           predictionCount,
				"open_matches":          openMatches,
			},
		})
	}
}
