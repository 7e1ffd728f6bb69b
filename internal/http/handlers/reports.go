package handlers

import (
	"net/http"

	"bolao-backend/internal/http/middleware"
	"bolao-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PaymentsReportPDF renders the admin payments report.
//
// GET /api/admin/reports/payments.pdf
func PaymentsReportPDF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := resolveAdmin(c); err != nil {
			respondGatewayError(c, err)
			return
		}

		svc := services.ReportService{RequestID: middleware.GetRequestID(c)}
		pdfBytes, filename, err := svc.PaymentsReport()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}
