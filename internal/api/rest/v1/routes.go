package v1

import (
	"net/http"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	reportStore reports.ReportStore,
	reportSettings config.ReportSettings,
	authSettings config.AuthSettings,
	logger logger.Logger) {

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Status: "ok"})
	})

	v1 := r.Group(BasePath) // lookup in version file
	if authSettings.Enabled() {
		v1.Use(OwnerAuthMiddleware([]byte(authSettings.JWTSecret), authSettings.Issuer))
	}

	reportHandler := NewReportHandler(reportStore, reportSettings.MaxPayloadSize, logger)
	v1.POST("/reports", reportHandler.Upload)
	v1.GET("/reports", reportHandler.ListByGroup)
	v1.GET("/reports/:id", reportHandler.Download)
}
