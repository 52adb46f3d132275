// Package httpapi wires tools.Service onto gin.Engine routes, one per
// spec.md §6.1 operation, plus the translation from a domain/errs sentinel
// into an HTTP status and internal/apperr code (spec.md §7).
package httpapi

import (
	"net/http"

	"corrosionengine/domain/errs"
	"corrosionengine/internal/apperr"
	"corrosionengine/internal/corrlog"
	"corrosionengine/tools"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin.Engine that serves every tool-dispatch operation.
func NewRouter(svc *tools.Service, logger *corrlog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	r.POST("/tools/assess_galvanic", postAssessGalvanic(svc))
	r.POST("/tools/assess_localized", postAssessLocalized(svc))
	r.POST("/tools/calculate_pren", postCalculatePREN(svc))
	r.POST("/tools/generate_pourbaix", postGeneratePourbaix(svc))
	r.POST("/tools/predict_co2_h2s", postPredictCO2H2S(svc))
	r.POST("/tools/predict_aerated_chloride", postPredictAeratedChloride(svc))
	r.GET("/tools/material_properties/:id", getMaterialProperties(svc))
	r.POST("/tools/redox/do_to_eh", postDOToEh(svc))
	r.POST("/tools/redox/eh_to_do", postEhToDO(svc))
	r.POST("/tools/redox/orp_to_eh", postORPToEh(svc))
	r.POST("/tools/redox/eh_to_orp", postEhToORP(svc))
	r.POST("/tools/screen_materials", postScreenMaterials(svc))

	return r
}

func requestLogger(logger *corrlog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}

// writeEnvelope JSON-encodes a successful provenance.Envelope with 200 OK.
func writeEnvelope(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// writeError classifies a domain/errs sentinel into the status code spec.md
// §7 assigns it and writes a uniform {code, message} body.
func writeError(c *gin.Context, err error) {
	code := classify(err)
	status := statusFor(code)
	c.JSON(status, gin.H{"code": code, "message": err.Error()})
}

func classify(err error) string {
	switch {
	case errs.IsInputValidation(err):
		return apperr.CodeInputValidation
	case errs.IsOutOfValidatedRegion(err):
		return apperr.CodeOutOfValidatedRegion
	case errs.IsSolverNonConvergence(err):
		return apperr.CodeSolverNonConvergence
	case errs.IsTier2Unavailable(err):
		return apperr.CodeTier2Unavailable
	case errs.IsCatalogLoad(err):
		return apperr.CodeCatalogLoad
	default:
		return apperr.CodeInternalError
	}
}

func statusFor(code string) int {
	switch code {
	case apperr.CodeInputValidation:
		return http.StatusBadRequest
	case apperr.CodeOutOfValidatedRegion:
		return http.StatusUnprocessableEntity
	case apperr.CodeSolverNonConvergence:
		return http.StatusUnprocessableEntity
	case apperr.CodeTier2Unavailable:
		return http.StatusUnprocessableEntity
	case apperr.CodeCatalogLoad:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
