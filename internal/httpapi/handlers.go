package httpapi

import (
	"corrosionengine/domain/errs"
	"corrosionengine/tools"

	"github.com/gin-gonic/gin"
)

func postAssessGalvanic(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.AssessGalvanicRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.AssessGalvanic(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postAssessLocalized(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.AssessLocalizedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.AssessLocalized(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postCalculatePREN(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.CalculatePRENRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.CalculatePREN(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postGeneratePourbaix(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.GeneratePourbaixRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.GeneratePourbaix(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postPredictCO2H2S(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.PredictCO2H2SRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.PredictCO2H2S(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postPredictAeratedChloride(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.PredictAeratedChlorideRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.PredictAeratedChloride(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func getMaterialProperties(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		env, err := svc.GetMaterialProperties(id)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postDOToEh(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.DOToEhRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.DOToEh(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postEhToDO(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.EhToDORequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.EhToDO(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postORPToEh(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.ORPToEhRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.ORPToEh(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postEhToORP(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.EhToORPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.EhToORP(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}

func postScreenMaterials(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tools.ScreenMaterialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errs.NewInputValidation("body", err.Error()))
			return
		}
		env, err := svc.ScreenMaterials(req)
		if err != nil {
			writeError(c, err)
			return
		}
		writeEnvelope(c, env)
	}
}
