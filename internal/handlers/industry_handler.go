package handlers

import (
	stderrors "errors"
	"strings"

	"msme-carbon/internal/dto"
	"msme-carbon/internal/errors"
	"msme-carbon/internal/models"
	"msme-carbon/internal/services"
	"msme-carbon/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// IndustryHandler handles classification, assessment and sector catalog requests
type IndustryHandler struct {
	classifier services.ClassifierServiceInterface
	assessor   services.CarbonAssessmentServiceInterface
}

// NewIndustryHandler creates a new industry handler
func NewIndustryHandler(
	classifier services.ClassifierServiceInterface,
	assessor services.CarbonAssessmentServiceInterface,
) *IndustryHandler {
	return &IndustryHandler{
		classifier: classifier,
		assessor:   assessor,
	}
}

// Classify classifies a message into an industry sector.
// Unmatched messages are not an error; they classify as other with confidence 0.
func (h *IndustryHandler) Classify(c echo.Context) error {
	var req dto.ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationMalformedBody, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.Details(err)...))
	}

	result := h.classifier.ClassifyIndustryWithRegion(c.Request().Context(), req.Text, req.Sender, req.RegionHint)
	return SendData(c, result)
}

// Assess classifies a message and weights the transaction amount by the sector's carbon weightages
func (h *IndustryHandler) Assess(c echo.Context) error {
	var req dto.AssessRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationMalformedBody, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.Details(err)...))
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return SendError(c, errors.AssessmentInvalidAmount, errors.WithDetails("Amount must be a decimal number"))
	}

	ctx := c.Request().Context()
	result := h.classifier.ClassifyIndustryWithRegion(ctx, req.Text, req.Sender, req.RegionHint)

	category := models.TransactionCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	assessment, err := h.assessor.Assess(ctx, result, amount, category)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrNegativeAmount):
			return SendError(c, errors.AssessmentInvalidAmount, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrInvalidTransactionCategory):
			return SendError(c, errors.AssessmentInvalidCategory, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return SendData(c, dto.AssessResponse{
		Classification: result,
		Assessment:     assessment,
	})
}

// ListIndustries returns presentation data for every declared sector in declaration order
func (h *IndustryHandler) ListIndustries(c echo.Context) error {
	industries := h.classifier.GetAllIndustries()
	return SendData(c, dto.IndustriesResponse{
		Industries: industries,
		Count:      len(industries),
	})
}

// GetIndustry returns the presentation data and model of one sector
func (h *IndustryHandler) GetIndustry(c echo.Context) error {
	sector, ok := models.ParseSector(c.Param("sector"))
	if !ok {
		return SendError(c, errors.SectorNotFound, errors.WithDetails("Unknown sector: "+c.Param("sector")))
	}

	resp := dto.IndustryDetailResponse{Industry: h.classifier.GetIndustryInfo(sector)}
	if model, ok := h.classifier.GetSectorModel(sector); ok {
		resp.Model = model
	}
	return SendData(c, resp)
}
