package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vytal-health/DashboardBack/internal/reference"
)

type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

func (h *ReferenceHandler) GetStatistics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"overview":   reference.Overview,
		"biomarkers": reference.BiomarkerStatistics,
	})
}

func (h *ReferenceHandler) GetRiskDistribution(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"risk_distribution": reference.RiskDistribution,
	})
}

func (h *ReferenceHandler) GetCorrelations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"correlations": reference.StrongestCorrelations,
	})
}

func (h *ReferenceHandler) GetDemographics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"age":    reference.AgeWiseData,
		"gender": reference.GenderWiseData,
	})
}

func (h *ReferenceHandler) GetKeyFindings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"findings": reference.KeyFindings,
	})
}
