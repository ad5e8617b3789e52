package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

type DashboardHandler struct {
	animals    ports.AnimalRepository
	categories ports.CategoryRepository
}

func NewDashboardHandler(animals ports.AnimalRepository, categories ports.CategoryRepository) *DashboardHandler {
	return &DashboardHandler{animals: animals, categories: categories}
}

// Stats handles GET /api/v1/dashboard/stats. The development backend keeps no
// orders, so the order breakdown is always empty.
//
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Router       /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	types, err := h.categories.Count(ctx)
	if err != nil {
		return err
	}
	byStatus, err := h.animals.CountByStatus(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, domain.DashboardStats{
		TotalAnimalTypes:           int(types),
		TrackingAnimalStatusCounts: byStatus,
		OrderStatusCounts:          []domain.OrderStatusCount{},
	})
}
