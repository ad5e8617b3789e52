package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

// AnimalHandler serves /api/v1/track/animals.
type AnimalHandler struct {
	repo ports.AnimalRepository
}

func NewAnimalHandler(repo ports.AnimalRepository) *AnimalHandler {
	return &AnimalHandler{repo: repo}
}

// List handles GET /api/v1/track/animals/list.
//
// @Summary      List tracked animals
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 50)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {array}   domain.Animal
// @Router       /api/v1/track/animals/list [get]
func (h *AnimalHandler) List(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	animals, err := h.repo.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}

// Count handles GET /api/v1/track/animals/count.
func (h *AnimalHandler) Count(c echo.Context) error {
	n, err := h.repo.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.Count{Count: n})
}

// ByID handles GET /api/v1/track/animals/id/:id.
//
// @Summary      Get an animal
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Animal id"
// @Success      200  {object}  domain.Animal
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/track/animals/id/{id} [get]
func (h *AnimalHandler) ByID(c echo.Context) error {
	id, err := intParam(c, "path", "id", 0)
	if err != nil {
		return err
	}
	a, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// ByTagID handles GET /api/v1/track/animals/tag-id/:tag_id.
func (h *AnimalHandler) ByTagID(c echo.Context) error {
	a, err := h.repo.FindByTagID(c.Request().Context(), c.Param("tag_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Create handles POST /api/v1/track/animals/create. Admin only.
//
// @Summary      Register an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.AnimalInput  true  "Animal"
// @Success      201   {object}  domain.Animal
// @Failure      422   {object}  map[string]any
// @Router       /api/v1/track/animals/create [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	var in domain.AnimalInput
	if err := c.Bind(&in); err != nil {
		return err
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	a, err := h.repo.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}
