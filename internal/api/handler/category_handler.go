package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

// CategoryHandler serves /api/v1/category.
type CategoryHandler struct {
	repo ports.CategoryRepository
}

func NewCategoryHandler(repo ports.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// List handles GET /api/v1/category/list.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 50)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {array}   domain.Category
// @Router       /api/v1/category/list [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	cats, err := h.repo.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) Count(c echo.Context) error {
	n, err := h.repo.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.Count{Count: n})
}

// ByID handles GET /api/v1/category/id/:id.
func (h *CategoryHandler) ByID(c echo.Context) error {
	id, err := intParam(c, "path", "id", 0)
	if err != nil {
		return err
	}
	cat, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// Lookups handles GET /api/v1/category/lookups and returns every category in
// its short form.
func (h *CategoryHandler) Lookups(c echo.Context) error {
	ctx := c.Request().Context()
	n, err := h.repo.Count(ctx)
	if err != nil {
		return err
	}
	cats, err := h.repo.List(ctx, domain.Page{Limit: int(n) + 1})
	if err != nil {
		return err
	}
	out := make([]domain.CategoryLookup, 0, len(cats))
	for _, cat := range cats {
		out = append(out, domain.CategoryLookup{CategoryID: cat.ID, Name: cat.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /api/v1/category/create. Admin only.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.CategoryInput  true  "Category"
// @Success      201   {object}  domain.Category
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /api/v1/category/create [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var in domain.CategoryInput
	if err := c.Bind(&in); err != nil {
		return err
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	cat, err := h.repo.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}
