package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskmate/taskmate-api/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type createCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required,hexcolor"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), userID, req.Name, req.Color)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	categories, err := h.categoryService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	categoryID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Update(c.Request().Context(), categoryID, ports.UpdateCategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	categoryID, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.categoryService.Delete(c.Request().Context(), categoryID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
