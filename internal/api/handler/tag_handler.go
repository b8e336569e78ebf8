package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskmate/taskmate-api/internal/core/ports"
)

type TagHandler struct {
	tagService ports.TagService
}

func NewTagHandler(tagService ports.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

type createTagRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *TagHandler) Create(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	var req createTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, err := h.tagService.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) List(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	tags, err := h.tagService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) Delete(c echo.Context) error {
	tagID, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.tagService.Delete(c.Request().Context(), tagID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
