package handlers

import (
	"net/http"

	"financas-api/internal/dto"
	"financas-api/internal/errors"
	"financas-api/internal/models"
	"financas-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create adds a new spending category
// @Summary Create category
// @Description Create a new spending category with a unique name
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category name"
// @Success 201 {object} dto.CategoryResponse "Category created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category already exists"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_003 - Empty category name"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req dto.CreateCategoryRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(req.Name)
	if err != nil {
		switch err {
		case services.ErrCategoryExists:
			return SendError(c, errors.CategoryAlreadyExists)
		case services.ErrEmptyCategoryName:
			return SendError(c, errors.CategoryEmptyName)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// List returns all categories
// @Summary List categories
// @Description Retrieve all categories in alphabetical order. Serves the built-in fallback list when the store is unreachable.
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse "Stored categories, or the fallback list"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, fallback, err := h.categoryService.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListCategoriesResponse{
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
		Fallback:   fallback,
	}
	for i := range categories {
		response.Categories = append(response.Categories, toCategoryResponse(&categories[i]))
	}

	return c.JSON(http.StatusOK, response)
}

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	response := dto.CategoryResponse{
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
	// Fallback entries are not stored rows and carry no ID
	if category.ID != uuid.Nil {
		response.ID = category.ID.String()
	}
	return response
}
