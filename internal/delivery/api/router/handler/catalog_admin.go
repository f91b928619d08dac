package handler

import (
	"net/http"

	"bartile/internal/delivery/api/response"
	"bartile/internal/domain/entity"
	"bartile/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogAdmin is the CRUD surface of one catalog.
// Bodies bind straight onto the entity; the catalog normalizes and validates them.
type CatalogAdmin[T entity.CatalogEntity] struct {
	catalog usecase.CatalogUsecase[T]
	noun    string
}

func newCatalogAdmin[T entity.CatalogEntity](catalog usecase.CatalogUsecase[T], noun string) *CatalogAdmin[T] {
	return &CatalogAdmin[T]{catalog: catalog, noun: noun}
}

// List returns every item, inactive ones included.
func (a *CatalogAdmin[T]) List(c echo.Context) error {
	items, err := a.catalog.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

func (a *CatalogAdmin[T]) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid "+a.noun+" ID")
	}

	item, err := a.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

func (a *CatalogAdmin[T]) Create(c echo.Context) error {
	item := new(T)
	if err := c.Bind(item); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid "+a.noun+" input")
	}

	created, err := a.catalog.Create(c.Request().Context(), item)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// Update replaces every editable field of an item.
func (a *CatalogAdmin[T]) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid "+a.noun+" ID")
	}

	item := new(T)
	if err := c.Bind(item); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid "+a.noun+" input")
	}

	updated, err := a.catalog.Update(c.Request().Context(), id, item)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

func (a *CatalogAdmin[T]) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid "+a.noun+" ID")
	}

	if err := a.catalog.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
