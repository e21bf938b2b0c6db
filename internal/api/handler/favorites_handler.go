package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinetrack/favorites-api/internal/api/metrics"
	"github.com/cinetrack/favorites-api/internal/core/domain"
	"github.com/cinetrack/favorites-api/internal/core/ports"
)

type FavoritesHandler struct {
	service ports.FavoritesService
}

func NewFavoritesHandler(service ports.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{service: service}
}

// List returns the authenticated user's favourites, enriched with
// catalog metadata. Items the catalog cannot currently resolve are
// omitted rather than failing the call.
//
// @Summary      List favourites
// @Tags         favourites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Movie
// @Failure      401  {object}  errorResponse
// @Router       /favourites [get]
func (h *FavoritesHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	movies, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		metrics.FavouriteOpsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.FavouriteOpsTotal.WithLabelValues("list", "ok").Inc()
	return c.JSON(http.StatusOK, favouritesListResponse(movies))
}

// Add inserts a catalog item into the favourites set.
//
// @Summary      Add a favourite
// @Tags         favourites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addFavouriteRequest  true  "Catalog item id"
// @Success      200   {object}  favouritesIDsResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /favourites [post]
func (h *FavoritesHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addFavouriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	favourites, err := h.service.Add(c.Request().Context(), userID, req.ItemID)
	if err != nil {
		metrics.FavouriteOpsTotal.WithLabelValues("add", addFailure(err)).Inc()
		return err
	}

	metrics.FavouriteOpsTotal.WithLabelValues("add", "ok").Inc()
	return c.JSON(http.StatusOK, favouritesIDsResponse{Favourites: favourites})
}

// Remove deletes a catalog item from the favourites set. Removing an
// absent id succeeds: the operation is idempotent.
//
// @Summary      Remove a favourite
// @Tags         favourites
// @Produce      json
// @Security     BearerAuth
// @Param        itemId  path      string  true  "Catalog item id"
// @Success      200     {object}  favouritesIDsResponse
// @Failure      401     {object}  errorResponse
// @Router       /favourites/{itemId} [delete]
func (h *FavoritesHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	favourites, err := h.service.Remove(c.Request().Context(), userID, c.Param("itemId"))
	if err != nil {
		metrics.FavouriteOpsTotal.WithLabelValues("remove", "error").Inc()
		return err
	}

	metrics.FavouriteOpsTotal.WithLabelValues("remove", "ok").Inc()
	return c.JSON(http.StatusOK, favouritesIDsResponse{Favourites: favourites})
}

func addFailure(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyFavorited):
		return "duplicate"
	case errors.Is(err, domain.ErrMovieNotFound):
		return "unknown_item"
	default:
		return "error"
	}
}
