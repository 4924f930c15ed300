package handler

import (
	"errors"
	"net/http"
	"strconv"

	"learnalert/internal/application/dto"
	"learnalert/internal/application/service"
	appErrors "learnalert/internal/pkg/errors"
	"learnalert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DeckHandler handles deck/topic/card management requests.
type DeckHandler struct {
	deckService service.DeckService
	log         logger.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(deckService service.DeckService, log logger.Logger) *DeckHandler {
	return &DeckHandler{
		deckService: deckService,
		log:         log,
	}
}

// idParam parses the named numeric path parameter.
func idParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// mapServiceError translates application sentinels into HTTP errors.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, appErrors.ErrDeckNotFound),
		errors.Is(err, appErrors.ErrTopicNotFound),
		errors.Is(err, appErrors.ErrCardNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrEmptyCardSide),
		errors.Is(err, appErrors.ErrTooFewCards),
		errors.Is(err, appErrors.ErrUnknownAction):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// CreateDeck handles POST /api/decks.
func (h *DeckHandler) CreateDeck(c echo.Context) error {
	var req dto.CreateDeckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	id, err := h.deckService.CreateDeck(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, map[string]uint{"id": id})
}

// ListDecks handles GET /api/decks.
func (h *DeckHandler) ListDecks(c echo.Context) error {
	decks, err := h.deckService.ListDecks(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, decks)
}

// GetDeck handles GET /api/decks/:id.
func (h *DeckHandler) GetDeck(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	deck, err := h.deckService.GetDeck(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, deck)
}

// UpdateDeck handles PUT /api/decks/:id.
func (h *DeckHandler) UpdateDeck(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateDeckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.deckService.UpdateDeck(c.Request().Context(), id, req); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteDeck handles DELETE /api/decks/:id.
func (h *DeckHandler) DeleteDeck(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.deckService.DeleteDeck(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateTopic handles POST /api/decks/:id/topics.
func (h *DeckHandler) CreateTopic(c echo.Context) error {
	deckID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	id, err := h.deckService.CreateTopic(c.Request().Context(), deckID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, map[string]uint{"id": id})
}

// UpdateTopic handles PUT /api/topics/:id.
func (h *DeckHandler) UpdateTopic(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.deckService.UpdateTopic(c.Request().Context(), id, req); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteTopic handles DELETE /api/topics/:id.
func (h *DeckHandler) DeleteTopic(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.deckService.DeleteTopic(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateCard handles POST /api/topics/:id/cards.
func (h *DeckHandler) CreateCard(c echo.Context) error {
	topicID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	id, err := h.deckService.CreateCard(c.Request().Context(), topicID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, map[string]uint{"id": id})
}

// UpdateCard handles PUT /api/cards/:id.
func (h *DeckHandler) UpdateCard(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.deckService.UpdateCard(c.Request().Context(), id, req); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCard handles DELETE /api/cards/:id.
func (h *DeckHandler) DeleteCard(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.deckService.DeleteCard(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MoveCard handles POST /api/cards/:id/move.
func (h *DeckHandler) MoveCard(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.MoveCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.deckService.MoveCard(c.Request().Context(), id, req); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
