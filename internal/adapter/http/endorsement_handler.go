package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend-backend/internal/usecase/endorsement"
)

type EndorsementHandler struct{ uc *endorsement.Usecase }

func NewEndorsementHandler(uc *endorsement.Usecase) *EndorsementHandler {
	return &EndorsementHandler{uc: uc}
}

type endorseReq struct {
	ReceiverID string `json:"receiver_id" validate:"required,hex32"`
}

func (h *EndorsementHandler) Endorse(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	var req endorseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.Endorse(c.Request().Context(), actor, req.ReceiverID); err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "endorsed"})
}

func (h *EndorsementHandler) Unendorse(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	receiverID := c.Param("receiver_id")
	if !validID(receiverID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid receiver_id"})
	}
	if err := h.uc.Unendorse(c.Request().Context(), actor, receiverID); err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "removed"})
}

func (h *EndorsementHandler) Endorsers(c echo.Context) error {
	receiverID := c.Param("account_id")
	if !validID(receiverID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account_id"})
	}
	ids, err := h.uc.Endorsers(c.Request().Context(), receiverID)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"account_id": receiverID, "endorsers": ids})
}
