package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend-backend/internal/usecase/offer"
)

type OfferHandler struct{ uc *offer.Usecase }

func NewOfferHandler(uc *offer.Usecase) *OfferHandler { return &OfferHandler{uc: uc} }

type createOfferReq struct {
	Amount       float64 `json:"amount" validate:"required,gte=1,intlike"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,lte=100,dec2"`
	TenorDays    int     `json:"tenor_days" validate:"required,gte=1,lte=3650"`
}

func (h *OfferHandler) Create(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	var req createOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	o, err := h.uc.Create(c.Request().Context(), offer.CreateInput{
		LenderID:     actor,
		Amount:       int(req.Amount),
		InterestRate: req.InterestRate,
		TenorDays:    req.TenorDays,
	})
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

type updateOfferReq struct {
	Amount       *float64 `json:"amount" validate:"omitempty,gte=1,intlike"`
	InterestRate *float64 `json:"interest_rate" validate:"omitempty,gte=0,lte=100,dec2"`
	TenorDays    *int     `json:"tenor_days" validate:"omitempty,gte=1,lte=3650"`
	Active       *bool    `json:"active"`
}

func (h *OfferHandler) Update(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	offerID := c.Param("offer_id")
	if !validID(offerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offer_id"})
	}
	var req updateOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := offer.UpdateInput{InterestRate: req.InterestRate, TenorDays: req.TenorDays, Active: req.Active}
	if req.Amount != nil {
		n := int(*req.Amount)
		in.Amount = &n
	}
	o, err := h.uc.Update(c.Request().Context(), actor, offerID, in)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OfferHandler) Delete(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	offerID := c.Param("offer_id")
	if !validID(offerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offer_id"})
	}
	if err := h.uc.Delete(c.Request().Context(), actor, offerID); err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *OfferHandler) ListMine(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	offers, err := h.uc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"offers": offers})
}
