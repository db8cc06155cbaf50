package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend-backend/internal/usecase/origination"
)

type LoanRequestHandler struct{ uc *origination.Usecase }

func NewLoanRequestHandler(uc *origination.Usecase) *LoanRequestHandler {
	return &LoanRequestHandler{uc: uc}
}

type createLoanRequestReq struct {
	OfferIDs []string `json:"offer_ids" validate:"required,min=1,max=3,dive,hex32"`
}

func (h *LoanRequestHandler) Create(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	var req createLoanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	lr, err := h.uc.CreateLoanRequest(c.Request().Context(), actor, req.OfferIDs)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusCreated, lr)
}

type requestGuarantorReq struct {
	GuarantorID string `json:"guarantor_id" validate:"required,hex32"`
}

func (h *LoanRequestHandler) RequestGuarantor(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	requestID := c.Param("request_id")
	if !validID(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	var req requestGuarantorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	gr, err := h.uc.RequestGuarantor(c.Request().Context(), actor, req.GuarantorID, requestID)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusCreated, gr)
}

type respondGuarantorReq struct {
	Accept *bool `json:"accept" validate:"required"`
}

func (h *LoanRequestHandler) RespondToGuarantorRequest(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	grID := c.Param("guarantor_request_id")
	if !validID(grID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid guarantor_request_id"})
	}
	var req respondGuarantorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	gr, err := h.uc.RespondToGuarantorRequest(c.Request().Context(), actor, grID, *req.Accept)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, gr)
}

// Accept lets a lender take a guarantor-backed request; the contract draft is
// created in the same transaction.
func (h *LoanRequestHandler) Accept(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	requestID := c.Param("request_id")
	if !validID(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	contract, err := h.uc.AcceptByLender(c.Request().Context(), actor, requestID)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusCreated, contract)
}

// Inbox lists guarantor-backed requests referencing one of the lender's
// active offers.
func (h *LoanRequestHandler) Inbox(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	list, err := h.uc.LenderInbox(c.Request().Context(), actor)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"requests": list})
}
