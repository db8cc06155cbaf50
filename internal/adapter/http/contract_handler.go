package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend-backend/internal/usecase/contract"
)

type ContractHandler struct{ uc *contract.Usecase }

func NewContractHandler(uc *contract.Usecase) *ContractHandler { return &ContractHandler{uc: uc} }

func (h *ContractHandler) contractID(c echo.Context) (string, bool) {
	id := c.Param("contract_id")
	return id, validID(id)
}

func (h *ContractHandler) Get(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	id, ok := h.contractID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contract_id"})
	}
	ct, err := h.uc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

func (h *ContractHandler) Sign(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	id, ok := h.contractID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contract_id"})
	}
	ct, err := h.uc.Sign(c.Request().Context(), actor, id)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

type confirmDisbursalReq struct {
	ProofRef    string `json:"proof_ref" validate:"required,min=1,max=255"`
	ExternalRef string `json:"external_ref" validate:"required,min=1,max=255"`
}

func (h *ContractHandler) ConfirmDisbursal(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	id, ok := h.contractID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contract_id"})
	}
	var req confirmDisbursalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	ct, err := h.uc.ConfirmDisbursal(c.Request().Context(), actor, id, req.ProofRef, req.ExternalRef)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

func (h *ContractHandler) ConfirmReceipt(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	id, ok := h.contractID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contract_id"})
	}
	ct, err := h.uc.ConfirmReceipt(c.Request().Context(), actor, id)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

// InitiateRepayment returns a checkout URL for principal plus interest.
func (h *ContractHandler) InitiateRepayment(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	id, ok := h.contractID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contract_id"})
	}
	url, err := h.uc.InitiateRepayment(c.Request().Context(), actor, id)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"checkout_url": url})
}

// GuarantorPay returns a checkout URL for the guarantor's half-principal
// make-good on a defaulted contract.
func (h *ContractHandler) GuarantorPay(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	id, ok := h.contractID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contract_id"})
	}
	url, err := h.uc.GuarantorPay(c.Request().Context(), actor, id)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"checkout_url": url})
}

func (h *ContractHandler) DisbursalProof(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	id, ok := h.contractID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contract_id"})
	}
	txn, err := h.uc.DisbursalProof(c.Request().Context(), actor, id)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, txn)
}
