package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend-backend/internal/usecase/settlement"
)

// PaymentHandler receives callbacks from the external payment collaborator.
// The edge proxy authenticates the gateway before these reach us.
type PaymentHandler struct{ uc *settlement.Usecase }

func NewPaymentHandler(uc *settlement.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type paymentCallbackReq struct {
	ContractID string `json:"contract_id" validate:"required,hex32"`
	OrderRef   string `json:"order_ref" validate:"required,min=1,max=128"`
	Status     string `json:"status" validate:"required,oneof=COMPLETED FAILED"`
}

func (h *PaymentHandler) Callback(c echo.Context) error {
	var req paymentCallbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.uc.HandlePaymentEvent(c.Request().Context(), settlement.PaymentEvent{
		Type:       settlement.PaymentEventType(req.Status),
		ContractID: req.ContractID,
		OrderRef:   req.OrderRef,
	})
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "accepted"})
}
