package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	accdomain "trustlend-backend/internal/domain/account"
	"trustlend-backend/internal/usecase/account"
)

type AccountHandler struct{ uc *account.Usecase }

func NewAccountHandler(uc *account.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

type registerAccountReq struct {
	Name string `json:"name" validate:"required,min=1,max=128"`
	Role string `json:"role" validate:"required,oneof=RECEIVER LENDER"`
}

func (h *AccountHandler) Register(c echo.Context) error {
	var req registerAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	acc, err := h.uc.Register(c.Request().Context(), account.RegisterInput{
		Name: req.Name,
		Role: accdomain.Role(req.Role),
	})
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusCreated, acc)
}

func (h *AccountHandler) Get(c echo.Context) error {
	accountID := c.Param("account_id")
	if !validID(accountID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account_id"})
	}
	acc, err := h.uc.Get(c.Request().Context(), accountID)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, acc)
}

// ScoreHistory exposes an account's own score ledger.
func (h *AccountHandler) ScoreHistory(c echo.Context) error {
	actor, ok := requireActor(c)
	if !ok {
		return errUnauthenticated(c)
	}
	accountID := c.Param("account_id")
	if accountID != actor {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "score history is only visible to its owner"})
	}
	events, err := h.uc.ScoreHistory(c.Request().Context(), accountID)
	if err != nil {
		return domainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"account_id": accountID, "events": events})
}
