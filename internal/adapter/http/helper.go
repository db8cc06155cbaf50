package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	accdomain "trustlend-backend/internal/domain/account"
	contractdomain "trustlend-backend/internal/domain/contract"
	endordomain "trustlend-backend/internal/domain/endorsement"
	lrdomain "trustlend-backend/internal/domain/loanrequest"
	notifdomain "trustlend-backend/internal/domain/notification"
	offerdomain "trustlend-backend/internal/domain/offer"
	"trustlend-backend/internal/domain/uow"
)

// HeaderAccountID carries the authenticated actor, injected upstream.
const HeaderAccountID = "X-Account-Id"

// actorID pulls the authenticated account id from the request. An empty
// return means the edge did not authenticate the caller.
func actorID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(HeaderAccountID))
}

func requireActor(c echo.Context) (string, bool) {
	id := actorID(c)
	if !validID(id) {
		return "", false
	}
	return id, true
}

func errUnauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderAccountID + " header"})
}

// domainErr maps sentinel errors from the core onto HTTP responses. Anything
// unrecognized is treated as an internal failure.
func domainErr(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, accdomain.ErrNotFound),
		errors.Is(err, contractdomain.ErrNotFound),
		errors.Is(err, lrdomain.ErrNotFound),
		errors.Is(err, offerdomain.ErrNotFound),
		errors.Is(err, notifdomain.ErrNotFound),
		errors.Is(err, contractdomain.ErrNoDisbursement),
		errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
	case errors.Is(err, accdomain.ErrWrongRole),
		errors.Is(err, accdomain.ErrBlocked),
		errors.Is(err, contractdomain.ErrNotAParty),
		errors.Is(err, contractdomain.ErrNotLender),
		errors.Is(err, contractdomain.ErrNotReceiver),
		errors.Is(err, contractdomain.ErrNotGuarantor),
		errors.Is(err, lrdomain.ErrNotAuthorized),
		errors.Is(err, lrdomain.ErrNotOwner),
		errors.Is(err, offerdomain.ErrNotOwner):
		code = http.StatusForbidden
	case errors.Is(err, endordomain.ErrAlreadyEndorsed),
		errors.Is(err, endordomain.ErrPermanentlyBlocked),
		errors.Is(err, endordomain.ErrNoActiveEndorsement),
		errors.Is(err, contractdomain.ErrNotSignable),
		errors.Is(err, contractdomain.ErrAlreadySigned),
		errors.Is(err, contractdomain.ErrWrongState),
		errors.Is(err, lrdomain.ErrDuplicateActiveRequest),
		errors.Is(err, lrdomain.ErrRequestNotPending),
		errors.Is(err, lrdomain.ErrAlreadyResolved),
		errors.Is(err, lrdomain.ErrInvalidState),
		errors.Is(err, lrdomain.ErrDuplicateGuarantorReq),
		errors.Is(err, offerdomain.ErrInUse),
		errors.Is(err, uow.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, endordomain.ErrSelfEndorsement),
		errors.Is(err, endordomain.ErrQuotaExceeded),
		errors.Is(err, contractdomain.ErrProofRequired),
		errors.Is(err, lrdomain.ErrInvalidOffer),
		errors.Is(err, lrdomain.ErrEligibilityExceeded),
		errors.Is(err, lrdomain.ErrSelfGuarantee),
		errors.Is(err, lrdomain.ErrNotAnEndorser):
		code = http.StatusUnprocessableEntity
	}
	if code == http.StatusInternalServerError {
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
