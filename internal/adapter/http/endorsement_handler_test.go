package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	accdomain "trustlend-backend/internal/domain/account"
	endordomain "trustlend-backend/internal/domain/endorsement"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/testutil/accountmock"
	"trustlend-backend/internal/testutil/endorsementmock"
	"trustlend-backend/internal/testutil/notificationmock"
	"trustlend-backend/internal/usecase/endorsement"
)

func newEndorsementEcho(accounts *accountmock.Repo, edges *endorsementmock.Repo) (*echo.Echo, *EndorsementHandler) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	// uowmock import kept local to avoid polluting other tests
	u := endorsement.NewUsecase(passThroughUoW(uow.Repos{
		Accounts:      accounts,
		Endorsements:  edges,
		Notifications: &notificationmock.Repo{},
	}))
	h := NewEndorsementHandler(u)
	e.POST("/endorsements", h.Endorse)
	e.DELETE("/endorsements/:receiver_id", h.Unendorse)
	e.GET("/accounts/:account_id/endorsers", h.Endorsers)
	return e, h
}

func endorseBody(t *testing.T, receiverID string) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(map[string]string{"receiver_id": receiverID})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func TestEndorse_MissingActorHeader(t *testing.T) {
	e, _ := newEndorsementEcho(&accountmock.Repo{}, &endorsementmock.Repo{})

	req := httptest.NewRequest(http.MethodPost, "/endorsements", endorseBody(t, strings.Repeat("b", 32)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestEndorse_InvalidBody(t *testing.T) {
	e, _ := newEndorsementEcho(&accountmock.Repo{}, &endorsementmock.Repo{})

	req := httptest.NewRequest(http.MethodPost, "/endorsements", endorseBody(t, "not-hex"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, strings.Repeat("a", 32))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestEndorse_HappyPath(t *testing.T) {
	receiver := &accdomain.Account{AccountID: strings.Repeat("b", 32), TrustScore: 400, Status: accdomain.StatusActive}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx contextArg, id string) (*accdomain.Account, error) {
			return receiver, nil
		},
	}
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx contextArg, endorserID, receiverID string) (*endordomain.Edge, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	e, _ := newEndorsementEcho(accounts, edges)

	req := httptest.NewRequest(http.MethodPost, "/endorsements", endorseBody(t, strings.Repeat("b", 32)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, strings.Repeat("a", 32))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if receiver.TrustScore != 420 {
		t.Fatalf("receiver score = %d, want 420", receiver.TrustScore)
	}
}

func TestEndorse_AlreadyEndorsedMapsToConflict(t *testing.T) {
	edges := &endorsementmock.Repo{
		GetPairFn: func(ctx contextArg, endorserID, receiverID string) (*endordomain.Edge, error) {
			return &endordomain.Edge{Status: endordomain.StatusActive}, nil
		},
	}
	accounts := &accountmock.Repo{
		GetByAccountIDForUpdateFn: func(ctx contextArg, id string) (*accdomain.Account, error) {
			return &accdomain.Account{AccountID: id, TrustScore: 400}, nil
		},
	}
	e, _ := newEndorsementEcho(accounts, edges)

	req := httptest.NewRequest(http.MethodPost, "/endorsements", endorseBody(t, strings.Repeat("b", 32)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, strings.Repeat("a", 32))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestEndorse_SelfMapsTo422(t *testing.T) {
	e, _ := newEndorsementEcho(&accountmock.Repo{}, &endorsementmock.Repo{})

	self := strings.Repeat("a", 32)
	req := httptest.NewRequest(http.MethodPost, "/endorsements", endorseBody(t, self))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, self)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestEndorsers_List(t *testing.T) {
	edges := &endorsementmock.Repo{
		ListActiveEndorserIDsFn: func(ctx contextArg, receiverID string) ([]string, error) {
			return []string{strings.Repeat("1", 32), strings.Repeat("2", 32)}, nil
		},
	}
	e, _ := newEndorsementEcho(&accountmock.Repo{}, edges)

	req := httptest.NewRequest(http.MethodGet, "/accounts/"+strings.Repeat("b", 32)+"/endorsers", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var body struct {
		Endorsers []string `json:"endorsers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Endorsers) != 2 {
		t.Fatalf("endorsers len = %d, want 2", len(body.Endorsers))
	}
}
