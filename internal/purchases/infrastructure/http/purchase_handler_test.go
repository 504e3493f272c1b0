package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	logmocks "github.com/AngelRosadoWTF/examenapi-angel/gen/mocks/logging"
	purchasemocks "github.com/AngelRosadoWTF/examenapi-angel/gen/mocks/purchases"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerDeps struct {
	commander *purchasemocks.MockPurchaseCommander
	querier   *purchasemocks.MockPurchaseQuerier
	logger    *logmocks.MockLogger
}

type testCase struct {
	name   string
	method string
	path   string
	body   string

	prepareFn       func(t *testing.T, d *handlerDeps)
	expectedStatus  int
	checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func runHandlerCases(t *testing.T, tests []testCase) {
	t.Helper()

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &handlerDeps{
				commander: purchasemocks.NewMockPurchaseCommander(ctrl),
				querier:   purchasemocks.NewMockPurchaseQuerier(ctrl),
				logger:    logmocks.NewMockLogger(ctrl),
			}
			if tt.prepareFn != nil {
				tt.prepareFn(t, d)
			}

			router := gin.New()
			NewPurchaseHandler(d.commander, d.querier, d.logger).RegisterRoutes(router)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, recorder)
			}
		})
	}
}

func payloadMatching(fn func(p domain.PurchasePayload) bool) gomock.Matcher {
	return payloadMatcher{fn: fn}
}

type payloadMatcher struct {
	fn func(p domain.PurchasePayload) bool
}

func (m payloadMatcher) Matches(x any) bool {
	p, ok := x.(domain.PurchasePayload)
	return ok && m.fn(p)
}

func (m payloadMatcher) String() string {
	return "matching purchase payload"
}

func errorBody(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body["error"]
}

func TestPurchaseHandler_CreatePurchase(t *testing.T) {
	t.Parallel()

	runHandlerCases(t, []testCase{
		{
			name:   "created",
			method: http.MethodPost,
			path:   "/purchases",
			body:   `{"user_id":1,"status":"OPEN","details":[{"product_id":1,"quantity":3,"price":5.00}]}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().CreatePurchase(gomock.Any(), payloadMatching(func(p domain.PurchasePayload) bool {
					return *p.UserId == 1 && *p.Status == domain.StatusOpen && len(p.Details) == 1 &&
						p.Details[0].ProductId == 1 && p.Details[0].Quantity == 3 &&
						p.Details[0].Price.Equal(decimal.RequireFromString("5"))
				})).Return(42, nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"id":42,"message":"Purchase created"}`, recorder.Body.String())
			},
		},
		{
			name:   "mounted under api prefix",
			method: http.MethodPost,
			path:   "/api/purchases",
			body:   `{"user_id":1,"status":"OPEN","details":[{"product_id":1,"quantity":1,"price":"2.50"}]}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			method:         http.MethodPost,
			path:           "/purchases",
			body:           `{"user_id":`,
			expectedStatus: http.StatusBadRequest,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "invalid request body", errorBody(t, recorder))
			},
		},
		{
			name:   "validation error",
			method: http.MethodPost,
			path:   "/purchases",
			body:   `{"user_id":1,"status":"OPEN","details":[]}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().CreatePurchase(gomock.Any(), payloadMatching(func(p domain.PurchasePayload) bool {
					return p.Details != nil && len(p.Details) == 0
				})).Return(0, &domain.ValidationError{Msg: "a purchase must contain at least 1 product"})
			},
			expectedStatus: http.StatusBadRequest,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "a purchase must contain at least 1 product", errorBody(t, recorder))
			},
		},
		{
			name:   "insufficient stock inside transaction",
			method: http.MethodPost,
			path:   "/purchases",
			body:   `{"user_id":1,"status":"OPEN","details":[{"product_id":1,"quantity":30,"price":5}]}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
					Return(0, &wrappedErr{inner: domain.NewInsufficientStockError(1, "P1")})
			},
			expectedStatus: http.StatusBadRequest,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "insufficient stock for product 1 (P1)", errorBody(t, recorder))
			},
		},
		{
			name:   "unknown product",
			method: http.MethodPost,
			path:   "/purchases",
			body:   `{"user_id":1,"status":"OPEN","details":[{"product_id":99,"quantity":1,"price":5}]}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
					Return(0, domain.NewProductNotFoundError(99))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			method: http.MethodPost,
			path:   "/purchases",
			body:   `{"user_id":77,"status":"OPEN","details":[{"product_id":1,"quantity":1,"price":5}]}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
					Return(0, &domain.UserNotFoundError{Msg: "user 77 does not exist"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "internal error is not leaked",
			method: http.MethodPost,
			path:   "/purchases",
			body:   `{"user_id":1,"status":"OPEN","details":[{"product_id":1,"quantity":1,"price":5}]}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(0, assert.AnError)
				d.logger.EXPECT().Error("request failed", "method", http.MethodPost, "path", "/purchases", "error", assert.AnError.Error())
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "internal server error", errorBody(t, recorder))
			},
		},
	})
}

func TestPurchaseHandler_UpdatePurchase(t *testing.T) {
	t.Parallel()

	runHandlerCases(t, []testCase{
		{
			name:   "partial update",
			method: http.MethodPut,
			path:   "/purchases/5",
			body:   `{"status":"COMPLETED"}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().UpdatePurchase(gomock.Any(), 5, payloadMatching(func(p domain.PurchasePayload) bool {
					return p.UserId == nil && p.Details == nil && *p.Status == domain.StatusCompleted
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"message":"Purchase updated"}`, recorder.Body.String())
			},
		},
		{
			name:           "non numeric id",
			method:         http.MethodPut,
			path:           "/purchases/abc",
			body:           `{"status":"OPEN"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "purchase not found",
			method: http.MethodPut,
			path:   "/purchases/404",
			body:   `{"status":"OPEN"}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().UpdatePurchase(gomock.Any(), 404, gomock.Any()).
					Return(domain.NewPurchaseNotFoundError(404))
			},
			expectedStatus: http.StatusNotFound,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "purchase 404 not found", errorBody(t, recorder))
			},
		},
		{
			name:   "completed purchase",
			method: http.MethodPut,
			path:   "/purchases/5",
			body:   `{"status":"OPEN"}`,
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().UpdatePurchase(gomock.Any(), 5, gomock.Any()).
					Return(&domain.PurchaseCompletedError{Msg: "purchase 5 is COMPLETED"})
			},
			expectedStatus: http.StatusConflict,
		},
	})
}

func TestPurchaseHandler_DeletePurchase(t *testing.T) {
	t.Parallel()

	runHandlerCases(t, []testCase{
		{
			name:   "deleted",
			method: http.MethodDelete,
			path:   "/purchases/5",
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().DeletePurchase(gomock.Any(), 5).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"message":"Purchase deleted"}`, recorder.Body.String())
			},
		},
		{
			name:   "completed purchase",
			method: http.MethodDelete,
			path:   "/api/purchases/5",
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().DeletePurchase(gomock.Any(), 5).
					Return(&domain.PurchaseCompletedError{Msg: "purchase 5 is COMPLETED"})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "not found",
			method: http.MethodDelete,
			path:   "/purchases/8",
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.commander.EXPECT().DeletePurchase(gomock.Any(), 8).
					Return(domain.NewPurchaseNotFoundError(8))
			},
			expectedStatus: http.StatusNotFound,
		},
	})
}

func TestPurchaseHandler_Queries(t *testing.T) {
	t.Parallel()

	view := domain.PurchaseView{
		Id:           5,
		User:         "Ana",
		Total:        decimal.RequireFromString("15"),
		Status:       domain.StatusOpen,
		PurchaseDate: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Details: []domain.DetailView{
			{Id: 1, Product: "P1", Quantity: 3, Price: decimal.RequireFromString("5"), Subtotal: decimal.RequireFromString("15")},
		},
	}

	runHandlerCases(t, []testCase{
		{
			name:   "get purchase",
			method: http.MethodGet,
			path:   "/purchases/5",
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.querier.EXPECT().GetPurchase(gomock.Any(), 5).Return(view, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{
					"id": 5,
					"user": "Ana",
					"total": 15.00,
					"status": "OPEN",
					"purchase_date": "2025-01-02T03:04:05Z",
					"details": [{"id": 1, "product": "P1", "quantity": 3, "price": 5.00, "subtotal": 15.00}]
				}`, recorder.Body.String())
				assert.Contains(t, recorder.Body.String(), `"total":15.00`)
			},
		},
		{
			name:   "get missing purchase",
			method: http.MethodGet,
			path:   "/purchases/6",
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.querier.EXPECT().GetPurchase(gomock.Any(), 6).
					Return(domain.PurchaseView{}, domain.NewPurchaseNotFoundError(6))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "get with non numeric id",
			method:         http.MethodGet,
			path:           "/purchases/x1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "list purchases",
			method: http.MethodGet,
			path:   "/api/purchases",
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.querier.EXPECT().ListPurchases(gomock.Any()).Return([]domain.PurchaseView{view}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var got []map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Len(t, got, 1)
				assert.EqualValues(t, 5, got[0]["id"])
			},
		},
		{
			name:   "empty list",
			method: http.MethodGet,
			path:   "/purchases",
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.querier.EXPECT().ListPurchases(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "[]", strings.TrimSpace(recorder.Body.String()))
			},
		},
		{
			name:           "health",
			method:         http.MethodGet,
			path:           "/",
			expectedStatus: http.StatusOK,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, healthMessage, recorder.Body.String())
			},
		},
	})
}

type wrappedErr struct {
	inner error
}

func (e *wrappedErr) Error() string {
	return "failed to execute logic within transaction: " + e.inner.Error()
}

func (e *wrappedErr) Unwrap() error {
	return e.inner
}
