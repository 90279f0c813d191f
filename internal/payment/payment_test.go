package payment

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(cl *Client) *gin.Engine {
	router := gin.New()
	NewHandler(cl).RegisterRoutes(router)
	return router
}

func postCreate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/payments/sslcommerz/create",
		strings.NewReader(body),
	)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSessionUnconfigured(t *testing.T) {
	cl := NewClient(Config{Sandbox: true, ClientAppURL: "http://localhost:5173"}, http.DefaultClient)

	rec := postCreate(newRouter(cl), `{"amount":499,"currency":"BDT","purpose":"pro"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Degraded mode: a well-formed "not configured" result, not an error.
	assert.JSONEq(
		t,
		`{"checkoutUrl":null,"message":"SSLCOMMERZ credentials not set in env"}`,
		rec.Body.String(),
	)
}

func TestCreateSessionExtractsGatewayURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "store-1", r.Form.Get("store_id"))
		assert.Equal(t, "pass-1", r.Form.Get("store_passwd"))
		assert.Equal(t, "499", r.Form.Get("total_amount"))
		assert.Equal(t, "BDT", r.Form.Get("currency"))
		assert.Equal(t, "bp_1700000000000", r.Form.Get("tran_id"))
		assert.Equal(t, "http://localhost:5173/payment-success", r.Form.Get("success_url"))
		assert.Equal(t, "http://localhost:5173/payment-fail", r.Form.Get("fail_url"))
		assert.Equal(t, "http://localhost:5173/payment-cancel", r.Form.Get("cancel_url"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://x"}`))
	}))
	defer server.Close()

	cl := NewClient(Config{
		StoreID:       "store-1",
		StorePassword: "pass-1",
		Sandbox:       true,
		ClientAppURL:  "http://localhost:5173",
	}, server.Client())
	cl.endpoint = server.URL
	cl.now = func() time.Time { return time.UnixMilli(1700000000000) }

	rec := postCreate(newRouter(cl), `{"amount":499,"purpose":"pro"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"checkoutUrl":"https://x"}`, rec.Body.String())
}

func TestCreateSessionGatewayOmitsURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"FAILED","failedreason":"store credentials invalid"}`))
	}))
	defer server.Close()

	cl := NewClient(Config{
		StoreID:       "store-1",
		StorePassword: "pass-1",
		ClientAppURL:  "http://localhost:5173",
	}, server.Client())
	cl.endpoint = server.URL

	rec := postCreate(newRouter(cl), `{"amount":499}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"checkoutUrl":null}`, rec.Body.String())
}

func TestCreateSessionUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	cl := NewClient(Config{
		StoreID:       "store-1",
		StorePassword: "pass-1",
		ClientAppURL:  "http://localhost:5173",
	}, server.Client())
	cl.endpoint = server.URL

	rec := postCreate(newRouter(cl), `{"amount":499}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed"}`, rec.Body.String())
}

func TestEndpointSelection(t *testing.T) {
	sandbox := NewClient(Config{Sandbox: true}, http.DefaultClient)
	assert.Equal(t, sandboxURL, sandbox.endpoint)

	production := NewClient(Config{}, http.DefaultClient)
	assert.Equal(t, productionURL, production.endpoint)
}
