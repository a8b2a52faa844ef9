package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/alorahq/marketplace/internal/auth"
	"github.com/alorahq/marketplace/internal/orders"
)

func newOrdersServer(t *testing.T) (*httptest.Server, *orders.MemoryStore, string) {
	t.Helper()

	store := orders.NewMemoryStore()
	svc := &orders.Service{Store: store, ServiceName: "test"}
	tokens := auth.NewTokens("test-secret")

	r := NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(Authenticator(tokens))
		(&OrdersHandler{Service: svc}).Register(pr)
	})

	token, err := tokens.Issue(7, "buyer@example.com")
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store, token
}

func do(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestPurchaseRequiresToken(t *testing.T) {
	srv, store, _ := newOrdersServer(t)
	store.SeedProduct(1, 5)

	resp := do(t, http.MethodPost, srv.URL+"/orders", "",
		`{"product_id":1,"quantity":1,"shipping_address":"Av. Central 123"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 5, store.StockOf(1))

	resp = do(t, http.MethodPost, srv.URL+"/orders", "garbage-token",
		`{"product_id":1,"quantity":1,"shipping_address":"Av. Central 123"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPurchaseFlow(t *testing.T) {
	srv, store, token := newOrdersServer(t)
	store.SeedProduct(1, 5)

	resp := do(t, http.MethodPost, srv.URL+"/orders", token,
		`{"product_id":1,"quantity":3,"shipping_address":"Av. Central 123","product_name":"lamp","total_price":19.99}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		OrderID int64 `json:"order_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotZero(t, created.OrderID)
	require.Equal(t, 2, store.StockOf(1))

	// not enough stock left for another 3
	resp = do(t, http.MethodPost, srv.URL+"/orders", token,
		`{"product_id":1,"quantity":3,"shipping_address":"Av. Central 123","product_name":"lamp","total_price":19.99}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPurchaseIgnoresBodyUserID(t *testing.T) {
	srv, store, token := newOrdersServer(t)
	store.SeedProduct(1, 5)

	// user_id in the body is not part of the contract and must not matter
	resp := do(t, http.MethodPost, srv.URL+"/orders", token,
		`{"user_id":999,"product_id":1,"quantity":1,"shipping_address":"Av. Central 123","product_name":"lamp","total_price":19.99}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/orders/by-user/7", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []orders.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	require.Equal(t, int64(7), list[0].UserID)
}

func TestListByUserForbiddenForOthers(t *testing.T) {
	srv, _, token := newOrdersServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/orders/by-user/8", token, "")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCancelFlow(t *testing.T) {
	srv, store, token := newOrdersServer(t)
	store.SeedProduct(1, 5)

	resp := do(t, http.MethodPost, srv.URL+"/orders", token,
		`{"product_id":1,"quantity":2,"shipping_address":"Av. Central 123","product_name":"lamp","total_price":19.99}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		OrderID int64 `json:"order_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, 3, store.StockOf(1))

	url := srv.URL + "/orders/" + strconv.FormatInt(created.OrderID, 10) + "/cancel"
	resp = do(t, http.MethodPatch, url, token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 5, store.StockOf(1))

	// second cancel conflicts and stock stays put
	resp = do(t, http.MethodPatch, url, token, "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, 5, store.StockOf(1))
}

func TestUpdateStatusEndpoint(t *testing.T) {
	srv, store, token := newOrdersServer(t)
	store.SeedProduct(1, 5)

	resp := do(t, http.MethodPost, srv.URL+"/orders", token,
		`{"product_id":1,"quantity":1,"shipping_address":"Av. Central 123","product_name":"lamp","total_price":19.99}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		OrderID int64 `json:"order_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	url := srv.URL + "/orders/" + strconv.FormatInt(created.OrderID, 10) + "/status"
	resp = do(t, http.MethodPatch, url, token, `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// cancelled is not a valid target for the generic update
	resp = do(t, http.MethodPatch, url, token, `{"status":"cancelled"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, http.MethodPatch, url, token, `{"status":"teleported"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, http.MethodPatch, srv.URL+"/orders/999/status", token, `{"status":"shipped"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
