//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - catalog: create category/product in the back office, browse publicly
//   - cart + checkout: stock decremented, cart cleared, wa.me link built
//   - order lifecycle: cancel restocks once, re-activation re-subtracts
//   - slug collision: second "Roupas" gets an id suffix
//   - promotion: public price drops while the campaign is active

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LandLandeiro/oba-moda-afro/internal/config"
	"github.com/LandLandeiro/oba-moda-afro/internal/infra"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"
	"github.com/LandLandeiro/oba-moda-afro/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, headers map[string]string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func (e *testEnv) auth() map[string]string {
	return map[string]string{"Authorization": "Bearer " + e.token}
}

func (e *testEnv) session(id string) map[string]string {
	return map[string]string{"X-Session-ID": id}
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("obamoda_test"),
		tcPostgres.WithUsername("obamoda"),
		tcPostgres.WithPassword("obamoda"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		CartTTLHours:       1,
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		WhatsAppNumber:     "+5515997479931",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed the back-office admin
	hash, err := bcrypt.GenerateFromPassword([]byte("obamoda2026"), 10)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{Email: "admin@e2e.test", PasswordHash: string(hash)}).Error)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": "admin@e2e.test", "password": "obamoda2026"}),
		nil,
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

type productBody struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Variations []struct {
		ID    string `json:"id"`
		Size  string `json:"size"`
		Stock int    `json:"stock"`
	} `json:"variations"`
	CurrentPrice string  `json:"current_price"`
	OnSale       bool    `json:"on_sale"`
	TotalStock   int     `json:"total_stock"`
	Warning      *string `json:"warning"`
}

func createProduct(t *testing.T, env *testEnv, name string, price string, stock int) productBody {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/admin/products",
		jsonBody(t, map[string]any{
			"name":  name,
			"price": price,
			"variations": []map[string]any{
				{"size": "M", "stock": stock},
			},
		}),
		env.auth(),
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p productBody
	decodeJSON(t, resp, &p)
	return p
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CatalogBrowsing(t *testing.T) {
	env := setupTestEnv(t)

	p := createProduct(t, env, "Vestido Dashiki", "120.00", 5)
	assert.Equal(t, "vestido-dashiki", p.Slug)

	// public product page by slug
	resp := do(t, env.server, "GET", "/v1/products/vestido-dashiki", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page productBody
	decodeJSON(t, resp, &page)
	assert.Equal(t, 5, page.TotalStock)

	// public listing sees it
	resp = do(t, env.server, "GET", "/v1/products", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, resp, &list)
	assert.Equal(t, int64(1), list.Total)
}

func TestE2E_CheckoutDecrementsStock(t *testing.T) {
	env := setupTestEnv(t)

	p := createProduct(t, env, "Camisa Kente", "90.00", 4)
	variationID := p.Variations[0].ID
	sess := env.session("e2e-cart-1")

	addResp := do(t, env.server, "POST", "/v1/cart/items",
		jsonBody(t, map[string]any{"product_id": p.ID, "variation_id": variationID, "quantity": 2}),
		sess,
	)
	require.Equal(t, http.StatusOK, addResp.StatusCode)
	addResp.Body.Close()

	coResp := do(t, env.server, "POST", "/v1/checkout", nil, sess)
	require.Equal(t, http.StatusCreated, coResp.StatusCode)
	var checkout struct {
		OrderNumber int    `json:"order_number"`
		TotalPrice  string `json:"total_price"`
		WhatsAppURL string `json:"whatsapp_url"`
	}
	decodeJSON(t, coResp, &checkout)
	assert.Equal(t, 1, checkout.OrderNumber)
	assert.Equal(t, "180", checkout.TotalPrice[:3])
	assert.Contains(t, checkout.WhatsAppURL, "wa.me")

	// stock went down on the product page
	resp := do(t, env.server, "GET", "/v1/products/camisa-kente", nil, nil)
	var page productBody
	decodeJSON(t, resp, &page)
	assert.Equal(t, 2, page.TotalStock)

	// cart is now empty
	cartResp := do(t, env.server, "GET", "/v1/cart", nil, sess)
	var cart struct {
		Items []any `json:"items"`
	}
	decodeJSON(t, cartResp, &cart)
	assert.Empty(t, cart.Items)

	// order landed in the back office as pendente
	listResp := do(t, env.server, "GET", "/v1/admin/orders", nil, env.auth())
	var orders struct {
		Data []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	decodeJSON(t, listResp, &orders)
	require.Len(t, orders.Data, 1)
	assert.Equal(t, "pendente", orders.Data[0].Status)
}

func TestE2E_OrderCancelAndReactivate(t *testing.T) {
	env := setupTestEnv(t)

	p := createProduct(t, env, "Saia Capulana", "60.00", 2)
	sess := env.session("e2e-cart-2")

	do(t, env.server, "POST", "/v1/cart/items",
		jsonBody(t, map[string]any{"product_id": p.ID, "variation_id": p.Variations[0].ID, "quantity": 2}),
		sess,
	).Body.Close()
	coResp := do(t, env.server, "POST", "/v1/checkout", nil, sess)
	require.Equal(t, http.StatusCreated, coResp.StatusCode)
	var checkout struct {
		OrderID string `json:"order_id"`
	}
	decodeJSON(t, coResp, &checkout)

	statusPath := fmt.Sprintf("/v1/admin/orders/%s/status", checkout.OrderID)

	// cancel → stock credited back
	cancelResp := do(t, env.server, "PATCH", statusPath,
		jsonBody(t, map[string]string{"status": "cancelado"}), env.auth())
	require.Equal(t, http.StatusOK, cancelResp.StatusCode)
	var cancelled struct {
		Status    string `json:"status"`
		Restocked bool   `json:"restocked"`
	}
	decodeJSON(t, cancelResp, &cancelled)
	assert.True(t, cancelled.Restocked)

	page := getProduct(t, env, "saia-capulana")
	assert.Equal(t, 2, page.TotalStock)

	// reactivate → stock re-subtracted
	reactResp := do(t, env.server, "PATCH", statusPath,
		jsonBody(t, map[string]string{"status": "pendente"}), env.auth())
	require.Equal(t, http.StatusOK, reactResp.StatusCode)
	reactResp.Body.Close()

	page = getProduct(t, env, "saia-capulana")
	assert.Equal(t, 0, page.TotalStock)

	// cancel again, drain the stock elsewhere, then try to reactivate
	do(t, env.server, "PATCH", statusPath,
		jsonBody(t, map[string]string{"status": "cancelado"}), env.auth()).Body.Close()

	sess2 := env.session("e2e-cart-3")
	do(t, env.server, "POST", "/v1/cart/items",
		jsonBody(t, map[string]any{"product_id": p.ID, "variation_id": p.Variations[0].ID, "quantity": 2}),
		sess2,
	).Body.Close()
	co2 := do(t, env.server, "POST", "/v1/checkout", nil, sess2)
	require.Equal(t, http.StatusCreated, co2.StatusCode)
	co2.Body.Close()

	blocked := do(t, env.server, "PATCH", statusPath,
		jsonBody(t, map[string]string{"status": "pendente"}), env.auth())
	require.Equal(t, http.StatusOK, blocked.StatusCode)
	var rejected struct {
		Status  string  `json:"status"`
		Warning *string `json:"warning"`
	}
	decodeJSON(t, blocked, &rejected)
	assert.Equal(t, "cancelado", rejected.Status)
	require.NotNil(t, rejected.Warning)
}

func TestE2E_SlugCollision(t *testing.T) {
	env := setupTestEnv(t)

	first := createProduct(t, env, "Roupas", "10.00", 1)
	assert.Equal(t, "roupas", first.Slug)
	assert.Nil(t, first.Warning)

	second := createProduct(t, env, "Roupas", "10.00", 1)
	assert.Equal(t, "roupas-"+second.ID[:8], second.Slug)
	assert.NotNil(t, second.Warning)
}

func TestE2E_PromotionChangesPublicPrice(t *testing.T) {
	env := setupTestEnv(t)

	p := createProduct(t, env, "Blusa Adire", "100.00", 3)

	start := time.Now().Add(-time.Hour).Format(time.RFC3339)
	end := time.Now().Add(time.Hour).Format(time.RFC3339)
	promoResp := do(t, env.server, "POST", "/v1/admin/promotions",
		jsonBody(t, map[string]any{
			"name":             "Black Friday",
			"is_active":        true,
			"start_date":       start,
			"end_date":         end,
			"discount_percent": "30",
			"product_ids":      []string{p.ID},
		}),
		env.auth(),
	)
	require.Equal(t, http.StatusCreated, promoResp.StatusCode)
	promoResp.Body.Close()

	page := getProduct(t, env, "blusa-adire")
	assert.True(t, page.OnSale)
	assert.Equal(t, "70", page.CurrentPrice[:2])
}

func getProduct(t *testing.T, env *testEnv, slug string) productBody {
	t.Helper()
	resp := do(t, env.server, "GET", "/v1/products/"+slug, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p productBody
	decodeJSON(t, resp, &p)
	return p
}
