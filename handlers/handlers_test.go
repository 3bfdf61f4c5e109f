package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campus-eats-api/cart"
	"campus-eats-api/checkout"
	"campus-eats-api/favorites"
	"campus-eats-api/handlers"
	"campus-eats-api/inbox"
	"campus-eats-api/prefs"
	"campus-eats-api/promo"
	"campus-eats-api/routes"
	"campus-eats-api/session"
	"campus-eats-api/storage"
	"campus-eats-api/toast"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := storage.NewMemory()
	log := zap.NewNop()
	sessions := session.NewStore(kv, log)
	carts := cart.NewStore(kv, log)
	in := inbox.NewStore(kv, log)
	toasts := toast.NewManager()
	t.Cleanup(toasts.Close)
	promos := promo.NewCatalog()

	app := &handlers.App{
		Sessions:  sessions,
		Carts:     carts,
		Favorites: favorites.NewStore(kv, log),
		Inbox:     in,
		Toasts:    toasts,
		Prefs:     prefs.NewStore(kv, log),
		Promos:    promos,
		Checkout:  checkout.NewService(sessions, carts, in, promos, log),
		Log:       log,
	}

	r := gin.New()
	routes.SetupRoutes(r, app)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, r *gin.Engine) {
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Aisyah",
		"email":    "a@siswa.um.edu.my",
		"phone":    "0123456789",
		"password": "Abcd1234",
		"type":     "student",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func login(t *testing.T, r *gin.Engine) (string, map[string]any) {
	w := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@siswa.um.edu.my",
		"password": "Abcd1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode(t, w)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token, resp
}

func TestSignupLoginCheckoutFlow(t *testing.T) {
	r := newTestRouter(t)

	register(t, r)
	token, loginResp := login(t, r)

	account := loginResp["account"].(map[string]any)
	assert.Equal(t, false, account["is_verified"])
	// first signup-driven login shows onboarding, exactly once
	assert.Equal(t, true, loginResp["show_onboarding"])

	// add item x, price 5, qty 2
	w := do(t, r, http.MethodPost, "/api/cart/items", token, gin.H{
		"id":       "x",
		"name":     "Nasi Lemak",
		"price":    5,
		"venue":    "Cafe Uno",
		"quantity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cartResp := decode(t, w)
	assert.EqualValues(t, 2, cartResp["count"])
	assert.EqualValues(t, 10, cartResp["total"])

	// complete checkout for that venue
	w = do(t, r, http.MethodPost, "/api/checkout", token, gin.H{"venue": "Cafe Uno"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode(t, w)["order"].(map[string]any)
	assert.EqualValues(t, 12.5, order["total"])

	// order appended to history with the checkout total
	w = do(t, r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	ordersResp := decode(t, w)
	assert.EqualValues(t, 1, ordersResp["count"])

	// cart no longer contains lines for that venue
	w = do(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["count"])

	// a second login is no longer the first one
	_, secondLogin := login(t, r)
	assert.Equal(t, false, secondLogin["show_onboarding"])
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	t.Run("wrong student domain", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"name":     "A",
			"email":    "a@gmail.com",
			"phone":    "0123456789",
			"password": "Abcd1234",
			"type":     "student",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"name":     "A",
			"email":    "a@siswa.um.edu.my",
			"phone":    "0123456789",
			"password": "abcdefgh",
			"type":     "student",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad phone", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"name":     "A",
			"email":    "a@siswa.um.edu.my",
			"phone":    "12345",
			"password": "Abcd1234",
			"type":     "student",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		register(t, r)
		w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"name":     "A",
			"email":    "a@siswa.um.edu.my",
			"phone":    "0123456789",
			"password": "Abcd1234",
			"type":     "student",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestVerifyEmailFlow(t *testing.T) {
	r := newTestRouter(t)
	register(t, r)
	token, _ := login(t, r)

	w := do(t, r, http.MethodPost, "/api/auth/verify", token, gin.H{"code": "000000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/verify", token, gin.H{"code": "123456"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	account := decode(t, w)["account"].(map[string]any)
	assert.Equal(t, true, account["is_verified"])
}

func TestChangePasswordFlow(t *testing.T) {
	r := newTestRouter(t)
	register(t, r)
	token, _ := login(t, r)

	w := do(t, r, http.MethodPost, "/api/auth/password", token, gin.H{
		"current_password": "Wrong999",
		"new_password":     "Efgh5678",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/password", token, gin.H{
		"current_password": "Abcd1234",
		"new_password":     "Efgh5678",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// old password no longer works
	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@siswa.um.edu.my",
		"password": "Abcd1234",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenDiesWithSession(t *testing.T) {
	r := newTestRouter(t)
	register(t, r)
	token, _ := login(t, r)

	w := do(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// the token no longer names the active session
	w = do(t, r, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotificationsEndpoints(t *testing.T) {
	r := newTestRouter(t)
	register(t, r)
	token, _ := login(t, r)

	// first load seeds the welcome entry
	w := do(t, r, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.EqualValues(t, 1, resp["unread_count"])

	w = do(t, r, http.MethodPut, "/api/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/notifications", token, nil)
	resp = decode(t, w)
	assert.EqualValues(t, 0, resp["unread_count"])
}

func TestPromoEndpoints(t *testing.T) {
	r := newTestRouter(t)
	register(t, r)
	token, _ := login(t, r)

	w := do(t, r, http.MethodGet, "/api/promos", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, decode(t, w)["count"])

	w = do(t, r, http.MethodPost, "/api/promos/apply", token, gin.H{"code": "SAVE20", "subtotal": 20})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	discount := decode(t, w)["discount"].(map[string]any)
	assert.EqualValues(t, 4, discount["amount"])

	w = do(t, r, http.MethodPost, "/api/promos/apply", token, gin.H{"code": "SAVE20", "subtotal": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToastEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/toasts", "", gin.H{
		"severity":    "info",
		"message":     "Welcome back",
		"duration_ms": 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["toast"].(map[string]any)["id"].(string)

	w = do(t, r, http.MethodGet, "/api/toasts", "", nil)
	toasts := decode(t, w)["toasts"].([]any)
	require.Len(t, toasts, 1)

	w = do(t, r, http.MethodDelete, "/api/toasts/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/toasts", "", nil)
	assert.Empty(t, decode(t, w)["toasts"])
}
