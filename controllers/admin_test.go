package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"confetti-orders/models"
	"confetti-orders/utils"
)

func adminControllerForTest(t *testing.T, store *mockStore) *AdminController {
	t.Helper()
	utils.JwtKey = []byte("test-secret")
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAdminController(store, string(hash))
}

func TestAdminLogin(t *testing.T) {
	ac := adminControllerForTest(t, newMockStore())

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	ac.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	ac := adminControllerForTest(t, newMockStore())

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"wrong"}`))
	rec := httptest.NewRecorder()
	ac.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLoginNotConfigured(t *testing.T) {
	ac := NewAdminController(newMockStore(), "")

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	ac.Login(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminGetOrdersNewestFirst(t *testing.T) {
	store := newMockStore(
		pendingOrder("older", "2025-01-01T10:00:00.000Z"),
		pendingOrder("newer", "2025-01-02T10:00:00.000Z"),
	)
	ac := adminControllerForTest(t, store)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	ac.GetOrders(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "newer", orders[0].ID)
	assert.Equal(t, "older", orders[1].ID)
}
