package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bistro-boss/internal/data/repository/memory"
	"bistro-boss/pkg/token"
	"bistro-boss/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type testApp struct {
	t      *testing.T
	router http.Handler
}

func newTestApp(t *testing.T, strict bool) *testApp {
	t.Helper()

	issuer, err := token.NewIssuer(testSecret, 2*time.Hour)
	require.NoError(t, err)

	config := &utils.Config{
		Auth: utils.AuthConfig{StrictWrites: strict},
		CORS: utils.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	app := Wiring(memory.NewRepository(), issuer, config, zap.NewNop())
	return &testApp{t: t, router: app.Router}
}

func (a *testApp) do(method, path, bearer, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) token(email string) string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/jwt", "", `{"email":"`+email+`"}`)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(a.t, res.Token)
	return res.Token
}

// createUser registers email and returns the inserted id.
func (a *testApp) createUser(email string) string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/users", "", `{"name":"N","email":"`+email+`"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return insertedID(a.t, rec)
}

func insertedID(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var res struct {
		InsertedID *string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.InsertedID)
	return *res.InsertedID
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGatedRoutesWithoutHeaderAre401(t *testing.T) {
	app := newTestApp(t, false)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/admin/u@x.com"},
		{http.MethodDelete, "/menu/64b7f0c2a1b2c3d4e5f60718"},
	} {
		rec := app.do(tc.method, tc.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.path)
		assert.Equal(t, "unauthorize access", decode[utils.ErrorResponse](t, rec).Message)
	}
}

func TestSchemeWithoutTokenIs401(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInvalidOrExpiredTokenIs403(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodGet, "/users", "garbage", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden access", decode[utils.ErrorResponse](t, rec).Message)

	foreign, err := token.NewIssuer("someone-else", time.Hour)
	require.NoError(t, err)
	raw, err := foreign.Issue(token.Identity{Email: "u@x.com"})
	require.NoError(t, err)

	rec = app.do(http.MethodGet, "/users/admin/u@x.com", raw, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNonAdminGetsForbiddenOnUserList(t *testing.T) {
	app := newTestApp(t, false)
	app.createUser("u@x.com")
	tok := app.token("u@x.com")

	rec := app.do(http.MethodGet, "/users", tok, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"forbidden access"}`, rec.Body.String())
}

func TestPromoteThenAdminSelfCheck(t *testing.T) {
	app := newTestApp(t, false)
	id := app.createUser("u@x.com")
	tok := app.token("u@x.com")

	rec := app.do(http.MethodGet, "/users/admin/u@x.com", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String())

	rec = app.do(http.MethodPatch, "/users/admin/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode[map[string]any](t, rec)["modifiedCount"])

	rec = app.do(http.MethodGet, "/users/admin/u@x.com", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":true}`, rec.Body.String())

	rec = app.do(http.MethodGet, "/users", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)
}

func TestAdminCheckForAnotherEmailIs401(t *testing.T) {
	app := newTestApp(t, false)
	tok := app.token("u@x.com")

	rec := app.do(http.MethodGet, "/users/admin/other@x.com", tok, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorize access", decode[utils.ErrorResponse](t, rec).Message)
}

func TestCreateUserTwiceKeepsOneRecord(t *testing.T) {
	app := newTestApp(t, false)
	app.createUser("dup@x.com")

	rec := app.do(http.MethodPost, "/users", "", `{"email":"dup@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User Already Exist","insertedId":null}`, rec.Body.String())

	id := app.createUser("admin@x.com")
	require.Equal(t, http.StatusOK, app.do(http.MethodPatch, "/users/admin/"+id, "", "").Code)

	rec = app.do(http.MethodGet, "/users", app.token("admin@x.com"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	count := 0
	for _, u := range decode[[]map[string]any](t, rec) {
		if u["email"] == "dup@x.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMenuRoundTripAndCategoryFilter(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodPost, "/add-menu", "",
		`{"name":"Caesar","recipe":"lettuce","image":"https://img.example/c.png","category":"Salad","price":9.5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := insertedID(t, rec)

	rec = app.do(http.MethodPost, "/add-menu", "", `{"name":"Greek","category":"salad","price":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(http.MethodGet, "/menu/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[map[string]any](t, rec)
	assert.Equal(t, id, item["_id"])
	assert.Equal(t, "Caesar", item["name"])
	assert.Equal(t, "lettuce", item["recipe"])
	assert.Equal(t, "https://img.example/c.png", item["image"])
	assert.Equal(t, "Salad", item["category"])
	assert.Equal(t, 9.5, item["price"])

	for _, path := range []string{"/menu?category=Salad", "/menu-category?category=Salad"} {
		rec = app.do(http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		items := decode[[]map[string]any](t, rec)
		require.Len(t, items, 1, path)
		assert.Equal(t, "Salad", items[0]["category"])
	}

	rec = app.do(http.MethodGet, "/menu", "", "")
	assert.Len(t, decode[[]map[string]any](t, rec), 2)
}

func TestMenuMissingItemIsNull(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodGet, "/menu/64b7f0c2a1b2c3d4e5f60718", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	rec = app.do(http.MethodGet, "/menu/not-an-id", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenuPatchAndAdminDelete(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodPost, "/add-menu", "", `{"name":"Soup","category":"soup","price":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := insertedID(t, rec)

	rec = app.do(http.MethodPatch, "/menu?id="+id, "", `{"price":6}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(http.MethodGet, "/menu/"+id, "", "")
	item := decode[map[string]any](t, rec)
	assert.Equal(t, "Soup", item["name"])
	assert.EqualValues(t, 6, item["price"])

	rec = app.do(http.MethodPatch, "/menu?id="+id, "", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	app.createUser("u@x.com")
	rec = app.do(http.MethodDelete, "/menu/"+id, app.token("u@x.com"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminID := app.createUser("admin@x.com")
	require.Equal(t, http.StatusOK, app.do(http.MethodPatch, "/users/admin/"+adminID, "", "").Code)

	rec = app.do(http.MethodDelete, "/menu/"+id, app.token("admin@x.com"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
}

func TestReviews(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodPost, "/reviews", "", `{"name":"A","details":"great","rating":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(http.MethodGet, "/reviews", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)
}

func TestCartIsolationAndValidation(t *testing.T) {
	app := newTestApp(t, false)

	add := func(email string) *httptest.ResponseRecorder {
		return app.do(http.MethodPost, "/carts", "",
			`{"newItem":{"menuId":"m1","email":"`+email+`","name":"Soup","price":4}}`)
	}
	rec := add("a@x.com")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := insertedID(t, rec)
	require.Equal(t, http.StatusCreated, add("b@x.com").Code)

	rec = app.do(http.MethodGet, "/carts?email=a@x.com", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode[[]map[string]any](t, rec)
	require.Len(t, items, 1)
	for _, item := range items {
		assert.Equal(t, "a@x.com", item["email"])
	}

	rec = app.do(http.MethodPost, "/carts", "", `{"menuId":"m1","email":"a@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[map[string]any](t, rec)["errors"], "newItem")

	rec = app.do(http.MethodGet, "/carts", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodDelete, "/carts/"+first, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
}

func TestInvalidBodyIs400(t *testing.T) {
	app := newTestApp(t, false)

	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/users", "", `{not json`).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/jwt", "", ``).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/jwt", "", `{"name":"no email"}`).Code)
}

func TestStrictPolicyGatesWrites(t *testing.T) {
	app := newTestApp(t, true)

	rec := app.do(http.MethodPost, "/add-menu", "", `{"name":"Soup","category":"soup","price":4}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	id := app.createUser("u@x.com")
	rec = app.do(http.MethodPatch, "/users/admin/"+id, app.token("u@x.com"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(http.MethodDelete, "/users/"+id, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// registration and reads stay open
	rec = app.do(http.MethodGet, "/menu", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAmbientRoutes(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bistro boss is running...", rec.Body.String())

	rec = app.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bistro_http_requests_total")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestPolicyFromConfig(t *testing.T) {
	assert.Equal(t, DefaultPolicy(), PolicyFromConfig(false))
	strict := PolicyFromConfig(true)
	assert.Equal(t, AccessAdmin, strict.MenuCreate)
	assert.Equal(t, AccessAdmin, strict.UserDelete)
	assert.Equal(t, AccessAuthenticated, strict.UserCheck)
	assert.Equal(t, "admin", AccessAdmin.String())
}

func TestAdminSelfCheckWithEncodedEmail(t *testing.T) {
	app := newTestApp(t, false)
	id := app.createUser("u@x.com")
	tok := app.token("u@x.com")
	require.Equal(t, http.StatusOK, app.do(http.MethodPatch, "/users/admin/"+id, "", "").Code)

	rec := app.do(http.MethodGet, "/users/admin/u%40x.com", tok, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"admin":true}`, rec.Body.String())

	rec = app.do(http.MethodGet, "/users/admin/other%40x.com", tok, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminSelfCheckWithBrokenEscapeIs400(t *testing.T) {
	app := newTestApp(t, false)
	tok := app.token("u@x.com")

	req := httptest.NewRequest(http.MethodGet, "/users/admin/u", nil)
	req.URL.RawPath = "/users/admin/u%ZZx.com"
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenuRoundTripKeepsExtraFields(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodPost, "/add-menu", "",
		`{"name":"X","category":"Salad","price":5,"tags":"veg","calories":120}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := insertedID(t, rec)

	rec = app.do(http.MethodGet, "/menu/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[map[string]any](t, rec)
	assert.Equal(t, "X", item["name"])
	assert.Equal(t, "veg", item["tags"])
	assert.EqualValues(t, 120, item["calories"])

	rec = app.do(http.MethodPatch, "/menu?id="+id, "", `{"calories":90,"spicy":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(http.MethodGet, "/menu?category=Salad", "", "")
	items := decode[[]map[string]any](t, rec)
	require.Len(t, items, 1)
	assert.EqualValues(t, 90, items[0]["calories"])
	assert.Equal(t, true, items[0]["spicy"])
	assert.Equal(t, "veg", items[0]["tags"])
}

func TestExtraFieldsOnUsersReviewsAndCarts(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodPost, "/users", "", `{"email":"u@x.com","phone":"123","role":"admin"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(http.MethodGet, "/users/admin/u@x.com", app.token("u@x.com"), "")
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String(), "a posted role is not stored")

	rec = app.do(http.MethodPost, "/reviews", "", `{"name":"A","details":"ok","rating":4,"photo":"p.png"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	reviews := decode[[]map[string]any](t, app.do(http.MethodGet, "/reviews", "", ""))
	require.Len(t, reviews, 1)
	assert.Equal(t, "p.png", reviews[0]["photo"])

	rec = app.do(http.MethodPost, "/carts", "", `{"newItem":{"menuId":"m1","email":"u@x.com","quantity":2}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	items := decode[[]map[string]any](t, app.do(http.MethodGet, "/carts?email=u@x.com", "", ""))
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0]["quantity"])
}

func TestOperatorFieldNamesAre400(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodPost, "/add-menu", "", `{"name":"X","category":"Salad","price":5,"$set":{"a":1}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrailingDataInBodyIs400(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodPost, "/jwt", "", `{"email":"a@x.com"} junk`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPost, "/users", "", `{"email":"a@x.com"}{"email":"b@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
