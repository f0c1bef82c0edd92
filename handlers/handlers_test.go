package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ratfit/handlers"
	"ratfit/repository"
	"ratfit/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newRouter() *mux.Router {
	svc := service.NewService(repository.NewMemoryRepository(), nil)
	return handlers.NewRouter(handlers.NewHandler(svc, nil))
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestSignupHandler_Validation(t *testing.T) {
	type args struct {
		body interface{}
	}
	tests := []struct {
		name       string
		args       args
		wantFields []string
	}{
		{
			name:       "missing username",
			args:       args{body: map[string]interface{}{"homeGymId": "powerhouse"}},
			wantFields: []string{"username"},
		},
		{
			name:       "missing everything",
			args:       args{body: map[string]interface{}{}},
			wantFields: []string{"username", "homeGymId"},
		},
		{
			name: "awayGymIds of wrong type",
			args: args{body: map[string]interface{}{
				"username":   "alice",
				"homeGymId":  "powerhouse",
				"awayGymIds": "iron-temple",
			}},
			wantFields: []string{"awayGymIds"},
		},
		{
			name: "empty away gym id",
			args: args{body: map[string]interface{}{
				"username":   "alice",
				"homeGymId":  "powerhouse",
				"awayGymIds": []string{"iron-temple", ""},
			}},
			wantFields: []string{"awayGymIds[1]"},
		},
		{
			name: "unknown home gym",
			args: args{body: map[string]interface{}{
				"username":  "alice",
				"homeGymId": "nowhere",
			}},
			wantFields: []string{"homeGymId"},
		},
		{
			name:       "malformed JSON",
			args:       args{body: "{not json"},
			wantFields: []string{"body"},
		},
	}

	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := doJSON(t, r, http.MethodPost, "/signup", tt.args.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "Invalid input", out["message"])

			errs := out["errors"].([]interface{})
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.(map[string]interface{})["field"].(string))
			}
			require.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestSignupHandler_DuplicateUsername(t *testing.T) {
	r := newRouter()
	body := map[string]interface{}{
		"username":   "alice",
		"homeGymId":  "powerhouse",
		"awayGymIds": []string{"iron-temple"},
	}

	rec, out := doJSON(t, r, http.MethodPost, "/signup", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])
	user := out["user"].(map[string]interface{})
	require.NotEmpty(t, user["id"])
	require.Equal(t, float64(0), user["streak"])
	require.Equal(t, []interface{}{"iron-temple"}, user["awayGymIds"])

	rec, out = doJSON(t, r, http.MethodPost, "/signup", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Username already exists", out["message"])
}

func TestCheckinHandler(t *testing.T) {
	r := newRouter()

	rec, out := doJSON(t, r, http.MethodPost, "/checkin", map[string]string{"userId": "u1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid input", out["message"])

	// unknown user: the check-in is still recorded
	rec, out = doJSON(t, r, http.MethodPost, "/checkin", map[string]string{
		"userId": "ghost",
		"gymId":  "powerhouse",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])
	checkin := out["checkin"].(map[string]interface{})
	require.Equal(t, "ghost", checkin["userId"])
	require.Equal(t, "powerhouse", checkin["gymId"])

	rec, out = doJSON(t, r, http.MethodGet, "/gyms/powerhouse", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(424), out["checkins"])
	require.Equal(t, float64(4240), out["revenue"])
}

func TestBookHandler(t *testing.T) {
	r := newRouter()

	rec, out := doJSON(t, r, http.MethodPost, "/book", map[string]string{
		"userId": "u1",
		"gymId":  "iron-temple",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs := out["errors"].([]interface{})
	require.Equal(t, "date", errs[0].(map[string]interface{})["field"])

	rec, out = doJSON(t, r, http.MethodPost, "/book", map[string]string{
		"userId": "u1",
		"gymId":  "iron-temple",
		"date":   "next tuesday",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])
	booking := out["booking"].(map[string]interface{})
	require.Equal(t, "next tuesday", booking["date"])
	require.NotEmpty(t, booking["id"])
}

func TestGymsHandler_SeedStats(t *testing.T) {
	r := newRouter()

	for _, path := range []string{"/gyms", "/api/gyms"} {
		rec, out := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, out["gyms"], 6)
		require.Equal(t, map[string]interface{}{
			"totalCheckins": float64(1893),
			"activeUsers":   float64(631),
			"totalRevenue":  float64(18930),
		}, out["stats"])
	}
}

func TestGymHandlers_NotFound(t *testing.T) {
	r := newRouter()

	for _, path := range []string{"/gyms/nowhere", "/gyms/nowhere/checkin-code"} {
		rec, out := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Gym not found", out["message"])
	}

	rec, out := doJSON(t, r, http.MethodGet, "/gyms/fit-zone/checkin-code", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ratfit://checkin/fit-zone", out["checkinUri"])
	require.Equal(t, "fit-zone-qr", out["qrCode"])
}

func TestUserHandler(t *testing.T) {
	r := newRouter()

	rec, out := doJSON(t, r, http.MethodGet, "/user/ghost", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", out["message"])

	rec, out = doJSON(t, r, http.MethodGet, "/user/ghost/bookings", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", out["message"])

	rec, _ = doJSON(t, r, http.MethodPost, "/signup", map[string]interface{}{
		"username":  "solo",
		"homeGymId": "strength-hub",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, out = doJSON(t, r, http.MethodGet, "/user/solo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "strength-hub", out["homeGym"].(map[string]interface{})["id"])
	require.Nil(t, out["awayGym"])
	require.Equal(t, []interface{}{}, out["awayGyms"])
	require.Equal(t, []interface{}{}, out["recentActivity"])

	rec, out = doJSON(t, r, http.MethodGet, "/user/solo/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []interface{}{}, out["bookings"])
}

func TestHealthHandler(t *testing.T) {
	rec, out := doJSON(t, newRouter(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", out["status"])
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSignupHandler_BodyTooLarge(t *testing.T) {
	body := map[string]interface{}{
		"username":  strings.Repeat("a", 2<<20),
		"homeGymId": "powerhouse",
	}
	rec, out := doJSON(t, newRouter(), http.MethodPost, "/signup", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, "Request body too large", out["message"])
}

func TestRouter_Fallbacks(t *testing.T) {
	type args struct {
		method string
		path   string
	}
	tests := []struct {
		name       string
		args       args
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "unknown path",
			args:       args{method: http.MethodGet, path: "/nope"},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not found",
		},
		{
			name:       "unknown path under api",
			args:       args{method: http.MethodGet, path: "/api/nope"},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not found",
		},
		{
			name:       "wrong method",
			args:       args{method: http.MethodGet, path: "/signup"},
			wantStatus: http.StatusMethodNotAllowed,
			wantMsg:    "Method not allowed",
		},
	}

	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := doJSON(t, r, tt.args.method, tt.args.path, nil)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.Equal(t, tt.wantMsg, out["message"])
			require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}
