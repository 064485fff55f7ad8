package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/middleware"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/session"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := session.NewMemoryStore(cache.NewLRUCache[session.Session](10, time.Hour))
	m := session.NewManager(logger, store, nil)

	rider, err := m.Login(context.Background(), entities.RoleRider, 7)
	require.NoError(t, err)
	vendor, err := m.Login(context.Background(), entities.RoleVendor, 3)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(string(s.Role)))
	})
	h := middleware.Session(m, entities.RoleRider)(next)

	testCases := []struct {
		name       string
		header     string
		value      string
		wantStatus int
		wantBody   string
	}{
		{name: "session header", header: middleware.SessionHeader, value: rider.Token, wantStatus: http.StatusOK, wantBody: "rider"},
		{name: "bearer token", header: "Authorization", value: "Bearer " + rider.Token, wantStatus: http.StatusOK, wantBody: "rider"},
		{name: "missing token", wantStatus: http.StatusUnauthorized, wantBody: "unauthorized"},
		{name: "unknown token", header: middleware.SessionHeader, value: "nope", wantStatus: http.StatusUnauthorized, wantBody: "unauthorized"},
		{name: "wrong role", header: middleware.SessionHeader, value: vendor.Token, wantStatus: http.StatusForbidden, wantBody: "forbidden"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
