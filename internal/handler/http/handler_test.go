package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/mock"
	"github.com/MKhiriev/selisih-berat/internal/ratelimit"
	"github.com/MKhiriev/selisih-berat/internal/service"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// shared helpers
// ─────────────────────────────────────────────

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	userClaims  = models.Claims{UserID: 3, Username: "budi", Role: models.RoleUser, Type: models.AccessToken}
	adminClaims = models.Claims{UserID: 1, Username: "admin", Role: models.RoleAdmin, Type: models.AccessToken}
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Timezone: "Asia/Jakarta"},
		Server: config.Server{
			CORSOrigins:    []string{"*"},
			RequestTimeout: 5 * time.Second,
			MaxUploadSize:  1 << 20,
		},
	}
}

type serviceMocks struct {
	auth      *mock.MockAuthService
	users     *mock.MockUserService
	entries   *mock.MockEntryService
	dashboard *mock.MockDashboardService
	appInfo   *mock.MockAppInfoService
}

// newRoutedHandler builds a Handler backed by gomock services. userToken and
// adminToken authenticate as userClaims and adminClaims; any other token is
// rejected.
func newRoutedHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		auth:      mock.NewMockAuthService(ctrl),
		users:     mock.NewMockUserService(ctrl),
		entries:   mock.NewMockEntryService(ctrl),
		dashboard: mock.NewMockDashboardService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	m.auth.EXPECT().ParseAccessToken(gomock.Any(), userToken).Return(userClaims, nil).AnyTimes()
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), adminToken).Return(adminClaims, nil).AnyTimes()
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), gomock.Any()).Return(models.Claims{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	svcs := &service.Services{
		AuthService:      m.auth,
		UserService:      m.users,
		EntryService:     m.entries,
		DashboardService: m.dashboard,
		AppInfoService:   m.appInfo,
	}
	return NewHandler(svcs, nil, testConfig(), prometheus.NewRegistry(), logger.Nop()), m
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func doJSON(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return doRequest(t, h, method, path, token, reader, "application/json")
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
	Detail  string            `json:"detail"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	limiters := &ratelimit.Limiters{}
	log := logger.Nop()

	h := NewHandler(svcs, limiters, testConfig(), prometheus.NewRegistry(), log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, limiters, h.limiters)
	assert.Same(t, log, h.logger)
	assert.Equal(t, "Asia/Jakarta", h.loc.String())
	assert.Equal(t, int64(1<<20), h.cfg.MaxUploadSize)
}

func TestNewHandler_NilLimitersDisableRateLimiting(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, testConfig(), nil, logger.Nop())

	require.NotNil(t, h.limiters)
	assert.Nil(t, h.limiters.Auth)
	assert.Nil(t, h.limiters.API)
}

func TestNewHandler_RegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewHandler(&service.Services{}, nil, testConfig(), reg, logger.Nop())

	// a second handler on the same registry collides
	assert.Panics(t, func() {
		NewHandler(&service.Services{}, nil, testConfig(), reg, logger.Nop())
	})
}

func newPreflight(path, method string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", "https://gudang.example")
	req.Header.Set("Access-Control-Request-Method", method)
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
