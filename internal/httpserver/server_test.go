package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Skotchmaster/pitipaw_catalog/internal/events"
	"github.com/Skotchmaster/pitipaw_catalog/internal/repo"
	"github.com/Skotchmaster/pitipaw_catalog/internal/service"
	"github.com/Skotchmaster/pitipaw_catalog/internal/storage"
)

const (
	mb             = 1024 * 1024
	maxFileSize    = 10 * mb
	maxRequestSize = 11 * mb
)

type testServer struct {
	e      *echo.Echo
	repo   *repo.GormRepo
	events *events.Memory
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	r := repo.NewGormRepo(db)
	require.NoError(t, r.EnsureSchema(context.Background()))

	files, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	pub := &events.Memory{}
	e := New(slog.New(slog.NewJSONHandler(io.Discard, nil)), []string{"http://localhost:3000"})
	Register(e, &Deps{
		ProductHandler: &ProductHTTP{Svc: &service.CatalogService{Repo: r, Events: pub}},
		AdminHandler:   &AdminHTTP{Svc: &service.AdminService{Repo: r, Events: pub}},
		UploadHandler: &UploadHTTP{
			Svc:            &service.ImageService{Store: files, MaxFileSize: maxFileSize},
			MaxRequestSize: maxRequestSize,
		},
		SystemHandler: &SystemHTTP{Svc: &service.SystemService{Counts: r, DB: r}},
	})

	return &testServer{e: e, repo: r, events: pub}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func multipartBody(t *testing.T, field, filename string, data []byte) ([]byte, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes(), w.FormDataContentType()
}

func (s *testServer) upload(t *testing.T, field, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, field, filename, data)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}
