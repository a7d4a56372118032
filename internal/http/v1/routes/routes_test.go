package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/janisto/hello-service/internal/platform/logging"
	appmiddleware "github.com/janisto/hello-service/internal/platform/middleware"
	"github.com/janisto/hello-service/internal/platform/respond"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())
	router.Use(
		appmiddleware.RequestID(),
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	Register(NewAPI(router, "test"))
	return router
}

func TestRegisterRoutesHello(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-hello")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"message":"Hello, World!"}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestDispatch(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"greeting", http.MethodGet, "/hello", http.StatusOK},
		{"post hello", http.MethodPost, "/hello", http.StatusMethodNotAllowed},
		{"put hello", http.MethodPut, "/hello", http.StatusMethodNotAllowed},
		{"delete hello", http.MethodDelete, "/hello", http.StatusMethodNotAllowed},
		{"options hello", http.MethodOptions, "/hello", http.StatusMethodNotAllowed},
		{"trailing slash", http.MethodGet, "/hello/", http.StatusNotFound},
		{"case differs", http.MethodGet, "/Hello", http.StatusNotFound},
		{"root", http.MethodGet, "/", http.StatusNotFound},
		{"missing", http.MethodGet, "/missing", http.StatusNotFound},
		{"post missing", http.MethodPost, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(tt.method, tt.path, nil))
			if resp.Code != tt.want {
				t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.path, tt.want, resp.Code)
			}
		})
	}
}

func TestFrameworkRoutesAreNotMounted(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/openapi.json", "/openapi.yaml", "/docs", "/schemas/Data.json"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusNotFound {
			t.Fatalf("GET %s: expected 404, got %d", path, resp.Code)
		}
	}
}

func TestNewAPIRegistersSingleOperation(t *testing.T) {
	api := NewAPI(chi.NewRouter(), "test")
	Register(api)

	paths := api.OpenAPI().Paths
	if len(paths) != 1 {
		t.Fatalf("expected exactly one path, got %d", len(paths))
	}
	item, ok := paths["/hello"]
	if !ok || item.Get == nil {
		t.Fatalf("expected GET /hello operation, got %+v", paths)
	}
	if item.Post != nil || item.Put != nil || item.Delete != nil {
		t.Fatal("expected no other methods on /hello")
	}
	if api.OpenAPI().Info.Title != Title {
		t.Fatalf("expected title %q, got %q", Title, api.OpenAPI().Info.Title)
	}
}
