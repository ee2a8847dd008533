package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bakery/internal/domain/model"
	pkgAuth "github.com/polkiloo/bakery/internal/pkg/auth"
	"github.com/polkiloo/bakery/internal/server/http/dto"
	testhelpers "github.com/polkiloo/bakery/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCookie() *SessionCookie {
	return NewSessionCookie(pkgAuth.NewHMACSigner("secret"), time.Hour)
}

func sessionRouter(facade testhelpers.AuthFacadeStub, cookie *SessionCookie) (*gin.Engine, **model.Session) {
	var seen *model.Session
	router := gin.New()
	router.Use(LoadSession(facade, cookie))
	router.GET("/", func(c *gin.Context) {
		seen = CurrentSession(c)
		c.Status(http.StatusOK)
	})
	admin := router.Group("")
	admin.Use(RequireAdmin(facade))
	admin.GET("/admin", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router, &seen
}

func TestLoadSession(t *testing.T) {
	cookie := newCookie()
	signer := pkgAuth.NewHMACSigner("secret")
	facade := testhelpers.AuthFacadeStub{Sessions: map[string]*model.Session{"s1": {ID: "s1"}}}
	router, seen := sessionRouter(facade, cookie)

	cases := []struct {
		name   string
		cookie string
		wantID string
	}{
		{name: "no cookie"},
		{name: "valid", cookie: signer.Sign("s1"), wantID: "s1"},
		{name: "unsigned", cookie: "s1"},
		{name: "forged", cookie: pkgAuth.NewHMACSigner("other").Sign("s1")},
		{name: "unknown session", cookie: signer.Sign("s2")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			*seen = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tc.cookie})
			}
			router.ServeHTTP(httptest.NewRecorder(), req)

			switch {
			case tc.wantID == "" && *seen != nil:
				t.Fatalf("expected anonymous request, got %+v", *seen)
			case tc.wantID != "" && (*seen == nil || (*seen).ID != tc.wantID):
				t.Fatalf("expected session %q, got %+v", tc.wantID, *seen)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	signer := pkgAuth.NewHMACSigner("secret")
	facade := testhelpers.AuthFacadeStub{Sessions: map[string]*model.Session{
		"guest": {ID: "guest"},
		"admin": testhelpers.AdminSession("admin"),
	}}
	router, _ := sessionRouter(facade, newCookie())

	cases := []struct {
		name   string
		cookie string
		want   int
	}{
		{name: "anonymous", want: http.StatusUnauthorized},
		{name: "guest", cookie: signer.Sign("guest"), want: http.StatusUnauthorized},
		{name: "admin", cookie: signer.Sign("admin"), want: http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tc.cookie})
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, resp.Code)
			}
			if tc.want == http.StatusUnauthorized {
				var body dto.MessageResponse
				if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil || body.Message != "Unauthorized" {
					t.Fatalf("unexpected body %q (err=%v)", resp.Body.String(), err)
				}
			}
		})
	}
}

func TestSessionCookieWrite(t *testing.T) {
	cookie := newCookie()
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	cookie.Write(c, &model.Session{ID: "abc"})

	header := resp.Header().Get("Set-Cookie")
	for _, part := range []string{SessionCookieName + "=abc.", "Path=/", "HttpOnly", "Max-Age=3600", "SameSite=Lax"} {
		if !strings.Contains(header, part) {
			t.Fatalf("expected %q in Set-Cookie header %q", part, header)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", strings.Split(header, ";")[0])
	c.Request = req
	if id, ok := cookie.Read(c); !ok || id != "abc" {
		t.Fatalf("expected to read back session id, got %q %v", id, ok)
	}
}

func TestSessionCookieFollowsSessionExpiry(t *testing.T) {
	cookie := newCookie()
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	cookie.Write(c, &model.Session{ID: "abc", ExpiresAt: time.Now().Add(10 * time.Minute)})

	cookies := resp.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("parse Set-Cookie: no cookie in %q", resp.Header().Get("Set-Cookie"))
	}
	parsed := cookies[0]
	if parsed.MaxAge <= 590 || parsed.MaxAge > 600 {
		t.Fatalf("expected Max-Age bound to the remaining session lifetime, got %d", parsed.MaxAge)
	}
}

func TestCurrentSession(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if CurrentSession(c) != nil {
		t.Fatal("expected nil when not set")
	}
	c.Set(SessionContextKey, "not a session")
	if CurrentSession(c) != nil {
		t.Fatal("expected nil for unexpected value type")
	}
	sess := &model.Session{ID: "x"}
	c.Set(SessionContextKey, sess)
	if CurrentSession(c) != sess {
		t.Fatal("expected stored session")
	}
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://shop.local"}))
	router.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://shop.local")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://shop.local" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
	if resp.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("expected credentials to be allowed for explicit origins")
	}

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://evil.local")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected foreign origin to be rejected, got %d", resp.Code)
	}
}

func TestCORSWildcard(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"*"}))
	router.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://anywhere.local")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func gzipped(t *testing.T, payload string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(payload))
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressRequest(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest(0))
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipped(t, "payload")))
	req.Header.Set("Content-Encoding", "gzip")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("plain")))
	body = ""
	router.ServeHTTP(httptest.NewRecorder(), req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for corrupt gzip, got %d", resp.Code)
	}
}

func TestDecompressRequestLimit(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest(4))
	var readErr error
	router.POST("/", func(c *gin.Context) {
		_, readErr = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipped(t, "longer than four bytes")))
	req.Header.Set("Content-Encoding", "GZIP")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if readErr == nil {
		t.Fatal("expected oversized body to fail")
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(io.ErrUnexpectedEOF)
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	if !strings.Contains(buf.String(), `"level":"INFO"`) || !strings.Contains(buf.String(), `"path":"/ok"`) {
		t.Fatalf("expected info request log, got %q", buf.String())
	}

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	if !strings.Contains(buf.String(), `"level":"ERROR"`) || !strings.Contains(buf.String(), "unexpected EOF") {
		t.Fatalf("expected error request log, got %q", buf.String())
	}
}
