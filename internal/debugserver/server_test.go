package debugserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/records"
)

func writeFixture(t *testing.T, dir, name string, rec record.Encoder) {
	t.Helper()
	buf := make([]byte, rec.EncodedSize())
	if _, err := rec.EncodeToSlice(buf); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".sdpb"), buf, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func testRegistry() map[string]RecordFactory {
	return map[string]RecordFactory{
		"primitives": func() record.Decoder { return &records.Primitives{} },
	}
}

func TestGetFixtureDecodesGoldenFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "primitives", &records.Primitives{U32: 42, Str: "hi"})

	srv := New(Config{TestdataDir: dir}, testRegistry())
	req := httptest.NewRequest(http.MethodGet, "/fixtures/primitives/canonical", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetFixtureUnknownRecord404(t *testing.T) {
	srv := New(Config{TestdataDir: t.TempDir()}, testRegistry())
	req := httptest.NewRequest(http.MethodGet, "/fixtures/nope/canonical", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPostFixtureRequiresBearerToken(t *testing.T) {
	srv := New(Config{JWTSigningKey: "test-signing-key-at-least-32-bytes!"}, testRegistry())
	req := httptest.NewRequest(http.MethodPost, "/fixtures/primitives", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPostFixtureWithValidToken(t *testing.T) {
	secret := "test-signing-key-at-least-32-bytes!"
	srv := New(Config{JWTSigningKey: secret}, testRegistry())

	var audited bool
	srv.OnUpload(func(ctx context.Context, recordName string, bytesConsumed int, ok bool) {
		audited = ok
	})

	rec := records.Primitives{U32: 7}
	buf := make([]byte, rec.EncodedSize())
	if _, err := rec.EncodeToSlice(buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, debugClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Scope:            requiredScope,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/fixtures/primitives", bytes.NewReader(buf))
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !audited {
		t.Fatalf("expected upload callback to report success")
	}
}
