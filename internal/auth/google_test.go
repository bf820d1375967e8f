package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestProvider(t *testing.T, profile map[string]interface{}) *GoogleProvider {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"provider-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(profile)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p := NewGoogleProvider("client", "secret", "http://localhost/callback")
	p.conf.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	p.userInfoURL = srv.URL + "/userinfo"
	return p
}

func TestGoogleProvider_AuthCodeURL(t *testing.T) {
	p := NewGoogleProvider("client", "secret", "http://localhost/callback")

	u, err := url.Parse(p.AuthCodeURL("state-123"))
	require.NoError(t, err)
	assert.Equal(t, "state-123", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost/callback", u.Query().Get("redirect_uri"))
}

func TestGoogleProvider_Exchange(t *testing.T) {
	p := newTestProvider(t, map[string]interface{}{
		"email":   "ada@example.com",
		"name":    "Ada",
		"picture": "https://img.example/ada.png",
	})

	profile, err := p.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, "https://img.example/ada.png", profile.Picture)
}

func TestGoogleProvider_ExchangeFailures(t *testing.T) {
	t.Run("bad code", func(t *testing.T) {
		p := newTestProvider(t, map[string]interface{}{"email": "ada@example.com"})
		_, err := p.Exchange(context.Background(), "bad-code")
		assert.Error(t, err)
	})

	t.Run("profile without email", func(t *testing.T) {
		p := newTestProvider(t, map[string]interface{}{"name": "Nobody"})
		_, err := p.Exchange(context.Background(), "good-code")
		assert.Error(t, err)
	})
}
