package remote

import (
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
)

const configJSON = `{"status":"OK","data":{
	"HTTPConfig":{"Hostname":"cosmos.example.com","ProxyConfig":{"Routes":[
		{"Name":"jellyfin","Mode":"SERVAPP","Target":"http://jellyfin:8096","UseHost":true,"Host":"jf.example.com"},
		{"Name":"docs","Mode":"STATIC","Target":"/srv/docs","UsePathPrefix":true,"PathPrefix":"/docs"}
	]}},
	"CRON":{"backup":{"Name":"backup","Crontab":"0 0 3 * * *","Container":"/jellyfin","Enabled":true}}
}}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(MePath, func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(TokenCookie)
		if err != nil || c.Value != "good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","code":"HTTP004","message":"User not logged in"}`))
			return
		}
		w.Write([]byte(`{"status":"OK","data":{"nickname":"admin"}}`))
	})
	mux.HandleFunc(DNSPath, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("url") {
		case "jf.example.com":
			w.Write([]byte(`{"status":"OK","data":"203.0.113.7"}`))
		case "multi.example.com":
			w.Write([]byte(`{"status":"OK","data":["203.0.113.8","203.0.113.9"]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status":"error","code":"DNS001","message":"no such host"}`))
		}
	})
	mux.HandleFunc(ConfigPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(configJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_RejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "cosmos.example.com", "ftp://cosmos.example.com", "http://[::1"} {
		if _, err := New(u, "", time.Second); err == nil {
			t.Errorf("New(%q) succeeded, want error", u)
		}
	}
}

func TestClient_Me(t *testing.T) {
	srv := newTestServer(t)

	c, _ := New(srv.URL, "good-token", time.Second)
	resp, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if resp.Status != "OK" {
		t.Errorf("Me() status = %q, want OK", resp.Status)
	}

	anon, _ := New(srv.URL+"/", "", time.Second)
	resp, err = anon.Me(context.Background())
	if err != nil {
		t.Fatalf("anonymous Me() error = %v", err)
	}
	if resp.Status != "error" || resp.Code != "HTTP004" {
		t.Errorf("anonymous Me() = %+v, want error/HTTP004", resp)
	}
}

func TestClient_LookupDNS(t *testing.T) {
	srv := newTestServer(t)
	c, _ := New(srv.URL, "", time.Second)

	ip, err := c.LookupDNS(context.Background(), "jf.example.com")
	if err != nil || ip != "203.0.113.7" {
		t.Errorf("LookupDNS() = %q, %v", ip, err)
	}

	ip, err = c.LookupDNS(context.Background(), "multi.example.com")
	if err != nil || ip != "203.0.113.8" {
		t.Errorf("LookupDNS() array = %q, %v", ip, err)
	}

	_, err = c.LookupDNS(context.Background(), "missing.example.com")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Code != "DNS001" || apiErr.Message != "no such host" {
		t.Errorf("APIError = %+v", apiErr)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("DNS failure should not match ErrUnauthorized")
	}
}

func TestClient_Config(t *testing.T) {
	srv := newTestServer(t)
	c, _ := New(srv.URL, "", time.Second)

	cfg, err := c.Config(context.Background())
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	routes := cfg.Routes()
	if len(routes) != 2 || routes[0].Name != "jellyfin" || routes[1].PathPrefix != "/docs" {
		t.Errorf("routes = %+v", routes)
	}
	if job, ok := cfg.CRON["backup"]; !ok || job.Container != "/jellyfin" || !job.Enabled {
		t.Errorf("cron = %+v", cfg.CRON)
	}

	names, err := c.Routes(context.Background())
	if err != nil || len(names) != 2 {
		t.Errorf("Routes() = %v, %v", names.Names(), err)
	}
}

func TestClient_UnauthorizedConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"HTTP004","message":"User not logged in"}`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "expired", time.Second)
	_, err := c.Config(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestClient_DecodesCompressedBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("url") {
		case "br.example.com":
			w.Header().Set("Content-Encoding", "br")
			bw := brotli.NewWriter(w)
			bw.Write([]byte(`{"status":"OK","data":"198.51.100.1"}`))
			bw.Close()
		case "gz.example.com":
			w.Header().Set("Content-Encoding", "gzip")
			gw := gzip.NewWriter(w)
			gw.Write([]byte(`{"status":"OK","data":"198.51.100.2"}`))
			gw.Close()
		}
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "", time.Second)
	if ip, err := c.LookupDNS(context.Background(), "br.example.com"); err != nil || ip != "198.51.100.1" {
		t.Errorf("brotli body = %q, %v", ip, err)
	}
	if ip, err := c.LookupDNS(context.Background(), "gz.example.com"); err != nil || ip != "198.51.100.2" {
		t.Errorf("gzip body = %q, %v", ip, err)
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>proxy error</html>`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "", time.Second)
	if _, err := c.Me(context.Background()); err == nil {
		t.Error("Me() accepted a non-JSON body")
	}
	if _, err := c.Config(context.Background()); err == nil {
		t.Error("Config() accepted a non-JSON body")
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := newTestServer(t)
	c, _ := New(srv.URL, "", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.LookupDNS(ctx, "jf.example.com"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
