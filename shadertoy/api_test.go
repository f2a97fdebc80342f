package shadertoy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

const apiShader = `{"Shader":{"info":{"id":"abc123","name":"Seascape","username":"TDM"},
"renderpass":[{"inputs":[{"channel":0,"ctype":"texture","src":"/media/a/noise.png"}],
"outputs":[{"id":37,"channel":0}],"code":"void mainImage(out vec4 c, in vec2 p){c=vec4(1.0);}",
"name":"Image","type":"image"}]}}`

const rawShaderJSON = `[{"info":{"id":"priv01","name":"Hidden","username":"someone"},
"renderpass":[{"inputs":[{"id":"XsXGR8","filepath":"/media/previz/buffer00.png","type":"buffer","channel":1}],
"outputs":[{"id":"4dfGRr","channel":0}],"code":"// image","name":"Image","type":"image"}]}]`

type fakeSite struct {
	apiCalls atomic.Int32
	rawCalls atomic.Int32
}

func (f *fakeSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/shaders/query/test":
		if r.URL.Query().Get("key") != "good" {
			w.Write([]byte(`{"Error":"Invalid key"}`))
			return
		}
		w.Write([]byte(`{"Shaders":0}`))
	case r.URL.Path == "/api/v1/shaders/abc123":
		f.apiCalls.Add(1)
		w.Write([]byte(apiShader))
	case strings.HasPrefix(r.URL.Path, "/api/v1/shaders/"):
		f.apiCalls.Add(1)
		w.Write([]byte(`{"Error":"Shader not found"}`))
	case r.URL.Path == "/shadertoy" && r.Method == http.MethodPost:
		f.rawCalls.Add(1)
		if !strings.Contains(r.FormValue("s"), "priv01") {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(rawShaderJSON))
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, key string, opts ...Option) (*Client, *fakeSite) {
	t.Helper()
	site := &fakeSite{}
	srv := httptest.NewServer(site)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithBaseURL(srv.URL), WithHTTPClient(srv.Client())}, opts...)
	return NewClient(key, opts...), site
}

func TestFetch(t *testing.T) {
	c, site := newTestClient(t, "good")
	resp, err := c.Fetch(context.Background(), "https://www.shadertoy.com/view/abc123/")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !resp.IsAPI {
		t.Error("IsAPI = false for an API response")
	}
	if resp.Shader.Info.Name != "Seascape" || len(resp.Shader.RenderPass) != 1 {
		t.Errorf("unexpected shader %+v", resp.Shader)
	}
	if in := resp.Shader.RenderPass[0].Inputs[0]; in.CType != "texture" || in.Src != "/media/a/noise.png" {
		t.Errorf("input = %+v", in)
	}
	if site.rawCalls.Load() != 0 {
		t.Error("raw endpoint used for a public shader")
	}
}

func TestFetchRawFallback(t *testing.T) {
	c, site := newTestClient(t, "good")
	resp, err := c.Fetch(context.Background(), "priv01")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if resp.IsAPI {
		t.Error("IsAPI = true for a raw response")
	}
	if site.rawCalls.Load() != 1 {
		t.Errorf("raw calls = %d, want 1", site.rawCalls.Load())
	}
	in := resp.Shader.RenderPass[0].Inputs[0]
	if in.CType != "buffer" || in.Src != "/media/previz/buffer00.png" || in.Channel != 1 {
		t.Errorf("converted input = %+v", in)
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		env  string
		id   string
		want string
	}{
		{"missing shader", "good", "", "nothere", "raw shader response is empty"},
		{"no key", "", "", "abc123", "SHADERTOY_KEY"},
		{"bad env key", "", "bad", "abc123", "Invalid key"},
		{"empty id", "good", "", "", "empty shader id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHADERTOY_KEY", tt.env)
			c, _ := newTestClient(t, tt.key)
			_, err := c.Fetch(context.Background(), tt.id)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestFetchEnvKey(t *testing.T) {
	t.Setenv("SHADERTOY_KEY", "good")
	c, _ := newTestClient(t, "")
	if _, err := c.Fetch(context.Background(), "abc123"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if c.APIKey != "good" {
		t.Errorf("APIKey = %q after validation", c.APIKey)
	}
}

func TestFetchCache(t *testing.T) {
	dir := t.TempDir()
	c, site := newTestClient(t, "good", WithCache(dir))

	for i := 0; i < 2; i++ {
		if _, err := c.Fetch(context.Background(), "abc123"); err != nil {
			t.Fatalf("Fetch #%d: %v", i, err)
		}
	}
	if got := site.apiCalls.Load(); got != 1 {
		t.Errorf("API calls = %d, want 1", got)
	}

	data, err := os.ReadFile(filepath.Join(dir, "abc123.json"))
	if err != nil {
		t.Fatalf("cache file: %v", err)
	}
	var cached ShadertoyResponse
	if err := json.Unmarshal(data, &cached); err != nil || cached.Shader == nil {
		t.Fatalf("cache contents: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Fetch(context.Background(), "broken"); err == nil {
		t.Error("expected an error for a cache entry without a shader")
	}
}

func TestShaderID(t *testing.T) {
	tests := map[string]string{
		"abc123":                                "abc123",
		"https://www.shadertoy.com/view/abc123":  "abc123",
		"https://www.shadertoy.com/view/abc123/": "abc123",
	}
	for in, want := range tests {
		if got := ShaderID(in); got != want {
			t.Errorf("ShaderID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultCacheDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	t.Setenv("HOME", base)
	t.Setenv("LOCALAPPDATA", base)
	dir, err := DefaultCacheDir("shaders")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(dir, base) || filepath.Base(dir) != "shaders" {
		t.Errorf("dir = %q", dir)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("cache dir not created: %v", err)
	}
}
