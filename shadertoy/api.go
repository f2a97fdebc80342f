// Package shadertoy fetches shaders from shadertoy.com and turns their
// render passes into WebGL2 fragment sources ready for translation.
package shadertoy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/richinsley/glreflect/logging"
)

const (
	defaultAPIURL  = "https://www.shadertoy.com/api/v1"
	defaultSiteURL = "https://www.shadertoy.com"
	userAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_3) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/43.0.2357.124 Safari/537.36"
)

// --- Structs for Shadertoy API Response ---

type ShadertoyResponse struct {
	Shader *Shader `json:"Shader"`
	Error  string  `json:"Error,omitempty"`
	IsAPI  bool    `json:"isAPI,omitempty"`
}

type Shader struct {
	Info       ShaderInfo   `json:"info"`
	RenderPass []RenderPass `json:"renderpass"`
}

type ShaderInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type RenderPass struct {
	Inputs  []Input  `json:"inputs"`
	Outputs []Output `json:"outputs"`
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
}

type Input struct {
	Channel int     `json:"channel"`
	CType   string  `json:"ctype"`
	Src     string  `json:"src"`
	Sampler Sampler `json:"sampler"`
}

type Output struct {
	Id      int `json:"id"`
	Channel int `json:"channel"`
}

type Sampler struct {
	Filter   string `json:"filter"`
	Wrap     string `json:"wrap"`
	VFlip    string `json:"vflip"`
	SRGB     string `json:"srgb"`
	Internal string `json:"internal"`
}

// raw shader data is ever so slightly different from the API response.
type rawShaderResponse []rawShader

type rawShader struct {
	Info          ShaderInfo      `json:"info"`
	RawRenderPass []rawRenderPass `json:"renderpass"`
}

type rawRenderPass struct {
	Inputs  []rawInput  `json:"inputs"`
	Outputs []rawOutput `json:"outputs"`
	Code    string      `json:"code"`
	Name    string      `json:"name"`
	Type    string      `json:"type"`
}

type rawInput struct {
	Id       string  `json:"id"`
	Filepath string  `json:"filepath"`
	Type     string  `json:"type"`
	Channel  int     `json:"channel"`
	Sampler  Sampler `json:"sampler"`
}

type rawOutput struct {
	Id      string `json:"id"`
	Channel int    `json:"channel"`
}

func rawShaderToShader(raw rawShader) *Shader {
	shader := &Shader{
		Info:       raw.Info,
		RenderPass: make([]RenderPass, len(raw.RawRenderPass)),
	}
	for i, rPass := range raw.RawRenderPass {
		pass := RenderPass{
			Inputs:  make([]Input, len(rPass.Inputs)),
			Outputs: make([]Output, len(rPass.Outputs)),
			Code:    rPass.Code,
			Name:    rPass.Name,
			Type:    rPass.Type,
		}
		for j, inp := range rPass.Inputs {
			pass.Inputs[j] = Input{
				Channel: inp.Channel,
				CType:   inp.Type,
				Src:     inp.Filepath,
				Sampler: inp.Sampler,
			}
		}
		for j, out := range rPass.Outputs {
			pass.Outputs[j] = Output{Channel: out.Channel}
		}
		shader.RenderPass[i] = pass
	}
	return shader
}

// Client talks to the Shadertoy API. A zero CacheDir disables the on-disk
// shader cache.
type Client struct {
	APIKey   string
	CacheDir string

	httpClient *http.Client
	apiURL     string
	siteURL    string
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithBaseURL points the client at a different host, which serves both the
// /api/v1 endpoints and the raw /shadertoy endpoint.
func WithBaseURL(base string) Option {
	return func(cl *Client) {
		base = strings.TrimSuffix(base, "/")
		cl.apiURL = base + "/api/v1"
		cl.siteURL = base
	}
}

// WithCache enables the shader cache in dir.
func WithCache(dir string) Option {
	return func(cl *Client) { cl.CacheDir = dir }
}

// NewClient creates a client. An empty apiKey is read from SHADERTOY_KEY
// when the first request is made.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		APIKey:     apiKey,
		httpClient: &http.Client{Transport: &http.Transport{Proxy: http.ProxyFromEnvironment}},
		apiURL:     defaultAPIURL,
		siteURL:    defaultSiteURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultCacheDir returns the OS-specific cache directory for subdir,
// creating it if needed.
func DefaultCacheDir(subdir string) (string, error) {
	var baseCacheDir string
	switch runtime.GOOS {
	case "windows":
		baseCacheDir = os.Getenv("LOCALAPPDATA")
		if baseCacheDir == "" {
			return "", fmt.Errorf("LOCALAPPDATA environment variable not set")
		}
	case "darwin":
		homeDir := os.Getenv("HOME")
		if homeDir == "" {
			return "", fmt.Errorf("HOME environment variable not set")
		}
		baseCacheDir = filepath.Join(homeDir, "Library", "Caches")
	default:
		baseCacheDir = os.Getenv("XDG_CACHE_HOME")
		if baseCacheDir == "" {
			homeDir := os.Getenv("HOME")
			if homeDir == "" {
				return "", fmt.Errorf("HOME environment variable not set")
			}
			baseCacheDir = filepath.Join(homeDir, ".cache")
		}
	}

	cacheDir := filepath.Join(baseCacheDir, "shadertoy", subdir)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory at %s: %w", cacheDir, err)
	}
	return cacheDir, nil
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to shadertoy API failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad response status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiKey returns the configured key, falling back to SHADERTOY_KEY and
// checking it against the API.
func (c *Client) apiKey(ctx context.Context) (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	key := os.Getenv("SHADERTOY_KEY")
	if key == "" {
		return "", fmt.Errorf("SHADERTOY_KEY environment variable not set. See https://www.shadertoy.com/howto#q2")
	}

	var apiError ShadertoyResponse
	testURL := fmt.Sprintf("%s/shaders/query/test?key=%s", c.apiURL, url.QueryEscape(key))
	if err := c.get(ctx, testURL, &apiError); err != nil {
		return "", fmt.Errorf("API key test request failed: %w", err)
	}
	if apiError.Error != "" {
		return "", fmt.Errorf("failed to use ShaderToy API with key: %s", apiError.Error)
	}
	c.APIKey = key
	return key, nil
}

// fetchRaw uses the endpoint the website itself uses, which also serves
// shaders that are not published to the API.
func (c *Client) fetchRaw(ctx context.Context, shaderID string) (*Shader, error) {
	data := url.Values{}
	data.Set("s", fmt.Sprintf(`{"shaders":["%s"]}`, shaderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.siteURL+"/shadertoy", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Origin", c.siteURL)
	req.Header.Set("Referer", c.siteURL+"/browse")
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad response status: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var rawResp rawShaderResponse
	if err := json.Unmarshal(body, &rawResp); err != nil {
		return nil, fmt.Errorf("failed to decode raw shader JSON: %w", err)
	}
	if len(rawResp) == 0 {
		return nil, fmt.Errorf("raw shader response is empty for %s", shaderID)
	}
	return rawShaderToShader(rawResp[0]), nil
}

// ShaderID extracts the id from a bare id or a shadertoy.com/view/<id> URL.
func ShaderID(idOrURL string) string {
	if strings.Contains(idOrURL, "/") {
		return filepath.Base(strings.TrimSuffix(idOrURL, "/"))
	}
	return idOrURL
}

func (c *Client) readCache(shaderID string) (*ShadertoyResponse, bool, error) {
	if c.CacheDir == "" {
		return nil, false, nil
	}
	cachePath := filepath.Join(c.CacheDir, shaderID+".json")
	data, err := os.ReadFile(cachePath)
	if os.IsNotExist(err) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to read cached shader file %s: %w", cachePath, err)
	}
	var shaderResp ShadertoyResponse
	if err := json.Unmarshal(data, &shaderResp); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached shader JSON: %w", err)
	}
	if shaderResp.Shader == nil {
		return nil, false, fmt.Errorf("cached shader JSON is invalid: 'Shader' key is missing")
	}
	return &shaderResp, true, nil
}

func (c *Client) writeCache(shaderID string, resp *ShadertoyResponse) error {
	if c.CacheDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.CacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory at %s: %w", c.CacheDir, err)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal shader for cache: %w", err)
	}
	cachePath := filepath.Join(c.CacheDir, shaderID+".json")
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write shader to cache at %s: %w", cachePath, err)
	}
	logging.LogDebug("shader %s cached at %s", shaderID, cachePath)
	return nil
}

// Fetch returns the shader for idOrURL, from the cache if enabled. Shaders
// the API refuses are retried through the website endpoint.
func (c *Client) Fetch(ctx context.Context, idOrURL string) (*ShadertoyResponse, error) {
	shaderID := ShaderID(idOrURL)
	if shaderID == "" {
		return nil, fmt.Errorf("empty shader id")
	}

	if cached, ok, err := c.readCache(shaderID); err != nil {
		return nil, err
	} else if ok {
		logging.LogDebug("using cached shader %s", shaderID)
		return cached, nil
	}

	key, err := c.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	var shaderResp ShadertoyResponse
	apiURL := fmt.Sprintf("%s/shaders/%s?key=%s", c.apiURL, url.PathEscape(shaderID), url.QueryEscape(key))
	if err := c.get(ctx, apiURL, &shaderResp); err != nil {
		return nil, fmt.Errorf("failed to load shader %s: %w", shaderID, err)
	}

	if shaderResp.Error != "" {
		logging.LogWarn("Shadertoy API error for %s: %s (is it public+api?)", shaderID, shaderResp.Error)
		raw, err := c.fetchRaw(ctx, shaderID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch raw shader data for %s: %w", shaderID, err)
		}
		shaderResp = ShadertoyResponse{Shader: raw}
	} else {
		shaderResp.IsAPI = true
	}

	if shaderResp.Shader == nil {
		return nil, fmt.Errorf("invalid JSON response: 'Shader' key is missing")
	}
	if err := c.writeCache(shaderID, &shaderResp); err != nil {
		logging.LogWarn("%v", err)
	}
	return &shaderResp, nil
}
