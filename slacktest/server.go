package slacktest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// HookPath is the path prefix served for response_url style webhooks.
const HookPath = "/hooks/"

// Request is one recorded call.
type Request struct {
	// Method is the Web API method name, or the hook path for webhooks.
	Method     string
	HTTPMethod string
	Query      url.Values
	Header     http.Header
	Body       []byte
}

// Token returns the token sent in the query string.
func (r Request) Token() string { return r.Query.Get("token") }

// Param returns a query parameter.
func (r Request) Param(key string) string { return r.Query.Get(key) }

// HandlerFunc answers one Web API method.
type HandlerFunc func(c *gin.Context, req Request)

// Server is a fake Web API backed by httptest.Server.
type Server struct {
	// URL is the root of the server, e.g. "http://127.0.0.1:PORT".
	URL string

	ts     *httptest.Server
	engine *gin.Engine

	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	requests []Request
	token    string
}

// NewServer starts a fake Web API on a loopback port.
func NewServer() *Server {
	s := &Server{handlers: make(map[string]HandlerFunc)}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Any("/api/:method", s.serveMethod)
	engine.Any(HookPath+"*path", s.serveHook)
	s.engine = engine

	s.ts = httptest.NewServer(engine)
	s.URL = s.ts.URL
	return s
}

// BaseURL returns the API root to configure a client with.
func (s *Server) BaseURL() string { return s.URL + "/api/" }

// HookURL returns an absolute webhook URL under HookPath.
func (s *Server) HookURL(path string) string {
	return s.URL + HookPath + strings.TrimPrefix(path, "/")
}

// Engine returns the gin engine for registering extra routes.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Close shuts the server down.
func (s *Server) Close() { s.ts.Close() }

// RequireToken makes every method answer not_authed when no token is sent and
// invalid_auth when a different one is.
func (s *Server) RequireToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Handle scripts method with a custom handler.
func (s *Server) Handle(method string, h HandlerFunc) {
	s.mu.Lock()
	s.handlers[method] = h
	s.mu.Unlock()
}

// Reply scripts method to answer 200 with body merged over {"ok":true}.
func (s *Server) Reply(method string, body gin.H) {
	s.Handle(method, func(c *gin.Context, _ Request) {
		out := gin.H{"ok": true}
		for k, v := range body {
			out[k] = v
		}
		c.JSON(http.StatusOK, out)
	})
}

// Fail scripts method to answer 200 with {"ok":false,"error":code}.
func (s *Server) Fail(method, code string) {
	s.Handle(method, func(c *gin.Context, _ Request) {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": code})
	})
}

// RateLimit scripts method to answer 429 with a Retry-After header.
func (s *Server) RateLimit(method string, retryAfter time.Duration) {
	s.Handle(method, func(c *gin.Context, _ Request) {
		c.Header("Retry-After", strconv.Itoa(int(retryAfter/time.Second)))
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "ratelimited"})
	})
}

// Requests returns a copy of every recorded request in arrival order.
func (s *Server) Requests() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// RequestsFor returns the recorded requests for one method.
func (s *Server) RequestsFor(method string) []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Request
	for _, r := range s.requests {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) serveMethod(c *gin.Context) {
	method := c.Param("method")
	req := s.record(c, method)

	s.mu.RLock()
	h, ok := s.handlers[method]
	token := s.token
	s.mu.RUnlock()

	if token != "" {
		switch sent := req.Token(); {
		case sent == "":
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "not_authed"})
			return
		case sent != token:
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": "invalid_auth"})
			return
		}
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": "unknown_method"})
		return
	}
	h(c, req)
}

func (s *Server) serveHook(c *gin.Context) {
	path := HookPath + strings.TrimPrefix(c.Param("path"), "/")
	req := s.record(c, path)

	s.mu.RLock()
	h, ok := s.handlers[path]
	s.mu.RUnlock()
	if ok {
		h(c, req)
		return
	}
	c.String(http.StatusOK, "ok")
}

func (s *Server) record(c *gin.Context, method string) Request {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	req := Request{
		Method:     method,
		HTTPMethod: c.Request.Method,
		Query:      c.Request.URL.Query(),
		Header:     c.Request.Header.Clone(),
		Body:       body,
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return req
}
