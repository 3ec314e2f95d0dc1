package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/pprof"
	"net/netip"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/cache"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
)

const maxInputSize = 8 << 20

type Options struct {
	Listen string `yaml:"listen"`
	Secret string `yaml:"secret,omitempty"`
	Debug  bool   `yaml:"debug,omitempty"`
}

type APIServer struct {
	ctx       context.Context
	core      adapter.Core
	logger    log.Logger
	broadcast *log.BroadcastLogger
	cache     adapter.Cache

	listen string
	secret string
	debug  bool

	lock       sync.Mutex
	listener   net.Listener
	httpServer *http.Server
}

// NewAPIServer builds the server. broadcast and c may be nil, which disables
// the log stream and result caching.
func NewAPIServer(ctx context.Context, core adapter.Core, logger log.Logger, broadcast *log.BroadcastLogger, c adapter.Cache, options Options) (*APIServer, error) {
	s := &APIServer{
		ctx:       ctx,
		core:      core,
		logger:    logger,
		broadcast: broadcast,
		cache:     c,
		secret:    options.Secret,
		debug:     options.Debug,
	}
	listen, err := parseListen(options.Listen, 8080)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listen: %w", err)
	}
	s.listen = listen
	return s, nil
}

func parseListen(listen string, defaultPort uint16) (string, error) {
	addr, err := netip.ParseAddrPort(listen)
	if err == nil {
		return addr.String(), nil
	}
	ip, err := netip.ParseAddr(strings.Trim(listen, "[]"))
	if err == nil {
		return netip.AddrPortFrom(ip, defaultPort).String(), nil
	}
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return "", fmt.Errorf("invalid listen: %s, error: %s", listen, err)
	}
	if host == "" {
		host = "::"
	}
	ip, err = netip.ParseAddr(host)
	if err != nil {
		return "", fmt.Errorf("invalid listen: %s, error: %s", listen, err)
	}
	portUint16, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return "", fmt.Errorf("invalid listen: %s, error: %s", listen, err)
	}
	if portUint16 == 0 {
		return "", fmt.Errorf("invalid listen: %s, error: invalid port", listen)
	}
	return net.JoinHostPort(ip.String(), strconv.FormatUint(portUint16, 10)), nil
}

func (s *APIServer) debugHTTPHandler() http.Handler {
	router := chi.NewRouter()
	router.HandleFunc("/pprof", pprof.Index)
	router.HandleFunc("/pprof/*", pprof.Index)
	router.HandleFunc("/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/pprof/profile", pprof.Profile)
	router.HandleFunc("/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/pprof/trace", pprof.Trace)
	return router
}

func (s *APIServer) logMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := adapter.SaveLogContext(r.Context(), adapter.NewRunLogContext())
			s.logger.InfofContext(ctx, "request: %s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *APIServer) panicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err != nil {
					s.logger.ErrorfContext(r.Context(), "panic: %v", err)
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func (s *APIServer) authHTTPHandler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			bearer, token, found := strings.Cut(header, " ")

			hasInvalidHeader := bearer != "Bearer"
			hasInvalidSecret := !found || token != s.secret
			if hasInvalidHeader || hasInvalidSecret {
				w.WriteHeader(http.StatusUnauthorized)
				s.logger.ErrorfContext(r.Context(), "unauthorized: %s", r.RemoteAddr)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(raw)
}

func (s *APIServer) listProblems(w http.ResponseWriter, _ *http.Request) {
	problems := s.core.GetProblems()
	data := make([]map[string]any, 0, len(problems))
	for _, p := range problems {
		data = append(data, map[string]any{
			"tag":  p.Tag(),
			"type": p.Type(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func (s *APIServer) solveProblem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tag := chi.URLParam(r, "tag")
	p := s.core.GetProblem(tag)
	if p == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": fmt.Sprintf("problem not found: %s", tag)})
		return
	}
	input, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInputSize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{"error": "input too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	var key string
	if s.cache != nil {
		key = cache.Key(p.Tag(), input)
		output, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.WarnfContext(ctx, "cache get failed: %s", err)
		} else if ok {
			s.logger.DebugfContext(ctx, "cache hit: %s", p.Tag())
			writeOutput(w, output, true)
			return
		}
	}
	var out bytes.Buffer
	err = problem.Run(ctx, s.logger, p, bytes.NewReader(input), &out)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	if s.cache != nil {
		err = s.cache.Set(ctx, key, out.String())
		if err != nil {
			s.logger.WarnfContext(ctx, "cache set failed: %s", err)
		}
	}
	writeOutput(w, out.String(), false)
}

func writeOutput(w http.ResponseWriter, output string, hit bool) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, output)
}

func (s *APIServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(s.logMiddleware(), s.panicMiddleware())
	cors := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})
	router.Use(cors.Handler)
	if s.debug {
		router.Mount("/debug", s.debugHTTPHandler())
	}
	router.Group(func(r chi.Router) {
		if s.secret != "" {
			r.Use(s.authHTTPHandler())
		}
		problemRouter := chi.NewRouter()
		problemRouter.Get("/", s.listProblems)
		problemRouter.Post("/{tag}", s.solveProblem)
		r.Mount("/problem", problemRouter)
		if apiHandler, isAPIHandler := s.cache.(adapter.APIHandler); isAPIHandler {
			r.Mount("/cache", apiHandler.APIHandler())
		}
		if s.broadcast != nil {
			r.Get("/log", s.streamLog)
		}
	})
	return router
}

func (s *APIServer) Start() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	var err error
	s.listener, err = net.Listen("tcp", s.listen)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.httpServer = &http.Server{
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return s.ctx
		},
	}
	go func(httpServer *http.Server, listener net.Listener) {
		err := httpServer.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("api server stopped: %s", err)
		}
	}(s.httpServer, s.listener)
	s.logger.Infof("api server started: %s", s.listen)
	return nil
}

func (s *APIServer) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}

// Addr returns the bound address once started, the configured one before.
func (s *APIServer) Addr() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.listen
}
