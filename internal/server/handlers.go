package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/pipeline"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// Handlers serves graph queries and game sessions.
type Handlers struct {
	reg         *pipeline.Registry
	metrics     *metrics.Metrics
	defaultAlgo search.Algorithm
	logger      *slog.Logger

	gameTTL  time.Duration
	maxGames int
	now      func() time.Time

	mu    sync.Mutex
	games map[string]*game
}

// game is a session plus the time it was last used.
type game struct {
	s    *ladder.Session
	seen time.Time
}

// Session table defaults.
const (
	DefaultGameTTL  = 30 * time.Minute
	DefaultMaxGames = 10000
)

// HandlerOption configures Handlers.
type HandlerOption func(*Handlers)

// WithGameTTL drops sessions idle for longer than d. Non-positive d is ignored.
func WithGameTTL(d time.Duration) HandlerOption {
	return func(h *Handlers) {
		if d > 0 {
			h.gameTTL = d
		}
	}
}

// WithMaxGames caps the number of live sessions; creating one more evicts
// the least recently used. Non-positive n is ignored.
func WithMaxGames(n int) HandlerOption {
	return func(h *Handlers) {
		if n > 0 {
			h.maxGames = n
		}
	}
}

// NewHandlers wires handlers to a graph registry. m and logger may be nil.
func NewHandlers(reg *pipeline.Registry, m *metrics.Metrics, defaultAlgo search.Algorithm, logger *slog.Logger, opts ...HandlerOption) *Handlers {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if !defaultAlgo.Valid() {
		defaultAlgo = search.AStar
	}

	h := &Handlers{
		reg:         reg,
		metrics:     m,
		defaultAlgo: defaultAlgo,
		logger:      logger,
		gameTTL:     DefaultGameTTL,
		maxGames:    DefaultMaxGames,
		now:         time.Now,
		games:       make(map[string]*game),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

func (h *Handlers) requestLogger(c *gin.Context, handler string) *slog.Logger {
	return h.logger.With("request_id", getOrCreateRequestID(c), "handler", handler)
}

func abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Code: code})
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	getOrCreateRequestID(c)
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Loaded: h.reg.Loaded()})
}

// graph resolves the :length parameter to a loaded graph, writing the error
// response itself when it cannot.
func (h *Handlers) graph(c *gin.Context, logger *slog.Logger) (*wordgraph.Graph, bool) {
	l, err := strconv.Atoi(c.Param("length"))
	if err != nil || l <= 0 {
		abort(c, http.StatusBadRequest, "INVALID_LENGTH", "word length must be a positive integer")
		return nil, false
	}

	return h.graphFor(c, logger, l)
}

func (h *Handlers) graphFor(c *gin.Context, logger *slog.Logger, l int) (*wordgraph.Graph, bool) {
	g, err := h.reg.Get(c.Request.Context(), l)
	if err == nil {
		return g, true
	}

	status, code := http.StatusInternalServerError, "GRAPH_LOAD_FAILED"
	switch {
	case errors.Is(err, store.ErrNotBuilt):
		status, code = http.StatusNotFound, "GRAPH_NOT_BUILT"
	case errors.Is(err, store.ErrCorrupt):
		code = "GRAPH_CORRUPT"
	case errors.Is(err, pipeline.ErrBuildFailed):
		code = "BUILD_FAILED"
	case errors.Is(err, store.ErrBadLength):
		status, code = http.StatusBadRequest, "INVALID_LENGTH"
	}
	logger.Error("graph unavailable", "word_length", l, "error", err)
	abort(c, status, code, err.Error())

	return nil, false
}

func (h *Handlers) algorithm(c *gin.Context) (search.Algorithm, bool) {
	raw := c.Query("algo")
	if raw == "" {
		return h.defaultAlgo, true
	}
	a, err := search.ParseAlgorithm(raw)
	if err != nil {
		abort(c, http.StatusBadRequest, "INVALID_ALGORITHM", err.Error())
		return 0, false
	}

	return a, true
}

// endpoints reads from and to, lowercased, and checks both are graph words.
func (h *Handlers) endpoints(c *gin.Context, g *wordgraph.Graph, algo search.Algorithm) (string, string, bool) {
	from := strings.ToLower(strings.TrimSpace(c.Query("from")))
	to := strings.ToLower(strings.TrimSpace(c.Query("to")))
	if from == "" || to == "" {
		abort(c, http.StatusBadRequest, "MISSING_PARAM", "query parameters from and to are required")
		return "", "", false
	}
	for _, w := range []string{from, to} {
		if !g.Has(w) {
			h.metrics.ObserveSearch(nil, search.Stats{Algorithm: algo}, false)
			abort(c, http.StatusNotFound, "UNKNOWN_WORD", "'"+w+"' is not a valid word")
			return "", "", false
		}
	}

	return from, to, true
}

// HandleGraph handles GET /v1/graphs/:length.
func (h *Handlers) HandleGraph(c *gin.Context) {
	logger := h.requestLogger(c, "HandleGraph")
	g, ok := h.graph(c, logger)
	if !ok {
		return
	}
	comps := g.Components()
	c.JSON(http.StatusOK, GraphResponse{
		Metadata:   g.Metadata(),
		Components: comps.Count(),
		Largest:    comps.Largest(),
	})
}

// HandlePath handles GET /v1/graphs/:length/path?from=&to=&algo=.
func (h *Handlers) HandlePath(c *gin.Context) {
	logger := h.requestLogger(c, "HandlePath")
	g, ok := h.graph(c, logger)
	if !ok {
		return
	}
	algo, ok := h.algorithm(c)
	if !ok {
		return
	}
	from, to, ok := h.endpoints(c, g, algo)
	if !ok {
		return
	}

	f, err := search.New(g, algo)
	if err != nil {
		abort(c, http.StatusInternalServerError, "SEARCH_FAILED", err.Error())
		return
	}
	path, stats := f.FindPath(from, to)
	h.metrics.ObserveSearch(path, stats, true)
	logger.Info("path searched", "algorithm", algo.String(), "from", from, "to", to,
		"found", path.Found(), "nodes_explored", stats.NodesExplored)

	if path == nil {
		path = search.Path{}
	}
	c.JSON(http.StatusOK, PathResponse{From: from, To: to, Found: path.Found(), Path: path, Stats: stats})
}

// HandleNext handles GET /v1/graphs/:length/next?from=&to=&algo=.
func (h *Handlers) HandleNext(c *gin.Context) {
	logger := h.requestLogger(c, "HandleNext")
	g, ok := h.graph(c, logger)
	if !ok {
		return
	}
	algo, ok := h.algorithm(c)
	if !ok {
		return
	}
	from, to, ok := h.endpoints(c, g, algo)
	if !ok {
		return
	}

	f, err := search.New(g, algo)
	if err != nil {
		abort(c, http.StatusInternalServerError, "SEARCH_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, NextResponse{From: from, To: to, Algorithm: algo, Next: f.NextStep(from, to)})
}

// HandleCompare handles GET /v1/graphs/:length/compare?from=&to=.
func (h *Handlers) HandleCompare(c *gin.Context) {
	logger := h.requestLogger(c, "HandleCompare")
	g, ok := h.graph(c, logger)
	if !ok {
		return
	}
	from, to, ok := h.endpoints(c, g, h.defaultAlgo)
	if !ok {
		return
	}

	reports := search.Compare(g, from, to)
	for i := range reports {
		h.metrics.ObserveSearch(reports[i].Path, reports[i].Stats, true)
		if reports[i].Path == nil {
			reports[i].Path = search.Path{}
		}
	}
	c.JSON(http.StatusOK, CompareResponse{From: from, To: to, Reports: reports})
}

// HandleCreateGame handles POST /v1/games.
func (h *Handlers) HandleCreateGame(c *gin.Context) {
	logger := h.requestLogger(c, "HandleCreateGame")

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		abort(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	length := req.Length
	if req.Mode != "" {
		m, err := ladder.ParseMode(req.Mode)
		if err != nil {
			abort(c, http.StatusBadRequest, "INVALID_MODE", err.Error())
			return
		}
		length = m.WordLength()
	}
	if length == 0 {
		length = len(req.Start)
	}

	g, ok := h.graphFor(c, logger, length)
	if !ok {
		return
	}
	s, err := ladder.NewSession(g, req.Start, req.Target)
	if err != nil {
		status, code := http.StatusInternalServerError, "GAME_FAILED"
		switch {
		case errors.Is(err, ladder.ErrLengthMismatch):
			status, code = http.StatusBadRequest, "LENGTH_MISMATCH"
		case errors.Is(err, ladder.ErrUnknownWord):
			status, code = http.StatusBadRequest, "UNKNOWN_WORD"
		case errors.Is(err, ladder.ErrNoRoute):
			status, code = http.StatusUnprocessableEntity, "NO_ROUTE"
		}
		abort(c, status, code, err.Error())
		return
	}

	h.addGame(s)

	logger.Info("game started", "game_id", s.ID, "start", s.Start, "target", s.Target, "par", s.Par)
	c.JSON(http.StatusCreated, s.State())
}

// addGame stores s after dropping expired sessions and, at capacity, the
// least recently used one.
func (h *Handlers) addGame(s *ladder.Session) {
	now := h.now()

	h.mu.Lock()
	defer h.mu.Unlock()

	var oldest string
	for id, g := range h.games {
		if now.Sub(g.seen) > h.gameTTL {
			delete(h.games, id)
			continue
		}
		if oldest == "" || g.seen.Before(h.games[oldest].seen) {
			oldest = id
		}
	}
	if len(h.games) >= h.maxGames && oldest != "" {
		delete(h.games, oldest)
		h.logger.Info("game evicted", "game_id", oldest)
	}
	h.games[s.ID] = &game{s: s, seen: now}
}

// session looks up :id, refreshing its last-used time. Expired sessions are
// removed and reported as not found.
func (h *Handlers) session(c *gin.Context) (*ladder.Session, bool) {
	id := c.Param("id")
	now := h.now()

	h.mu.Lock()
	g, ok := h.games[id]
	if ok && now.Sub(g.seen) > h.gameTTL {
		delete(h.games, id)
		ok = false
	}
	if ok {
		g.seen = now
	}
	h.mu.Unlock()

	if !ok {
		abort(c, http.StatusNotFound, "GAME_NOT_FOUND", "no game with id "+id)
		return nil, false
	}

	return g.s, true
}

// HandleGetGame handles GET /v1/games/:id.
func (h *Handlers) HandleGetGame(c *gin.Context) {
	getOrCreateRequestID(c)
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// HandleMove handles POST /v1/games/:id/moves.
func (h *Handlers) HandleMove(c *gin.Context) {
	logger := h.requestLogger(c, "HandleMove")
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		abort(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	var err error
	switch {
	case req.Word != "":
		err = s.Move(req.Word)
	case req.Position != nil && req.Letter != "":
		err = s.Change(*req.Position, req.Letter)
	default:
		abort(c, http.StatusBadRequest, "INVALID_REQUEST", "either word or position and letter is required")
		return
	}

	switch {
	case errors.Is(err, ladder.ErrFinished):
		abort(c, http.StatusConflict, "GAME_OVER", err.Error())
		return
	case errors.Is(err, ladder.ErrInvalidMove):
		abort(c, http.StatusUnprocessableEntity, "INVALID_MOVE", err.Error())
		return
	case err != nil:
		abort(c, http.StatusInternalServerError, "MOVE_FAILED", err.Error())
		return
	}

	st := s.State()
	if st.Won {
		logger.Info("game won", "game_id", st.ID, "moves", len(st.Moves), "par", st.Par)
	}
	c.JSON(http.StatusOK, st)
}

// HandleHint handles GET /v1/games/:id/hint?algo=.
func (h *Handlers) HandleHint(c *gin.Context) {
	logger := h.requestLogger(c, "HandleHint")
	s, ok := h.session(c)
	if !ok {
		return
	}
	algo, ok := h.algorithm(c)
	if !ok {
		return
	}

	hint, err := s.Hint(algo)
	switch {
	case errors.Is(err, ladder.ErrFinished):
		abort(c, http.StatusConflict, "GAME_OVER", err.Error())
		return
	case err != nil:
		logger.Error("hint failed", "game_id", s.ID, "error", err)
		abort(c, http.StatusInternalServerError, "HINT_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, HintResponse{Hint: hint, State: s.State()})
}
