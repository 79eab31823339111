package server

import (
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Loaded []int  `json:"loaded_lengths"`
}

// GraphResponse describes one loaded graph.
type GraphResponse struct {
	Metadata   wordgraph.Metadata `json:"metadata"`
	Components int                `json:"components"`
	Largest    int                `json:"largest_component"`
}

// PathResponse is returned by GET /v1/graphs/:length/path.
type PathResponse struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Found bool         `json:"found"`
	Path  search.Path  `json:"path"`
	Stats search.Stats `json:"stats"`
}

// NextResponse is returned by GET /v1/graphs/:length/next.
type NextResponse struct {
	From      string           `json:"from"`
	To        string           `json:"to"`
	Algorithm search.Algorithm `json:"algorithm"`
	Next      string           `json:"next"`
}

// CompareResponse is returned by GET /v1/graphs/:length/compare.
type CompareResponse struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Reports []search.Report `json:"reports"`
}

// CreateGameRequest is the body of POST /v1/games. Mode wins over Length;
// with neither, the length of Start is used.
type CreateGameRequest struct {
	Mode   string `json:"mode"`
	Length int    `json:"length" binding:"omitempty,min=1,max=32"`
	Start  string `json:"start" binding:"required,alpha"`
	Target string `json:"target" binding:"required,alpha"`
}

// MoveRequest is the body of POST /v1/games/:id/moves: either a whole word
// or a position and a letter.
type MoveRequest struct {
	Word     string `json:"word" binding:"omitempty,alpha"`
	Position *int   `json:"position" binding:"omitempty,min=0"`
	Letter   string `json:"letter" binding:"omitempty,len=1,alpha"`
}

// HintResponse is returned by GET /v1/games/:id/hint.
type HintResponse struct {
	Hint  ladder.Hint  `json:"hint"`
	State ladder.State `json:"state"`
}
