package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/wordchain"
	"github.com/katalvlaran/wordchain/internal/render"
)

// ChainsRequest is the query of GET /v1/chains.
type ChainsRequest struct {
	Begin string `form:"begin" binding:"required"`
	End   string `form:"end" binding:"required"`
	Max   int    `form:"max" binding:"gte=0"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// DictionaryResponse is the body of GET /v1/dictionary.
type DictionaryResponse struct {
	Words int `json:"words"`
}

// handleChains handles GET /v1/chains?begin=&end=[&max=].
//
//	200 OK: render.Document (chains may be empty)
//	400 Bad Request: begin or end missing or blank, or max negative
//	500 Internal Server Error: resolution failed
func (s *Server) handleChains(c *gin.Context) {
	var req ChainsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.badRequest(c)
		return
	}
	begin := strings.ToLower(strings.TrimSpace(req.Begin))
	end := strings.ToLower(strings.TrimSpace(req.End))
	if begin == "" || end == "" {
		s.badRequest(c)
		return
	}

	limit := s.maxChains
	if req.Max > 0 && (limit == 0 || req.Max < limit) {
		limit = req.Max
	}

	start := time.Now()
	chains, err := wordchain.Resolve(begin, end, s.dict,
		wordchain.WithContext(c.Request.Context()),
		wordchain.WithMaxChains(limit),
	)
	s.metrics.duration.Observe(time.Since(start).Seconds())
	if errors.Is(err, wordchain.ErrInvalidArgument) {
		s.badRequest(c)
		return
	}
	if err != nil {
		s.metrics.resolutions.WithLabelValues(outcomeError).Inc()
		s.logger.Error("resolution failed", "begin", begin, "end", end, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "RESOLVE_FAILED"})
		return
	}

	outcome := outcomeFound
	if len(chains) == 0 {
		outcome = outcomeEmpty
	}
	s.metrics.resolutions.WithLabelValues(outcome).Inc()
	s.metrics.chains.Observe(float64(len(chains)))

	c.JSON(http.StatusOK, render.NewDocument(begin, end, chains))
}

// badRequest replies 400 and counts an invalid resolution.
func (s *Server) badRequest(c *gin.Context) {
	s.metrics.resolutions.WithLabelValues(outcomeInvalid).Inc()
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "begin and end query parameters are required",
		Code:  "INVALID_REQUEST",
	})
}

func (s *Server) handleDictionary(c *gin.Context) {
	c.JSON(http.StatusOK, DictionaryResponse{Words: s.dict.Len()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
