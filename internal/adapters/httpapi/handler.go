// Package httpapi exposes the palindrome checker and store over HTTP using fasthttp.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

const (
	// BasePath is the prefix of every palindrome route.
	BasePath = "/api/v1/palindrome"

	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
)

// Handler routes requests to the checker and the store it owns.
type Handler struct {
	checker ports.Checker
	store   ports.PalindromeStore
	logger  ports.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(checker ports.Checker, store ports.PalindromeStore, logger ports.Logger) *Handler {
	return &Handler{
		checker: checker,
		store:   store,
		logger:  logger,
	}
}

// HandleRequest is the fasthttp request handler.
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	requestID := string(ctx.Request.Header.Peek(RequestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "PalindromeServer")
	ctx.Response.Header.Set(RequestIDHeader, requestID)

	h.route(ctx)

	h.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (h *Handler) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	if path == "/health" {
		h.handleHealthCheck(ctx)
		return
	}

	if path == BasePath || path == BasePath+"/" {
		switch {
		case ctx.IsGet():
			h.handleList(ctx)
		case ctx.IsPost():
			h.handleAdd(ctx)
		default:
			methodNotAllowed(ctx)
		}
		return
	}

	// Free-text segments are read from the raw path: ctx.Path() is decoded and
	// normalized, which would collapse "/../" and "//" inside the text.
	if segment, ok := rawSegment(ctx, "check/"); ok {
		if !ctx.IsGet() {
			methodNotAllowed(ctx)
			return
		}
		text, err := url.PathUnescape(segment)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			h.writeJSONError(ctx, "Invalid request: "+err.Error())
			return
		}
		h.handleQuickCheck(ctx, text)
		return
	}
	if segment, ok := rawSegment(ctx, "category/"); ok {
		if !ctx.IsGet() {
			methodNotAllowed(ctx)
			return
		}
		category, err := url.PathUnescape(segment)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			h.writeJSONError(ctx, "Invalid request: "+err.Error())
			return
		}
		h.handleByCategory(ctx, category)
		return
	}

	rest, ok := strings.CutPrefix(path, BasePath+"/")
	if !ok {
		notFound(ctx)
		return
	}

	switch {
	case rest == "check":
		if !ctx.IsPost() {
			methodNotAllowed(ctx)
			return
		}
		h.handleCheck(ctx)
	case rest == "statistics":
		if !ctx.IsGet() {
			methodNotAllowed(ctx)
			return
		}
		h.handleStatistics(ctx)
	default:
		id, err := strconv.Atoi(rest)
		if err != nil {
			notFound(ctx)
			return
		}
		switch {
		case ctx.IsGet():
			h.handleGet(ctx, id)
		case ctx.IsDelete():
			h.handleDelete(ctx, id)
		default:
			methodNotAllowed(ctx)
		}
	}
}

func (h *Handler) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, HealthResponse{
		Status:  "ok",
		Time:    time.Now().Format(time.RFC3339),
		Records: h.store.Len(),
	})
}

func (h *Handler) handleCheck(ctx *fasthttp.RequestCtx) {
	var req CheckRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	if isBlank(req.Text) {
		h.writeDomainError(ctx, domain.ErrInvalidInput)
		return
	}

	result := h.checker.Check(req.Text, req.Options())

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, result)
}

func (h *Handler) handleQuickCheck(ctx *fasthttp.RequestCtx, text string) {
	if isBlank(text) {
		h.writeDomainError(ctx, domain.ErrInvalidInput)
		return
	}

	result := h.checker.Check(text, domain.DefaultOptions())

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, QuickCheckResponse{
		Text:         text,
		IsPalindrome: result.IsPalindrome,
		Message:      result.Message,
	})
}

func (h *Handler) handleList(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, h.store.All())
}

func (h *Handler) handleGet(ctx *fasthttp.RequestCtx, id int) {
	rec, err := h.store.Get(id)
	if err != nil {
		h.writeDomainError(ctx, fmt.Errorf("%w: id %d", err, id))
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, rec)
}

func (h *Handler) handleByCategory(ctx *fasthttp.RequestCtx, category string) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, h.store.ByCategory(category))
}

func (h *Handler) handleAdd(ctx *fasthttp.RequestCtx) {
	var req AddRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	if isBlank(req.Text) {
		h.writeDomainError(ctx, domain.ErrInvalidInput)
		return
	}

	rec, err := h.store.Add(req.Text)
	if err != nil {
		h.logger.Warn("Palindrome rejected", "text", req.Text, "error", err)
		h.writeDomainError(ctx, err)
		return
	}

	ctx.Response.Header.Set("Location", fmt.Sprintf("%s/%d", BasePath, rec.ID))
	ctx.SetStatusCode(fasthttp.StatusCreated)
	h.writeJSONResponse(ctx, rec)
}

func (h *Handler) handleDelete(ctx *fasthttp.RequestCtx, id int) {
	if !h.store.Delete(id) {
		h.writeDomainError(ctx, fmt.Errorf("%w: id %d", domain.ErrNotFound, id))
		return
	}

	h.logger.Info("Palindrome deleted", "id", id)
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) handleStatistics(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, h.store.Statistics())
}

// writeDomainError maps the domain error taxonomy to HTTP status codes.
func (h *Handler) writeDomainError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrRejected):
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
	default:
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
	h.writeJSONError(ctx, err.Error())
}

// writeJSONResponse writes a JSON response to the context
func (h *Handler) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON response", "error", err)
		h.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (h *Handler) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

func notFound(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusNotFound)
	ctx.SetBodyString(`{"error":"Not found"}`)
}

func methodNotAllowed(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
	ctx.SetBodyString(`{"error":"Method not allowed"}`)
}

// rawSegment returns the undecoded remainder of the request path after BasePath/prefix.
func rawSegment(ctx *fasthttp.RequestCtx, prefix string) (string, bool) {
	return strings.CutPrefix(string(ctx.URI().PathOriginal()), BasePath+"/"+prefix)
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
