package site

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/store"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an ID, reusing the caller's when it sent
// a sane one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger replaces gin's default logger with a structured one.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

func randomHex(n int) string {
	b := make([]byte, n)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ipHasher turns client addresses into stable pseudonyms. The salt lives
// only in memory, so hashes cannot be linked across restarts.
type ipHasher struct {
	salt string
}

func newIPHasher() ipHasher {
	return ipHasher{salt: randomHex(32)}
}

func (h ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// untracked paths never produce a visit row.
var untracked = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/privacy",
	"/sections/",
	"/contact",
	"/healthz",
}

// visitTracker records page views in the background.
type visitTracker struct {
	store  *store.Store
	hasher ipHasher
	log    *zap.Logger
	wg     sync.WaitGroup
}

func (t *visitTracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.tracks(c.Request) {
			c.Next()
			return
		}

		visit := store.Visit{
			HashedIP:  t.hasher.hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
		}
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := t.store.RecordVisit(ctx, visit); err != nil {
				t.log.Warn("recording visit", zap.Error(err))
			}
		}()
		c.Next()
	}
}

func (t *visitTracker) tracks(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	// Respect Do Not Track.
	if r.Header.Get("DNT") == "1" {
		return false
	}
	for _, prefix := range untracked {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}

// wait blocks until pending visit writes finish.
func (t *visitTracker) wait() {
	t.wg.Wait()
}
