package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Savin-AS94/hw05-final/cache"
	"github.com/Savin-AS94/hw05-final/metrics"
)

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCache serves repeated GETs of a route from the store for the TTL,
// keyed by path plus query string. Only successful responses are cached;
// anything else falls through every time.
func PageCache(store cache.Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			key += "?" + raw
		}

		if entry, ok := store.Get(c.Request.Context(), key); ok {
			metrics.PageCacheHits.Inc()
			c.Data(http.StatusOK, entry.ContentType, entry.Body)
			c.Abort()
			return
		}
		metrics.PageCacheMisses.Inc()

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			store.Set(c.Request.Context(), key, cache.Entry{
				Body:        writer.buf.Bytes(),
				ContentType: writer.Header().Get("Content-Type"),
			}, ttl)
		}
	}
}
