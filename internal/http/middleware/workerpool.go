package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// DefaultWorkers matches the thread pool size the authorities were sized for.
const DefaultWorkers = 10

// WorkerPool bounds the number of handlers running at once. Requests beyond
// the limit wait for a slot; a request whose context ends first gets 503.
func WorkerPool(service string, size int) gin.HandlerFunc {
	if size <= 0 {
		size = DefaultWorkers
	}
	sem := semaphore.NewWeighted(int64(size))

	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			PoolRejected.WithLabelValues(service).Inc()
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "server busy"})
			return
		}
		defer sem.Release(1)

		c.Next()
	}
}
