package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ContextConnKey is the gin context key under which the request's scoped
// database connection is stored.
const ContextConnKey = "dbConn"

// Each request's connection gets the strict session mode and the fixed
// session time zone before any handler statement runs.
var sessionStatements = []string{
	`SET SESSION sql_mode = 'TRADITIONAL'`,
	`SET time_zone = '-8:00'`,
}

// ConnScope checks one connection out of the pool for the duration of the
// request and guarantees it is returned exactly once on every exit path,
// handler panics included. If no connection can be acquired the request is
// answered with 503 and no handler runs.
func ConnScope(db *sqlx.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := db.Connx(c.Request.Context())
		if err != nil {
			logger.Error("Failed to acquire database connection", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error":   "connection_unavailable",
				"message": "database connection unavailable",
			})
			return
		}
		defer conn.Close()

		for _, stmt := range sessionStatements {
			if _, err := conn.ExecContext(c.Request.Context(), stmt); err != nil {
				logger.Error("Failed to configure database session", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
					"error":   "connection_unavailable",
					"message": "database session setup failed",
				})
				return
			}
		}

		c.Set(ContextConnKey, conn)
		c.Next()
	}
}

// Conn returns the request's scoped connection. It panics if ConnScope did
// not run, which is a routing defect.
func Conn(c *gin.Context) *sqlx.Conn {
	return c.MustGet(ContextConnKey).(*sqlx.Conn)
}
