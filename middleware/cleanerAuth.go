// File: middleware/cleanerAuth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	cleanerRepo "tidyops/database/repository/cleaner"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthCleanerMiddleware authenticates cleaner-app requests. A valid
// token sets cleanerID and companyID on the request context.
func JWTAuthCleanerMiddleware(cleaners cleanerRepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		cleanerID, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || cleanerID == "" || role != "cleaner" {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		authCache := utils.GetAuthCacheClient()
		if data, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
			var entry cachedAuth
			if json.Unmarshal([]byte(data), &entry) == nil && entry.Hash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("cleanerID", cleanerID)
				c.Set("companyID", entry.CompanyID)
				c.Next()
				return
			}
		}

		cleaner, err := cleaners.GetByID(cleanerID)
		if err != nil || !cleaner.Active || cleaner.TokenHash == "" || cleaner.TokenHash != computedHash {
			abortUnauthorized(c)
			return
		}

		if data, err := json.Marshal(cachedAuth{Hash: computedHash, CompanyID: cleaner.CompanyID}); err == nil {
			ctxSet, cancel := context.WithTimeout(ctx, 2*time.Second)
			_ = authCache.Set(ctxSet, cacheKey, data, utils.AuthCacheTTL).Err()
			cancel()
		}

		c.Set("cleanerID", cleanerID)
		c.Set("companyID", cleaner.CompanyID)
		c.Next()
	}
}
