// File: middleware/adminAuth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	adminRepo "tidyops/database/repository/admin"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
)

// cachedAuth is the Redis auth-cache entry: the token hash plus the
// company scope, so a cache hit avoids the DB entirely.
type cachedAuth struct {
	Hash      string `json:"hash"`
	CompanyID string `json:"companyId"`
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthAdminMiddleware authenticates dashboard requests. A valid
// token sets adminID and companyID on the request context; every
// admin-facing handler scopes its queries by that companyID.
func JWTAuthAdminMiddleware(admins adminRepo.Repository) gin.HandlerFunc {
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

		adminID, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || adminID == "" || role != "admin" {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		// Attempt the auth cache first.
		authCache := utils.GetAuthCacheClient()
		if data, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
			var entry cachedAuth
			if json.Unmarshal([]byte(data), &entry) == nil && entry.Hash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("adminID", adminID)
				c.Set("companyID", entry.CompanyID)
				c.Next()
				return
			}
		}

		// Cache miss: fall back to the database.
		admin, err := admins.GetByID(adminID)
		if err != nil || admin.TokenHash == "" || admin.TokenHash != computedHash {
			abortUnauthorized(c)
			return
		}

		if data, err := json.Marshal(cachedAuth{Hash: computedHash, CompanyID: admin.CompanyID}); err == nil {
			ctxSet, cancel := context.WithTimeout(ctx, 2*time.Second)
			_ = authCache.Set(ctxSet, cacheKey, data, utils.AuthCacheTTL).Err()
			cancel()
		}

		c.Set("adminID", adminID)
		c.Set("companyID", admin.CompanyID)
		c.Next()
	}
}
