package middleware

import (
	"net/http"

	"shoe-tracker/internal/auth"
	"shoe-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRole     = "role"
)

// RequireAuth пропускает только запросы с живой сессией.
// Отсутствие сессии — это 401, не 403: авторизация дальше по цепочке.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get(SessionUserID) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required.",
			})
			return
		}
		c.Next()
	}
}

// RequireOp сверяет роль из сессии с таблицей прав до какого-либо
// обращения к хранилищам. Отказ — 403 без побочных эффектов.
func RequireOp(op auth.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, ok := sess.Get(SessionRole).(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required.",
			})
			return
		}
		if !auth.Allowed(models.Role(roleStr), op) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "You do not have permission to perform this action.",
			})
			return
		}
		c.Next()
	}
}

// Identity — личность вызывающего на время запроса.
type Identity struct {
	UserID   uint
	Username string
	Role     models.Role
}

// CallerIdentity достаёт личность из сессии. Вторым значением — была ли она там.
func CallerIdentity(c *gin.Context) (Identity, bool) {
	sess := sessions.Default(c)
	uid, ok := sess.Get(SessionUserID).(uint)
	if !ok {
		return Identity{}, false
	}
	username, _ := sess.Get(SessionUsername).(string)
	roleStr, _ := sess.Get(SessionRole).(string)
	return Identity{UserID: uid, Username: username, Role: models.Role(roleStr)}, true
}
