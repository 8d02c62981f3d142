package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorCookie = "visitor_id"
	visitorMaxAge = 365 * 24 * 60 * 60
)

// Visitor makes sure every request carries a visitor id, issuing a cookie
// the first time a browser shows up.
func Visitor(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err == nil {
			_, err = uuid.Parse(id)
		}
		if err != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, visitorMaxAge, "/", "", secure, true)
		}
		c.Set(VisitorCookie, id)
		c.Next()
	}
}

// GetVisitorID returns the id set by Visitor.
func GetVisitorID(c *gin.Context) (string, bool) {
	id := c.GetString(VisitorCookie)
	return id, id != ""
}
