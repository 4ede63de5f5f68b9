package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/identity"
)

// The identity provider in front of this service (gateway auth) forwards the
// verified actor as headers. Operations that need an actor fail with an
// authentication error in the service layer when the headers are absent.
const (
	headerUserEmail = "X-User-Email"
	headerUserName  = "X-User-Name"

	contextUserKey = "currentUser"
)

// Identity resolves the actor from request headers and stashes it on the
// gin context for the controllers.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextUserKey, identity.User{
			Email:       c.GetHeader(headerUserEmail),
			DisplayName: c.GetHeader(headerUserName),
		})
		c.Next()
	}
}

// CurrentUser returns the actor resolved by Identity, or a zero User when
// the request carried no identity.
func CurrentUser(c *gin.Context) identity.User {
	if v, ok := c.Get(contextUserKey); ok {
		if u, ok := v.(identity.User); ok {
			return u
		}
	}
	return identity.User{}
}
