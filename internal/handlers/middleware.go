package handlers

import (
	"log"
	"net/http"
	"strings"

	"portalchat/internal/errs"
	"portalchat/internal/models"
	"portalchat/internal/msgs"
	"portalchat/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MustAuthenticateMiddleware extracts the caller identity from the
// bearer token minted by the portal's authentication layer. Messaging
// treats the id as opaque; it only needs to know who is calling.
func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		if strings.Contains(jwtToken, "Bearer") {
			jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
		}

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		claims, err := utils.VerifyToken(jwtToken, rh.configs.JwtKey())
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		ctx.Set("caller_id", claims.ID)
		ctx.Set("caller_role", claims.Role)
		ctx.Set("authenticated", true)
		ctx.Next()
	}
}

// RequestIDMiddleware tags every request so log lines from one send or
// list can be correlated.
func (rh *RestHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set("request_id", requestID)
		ctx.Header("X-Request-ID", requestID)
		ctx.Next()

		if len(ctx.Errors) > 0 {
			log.Printf("Request %s finished with errors: %v", requestID, ctx.Errors)
		}
	}
}
