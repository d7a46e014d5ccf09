package authfunc

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"

	"vidtube.com/config"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// IdentityKey is the claim carrying the acting user id. Tokens are issued by
// the external identity service; this middleware only verifies and extracts.
const IdentityKey = "user_id"

func NewAuthMiddleware() (*jwt.HertzJWTMiddleware, error) {
	return jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:       24 * time.Hour,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[IdentityKey])
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"statusCode": errno.UnauthorizedCode,
				"message":    message,
				"success":    false,
			})
		},
	})
}

// CurrentUserId returns the acting user id placed into the request context
// by the jwt middleware. Handlers pass it explicitly into services.
func CurrentUserId(c *app.RequestContext) (int64, error) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return 0, errno.TokenErr
	}
	userId := utils.Transfer(v)
	if userId <= 0 {
		return 0, errno.TokenErr
	}
	return userId, nil
}
