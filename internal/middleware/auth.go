package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/pkg/authenticator"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/router"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

// Authenticate verifies the access token from the Authorization header or
// the access token cookie and stores the user id into the context.
func Authenticate(tokenEngine authenticator.TokenEngine[model.AccessToken]) router.MiddlewareFunc {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		token := ""
		if authorization := r.Header.Get("Authorization"); authorization != "" {
			token = strings.TrimPrefix(authorization, "Bearer ")
		} else {
			cookie, err := r.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
			if err == nil {
				token = cookie.Value
			}
		}

		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := tokenEngine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}
