package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/pkg/authenticator"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/testutil"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

func Test_Authenticate(t *testing.T) {
	ctx := testutil.MockContext()
	cfg := xcontext.Configs(ctx).Auth.AccessToken

	tokenEngine := authenticator.NewTokenEngine[model.AccessToken](cfg)
	authenticate := Authenticate(tokenEngine)

	token, err := tokenEngine.Generate("user1", model.AccessToken{ID: "user1", Name: "ana"})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "/getUserLevel", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	authedCtx, err := authenticate(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(authedCtx))

	// The cookie is an alternative carrier.
	req, err = http.NewRequest(http.MethodGet, "/getUserLevel", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: cfg.Name, Value: token})

	authedCtx, err = authenticate(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(authedCtx))

	// Missing or garbage tokens are rejected.
	req, err = http.NewRequest(http.MethodGet, "/getUserLevel", nil)
	require.NoError(t, err)

	_, err = authenticate(ctx, req)
	requireUnauthenticated(t, err)

	req.Header.Set("Authorization", "Bearer not-a-token")
	_, err = authenticate(ctx, req)
	requireUnauthenticated(t, err)
}

func requireUnauthenticated(t *testing.T, err error) {
	t.Helper()

	errx := errorx.Error{}
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}
