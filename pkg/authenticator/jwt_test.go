package authenticator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wellnest-app/backend/config"
	"github.com/wellnest-app/backend/pkg/authenticator"
)

type accessToken struct {
	ID string `json:"id"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[accessToken](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration(time.Minute),
	})

	token, err := engine.Generate("user1", accessToken{ID: "user1"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)

	_, err = engine.Verify(token + "tampered")
	require.Error(t, err)
}
