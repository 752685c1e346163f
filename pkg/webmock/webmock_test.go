package webmock_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/testkit/pkg/testutil"
	"github.com/arthur-debert/testkit/pkg/webmock"
)

func TestAppConfig(t *testing.T) {
	testutil.Unit(t)

	app := webmock.NewApp()

	assert.Equal(t, true, app.Config["TESTING"])
	assert.Equal(t, true, app.Config["DEBUG"])
	assert.Contains(t, app.Config, "SECRET_KEY")
	assert.Equal(t, "test_secret_key", app.Config["SECRET_KEY"])
}

func TestTestClient(t *testing.T) {
	testutil.Unit(t)

	app := webmock.NewApp()
	client := app.TestClient(t)
	require.NotNil(t, client)

	result := client.Get(t, "/anything")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "application/json", result.Header.Get("Content-Type"))

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Body), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestTestClientRoutesAreUniform(t *testing.T) {
	testutil.Unit(t)

	client := webmock.NewApp().TestClient(t)

	first := client.Get(t, "/a")
	second := client.Get(t, "/b/c")

	assert.Equal(t, first.StatusCode, second.StatusCode)
	assert.Equal(t, first.Body, second.Body, "every route serves the canned body")
}
