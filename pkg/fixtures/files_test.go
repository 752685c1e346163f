package fixtures_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/testkit/pkg/fixtures"
	"github.com/arthur-debert/testkit/pkg/testutil"
)

func TestSampleJSONFile(t *testing.T) {
	testutil.Unit(t)

	dir := testutil.TempDir(t)
	path := fixtures.SampleJSONFile(t, dir)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &data))

	users, ok := data["users"].([]interface{})
	require.True(t, ok, "users should be a list")
	require.Len(t, users, 2)

	first, ok := users[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alice", first["name"])
	assert.Equal(t, "alice@example.com", first["email"])

	settings, ok := data["settings"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dark", settings["theme"])
	assert.Equal(t, true, settings["notifications"])
}

func TestSampleJSONFileRoundTripsTyped(t *testing.T) {
	testutil.Unit(t)

	dir := testutil.TempDir(t)
	path := fixtures.SampleJSONFile(t, dir)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var data fixtures.SampleData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, fixtures.Sample(), data)
}

func TestSampleXMLFile(t *testing.T) {
	testutil.Unit(t)

	dir := testutil.TempDir(t)
	path := fixtures.SampleXMLFile(t, dir)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))

	users := doc.FindElements("//sample/users/user")
	require.Len(t, users, 2)
	assert.Equal(t, "1", users[0].SelectAttrValue("id", ""))

	name := doc.FindElement("//sample/users/user/name")
	require.NotNil(t, name)
	assert.Equal(t, "Alice", name.Text())

	theme := doc.FindElement("//sample/settings/theme")
	require.NotNil(t, theme)
	assert.Equal(t, "dark", theme.Text())
}

func TestAPIResponse(t *testing.T) {
	testutil.Unit(t)

	resp := fixtures.APIResponse()

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 123, resp.Data.ID)
	assert.Equal(t, "Test Item", resp.Data.Name)
	assert.Equal(t, "1.0.0", resp.Data.Metadata.Version)
	assert.Equal(t, "Request successful", resp.Message)

	// Identical on every call.
	assert.Equal(t, resp, fixtures.APIResponse())
}
