package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/beevik/etree"
)

// SampleUser is one entry of the canned user list.
type SampleUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SampleSettings is the canned settings block.
type SampleSettings struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

// SampleData is the canned payload written by SampleJSONFile and
// SampleXMLFile.
type SampleData struct {
	Users    []SampleUser   `json:"users"`
	Settings SampleSettings `json:"settings"`
}

// Sample returns the canned sample payload: two users (Alice, Bob) and a
// fixed settings block.
func Sample() SampleData {
	return SampleData{
		Users: []SampleUser{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
		},
		Settings: SampleSettings{
			Theme:         "dark",
			Notifications: true,
		},
	}
}

// SampleJSONFile writes the canned payload as sample.json inside dir and
// returns the path. A write failure is a fixture setup error.
func SampleJSONFile(t *testing.T, dir string) string {
	t.Helper()

	data, err := json.MarshalIndent(Sample(), "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal sample data: %v", err)
	}

	path := filepath.Join(dir, "sample.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write sample JSON file %s: %v", path, err)
	}
	return path
}

// SampleXMLFile writes the canned payload as sample.xml inside dir and
// returns the path.
func SampleXMLFile(t *testing.T, dir string) string {
	t.Helper()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("sample")
	users := root.CreateElement("users")
	for _, u := range Sample().Users {
		user := users.CreateElement("user")
		user.CreateAttr("id", strconv.Itoa(u.ID))
		user.CreateElement("name").SetText(u.Name)
		user.CreateElement("email").SetText(u.Email)
	}
	settings := root.CreateElement("settings")
	settings.CreateElement("theme").SetText(Sample().Settings.Theme)
	settings.CreateElement("notifications").SetText("true")

	doc.Indent(2)
	path := filepath.Join(dir, "sample.xml")
	if err := doc.WriteToFile(path); err != nil {
		t.Fatalf("Failed to write sample XML file %s: %v", path, err)
	}
	return path
}
