package completion_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/golden"

	"github.com/nikbrunner/bo/internal/completion"
	"github.com/nikbrunner/bo/internal/model"
)

var commands = []completion.Command{
	{Name: "add", Description: "Add a bookmark"},
	{Name: "completion", Description: "Generate fish completions"},
}

func testConfig() *model.Config {
	return &model.Config{
		DefaultBrowser: "firefox",
		Aliases: map[string]string{
			"g":    "google",
			"dead": "missing",
		},
		Bookmarks: map[string]model.Bookmark{
			"GitHub": {URL: "https://github.com"},
			"google": {URL: "https://www.google.com/search?q={query}"},
			"it's":   {URL: `http://www.example.com/a\b`, Browser: "chromium"},
		},
	}
}

func TestGenerate(t *testing.T) {
	var out bytes.Buffer

	err := completion.Generate(&out, testConfig(), commands, zerolog.Nop())
	assert.NilError(t, err)

	golden.Assert(t, out.String(), "golden/completion.golden")
}

func TestGenerate_DanglingAlias(t *testing.T) {
	var out, logs bytes.Buffer
	log := zerolog.New(&logs)

	err := completion.Generate(&out, testConfig(), nil, log)
	assert.NilError(t, err)

	assert.Check(t, !strings.Contains(out.String(), "'dead'"), "dangling alias emitted:\n%s", out.String())
	assert.Check(t, is.Contains(out.String(), "-a 'g' -d 'google.com/search?q={query}'"))
	assert.Check(t, is.Contains(out.String(), "-a 'GitHub'"))

	assert.Check(t, is.Contains(logs.String(), `"level":"warn"`))
	assert.Check(t, is.Contains(logs.String(), `"alias":"dead"`))
	assert.Check(t, is.Contains(logs.String(), `"target":"missing"`))
	assert.Check(t, is.Equal(strings.Count(logs.String(), "\n"), 1))
}

func TestGenerate_EmptyConfig(t *testing.T) {
	var out bytes.Buffer

	err := completion.Generate(&out, model.NewConfig("firefox"), nil, zerolog.Nop())
	assert.NilError(t, err)
	assert.Equal(t, out.String(), "complete -c bo -f\n")
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.example.com/x", "example.com/x"},
		{"http://example.com", "example.com"},
		{"https://example.com", "example.com"},
		{"example.com", "example.com"},
		{"ftp://www.example.com", "ftp://example.com"},
		{"https://www.a.com/www.b", "a.com/b"},
		{"http://https://x", "https://x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, completion.Simplify(tt.input), tt.want)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/a/b.fish", filepath.Join(home, "a", "b.fish")},
		{"/abs/b.fish", "/abs/b.fish"},
		{"rel/b.fish", "rel/b.fish"},
		{"~user/b.fish", "~user/b.fish"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := completion.ExpandHome(tt.input)
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestWriteFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := completion.WriteFile(completion.DefaultPath(), testConfig(), commands, zerolog.Nop())
	assert.NilError(t, err)
	assert.Equal(t, path, filepath.Join(home, ".config", "fish", "completions", "bo.fish"))

	data, err := os.ReadFile(path)
	assert.NilError(t, err)

	var want bytes.Buffer
	assert.NilError(t, completion.Generate(&want, testConfig(), commands, zerolog.Nop()))
	assert.Equal(t, string(data), want.String())
}
