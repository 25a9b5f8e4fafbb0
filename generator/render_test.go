package generator

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r := NewRenderer()
	assert.NotNil(t, r)
	assert.NotNil(t, r.funcMap)
	assert.NotNil(t, r.cache)
	assert.Empty(t, r.cache)
}

func TestRenderString(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		templateStr string
		data        any
		expected    string
		wantErr     bool
	}{
		{
			name:        "simple template with no data",
			templateStr: "Hello World",
			data:        nil,
			expected:    "Hello World",
		},
		{
			name:        "template with struct data",
			templateStr: "class {{ .NameScreen }}Model:",
			data:        struct{ NameScreen string }{NameScreen: "UserLoginScreen"},
			expected:    "class UserLoginScreenModel:",
		},
		{
			name:        "conditional fragment selection",
			templateStr: "{{ if .HasDatabase }}import multitasking{{ else }}pass{{ end }}",
			data:        struct{ HasDatabase bool }{HasDatabase: true},
			expected:    "import multitasking",
		},
		{
			name:        "missing field is a fatal render error",
			templateStr: "{{ .NoSuchField }}",
			data:        struct{ NameScreen string }{},
			wantErr:     true,
		},
		{
			name:        "malformed template is a parse error",
			templateStr: "{{ .Unclosed",
			data:        nil,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderString(tt.name, tt.templateStr, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestRenderFS(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/greeting.tmpl": &fstest.MapFile{
			Data: []byte("module {{ .ModuleName }}"),
		},
	}

	r := NewRenderer()
	got, err := r.RenderFS(fsys, "templates/greeting.tmpl", struct{ ModuleName string }{"user_login"})
	require.NoError(t, err)
	assert.Equal(t, "module user_login", string(got))

	// Second render hits the cache.
	got, err = r.RenderFS(fsys, "templates/greeting.tmpl", struct{ ModuleName string }{"main_window"})
	require.NoError(t, err)
	assert.Equal(t, "module main_window", string(got))

	_, err = r.RenderFS(fsys, "templates/missing.tmpl", nil)
	assert.Error(t, err)
}

func TestTemplateFuncs(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		templateStr string
		data        any
		expected    string
	}{
		{"pascalCase", `{{ pascalCase .V }}`, struct{ V string }{"user_login"}, "UserLogin"},
		{"snakeCase", `{{ snakeCase .V }}`, struct{ V string }{"MainWindow"}, "main_window"},
		{"words", `{{ words .V }}`, struct{ V string }{"main_window"}, "main window"},
		{"quote", `{{ quote .V }}`, struct{ V string }{"LOGIN"}, `"LOGIN"`},
		{"lower upper", `{{ lower .V }}/{{ upper .V }}`, struct{ V string }{"Login"}, "login/LOGIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderString(tt.name, tt.templateStr, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "UserLogin", PascalCase("user_login"))
	assert.Equal(t, "Main", PascalCase("main"))
	assert.Equal(t, "", PascalCase(""))
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "user_login_screen", SnakeCase("UserLoginScreen"))
	assert.Equal(t, "main_window", SnakeCase("MainWindow"))
	assert.Equal(t, "already_snake", SnakeCase("already_snake"))
	assert.Equal(t, "", SnakeCase(""))
}

func TestCamelWords(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{"UserLogin", []string{"User", "Login"}},
		{"MainWindowScreen", []string{"Main", "Window", "Screen"}},
		{"Login", []string{"Login"}},
		{"login", nil},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CamelWords(tt.in), "CamelWords(%q)", tt.in)
	}
}
