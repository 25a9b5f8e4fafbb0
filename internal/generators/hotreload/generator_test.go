package hotreload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patterncraft/patterncraft/generator"
)

const originalMain = `from kivymd.app import MDApp


class LoginApp(MDApp):
    pass


LoginApp().run()
`

func TestRewrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte(originalMain), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"),
		[]byte("kivy==2.1.0\nkivymd==1.0.0\n"), 0644))

	ops, err := NewGenerator().Rewrite(dir, Data{
		ProjectName: "LoginApp",
		NameScreen:  "UserLoginScreen",
		ModuleName:  "user_login",
	})
	require.NoError(t, err)
	require.NoError(t, generator.Execute(context.Background(), ops,
		generator.ExecuteOptions{Force: true}))

	main, err := os.ReadFile(filepath.Join(dir, "main.py"))
	require.NoError(t, err)
	content := string(main)

	assert.Contains(t, content, "from kivymd.tools.hotreload.app import MDApp")
	assert.Contains(t, content, "class LoginApp(MDApp)")
	assert.Contains(t, content, `"UserLoginScreen"`)
	assert.Contains(t, content, `"user_login.kv"`)

	// The original entry point survives beneath the new one, fully
	// commented out.
	assert.Contains(t, content, "# from kivymd.app import MDApp")
	assert.Contains(t, content, "# LoginApp().run()")
	assert.Less(t,
		strings.Index(content, "hotreload"),
		strings.Index(content, "# from kivymd.app import MDApp"))

	requirements, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, "kivy==2.1.0\nkivymd==1.0.0\nwatchdog\n", string(requirements))
}

func TestRewriteFeatureHooks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte(originalMain), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"),
		[]byte("kivy==2.1.0\nkivymd==1.0.0\n"), 0644))

	ops, err := NewGenerator().Rewrite(dir, Data{
		ProjectName:  "LoginApp",
		NameScreen:   "UserLoginScreen",
		ModuleName:   "user_login",
		HasDatabase:  true,
		Localization: true,
	})
	require.NoError(t, err)
	require.NoError(t, generator.Execute(context.Background(), ops,
		generator.ExecuteOptions{Force: true}))

	main, err := os.ReadFile(filepath.Join(dir, "main.py"))
	require.NoError(t, err)
	content := string(main)

	// Database hooks.
	assert.Contains(t, content, "from Model.database import DataBase")
	assert.Contains(t, content, "self.database = DataBase()")
	assert.Contains(t, content, `["model"](self.database)`)

	// Localization hooks.
	assert.Contains(t, content, `lang = StringProperty("en")`)
	assert.Contains(t, content, "from libs.translation import Translation")
	assert.Contains(t, content, "def switch_lang(self)")
}

func TestRewriteRequiresEntryPoint(t *testing.T) {
	dir := t.TempDir()

	_, err := NewGenerator().Rewrite(dir, Data{ProjectName: "LoginApp"})
	assert.ErrorContains(t, err, "reading entry point")
}

func TestCommentOut(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"single line", "import os\n", "# import os\n"},
		{"multiple lines", "a\nb\n", "# a\n# b\n"},
		{"no trailing newline", "a\nb", "# a\n# b"},
		{"preserves blank lines", "a\n\nb\n", "# a\n# \n# b\n"},
		{"empty source", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(CommentOut(tt.in)))
		})
	}
}
