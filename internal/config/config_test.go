package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points global and project config lookups at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, key := range []string{"TITLES", "HEIGHT", "ANIMATE", "PRESERVE_SELECTION", "THEME", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv("SEGCTL_"+key, "")
		_ = os.Unsetenv("SEGCTL_" + key)
	}
	for _, key := range appearanceKeys {
		env := "SEGCTL_APPEARANCE_" + strings.ToUpper(key)
		t.Setenv(env, "")
		_ = os.Unsetenv(env)
	}
	return dir
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/segctl/segctl.yml", GlobalPath())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		assert.True(t, filepath.IsAbs(got), "GlobalPath() should be absolute, got %v", got)
		assert.Equal(t, "segctl.yml", filepath.Base(got))
	})
}

func TestProjectPath(t *testing.T) {
	assert.Equal(t, "segctl.yml", ProjectPath())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	isolate(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(GlobalPath()), 0755))
	require.NoError(t, os.WriteFile(GlobalPath(), []byte("titles: [One, Two]\nheight: 5\ntheme: catppuccin-latte\n"), 0644))
	require.NoError(t, os.WriteFile(ProjectPath(), []byte("height: 4\n"), 0644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, cfg.Titles)
	assert.Equal(t, 4, cfg.Height)
	assert.Equal(t, "catppuccin-latte", cfg.Theme)
	assert.True(t, Exists())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(ProjectPath(), []byte("height: 4\nanimate: true\n"), 0644))
	t.Setenv("SEGCTL_HEIGHT", "7")
	t.Setenv("SEGCTL_ANIMATE", "false")
	t.Setenv("SEGCTL_TITLES", "x,y,z")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Height)
	assert.False(t, cfg.Animate)
	assert.Equal(t, []string{"x", "y", "z"}, cfg.Titles)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SEGCTL_HEIGHT", "7")

	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	flags.Int("height", 3, "")
	flags.StringSlice("titles", nil, "")
	flags.Bool("preserve-selection", false, "")
	require.NoError(t, flags.Parse([]string{"--height", "9", "--titles", "a,b", "--preserve-selection"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Height)
	assert.Equal(t, []string{"a", "b"}, cfg.Titles)
	assert.True(t, cfg.PreserveSelection)
}

func TestLoad_AppearanceBlock(t *testing.T) {
	isolate(t)

	yml := `appearance:
  selector_color: "#ff0000"
  background_color: ""
  selected_font: bold,underline
  label_top_padding: 1
`
	require.NoError(t, os.WriteFile(ProjectPath(), []byte(yml), 0644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.Appearance.SelectorColor)
	assert.Equal(t, "#ff0000", *cfg.Appearance.SelectorColor)
	require.NotNil(t, cfg.Appearance.LabelTopPadding)
	assert.Equal(t, 1.0, *cfg.Appearance.LabelTopPadding)
	assert.Nil(t, cfg.Appearance.TextColor)

	app, err := cfg.Appearance.Appearance()
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", app.SelectorColor)
	assert.Equal(t, 1.0, app.LabelTopPadding)
	assert.True(t, app.SelectedFont.Bold)
	assert.True(t, app.SelectedFont.Underline)
}

func TestLoad_AppearanceEnvOverridesFile(t *testing.T) {
	isolate(t)

	yml := `appearance:
  selector_color: "#00ff00"
  text_color: "#0000ff"
`
	require.NoError(t, os.WriteFile(ProjectPath(), []byte(yml), 0644))
	t.Setenv("SEGCTL_APPEARANCE_SELECTOR_COLOR", "#ff0000")
	t.Setenv("SEGCTL_APPEARANCE_SELECTOR_HEIGHT", "2")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.Appearance.SelectorColor)
	assert.Equal(t, "#ff0000", *cfg.Appearance.SelectorColor)
	require.NotNil(t, cfg.Appearance.SelectorHeight)
	assert.Equal(t, 2.0, *cfg.Appearance.SelectorHeight)
	require.NotNil(t, cfg.Appearance.TextColor, "file values without env survive")
	assert.Equal(t, "#0000ff", *cfg.Appearance.TextColor)
	assert.Nil(t, cfg.Appearance.BottomLineColor)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("blank titles", func(t *testing.T) {
		isolate(t)
		require.NoError(t, os.WriteFile(ProjectPath(), []byte("titles: [\" \", \"\"]\n"), 0644))
		_, err := Load(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "titles")
	})

	t.Run("zero height", func(t *testing.T) {
		isolate(t)
		require.NoError(t, os.WriteFile(ProjectPath(), []byte("height: 0\n"), 0644))
		_, err := Load(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "height")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		isolate(t)
		require.NoError(t, os.WriteFile(ProjectPath(), []byte("titles: [unterminated\n"), 0644))
		_, err := Load(nil)
		require.Error(t, err)
	})
}

func TestWriteGlobal(t *testing.T) {
	isolate(t)

	color := "#89b4fa"
	cfg := Default()
	cfg.Titles = []string{"Inbox", "Sent"}
	cfg.LogLevel = "debug"
	cfg.Appearance.SelectorColor = &color

	require.NoError(t, WriteGlobal(cfg))

	data, err := os.ReadFile(GlobalPath())
	require.NoError(t, err)
	content := string(data)
	for _, field := range []string{
		"- Inbox",
		"- Sent",
		"height: 3",
		"animate: true",
		"log_level: debug",
		"selector_color: '#89b4fa'",
	} {
		assert.Contains(t, content, field)
	}

	loaded, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.Titles, loaded.Titles)
	require.NotNil(t, loaded.Appearance.SelectorColor)
	assert.Equal(t, color, *loaded.Appearance.SelectorColor)
}

func TestWriteProject(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, WriteProject(Default()))
	_, err := os.Stat(filepath.Join(dir, "segctl.yml"))
	require.NoError(t, err)
}

func TestParseFont(t *testing.T) {
	tests := []struct {
		in      string
		bold    bool
		italic  bool
		under   bool
		faint   bool
		wantErr bool
	}{
		{in: ""},
		{in: "regular"},
		{in: "bold", bold: true},
		{in: "Bold, Italic", bold: true, italic: true},
		{in: "underline+faint", under: true, faint: true},
		{in: "heavy", wantErr: true},
	}
	for _, tt := range tests {
		f, err := ParseFont(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.bold, f.Bold, tt.in)
		assert.Equal(t, tt.italic, f.Italic, tt.in)
		assert.Equal(t, tt.under, f.Underline, tt.in)
		assert.Equal(t, tt.faint, f.Faint, tt.in)
	}
}

func TestAppearanceConfig_Invalid(t *testing.T) {
	bad := "red"
	_, err := AppearanceConfig{TextColor: &bad}.Appearance()
	require.Error(t, err)

	neg := -1.0
	_, err = AppearanceConfig{SelectorHeight: &neg}.Appearance()
	require.Error(t, err)

	font := "wide"
	_, err = AppearanceConfig{Font: &font}.Appearance()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.font")
}
