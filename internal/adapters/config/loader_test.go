package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vis/internal/adapters/config"
	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, domain.ConfigFileName, `
version: "1"
window:
  title: plasma
  width: 640
shaders:
  - path: shaders/plasma.vert
    role: vertex
  - path: shaders/plasma.frag
    role: frag
pollInterval: 250ms
frameBudget: 16ms
sampleRate: 48000
missingRole: omit
notify: true
`)

	cfg, err := newLoader(t).LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.WindowOptions{Title: "plasma", Width: 640, Height: domain.DefaultWindowHeight}, cfg.Window)
	assert.Equal(t, []domain.TrackedSource{
		{Path: filepath.Join(dir, "shaders", "plasma.vert"), Role: domain.RoleVertex},
		{Path: filepath.Join(dir, "shaders", "plasma.frag"), Role: domain.RoleFragment},
	}, cfg.Sources)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 16*time.Millisecond, cfg.FrameBudget)
	assert.InDelta(t, 48000, cfg.SampleRate, 0.001)
	assert.Equal(t, domain.MissingRoleOmit, cfg.MissingRole)
	assert.True(t, cfg.Notify)
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, domain.ConfigFileName, "")

	cfg, err := newLoader(t).LoadFile(path)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.Sources = domain.ResolveSources(dir, want.Sources)
	assert.Equal(t, want, cfg)
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "window: [",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unknown field",
			content: "windwo:\n  title: x\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unknown role",
			content: "shaders:\n  - path: a.tesc\n    role: tessellation\n",
			wantErr: domain.ErrUnknownRole.Error(),
		},
		{
			name:    "bad duration",
			content: "pollInterval: soon\n",
			wantErr: domain.ErrInvalidConfig.Error(),
		},
		{
			name:    "zero poll interval",
			content: "pollInterval: 0s\n",
			wantErr: domain.ErrInvalidConfig.Error(),
		},
		{
			name:    "negative width",
			content: "window:\n  width: -5\n",
			wantErr: domain.ErrInvalidConfig.Error(),
		},
		{
			name:    "bad policy",
			content: "missingRole: drop\n",
			wantErr: domain.ErrInvalidMissingRolePolicy.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, t.TempDir(), domain.ConfigFileName, tt.content)

			_, err := newLoader(t).LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	_, err := newLoader(t).LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigNotFound.Error())
}

func TestLoader_LoadFile_VersionWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	path := createFile(t, t.TempDir(), domain.ConfigFileName, "version: \"2\"\n")
	_, err := config.NewLoader(log).LoadFile(path)
	require.NoError(t, err)
}

func TestLoader_Load_Discovery(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "window:\n  title: found\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "found", cfg.Window.Title)
	assert.Equal(t, filepath.Join(root, "shaders", domain.DefaultVertexFile), cfg.Sources[0].Path)
}

func TestLoader_Load_Defaults(t *testing.T) {
	cwd := t.TempDir()

	cfg, err := newLoader(t).Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWindowTitle, cfg.Window.Title)
	assert.Equal(t, []domain.TrackedSource{
		{Path: filepath.Join(cwd, "shaders", "default.vert"), Role: domain.RoleVertex},
		{Path: filepath.Join(cwd, "shaders", "default.frag"), Role: domain.RoleFragment},
		{Path: filepath.Join(cwd, "shaders", "default.geom"), Role: domain.RoleGeometry},
	}, cfg.Sources)
}
