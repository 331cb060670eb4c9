package config

import (
	"io/fs"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		envVars map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults only",
			want: Config{LogLevel: "info", FrameDelay: 200 * time.Millisecond},
		},
		{
			name: "yaml file",
			file: "log_level: debug\nrender: true\nframe_delay: 50ms\nstrict: true\n",
			want: Config{LogLevel: "debug", Render: true, FrameDelay: 50 * time.Millisecond, Strict: true},
		},
		{
			name: "env overrides yaml",
			file: "log_level: debug\nrender: true\n",
			envVars: map[string]string{
				"GRIDROBOT_LOG_LEVEL":   "warn",
				"GRIDROBOT_RENDER":      "false",
				"GRIDROBOT_FRAME_DELAY": "1s",
			},
			want: Config{LogLevel: "warn", FrameDelay: time.Second},
		},
		{
			name:    "bad log level",
			file:    "log_level: chatty\n",
			wantErr: true,
		},
		{
			name:    "negative frame delay",
			envVars: map[string]string{"GRIDROBOT_FRAME_DELAY": "-5ms"},
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			file:    "render: [\n",
			wantErr: true,
		},
		{
			name:    "malformed env",
			envVars: map[string]string{"GRIDROBOT_STRICT": "sometimes"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			if tt.file != "" {
				require.NoError(t, afero.WriteFile(fsys, DefaultPath, []byte(tt.file), 0o644))
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load(fsys, DefaultPath)
			if err == nil {
				err = cfg.Validate()
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoadSkipsValidation(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, DefaultPath, []byte("log_level: chatty\n"), 0o644))

	cfg, err := Load(fsys, DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "chatty", cfg.LogLevel)
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "debug"
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cfg, err := Load(fsys, DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(fsys, "typo.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "typo.yaml")
}
