package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/slidebutton/pkg/embedded"
	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDemoConfigDefaults(t *testing.T) {
	cfg, err := LoadDemoConfig([]byte(`
title: demo
buttons:
  - id: a
    label: plain
`))
	require.NoError(t, err)
	require.Len(t, cfg.Buttons, 1)

	b := cfg.Buttons[0]
	assert.Equal(t, slide.DefaultConfig(), b.Config)
	assert.Equal(t, DefaultStyleSpec(), b.Style)
	assert.False(t, b.HasAction())
}

func TestLoadDemoConfigOverrides(t *testing.T) {
	cfg, err := LoadDemoConfig([]byte(`
buttons:
  - id: timer
    countdown: 5
    actionLabel: Reset
    config:
      title: Go
      height: 52
      borderRadius: 12
      reverseSlideEnabled: false
      dynamicResetEnabled: true
    style:
      containerColor: "#700940"
`))
	require.NoError(t, err)

	b := cfg.Buttons[0]
	assert.Equal(t, "Go", b.Config.Title)
	assert.Equal(t, 52.0, b.Config.Height)
	assert.Equal(t, 12.0, b.Config.Radius())
	assert.False(t, b.Config.ReverseSlideEnabled)
	assert.True(t, b.Config.DynamicResetEnabled)
	// 未覆盖的字段保留默认值
	assert.Equal(t, slide.DefaultPadding, b.Config.Padding)
	assert.Equal(t, slide.DefaultCompleteThreshold, b.Config.CompleteThreshold)

	assert.Equal(t, "#700940", b.Style.ContainerColor)
	assert.Equal(t, "#FFFFFF", b.Style.ThumbColor)
	assert.Equal(t, DefaultTitleSize, b.Style.TitleSize)

	assert.Equal(t, 5.0, b.Countdown)
	assert.True(t, b.HasAction())
}

func TestDemoConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"no buttons", "title: x\n", ErrNoButtons},
		{"bad slide config", "buttons:\n  - id: a\n    config:\n      height: -1\n", slide.ErrInvalidConfig},
		{"missing id", "buttons:\n  - label: x\n", nil},
		{"duplicate id", "buttons:\n  - id: a\n  - id: a\n", nil},
		{"negative countdown", "buttons:\n  - id: a\n    countdown: -1\n", nil},
		{"bad title size", "buttons:\n  - id: a\n    style:\n      titleSize: 0\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDemoConfig([]byte(tt.yaml))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error %v should wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDemoConfigParseError(t *testing.T) {
	_, err := LoadDemoConfig([]byte("buttons: [unclosed"))
	assert.Error(t, err)
}

func TestLoadDemoConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  - id: a\n"), 0o644))

	cfg, err := LoadDemoConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.Buttons[0].ID)

	_, err = LoadDemoConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

// 内置配置与示例应用保持一致
func TestBundledDemoConfig(t *testing.T) {
	data, err := os.ReadFile("../../data/demo.yaml")
	require.NoError(t, err)

	embedded.Init(fstest.MapFS{DefaultDemoConfigPath: {Data: data}})
	cfg, err := LoadEmbeddedDemoConfig()
	require.NoError(t, err)

	assert.Equal(t, "RN SLIDE BUTTON", cfg.Title)
	require.Len(t, cfg.Buttons, 6)

	byID := make(map[string]ButtonSpec)
	for _, b := range cfg.Buttons {
		byID[b.ID] = b
	}
	assert.True(t, byID["disabled"].Config.Disabled)
	assert.Equal(t, 0.0, byID["customized"].Config.Padding)
	assert.Equal(t, 50.0, byID["customized"].Config.ThumbWidth)
	assert.True(t, byID["animated"].Config.Animation)
	assert.True(t, byID["auto-reset"].Config.AutoReset)
	assert.False(t, byID["auto-reset"].Config.ReverseSlideEnabled)

	timer := byID["timer"]
	assert.True(t, timer.Config.DynamicResetEnabled)
	assert.Equal(t, 5.0, timer.Countdown)
	assert.Equal(t, "Reset", timer.ActionLabel)
}

func TestApplyRTL(t *testing.T) {
	cfg := &DemoConfig{Buttons: []ButtonSpec{{ID: "a"}, {ID: "b"}}}
	cfg.ApplyRTL(true)
	for _, b := range cfg.Buttons {
		assert.True(t, b.Config.RTL, b.ID)
	}
}

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		label     string
		end       bool
		countdown int
		confirms  int
		want      string
	}{
		{"Customized: reached to {reached}", false, 0, 0, "Customized: reached to START"},
		{"Customized: reached to {reached}", true, 0, 0, "Customized: reached to END"},
		{"Timer: auto reset after {countdown} second", true, 3, 0, "Timer: auto reset after 3 second"},
		{"Confirmed {confirms} times", false, 0, 7, "Confirmed 7 times"},
		{"plain", true, 1, 1, "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLabel(tt.label, tt.end, tt.countdown, tt.confirms))
	}
}
