package slide

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 56.0, cfg.Height)
	assert.Equal(t, 5.0, cfg.Padding)
	assert.Equal(t, "Slide to confirm", cfg.Title)
	assert.Equal(t, 70.0, cfg.CompleteThreshold)
	assert.True(t, cfg.ReverseSlideEnabled)
	assert.False(t, cfg.AutoReset)
	assert.Equal(t, 1080, cfg.AutoResetDelay)
	assert.False(t, cfg.Animation)
	assert.Equal(t, 180, cfg.AnimationDuration)
	assert.False(t, cfg.DynamicResetEnabled)
	require.NoError(t, cfg.Validate())

	// 派生尺寸
	assert.Equal(t, 28.0, cfg.Radius())
	assert.Equal(t, 23.0, cfg.ChildRadius())
	assert.Equal(t, 46.0, cfg.ChildHeight())
	assert.Equal(t, 46.0, cfg.ResolvedThumbWidth())
}

func TestConfigBorderRadius(t *testing.T) {
	cfg := DefaultConfig()
	r := 3.0
	cfg.BorderRadius = &r

	assert.Equal(t, 3.0, cfg.Radius())
	assert.Equal(t, 0.0, cfg.ChildRadius(), "child radius must not go negative")
}

func TestConfigGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThumbWidth = 56

	g := cfg.Geometry(300)
	assert.Equal(t, 300.0, g.ContainerWidth)
	assert.Equal(t, 56.0, g.ThumbWidth)

	cfg.Width = 250
	assert.Equal(t, 250.0, cfg.Geometry(300).ContainerWidth, "fixed width overrides measured width")
}

func TestConfigValidate(t *testing.T) {
	neg := -1.0
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"负宽度", func(c *Config) { c.Width = -1 }},
		{"零高度", func(c *Config) { c.Height = 0 }},
		{"负内边距", func(c *Config) { c.Padding = -2 }},
		{"内边距过大", func(c *Config) { c.Padding = 28 }},
		{"负边框", func(c *Config) { c.BorderWidth = -1 }},
		{"负滑块宽度", func(c *Config) { c.ThumbWidth = -10 }},
		{"负圆角", func(c *Config) { c.BorderRadius = &neg }},
		{"阈值过大", func(c *Config) { c.CompleteThreshold = 101 }},
		{"阈值为负", func(c *Config) { c.CompleteThreshold = -1 }},
		{"负重置延迟", func(c *Config) { c.AutoResetDelay = -5 }},
		{"负动画时长", func(c *Config) { c.AnimationDuration = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "error %v should wrap ErrInvalidConfig", err)
		})
	}
}

func TestConfigYAMLOverDefaults(t *testing.T) {
	data := []byte(`
title: Slide to pay
completeThreshold: 50
autoReset: true
animation: true
rtl: true
`)
	cfg := DefaultConfig()
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	assert.Equal(t, "Slide to pay", cfg.Title)
	assert.Equal(t, 50.0, cfg.CompleteThreshold)
	assert.True(t, cfg.AutoReset)
	assert.True(t, cfg.Animation)
	assert.True(t, cfg.RTL)
	// 未出现的字段保留默认值
	assert.Equal(t, 56.0, cfg.Height)
	assert.True(t, cfg.ReverseSlideEnabled)
	assert.Equal(t, 1080, cfg.AutoResetDelay)
	assert.Nil(t, cfg.BorderRadius)
}
