package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Shaders     ShadersConfig     `yaml:"shaders"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// ShaderPair names the vertex and fragment source files of one program
type ShaderPair struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// ShadersConfig contains the program loaded at startup and the table of
// programs bound to the digit keys 0-9
type ShadersConfig struct {
	Startup  ShaderPair         `yaml:"startup"`
	Bindings map[int]ShaderPair `yaml:"bindings"`
}

// DiagnosticsConfig contains debugging aids
type DiagnosticsConfig struct {
	GLChecks bool   `yaml:"gl_checks"` // drain glGetError after draw calls
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Hello, cube!",
			VSync:  true,
		},
		Shaders: ShadersConfig{
			Startup: ShaderPair{
				Vertex:   "shaders/raymarch.vs.glsl",
				Fragment: "shaders/raymarch.fs.glsl",
			},
			Bindings: map[int]ShaderPair{
				0: {Vertex: "shaders/minimal.vs.glsl", Fragment: "shaders/minimal.fs.glsl"},
				1: {Vertex: "shaders/color.vs.glsl", Fragment: "shaders/color.fs.glsl"},
				2: {Vertex: "shaders/cut.vs.glsl", Fragment: "shaders/cut.fs.glsl"},
				3: {Vertex: "shaders/wobble.vs.glsl", Fragment: "shaders/color.fs.glsl"},
				4: {Vertex: "shaders/experimental.vs.glsl", Fragment: "shaders/experimental.fs.glsl"},
				// placeholders for additional shaders
				5: {Vertex: "shaders/yourshader.vs.glsl", Fragment: "shaders/yourshader.fs.glsl"},
				6: {Vertex: "shaders/yourshader.vs.glsl", Fragment: "shaders/yourshader.fs.glsl"},
				7: {Vertex: "shaders/yourshader.vs.glsl", Fragment: "shaders/yourshader.fs.glsl"},
				8: {Vertex: "shaders/yourshader.vs.glsl", Fragment: "shaders/yourshader.fs.glsl"},
				9: {Vertex: "shaders/yourshader.vs.glsl", Fragment: "shaders/yourshader.fs.glsl"},
			},
		},
		Diagnostics: DiagnosticsConfig{
			GLChecks: false,
			LogLevel: "info",
		},
	}
}

// LoadConfig loads the configuration from a file. On any failure the returned
// config is still usable: it holds the defaults, plus whatever parsed.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// Binding returns the shader pair bound to a digit key, if any
func (c *Config) Binding(digit int) (ShaderPair, bool) {
	pair, ok := c.Shaders.Bindings[digit]
	return pair, ok
}
