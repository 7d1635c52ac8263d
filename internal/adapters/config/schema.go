package config

// Visfile represents the structure of the vis.yaml configuration file.
type Visfile struct {
	Version      string      `yaml:"version"`
	Window       WindowDTO   `yaml:"window"`
	Shaders      []ShaderDTO `yaml:"shaders"`
	PollInterval string      `yaml:"pollInterval"`
	FrameBudget  string      `yaml:"frameBudget"`
	SampleRate   *float32    `yaml:"sampleRate"`
	MissingRole  string      `yaml:"missingRole"`
	Notify       bool        `yaml:"notify"`
}

// WindowDTO represents the window section.
type WindowDTO struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ShaderDTO represents one tracked shader source.
type ShaderDTO struct {
	Path string `yaml:"path"`
	Role string `yaml:"role"`
}
