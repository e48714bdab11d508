package config

// tool.config options
type ToolConfig struct {
	// encode writes the URL-safe alphabet when set
	URLSafe bool
	// line width applied to encoded output, zero leaves it on one line
	Wrap int
	// decode removes line breaks before reading symbols when set
	StripLineBreaks bool
}

// defaults for the tool
var defaultToolConfig = ToolConfig{
	URLSafe:         false,
	Wrap:            0,
	StripLineBreaks: false,
}

// DefaultToolConfig returns a fresh copy of the built-in defaults.
func DefaultToolConfig() *ToolConfig {
	cfg := defaultToolConfig
	return &cfg
}

var ToolConfigProperties = DefaultToolConfig()
