package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// TestDefaultsRoundTrip verifies that every value written by setDefaults()
// is read back from the same viper key by NewToolConfigFromViper(), so a
// key rename in one place cannot silently zero a setting.
func TestDefaultsRoundTrip(t *testing.T) {
	// Reset viper to clear any state from other tests
	viper.Reset()
	setDefaults()

	cfg := NewToolConfigFromViper()
	defaults := DefaultToolConfig()

	if cfg.URLSafe != defaults.URLSafe {
		t.Errorf("URLSafe mismatch: got %v, want %v", cfg.URLSafe, defaults.URLSafe)
	}
	if cfg.Wrap != defaults.Wrap {
		t.Errorf("Wrap mismatch: got %d, want %d", cfg.Wrap, defaults.Wrap)
	}
	if cfg.StripLineBreaks != defaults.StripLineBreaks {
		t.Errorf("StripLineBreaks mismatch: got %v, want %v",
			cfg.StripLineBreaks, defaults.StripLineBreaks)
	}
}

// TestViperOverride verifies that explicit viper settings win over the
// defaults for every tool key.
func TestViperOverride(t *testing.T) {
	viper.Reset()
	setDefaults()

	viper.Set("encode.url_safe", true)
	viper.Set("encode.wrap", 76)
	viper.Set("decode.strip_linebreaks", true)

	cfg := NewToolConfigFromViper()

	if !cfg.URLSafe {
		t.Errorf("URLSafe override failed: got %v, want true", cfg.URLSafe)
	}
	if cfg.Wrap != 76 {
		t.Errorf("Wrap override failed: got %d, want 76", cfg.Wrap)
	}
	if !cfg.StripLineBreaks {
		t.Errorf("StripLineBreaks override failed: got %v, want true", cfg.StripLineBreaks)
	}
}

// TestUpdateToolConfig verifies that the global ToolConfigProperties picks
// up viper settings without disturbing the stored defaults.
func TestUpdateToolConfig(t *testing.T) {
	viper.Reset()
	setDefaults()
	defer func() { ToolConfigProperties = DefaultToolConfig() }()

	viper.Set("decode.strip_linebreaks", true)
	UpdateToolConfig()

	if !ToolConfigProperties.StripLineBreaks {
		t.Errorf("ToolConfigProperties.StripLineBreaks = %v, want true",
			ToolConfigProperties.StripLineBreaks)
	}
	if DefaultToolConfig().StripLineBreaks {
		t.Errorf("DefaultToolConfig() mutated by UpdateToolConfig()")
	}
}

// TestEnvironmentOverride verifies that GO_BASE64_* variables reach the
// tool keys through the prefix and key replacer wired in InitConfig().
func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("GO_BASE64_ENCODE_URL_SAFE", "true")
	t.Setenv("GO_BASE64_ENCODE_WRAP", "64")

	viper.SetEnvPrefix("go_base64")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	cfg := NewToolConfigFromViper()

	if !cfg.URLSafe {
		t.Errorf("environment URLSafe override failed: got %v, want true", cfg.URLSafe)
	}
	if cfg.Wrap != 64 {
		t.Errorf("environment Wrap override failed: got %d, want 64", cfg.Wrap)
	}
}

// TestBuildBase64DirPath verifies the config directory lands under the
// user's home directory.
func TestBuildBase64DirPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := BuildBase64DirPath()

	if filepath.Base(dir) != GOBASE64_BASE_DIR {
		t.Errorf("BuildBase64DirPath() = %q, want base %q", dir, GOBASE64_BASE_DIR)
	}
	if !strings.HasPrefix(dir, home) {
		t.Errorf("BuildBase64DirPath() = %q, want prefix %q", dir, home)
	}
}
