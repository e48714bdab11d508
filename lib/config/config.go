package config

import (
	"path/filepath"
	"strings"

	"github.com/go-i2p/go-base64/lib/util"
	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const GOBASE64_BASE_DIR = ".go-base64"

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.go-base64/
		viper.AddConfigPath(BuildBase64DirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment overrides, GO_BASE64_ENCODE_URL_SAFE and friends
	viper.SetEnvPrefix("go_base64")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Load defaults
	setDefaults()

	// handle config file if one is present
	handleConfigFile()

	// Update ToolConfigProperties
	UpdateToolConfig()
}

func setDefaults() {
	// Encode defaults
	viper.SetDefault("encode.url_safe", DefaultToolConfig().URLSafe)
	viper.SetDefault("encode.wrap", DefaultToolConfig().Wrap)

	// Decode defaults
	viper.SetDefault("decode.strip_linebreaks", DefaultToolConfig().StripLineBreaks)
}

// NewToolConfigFromViper creates a new ToolConfig from current viper settings
// This is the preferred way to get config instead of using the global ToolConfigProperties
func NewToolConfigFromViper() *ToolConfig {
	return &ToolConfig{
		URLSafe:         viper.GetBool("encode.url_safe"),
		Wrap:            viper.GetInt("encode.wrap"),
		StripLineBreaks: viper.GetBool("decode.strip_linebreaks"),
	}
}

// UpdateToolConfig updates the global ToolConfigProperties from viper settings
func UpdateToolConfig() {
	ToolConfigProperties.URLSafe = viper.GetBool("encode.url_safe")
	ToolConfigProperties.Wrap = viper.GetInt("encode.wrap")
	ToolConfigProperties.StripLineBreaks = viper.GetBool("decode.strip_linebreaks")
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && CfgFile == "" {
			// Running without a config file is normal for a one-shot
			// tool, defaults and environment overrides still apply
			return
		}
		log.Fatalf("Error reading config file: %s", err)
	}
	log.Debugf("Using config file: %s", viper.ConfigFileUsed())
}

func BuildBase64DirPath() string {
	return filepath.Join(util.UserHome(), GOBASE64_BASE_DIR)
}
