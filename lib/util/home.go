package util

import (
	"os"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// UserHome returns the current user's home directory.
// Falls back to the HOME and USERPROFILE environment variables, then to
// the working directory, so the tool still runs in containers where no
// home directory is set.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir
	}
	if home := os.Getenv("HOME"); home != "" {
		log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
		return home
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
		return home
	}
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		panic("go-base64: unable to determine home directory; set $HOME")
	}
	log.WithError(err).Warn("no home directory available, falling back to working directory")
	return wd
}
