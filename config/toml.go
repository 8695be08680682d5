package config

import (
	"path"

	cmn "github.com/tendermint/tmlibs/common"
)

// ConfigFileName is the name of the config file under the root directory.
const ConfigFileName = "config.toml"

// EnsureRoot creates rootDir and writes the default config file into it
// unless one exists. It reports whether the file was written.
func EnsureRoot(rootDir string) bool {
	if err := cmn.EnsureDir(rootDir, 0700); err != nil {
		cmn.PanicSanity(err.Error())
	}

	configFilePath := path.Join(rootDir, ConfigFileName)

	// Write default config file if missing.
	if !cmn.FileExists(configFilePath) {
		cmn.MustWriteFile(configFilePath, []byte(defaultConfigTmpl), 0644)
		return true
	}
	return false
}

var defaultConfigTmpl = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml
log_level = "info"
# directory for rotated log files, relative to the home directory;
# leave empty to log on stderr
log_file = ""

[compiler]
max_instructions = 65536
# record layout the target machine expects, e.g. "1.0"
layout = ""

[output]
# hex | json
format = "hex"
`
