// Package config persists installer defaults between runs.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/sampctl/configor"

	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/fs"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/print"
)

// DefaultRepo is the repository oav releases are published from.
const DefaultRepo = "entur/openapi-validator-cli"

// Config represents a local configuration for the installer. Every field can
// also be supplied per-run via flags or environment; the file only provides
// defaults.
// nolint:lll
type Config struct {
	Repo         string `json:"repo"                     env:"OAV_REPO"`           // org/name to install releases from
	InstallDir   string `json:"install_dir,omitempty"    env:"OAV_INSTALL_DIR"`    // forces the install destination
	GitHubToken  string `json:"github_token,omitempty"   env:"OAV_GITHUB_TOKEN"`   // token for private or enterprise hosts
	GitHubHost   string `json:"github_host,omitempty"    env:"OAV_GITHUB_HOST"`    // download/API host override
	GitHubAPIURL string `json:"github_api_url,omitempty" env:"OAV_GITHUB_API_URL"` // release index endpoint override
}

// LoadOrCreateConfig reads a config file from the given config directory,
// writing a default one on first run.
func LoadOrCreateConfig(configDir string) (cfg *Config, err error) {
	cfg = new(Config)

	err = godotenv.Load(".env")
	// on unix: "open .env: no such file or directory"
	// on windows: "open .env: The system cannot find the file specified"
	if err != nil && !strings.HasPrefix(err.Error(), "open .env") {
		print.Warn("Failed to load .env:", err)
	}

	configFiles := []string{
		filepath.Join(configDir, "config.json"),
		filepath.Join(configDir, "config.yaml"),
	}
	configFile := ""
	for _, file := range configFiles {
		if fs.Exists(file) {
			configFile = file
			break
		}
	}

	if configFile == "" {
		print.Verb("No configuration file found, using default configuration")
		cfg.Repo = DefaultRepo

		var contents []byte
		contents, err = json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			return
		}
		err = os.WriteFile(configFiles[0], contents, fs.PermFileShared)
		if err != nil {
			return
		}
		return cfg, nil
	}

	cnfgr := configor.New(&configor.Config{
		EnvironmentPrefix:    "OAV",
		ErrorOnUnmatchedKeys: false,
	})
	if err = cnfgr.Load(cfg, configFile); err != nil {
		return nil, err
	}
	if cfg.Repo == "" {
		cfg.Repo = DefaultRepo
	}
	print.Verb("Using configuration:", pretty.Sprint(cfg))

	return cfg, nil
}
