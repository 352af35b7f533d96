package config

import (
	"path/filepath"

	"github.com/jfrog/jfrog-cli-core/v2/utils/coreutils"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/spf13/viper"
)

const (
	jfrogDir         = ".jfrog"
	uploaderDir      = "hf-uploader"
	uploaderFileYml  = "uploader.yml"
	uploaderFileYaml = "uploader.yaml"

	keyHubEndpoint          = "hub.endpoint"
	keyHubToken             = "hub.token"
	keyHubTokenName         = "hub.tokenName"
	keyHubRepoType          = "hub.repoType"
	keyUploadHFTransfer     = "upload.hfTransfer"
	keyUploadInstallDeps    = "upload.installDependencies"
	keyUploadPythonPath     = "upload.pythonPath"
	keyCheckpointConfigFile = "checkpoint.configFile"

	envEndpoint    = "HF_ENDPOINT"
	envToken       = "HF_TOKEN"
	envTokenName   = "HF_UPLOADER_TOKEN_NAME"
	envHFTransfer  = "HF_HUB_ENABLE_HF_TRANSFER"
	envInstallDeps = "HF_UPLOADER_INSTALL_DEPS"
	envPythonPath  = "HF_UPLOADER_PYTHON"
)

type HubConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	Token     string `mapstructure:"token"`
	TokenName string `mapstructure:"tokenName"`
	RepoType  string `mapstructure:"repoType"`
}

type UploadConfig struct {
	Revision            string `mapstructure:"revision"`
	CommitMessage       string `mapstructure:"commitMessage"`
	HFTransfer          bool   `mapstructure:"hfTransfer"`
	InstallDependencies bool   `mapstructure:"installDependencies"`
	PythonPath          string `mapstructure:"pythonPath"`
}

type CheckpointConfig struct {
	ExtraRequiredFiles []string `mapstructure:"extraRequiredFiles"`
	ConfigFile         string   `mapstructure:"configFile"`
	RequiredConfigKeys []string `mapstructure:"requiredConfigKeys"`
}

type UploaderConfig struct {
	Hub        HubConfig        `mapstructure:"hub"`
	Upload     UploadConfig     `mapstructure:"upload"`
	Checkpoint CheckpointConfig `mapstructure:"checkpoint"`
}

// LoadUploaderConfig reads the first uploader.y(a)ml found under an upstream .jfrog/hf-uploader
// directory, then under the JFrog home directory. Environment variables override file values,
// and are used alone when no file exists.
func LoadUploaderConfig() (*UploaderConfig, error) {
	// 1) Upstream .jfrog root
	if root, exists, _ := fileutils.FindUpstream(jfrogDir, fileutils.Dir); exists {
		if path := firstExisting(filepath.Join(root, jfrogDir, uploaderDir)); path != "" {
			return readConfigWithEnv(path)
		}
	}

	// 2) Home fallback: ~/.jfrog/hf-uploader/...
	if home, err := coreutils.GetJfrogHomeDir(); err == nil && home != "" {
		if path := firstExisting(filepath.Join(home, uploaderDir)); path != "" {
			return readConfigWithEnv(path)
		}
	}

	// 3) Env-only (no file)
	return readConfigWithEnv("")
}

func firstExisting(dir string) string {
	for _, name := range []string{uploaderFileYml, uploaderFileYaml} {
		path := filepath.Join(dir, name)
		if exists, err := fileutils.IsFileExists(path, false); err == nil && exists {
			return path
		}
	}
	return ""
}

func readConfigWithEnv(path string) (*UploaderConfig, error) {
	v := viper.New()

	v.SetDefault(keyHubRepoType, "model")
	v.SetDefault(keyCheckpointConfigFile, "config.json")

	_ = v.BindEnv(keyHubEndpoint, envEndpoint)
	_ = v.BindEnv(keyHubToken, envToken)
	_ = v.BindEnv(keyHubTokenName, envTokenName)
	_ = v.BindEnv(keyUploadHFTransfer, envHFTransfer)
	_ = v.BindEnv(keyUploadInstallDeps, envInstallDeps)
	_ = v.BindEnv(keyUploadPythonPath, envPythonPath)
	v.AutomaticEnv()

	if path != "" {
		log.Debug("Loading uploader configuration from", path)
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errorutils.CheckErrorf("failed to read uploader configuration %s: %s", path, err.Error())
		}
	}

	cfg := new(UploaderConfig)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errorutils.CheckError(err)
	}
	return cfg, nil
}
