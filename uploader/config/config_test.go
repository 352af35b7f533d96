package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("JFROG_CLI_HOME_DIR", filepath.Join(dir, "jfrog-home"))
	for _, env := range []string{envEndpoint, envToken, envTokenName, envHFTransfer, envInstallDeps, envPythonPath} {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadUploaderConfig_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := LoadUploaderConfig()
	require.NoError(t, err)
	assert.Equal(t, "model", cfg.Hub.RepoType)
	assert.Equal(t, "config.json", cfg.Checkpoint.ConfigFile)
	assert.Empty(t, cfg.Hub.Endpoint)
	assert.False(t, cfg.Upload.HFTransfer)
}

func TestLoadUploaderConfig_Upstream(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, ".jfrog", "hf-uploader"), "uploader.yml", `
hub:
  endpoint: https://hf.example.com
  tokenName: work
upload:
  revision: main
  commitMessage: nightly checkpoint
  installDependencies: true
checkpoint:
  extraRequiredFiles:
    - adapter_{epoch}.pt
  requiredConfigKeys: [model_type, vocab_size]
`)
	cfg, err := LoadUploaderConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://hf.example.com", cfg.Hub.Endpoint)
	assert.Equal(t, "work", cfg.Hub.TokenName)
	assert.Equal(t, "model", cfg.Hub.RepoType)
	assert.Equal(t, "main", cfg.Upload.Revision)
	assert.Equal(t, "nightly checkpoint", cfg.Upload.CommitMessage)
	assert.True(t, cfg.Upload.InstallDependencies)
	assert.Equal(t, []string{"adapter_{epoch}.pt"}, cfg.Checkpoint.ExtraRequiredFiles)
	assert.Equal(t, []string{"model_type", "vocab_size"}, cfg.Checkpoint.RequiredConfigKeys)
}

func TestLoadUploaderConfig_EnvOverride(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, ".jfrog", "hf-uploader"), "uploader.yaml", "hub:\n  endpoint: https://file-url\n")
	t.Setenv(envEndpoint, "https://env-url")
	t.Setenv(envHFTransfer, "1")
	t.Setenv(envToken, "hf_env")

	cfg, err := LoadUploaderConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://env-url", cfg.Hub.Endpoint)
	assert.Equal(t, "hf_env", cfg.Hub.Token)
	assert.True(t, cfg.Upload.HFTransfer)
}

func TestLoadUploaderConfig_HomeFallback(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "jfrog-home", "hf-uploader"), "uploader.yml", "hub:\n  repoType: dataset\n")
	cfg, err := LoadUploaderConfig()
	require.NoError(t, err)
	assert.Equal(t, "dataset", cfg.Hub.RepoType)
}

func TestLoadUploaderConfig_EnvOnly(t *testing.T) {
	isolate(t)
	t.Setenv(envPythonPath, "/opt/python/bin/python3")
	t.Setenv(envInstallDeps, "true")
	cfg, err := LoadUploaderConfig()
	require.NoError(t, err)
	assert.Equal(t, "/opt/python/bin/python3", cfg.Upload.PythonPath)
	assert.True(t, cfg.Upload.InstallDependencies)
}

func TestLoadUploaderConfig_InvalidFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, ".jfrog", "hf-uploader"), "uploader.yml", "hub: [unclosed\n")
	_, err := LoadUploaderConfig()
	assert.ErrorContains(t, err, "failed to read uploader configuration")
}
