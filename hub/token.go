package hub

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"gopkg.in/ini.v1"
)

const (
	tokenEnv         = "HF_TOKEN"
	legacyTokenEnv   = "HUGGING_FACE_HUB_TOKEN"
	tokenPathEnv     = "HF_TOKEN_PATH"
	hfHomeEnv        = "HF_HOME"
	xdgCacheHomeEnv  = "XDG_CACHE_HOME"
	tokenFileName    = "token"
	storedTokensFile = "stored_tokens"
	storedTokenKey   = "hf_token"
)

// ResolveToken finds the Hub access token the same way huggingface_hub does.
// Order: the explicit token, HF_TOKEN, HUGGING_FACE_HUB_TOKEN, the named entry of
// the stored_tokens file (when tokenName is set), then the token file.
// An empty result with a nil error means no token is configured.
func ResolveToken(explicit, tokenName string) (string, error) {
	if token := strings.TrimSpace(explicit); token != "" {
		return token, nil
	}
	for _, env := range []string{tokenEnv, legacyTokenEnv} {
		if token := strings.TrimSpace(os.Getenv(env)); token != "" {
			log.Debug("Using Hugging Face token from", env)
			return token, nil
		}
	}
	hfHome, err := huggingFaceHome()
	if err != nil {
		return "", err
	}
	if tokenName != "" {
		return readStoredToken(filepath.Join(hfHome, storedTokensFile), tokenName)
	}
	tokenPath := os.Getenv(tokenPathEnv)
	if tokenPath == "" {
		tokenPath = filepath.Join(hfHome, tokenFileName)
	}
	exists, err := fileutils.IsFileExists(tokenPath, false)
	if err != nil || !exists {
		log.Debug("No Hugging Face token file found at", tokenPath)
		return "", nil
	}
	content, err := os.ReadFile(tokenPath)
	if err != nil {
		return "", errorutils.CheckErrorf("failed to read Hugging Face token file %s: %s", tokenPath, err.Error())
	}
	return strings.TrimSpace(string(content)), nil
}

func readStoredToken(path, tokenName string) (string, error) {
	exists, err := fileutils.IsFileExists(path, false)
	if err != nil {
		return "", errorutils.CheckError(err)
	}
	if !exists {
		return "", errorutils.CheckErrorf("token '%s' requested but %s does not exist", tokenName, path)
	}
	stored, err := ini.LoadSources(ini.LoadOptions{
		Loose:               true,
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return "", errorutils.CheckErrorf("failed to load %s: %s", path, err.Error())
	}
	section, err := stored.GetSection(tokenName)
	if err != nil {
		return "", errorutils.CheckErrorf("token '%s' not found in %s", tokenName, path)
	}
	token := strings.TrimSpace(section.Key(storedTokenKey).String())
	if token == "" {
		return "", errorutils.CheckErrorf("token '%s' in %s has no %s value", tokenName, path, storedTokenKey)
	}
	return token, nil
}

func huggingFaceHome() (string, error) {
	if home := os.Getenv(hfHomeEnv); home != "" {
		return home, nil
	}
	if cacheHome := os.Getenv(xdgCacheHomeEnv); cacheHome != "" {
		return filepath.Join(cacheHome, "huggingface"), nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errorutils.CheckErrorf("couldn't find user home directory: %s", err.Error())
	}
	return filepath.Join(userHome, ".cache", "huggingface"), nil
}
