package checkpoint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `{
  "model_type": "llama",
  "architectures": ["LlamaForCausalLM"],
  "hidden_size": 2048,
  "num_hidden_layers": 16,
  "num_attention_heads": 32,
  "vocab_size": 128256
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func createCheckpoint(t *testing.T, epoch string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "meta_model_"+epoch+".pt", "weights")
	writeFile(t, dir, "config.json", validConfig)
	return dir
}

type stubChecker struct {
	calls int
	err   error
}

func (s *stubChecker) CheckConfig(string) error {
	s.calls++
	return s.err
}

func TestRequiredFiles(t *testing.T) {
	assert.Equal(t, []string{"meta_model_0.pt", "config.json"}, RequiredFiles("0"))
	assert.Equal(t, []string{"meta_model_12.pt", "config.json"}, RequiredFiles("12"))
}

func TestNewManifest_ExtraFiles(t *testing.T) {
	manifest := NewManifest("adapter_{epoch}.pt", "config.json", " ", "tokenizer.json")
	assert.Equal(t, []string{"meta_model_3.pt", "config.json", "adapter_3.pt", "tokenizer.json"}, manifest.RequiredFiles("3"))
}

func TestNewConfigManifest(t *testing.T) {
	manifest := NewConfigManifest("params.json", "tokenizer.json", "params.json")
	assert.Equal(t, []string{"meta_model_1.pt", "params.json", "tokenizer.json"}, manifest.RequiredFiles("1"))
	assert.Equal(t, RequiredFiles("1"), NewConfigManifest("").RequiredFiles("1"))
}

func TestValidate_AllFilesPresent(t *testing.T) {
	dir := createCheckpoint(t, "0")
	checker := &stubChecker{}
	err := NewValidator(NewManifest(), checker).Validate(dir, "0")
	assert.NoError(t, err)
	assert.Equal(t, 1, checker.calls)
}

func TestValidate_MissingConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "meta_model_0.pt", "weights")
	checker := &stubChecker{}

	err := NewValidator(NewManifest(), checker).Validate(dir, "0")
	var missing *MissingFileError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, filepath.Join(dir, "config.json"), missing.Path)
	assert.Contains(t, err.Error(), filepath.Join(dir, "config.json"))
	assert.Zero(t, checker.calls, "config check must not run when a file is missing")
}

func TestValidate_ReportsFirstMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := NewValidator(NewManifest(), &stubChecker{}).Validate(dir, "5")
	var missing *MissingFileError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, filepath.Join(dir, "meta_model_5.pt"), missing.Path)
}

func TestValidate_WrongEpoch(t *testing.T) {
	dir := createCheckpoint(t, "0")
	err := NewValidator(nil, &stubChecker{}).Validate(dir, "1")
	var missing *MissingFileError
	assert.True(t, errors.As(err, &missing))
}

func TestValidate_PropagatesCheckerError(t *testing.T) {
	dir := createCheckpoint(t, "0")
	checkErr := &ConfigCheckError{Path: "x", Reason: "bad"}
	err := NewValidator(nil, &stubChecker{err: checkErr}).Validate(dir, "0")
	assert.Same(t, checkErr, err)
}

func TestDescribe(t *testing.T) {
	dir := createCheckpoint(t, "0")
	details, err := NewValidator(nil, nil).Describe(dir, "0")
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "meta_model_0.pt", details[0].Name)
	assert.Equal(t, int64(len("weights")), details[0].Size)
	assert.Len(t, details[0].Sha256, 64)
	assert.Equal(t, "config.json", details[1].Name)
	assert.Equal(t, filepath.Join(dir, "config.json"), details[1].Path)
}

func TestDescribe_MissingFile(t *testing.T) {
	_, err := NewValidator(nil, nil).Describe(t.TempDir(), "0")
	assert.Error(t, err)
}
