package commands

import (
	"errors"
	"testing"

	"github.com/miner-utils/hf-uploader/checkpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	captureLog(t)
	dir := createCheckpoint(t, "5", "meta_model_5.pt", "config.json")
	cmd := NewValidateCommand().
		SetModelDir(dir).
		SetEpoch("5").
		SetFormat(FormatJson).
		SetValidator(checkpoint.NewValidator(nil, passingChecker{}))

	require.NoError(t, cmd.Run())
	assert.Equal(t, ValidateCommandName, cmd.CommandName())
	require.NotNil(t, cmd.Summary())
	assert.Empty(t, cmd.Summary().RepoId)
	assert.Len(t, cmd.Summary().Files, 2)
}

func TestValidateCommand_WrongEpoch(t *testing.T) {
	dir := createCheckpoint(t, "5", "meta_model_5.pt", "config.json")
	cmd := NewValidateCommand().
		SetModelDir(dir).
		SetEpoch("6").
		SetValidator(checkpoint.NewValidator(nil, passingChecker{}))

	var missingErr *checkpoint.MissingFileError
	require.True(t, errors.As(cmd.Run(), &missingErr))
	assert.Contains(t, missingErr.Path, "meta_model_6.pt")
	assert.Nil(t, cmd.Summary())
}

func TestValidateCommand_InvalidEpoch(t *testing.T) {
	validator := &fakeValidator{}
	err := NewValidateCommand().SetModelDir("/tmp/ckpt").SetEpoch("x").SetValidator(validator).Run()
	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Zero(t, validator.validateCalls)
}

func TestCheckFormat(t *testing.T) {
	assert.NoError(t, checkFormat(""))
	assert.NoError(t, checkFormat("table"))
	assert.NoError(t, checkFormat("JSON"))
	assert.Error(t, checkFormat("yaml"))
}

func TestSummaryRows_SkipEmptyValues(t *testing.T) {
	rows := summaryRows(&Summary{ModelDir: "/tmp/ckpt", Epoch: "0"})
	assert.Len(t, rows, 2)
	assert.Len(t, fileRows([]checkpoint.FileDetails{{Name: "config.json", Size: 2048}}), 1)
	assert.Equal(t, "2.048kB", fileRows([]checkpoint.FileDetails{{Name: "config.json", Size: 2048}})[0].Size)
}
