package commands

import (
	"github.com/jfrog/jfrog-cli-core/v2/utils/config"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

const ValidateCommandName = "hf-validate"

// ValidateCommand runs the checkpoint checks of an upload without touching the Hub.
type ValidateCommand struct {
	name      string
	modelDir  string
	epoch     string
	format    string
	validator CheckpointValidator
	summary   *Summary
}

func NewValidateCommand() *ValidateCommand {
	return &ValidateCommand{name: ValidateCommandName, format: FormatTable}
}

func (vc *ValidateCommand) SetModelDir(modelDir string) *ValidateCommand {
	vc.modelDir = modelDir
	return vc
}

func (vc *ValidateCommand) SetEpoch(epoch string) *ValidateCommand {
	vc.epoch = epoch
	return vc
}

func (vc *ValidateCommand) SetFormat(format string) *ValidateCommand {
	vc.format = format
	return vc
}

func (vc *ValidateCommand) SetValidator(validator CheckpointValidator) *ValidateCommand {
	vc.validator = validator
	return vc
}

func (vc *ValidateCommand) CommandName() string {
	return vc.name
}

func (vc *ValidateCommand) ServerDetails() (*config.ServerDetails, error) {
	return nil, nil
}

func (vc *ValidateCommand) ModelDir() string {
	return vc.modelDir
}

func (vc *ValidateCommand) Epoch() string {
	return vc.epoch
}

func (vc *ValidateCommand) Summary() *Summary {
	return vc.summary
}

func (vc *ValidateCommand) Run() error {
	if err := checkCheckpointArgs(vc.modelDir, vc.epoch, vc.format); err != nil {
		return err
	}
	if err := vc.validator.Validate(vc.modelDir, vc.epoch); err != nil {
		return err
	}
	files, err := vc.validator.Describe(vc.modelDir, vc.epoch)
	if err != nil {
		return err
	}
	log.Info("Checkpoint", vc.modelDir, "is valid for epoch", vc.epoch)
	vc.summary = &Summary{ModelDir: vc.modelDir, Epoch: vc.epoch, Files: files}
	return printSummary(vc.summary, vc.format)
}
