package commands

import (
	"github.com/jfrog/jfrog-cli-core/v2/common/build"
	"github.com/jfrog/jfrog-cli-core/v2/utils/config"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/miner-utils/hf-uploader/checkpoint"
	"github.com/miner-utils/hf-uploader/commonutils"
)

const (
	UploadCommandName = "hf-upload"

	modelDirFlagName = "model_dir"
	epochFlagName    = "epoch"
)

// CheckpointValidator checks a checkpoint directory for an epoch and describes its required files
type CheckpointValidator interface {
	Validate(dir, epoch string) error
	Describe(dir, epoch string) ([]checkpoint.FileDetails, error)
}

// ModelStore transfers the checkpoint directory and returns the remote location
type ModelStore interface {
	UploadModel(modelDir, repoId string) (string, error)
}

type VisibilityUpdater interface {
	UpdateRepoVisibility(repoId string, private bool) error
}

// UploadCommand validates a checkpoint directory, uploads it to the Hub and makes the repository public.
type UploadCommand struct {
	name               string
	repoId             string
	modelDir           string
	epoch              string
	keepPrivate        bool
	format             string
	validator          CheckpointValidator
	modelStore         ModelStore
	visibilityUpdater  VisibilityUpdater
	buildConfiguration *build.BuildConfiguration
	serverDetails      *config.ServerDetails
	summary            *Summary
}

func NewUploadCommand() *UploadCommand {
	return &UploadCommand{name: UploadCommandName, format: FormatTable}
}

func (uc *UploadCommand) SetRepoId(repoId string) *UploadCommand {
	uc.repoId = repoId
	return uc
}

func (uc *UploadCommand) SetModelDir(modelDir string) *UploadCommand {
	uc.modelDir = modelDir
	return uc
}

func (uc *UploadCommand) SetEpoch(epoch string) *UploadCommand {
	uc.epoch = epoch
	return uc
}

// SetKeepPrivate skips the publish step, leaving the repository private
func (uc *UploadCommand) SetKeepPrivate(keepPrivate bool) *UploadCommand {
	uc.keepPrivate = keepPrivate
	return uc
}

func (uc *UploadCommand) SetFormat(format string) *UploadCommand {
	uc.format = format
	return uc
}

func (uc *UploadCommand) SetValidator(validator CheckpointValidator) *UploadCommand {
	uc.validator = validator
	return uc
}

func (uc *UploadCommand) SetModelStore(modelStore ModelStore) *UploadCommand {
	uc.modelStore = modelStore
	return uc
}

func (uc *UploadCommand) SetVisibilityUpdater(visibilityUpdater VisibilityUpdater) *UploadCommand {
	uc.visibilityUpdater = visibilityUpdater
	return uc
}

func (uc *UploadCommand) SetBuildConfiguration(buildConfiguration *build.BuildConfiguration) *UploadCommand {
	uc.buildConfiguration = buildConfiguration
	return uc
}

func (uc *UploadCommand) SetServerDetails(serverDetails *config.ServerDetails) *UploadCommand {
	uc.serverDetails = serverDetails
	return uc
}

func (uc *UploadCommand) CommandName() string {
	return uc.name
}

func (uc *UploadCommand) ServerDetails() (*config.ServerDetails, error) {
	return uc.serverDetails, nil
}

func (uc *UploadCommand) RepoId() string {
	return uc.repoId
}

func (uc *UploadCommand) ModelDir() string {
	return uc.modelDir
}

func (uc *UploadCommand) Epoch() string {
	return uc.epoch
}

func (uc *UploadCommand) IsKeepPrivate() bool {
	return uc.keepPrivate
}

// Summary is available after a successful Run
func (uc *UploadCommand) Summary() *Summary {
	return uc.summary
}

func (uc *UploadCommand) Run() error {
	repo, err := ParseRepoId(uc.repoId)
	if err != nil {
		return err
	}
	if err = checkCheckpointArgs(uc.modelDir, uc.epoch, uc.format); err != nil {
		return err
	}

	log.Info("Validating checkpoint", uc.modelDir, "for epoch", uc.epoch)
	if err = uc.validator.Validate(uc.modelDir, uc.epoch); err != nil {
		return err
	}
	files, err := uc.validator.Describe(uc.modelDir, uc.epoch)
	if err != nil {
		return err
	}

	commitUrl, err := uc.upload(repo)
	if err != nil {
		return err
	}

	visibility := visibilityPrivate
	if uc.keepPrivate {
		log.Info("Repository", repo.String(), "was kept private")
	} else if visibilityErr := uc.publish(repo); visibilityErr != nil {
		log.Error("Failed to update repository visibility:", visibilityErr.Error())
	} else {
		visibility = visibilityPublic
		log.Info("Model uploaded and made public at", repo.String())
	}

	if err = collectBuildInfo(uc.buildConfiguration, repo.String(), files); err != nil {
		return err
	}

	uc.summary = &Summary{
		RepoId:     repo.String(),
		Namespace:  repo.Namespace,
		Name:       repo.Name,
		ModelDir:   uc.modelDir,
		Epoch:      uc.epoch,
		CommitUrl:  commitUrl,
		Visibility: visibility,
		Files:      files,
	}
	return printSummary(uc.summary, uc.format)
}

func (uc *UploadCommand) upload(repo RepoId) (string, error) {
	log.Info("Uploading", uc.modelDir, "to", repo.String())
	commitUrl, err := uc.modelStore.UploadModel(uc.modelDir, repo.String())
	if err != nil {
		return "", &UploadError{ModelDir: uc.modelDir, RepoId: repo.String(), Err: err}
	}
	return commitUrl, nil
}

// publish is the only step whose failure doesn't abort the run.
func (uc *UploadCommand) publish(repo RepoId) *VisibilityError {
	if err := uc.visibilityUpdater.UpdateRepoVisibility(repo.String(), false); err != nil {
		return &VisibilityError{RepoId: repo.String(), Private: false, Err: err}
	}
	return nil
}

func checkCheckpointArgs(modelDir, epoch, format string) error {
	if modelDir == "" {
		return &ConfigError{Field: modelDirFlagName, Value: modelDir, Reason: "a checkpoint directory is required"}
	}
	if !commonutils.IsFlagNonNegativeNumber(epoch) {
		return &ConfigError{Field: epochFlagName, Value: epoch, Reason: "epoch must be a non-negative integer"}
	}
	return checkFormat(format)
}
