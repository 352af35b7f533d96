package cli

import (
	pluginsCommon "github.com/jfrog/jfrog-cli-core/v2/plugins/common"
	"github.com/jfrog/jfrog-cli-core/v2/plugins/components"
)

const (
	// Uploader commands keys
	Upload   = "upload"
	Validate = "validate"
	WhoAmI   = "whoami"
)

const (
	// Checkpoint flags keys
	repoId   = "hf_repo_id"
	modelDir = "model_dir"
	epoch    = "epoch"

	// Hub flags keys
	revision      = "revision"
	repoType      = "repo-type"
	commitMessage = "commit-message"
	keepPrivate   = "keep-private"

	// Build info flags keys
	buildName   = "build-name"
	buildNumber = "build-number"
	project     = "project"

	format = "format"
)

// Flag keys mapped to their corresponding components.Flag definition.
var flagsMap = map[string]components.Flag{
	repoId:   components.NewStringFlag(repoId, "Destination repository on the Hugging Face Hub, in the form <namespace>/<name>.", func(f *components.StringFlag) { f.Mandatory = false }),
	modelDir: components.NewStringFlag(modelDir, "Local checkpoint directory to upload.", func(f *components.StringFlag) { f.Mandatory = false }),
	epoch:    components.NewStringFlag(epoch, "Training epoch of the checkpoint. Selects the required files, for example meta_model_<epoch>.pt.", func(f *components.StringFlag) { f.Mandatory = false }),

	revision:      components.NewStringFlag(revision, "Branch the upload commit is pushed to. Defaults to the repository's main branch.", func(f *components.StringFlag) { f.Mandatory = false }),
	repoType:      components.NewStringFlag(repoType, "Repository type: 'model', 'dataset' or 'space'. Default: 'model'.", func(f *components.StringFlag) { f.Mandatory = false }),
	commitMessage: components.NewStringFlag(commitMessage, "Message of the upload commit.", func(f *components.StringFlag) { f.Mandatory = false }),
	keepPrivate:   components.NewBoolFlag(keepPrivate, "Leave the repository private after the upload instead of making it public.", components.WithBoolDefaultValueFalse()),

	buildName:   components.NewStringFlag(buildName, "Build name. Records the uploaded checkpoint files in the build info.", func(f *components.StringFlag) { f.Mandatory = false }),
	buildNumber: components.NewStringFlag(buildNumber, "Build number.", func(f *components.StringFlag) { f.Mandatory = false }),
	project:     components.NewStringFlag(project, "JFrog project key of the build.", func(f *components.StringFlag) { f.Mandatory = false }),

	format: components.NewStringFlag(format, "Summary output format. Supported formats: 'table' and 'json'. Default: 'table'.", func(f *components.StringFlag) { f.Mandatory = false }),
}

var commandFlags = map[string][]string{
	Upload: {
		repoId,
		modelDir,
		epoch,
		revision,
		repoType,
		commitMessage,
		keepPrivate,
		buildName,
		buildNumber,
		project,
		format,
	},
	Validate: {
		modelDir,
		epoch,
		format,
	},
	WhoAmI: {},
}

func GetCommandFlags(cmdKey string) []components.Flag {
	return pluginsCommon.GetCommandFlags(cmdKey, commandFlags, flagsMap)
}
