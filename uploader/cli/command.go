package cli

import (
	"github.com/jfrog/jfrog-cli-core/v2/common/build"
	"github.com/jfrog/jfrog-cli-core/v2/common/commands"
	pluginsCommon "github.com/jfrog/jfrog-cli-core/v2/plugins/common"
	"github.com/jfrog/jfrog-cli-core/v2/plugins/components"
	"github.com/miner-utils/hf-uploader/checkpoint"
	"github.com/miner-utils/hf-uploader/hub"
	hfCommands "github.com/miner-utils/hf-uploader/uploader/commands"
	"github.com/miner-utils/hf-uploader/uploader/config"
	"github.com/miner-utils/hf-uploader/uploader/docs/upload"
	"github.com/miner-utils/hf-uploader/uploader/docs/validate"
	"github.com/miner-utils/hf-uploader/uploader/docs/whoami"
)

func GetCommands() []components.Command {
	return []components.Command{
		{
			Name:        Upload,
			Aliases:     []string{"up"},
			Flags:       GetCommandFlags(Upload),
			Description: upload.GetDescription(),
			Arguments:   upload.GetArguments(),
			Action:      uploadCmd,
		},
		{
			Name:        Validate,
			Aliases:     []string{"v"},
			Flags:       GetCommandFlags(Validate),
			Description: validate.GetDescription(),
			Arguments:   validate.GetArguments(),
			Action:      validateCmd,
		},
		{
			Name:        WhoAmI,
			Flags:       GetCommandFlags(WhoAmI),
			Description: whoami.GetDescription(),
			Arguments:   whoami.GetArguments(),
			Action:      whoAmICmd,
		},
	}
}

var execFunc = commands.Exec

func uploadCmd(ctx *components.Context) error {
	if err := validateNoArguments(ctx); err != nil {
		return err
	}
	// The repo id is checked before the config, token or checkpoint files are read
	if _, err := hfCommands.ParseRepoId(ctx.GetStringFlagValue(repoId)); err != nil {
		return err
	}
	uploaderConfig, err := config.LoadUploaderConfig()
	if err != nil {
		return err
	}
	client, token, err := createHubClient(ctx, uploaderConfig)
	if err != nil {
		return err
	}
	modelStore := hub.NewPythonModelStore(client).
		SetToken(token).
		SetRevision(flagOrDefault(ctx, revision, uploaderConfig.Upload.Revision)).
		SetCommitMessage(flagOrDefault(ctx, commitMessage, uploaderConfig.Upload.CommitMessage)).
		SetInstallDependencies(uploaderConfig.Upload.InstallDependencies).
		SetHFTransfer(uploaderConfig.Upload.HFTransfer).
		SetPythonPath(uploaderConfig.Upload.PythonPath)
	buildConfiguration := new(build.BuildConfiguration).
		SetBuildName(ctx.GetStringFlagValue(buildName)).
		SetBuildNumber(ctx.GetStringFlagValue(buildNumber)).
		SetProject(ctx.GetStringFlagValue(project))

	uploadCommand := hfCommands.NewUploadCommand().
		SetRepoId(ctx.GetStringFlagValue(repoId)).
		SetModelDir(ctx.GetStringFlagValue(modelDir)).
		SetEpoch(ctx.GetStringFlagValue(epoch)).
		SetKeepPrivate(ctx.GetBoolFlagValue(keepPrivate)).
		SetFormat(flagOrDefault(ctx, format, hfCommands.FormatTable)).
		SetValidator(createValidator(uploaderConfig.Checkpoint)).
		SetModelStore(modelStore).
		SetVisibilityUpdater(client).
		SetBuildConfiguration(buildConfiguration)
	return execFunc(uploadCommand)
}

func validateCmd(ctx *components.Context) error {
	if err := validateNoArguments(ctx); err != nil {
		return err
	}
	uploaderConfig, err := config.LoadUploaderConfig()
	if err != nil {
		return err
	}
	validateCommand := hfCommands.NewValidateCommand().
		SetModelDir(ctx.GetStringFlagValue(modelDir)).
		SetEpoch(ctx.GetStringFlagValue(epoch)).
		SetFormat(flagOrDefault(ctx, format, hfCommands.FormatTable)).
		SetValidator(createValidator(uploaderConfig.Checkpoint))
	return execFunc(validateCommand)
}

func whoAmICmd(ctx *components.Context) error {
	if err := validateNoArguments(ctx); err != nil {
		return err
	}
	uploaderConfig, err := config.LoadUploaderConfig()
	if err != nil {
		return err
	}
	client, _, err := createHubClient(ctx, uploaderConfig)
	if err != nil {
		return err
	}
	return execFunc(hfCommands.NewWhoAmICommand(client))
}

func validateNoArguments(ctx *components.Context) error {
	if show, err := pluginsCommon.ShowCmdHelpIfNeeded(ctx, ctx.Arguments); show || err != nil {
		return err
	}
	if len(ctx.Arguments) > 0 {
		return pluginsCommon.WrongNumberOfArgumentsHandler(ctx)
	}
	return nil
}

func createHubClient(ctx *components.Context, uploaderConfig *config.UploaderConfig) (*hub.Client, string, error) {
	hubRepoType := flagOrDefault(ctx, repoType, uploaderConfig.Hub.RepoType)
	if err := hub.ValidateRepoType(hubRepoType); err != nil {
		return nil, "", err
	}
	token, err := hub.ResolveToken(uploaderConfig.Hub.Token, uploaderConfig.Hub.TokenName)
	if err != nil {
		return nil, "", err
	}
	client, err := hub.NewClient(uploaderConfig.Hub.Endpoint, token)
	if err != nil {
		return nil, "", err
	}
	return client.SetRepoType(hubRepoType), token, nil
}

func createValidator(checkpointConfig config.CheckpointConfig) *checkpoint.Validator {
	checker := checkpoint.NewJSONConfigChecker().
		SetFileName(checkpointConfig.ConfigFile).
		SetRequiredKeys(checkpointConfig.RequiredConfigKeys)
	manifest := checkpoint.NewConfigManifest(checkpointConfig.ConfigFile, checkpointConfig.ExtraRequiredFiles...)
	return checkpoint.NewValidator(manifest, checker)
}

func flagOrDefault(ctx *components.Context, flagName, defaultValue string) string {
	if value := ctx.GetStringFlagValue(flagName); value != "" {
		return value
	}
	return defaultValue
}
