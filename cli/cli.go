package cli

import (
	"github.com/jfrog/jfrog-cli-core/v2/plugins/components"
	uploaderCLI "github.com/miner-utils/hf-uploader/uploader/cli"
)

const (
	appName        = "hf-uploader"
	appDescription = "Upload trained model checkpoints to the Hugging Face Hub."
)

var Version = "1.0.0"

func GetHfUploaderApp() components.App {
	return components.CreateApp(appName, Version, appDescription, uploaderCLI.GetCommands())
}
