package validate

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

var Usage = []string{"validate --model_dir=<path> --epoch=<epoch> [command options]"}

func GetDescription() string {
	return "Check that a model checkpoint directory holds every file required for an epoch, and that its config passes the structural check."
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
