package upload

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

var Usage = []string{"upload --hf_repo_id=<namespace/name> --model_dir=<path> --epoch=<epoch> [command options]"}

func GetDescription() string {
	return "Validate a model checkpoint directory, upload it to the Hugging Face Hub and make the repository public."
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
