package whoami

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

var Usage = []string{"whoami"}

func GetDescription() string {
	return "Print the Hugging Face account the configured token belongs to."
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
