package main

import (
	"github.com/jfrog/jfrog-cli-core/v2/plugins"
	"github.com/miner-utils/hf-uploader/cli"
)

func main() {
	plugins.PluginMain(cli.GetHfUploaderApp())
}
