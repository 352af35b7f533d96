package commands

import (
	"fmt"

	"github.com/jfrog/jfrog-cli-core/v2/utils/config"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

const WhoAmICommandName = "hf-whoami"

type AccountResolver interface {
	WhoAmI() (string, error)
	Endpoint() string
}

// WhoAmICommand prints the Hub account the resolved token belongs to.
type WhoAmICommand struct {
	resolver AccountResolver
	account  string
}

func NewWhoAmICommand(resolver AccountResolver) *WhoAmICommand {
	return &WhoAmICommand{resolver: resolver}
}

func (wc *WhoAmICommand) CommandName() string {
	return WhoAmICommandName
}

func (wc *WhoAmICommand) ServerDetails() (*config.ServerDetails, error) {
	return nil, nil
}

func (wc *WhoAmICommand) Account() string {
	return wc.account
}

func (wc *WhoAmICommand) Run() error {
	account, err := wc.resolver.WhoAmI()
	if err != nil {
		return err
	}
	wc.account = account
	log.Output(fmt.Sprintf("%s (%s)", account, wc.resolver.Endpoint()))
	return nil
}
