package commands

import (
	"context"
	"fmt"

	"CheckNotes/internal/cli/bootstrap"
	"CheckNotes/internal/cli/service"
	"CheckNotes/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login to the sync server and store auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	svc := service.NewAuthHTTP(cfg.ServerURL, bootstrap.AuthStore(cfg))
	if err := svc.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
