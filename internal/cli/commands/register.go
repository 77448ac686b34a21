package commands

import (
	"context"
	"fmt"

	"CheckNotes/internal/cli/bootstrap"
	"CheckNotes/internal/cli/service"
	"CheckNotes/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account on the sync server" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	svc := service.NewAuthHTTP(cfg.ServerURL, bootstrap.AuthStore(cfg))
	if err := svc.Register(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Registered and logged in")
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
