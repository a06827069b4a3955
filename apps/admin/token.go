package main

import (
	"fmt"

	echoapi "github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/apps/api/echo"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/user"
)

// token prints a signed API token for the given user.
func (cli *commandLine) token(uname, email string, roles []string) error {
	usr := user.User{Username: uname, Email: email, Roles: roles}
	usr.Clean()
	usr.ID = usr.Username
	if err := cli.validate.Struct(usr); err != nil {
		return err
	}

	token, err := echoapi.GenerateToken(cli.conf, echoapi.GetUserClaims(cli.conf, usr))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cli.out, token)
	return err
}
