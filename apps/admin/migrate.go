package main

import (
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/storage/database"
)

var migrateFunc = database.RunMigrations // mockable

func (cli *commandLine) migrate(args []string) error {
	return migrateFunc(cli.db, args[0], args[1:]...)
}
