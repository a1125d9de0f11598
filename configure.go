package main

import (
	"github.com/urfave/cli"
)

func configure(app *cli.App) {
	serveCMD := makeServeCMD()
	migrationCMD := makePGMigrationCMD()
	syncCMD := makeSyncCMD()
	cloneCMD := makeCloneCMD()
	tagsCMD := makeTagsCMD()
	authCMD := makeAuthCMD()
	app.Commands = []cli.Command{serveCMD, migrationCMD, syncCMD, cloneCMD, tagsCMD, authCMD}
}
