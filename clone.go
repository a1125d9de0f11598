package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	"github.com/bloggermandolin/catalog/models"
)

func makeCloneCMD() cli.Command {
	cloneCMD := cli.Command{
		Name:   "clone",
		Usage:  "Clones a catalog entity with its owned children",
		Action: cloneEntity,
	}
	configureClone(&cloneCMD)
	return cloneCMD
}

func configureClone(c *cli.Command) {
	c.Flags = append(c.Flags,
		cli.StringFlag{
			Name:  "entity",
			Usage: "entity kind (work, music, video, streaming, creator)",
		},
		cli.Int64Flag{
			Name:  "id",
			Usage: "entity id to clone",
		},
	)
	c.Flags = cs.RegisterPGFlags(c.Flags)
}

func cloneEntity(c *cli.Context) error {
	kind := c.String("entity")
	id := c.Int64("id")
	if kind == "" || id == 0 {
		return errors.New("both --entity and --id are required")
	}

	// Setting DB
	pg := cs.NewPG(c)
	defer pg.Close()
	db := pg.Get()
	if db == nil {
		return errors.New("db is nil")
	}

	newID, err := models.Clone(context.Background(), db, models.EntityKind(kind), id)
	if err != nil {
		return err
	}
	fmt.Printf("%v %d cloned to %d\n", kind, id, newID)
	return nil
}
