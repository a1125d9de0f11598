package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	wc "github.com/bloggermandolin/catalog/handlers/catalog"
	wcl "github.com/bloggermandolin/catalog/handlers/clone"
	wi "github.com/bloggermandolin/catalog/handlers/index"
	wsy "github.com/bloggermandolin/catalog/handlers/sync"
	ss "github.com/bloggermandolin/catalog/services/sync"
	"github.com/bloggermandolin/catalog/services/subtitles"
	w "github.com/bloggermandolin/catalog/services/web"
	"github.com/bloggermandolin/catalog/services/youtube"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterPGFlags(c.Flags)
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = youtube.RegisterFlags(c.Flags)
	c.Flags = subtitles.RegisterFlags(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting DB
	pg := cs.NewPG(c)
	defer pg.Close()

	// Setting Migrations
	err := pgMigrate(c, "up")
	if err != nil {
		return err
	}

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.Use(cors.Default())

	// Setting Web
	web := w.New(c, r)
	servers = append(servers, web)
	defer web.Close()

	// Setting Index
	wi.RegisterHandler(r, pg)

	// Setting Catalog
	wc.RegisterHandler(r, pg)

	// Setting Clone
	wcl.RegisterHandler(r, pg)

	// Setting YouTube Api
	yt := youtube.New(c, cl)

	// Setting Sync
	if yt != nil {
		subs := subtitles.New(c)
		syncer := ss.New(ss.NewPGStore(pg), yt, subs)
		wsy.RegisterHandler(r, syncer)
	} else {
		log.Warn("YouTube API not configured, sync endpoints disabled")
	}

	// Run
	return cs.NewServe(servers...).Serve()
}
