package main

import (
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geo-calc/api"
	"github.com/a-bouts/geo-calc/units"
)

func main() {

	fs := flag.NewFlagSet("geo-calc", flag.ExitOnError)
	var (
		addr         = fs.String("addr", ":8888", "listen address")
		logLevel     = fs.String("log-level", "info", "log level")
		cpuprofile   = fs.Bool("cpuprofile", false, "profile destination requests")
		corsOrigins  = fs.String("cors-origins", "*", "comma separated allowed origins")
		defaultUnits = fs.String("default-units", "metric", "unit system for distances typed without unit (metric, us, nautical)")
		_            = fs.String("config", "", "config file")
	)
	ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	system, err := units.ParseSystem(*defaultUnits)
	if err != nil {
		log.Fatal(err)
	}

	router := api.InitServer(*cpuprofile, system)

	cors := handlers.CORS(
		handlers.AllowedOrigins(strings.Split(*corsOrigins, ",")),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	handler := handlers.RecoveryHandler()(cors(router))
	handler = handlers.CombinedLoggingHandler(log.StandardLogger().WriterLevel(log.DebugLevel), handler)

	log.Infof("Start server on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, handler))
}
