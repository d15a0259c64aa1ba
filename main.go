package main

import (
	"github.com/redexp/familymuseum-lsp/museum"
	lsp "github.com/redexp/familymuseum-lsp/providers"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	configPath  string
	metricsAddr string
	logFile     string
	verbose     int
)

func init() {
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	pflag.Int("web-socket", 0, "Start websocket server on port")
	pflag.StringVar(&configPath, "config", "", "Settings file (toml)")
	pflag.StringVar(&metricsAddr, "metrics", "", "Serve /health and /metrics on address, e.g. 127.0.0.1:9464")
	pflag.StringVar(&logFile, "log", "", "Write logs to file instead of stderr")
	pflag.CountVarP(&verbose, "verbose", "v", "Increase log verbosity")
	pflag.Parse()
}

func main() {
	var path *string

	if logFile != "" {
		path = &logFile
	}

	commonlog.Configure(verbose, path)

	settings, err := museum.LoadSettings(configPath)

	if err != nil {
		panic(err)
	}

	lsp.SetSettings(settings)

	if metricsAddr != "" {
		lsp.StartMetrics(metricsAddr)
	}

	err = lsp.StartServer()

	if err != nil {
		panic(err)
	}
}
