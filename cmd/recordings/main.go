package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/creek/pkg/config"
	"github.com/xaionaro-go/creek/pkg/recorder"
)

func main() {
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "path to the YAML/JSON config file (defaults are used if empty)")
	saveDirectory := pflag.String("save-directory", "", "overrides recording.save_directory")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		assertNoError(err)
	}
	dir := cfg.Recording.SaveDirectory
	if *saveDirectory != "" {
		dir = *saveDirectory
	}

	recordings, err := recorder.ListRecordings(dir)
	assertNoError(err)
	logger.Debugf(ctx, "found %d recordings in '%s'", len(recordings), dir)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tSIZE\tMODIFIED\n")
	for _, rec := range recordings {
		fmt.Fprintf(w, "%s\t%d\t%s\n", rec.Name, rec.Size, rec.ModifiedAt.Format(time.DateTime))
	}
	assertNoError(w.Flush())
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
