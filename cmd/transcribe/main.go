package main

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/creek/pkg/config"
	"github.com/xaionaro-go/creek/pkg/formatter"
	"github.com/xaionaro-go/creek/pkg/transcriber"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "path to the YAML/JSON config file (defaults are used if empty)")
	speaker := pflag.String("speaker", "", "speaker to put into the document metadata")
	title := pflag.String("title", "", "sermon title to put into the document metadata")
	pflag.Parse()

	if pflag.NArg() != 1 {
		panic("expected exactly one positional argument: path to the WAV recording")
	}
	filePath := pflag.Arg(0)

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
	assertNoError(cfg.EnsureDirectories())

	text, err := transcriber.NewPlaceholder().Transcribe(ctx, filePath)
	assertNoError(err)
	fmt.Println(text)

	metadata := map[string]any{}
	if *speaker != "" {
		metadata["speaker"] = *speaker
	}
	if *title != "" {
		metadata["title"] = *title
	}
	files, err := formatter.New(cfg).Format(ctx, text, metadata)
	assertNoError(err)
	for formatType, path := range files {
		fmt.Printf("%s: %s\n", formatType, path)
	}
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
