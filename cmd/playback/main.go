package main

import (
	"bytes"
	"context"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/creek/pkg/audio"
	_ "github.com/xaionaro-go/creek/pkg/audio/backends/oto"
	_ "github.com/xaionaro-go/creek/pkg/audio/backends/portaudio"
	"github.com/xaionaro-go/creek/pkg/wav"
	"github.com/xaionaro-go/datacounter"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	pflag.Parse()

	if pflag.NArg() != 1 {
		panic("expected exactly one positional argument: path to the PCM16 WAV recording")
	}
	filePath := pflag.Arg(0)

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	recording, err := wav.ReadFile(filePath)
	assertNoError(err)
	logger.Infof(ctx, "'%s': %d Hz, %d channel(s), %d frames", filePath, recording.SampleRate, recording.Channels, recording.Frames())

	player := audio.NewPlayerAuto(ctx)
	defer player.Close()

	rc := datacounter.NewReaderCounter(bytes.NewReader(recording.PCMS16LE()))
	logger.Tracef(ctx, "player.PlayPCMS16LE")
	streamPlay, err := player.PlayPCMS16LE(
		ctx,
		audio.SampleRate(recording.SampleRate),
		audio.Channel(recording.Channels),
		rc,
	)
	logger.Tracef(ctx, "/player.PlayPCMS16LE: %v", err)
	assertNoError(err)
	logger.Infof(ctx, "playing (file -> %T)", player.PlayerPCM)
	assertNoError(streamPlay.Drain())
	logger.Infof(ctx, "played %d bytes", rc.Count())
	assertNoError(streamPlay.Close())
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
