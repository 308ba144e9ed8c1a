package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/creek/pkg/audio"
	_ "github.com/xaionaro-go/creek/pkg/audio/backends/portaudio"
	_ "github.com/xaionaro-go/creek/pkg/audio/backends/pulseaudio"
	"github.com/xaionaro-go/creek/pkg/config"
	"github.com/xaionaro-go/creek/pkg/formatter"
	"github.com/xaionaro-go/creek/pkg/metrics"
	"github.com/xaionaro-go/creek/pkg/recorder"
	"github.com/xaionaro-go/creek/pkg/transcriber"
	"github.com/xaionaro-go/observability"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "path to the YAML/JSON config file (defaults are used if empty)")
	duration := pflag.Duration("duration", 0, "how long to record (0 means the configured max duration)")
	saveDirectory := pflag.String("save-directory", "", "overrides recording.save_directory")
	sampleRate := pflag.Int("sample-rate", 0, "overrides recording.sample_rate")
	channels := pflag.Int("channels", 0, "overrides recording.channels")
	metricsListenAddr := pflag.String("metrics-listen-addr", "", "if set, serve Prometheus metrics on this address")
	transcribe := pflag.Bool("transcribe", false, "transcribe and format the recording once it is saved")
	speaker := pflag.String("speaker", "", "speaker to put into the recording metadata")
	title := pflag.String("title", "", "title to put into the recording metadata")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	ctx, cancelFn := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancelFn()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		assertNoError(err)
	}
	if *saveDirectory != "" {
		cfg.Recording.SaveDirectory = *saveDirectory
	}
	if *sampleRate != 0 {
		cfg.Recording.SampleRate = *sampleRate
	}
	if *channels != 0 {
		cfg.Recording.Channels = *channels
	}
	assertNoError(cfg.Validate())
	assertNoError(cfg.EnsureDirectories())

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	if *metricsListenAddr != "" {
		serveMetrics(ctx, *metricsListenAddr, registry)
	}

	capturer := audio.NewCapturerAuto(ctx)
	defer capturer.Close()
	if capturer.IsDummy() {
		logger.Warnf(ctx, "no working capture backend was found")
	}

	rec, err := recorder.New(capturer, cfg.Recording.RecorderConfig(), m)
	assertNoError(err)

	var lastReported time.Duration
	onProgress := func(elapsed time.Duration, frames int) {
		if elapsed-lastReported < time.Second {
			return
		}
		lastReported = elapsed
		logger.Infof(ctx, "recorded %v (%d frames in the last chunk)", elapsed.Truncate(time.Second), frames)
	}

	metadata := map[string]any{}
	if *speaker != "" {
		metadata["speaker"] = *speaker
	}
	if *title != "" {
		metadata["title"] = *title
	}

	logger.Infof(ctx, "recording (press Ctrl+C to stop)...")
	outputPath, err := rec.RecordFor(ctx, *duration, metadata, onProgress)
	assertNoError(err)
	logger.Infof(ctx, "recording is saved to '%s'", outputPath)

	if !*transcribe {
		return
	}
	if _, err := os.Stat(outputPath); err != nil {
		logger.Warnf(ctx, "nothing to transcribe: %v", err)
		return
	}
	text, err := transcriber.NewPlaceholder().Transcribe(context.WithoutCancel(ctx), outputPath)
	assertNoError(err)
	files, err := formatter.New(cfg).Format(context.WithoutCancel(ctx), text, metadata)
	assertNoError(err)
	for formatType, path := range files {
		logger.Infof(ctx, "%s: %s", formatType, path)
	}
}

func serveMetrics(ctx context.Context, addr string, gatherer prometheus.Gatherer) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	observability.Go(ctx, func() {
		logger.Infof(ctx, "serving metrics at http://%s/metrics", addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "the metrics server failed: %v", err)
		}
	})
	observability.Go(ctx, func() {
		<-ctx.Done()
		_ = srv.Close()
	})
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
