package recorder

import (
	"fmt"
	"time"

	"github.com/xaionaro-go/creek/pkg/audio/types"
	"github.com/xaionaro-go/creek/pkg/capture"
)

const (
	DefaultSampleRate  = types.SampleRate(16000)
	DefaultChannels    = types.Channel(1)
	DefaultBlockSize   = 1024
	DefaultMaxDuration = 120 * time.Minute
	DefaultOutputDir   = "recordings"

	// DefaultHighWaterMark is about 16 seconds of audio at the default rate and block size.
	DefaultHighWaterMark = 256
)

type Config struct {
	SampleRate      types.SampleRate
	Channels        types.Channel
	BlockSize       int
	MaxDuration     time.Duration
	OutputDirectory string

	// PollInterval and HighWaterMark tune the capture pipeline,
	// see capture.Config.
	PollInterval  time.Duration
	HighWaterMark int
}

func DefaultConfig() Config {
	return Config{
		SampleRate:      DefaultSampleRate,
		Channels:        DefaultChannels,
		BlockSize:       DefaultBlockSize,
		MaxDuration:     DefaultMaxDuration,
		OutputDirectory: DefaultOutputDir,
		PollInterval:    capture.DefaultPollInterval,
		HighWaterMark:   DefaultHighWaterMark,
	}
}

func (cfg Config) captureConfig() capture.Config {
	return capture.Config{
		SampleRate:    cfg.SampleRate,
		Channels:      cfg.Channels,
		BlockSize:     cfg.BlockSize,
		PollInterval:  cfg.PollInterval,
		HighWaterMark: cfg.HighWaterMark,
	}
}

func (cfg Config) Validate() error {
	if err := cfg.captureConfig().Validate(); err != nil {
		return err
	}
	if cfg.MaxDuration <= 0 {
		return fmt.Errorf("max duration must be positive, got %v", cfg.MaxDuration)
	}
	if cfg.OutputDirectory == "" {
		return fmt.Errorf("output directory is not set")
	}
	return nil
}
