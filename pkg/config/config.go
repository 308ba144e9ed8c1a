// Package config loads the application configuration file.
//
// The file is parsed as YAML, so JSON configuration files are accepted as well.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/xaionaro-go/creek/pkg/audio/types"
	"github.com/xaionaro-go/creek/pkg/recorder"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Recording      RecordingConfig      `yaml:"recording"`
	Output         OutputConfig         `yaml:"output"`
	PostProcessing PostProcessingConfig `yaml:"post_processing"`
	Metadata       map[string]any       `yaml:"metadata"`
}

type RecordingConfig struct {
	SampleRate         int     `yaml:"sample_rate"`
	Channels           int     `yaml:"channels"`
	ChunkSize          int     `yaml:"chunk_size"`
	MaxDurationMinutes float64 `yaml:"max_duration_minutes"`
	SaveDirectory      string  `yaml:"save_directory"`
	QueueHighWaterMark int     `yaml:"queue_high_water_mark"`
}

type OutputConfig struct {
	Formats          []OutputFormat `yaml:"formats"`
	NamingConvention string         `yaml:"naming_convention"`
}

type OutputFormatType string

const (
	OutputFormatTypeTXT  = OutputFormatType("txt")
	OutputFormatTypeDOCX = OutputFormatType("docx")
)

type OutputFormat struct {
	Type          OutputFormatType `yaml:"type"`
	SaveDirectory string           `yaml:"save_directory"`
	Template      Template         `yaml:"template"`
}

type Template struct {
	FontName string  `yaml:"font_name"`
	FontSize float64 `yaml:"font_size"`
}

type PostProcessingConfig struct {
	TextCleanup TextCleanupConfig `yaml:"text_cleanup"`
}

type TextCleanupConfig struct {
	CapitalizeSentences bool `yaml:"capitalize_sentences"`
	FixPunctuation      bool `yaml:"fix_punctuation"`
}

const (
	DefaultNamingConvention = "%Y%m%d_%H%M%S_sermon"
	DefaultFontName         = "Times New Roman"
	DefaultFontSize         = 12
)

func Default() *Config {
	return &Config{
		Recording: RecordingConfig{
			SampleRate:         int(recorder.DefaultSampleRate),
			Channels:           int(recorder.DefaultChannels),
			ChunkSize:          recorder.DefaultBlockSize,
			MaxDurationMinutes: recorder.DefaultMaxDuration.Minutes(),
			SaveDirectory:      recorder.DefaultOutputDir,
			QueueHighWaterMark: recorder.DefaultHighWaterMark,
		},
		Output: OutputConfig{
			Formats: []OutputFormat{
				{Type: OutputFormatTypeTXT, SaveDirectory: "output/txt"},
				{Type: OutputFormatTypeDOCX, SaveDirectory: "output/docx"},
			},
			NamingConvention: DefaultNamingConvention,
		},
		PostProcessing: PostProcessingConfig{
			TextCleanup: TextCleanupConfig{
				CapitalizeSentences: true,
				FixPunctuation:      true,
			},
		},
		Metadata: map[string]any{},
	}
}

// Load reads the file and fills the absent values with the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file '%s': %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to load config file '%s': %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	// the default formats would be merged with the configured ones otherwise
	cfg.Output.Formats = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse: %w", err)
	}
	if cfg.Output.Formats == nil {
		cfg.Output.Formats = Default().Output.Formats
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Output.NamingConvention == "" {
		cfg.Output.NamingConvention = DefaultNamingConvention
	}
	for idx := range cfg.Output.Formats {
		tpl := &cfg.Output.Formats[idx].Template
		if tpl.FontName == "" {
			tpl.FontName = DefaultFontName
		}
		if tpl.FontSize == 0 {
			tpl.FontSize = DefaultFontSize
		}
	}
	if cfg.Metadata == nil {
		cfg.Metadata = map[string]any{}
	}
}

func (cfg *Config) Validate() error {
	if err := cfg.Recording.Validate(); err != nil {
		return fmt.Errorf("recording: %w", err)
	}
	if err := cfg.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func (cfg RecordingConfig) Validate() error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", cfg.SampleRate)
	}
	if cfg.Channels <= 0 {
		return fmt.Errorf("channels must be positive, got %d", cfg.Channels)
	}
	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", cfg.ChunkSize)
	}
	if cfg.MaxDurationMinutes <= 0 {
		return fmt.Errorf("max_duration_minutes must be positive, got %v", cfg.MaxDurationMinutes)
	}
	if cfg.SaveDirectory == "" {
		return fmt.Errorf("save_directory is not set")
	}
	if cfg.QueueHighWaterMark < 0 {
		return fmt.Errorf("queue_high_water_mark must not be negative, got %d", cfg.QueueHighWaterMark)
	}
	return nil
}

func (cfg OutputConfig) Validate() error {
	for idx, format := range cfg.Formats {
		switch format.Type {
		case OutputFormatTypeTXT, OutputFormatTypeDOCX:
		default:
			return fmt.Errorf("formats[%d]: unsupported format '%s'", idx, format.Type)
		}
		if format.SaveDirectory == "" {
			return fmt.Errorf("formats[%d]: save_directory is not set", idx)
		}
	}
	return nil
}

// RecorderConfig converts the recording section into the recorder configuration.
func (cfg RecordingConfig) RecorderConfig() recorder.Config {
	result := recorder.DefaultConfig()
	result.SampleRate = types.SampleRate(cfg.SampleRate)
	result.Channels = types.Channel(cfg.Channels)
	result.BlockSize = cfg.ChunkSize
	result.MaxDuration = time.Duration(cfg.MaxDurationMinutes * float64(time.Minute))
	result.OutputDirectory = cfg.SaveDirectory
	result.HighWaterMark = cfg.QueueHighWaterMark
	return result
}

// EnsureDirectories creates the recordings directory and the directories of
// all the output formats.
func (cfg *Config) EnsureDirectories() error {
	dirs := []string{cfg.Recording.SaveDirectory}
	for _, format := range cfg.Output.Formats {
		dirs = append(dirs, format.SaveDirectory)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory '%s': %w", dir, err)
		}
	}
	return nil
}
