package opentelemetry

import "time"

const (
	ExporterOTLP   = "otlp"
	ExporterStdout = "stdout"
)

type Config struct {
	Enabled        bool              `mapstructure:"enabled" yaml:"enabled" default:"false"`
	ServiceName    string            `mapstructure:"service_name" yaml:"service_name" default:"engagement"`
	ServiceVersion string            `mapstructure:"service_version" yaml:"service_version"`
	Labels         map[string]string `mapstructure:"labels" yaml:"labels"`
	Exporter       string            `mapstructure:"exporter" yaml:"exporter" default:"stdout" validate:"omitempty,oneof=otlp stdout"`
	OTLP           struct {
		Headers  map[string]string `mapstructure:"headers" yaml:"headers"`
		Endpoint string            `mapstructure:"endpoint" yaml:"endpoint" default:"127.0.0.1:4317"`
	} `mapstructure:"otlp" yaml:"otlp"`
	// SamplingFraction is the percentage of traces kept, 0 keeps everything
	SamplingFraction int           `mapstructure:"sampling_fraction" yaml:"sampling_fraction" validate:"min=0,max=100"`
	MetricInterval   time.Duration `mapstructure:"metric_interval" yaml:"metric_interval" default:"15s"`
}
