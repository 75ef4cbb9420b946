package monitor

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/robotalks/ledfield/pkg/env"
)

// Config defines the monitor settings not owned by the serial port.
type Config struct {
	GapThreshold time.Duration
	GapsOnly     bool

	// MQTTBrokerURL enables publishing events when set.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// ID names this monitor in published topics.
	ID string
}

var defaultConfig = Config{
	GapThreshold: DefaultGapThreshold,
}

func init() {
	if val := os.Getenv("LEDFIELD_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.GapThreshold, "gap", defaultConfig.GapThreshold, "Report the delta when bytes are further apart than this.")
	flag.BoolVar(&defaultConfig.GapsOnly, "gaps-only", defaultConfig.GapsOnly, "Only print the first byte and bytes following a gap.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL to publish events to.")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Monitor ID in published topics, defaults to the machine ID.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// MonitorID returns ID, or the machine ID if unset.
func (c *Config) MonitorID() string {
	if c.ID != "" {
		return c.ID
	}
	return env.MachineID()
}

// NewMonitor creates a Monitor reading src, printing to out and, if
// pub is not nil, publishing every event.
func (c *Config) NewMonitor(src io.Reader, timeout time.Duration, out io.Writer, pub Publisher) *Monitor {
	var reporter Reporter = NewTextReporter(out, c.GapsOnly)
	if pub != nil {
		reporter = MultiReporter{reporter, NewPublishReporter(pub, c.MonitorID())}
	}
	m := New(src, reporter)
	m.GapThreshold = c.GapThreshold
	m.Timeout = timeout
	return m
}
