package conf

import (
	"time"
)

const (
	DefaultHTTPAddr = "127.0.0.1:5140"
)

type ServerConfig struct {
	HTTPAddr     string        `mapstructure:"http_addr" json:"http_addr"`
	PingInterval time.Duration `mapstructure:"ping_interval" json:"ping_interval"`
	QueueSize    int           `mapstructure:"queue_size" json:"queue_size"`
	Debug        bool          `mapstructure:"debug" json:"debug"`
}

var ServerDefaults = map[string]any{
	"http_addr":     DefaultHTTPAddr,
	"ping_interval": "30s",
	"queue_size":    1024,
	"debug":         false,
}

func (c *ServerConfig) GetHTTPAddr() string {
	if c.HTTPAddr == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
	return c.HTTPAddr
}

func (c *ServerConfig) GetPingInterval() time.Duration {
	return c.PingInterval
}

func (c *ServerConfig) GetQueueSize() int {
	return c.QueueSize
}

func (c *ServerConfig) GetDebug() bool {
	return c.Debug
}
