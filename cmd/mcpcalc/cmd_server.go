package mcpcalc

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/mcpcalc/internal/mcpcalc"
	"github.com/sjzar/mcpcalc/internal/mcpcalc/conf"
)

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringVarP(&serverAddr, "addr", "a", conf.DefaultHTTPAddr, "server address")
	serverCmd.Flags().DurationVar(&serverPingInterval, "ping-interval", 30*time.Second, "SSE keepalive interval")
	serverCmd.Flags().IntVar(&serverQueueSize, "queue-size", 1024, "dispatch queue capacity")
}

var (
	serverAddr         string
	serverPingInterval time.Duration
	serverQueueSize    int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start MCP server",
	Run: func(cmd *cobra.Command, args []string) {
		// Flags beat config file and env, but only when actually set.
		cmdConf := map[string]any{}
		if cmd.Flags().Changed("addr") {
			cmdConf["http_addr"] = serverAddr
		}
		if cmd.Flags().Changed("ping-interval") {
			cmdConf["ping_interval"] = serverPingInterval
		}
		if cmd.Flags().Changed("queue-size") {
			cmdConf["queue_size"] = serverQueueSize
		}

		m := mcpcalc.New()
		if err := m.RunServer("", cmdConf); err != nil {
			log.Err(err).Msg("failed to start server")
		}
	},
}
