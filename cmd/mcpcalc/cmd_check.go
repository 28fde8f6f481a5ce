package mcpcalc

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/mcpcalc/internal/mcpcalc/conf"
	"github.com/sjzar/mcpcalc/pkg/version"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkAddr, "addr", "a", conf.DefaultHTTPAddr, "server address")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 30*time.Second, "check timeout")
}

var (
	checkAddr    string
	checkTimeout time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a running server over SSE",
	Long:  `check connects to a running mcpcalc server as a real MCP client and exercises the SSE handshake, initialize, ping, tools/list and tools/call.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(checkAddr, checkTimeout); err != nil {
			log.Fatal().Err(err).Msg("check failed")
		}
		fmt.Println("check passed")
	},
}

func runCheck(addr string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := client.NewSSEMCPClient("http://" + addr + "/sse")
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer c.Close()

	if err := c.Start(ctx); err != nil {
		return fmt.Errorf("connect %s: %w", addr, err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "mcpcalc-check", Version: version.Version}
	initResult, err := c.Initialize(ctx, initReq)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	fmt.Printf("server: %s %s (protocol %s)\n", initResult.ServerInfo.Name, initResult.ServerInfo.Version, initResult.ProtocolVersion)

	if err := c.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}
	fmt.Printf("tools: %d\n", len(tools.Tools))

	text, err := callTool(ctx, c, "calculate", map[string]any{"operation": "multiply", "a": 4, "b": 7})
	if err != nil {
		return err
	}
	if text != "28" {
		return fmt.Errorf("calculate multiply 4x7: got %q, want %q", text, "28")
	}

	text, err = callTool(ctx, c, "divide", map[string]any{"a": 1, "b": 0})
	if err != nil {
		return err
	}
	if text != "Error: cannot divide by zero" {
		return fmt.Errorf("divide by zero: got %q", text)
	}

	return nil
}

func callTool(ctx context.Context, c *client.Client, name string, args map[string]any) (string, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := c.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", name, err)
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("call %s: empty result", name)
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "", fmt.Errorf("call %s: unexpected content type", name)
	}
	return tc.Text, nil
}
