package mcp

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/mcpcalc/internal/calculator"
	"github.com/sjzar/mcpcalc/internal/mcp"
	"github.com/sjzar/mcpcalc/internal/mcpcalc/conf"
	"github.com/sjzar/mcpcalc/pkg/version"
)

type Service struct {
	conf *conf.ServerConfig

	mcp *mcp.MCP
}

func NewService(conf *conf.ServerConfig) *Service {
	return &Service{
		conf: conf,
	}
}

// GetMCP 获取底层MCP实例
func (s *Service) GetMCP() *mcp.MCP {
	return s.mcp
}

// Start 启动MCP服务
func (s *Service) Start() error {
	dispatcher := mcp.NewDispatcher(calculator.New(), mcp.ServerInfo{
		Name:    conf.AppName,
		Version: version.Version,
	})
	s.mcp = mcp.NewMCP(dispatcher, s.conf.GetPingInterval(), s.conf.GetQueueSize())
	go s.worker()
	return nil
}

// Stop 停止MCP服务
func (s *Service) Stop() error {
	if s.mcp != nil {
		s.mcp.Close()
	}
	return nil
}

// worker 处理MCP请求
func (s *Service) worker() {
	for p := range s.mcp.ProcessChan {
		resp := s.mcp.Dispatcher.Dispatch(p.Request)
		if err := s.mcp.Registry.Send(p.ConnID, resp); err != nil {
			// Connection died after the request was queued. Nothing to
			// deliver the response to, drop it.
			log.Debug().Err(err).Str("connection_id", p.ConnID).Str("method", p.Request.Method).Msg("drop response")
		}
	}
}

func (s *Service) HandleSSE(c *gin.Context) {
	s.mcp.HandleSSE(c)
}

func (s *Service) HandleMessages(c *gin.Context) {
	s.mcp.HandleMessages(c)
}

func (s *Service) HandleRPC(c *gin.Context) {
	s.mcp.HandleRPC(c)
}
