package mcpcalc

import (
	"context"
	"errors"
	nethttp "net/http"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/sjzar/mcpcalc/internal/mcpcalc/conf"
	"github.com/sjzar/mcpcalc/internal/mcpcalc/http"
	"github.com/sjzar/mcpcalc/internal/mcpcalc/mcp"
	"github.com/sjzar/mcpcalc/pkg/config"
)

// Manager 管理计算器服务
type Manager struct {
	sc  *conf.ServerConfig
	scm *config.Manager

	// Services
	mcp  *mcp.Service
	http *http.Service
}

func New() *Manager {
	return &Manager{}
}

// RunServer 启动HTTP服务，阻塞至退出信号
func (m *Manager) RunServer(configPath string, cmdConf map[string]any) error {

	var err error
	m.sc, m.scm, err = conf.LoadServiceConfig(configPath, cmdConf)
	if err != nil {
		return err
	}

	if m.sc.GetDebug() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	m.watchConfig()

	m.mcp = mcp.NewService(m.sc)
	m.http = http.NewService(m.sc, m.mcp)

	// 按依赖顺序启动服务
	if err := m.mcp.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := m.http.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		return m.stopService()
	})

	return g.Wait()
}

// watchConfig 监听配置文件变更，运行时切换 debug 日志
func (m *Manager) watchConfig() {
	m.scm.Watch(func(e fsnotify.Event) {
		sc := &conf.ServerConfig{}
		if err := m.scm.Load(sc); err != nil {
			log.Err(err).Msg("reload config failed")
			return
		}
		if sc.Debug == m.sc.Debug {
			return
		}
		m.sc.Debug = sc.Debug
		if sc.Debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		log.Info().Bool("debug", sc.Debug).Msg("debug logging switched")
	})
}

func (m *Manager) stopService() error {
	// 按依赖的反序停止服务
	var errs []error

	if err := m.http.Stop(); err != nil {
		errs = append(errs, err)
	}

	if err := m.mcp.Stop(); err != nil {
		errs = append(errs, err)
	}

	// 如果有错误，返回第一个错误
	if len(errs) > 0 {
		return errs[0]
	}

	return nil
}
