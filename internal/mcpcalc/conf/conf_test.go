package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadServiceConfigDefaults(t *testing.T) {
	sc, scm, err := LoadServiceConfig(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadServiceConfig() err = %v", err)
	}
	if scm == nil {
		t.Fatal("LoadServiceConfig() scm = nil")
	}

	// 无配置文件时全部取默认值
	if got := sc.GetHTTPAddr(); got != DefaultHTTPAddr {
		t.Errorf("GetHTTPAddr() = %s, want %s", got, DefaultHTTPAddr)
	}
	if got := sc.GetPingInterval(); got != 30*time.Second {
		t.Errorf("GetPingInterval() = %v, want 30s", got)
	}
	if got := sc.GetQueueSize(); got != 1024 {
		t.Errorf("GetQueueSize() = %d, want 1024", got)
	}
	if sc.GetDebug() {
		t.Error("GetDebug() = true, want false")
	}
}

func TestLoadServiceConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mcpcalc.json")
	if err := os.WriteFile(file, []byte(`{"http_addr":"127.0.0.1:8888","debug":true}`), 0644); err != nil {
		t.Fatal(err)
	}

	sc, _, err := LoadServiceConfig(dir, nil)
	if err != nil {
		t.Fatalf("LoadServiceConfig() err = %v", err)
	}

	if sc.HTTPAddr != "127.0.0.1:8888" {
		t.Errorf("HTTPAddr = %s, want 127.0.0.1:8888", sc.HTTPAddr)
	}
	if !sc.Debug {
		t.Error("Debug = false, want true")
	}
	// 未出现在文件里的键仍取默认值
	if sc.PingInterval != 30*time.Second {
		t.Errorf("PingInterval = %v, want 30s", sc.PingInterval)
	}
}

func TestLoadServiceConfigEnv(t *testing.T) {
	t.Setenv("MCPCALC_HTTP_ADDR", "127.0.0.1:9999")
	t.Setenv("MCPCALC_PING_INTERVAL", "5s")

	sc, _, err := LoadServiceConfig(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadServiceConfig() err = %v", err)
	}

	if sc.HTTPAddr != "127.0.0.1:9999" {
		t.Errorf("HTTPAddr = %s, want 127.0.0.1:9999", sc.HTTPAddr)
	}
	if sc.PingInterval != 5*time.Second {
		t.Errorf("PingInterval = %v, want 5s", sc.PingInterval)
	}
}

func TestLoadServiceConfigCmdOverride(t *testing.T) {
	t.Setenv("MCPCALC_HTTP_ADDR", "127.0.0.1:9999")

	sc, _, err := LoadServiceConfig(t.TempDir(), map[string]any{"http_addr": "127.0.0.1:7777", "queue_size": 16})
	if err != nil {
		t.Fatalf("LoadServiceConfig() err = %v", err)
	}

	// 命令行覆盖优先于环境变量
	if sc.HTTPAddr != "127.0.0.1:7777" {
		t.Errorf("HTTPAddr = %s, want 127.0.0.1:7777", sc.HTTPAddr)
	}
	if sc.QueueSize != 16 {
		t.Errorf("QueueSize = %d, want 16", sc.QueueSize)
	}
}

func TestServerConfigGetters(t *testing.T) {
	sc := &ServerConfig{}

	// 零值配置的地址回退到默认值
	if got := sc.GetHTTPAddr(); got != DefaultHTTPAddr {
		t.Errorf("GetHTTPAddr() = %s, want %s", got, DefaultHTTPAddr)
	}
	if got := sc.GetPingInterval(); got != 0 {
		t.Errorf("GetPingInterval() = %v, want 0", got)
	}
	if got := sc.GetQueueSize(); got != 0 {
		t.Errorf("GetQueueSize() = %d, want 0", got)
	}
}
