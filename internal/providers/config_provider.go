package providers

import (
	"agentcrm/internal/structures"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultSnapshotPath = "data/agent-crm.json"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setConfigDefaults(v)

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	_ = v.BindEnv("persistence.filePath", "AGENT_CRM_DB_PATH")
	_ = v.BindEnv("webServer.port", "PORT")
	_ = v.BindEnv("webServer.staticDir", "AGENT_CRM_STATIC_DIR")
	_ = v.BindEnv("logger.level", "AGENT_CRM_LOG_LEVEL")
	_ = v.BindEnv("cache.enabled", "AGENT_CRM_CACHE_ENABLED")
	_ = v.BindEnv("metrics.enabled", "AGENT_CRM_METRICS_ENABLED")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	filePath, err := ResolveSnapshotPath(conf.Persistence.FilePath)
	if err != nil {
		return nil, err
	}
	conf.Persistence.FilePath = filePath

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	conf.AppName = "AgentCRM"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.Reset = flags.Reset

	return &conf, nil
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 3000)
	v.SetDefault("webServer.staticDir", "")
	v.SetDefault("persistence.filePath", DefaultSnapshotPath)
	v.SetDefault("persistence.compress", false)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", "")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 8)
	v.SetDefault("cache.ttl", 5*time.Second)
	v.SetDefault("metrics.enabled", false)
}

// ResolveSnapshotPath returns path verbatim when absolute and relative to the
// working directory otherwise. A blank path falls back to the default.
func ResolveSnapshotPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultSnapshotPath
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve snapshot path: %w", err)
	}
	return filepath.Join(wd, path), nil
}
