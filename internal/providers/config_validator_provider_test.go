package providers

import (
	"agentcrm/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Persistence: structures.Persistence{
			FilePath: "/tmp/agent-crm.json",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyLogDirAllowed(t *testing.T) {
	c := validConfig()
	c.Logger.Dir = ""
	assert.NoError(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_PortTooLarge(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 70000
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_EmptySnapshotPath(t *testing.T) {
	c := validConfig()
	c.Persistence.FilePath = ""
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
