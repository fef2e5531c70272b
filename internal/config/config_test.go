package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"makeabet/internal/deploy"
)

type envTestConfig struct {
	Port int `env:"MAKEABET_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MAKEABET_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadAPI_Defaults(t *testing.T) {
	cfg, err := LoadAPI()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "evm", cfg.ChainType)
	assert.Equal(t, "sepolia", cfg.TargetChain)
	assert.Equal(t, 300, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.Local.Enabled)
	assert.Equal(t, int64(31337), cfg.Local.ChainID)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Local.RPCURL)
	assert.Equal(t, "1", cfg.Local.FaucetETH)
	assert.Equal(t, "100", cfg.Local.FaucetPYUSD)
	assert.Empty(t, cfg.Local.FaucetKey)
	assert.Equal(t, "0.0.0.0:4000", cfg.Addr())
}

func TestLoadAPI_RejectsUnknownChainType(t *testing.T) {
	t.Setenv("CHAIN_TYPE", "cosmos")
	_, err := LoadAPI()
	assert.ErrorContains(t, err, "CHAIN_TYPE")
}

func TestLoadAPI_FillsLocalAddressesFromDeployment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, deploy.Save(path, deploy.Artifact{
		PYUSD:  "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Market: "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		Faucet: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
	}))
	t.Setenv("LOCAL_CHAIN_ENABLED", "true")
	t.Setenv("LOCAL_DEPLOYMENT_PATH", path)
	t.Setenv("LOCAL_MARKET_ADDRESS", "0x1111111111111111111111111111111111111111")

	cfg, err := LoadAPI()
	require.NoError(t, err)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Local.PYUSDAddress)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", cfg.Local.MarketAddress, "env wins over artifact")
	assert.Equal(t, deploy.HardhatFaucetKey, cfg.Local.FaucetKey)
}

func TestLoadAPI_MissingDeploymentIsFine(t *testing.T) {
	t.Setenv("LOCAL_CHAIN_ENABLED", "true")
	t.Setenv("LOCAL_DEPLOYMENT_PATH", filepath.Join(t.TempDir(), "absent.json"))

	cfg, err := LoadAPI()
	require.NoError(t, err)
	assert.Empty(t, cfg.Local.PYUSDAddress)
}

func TestLoadAPI_BrokenDeploymentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	t.Setenv("LOCAL_CHAIN_ENABLED", "true")
	t.Setenv("LOCAL_DEPLOYMENT_PATH", path)

	_, err := LoadAPI()
	assert.Error(t, err)
}

func TestLoadWorker(t *testing.T) {
	cfg, err := LoadWorker()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 5, cfg.MaxAttempts)

	t.Setenv("WORKER_MAX_ATTEMPTS", "0")
	_, err = LoadWorker()
	assert.ErrorContains(t, err, "WORKER_MAX_ATTEMPTS")
}

func TestLoadDotenv_LaterFilesOverride(t *testing.T) {
	root := t.TempDir()
	app := filepath.Join(root, "apps", "api")
	require.NoError(t, os.MkdirAll(app, 0o755))

	write := func(path, body string) {
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	write(filepath.Join(app, ".env"), "MAKEABET_DOTENV_A=app\nMAKEABET_DOTENV_B=app\n")
	write(filepath.Join(app, ".env.local"), "MAKEABET_DOTENV_B=app-local\n")
	write(filepath.Join(root, ".env.local"), "MAKEABET_DOTENV_C=root-local\n")

	// Registers cleanup for the keys godotenv sets.
	t.Setenv("MAKEABET_DOTENV_A", "process")
	t.Setenv("MAKEABET_DOTENV_B", "")
	t.Setenv("MAKEABET_DOTENV_C", "")

	loaded, err := LoadDotenv(app)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(app, ".env"),
		filepath.Join(app, ".env.local"),
		filepath.Join(root, ".env.local"),
	}, loaded)

	assert.Equal(t, "app", os.Getenv("MAKEABET_DOTENV_A"))
	assert.Equal(t, "app-local", os.Getenv("MAKEABET_DOTENV_B"))
	assert.Equal(t, "root-local", os.Getenv("MAKEABET_DOTENV_C"))
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLogger("warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
