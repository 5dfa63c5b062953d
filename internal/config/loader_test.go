package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockEnvironment implements Environment for testing.
type MockEnvironment map[string]string

func (m MockEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoEnvironment_ReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{
		"WINDIFF_LEFT_ROOT":       "/trees/left",
		"WINDIFF_RIGHT_ROOT":      "/trees/right",
		"WINDIFF_VIEWER":          "/usr/bin/meld",
		"WINDIFF_VIEWER_ARGS":     "--newtab  --diff",
		"WINDIFF_MAX_OUTPUT_SIZE": "4096",
	})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "/trees/left", cfg.Roots.Left)
	assert.Equal(t, "/trees/right", cfg.Roots.Right)
	assert.Equal(t, "/usr/bin/meld", cfg.Viewer.Path)
	assert.Equal(t, []string{"--newtab", "--diff"}, cfg.Viewer.Args)
	assert.Equal(t, int64(4096), cfg.Viewer.MaxOutputSize)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{"WINDIFF_RIGHT_ROOT": "/trees/right"})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultLeftRoot, cfg.Roots.Left) // Default
	assert.Equal(t, "/trees/right", cfg.Roots.Right) // Overridden
	assert.Equal(t, DefaultViewerPath, cfg.Viewer.Path)
	assert.Equal(t, int64(1024*1024), cfg.Viewer.MaxOutputSize)
}

func TestLoad_EmptyViewerArgs_ClearsArgs(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{"WINDIFF_VIEWER_ARGS": "   "})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Viewer.Args)
}

func TestLoad_ViewerArgs_QuotesAreNotInterpreted(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{"WINDIFF_VIEWER_ARGS": `-dl "Left side"`})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"-dl", `"Left`, `side"`}, cfg.Viewer.Args)
}

// --- ERROR TESTS ---

func TestLoad_NonNumericOutputSize_ReturnsError(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{"WINDIFF_MAX_OUTPUT_SIZE": "lots"})

	cfg, err := loader.Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "max_output_size")
}

func TestLoad_EmptyRoot_FailsValidation(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{"WINDIFF_LEFT_ROOT": ""})

	cfg, err := loader.Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"roots.left must not be empty"}, verr.Problems)
}

func TestLoad_NegativeOutputSize_FailsValidation(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{"WINDIFF_MAX_OUTPUT_SIZE": "-1"})

	_, err := loader.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "viewer.max_output_size must be >= 1")
}

func TestLoad_UnrelatedVariables_Ignored(t *testing.T) {
	loader := NewLoaderWithEnv(MockEnvironment{"WINDIFF_UNKNOWN": "x", "PATH": "/bin"})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultConfig_AllFieldsInitialized(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, `D:\UE5WorkTree\UE5.2GPEGNanite`, cfg.Roots.Left)
	assert.Equal(t, `D:\UE5WorkTree\UE5.3Nanite`, cfg.Roots.Right)
	assert.Equal(t, `C:\Program Files\WinMerge\WinMergeU.exe`, cfg.Viewer.Path)
	assert.Nil(t, cfg.Viewer.Args)
	assert.Positive(t, cfg.Viewer.MaxOutputSize)
}
