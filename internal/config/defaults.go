package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden from the environment.
// NOTE: Environment variables that are set override defaults, including explicit empty values.
// Unset variables leave the defaults untouched.
type Config struct {
	Roots  RootsConfig  `mapstructure:"roots"`
	Viewer ViewerConfig `mapstructure:"viewer"`
}

// RootsConfig holds the two directory trees being compared.
type RootsConfig struct {
	Left  string `mapstructure:"left"`  // Default: D:\UE5WorkTree\UE5.2GPEGNanite
	Right string `mapstructure:"right"` // Default: D:\UE5WorkTree\UE5.3Nanite
}

// ViewerConfig describes the external diff viewer.
type ViewerConfig struct {
	Path          string   `mapstructure:"path"`            // Default: C:\Program Files\WinMerge\WinMergeU.exe
	Args          []string `mapstructure:"args"`            // Extra arguments placed before the two files
	MaxOutputSize int64    `mapstructure:"max_output_size"` // Default: 1024 * 1024 (1MB) per stream
}

const (
	DefaultLeftRoot   = `D:\UE5WorkTree\UE5.2GPEGNanite`
	DefaultRightRoot  = `D:\UE5WorkTree\UE5.3Nanite`
	DefaultViewerPath = `C:\Program Files\WinMerge\WinMergeU.exe`
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Roots: RootsConfig{
			Left:  DefaultLeftRoot,
			Right: DefaultRightRoot,
		},
		Viewer: ViewerConfig{
			Path:          DefaultViewerPath,
			MaxOutputSize: 1024 * 1024,
		},
	}
}
