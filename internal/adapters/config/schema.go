package config

// Settingsfile represents the structure of the pyoxidizer.yaml file.
type Settingsfile struct {
	Version           string `yaml:"version"`
	Script            string `yaml:"script"`
	BuildTarget       string `yaml:"build_target"`
	DistributionsPath string `yaml:"distributions_path"`
	Registry          string `yaml:"registry"`
	Verbose           bool   `yaml:"verbose"`
}
