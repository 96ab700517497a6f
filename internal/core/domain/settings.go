package domain

// Settings holds the project-level options read from pyoxidizer.yaml.
type Settings struct {
	Script            string `yaml:"script"`
	BuildTarget       string `yaml:"build_target"`
	DistributionsPath string `yaml:"distributions_path"`
	Registry          string `yaml:"registry"`
	Verbose           bool   `yaml:"verbose"`
}
