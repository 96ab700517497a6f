package domain

// Command is a subprocess invocation whose output is captured.
type Command struct {
	Args []string
	Dir  string
	// Env overrides entries of the inherited environment.
	Env map[string]string
}
