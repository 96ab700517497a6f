package domain

// ExecutableParams carries everything needed to set up an executable builder.
type ExecutableParams struct {
	HostTriple        string
	TargetTriple      string
	Name              string
	ResourcesPolicy   ResourcesPolicy
	Config            EmbeddedPythonConfig
	ExtensionFilter   ExtensionModuleFilter
	PreferredVariants map[string]string
	IncludeSources    bool
	IncludeResources  bool
	IncludeTest       bool
}

// ExecutableBuilder accumulates the resources a Python executable will embed.
// Linking and embedding happen outside of this package.
type ExecutableBuilder struct {
	Params           ExecutableParams
	PythonExe        string
	ExtensionModules []ExtensionModule
	Resources        []Resource
}

// AddResource appends a resource to the builder.
func (b *ExecutableBuilder) AddResource(r Resource) {
	b.Resources = append(b.Resources, r)
}
