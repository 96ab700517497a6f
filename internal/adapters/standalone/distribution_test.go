package standalone_test

import (
	"context"
	"testing"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func resolveFixture(t *testing.T) ports.Distribution {
	t.Helper()
	f := newResolverFixture(t)
	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(f.archive, nil)

	dist, err := f.resolver.Resolve(context.Background(), domain.FlavorStandalone, f.location, f.destDir)
	require.NoError(t, err)
	return dist
}

func extensionNames(mods []domain.ExtensionModule) []string {
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name+"/"+m.Variant)
	}
	return names
}

func TestFilterExtensionModules(t *testing.T) {
	dist := resolveFixture(t)

	tests := []struct {
		name      string
		filter    domain.ExtensionModuleFilter
		preferred map[string]string
		want      []string
	}{
		{
			name:   "all",
			filter: domain.FilterAll,
			want:   []string{"_codecs/default", "_json/default", "_readline/libedit", "_socket/default", "_ssl/default"},
		},
		{
			name:   "minimal keeps builtin and required",
			filter: domain.FilterMinimal,
			want:   []string{"_codecs/default", "_json/default"},
		},
		{
			name:   "no-libraries keeps system links",
			filter: domain.FilterNoLibraries,
			want:   []string{"_codecs/default", "_json/default", "_socket/default"},
		},
		{
			name:   "no-gpl with default variants",
			filter: domain.FilterNoGPL,
			want:   []string{"_codecs/default", "_json/default", "_readline/libedit", "_socket/default", "_ssl/default"},
		},
		{
			name:      "no-gpl drops preferred gpl variant",
			filter:    domain.FilterNoGPL,
			preferred: map[string]string{"_readline": "readline"},
			want:      []string{"_codecs/default", "_json/default", "_socket/default", "_ssl/default"},
		},
		{
			name:      "all honors preferred variant",
			filter:    domain.FilterAll,
			preferred: map[string]string{"_readline": "readline"},
			want:      []string{"_codecs/default", "_json/default", "_readline/readline", "_socket/default", "_ssl/default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dist.FilterExtensionModules(tt.filter, tt.preferred)
			require.NoError(t, err)
			assert.Equal(t, tt.want, extensionNames(got))
		})
	}
}

func TestFilterExtensionModules_UnknownVariant(t *testing.T) {
	dist := resolveFixture(t)

	_, err := dist.FilterExtensionModules(domain.FilterAll, map[string]string{"_readline": "gnu"})
	require.ErrorContains(t, err, "invalid distribution metadata")
}

func TestBuildExecutable(t *testing.T) {
	dist := resolveFixture(t)

	params := domain.ExecutableParams{
		HostTriple:      "x86_64-unknown-linux-gnu",
		TargetTriple:    "x86_64-unknown-linux-gnu",
		Name:            "app",
		ResourcesPolicy: domain.InMemoryOnly(),
		Config:          domain.DefaultEmbeddedPythonConfig(),
		ExtensionFilter: domain.FilterMinimal,
		IncludeSources:  true,
	}

	builder, err := dist.BuildExecutable(params)
	require.NoError(t, err)
	assert.Equal(t, dist.PythonExe(), builder.PythonExe)
	assert.Equal(t, []string{"_codecs/default", "_json/default"}, extensionNames(builder.ExtensionModules))

	var names []string
	for _, r := range builder.Resources {
		names = append(names, r.FullName())
	}
	assert.Equal(t, []string{"email", "json", "json.decoder", "os"}, names)

	params.IncludeResources = true
	params.IncludeTest = true
	builder, err = dist.BuildExecutable(params)
	require.NoError(t, err)
	assert.Len(t, builder.Resources, 7)
}

func TestBuildExecutable_TargetMismatch(t *testing.T) {
	dist := resolveFixture(t)

	_, err := dist.BuildExecutable(domain.ExecutableParams{TargetTriple: "aarch64-apple-darwin"})
	require.ErrorContains(t, err, "distribution does not support flavor")
}

func TestFilterExtensionModules_UnhandledFilter(t *testing.T) {
	dist := resolveFixture(t)

	got, err := dist.FilterExtensionModules(domain.ExtensionModuleFilter(42), nil)
	require.ErrorIs(t, err, domain.ErrUnknownExtensionFilter)
	assert.Empty(t, got)

	_, err = dist.BuildExecutable(domain.ExecutableParams{ExtensionFilter: domain.ExtensionModuleFilter(42)})
	require.ErrorIs(t, err, domain.ErrUnknownExtensionFilter)
}

func TestIsTestPackage(t *testing.T) {
	dist := resolveFixture(t)

	tests := []struct {
		name string
		want bool
	}{
		{name: "test", want: true},
		{name: "json.tests", want: true},
		{name: "idlelib.idle_test", want: true},
		{name: "idlelib.idle_test.mock", want: true},
		{name: "ensurepip.tests", want: true},
		{name: "ensurepip.tests.helpers", want: true},
		{name: "ensurepip", want: false},
		{name: "idlelib", want: false},
		{name: "json", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dist.IsTestPackage(tt.name))
		})
	}
}
