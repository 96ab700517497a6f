package shell_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mfraile/PyOxidizer/internal/adapters/shell"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Run_CapturesOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	out, err := executor.Run(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo line1; echo line2 >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "line1\n")
	assert.Contains(t, string(out), "line2\n")
}

func TestExecutor_Run_EchoesLinesAtDebug(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("running sh -c printf part1; sleep 0.1; echo part2").Times(1)
	mockLogger.EXPECT().Debug("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Run(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Run_EnvironmentOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	out, err := executor.Run(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo $PYOXIDIZER_TEST_VAR"},
		Env:  map[string]string{"PYOXIDIZER_TEST_VAR": "test-value-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "test-value-123\n", string(out))
}

func TestExecutor_Run_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	out, err := executor.Run(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo no matching distribution; exit 42"},
	})
	require.Error(t, err)
	assert.Equal(t, "no matching distribution\n", string(out))
	require.ErrorContains(t, err, "command failed")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 42, zErr.Metadata()["exit_code"])
	assert.Equal(t, "no matching distribution", zErr.Metadata()["output"])
}

func TestExecutor_Run_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Run(context.Background(), domain.Command{
		Args: []string{"nonexistent-command-xyz123"},
	})
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	_, err := executor.Run(context.Background(), domain.Command{})
	require.ErrorContains(t, err, "empty command")
}

func TestExecutor_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executor.Run(ctx, domain.Command{Args: []string{"sh", "-c", "sleep 5"}})
	require.Error(t, err)
}

func TestResolveEnvironment(t *testing.T) {
	env := shell.ResolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/home/user"},
		map[string]string{"PIP_NO_INDEX": "1", "HOME": "/tmp/home"},
	)

	joined := strings.Join(env, "\n")
	assert.Contains(t, joined, "PATH=/usr/bin")
	assert.Contains(t, joined, "HOME=/tmp/home")
	assert.Contains(t, joined, "PIP_NO_INDEX=1")
	assert.NotContains(t, joined, "HOME=/home/user")
	assert.Len(t, env, 3)
}
