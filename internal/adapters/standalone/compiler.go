package standalone

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed bytecode.py
var compilerScript string

var _ ports.BytecodeCompiler = (*Compiler)(nil)

// Compiler compiles source modules with a long-lived interpreter process.
type Compiler struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	closed bool
}

// StartCompiler launches pythonExe running the compiler loop.
func StartCompiler(ctx context.Context, pythonExe string) (*Compiler, error) {
	//nolint:gosec // pythonExe comes from verified distribution metadata
	cmd := exec.CommandContext(ctx, pythonExe, "-s", "-E", "-c", compilerScript)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompilerStartFailed.Error()), "python_exe", pythonExe)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompilerStartFailed.Error()), "python_exe", pythonExe)
	}

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompilerStartFailed.Error()), "python_exe", pythonExe)
	}

	return &Compiler{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}, nil
}

// Compile sends one source module to the interpreter and returns its bytecode.
func (c *Compiler) Compile(
	ctx context.Context,
	source []byte,
	filename string,
	optimize domain.OptimizationLevel,
	mode domain.CompileMode,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !optimize.Valid() {
		return nil, zerr.With(domain.ErrCompileFailed, "optimize", int(optimize))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, zerr.With(domain.ErrCompileFailed, "reason", "compiler closed")
	}

	if err := c.writeRequest(source, filename, optimize, mode); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "filename", filename)
	}

	status, payload, err := c.readReply()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "filename", filename)
	}
	if status != "ok" {
		err := zerr.With(domain.ErrCompileFailed, "filename", filename)
		return nil, zerr.With(err, "python_error", string(payload))
	}
	return payload, nil
}

func (c *Compiler) writeRequest(
	source []byte,
	filename string,
	optimize domain.OptimizationLevel,
	mode domain.CompileMode,
) error {
	w := bufio.NewWriter(c.stdin)
	_, _ = fmt.Fprintf(w, "compile\n%d\n", len(source))
	_, _ = w.Write(source)
	_, _ = fmt.Fprintf(w, "%d\n%s%d\n%s\n", len(filename), filename, int(optimize), mode)
	return w.Flush()
}

func (c *Compiler) readReply() (string, []byte, error) {
	header, err := c.stdout.ReadString('\n')
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to read compiler reply")
	}
	status, size, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return "", nil, zerr.With(zerr.New("malformed compiler reply"), "header", header)
	}
	n, err := strconv.Atoi(size)
	if err != nil || n < 0 {
		return "", nil, zerr.With(zerr.New("malformed compiler reply"), "header", header)
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(c.stdout, payload); err != nil {
		return "", nil, zerr.Wrap(err, "failed to read compiler reply")
	}
	return status, payload, nil
}

// Close stops the interpreter. It is safe to call more than once.
func (c *Compiler) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	_ = c.stdin.Close()
	if err := c.cmd.Wait(); err != nil {
		return zerr.Wrap(err, "bytecode compiler exited with error")
	}
	return nil
}
