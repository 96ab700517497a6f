package script

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	lua "github.com/yuin/gopher-lua"
	"go.trai.ch/zerr"
)

// ErrorKind classifies a script-visible failure.
type ErrorKind int

const (
	// KindValidation is a bad shape or value of a script argument.
	KindValidation ErrorKind = iota
	// KindResolution is a distribution that could not be obtained.
	KindResolution
	// KindOperation is a packaging or enumeration step that failed.
	KindOperation
	// KindInternal is a value that passed validation but was not understood downstream.
	KindInternal
)

// String returns the name scripts see in the kind field.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindResolution:
		return "resolution"
	case KindOperation:
		return "operation"
	default:
		return "internal"
	}
}

// Stable error codes.
const (
	CodeIncorrectParameterType = "INCORRECT_PARAMETER_TYPE"
	CodeInvalidParameterValue  = "INVALID_PARAMETER_VALUE"
	CodeResolveDistribution    = "RESOLVE_DISTRIBUTION"
	CodePipInstall             = "PIP_INSTALL_ERROR"
	CodePackageRoot            = "PACKAGE_ROOT_ERROR"
	CodeVirtualenv             = "VIRTUALENV_ERROR"
	CodeSetupPy                = "SETUP_PY_ERROR"
	CodePythonDistribution     = "PYTHON_DISTRIBUTION"
	CodeBuild                  = "PYOXIDIZER_BUILD"
	CodeInternalInvariant      = "INTERNAL_INVARIANT"
)

const (
	errorTypeName    = "ScriptError"
	resolutionLabel  = "resolve_distribution()"
	outputMetaKey    = "output"
	maxMetaValueSize = 200
)

// Error is a structured failure raised into the script and returned to the embedding.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Label   string

	cause error
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s [%s]", e.Label, e.Message, e.Code)
}

// Unwrap returns the collaborator error the script error was built from, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

func typeError(label, format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeIncorrectParameterType,
		Message: fmt.Sprintf(format, args...),
		Label:   label,
	}
}

func valueError(label, format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeInvalidParameterValue,
		Message: fmt.Sprintf(format, args...),
		Label:   label,
	}
}

func resolutionError(err error) *Error {
	return &Error{
		Kind:    KindResolution,
		Code:    CodeResolveDistribution,
		Message: describe(err),
		Label:   resolutionLabel,
		cause:   err,
	}
}

// operationError maps a collaborator failure. prefix, when set, leads the message.
// An enum value the collaborator does not handle is an internal failure, not an operation one.
func operationError(code, label, prefix string, err error) *Error {
	msg := describe(err)
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	if isUnhandledValue(err) {
		return &Error{Kind: KindInternal, Code: CodeInternalInvariant, Message: msg, Label: label, cause: err}
	}
	return &Error{Kind: KindOperation, Code: code, Message: msg, Label: label, cause: err}
}

func isUnhandledValue(err error) bool {
	return errors.Is(err, domain.ErrUnknownExtensionFilter) || errors.Is(err, domain.ErrUnknownResourcesPolicy)
}

func internalError(label, format string, args ...any) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    CodeInternalInvariant,
		Message: fmt.Sprintf(format, args...),
		Label:   label,
	}
}

// describe renders an error chain with its attached metadata. Captured
// subprocess output goes last on its own lines.
func describe(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())

	var fields []string
	var output string
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		z, ok := cur.(*zerr.Error)
		if !ok {
			continue
		}
		for k, v := range z.Metadata() {
			s := fmt.Sprint(v)
			if k == outputMetaKey {
				if output == "" {
					output = s
				}
				continue
			}
			if len(s) > maxMetaValueSize {
				s = s[:maxMetaValueSize] + "..."
			}
			fields = append(fields, k+"="+s)
		}
	}

	if len(fields) > 0 {
		slices.Sort(fields)
		b.WriteString(" (" + strings.Join(slices.Compact(fields), ", ") + ")")
	}
	if output != "" {
		b.WriteString("\n" + output)
	}
	return b.String()
}

// raise throws e into the running script. It does not return.
func raise(L *lua.LState, e *Error) int {
	L.Error(newUserData(L, errorTypeName, e), 1)
	return 0
}

// AsError extracts the script error carried by an evaluation failure.
func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		if ud, ok := apiErr.Object.(*lua.LUserData); ok {
			if se, ok := ud.Value.(*Error); ok {
				return se, true
			}
		}
	}
	return nil, false
}

func errorType() Type {
	return Type{
		Name: errorTypeName,
		Field: func(_ *lua.LState, value any, key string) (lua.LValue, bool) {
			e := value.(*Error)
			switch key {
			case "code":
				return lua.LString(e.Code), true
			case "message":
				return lua.LString(e.Message), true
			case "label":
				return lua.LString(e.Label), true
			case "kind":
				return lua.LString(e.Kind.String()), true
			default:
				return lua.LNil, false
			}
		},
		String: func(value any) string {
			return value.(*Error).Error()
		},
	}
}
