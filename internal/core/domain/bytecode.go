package domain

// OptimizationLevel is the Python bytecode optimization level (the -O flag count).
type OptimizationLevel int

const (
	// OptimizeZero compiles with no optimizations.
	OptimizeZero OptimizationLevel = 0
	// OptimizeOne strips assert statements.
	OptimizeOne OptimizationLevel = 1
	// OptimizeTwo strips assert statements and docstrings.
	OptimizeTwo OptimizationLevel = 2
)

// Valid reports whether the level is one Python accepts.
func (l OptimizationLevel) Valid() bool {
	return l >= OptimizeZero && l <= OptimizeTwo
}

// CompileMode selects the framing of compiled bytecode.
type CompileMode int

const (
	// CompileModeBytecode yields the raw marshalled code object.
	CompileModeBytecode CompileMode = iota
	// CompileModePycCheckedHash yields a .pyc with a checked source hash header.
	CompileModePycCheckedHash
	// CompileModePycUncheckedHash yields a .pyc with an unchecked source hash header.
	CompileModePycUncheckedHash
)

// String returns the wire identifier of the compile mode.
func (m CompileMode) String() string {
	switch m {
	case CompileModePycCheckedHash:
		return "pyc-checked-hash"
	case CompileModePycUncheckedHash:
		return "pyc-unchecked-hash"
	default:
		return "bytecode"
	}
}
