package ir

// Instruction is a single non-terminating IR statement (spec.md §3.1).
type Instruction interface {
	isInstruction()
}

// Let binds fresh variable X to the result of evaluating E. X must not have
// been bound before in the defining block's dominance chain.
type Let struct {
	X Var
	E Expr
}

func (Let) isInstruction() {}

// Assign mutates an existing mutable cell X to the current value of Y.
type Assign struct {
	X, Y Var
}

func (Assign) isInstruction() {}

// SetField writes field I of heap block X with Y.
type SetField struct {
	X Var
	I int
	Y Var
}

func (SetField) isInstruction() {}

// ArraySet writes index Y of array X with Z.
type ArraySet struct {
	X, Y, Z Var
}

func (ArraySet) isInstruction() {}

// OffsetRef increments integer cell X by I.
type OffsetRef struct {
	X Var
	I int
}

func (OffsetRef) isInstruction() {}

// Stmt pairs an Instruction with its source Location.
type Stmt struct {
	Instr Instruction
	Loc   Location
}
