package ir

import "go/constant"

// BlockKind distinguishes the runtime representation of a Block expression
// (tuple, variant, record, ...); the pass itself never inspects it, but
// downstream consumers of the rewritten program do.
type BlockKind int

const (
	KindTuple BlockKind = iota
	KindVariant
	KindRecord
)

// Atom is either a variable reference or an inline constant, used wherever
// the IR allows a primitive operand to skip binding a variable (Prim args).
type Atom interface {
	isAtom()
}

// AVar is an Atom that references a variable.
type AVar struct{ Var Var }

func (AVar) isAtom() {}

// AConst is an Atom holding an inline constant.
type AConst struct{ Value constant.Value }

func (AConst) isAtom() {}

// Expr is the right-hand side of a Let instruction (spec.md §3.1).
type Expr interface {
	isExpr()
}

// Apply is a (possibly higher-order) function call.
type Apply struct {
	Fn   Var
	Args []Var
}

func (Apply) isExpr() {}

// MakeBlock allocates a heap block (tuple/record/variant) from its field
// variables. Named MakeBlock instead of the bare "Block" of spec.md to avoid
// colliding with the Block basic-block type in this package.
type MakeBlock struct {
	Tag  int
	Vars []Var
	Kind BlockKind
}

func (MakeBlock) isExpr() {}

// Field projects field I out of heap block Z.
type Field struct {
	Z Var
	I int
}

func (Field) isExpr() {}

// Const is an inline constant expression.
type Const struct{ Value constant.Value }

func (Const) isExpr() {}

// Closure builds a first-class function value from a parameter list and an
// entry continuation.
type Closure struct {
	Params []Var
	Cont   Cont
}

func (Closure) isExpr() {}

// PrimOp names a primitive operator consumed by Prim. Most operators are
// plain tags (arithmetic, comparisons); Extern additionally carries the name
// of the external symbol it refers to.
type PrimOp struct {
	Name   string
	Extern bool
}

// ExternOp builds the pseudo-primitive used to materialize the sentinel's
// undefined/zero value (spec.md §4.5 "Sentinel insertion"), e.g.
// ExternOp("%undefined").
func ExternOp(name string) PrimOp { return PrimOp{Name: name, Extern: true} }

func Op(name string) PrimOp { return PrimOp{Name: name} }

// UndefinedSymbol is the external symbol bound to the sentinel variable.
const UndefinedSymbol = "%undefined"

// Prim applies a primitive operator to a list of atoms.
type Prim struct {
	Op   PrimOp
	Args []Atom
}

func (Prim) isExpr() {}
