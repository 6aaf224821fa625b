package ast

// Leaf token kinds. Only the tokens the semantic core inspects directly
// (identifiers, literals, basic-type keywords, and operators that
// disambiguate a shared branch name) are enumerated -- punctuation the
// parser consumes without exposing to later passes (commas, braces, `of`,
// `then`, ...) has no kind here.
const (
	ID = iota
	IntVal
	FloatVal
	CharVal
	BoolVal
	StringLit

	KwInt
	KwFloat
	KwBool
	KwChar

	Plus
	Minus
	Star
	Divide
	Mod

	And
	Or
	Not

	Lt
	Le
	Gt
	Ge
	Eq
	Neq
)

// Branch names, one per grammar production or labeled alternative. These
// are the strings the Symbols and Codegen passes switch on.
const (
	NProgram       = "program"
	NFunction      = "function"
	NParameterDecl = "parameter_decl"
	NDeclarations  = "declarations"
	NVariableDecl  = "variable_decl"
	NType          = "type"
	NBasicType     = "basic_type"
	NArrayType     = "array_type"
	NStatements    = "statements"

	NAssignStmt   = "assignStmt"
	NIfStmt       = "ifStmt"
	NWhileStmt    = "whileStmt"
	NReturnStmt   = "returnStmt"
	NProcCall     = "procCall"
	NReadStmt     = "readStmt"
	NWriteExpr    = "writeExpr"
	NWriteString  = "writeString"

	NCall         = "call"
	NIdent        = "ident"
	NIdentLeftExpr = "identLeftExpr"
	NArrLeftExpr  = "arrLeftExpr"
	NExprIdent    = "exprIdent"
	NFuncCall     = "funcCall"
	NLeftExpr     = "leftExpr"
	NArithmetic   = "arithmetic"
	NRelational   = "relational"
	NLogical      = "logical"
	NUnary        = "unary"
	NValue        = "value"
	NParenthesis  = "parenthesis"
)
