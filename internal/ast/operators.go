package ast

// Operator 运算符
type Operator int

const (
	// OpInvalid 零值，不是合法的运算符
	OpInvalid Operator = iota

	// 一元运算符
	OpNegate  // -x
	OpNot     // !x
	OpPreInc  // ++x
	OpPreDec  // --x
	OpPostInc // x++
	OpPostDec // x--

	// 算术运算符
	OpPlus     // +
	OpMinus    // -
	OpMultiply // *
	OpDivide   // /
	OpModulo   // %
	OpPower    // ^

	// 比较运算符
	OpEqual        // ==
	OpNotEqual     // !=
	OpLess         // <
	OpGreater      // >
	OpLessEqual    // <=
	OpGreaterEqual // >=

	// 逻辑运算符
	OpAnd // &&
	OpOr  // ||

	opCount
)

var operatorNames = [...]string{
	OpNegate:       "negate",
	OpNot:          "not",
	OpPreInc:       "pre_inc",
	OpPreDec:       "pre_dec",
	OpPostInc:      "post_inc",
	OpPostDec:      "post_dec",
	OpPlus:         "plus",
	OpMinus:        "minus",
	OpMultiply:     "multiply",
	OpDivide:       "divide",
	OpModulo:       "modulo",
	OpPower:        "power",
	OpEqual:        "equal",
	OpNotEqual:     "not_equal",
	OpLess:         "less",
	OpGreater:      "greater",
	OpLessEqual:    "less_equal",
	OpGreaterEqual: "greater_equal",
	OpAnd:          "and",
	OpOr:           "or",
}

var operatorSymbols = [...]string{
	OpNegate:       "-",
	OpNot:          "!",
	OpPreInc:       "++",
	OpPreDec:       "--",
	OpPostInc:      "++",
	OpPostDec:      "--",
	OpPlus:         "+",
	OpMinus:        "-",
	OpMultiply:     "*",
	OpDivide:       "/",
	OpModulo:       "%",
	OpPower:        "^",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpLess:         "<",
	OpGreater:      ">",
	OpLessEqual:    "<=",
	OpGreaterEqual: ">=",
	OpAnd:          "&&",
	OpOr:           "||",
}

// String 返回运算符在输出树中的名字
func (op Operator) String() string {
	if op.valid() {
		return operatorNames[op]
	}
	return "UNKNOWN"
}

// Symbol 返回运算符的源码写法
func (op Operator) Symbol() string {
	if op.valid() {
		return operatorSymbols[op]
	}
	return "?"
}

// IsUnary 是否为一元运算符
func (op Operator) IsUnary() bool {
	return op >= OpNegate && op <= OpPostDec
}

// IsBinary 是否为二元运算符
func (op Operator) IsBinary() bool {
	return op >= OpPlus && op <= OpOr
}

// IsPostfix 是否写在操作数之后
func (op Operator) IsPostfix() bool {
	return op == OpPostInc || op == OpPostDec
}

func (op Operator) valid() bool {
	return op > OpInvalid && op < opCount
}

// LookupOperator 按名字查找运算符，名字与 String 一致
func LookupOperator(name string) (Operator, bool) {
	for op, n := range operatorNames {
		if n != "" && n == name {
			return Operator(op), true
		}
	}
	return 0, false
}
