package ast

// IntegerLiteral 整数字面量
type IntegerLiteral struct {
	node
	value int64
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{node: newNode(), value: value}
}

func (i *IntegerLiteral) Kind() Kind      { return KindIntegerLiteral }
func (i *IntegerLiteral) Value() int64    { return i.value }
func (i *IntegerLiteral) statementNode()  {}
func (i *IntegerLiteral) expressionNode() {}

// FloatLiteral 浮点数字面量
type FloatLiteral struct {
	node
	value float64
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{node: newNode(), value: value}
}

func (f *FloatLiteral) Kind() Kind      { return KindFloatLiteral }
func (f *FloatLiteral) Value() float64  { return f.value }
func (f *FloatLiteral) statementNode()  {}
func (f *FloatLiteral) expressionNode() {}

// StringLiteral 字符串字面量，value 为转义后的内容
type StringLiteral struct {
	node
	value string
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{node: newNode(), value: value}
}

func (s *StringLiteral) Kind() Kind      { return KindStringLiteral }
func (s *StringLiteral) Value() string   { return s.value }
func (s *StringLiteral) statementNode()  {}
func (s *StringLiteral) expressionNode() {}

// Identifier 标识符
type Identifier struct {
	node
	name string
}

func NewIdentifier(name string) (*Identifier, error) {
	if name == "" {
		return nil, &ContractError{Kind: KindIdentifier, Slot: "name", Err: ErrEmptyName}
	}
	return &Identifier{node: newNode(), name: name}, nil
}

func (i *Identifier) Kind() Kind      { return KindIdentifier }
func (i *Identifier) Name() string    { return i.name }
func (i *Identifier) statementNode()  {}
func (i *Identifier) expressionNode() {}

// CallArgs 调用实参列表
type CallArgs struct {
	node
	list []Expression
}

func NewCallArgs(list ...Expression) (*CallArgs, error) {
	c := newClaim(KindCallArgs)
	for i, e := range list {
		c.require(seqSlot("list", i), e)
	}
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &CallArgs{node: newNode(), list: append([]Expression(nil), list...)}, nil
}

func (a *CallArgs) Kind() Kind { return KindCallArgs }

// List 返回实参的副本，顺序与源码一致
func (a *CallArgs) List() []Expression {
	return append([]Expression(nil), a.list...)
}

func (a *CallArgs) Len() int { return len(a.list) }

// Append 在末尾追加一个实参
func (a *CallArgs) Append(e Expression) error {
	if err := attach(a, seqSlot("list", len(a.list)), e); err != nil {
		return err
	}
	a.list = append(a.list, e)
	return nil
}

// Call 函数调用
type Call struct {
	node
	callable *Identifier
	args     Optional[*CallArgs]
}

// NewCall 创建函数调用，args 为 nil 表示没有实参列表
func NewCall(callable *Identifier, args *CallArgs) (*Call, error) {
	c := newClaim(KindCall)
	c.require("callable", callable)
	c.optional("args", args)
	if err := c.commit(); err != nil {
		return nil, err
	}
	call := &Call{node: newNode(), callable: callable}
	if args != nil {
		call.args = some(args)
	}
	return call, nil
}

func (c *Call) Kind() Kind              { return KindCall }
func (c *Call) Callable() *Identifier   { return c.callable }
func (c *Call) Args() (*CallArgs, bool) { return c.args.Get() }
func (c *Call) statementNode()          {}
func (c *Call) expressionNode()         {}

// SetArgs 补上实参列表
func (c *Call) SetArgs(args *CallArgs) error {
	if c.args.Present() {
		return occupied(KindCall, "args")
	}
	if err := attach(c, "args", args); err != nil {
		return err
	}
	c.args = some(args)
	return nil
}

// UnaryOperation 一元运算
type UnaryOperation struct {
	node
	op   Operator
	expr Expression
}

func NewUnaryOperation(op Operator, expr Expression) (*UnaryOperation, error) {
	c := newClaim(KindUnaryOperation)
	if !op.IsUnary() {
		c.fail("op", ErrInvalidOperator)
	}
	c.require("expr", expr)
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &UnaryOperation{node: newNode(), op: op, expr: expr}, nil
}

func (u *UnaryOperation) Kind() Kind       { return KindUnaryOperation }
func (u *UnaryOperation) Op() Operator     { return u.op }
func (u *UnaryOperation) Expr() Expression { return u.expr }
func (u *UnaryOperation) statementNode()   {}
func (u *UnaryOperation) expressionNode()  {}

// BinaryOperation 二元运算
type BinaryOperation struct {
	node
	op    Operator
	left  Expression
	right Expression
}

func NewBinaryOperation(op Operator, left, right Expression) (*BinaryOperation, error) {
	c := newClaim(KindBinaryOperation)
	if !op.IsBinary() {
		c.fail("op", ErrInvalidOperator)
	}
	c.require("left", left)
	c.require("right", right)
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &BinaryOperation{node: newNode(), op: op, left: left, right: right}, nil
}

func (b *BinaryOperation) Kind() Kind        { return KindBinaryOperation }
func (b *BinaryOperation) Op() Operator      { return b.op }
func (b *BinaryOperation) Left() Expression  { return b.left }
func (b *BinaryOperation) Right() Expression { return b.right }
func (b *BinaryOperation) statementNode()    {}
func (b *BinaryOperation) expressionNode()   {}
