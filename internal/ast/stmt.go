package ast

// TermDecl 变量或常量声明：[const] name: type [= value]
type TermDecl struct {
	node
	isConst bool
	name    *Identifier
	typ     Expression
	value   Optional[Expression]
}

// NewTermDecl 创建声明，value 为 nil 表示没有初始值
func NewTermDecl(isConst bool, name *Identifier, typ Expression, value Expression) (*TermDecl, error) {
	c := newClaim(KindTermDecl)
	c.require("name", name)
	c.require("type", typ)
	c.optional("value", value)
	if err := c.commit(); err != nil {
		return nil, err
	}
	t := &TermDecl{node: newNode(), isConst: isConst, name: name, typ: typ}
	if !IsNil(value) {
		t.value = some(value)
	}
	return t, nil
}

func (t *TermDecl) Kind() Kind                { return KindTermDecl }
func (t *TermDecl) IsConst() bool             { return t.isConst }
func (t *TermDecl) Name() *Identifier         { return t.name }
func (t *TermDecl) Type() Expression          { return t.typ }
func (t *TermDecl) Value() (Expression, bool) { return t.value.Get() }
func (t *TermDecl) statementNode()            {}
func (t *TermDecl) declarationNode()          {}

// SetValue 补上初始值
func (t *TermDecl) SetValue(value Expression) error {
	if t.value.Present() {
		return occupied(KindTermDecl, "value")
	}
	if err := attach(t, "value", value); err != nil {
		return err
	}
	t.value = some(value)
	return nil
}

// Assignment 赋值语句
type Assignment struct {
	node
	term  Expression
	value Expression
}

func NewAssignment(term, value Expression) (*Assignment, error) {
	c := newClaim(KindAssignment)
	c.require("term", term)
	c.require("value", value)
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &Assignment{node: newNode(), term: term, value: value}, nil
}

func (a *Assignment) Kind() Kind        { return KindAssignment }
func (a *Assignment) Term() Expression  { return a.term }
func (a *Assignment) Value() Expression { return a.value }
func (a *Assignment) statementNode()    {}

// Procedure 代码块
type Procedure struct {
	node
	statements []Statement
}

func NewProcedure(statements ...Statement) (*Procedure, error) {
	c := newClaim(KindProcedure)
	for i, s := range statements {
		c.require(seqSlot("statements", i), s)
	}
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &Procedure{node: newNode(), statements: append([]Statement(nil), statements...)}, nil
}

func (p *Procedure) Kind() Kind { return KindProcedure }

// Statements 返回语句的副本
func (p *Procedure) Statements() []Statement {
	return append([]Statement(nil), p.statements...)
}

// Append 在块末尾追加语句
func (p *Procedure) Append(s Statement) error {
	if err := attach(p, seqSlot("statements", len(p.statements)), s); err != nil {
		return err
	}
	p.statements = append(p.statements, s)
	return nil
}

// ParamsDecl 形参列表
type ParamsDecl struct {
	node
	list []*TermDecl
}

func NewParamsDecl(list ...*TermDecl) (*ParamsDecl, error) {
	c := newClaim(KindParamsDecl)
	for i, t := range list {
		c.require(seqSlot("list", i), t)
	}
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &ParamsDecl{node: newNode(), list: append([]*TermDecl(nil), list...)}, nil
}

func (p *ParamsDecl) Kind() Kind { return KindParamsDecl }

func (p *ParamsDecl) List() []*TermDecl {
	return append([]*TermDecl(nil), p.list...)
}

func (p *ParamsDecl) Append(t *TermDecl) error {
	if err := attach(p, seqSlot("list", len(p.list)), t); err != nil {
		return err
	}
	p.list = append(p.list, t)
	return nil
}

// FunctionDecl 函数声明。解析器分阶段构造，所有子节点都可以稍后设置。
type FunctionDecl struct {
	node
	name       Optional[*Identifier]
	returnType Optional[Expression]
	params     Optional[*ParamsDecl]
	procedure  Optional[*Procedure]
}

func NewFunctionDecl() *FunctionDecl {
	return &FunctionDecl{node: newNode()}
}

func (f *FunctionDecl) Kind() Kind                     { return KindFunctionDecl }
func (f *FunctionDecl) Name() (*Identifier, bool)      { return f.name.Get() }
func (f *FunctionDecl) ReturnType() (Expression, bool) { return f.returnType.Get() }
func (f *FunctionDecl) Params() (*ParamsDecl, bool)    { return f.params.Get() }
func (f *FunctionDecl) Procedure() (*Procedure, bool)  { return f.procedure.Get() }
func (f *FunctionDecl) statementNode()                 {}
func (f *FunctionDecl) declarationNode()               {}

func (f *FunctionDecl) SetName(name *Identifier) error {
	if f.name.Present() {
		return occupied(KindFunctionDecl, "func_name")
	}
	if err := attach(f, "func_name", name); err != nil {
		return err
	}
	f.name = some(name)
	return nil
}

func (f *FunctionDecl) SetReturnType(typ Expression) error {
	if f.returnType.Present() {
		return occupied(KindFunctionDecl, "return_type")
	}
	if err := attach(f, "return_type", typ); err != nil {
		return err
	}
	f.returnType = some(typ)
	return nil
}

func (f *FunctionDecl) SetParams(params *ParamsDecl) error {
	if f.params.Present() {
		return occupied(KindFunctionDecl, "params")
	}
	if err := attach(f, "params", params); err != nil {
		return err
	}
	f.params = some(params)
	return nil
}

func (f *FunctionDecl) SetProcedure(procedure *Procedure) error {
	if f.procedure.Present() {
		return occupied(KindFunctionDecl, "procedure")
	}
	if err := attach(f, "procedure", procedure); err != nil {
		return err
	}
	f.procedure = some(procedure)
	return nil
}

// IfStatement if 语句
type IfStatement struct {
	node
	condition  Expression
	procedure  *Procedure
	elseBranch Optional[ElseBranch]
}

func NewIfStatement(condition Expression, procedure *Procedure) (*IfStatement, error) {
	c := newClaim(KindIfStatement)
	c.require("condition", condition)
	c.require("procedure", procedure)
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &IfStatement{node: newNode(), condition: condition, procedure: procedure}, nil
}

func (i *IfStatement) Kind() Kind               { return KindIfStatement }
func (i *IfStatement) Condition() Expression    { return i.condition }
func (i *IfStatement) Procedure() *Procedure    { return i.procedure }
func (i *IfStatement) Else() (ElseBranch, bool) { return i.elseBranch.Get() }
func (i *IfStatement) statementNode()           {}

// SetElse 挂上 else 分支。解析器先归约出 if 部分，再归约 else。
func (i *IfStatement) SetElse(branch ElseBranch) error {
	if i.elseBranch.Present() {
		return occupied(KindIfStatement, "else")
	}
	if err := attach(i, "else", branch); err != nil {
		return err
	}
	i.elseBranch = some(branch)
	return nil
}

// Else else 分支
type Else struct {
	node
	procedure *Procedure
}

func NewElse(procedure *Procedure) (*Else, error) {
	c := newClaim(KindElse)
	c.require("procedure", procedure)
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &Else{node: newNode(), procedure: procedure}, nil
}

func (e *Else) Kind() Kind            { return KindElse }
func (e *Else) Procedure() *Procedure { return e.procedure }
func (e *Else) elseBranchNode()       {}

// ElseIf else if 分支
type ElseIf struct {
	node
	ifStmt *IfStatement
}

func NewElseIf(ifStmt *IfStatement) (*ElseIf, error) {
	c := newClaim(KindElseIf)
	c.require("if", ifStmt)
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &ElseIf{node: newNode(), ifStmt: ifStmt}, nil
}

func (e *ElseIf) Kind() Kind       { return KindElseIf }
func (e *ElseIf) If() *IfStatement { return e.ifStmt }
func (e *ElseIf) elseBranchNode()  {}

// WhileStatement while 循环
type WhileStatement struct {
	node
	condition Expression
	procedure *Procedure
}

func NewWhileStatement(condition Expression, procedure *Procedure) (*WhileStatement, error) {
	c := newClaim(KindWhileStatement)
	c.require("condition", condition)
	c.require("procedure", procedure)
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &WhileStatement{node: newNode(), condition: condition, procedure: procedure}, nil
}

func (w *WhileStatement) Kind() Kind            { return KindWhileStatement }
func (w *WhileStatement) Condition() Expression { return w.condition }
func (w *WhileStatement) Procedure() *Procedure { return w.procedure }
func (w *WhileStatement) statementNode()        {}

// Program 语法树的根，保存顶层语句
type Program struct {
	node
	statements []Statement
}

func NewProgram(statements ...Statement) (*Program, error) {
	c := newClaim(KindProgram)
	for i, s := range statements {
		c.require(seqSlot("statements", i), s)
	}
	if err := c.commit(); err != nil {
		return nil, err
	}
	return &Program{node: newNode(), statements: append([]Statement(nil), statements...)}, nil
}

func (p *Program) Kind() Kind { return KindProgram }

func (p *Program) Statements() []Statement {
	return append([]Statement(nil), p.statements...)
}

func (p *Program) Append(s Statement) error {
	if err := attach(p, seqSlot("statements", len(p.statements)), s); err != nil {
		return err
	}
	p.statements = append(p.statements, s)
	return nil
}
