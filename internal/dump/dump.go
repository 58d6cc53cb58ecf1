// Package dump 把语法树输出为缩进文本，供调试时查看解析结果。
//
// 每个节点先输出类型名，再按声明顺序输出字段（name: value）和子节点位置。
// 存在的子节点在下一层缩进里递归输出；缺省的可选子节点输出 "name: none"。
// 输出只用于人工查看，不能读回。
package dump

import (
	"errors"
	"io"
	"strings"

	"github.com/Mik3l24/verbose-lang/internal/ast"
)

// DefaultIndent 默认缩进单位
const DefaultIndent = "  "

const (
	absent  = "none"
	missing = "<missing>"
)

var (
	ErrNilNode        = errors.New("dump: nil node")
	ErrNegativeIndent = errors.New("dump: negative indent")
)

// Printer 语法树打印器，零值不可用，请用 New 创建
type Printer struct {
	indent    string
	kindStyle func(string) string
}

// Option 打印选项
type Option func(*Printer)

// WithIndent 设置每层缩进使用的字符串
func WithIndent(unit string) Option {
	return func(p *Printer) {
		p.indent = unit
	}
}

// WithKindStyle 设置类型名的修饰函数，例如终端着色。修饰不影响缩进和行数。
func WithKindStyle(style func(string) string) Option {
	return func(p *Printer) {
		p.kindStyle = style
	}
}

// New 创建打印器
func New(opts ...Option) *Printer {
	p := &Printer{indent: DefaultIndent}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultPrinter = New()

// Display 用默认选项把以 n 为根的子树写到 w，根节点位于 indent 层
func Display(w io.Writer, n ast.Node, indent int) error {
	return defaultPrinter.Display(w, n, indent)
}

// String 返回子树在第 0 层的输出。n 为 nil 时返回空串；需要区分错误时用 Display。
func String(n ast.Node) string {
	var sb strings.Builder
	if err := Display(&sb, n, 0); err != nil {
		return ""
	}
	return sb.String()
}

// Display 把以 n 为根的子树写到 w。
// 写入失败时停止输出并返回第一个错误。树本身不会被修改。
func (p *Printer) Display(w io.Writer, n ast.Node, indent int) error {
	if indent < 0 {
		return ErrNegativeIndent
	}
	if ast.IsNil(n) {
		return ErrNilNode
	}
	lw := &lineWriter{w: w, unit: p.indent}
	p.display(lw, n, indent)
	return lw.err
}

func (p *Printer) display(w *lineWriter, n ast.Node, depth int) {
	layout := ast.Describe(n)
	w.line(depth, p.kindName(layout.Kind))

	for _, f := range layout.Fields {
		w.line(depth, f.Name+": "+f.Value)
	}

	for _, slot := range layout.Slots {
		if slot.Mode == ast.SlotSequence {
			w.line(depth, slot.Name+":")
			for _, child := range slot.Children {
				if child == nil {
					w.line(depth+1, missing)
					continue
				}
				p.display(w, child, depth+1)
			}
			continue
		}

		if slot.Child == nil {
			// 只有绕过构造函数得到的节点才会缺必填子节点
			if slot.Mode == ast.SlotRequired {
				w.line(depth, slot.Name+": "+missing)
			} else {
				w.line(depth, slot.Name+": "+absent)
			}
			continue
		}
		w.line(depth, slot.Name+":")
		p.display(w, slot.Child, depth+1)
	}
}

func (p *Printer) kindName(k ast.Kind) string {
	if p.kindStyle != nil {
		return p.kindStyle(k.String())
	}
	return k.String()
}

// lineWriter 逐行写出，记住第一个写入错误
type lineWriter struct {
	w    io.Writer
	unit string
	err  error
}

func (lw *lineWriter) line(depth int, text string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, strings.Repeat(lw.unit, depth)+text+"\n")
}
