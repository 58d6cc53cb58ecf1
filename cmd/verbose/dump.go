package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Mik3l24/verbose-lang/internal/ast"
	"github.com/Mik3l24/verbose-lang/internal/config"
	"github.com/Mik3l24/verbose-lang/internal/dump"
	"github.com/Mik3l24/verbose-lang/internal/i18n"
	"github.com/Mik3l24/verbose-lang/internal/treefile"
)

// dumpOptions dump 命令的参数
type dumpOptions struct {
	indent     int
	indentSet  bool
	color      string
	configPath string
	verbose    bool
}

// runDump 加载树描述文件并输出语法树
func runDump(stdout, stderr io.Writer, input string, opts *dumpOptions) error {
	cfg, err := loadConfig(stderr, input, opts)
	if err != nil {
		return &configError{err: err}
	}

	if cfg.CLI.Lang != "" {
		if lang, ok := i18n.ParseLanguage(cfg.CLI.Lang); ok {
			i18n.SetLanguage(lang)
		}
	}

	// 命令行参数覆盖配置文件
	if opts.indentSet {
		cfg.Dump.Indent = opts.indent
	}
	if opts.color != "" {
		switch opts.color {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			cfg.Dump.Color = opts.color
		default:
			return errors.New(i18n.T(i18n.ErrInvalidColor, opts.color))
		}
	}
	if err := cfg.Validate(); err != nil {
		return &configError{err: err}
	}

	if opts.verbose {
		printInfo(stderr, i18n.T(i18n.MsgLoading, input))
	}

	prog, err := treefile.LoadFile(input)
	if err != nil {
		return &loadError{err: err}
	}

	if opts.verbose {
		printInfo(stderr, i18n.T(i18n.MsgLoaded, ast.Count(prog)))
	}

	p := dump.New(
		dump.WithIndent(cfg.IndentUnit()),
		dump.WithKindStyle(kindStyle(stdout, cfg.Dump.Color)),
	)
	if err := p.Display(stdout, prog, 0); err != nil {
		return &dumpError{err: err}
	}
	return nil
}

// loadConfig 优先使用 --config，否则从输入文件所在目录向上查找 verbose.toml
func loadConfig(stderr io.Writer, input string, opts *dumpOptions) (*config.Config, error) {
	if opts.configPath != "" {
		if opts.verbose {
			printInfo(stderr, i18n.T(i18n.MsgUsingConfig, opts.configPath))
		}
		return config.Load(opts.configPath)
	}

	startDir := filepath.Dir(input)
	if input == "-" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.New(i18n.T(i18n.ErrCannotGetCwd, err))
		}
		startDir = cwd
	}

	cfg, configPath, err := config.FindAndLoad(startDir)
	if err != nil {
		return nil, err
	}

	if opts.verbose {
		if configPath != "" {
			printInfo(stderr, i18n.T(i18n.MsgUsingConfig, configPath))
		} else {
			printInfo(stderr, i18n.T(i18n.MsgNoConfig))
		}
	}
	return cfg, nil
}

// kindStyle 返回类型名的着色函数；never 时不着色
func kindStyle(out io.Writer, mode string) func(string) string {
	if mode == config.ColorNever {
		return nil
	}

	r := lipgloss.NewRenderer(out)
	if mode == config.ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	style := r.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	return func(kind string) string {
		return style.Render(kind)
	}
}

type configError struct {
	err error
}

func (e *configError) Error() string {
	return i18n.T(i18n.ErrCannotLoadConfig, e.err)
}

func (e *configError) Unwrap() error { return e.err }

type loadError struct {
	err error
}

func (e *loadError) Error() string {
	return i18n.T(i18n.ErrCannotLoadTree, e.err)
}

func (e *loadError) Unwrap() error { return e.err }

type dumpError struct {
	err error
}

func (e *dumpError) Error() string {
	return i18n.T(i18n.ErrDumpFailed, e.err)
}

func (e *dumpError) Unwrap() error { return e.err }
