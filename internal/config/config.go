package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Mik3l24/verbose-lang/internal/i18n"
)

// FileName 配置文件名
const FileName = "verbose.toml"

// 着色模式
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ErrInvalidIndent = errors.New("dump.indent must be between 1 and 8")
	ErrInvalidColor  = errors.New("dump.color must be auto, always or never")
	ErrInvalidLang   = errors.New("cli.lang must be en or zh")
	ErrUnknownKeys   = errors.New("unknown configuration keys")
)

// Config verbose 项目配置
type Config struct {
	Dump DumpConfig `toml:"dump"`
	CLI  CLIConfig  `toml:"cli"`
}

// DumpConfig 语法树输出配置
type DumpConfig struct {
	Indent int    `toml:"indent"` // 每层缩进的空格数
	Color  string `toml:"color"`  // auto/always/never
}

// CLIConfig 命令行配置
type CLIConfig struct {
	Lang string `toml:"lang"` // en/zh，为空时按环境变量检测
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Dump: DumpConfig{
			Indent: 2,
			Color:  ColorAuto,
		},
	}
}

// FindAndLoad 从指定目录向上查找 verbose.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 verbose.toml
func FindConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}

	for {
		configPath := filepath.Join(dir, FileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，未设置的项使用默认值
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrUnknownKeys, undecoded)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Validate 检查配置项取值
func (c *Config) Validate() error {
	if c.Dump.Indent < 1 || c.Dump.Indent > 8 {
		return ErrInvalidIndent
	}
	switch c.Dump.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return ErrInvalidColor
	}
	if c.CLI.Lang != "" {
		if _, ok := i18n.ParseLanguage(c.CLI.Lang); !ok {
			return ErrInvalidLang
		}
	}
	return nil
}

// IndentUnit 返回每层缩进使用的字符串
func (c *Config) IndentUnit() string {
	return strings.Repeat(" ", c.Dump.Indent)
}
