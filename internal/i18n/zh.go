package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Tree file errors
	ErrLoadAt:   "第 %d 行第 %d 列: %v",
	ErrLoadFile: "%s: %v",

	// CLI - Usage and help
	MsgRootShort:    "verbose 语言前端工具",
	MsgRootLong:     "查看 verbose 语法树的工具。",
	MsgDumpShort:    "打印树描述文件中的语法树",
	MsgDumpLong:     "从 YAML 或 JSON 树描述文件加载语法树，并以缩进形式打印。\n文件名为 \"-\" 时读取标准输入。",
	MsgVersionShort: "打印版本信息",
	MsgVersion:      "verbose 版本 %s",

	// CLI - Flags
	MsgFlagIndent:  "每层缩进的空格数（覆盖 verbose.toml）",
	MsgFlagColor:   "类型名着色：auto、always 或 never",
	MsgFlagConfig:  "verbose.toml 路径（默认从输入文件所在目录向上查找）",
	MsgFlagVerbose: "详细输出",

	// CLI - Errors
	ErrInputRequired:    "错误: 需要指定树描述文件",
	ErrCannotGetCwd:     "错误: 无法获取当前目录: %v",
	ErrCannotLoadConfig: "无法加载配置: %v",
	ErrCannotLoadTree:   "无法加载语法树: %v",
	ErrDumpFailed:       "无法输出语法树: %v",
	ErrInvalidColor:     "无效的着色模式 %q，可选 auto、always 或 never",

	// CLI - Info messages
	MsgUsingConfig: "使用配置: %s",
	MsgNoConfig:    "未找到 verbose.toml，使用默认配置",
	MsgLoading:     "加载: %s",
	MsgLoaded:      "已加载 %d 个节点",
}
