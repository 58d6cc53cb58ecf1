package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mik3l24/verbose-lang/internal/i18n"
)

const version = "0.1.0"

func main() {
	// 初始化国际化
	i18n.Init()

	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// newRootCmd 创建根命令
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "verbose",
		Short:         i18n.T(i18n.MsgRootShort),
		Long:          i18n.T(i18n.MsgRootLong),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newDumpCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T(i18n.MsgVersionShort),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printInfo(cmd.OutOrStdout(), i18n.T(i18n.MsgVersion, version))
		},
	}
}

func newDumpCmd() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump <tree-file>",
		Short: i18n.T(i18n.MsgDumpShort),
		Long:  i18n.T(i18n.MsgDumpLong),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New(i18n.T(i18n.ErrInputRequired))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.indentSet = cmd.Flags().Changed("indent")
			return runDump(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&opts.indent, "indent", "i", 2, i18n.T(i18n.MsgFlagIndent))
	fs.StringVar(&opts.color, "color", "", i18n.T(i18n.MsgFlagColor))
	fs.StringVar(&opts.configPath, "config", "", i18n.T(i18n.MsgFlagConfig))
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, i18n.T(i18n.MsgFlagVerbose))
	return cmd
}

// 辅助打印函数
func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

func printInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}
