package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zurustar/questscript/pkg/asm"
	"github.com/zurustar/questscript/pkg/disasm"
	"github.com/zurustar/questscript/pkg/logger"
	"github.com/zurustar/questscript/pkg/version"
)

// rootOpts 全サブコマンド共通のオプション
type rootOpts struct {
	LogLevel string
}

// disassembleOpts disassembleサブコマンドのオプション
type disassembleOpts struct {
	Version    string
	Language   uint8
	Reassembly bool
	QEditNames bool
	Output     string
}

type assembleOpts struct {
	IncludeDir string
	Output     string
}

type episodeOpts struct {
	Version string
}

// NewRootCommand コマンドツリーを構築する
func NewRootCommand() *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:           "questscript",
		Short:         "Disassemble and assemble quest scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.InitLogger(opts.LogLevel)
		},
	}
	defaultLevel := "info"
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		defaultLevel = env
	}
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", defaultLevel, "ログレベル (debug, info, warn, error)")

	root.AddCommand(newDisassembleCommand())
	root.AddCommand(newAssembleCommand())
	root.AddCommand(newEpisodeCommand())
	return root
}

// Execute コマンドを実行し、エラーがあればstderrに出力する
func Execute(args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newDisassembleCommand() *cobra.Command {
	opts := &disassembleOpts{}

	cmd := &cobra.Command{
		Use:     "disassemble [options] input-file",
		Aliases: []string{"dasm"},
		Short:   "Disassemble a compiled quest script to text",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := version.Parse(opts.Version)
			if err != nil {
				return err
			}
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			text, err := disasm.Disassemble(data, disasm.Options{
				Build:            b,
				OverrideLanguage: opts.Language,
				ReassemblyMode:   opts.Reassembly,
				UseQEditNames:    opts.QEditNames,
			})
			if err != nil {
				return err
			}
			return writeOutput(opts.Output, []byte(text))
		},
	}

	cmd.Flags().StringVarP(&opts.Version, "version", "v", "", "ゲームバージョン (dc-nte, dc-v1, dc-v2, pc-v2, gc-nte, gc-v3, gc-ep3, xb-v3, bb-v4, ...)")
	cmd.Flags().Uint8VarP(&opts.Language, "language", "l", 0xFF, "言語番号でヘッダの言語フィールドを上書きする")
	cmd.Flags().BoolVarP(&opts.Reassembly, "reassembly", "r", false, "再アセンブル可能な形式で出力する")
	cmd.Flags().BoolVar(&opts.QEditNames, "qedit-names", false, "オペコードにqedit互換の名前を使う")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "出力ファイル (省略時はstdout)")
	cmd.MarkFlagRequired("version")
	return cmd
}

func newAssembleCommand() *cobra.Command {
	opts := &assembleOpts{}

	cmd := &cobra.Command{
		Use:     "assemble [options] input-file",
		Aliases: []string{"asm"},
		Short:   "Assemble a quest script source file to a compiled quest",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args[0])
			if err != nil {
				return err
			}
			if args[0] == "-" && opts.Output == "" {
				return fmt.Errorf("an output file must be specified when reading from stdin")
			}
			includeDir := opts.IncludeDir
			if includeDir == "" && args[0] != "-" {
				includeDir = filepath.Dir(args[0])
			}
			result, err := asm.Assemble(string(source), asm.Options{IncludeDir: includeDir})
			if err != nil {
				return err
			}
			output := opts.Output
			if output == "" {
				output = replaceExtension(args[0], ".bin")
			}
			logger.GetLogger().Info("Assembled quest script",
				"quest_number", result.Meta.QuestNumber,
				"size", len(result.Data),
				"output", output)
			return os.WriteFile(output, result.Data, 0644)
		},
	}

	cmd.Flags().StringVar(&opts.IncludeDir, "include-dir", "", ".include_binで参照するファイルの検索ディレクトリ (省略時は入力ファイルのディレクトリ)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "出力ファイル (省略時は入力ファイル名の拡張子を.binに変える)")
	return cmd
}

func newEpisodeCommand() *cobra.Command {
	opts := &episodeOpts{}

	cmd := &cobra.Command{
		Use:   "episode [options] input-file",
		Short: "Determine which episode a compiled quest belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := version.Parse(opts.Version)
			if err != nil {
				return err
			}
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			ep, err := disasm.FindEpisode(data, b)
			if err != nil {
				return err
			}
			fmt.Println(ep)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Version, "version", "v", "", "ゲームバージョン")
	cmd.MarkFlagRequired("version")
	return cmd
}

// readInput reads the named file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func replaceExtension(path, ext string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ext
}
