// Command minimap prints a braille minimap of a text file or of stdin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ZNielsen/code-minimap"
	"github.com/ZNielsen/code-minimap/internal/consts"
	"github.com/ZNielsen/code-minimap/internal/errors"
	"github.com/ZNielsen/code-minimap/internal/logx"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   consts.LibraryName + ` [flags] [file]`,
	Short: `print a braille minimap of a text file`,
	Long: `Print a braille minimap of a text file.

Every output line covers four (vertically scaled) input lines, every braille
character two (horizontally scaled) columns. Dots mark where non-whitespace
content is. Without a file argument or with "-" the input is read from stdin.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, minimapFunc(cmd, args))
	},
}

func init() {
	rootCmd.Version = version + ` (` + commit + `, ` + date + `)`
	rootCmd.Flags().Float64VarP(&hscaleFlag, `horizontal-scale`, `H`, 1, `horizontal scale factor`)
	rootCmd.Flags().Float64VarP(&vscaleFlag, `vertical-scale`, `V`, 1, `vertical scale factor`)
	rootCmd.Flags().IntVar(&paddingFlag, `padding`, 0, `pad every line with spaces to this width`)
	rootCmd.Flags().StringVar(&encodingFlag, `encoding`, minimap.UTF8.String(), `input encoding (utf8, utf8lossy, utf16)`)
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	hscaleFlag   float64
	vscaleFlag   float64
	paddingFlag  int
	encodingFlag string
	debugFlag    bool
	silentFlag   bool
	logFileFlag  string
)

func run(cmd *cobra.Command, fn func(logger *slog.Logger) error) error {
	var err error
	if fn == nil {
		err = errors.New(consts.ErrNilParam)
	} else {
		var (
			logger   *slog.Logger
			closeLog func() error
		)
		logger, closeLog, err = openLogFile()
		if err == nil {
			defer closeLog()
			err = fn(logger)
			logx.IsErr(err, logx.Prov(logger), slog.LevelError)
		}
	}
	if err != nil && !silentFlag {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "\n"+stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), `Error: `+err.Error())
		}
	}
	return err
}

// openLogFile returns a nil logger when no log file was requested.
func openLogFile() (*slog.Logger, func() error, error) {
	if len(logFileFlag) == 0 {
		return nil, func() error { return nil }, nil
	}
	logFile, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.New(err)
	}
	lvl := slog.LevelInfo
	if debugFlag {
		lvl = slog.LevelDebug
	}
	h := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: lvl, AddSource: debugFlag})
	return slog.New(h), logFile.Close, nil
}

func minimapFunc(cmd *cobra.Command, args []string) func(*slog.Logger) error {
	return func(logger *slog.Logger) error {
		enc, err := minimap.ParseEncoding(encodingFlag)
		if err != nil {
			return err
		}
		opts := minimap.Options{
			minimap.SetHScale(hscaleFlag),
			minimap.SetVScale(vscaleFlag),
			minimap.SetEncoding(enc),
		}
		if logger != nil {
			opts = append(opts, minimap.SetSLogger(logger.Handler(), true))
		}
		if cmd.Flags().Changed(`padding`) {
			opts = append(opts, minimap.SetPadding(paddingFlag))
		}
		m, err := minimap.New(opts...)
		if err != nil {
			return err
		}
		inputName, input, err := openInput(cmd, args)
		if err != nil {
			return err
		}
		defer input.Close()
		return logx.TimeIt(func() error {
			return m.Write(cmd.OutOrStdout(), input)
		}, `rendered minimap`, m, `input`, inputName)
	}
}

func openInput(cmd *cobra.Command, args []string) (string, io.ReadCloser, error) {
	if len(args) == 0 || args[0] == `-` {
		stdin := cmd.InOrStdin()
		if f, ok := stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return ``, nil, errors.New(consts.ErrNoInput)
		}
		return `stdin`, io.NopCloser(stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return ``, nil, errors.New(err)
	}
	return args[0], f, nil
}
