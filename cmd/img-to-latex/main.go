// Standalone executable that prints a minimal LaTeX document embedding the
// given image by its base filename.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/osbuild/img-to-latex/pkg/texdoc"
)

var (
	osStdout io.Writer = os.Stdout
	osStderr io.Writer = os.Stderr
)

// UsageError is returned when the image path argument is missing.
type UsageError struct {
	Program string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <image_path>", e.Program)
}

func programName() string {
	if len(os.Args) == 0 {
		return "img-to-latex"
	}
	return filepath.Base(os.Args[0])
}

func cmdEmit(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &UsageError{Program: programName()}
	}
	// anything after the image path is ignored
	return texdoc.Emit(osStdout, args[0])
}

func run() error {
	logrus.SetOutput(osStderr)
	logrus.SetLevel(logrus.WarnLevel)

	var imageArgs []string
	if len(os.Args) > 1 {
		imageArgs = os.Args[1:]
	}

	rootCmd := &cobra.Command{
		Use:   "img-to-latex <image_path>",
		Short: "Print a LaTeX document that includes the given image",
		Long: `Print a LaTeX document that includes the given image

The image is referenced by its base filename only, it is never opened.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmdEmit(cmd, imageArgs)
		},
		// every token is an image path, "completion", "__complete" and
		// "-x.png" included, so cobra gets none of them to dispatch on
		DisableFlagParsing: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetArgs([]string{})
	rootCmd.SetOut(osStdout)
	rootCmd.SetErr(osStderr)

	return rootCmd.Execute()
}

// realMain reports errors from run on stderr and returns the exit status.
func realMain() int {
	if err := run(); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(osStderr, usageErr)
		} else {
			fmt.Fprintf(osStderr, "error: %s\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain())
}
