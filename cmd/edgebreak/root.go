// Package main implements the edgebreak command-line front end:
// "compress" and "decompress" subcommands over the OBJ-like container
// format, with -i/-o/-v flags bound through viper so they may also come
// from the EDGEBREAK_* environment.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exit codes, per the CLI's external interface contract.
const (
	exitOK          = 0
	exitUsageError  = 1
	exitIOError     = 2
	exitCodecError  = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	v := viper.New()
	v.SetEnvPrefix("EDGEBREAK")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "edgebreak",
		Short:         "Lossless Edgebreaker connectivity codec for triangle meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("input", "i", "", "input path (default stdin)")
	root.PersistentFlags().StringP("output", "o", "", "output path (default stdout)")
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	_ = v.BindPFlag("input", root.PersistentFlags().Lookup("input"))
	_ = v.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newCompressCmd(v))
	root.AddCommand(newDecompressCmd(v))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "edgebreak:", err)
		return codeFor(err)
	}
	return exitOK
}
