// Command boardgen validates declarative board definitions and generates
// their board support packages.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"boardcode-go/boardgen/board"
	"boardcode-go/boardgen/emit"
	"boardcode-go/boardgen/variant"
)

var (
	flagFile   string
	flagOut    string
	flagDryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "boardgen",
	Short: "Board support package generator",
	Long: `boardgen turns a declarative board definition (a YAML alias table plus
feature set) into a Go board support package: zero-cost renamed pin and
peripheral bindings, feature-gated by build tags, with guard files that turn
misconfigured builds into compile errors.`,
	SilenceUsage: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a board definition",
	Long: `Validate checks a board definition against the chip catalog and the
feature rules: exactly-one-variant, capability dependencies, duplicate alias
names, and pin/peripheral existence on every fitted chip. Every violation is
reported.`,
	RunE: runValidate,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a board support package",
	Long: `Generate validates a board definition and writes the generated board
package sources to the output directory.

Examples:
  boardgen generate -f osprey51.yaml -o osprey51
  boardgen generate -f osprey51.yaml --dry-run`,
	RunE: runGenerate,
}

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the chip variant catalog",
	RunE:  runVariants,
}

func init() {
	validateCmd.Flags().StringVarP(&flagFile, "file", "f", "board.yaml", "Board definition file")

	generateCmd.Flags().StringVarP(&flagFile, "file", "f", "board.yaml", "Board definition file")
	generateCmd.Flags().StringVarP(&flagOut, "out", "o", ".", "Output directory")
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "List the files that would be written")

	rootCmd.AddCommand(validateCmd, generateCmd, variantsCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	def, err := board.Load(flagFile)
	if err != nil {
		return err
	}
	if err := board.Validate(def); err != nil {
		return fmt.Errorf("%s:\n%w", flagFile, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", flagFile)
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	def, err := board.Load(flagFile)
	if err != nil {
		return err
	}
	files, err := emit.Generate(def)
	if err != nil {
		return fmt.Errorf("%s:\n%w", flagFile, err)
	}
	if flagDryRun {
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(flagOut, f.Name))
		}
		return nil
	}
	if err := os.MkdirAll(flagOut, 0o755); err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(flagOut, f.Name)
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func runVariants(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tTAG\tSERCOMS\tDMA\tUSB\tFLASH\tRAM")
	for _, v := range variant.All() {
		usb := "-"
		if v.USB {
			usb = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%dK\t%dK\n",
			v.Part, v.Tag, v.Sercoms, v.DMAChannels, usb, v.FlashKB, v.RAMKB)
	}
	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "boardgen:", err)
		os.Exit(1)
	}
}
