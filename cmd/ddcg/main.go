package main

import (
	"fmt"
	"os"

	"github.com/oisee/ddcg/pkg/dialect"
	"github.com/oisee/ddcg/pkg/ddcg"
	"github.com/oisee/ddcg/pkg/sexpr"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ddcg",
		Short: "Destination-driven code generator — s-expression to Z80/65816 assembly",
	}

	var dialectName string
	var output string
	var verbose bool

	buildCmd := &cobra.Command{
		Use:   "build <path>",
		Short: "Compile a source file to an assembly listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			d, err := dialect.ByName(dialectName)
			if err != nil {
				return err
			}

			forms, err := sexpr.Read(string(src))
			if err != nil {
				return err
			}

			if verbose {
				fmt.Fprintf(os.Stderr, "ddcg: %d top-level form(s), dialect %s\n", len(forms), d.Name)
			}

			listing, err := ddcg.Compile(d, forms)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(listing)
				return nil
			}
			return os.WriteFile(output, []byte(listing), 0o644)
		},
	}
	buildCmd.Flags().StringVar(&dialectName, "dialect", "z80", "Target dialect: z80 or 65816")
	buildCmd.Flags().StringVar(&output, "out", "", "Output file path (default: stdout)")
	buildCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Echo compilation progress to stderr")

	dialectCmd := &cobra.Command{
		Use:   "dialect",
		Short: "List supported target dialects and their registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range []*dialect.Dialect{&dialect.Z80Dialect, &dialect.W65816Dialect} {
				fmt.Printf("%-6s canonical=%-3s secondary=%-3s\n", d.Name, d.RegName(d.Canonical), d.RegName(d.Secondary))
			}
			return nil
		},
	}

	rootCmd.AddCommand(buildCmd, dialectCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ddcg: %v\n", err)
		os.Exit(1)
	}
}
