/*
File    : numexpr/cmd/numexpr/main.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

cmd/numexpr is a small command-line shell around the engine: evaluate a
single expression, drop into an interactive REPL, or list the built-in
function table.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rverma/numexpr"
	"github.com/rverma/numexpr/repl"
)

var (
	naturalLog bool
	powRight   bool
	constsFile string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "numexpr",
		Short: "Evaluate arithmetic expressions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			numexpr.SetNaturalLog(naturalLog)
			numexpr.SetRightAssociativePow(powRight)
		},
	}
	root.PersistentFlags().BoolVar(&naturalLog, "log", false, "make log() natural log instead of base-10")
	root.PersistentFlags().BoolVar(&powRight, "pow-right", false, "make '^' right-associative")
	root.PersistentFlags().StringVar(&constsFile, "consts", "", "YAML file of name: value scalar constants to preload")

	root.AddCommand(newEvalCmd(), newReplCmd(), newBuiltinsCmd())
	return root
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a single expression and print its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols, err := loadConsts(constsFile)
			if err != nil {
				return err
			}
			tree, pos := numexpr.Compile(args[0], symbols)
			if pos != 0 {
				return fmt.Errorf("syntax error at %s", numexpr.ErrPosition(args[0], pos))
			}
			defer numexpr.Free(tree)
			fmt.Println(numexpr.Evaluate(tree))
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive expression REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols, err := loadConsts(constsFile)
			if err != nil {
				return err
			}
			repl.New("numexpr> ", versionString, symbols).Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}

func newBuiltinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the built-in functions and array aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range numexpr.Builtins() {
				fmt.Printf("%s/%d\n", b.Name, b.Arity)
			}
			return nil
		},
	}
}

const versionString = "0.1.0"
