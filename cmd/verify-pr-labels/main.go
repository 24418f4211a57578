package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	verifier "github.com/mergegate/verify-pr-labels"
	"github.com/mergegate/verify-pr-labels/env"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Exiting with an error code")
		os.Exit(1)
	}
	fmt.Println("Exiting without an error code")
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "verify-pr-labels <token> <valid-labels> <invalid-labels> <pr-number> <reserved>",
		Short:        "Verify that a pull request carries an acceptable combination of labels",
		Args:         cobra.ExactArgs(5),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := verifier.SourceFromArgs(args)
			if err != nil {
				return err
			}
			fmt.Printf("Valid labels are: %v\n", source.ValidLabels)
			fmt.Printf("Invalid labels are: %v\n", source.InvalidLabels)

			run, err := env.Read()
			if err != nil {
				return err
			}

			client, err := verifier.NewGithubClient(cmd.Context(), source, run.Repository)
			if err != nil {
				return err
			}

			return verifier.Verify(verifier.VerifyRequest{Source: *source, Run: run}, client)
		},
	}
}
