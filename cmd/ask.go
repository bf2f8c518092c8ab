package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyansh/neetdost/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the NEET-Dost tutor a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		var image []byte
		if path, _ := cmd.Flags().GetString("image"); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			image = data
		}

		provider, s, err := setup(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		responder := tutor.New(provider, tutor.DefaultConfig())
		resp, err := responder.Ask(cmd.Context(), nil, question, image)
		if err != nil {
			if cause := errors.Unwrap(err); cause != nil {
				fmt.Fprintf(os.Stderr, "diagnostic: %v\n", cause)
			}
			return err
		}

		fmt.Println(resp.Text)

		if len(resp.Sources) > 0 {
			fmt.Println("\nSources:")
			for _, src := range resp.Sources {
				fmt.Printf("  - %s (%s)\n", src.Title, src.URI)
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("image", "", "Path to an image of the problem to attach")
}
