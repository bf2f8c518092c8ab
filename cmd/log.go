package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyansh/neetdost/internal/llm"
	"github.com/priyansh/neetdost/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect recorded LLM requests",
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		entries, err := s.RequestLog().List(cmd.Context(), store.QueryOpts{
			Limit:   limit,
			Purpose: purpose,
		})
		if err != nil {
			return fmt.Errorf("query request log: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %-8s  %s\n",
			"SEQ", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 110))

		for _, e := range entries {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %-8s  %s\n",
				e.Seq,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				entryCost(e),
				ok,
			)
		}
		return nil
	},
}

var logViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "View full request/response for a recorded LLM request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sequence number %q: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		e, err := s.RequestLog().Get(cmd.Context(), seq)
		if err != nil {
			return err
		}

		fmt.Printf("Seq:        %d\n", e.Seq)
		fmt.Printf("Request ID: %s\n", e.RequestID)
		fmt.Printf("Timestamp:  %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Purpose:    %s\n", e.Purpose)
		fmt.Printf("Model:      %s\n", e.Model)
		fmt.Printf("Tokens:     %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Cost:       %s\n", entryCost(*e))
		fmt.Printf("Latency:    %dms\n", e.LatencyMs)
		fmt.Printf("Success:    %t\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:      %s\n", e.ErrorMessage)
		}
		fmt.Printf("\n--- Request ---\n%s\n", e.RequestBody)
		fmt.Printf("\n--- Response ---\n%s\n", e.ResponseBody)
		return nil
	},
}

// entryCost estimates the USD cost of a logged request, or "?" when the
// model has no pricing entry.
func entryCost(e store.Entry) string {
	cost := llm.LookupCost(e.Model)
	if cost == nil {
		return "?"
	}
	return formatCost(cost.Cost(e.InputTokens, e.OutputTokens))
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	logListCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
	logListCmd.Flags().String("purpose", "", "Filter by purpose label (question-gen, tutor)")

	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logViewCmd)
}
