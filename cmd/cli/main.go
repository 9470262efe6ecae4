package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "obracap-cli",
		Short: "ObraCap CLI tool",
		Long:  `A command line interface for interacting with the ObraCap ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ObraCap API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(capitalCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(recordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <account-id>",
		Short: "Show the balance summary for a funding account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/accounts/%s/summary", args[0]))
		},
	}
}

func capitalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capital",
		Short: "Show invested capital grouped by project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/capital/projects")
		},
	}
}

func listCmd() *cobra.Command {
	var accountID, projectID, kind, source, from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger movements, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := make([]string, 0, 6)
			for _, p := range []struct{ key, val string }{
				{"account_id", accountID},
				{"project_id", projectID},
				{"kind", kind},
				{"source", source},
				{"from", from},
				{"to", to},
			} {
				if p.val != "" {
					q = append(q, p.key+"="+p.val)
				}
			}
			path := "/api/v1/movements/"
			for i, param := range q {
				if i == 0 {
					path += "?" + param
				} else {
					path += "&" + param
				}
			}
			return getJSON(path)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Filter by funding account")
	cmd.Flags().StringVar(&projectID, "project", "", "Filter by project")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by movement kind (income, expense, adjustment)")
	cmd.Flags().StringVar(&source, "source", "", "Filter by source (manual, payroll, supply)")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, inclusive)")

	return cmd
}

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record ledger movements",
	}

	cmd.AddCommand(recordExpenseCmd())
	cmd.AddCommand(recordFundingCmd())
	cmd.AddCommand(recordManualCmd())

	return cmd
}

func recordExpenseCmd() *cobra.Command {
	var accountID, projectID, amount, date, description string

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record an expense against an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/movements/expense", map[string]string{
				"account_id":  accountID,
				"project_id":  projectID,
				"amount":      amount,
				"date":        date,
				"description": description,
			})
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Funding account id")
	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&amount, "amount", "", "Expense amount")
	cmd.Flags().StringVar(&date, "date", "", "Movement date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func recordFundingCmd() *cobra.Command {
	var projectID, amount, date, description string

	cmd := &cobra.Command{
		Use:   "funding <account-id>",
		Short: "Record the initial funding of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(fmt.Sprintf("/api/v1/accounts/%s/funding", args[0]), map[string]string{
				"project_id":  projectID,
				"amount":      amount,
				"date":        date,
				"description": description,
			})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&amount, "amount", "", "Funding amount")
	cmd.Flags().StringVar(&date, "date", "", "Movement date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func recordManualCmd() *cobra.Command {
	var accountID, projectID, kind, amount, date, description string

	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Record a manually supplied movement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/movements/", map[string]string{
				"account_id":  accountID,
				"project_id":  projectID,
				"kind":        kind,
				"amount":      amount,
				"date":        date,
				"description": description,
			})
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Funding account id")
	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&kind, "kind", "income", "Movement kind (income, expense, adjustment)")
	cmd.Flags().StringVar(&amount, "amount", "", "Movement amount")
	cmd.Flags().StringVar(&date, "date", "", "Movement date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload map[string]string) error {
	body := make(map[string]string, len(payload))
	for k, v := range payload {
		if v != "" {
			body[k] = v
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return nil
	}

	fmt.Println(pretty.String())
	return nil
}
