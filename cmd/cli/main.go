package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
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
		Use:   "finbooks-cli",
		Short: "FinBooks CLI tool",
		Long:  `A command line interface for interacting with the FinBooks API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinBooks API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(statementCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(assetsCmd())
	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(projectsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func statementCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Derived statement operations",
	}
	cmd.PersistentFlags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")

	cmd.AddCommand(&cobra.Command{
		Use:   "balance-sheet",
		Short: "Derive the balance sheet",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/statements/balance-sheet" + periodQuery(from, to))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "cash-flow",
		Short: "Derive the cash flow statement",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/statements/cash-flow" + periodQuery(from, to))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "trial-balance",
		Short: "Derive the trial balance",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/statements/trial-balance" + periodQuery(from, to))
		},
	})

	return cmd
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Check ledger-versus-register drift",
		Run: func(cmd *cobra.Command, args []string) {
			runReconciliation()
		},
	}
}

func assetsCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Fixed-asset register operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered assets",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/assets")
		},
	})

	depreciate := &cobra.Command{
		Use:   "depreciate",
		Short: "Recalculate straight-line depreciation",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/assets/depreciation"
			if asOf != "" {
				path += "?as_of=" + url.QueryEscape(asOf)
			}
			postAndPrint(path)
		},
	}
	depreciate.Flags().StringVar(&asOf, "as-of", "", "Depreciation date (YYYY-MM-DD)")
	cmd.AddCommand(depreciate)

	return cmd
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart-of-accounts operations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/accounts")
		},
	})
	return cmd
}

func projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project and WIP operations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List projects",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/projects")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "wip",
		Short: "Show the WIP valuation",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/projects/wip")
		},
	})
	return cmd
}

// periodQuery builds the optional from/to query string.
func periodQuery(from, to string) string {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func fetchAndPrint(path string) {
	body := request(http.MethodGet, path)
	printRaw(body)
}

func postAndPrint(path string) {
	body := request(http.MethodPost, path)
	printRaw(body)
}

func runReconciliation() {
	body := request(http.MethodGet, "/api/v1/reconciliation")

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if consistent, ok := result["consistent"].(bool); ok && consistent {
		fmt.Println("Reconciliation PASSED")
	} else {
		fmt.Println("Reconciliation FAILED: drift detected")
	}
	printJSON(result["results"])
}

func request(method, path string) []byte {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(body), 500))
		os.Exit(1)
	}

	return body
}

func printRaw(body []byte) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	printJSON(v)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
