package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

// newProbeCmd hits the unauthenticated connectivity endpoint of a running
// server and reports whether its store is up.
func newProbeCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check a running server's store connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := http.Get(*serverURL + "/api/v1/connection")
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("probe failed: %s", resp.Status)
			}
			var body struct {
				Connected bool `json:"connected"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "connected: %v\n", body.Connected)
			return nil
		},
	}
}
