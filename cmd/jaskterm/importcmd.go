package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/jaskterm/internal/logging"
	"github.com/jask/jaskterm/internal/service"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load instruments into the local security master.",
}

var importSECCmd = &cobra.Command{
	Use:   "sec <company_tickers.json>",
	Short: "Import the SEC EDGAR company ticker list.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		e, err := openEnv(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer e.Close()

		svc := &service.ImportService{DB: e.db}
		res, err := svc.ImportSECTickers(cmd.Context(), f)
		if err != nil {
			return err
		}
		log := e.log.WithComponent("import")
		for _, rowErr := range res.Errors {
			log.WithError(rowErr).Warn("row skipped")
		}
		log.WithFields(logging.Fields{"imported": res.Imported, "skipped": res.Skipped, "failed": len(res.Errors)}).Info("sec import finished")
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d, skipped %d, failed %d\n", res.Imported, res.Skipped, len(res.Errors))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importSECCmd)
}
