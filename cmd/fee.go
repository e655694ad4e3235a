package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// admin command draining the protocol-fee accumulator
var collectFeeCmd = &cobra.Command{
	Use:   "collect-fee",
	Short: "collect the stored protocol fee to a recipient",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		caller, _ := cmd.Flags().GetString("caller")
		recipient, _ := cmd.Flags().GetString("recipient")

		service := providePoolService(database)
		out, err := service.CollectProtocolFee(ctx, caller, recipient)
		if err != nil {
			cmd.PrintErrln("collect protocol fee error:", err)
			return
		}

		logrus.Infoln("collected", out.String())
	},
}

func init() {
	rootCmd.AddCommand(collectFeeCmd)
	collectFeeCmd.Flags().String("caller", "", "admin identity")
	collectFeeCmd.Flags().String("recipient", "", "fee recipient identity")
}
