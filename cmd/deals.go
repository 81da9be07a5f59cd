package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platewise/platewise/internal/deals"
)

var dealsCuisine string

var dealsCmd = &cobra.Command{
	Use:   "deals",
	Short: "Run the deal pipeline once and print ranked deals",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, deal := buildPipelines()
		st := deal.Run(cmd.Context(), deals.Request{Cuisine: dealsCuisine})

		if len(st.Final) == 0 {
			fmt.Println("No deals available at this time.")
			return nil
		}

		fmt.Println("Smart deal recommendations:")
		for i, d := range st.Final {
			if i == 5 {
				break
			}
			fmt.Printf("\n%d. %s\n", i+1, d.Restaurant)
			fmt.Printf("   %s\n", d.Description)
			if d.OriginalPrice > 0 {
				fmt.Printf("   Price: ₹%.0f (was ₹%.0f)\n", d.DiscountedPrice, d.OriginalPrice)
			}
			fmt.Printf("   Urgency: %s\n", d.Urgency)
			if d.Rationale != "" {
				fmt.Printf("   Reason: %s\n", d.Rationale)
			}
		}

		if len(st.Insights.Marketing) > 0 {
			fmt.Println("\nMarketing ideas:")
			for i, idea := range st.Insights.Marketing {
				if i == 3 {
					break
				}
				fmt.Printf("- %s\n", idea)
			}
		}
		return nil
	},
}

func init() {
	dealsCmd.Flags().StringVar(&dealsCuisine, "cuisine", "", "filter deals to an exact cuisine match")
	rootCmd.AddCommand(dealsCmd)
}
