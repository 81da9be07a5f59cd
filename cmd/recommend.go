package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	recommendLocation string
	recommendUser     string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the food recommendation pipeline once and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		food, _ := buildPipelines()
		st := food.Run(cmd.Context(), recommendUser, recommendLocation)

		fmt.Printf("Location: %s\n", st.Location)
		fmt.Printf("Weather:  %s, %d°C\n", st.Weather.Description, st.Weather.Temperature)
		if len(st.Festivals) > 0 {
			names := make([]string, 0, len(st.Festivals))
			for _, f := range st.Festivals {
				names = append(names, f.Name)
			}
			fmt.Printf("Festivals: %s\n", strings.Join(names, ", "))
		}

		fmt.Println("\nTop recommendations:")
		for i, rec := range st.Final {
			fmt.Printf("\n%d. %s (%s)\n", i+1, rec.DishName, rec.Cuisine)
			fmt.Printf("   %s\n", rec.Explanation)
			fmt.Printf("   Confidence: %.0f%%  Price: %s  Tags: %s\n",
				rec.Confidence*100, rec.PriceRange, strings.Join(rec.Tags, ", "))
		}

		if len(st.Notices) > 0 {
			fmt.Printf("\nNotices: %s\n", strings.Join(st.Notices, ", "))
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendLocation, "location", "", "location to recommend for (default from config)")
	recommendCmd.Flags().StringVar(&recommendUser, "user", "cli_user", "user id attached to the run")
	rootCmd.AddCommand(recommendCmd)
}
