package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/telesynth/telesynth-cli/internal/refdata"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the reference catalogs driving generation",
	Long:  `Prints the country weights, application catalog and release tables the generator samples from.`,
	Run:   runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) {
	fmt.Println("Countries:")
	for _, c := range refdata.Countries {
		fmt.Printf("  %-4s weight=%.2f locales=%s\n",
			c.Value, c.Weight, localeList(c.Value))
	}

	fmt.Println("\nApps:")
	for _, app := range refdata.Apps {
		fmt.Printf("  %-18s %-22s %-9s countries=%s platforms=%s\n",
			app.ID, app.Name, app.Audience,
			strings.Join(app.Countries, ","), strings.Join(app.Platforms, ","))
	}

	fmt.Println("\nRelease tables (prod):")
	for _, app := range refdata.Apps {
		for _, platform := range app.Platforms {
			versions := refdata.VersionsFor(app.ID, "prod", platform)
			names := make([]string, 0, len(versions))
			for _, v := range versions {
				names = append(names, fmt.Sprintf("%s (%dd ago)", v.Version, v.ReleaseDaysAgo))
			}
			fmt.Printf("  %-18s %-8s %s\n", app.ID, platform, strings.Join(names, ", "))
		}
	}
}

func localeList(country string) string {
	locales := refdata.Locales[country]
	names := make([]string, 0, len(locales))
	for _, l := range locales {
		names = append(names, l.Value)
	}
	return strings.Join(names, ",")
}
