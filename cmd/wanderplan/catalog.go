// Catalog commands: browse experiences and add location entries.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/internal/sqlite"
	"github.com/wanderplan/wanderplan/pkg/catalog"
)

var (
	catalogCategory string
	catalogPage     int
	catalogLimit    int

	locationName     string
	locationAddress  string
	locationDuration string
	locationPrice    float64
	locationLat      float64
	locationLng      float64
	locationPhotos   []string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the experience catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "catalog:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		ctx := context.Background()
		merger, err := restoreMerger(ctx, backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "catalog:", err)
			os.Exit(exitSysError)
		}

		lister, err := catalogLister(backend)
		if err != nil {
			fmt.Fprintln(os.Stderr, "catalog:", err)
			os.Exit(exitSysError)
		}

		merged := merger.MergeFetch(ctx, lister, catalog.ListOptions{
			Category: catalogCategory,
			Page:     catalogPage,
			Limit:    catalogLimit,
		})

		if flagJSON {
			return printJSON(merged)
		}
		for _, exp := range merged {
			marker := " "
			if exp.IsLocation {
				marker = "*"
			}
			fmt.Printf("%s %-36s %-28s %-12s %8.2f  %s\n",
				marker, exp.ID, exp.Name, exp.Duration, exp.Price, exp.Category)
		}
		return nil
	},
}

var catalogAddLocationCmd = &cobra.Command{
	Use:   "add-location",
	Short: "Add a location entry to the catalog",
	Long: `Add a user location entry to the catalog. Location entries are kept
locally and listed ahead of fetched catalog entries; adding the same
address twice replaces the earlier entry in listings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		merger := catalog.NewMerger()
		exp, err := merger.AddLocation(catalog.LocationInput{
			Name:      locationName,
			Address:   locationAddress,
			Duration:  locationDuration,
			Price:     locationPrice,
			Lat:       locationLat,
			Lng:       locationLng,
			PhotoURLs: locationPhotos,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "add-location:", err)
			os.Exit(exitUserError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add-location:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		experiences, err := backend.Experiences()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add-location:", err)
			os.Exit(exitSysError)
		}

		id, err := experiences.Add(context.Background(), exp)
		if err != nil {
			fmt.Fprintln(os.Stderr, "add-location:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			exp.ID = id
			return printJSON(exp)
		}
		fmt.Printf("Added location %s: %s\n", exp.Name, id)
		return nil
	},
}

// restoreMerger rebuilds the merge layer from the locally stored
// location entries so they survive across CLI invocations.
func restoreMerger(ctx context.Context, backend *sqlite.Backend) (*catalog.Merger, error) {
	experiences, err := backend.Experiences()
	if err != nil {
		return nil, err
	}
	stored, err := experiences.ListUserLocations(ctx)
	if err != nil {
		return nil, err
	}

	merger := catalog.NewMerger()
	for _, exp := range stored {
		input := catalog.LocationInput{
			Name:      exp.Name,
			Duration:  exp.Duration,
			Price:     exp.Price,
			PhotoURLs: exp.Media.Images,
		}
		if exp.Location != nil {
			input.Address = exp.Location.Address
			input.Lat = exp.Location.Lat
			input.Lng = exp.Location.Lng
			input.PlaceRef = exp.Location.PlaceRef
		}
		if _, err := merger.AddLocation(input); err != nil {
			return nil, fmt.Errorf("restore location %q: %w", exp.Name, err)
		}
	}
	return merger, nil
}

// catalogLister returns the remote catalog client when catalog_url is
// configured, or the local store otherwise.
func catalogLister(backend *sqlite.Backend) (catalog.Lister, error) {
	if configCatalogURL != "" {
		return catalog.NewClient(configCatalogURL, nil), nil
	}
	return backend.Experiences()
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "filter by category")
	catalogCmd.Flags().IntVar(&catalogPage, "page", 0, "catalog page")
	catalogCmd.Flags().IntVar(&catalogLimit, "limit", 0, "entries per page")

	catalogAddLocationCmd.Flags().StringVar(&locationName, "name", "", "location name (required)")
	catalogAddLocationCmd.Flags().StringVar(&locationAddress, "address", "", "street address")
	catalogAddLocationCmd.Flags().StringVar(&locationDuration, "duration", "", `visit duration, e.g. "2 hours"`)
	catalogAddLocationCmd.Flags().Float64Var(&locationPrice, "price", 0, "entry price")
	catalogAddLocationCmd.Flags().Float64Var(&locationLat, "lat", 0, "latitude")
	catalogAddLocationCmd.Flags().Float64Var(&locationLng, "lng", 0, "longitude")
	catalogAddLocationCmd.Flags().StringSliceVar(&locationPhotos, "photo", nil, "photo URL (repeatable)")

	catalogAddLocationCmd.MarkFlagRequired("name")

	catalogCmd.AddCommand(catalogAddLocationCmd)
}
