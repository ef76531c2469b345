package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nsenaud/netatmo-go/filter"
	"github.com/nsenaud/netatmo-go/netatmo"
)

// stationsCmd represents the stations command
var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List weather station modules and their latest readings",
	Long: `List the weather stations of the account with their modules, battery and
signal state, and latest sensor readings. Modules can be narrowed with a
filter expression, e.g.:

  netatmo-cli stations --filter 'BatteryPercent >= 0 && BatteryPercent < 20'
  netatmo-cli stations --filter 'Type == "NAModule1" && !Reachable'`,
	RunE: runStations,
}

// homecoachsCmd represents the homecoachs command
var homecoachsCmd = &cobra.Command{
	Use:   "homecoachs",
	Short: "List home coach air quality readings",
	RunE:  runHomeCoachs,
}

func init() {
	stationsCmd.Flags().StringVar(&deviceID, "device", "", "restrict to one station MAC address")
	stationsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	stationsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	homecoachsCmd.Flags().StringVar(&deviceID, "device", "", "restrict to one home coach MAC address")

	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(homecoachsCmd)
}

func runStations(cmd *cobra.Command, args []string) error {
	// Determine filter expression
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	var moduleFilter *filter.ModuleFilter
	if expr != "" {
		moduleFilter, err = filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", expr).Msg("Filtering modules")
	}

	ctx := context.Background()
	data, err := client.GetStationData(ctx, deviceID)
	if err != nil {
		return err
	}

	modules, err := filter.Apply(moduleFilter, netatmo.FlattenModules(data))
	if err != nil {
		return err
	}

	if len(modules) == 0 {
		fmt.Println("No modules found matching the criteria.")
		return nil
	}

	printModules(modules)
	return nil
}

func runHomeCoachs(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	data, err := client.GetHomeCoachsData(ctx, deviceID)
	if err != nil {
		return err
	}

	modules := netatmo.FlattenModules(data)
	if len(modules) == 0 {
		fmt.Println("No home coachs found.")
		return nil
	}

	printModules(modules)
	return nil
}

func printModules(modules []netatmo.ModuleInfo) {
	fmt.Printf("\nFound %d modules:\n", len(modules))
	fmt.Println(strings.Repeat("-", 80))

	for _, module := range modules {
		fmt.Printf("• %s / %s (%s)", module.StationName, module.ModuleName, module.Type)
		if !module.Reachable {
			fmt.Printf(" [UNREACHABLE]")
		}
		fmt.Println()

		if !cfg.Output.ShowDetails {
			continue
		}

		if module.BatteryPercent >= 0 {
			fmt.Printf("  Battery: %d%%  RF: %d\n", module.BatteryPercent, module.RFStatus)
		} else {
			fmt.Printf("  WiFi: %d\n", module.WifiStatus)
		}
		fmt.Printf("  Last seen: %s\n", module.LastSeen.Format("2006-01-02 15:04"))

		if reading := formatReadings(module); reading != "" {
			fmt.Printf("  Readings: %s\n", reading)
		}
	}
}

func formatReadings(m netatmo.ModuleInfo) string {
	var parts []string
	if m.Temperature != nil {
		parts = append(parts, fmt.Sprintf("%.1f°C", *m.Temperature))
	}
	if m.Humidity != nil {
		parts = append(parts, fmt.Sprintf("%d%% RH", *m.Humidity))
	}
	if m.CO2 != nil {
		parts = append(parts, fmt.Sprintf("%d ppm CO2", *m.CO2))
	}
	if m.Pressure != nil {
		parts = append(parts, fmt.Sprintf("%.1f mbar", *m.Pressure))
	}
	if m.Noise != nil {
		parts = append(parts, fmt.Sprintf("%d dB", *m.Noise))
	}
	if m.Rain != nil {
		parts = append(parts, fmt.Sprintf("%.1f mm rain", *m.Rain))
	}
	if m.WindStrength != nil {
		parts = append(parts, fmt.Sprintf("%d km/h wind", *m.WindStrength))
	}
	return strings.Join(parts, ", ")
}
