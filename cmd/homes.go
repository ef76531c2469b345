package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nsenaud/netatmo-go/netatmo"
)

// statusConcurrency bounds parallel homestatus calls when --status is set.
const statusConcurrency = 4

var withStatus bool

// homesCmd represents the homes command
var homesCmd = &cobra.Command{
	Use:   "homes",
	Short: "List homes, rooms and installed modules",
	Long: `List the homes of the account with their rooms and installed modules.
With --status, the current state of every home (measured and setpoint
temperatures, boiler state) is fetched as well.`,
	RunE: runHomes,
}

func init() {
	homesCmd.Flags().BoolVar(&withStatus, "status", false, "also fetch the current status of each home")
	rootCmd.AddCommand(homesCmd)
}

func runHomes(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	data, err := client.GetHomesData(ctx, nil)
	if err != nil {
		return err
	}

	homes := data.Body.Homes
	if len(homes) == 0 {
		fmt.Println("No homes found.")
		return nil
	}

	statuses := make(map[string]*netatmo.HomeStatus)
	if withStatus {
		statuses, err = fetchStatuses(ctx, homes)
		if err != nil {
			return err
		}
	}

	for _, home := range homes {
		printHome(home, statuses[home.ID])
	}
	return nil
}

// fetchStatuses retrieves every home's status with bounded parallelism. The
// client is shared read-only; only the result map needs guarding.
func fetchStatuses(ctx context.Context, homes []netatmo.Home) (map[string]*netatmo.HomeStatus, error) {
	statuses := make(map[string]*netatmo.HomeStatus, len(homes))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statusConcurrency)

	for _, home := range homes {
		home := home
		g.Go(func() error {
			status, err := client.GetHomeStatus(ctx, &netatmo.HomeStatusParameters{HomeID: home.ID})
			if err != nil {
				return fmt.Errorf("failed to get status of home %q: %w", home.Name, err)
			}

			mu.Lock()
			statuses[home.ID] = status
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statuses, nil
}

func printHome(home netatmo.Home, status *netatmo.HomeStatus) {
	fmt.Printf("\n%s (%s)\n", home.Name, home.ID)
	fmt.Println(strings.Repeat("-", 80))
	if home.ThermMode != "" {
		fmt.Printf("Thermostat mode: %s\n", home.ThermMode)
	}

	roomStates := make(map[string]netatmo.RoomStatus)
	if status != nil {
		for _, room := range status.Body.Home.Rooms {
			roomStates[room.ID] = room
		}
	}

	for _, room := range home.Rooms {
		fmt.Printf("• %s (%s), %d modules", room.Name, room.Type, len(room.ModuleIDs))

		if state, ok := roomStates[room.ID]; ok {
			if state.ThermMeasuredTemperature != nil {
				fmt.Printf(" — %.1f°C", *state.ThermMeasuredTemperature)
			}
			if state.ThermSetpointTemperature != nil {
				fmt.Printf(" (setpoint %.1f°C, %s)", *state.ThermSetpointTemperature, state.ThermSetpointMode)
			}
			if !state.Reachable {
				fmt.Printf(" [UNREACHABLE]")
			}
		}
		fmt.Println()
	}
}
