package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nsenaud/netatmo-go/netatmo"
)

var (
	thermHomeID string
	thermRoomID string
	thermMode   string
	thermTemp   float64
	thermUntil  string
)

// thermostatCmd groups thermostat control commands
var thermostatCmd = &cobra.Command{
	Use:   "thermostat",
	Short: "Control room thermostats",
}

// thermostatSetCmd represents the thermostat set command
var thermostatSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change a room's thermostat setpoint",
	Long: `Change a room's thermostat setpoint.

  netatmo-cli thermostat set --home home-1 --room room-1 --mode manual --temp 21.5
  netatmo-cli thermostat set --home home-1 --room room-1 --mode home`,
	RunE: runThermostatSet,
}

func init() {
	thermostatSetCmd.Flags().StringVar(&thermHomeID, "home", "", "home ID (required)")
	thermostatSetCmd.Flags().StringVar(&thermRoomID, "room", "", "room ID (required)")
	thermostatSetCmd.Flags().StringVar(&thermMode, "mode", "", "setpoint mode: manual, max or home (required)")
	thermostatSetCmd.Flags().Float64Var(&thermTemp, "temp", 0, "target temperature in °C (manual mode)")
	thermostatSetCmd.Flags().StringVar(&thermUntil, "until", "", "end of the setpoint (2006-01-02T15:04)")
	thermostatSetCmd.MarkFlagRequired("home")
	thermostatSetCmd.MarkFlagRequired("room")
	thermostatSetCmd.MarkFlagRequired("mode")

	thermostatCmd.AddCommand(thermostatSetCmd)
	rootCmd.AddCommand(thermostatCmd)
}

func runThermostatSet(cmd *cobra.Command, args []string) error {
	mode := netatmo.ThermpointMode(thermMode)
	switch mode {
	case netatmo.ThermpointManual, netatmo.ThermpointMax, netatmo.ThermpointHome:
	default:
		return fmt.Errorf("invalid mode: %s (must be manual, max or home)", thermMode)
	}

	params := &netatmo.ThermpointParameters{
		HomeID: thermHomeID,
		RoomID: thermRoomID,
		Mode:   mode,
	}

	if mode == netatmo.ThermpointManual {
		if !cmd.Flags().Changed("temp") {
			return fmt.Errorf("--temp is required for manual mode")
		}
		params.Temp = &thermTemp
	}

	if thermUntil != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04", thermUntil, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --until time: %w", err)
		}
		endTime := t.Unix()
		params.EndTime = &endTime
	}

	result, err := client.SetRoomThermpoint(context.Background(), params)
	if err != nil {
		return err
	}

	logger.Info().
		Str("home", thermHomeID).
		Str("room", thermRoomID).
		Str("mode", thermMode).
		Msg("Setpoint changed")

	fmt.Printf("✓ Setpoint changed (%s)\n", result.Status)
	return nil
}
