package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nsenaud/netatmo-go/netatmo"
)

var (
	measureModuleID string
	measureScale    string
	measureTypes    []string
	measureBegin    string
	measureEnd      string
	measureLimit    int
)

// measureCmd represents the measure command
var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Fetch a historical measurement series",
	Long: `Fetch a historical measurement series for a station or one of its modules.

  netatmo-cli measure --device 70:ee:50:00:00:01 --scale 1hour --type Temperature,Humidity
  netatmo-cli measure --device 70:ee:50:00:00:01 --scale 1day --type sum_rain --begin 2024-01-01`,
	RunE: runMeasure,
}

func init() {
	measureCmd.Flags().StringVar(&deviceID, "device", "", "station MAC address (required)")
	measureCmd.Flags().StringVar(&measureModuleID, "module", "", "module MAC address")
	measureCmd.Flags().StringVar(&measureScale, "scale", "1hour", "aggregation scale (max, 30min, 1hour, 3hours, 1day, 1week, 1month)")
	measureCmd.Flags().StringSliceVar(&measureTypes, "type", []string{"Temperature"}, "measurement types")
	measureCmd.Flags().StringVar(&measureBegin, "begin", "", "series start date (2006-01-02)")
	measureCmd.Flags().StringVar(&measureEnd, "end", "", "series end date (2006-01-02)")
	measureCmd.Flags().IntVar(&measureLimit, "limit", 0, "maximum number of data points")
	measureCmd.MarkFlagRequired("device")

	rootCmd.AddCommand(measureCmd)
}

func runMeasure(cmd *cobra.Command, args []string) error {
	params := &netatmo.MeasureParameters{
		DeviceID: deviceID,
		ModuleID: measureModuleID,
		Scale:    netatmo.Scale(measureScale),
		Types:    measureTypes,
		Limit:    measureLimit,
	}

	var err error
	if params.DateBegin, err = parseDate(measureBegin); err != nil {
		return fmt.Errorf("invalid --begin date: %w", err)
	}
	if params.DateEnd, err = parseDate(measureEnd); err != nil {
		return fmt.Errorf("invalid --end date: %w", err)
	}

	logger.Debug().
		Str("device", deviceID).
		Str("scale", measureScale).
		Strs("types", measureTypes).
		Msg("Fetching measurements")

	measure, err := client.GetMeasure(context.Background(), params)
	if err != nil {
		return err
	}

	if len(measure.Body) == 0 {
		fmt.Println("No measurements found for the given criteria.")
		return nil
	}

	printMeasure(measure, measureTypes)
	return nil
}

func parseDate(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func printMeasure(measure *netatmo.Measure, types []string) {
	// The body is keyed by unix timestamp strings; print in time order.
	timestamps := make([]int64, 0, len(measure.Body))
	for key := range measure.Body {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			logger.Warn().Str("key", key).Msg("Skipping non-numeric timestamp key")
			continue
		}
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	fmt.Printf("\n%-20s %s\n", "TIME", strings.Join(types, "  "))
	fmt.Println(strings.Repeat("-", 80))

	for _, ts := range timestamps {
		values := measure.Body[strconv.FormatInt(ts, 10)]
		row := make([]string, 0, len(values))
		for _, v := range values {
			if v == nil {
				row = append(row, "-")
			} else {
				row = append(row, strconv.FormatFloat(*v, 'f', 1, 64))
			}
		}
		fmt.Printf("%-20s %s\n", time.Unix(ts, 0).Format("2006-01-02 15:04"), strings.Join(row, "  "))
	}
}
