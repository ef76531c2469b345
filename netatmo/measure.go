package netatmo

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

const measurePath = "/api/getmeasure"

// Scale is the aggregation step of a measurement series.
type Scale string

// Scales accepted by getmeasure.
const (
	ScaleMax       Scale = "max"
	Scale30Minutes Scale = "30min"
	Scale1Hour     Scale = "1hour"
	Scale3Hours    Scale = "3hours"
	Scale1Day      Scale = "1day"
	Scale1Week     Scale = "1week"
	Scale1Month    Scale = "1month"
)

// MeasureParameters selects a historical measurement series. DeviceID,
// Scale and Types are required by the API; zero-valued bounds are omitted.
type MeasureParameters struct {
	DeviceID  string
	ModuleID  string
	Scale     Scale
	Types     []string // e.g. "Temperature", "CO2", "sum_rain"
	DateBegin int64    // unix seconds, 0 for the oldest available
	DateEnd   int64    // unix seconds, 0 for now
	Limit     int      // max data points, 0 for the API default
	RealTime  bool
}

func (p *MeasureParameters) values() url.Values {
	params := url.Values{}
	if p == nil {
		return params
	}
	params.Set("device_id", p.DeviceID)
	if p.ModuleID != "" {
		params.Set("module_id", p.ModuleID)
	}
	params.Set("scale", string(p.Scale))
	params.Set("type", strings.Join(p.Types, ","))
	if p.DateBegin > 0 {
		params.Set("date_begin", strconv.FormatInt(p.DateBegin, 10))
	}
	if p.DateEnd > 0 {
		params.Set("date_end", strconv.FormatInt(p.DateEnd, 10))
	}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	// The optimized variant interleaves series blocks; the flat timestamp
	// map is what Measure decodes.
	params.Set("optimize", "false")
	params.Set("real_time", strconv.FormatBool(p.RealTime))
	return params
}

// GetMeasure retrieves a historical measurement series for a device or one
// of its modules.
func (c *AuthenticatedClient) GetMeasure(ctx context.Context, parameters *MeasureParameters) (*Measure, error) {
	return callAuthenticated[Measure](ctx, c, "get_measure", measurePath, parameters.values())
}

// Measure is the getmeasure response: unix timestamp (as a string key) to
// one value per requested type. Gaps in the series decode as nil.
type Measure struct {
	Body       map[string][]*float64 `json:"body"`
	Status     string                `json:"status"`
	TimeExec   float64               `json:"time_exec"`
	TimeServer int64                 `json:"time_server"`
}
