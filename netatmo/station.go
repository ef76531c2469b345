package netatmo

import (
	"context"
	"net/url"
)

const (
	stationDataPath   = "/api/getstationsdata"
	homeCoachDataPath = "/api/gethomecoachsdata"
)

// GetStationData retrieves telemetry for a weather station and its modules.
// An empty deviceID returns every station of the account.
func (c *AuthenticatedClient) GetStationData(ctx context.Context, deviceID string) (*StationData, error) {
	params := url.Values{}
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	return callAuthenticated[StationData](ctx, c, "get_station_data", stationDataPath, params)
}

// GetHomeCoachsData retrieves telemetry for a home coach air quality
// monitor. The payload shape is shared with weather stations.
func (c *AuthenticatedClient) GetHomeCoachsData(ctx context.Context, deviceID string) (*StationData, error) {
	params := url.Values{}
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	return callAuthenticated[StationData](ctx, c, "get_homecoachs_data", homeCoachDataPath, params)
}

// StationData is the getstationsdata / gethomecoachsdata response.
type StationData struct {
	Body       StationDataBody `json:"body"`
	Status     string          `json:"status"`
	TimeExec   float64         `json:"time_exec"`
	TimeServer int64           `json:"time_server"`
}

// StationDataBody holds the devices of the account plus owner metadata.
type StationDataBody struct {
	Devices []Device `json:"devices"`
	User    User     `json:"user"`
}

// User describes the account owning the queried devices.
type User struct {
	Mail           string         `json:"mail"`
	Administrative Administrative `json:"administrative"`
}

// Administrative carries the account's locale and unit preferences.
type Administrative struct {
	Country      string `json:"country"`
	RegLocale    string `json:"reg_locale"`
	Lang         string `json:"lang"`
	Unit         int    `json:"unit"`
	WindUnit     int    `json:"windunit"`
	PressureUnit int    `json:"pressureunit"`
	FeelLikeAlgo int    `json:"feel_like_algo"`
}

// Device is a base station (or home coach) with its attached modules.
type Device struct {
	ID              string         `json:"_id"`
	StationName     string         `json:"station_name"`
	ModuleName      string         `json:"module_name"`
	Type            string         `json:"type"`
	Firmware        int            `json:"firmware"`
	WifiStatus      int            `json:"wifi_status"`
	Reachable       bool           `json:"reachable"`
	CO2Calibrating  bool           `json:"co2_calibrating"`
	DateSetup       int64          `json:"date_setup"`
	LastSetup       int64          `json:"last_setup"`
	LastStatusStore int64          `json:"last_status_store"`
	LastUpgrade     int64          `json:"last_upgrade"`
	DataType        []string       `json:"data_type"`
	Place           Place          `json:"place"`
	DashboardData   *DashboardData `json:"dashboard_data,omitempty"`
	Modules         []Module       `json:"modules"`
}

// Place locates a device.
type Place struct {
	Altitude float64   `json:"altitude"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
	Timezone string    `json:"timezone"`
	Location []float64 `json:"location"`
}

// Module is a battery-powered sensor attached to a base station.
type Module struct {
	ID             string         `json:"_id"`
	Type           string         `json:"type"`
	ModuleName     string         `json:"module_name"`
	DataType       []string       `json:"data_type"`
	LastSetup      int64          `json:"last_setup"`
	Reachable      bool           `json:"reachable"`
	Firmware       int            `json:"firmware"`
	LastMessage    int64          `json:"last_message"`
	LastSeen       int64          `json:"last_seen"`
	RFStatus       int            `json:"rf_status"`
	BatteryVP      int            `json:"battery_vp"`
	BatteryPercent int            `json:"battery_percent"`
	DashboardData  *DashboardData `json:"dashboard_data,omitempty"`
}

// DashboardData holds the latest sensor readings of a device or module.
// Which fields are present depends on the module type, hence the pointers.
type DashboardData struct {
	TimeUTC          int64    `json:"time_utc"`
	Temperature      *float64 `json:"Temperature,omitempty"`
	CO2              *int     `json:"CO2,omitempty"`
	Humidity         *int     `json:"Humidity,omitempty"`
	Noise            *int     `json:"Noise,omitempty"`
	Pressure         *float64 `json:"Pressure,omitempty"`
	AbsolutePressure *float64 `json:"AbsolutePressure,omitempty"`
	MinTemp          *float64 `json:"min_temp,omitempty"`
	MaxTemp          *float64 `json:"max_temp,omitempty"`
	DateMinTemp      *int64   `json:"date_min_temp,omitempty"`
	DateMaxTemp      *int64   `json:"date_max_temp,omitempty"`
	TempTrend        string   `json:"temp_trend,omitempty"`
	PressureTrend    string   `json:"pressure_trend,omitempty"`
	HealthIdx        *int     `json:"health_idx,omitempty"`
	Rain             *float64 `json:"Rain,omitempty"`
	SumRain1         *float64 `json:"sum_rain_1,omitempty"`
	SumRain24        *float64 `json:"sum_rain_24,omitempty"`
	WindStrength     *int     `json:"WindStrength,omitempty"`
	WindAngle        *int     `json:"WindAngle,omitempty"`
	GustStrength     *int     `json:"GustStrength,omitempty"`
	GustAngle        *int     `json:"GustAngle,omitempty"`
}
