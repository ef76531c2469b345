package netatmo

import (
	"context"
	"net/url"
)

const (
	homesDataPath  = "/api/homesdata"
	homeStatusPath = "/api/homestatus"
)

// HomesDataParameters narrows the homesdata query. The zero value (or nil)
// returns every home of the account.
type HomesDataParameters struct {
	HomeID       string
	GatewayTypes []string
}

func (p *HomesDataParameters) values() url.Values {
	params := url.Values{}
	if p == nil {
		return params
	}
	if p.HomeID != "" {
		params.Set("home_id", p.HomeID)
	}
	for _, t := range p.GatewayTypes {
		params.Add("gateway_types", t)
	}
	return params
}

// GetHomesData retrieves the topology of the account's homes: rooms, module
// placement and thermostat configuration.
func (c *AuthenticatedClient) GetHomesData(ctx context.Context, parameters *HomesDataParameters) (*HomesData, error) {
	return callAuthenticated[HomesData](ctx, c, "get_homes_data", homesDataPath, parameters.values())
}

// HomeStatusParameters selects the home whose runtime state to fetch,
// optionally restricted to certain device types.
type HomeStatusParameters struct {
	HomeID      string
	DeviceTypes []string
}

func (p *HomeStatusParameters) values() url.Values {
	params := url.Values{}
	if p == nil {
		return params
	}
	if p.HomeID != "" {
		params.Set("home_id", p.HomeID)
	}
	for _, t := range p.DeviceTypes {
		params.Add("device_types", t)
	}
	return params
}

// GetHomeStatus retrieves the current state of a home's rooms and modules.
func (c *AuthenticatedClient) GetHomeStatus(ctx context.Context, parameters *HomeStatusParameters) (*HomeStatus, error) {
	return callAuthenticated[HomeStatus](ctx, c, "get_home_status", homeStatusPath, parameters.values())
}

// HomesData is the homesdata response.
type HomesData struct {
	Body       HomesDataBody `json:"body"`
	Status     string        `json:"status"`
	TimeExec   float64       `json:"time_exec"`
	TimeServer int64         `json:"time_server"`
}

// HomesDataBody lists the homes of the account.
type HomesDataBody struct {
	Homes []Home `json:"homes"`
	User  User   `json:"user"`
}

// Home describes one home's topology and thermostat configuration.
type Home struct {
	ID                           string       `json:"id"`
	Name                         string       `json:"name"`
	Altitude                     float64      `json:"altitude"`
	Coordinates                  []float64    `json:"coordinates"`
	Country                      string       `json:"country"`
	Timezone                     string       `json:"timezone"`
	Rooms                        []Room       `json:"rooms"`
	Modules                      []HomeModule `json:"modules"`
	TemperatureControlMode       string       `json:"temperature_control_mode,omitempty"`
	ThermMode                    string       `json:"therm_mode,omitempty"`
	ThermSetpointDefaultDuration int          `json:"therm_setpoint_default_duration,omitempty"`
}

// Room groups modules within a home.
type Room struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	ModuleIDs []string `json:"module_ids"`
}

// HomeModule is a module as placed in a home's topology.
type HomeModule struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	SetupDate      int64    `json:"setup_date"`
	RoomID         string   `json:"room_id,omitempty"`
	Bridge         string   `json:"bridge,omitempty"`
	ModulesBridged []string `json:"modules_bridged,omitempty"`
}

// HomeStatus is the homestatus response.
type HomeStatus struct {
	Body       HomeStatusBody `json:"body"`
	Status     string         `json:"status"`
	TimeExec   float64        `json:"time_exec"`
	TimeServer int64          `json:"time_server"`
}

// HomeStatusBody wraps the queried home's runtime state.
type HomeStatusBody struct {
	Home HomeState `json:"home"`
}

// HomeState is the runtime state of one home.
type HomeState struct {
	ID      string         `json:"id"`
	Rooms   []RoomStatus   `json:"rooms"`
	Modules []ModuleStatus `json:"modules"`
}

// RoomStatus is the runtime state of a room, including the thermostat
// setpoint when the room is heated.
type RoomStatus struct {
	ID                       string   `json:"id"`
	Reachable                bool     `json:"reachable"`
	ThermMeasuredTemperature *float64 `json:"therm_measured_temperature,omitempty"`
	ThermSetpointTemperature *float64 `json:"therm_setpoint_temperature,omitempty"`
	ThermSetpointMode        string   `json:"therm_setpoint_mode,omitempty"`
	ThermSetpointStartTime   *int64   `json:"therm_setpoint_start_time,omitempty"`
	ThermSetpointEndTime     *int64   `json:"therm_setpoint_end_time,omitempty"`
}

// ModuleStatus is the runtime state of a module.
type ModuleStatus struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	FirmwareRevision int    `json:"firmware_revision"`
	RFStrength       *int   `json:"rf_strength,omitempty"`
	WifiStrength     *int   `json:"wifi_strength,omitempty"`
	BatteryLevel     *int   `json:"battery_level,omitempty"`
	BatteryState     string `json:"battery_state,omitempty"`
	Reachable        *bool  `json:"reachable,omitempty"`
	BoilerStatus     *bool  `json:"boiler_status,omitempty"`
}
