package netatmo

import (
	"context"
	"net/url"
	"strconv"
)

const roomThermpointPath = "/api/setroomthermpoint"

// ThermpointMode selects how a room's setpoint is driven.
type ThermpointMode string

// Modes accepted by setroomthermpoint.
const (
	ThermpointManual ThermpointMode = "manual" // hold Temp until EndTime
	ThermpointMax    ThermpointMode = "max"    // heat at full power until EndTime
	ThermpointHome   ThermpointMode = "home"   // return to the home schedule
)

// ThermpointParameters describes a setpoint change. Temp is required for
// manual mode; EndTime bounds manual and max modes and is ignored for home.
type ThermpointParameters struct {
	HomeID  string
	RoomID  string
	Mode    ThermpointMode
	Temp    *float64 // degrees Celsius
	EndTime *int64   // unix seconds
}

func (p *ThermpointParameters) values() url.Values {
	params := url.Values{}
	if p == nil {
		return params
	}
	params.Set("home_id", p.HomeID)
	params.Set("room_id", p.RoomID)
	params.Set("mode", string(p.Mode))
	if p.Temp != nil {
		params.Set("temp", strconv.FormatFloat(*p.Temp, 'f', -1, 64))
	}
	if p.EndTime != nil {
		params.Set("endtime", strconv.FormatInt(*p.EndTime, 10))
	}
	return params
}

// SetRoomThermpoint changes the thermostat setpoint of a room.
func (c *AuthenticatedClient) SetRoomThermpoint(ctx context.Context, parameters *ThermpointParameters) (*ThermpointResult, error) {
	return callAuthenticated[ThermpointResult](ctx, c, "set_room_thermpoint", roomThermpointPath, parameters.values())
}

// ThermpointResult is the setroomthermpoint acknowledgement.
type ThermpointResult struct {
	Status     string  `json:"status"`
	TimeExec   float64 `json:"time_exec"`
	TimeServer int64   `json:"time_server"`
}
