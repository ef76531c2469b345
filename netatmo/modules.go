package netatmo

import "time"

// ModuleInfo flattens a base station or one of its modules into a single
// row for display and filtering.
type ModuleInfo struct {
	StationName string
	ModuleName  string
	ID          string
	Type        string
	Reachable   bool

	// BatteryPercent is -1 for mains-powered base stations.
	BatteryPercent int
	// RFStatus is 0 for base stations, which report WifiStatus instead.
	RFStatus   int
	WifiStatus int
	LastSeen   time.Time

	// Latest readings; nil when the module does not measure them.
	Temperature  *float64
	Humidity     *int
	CO2          *int
	Pressure     *float64
	Noise        *int
	Rain         *float64
	WindStrength *int
}

// FlattenModules converts a station data payload into one ModuleInfo per
// base station and attached module.
func FlattenModules(data *StationData) []ModuleInfo {
	if data == nil {
		return nil
	}

	var infos []ModuleInfo
	for _, device := range data.Body.Devices {
		info := ModuleInfo{
			StationName:    device.StationName,
			ModuleName:     device.ModuleName,
			ID:             device.ID,
			Type:           device.Type,
			Reachable:      device.Reachable,
			BatteryPercent: -1,
			WifiStatus:     device.WifiStatus,
			LastSeen:       time.Unix(device.LastStatusStore, 0),
		}
		info.applyDashboard(device.DashboardData)
		infos = append(infos, info)

		for _, module := range device.Modules {
			minfo := ModuleInfo{
				StationName:    device.StationName,
				ModuleName:     module.ModuleName,
				ID:             module.ID,
				Type:           module.Type,
				Reachable:      module.Reachable,
				BatteryPercent: module.BatteryPercent,
				RFStatus:       module.RFStatus,
				LastSeen:       time.Unix(module.LastSeen, 0),
			}
			minfo.applyDashboard(module.DashboardData)
			infos = append(infos, minfo)
		}
	}
	return infos
}

func (m *ModuleInfo) applyDashboard(data *DashboardData) {
	if data == nil {
		return
	}
	m.Temperature = data.Temperature
	m.Humidity = data.Humidity
	m.CO2 = data.CO2
	m.Pressure = data.Pressure
	m.Noise = data.Noise
	m.Rain = data.Rain
	m.WindStrength = data.WindStrength
}
