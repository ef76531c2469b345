package netatmo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenModules(t *testing.T) {
	temperature := 21.4
	outdoorTemp := 7.2
	humidity := 48

	data := &StationData{
		Body: StationDataBody{
			Devices: []Device{{
				ID:              "70:ee:50:00:00:01",
				StationName:     "Home",
				ModuleName:      "Indoor",
				Type:            "NAMain",
				WifiStatus:      56,
				Reachable:       true,
				LastStatusStore: 1700000000,
				DashboardData:   &DashboardData{Temperature: &temperature, Humidity: &humidity},
				Modules: []Module{{
					ID:             "02:00:00:00:00:01",
					Type:           "NAModule1",
					ModuleName:     "Outdoor",
					Reachable:      false,
					RFStatus:       70,
					BatteryPercent: 43,
					LastSeen:       1699999000,
					DashboardData:  &DashboardData{Temperature: &outdoorTemp},
				}},
			}},
		},
	}

	infos := FlattenModules(data)
	require.Len(t, infos, 2)

	base := infos[0]
	assert.Equal(t, "Home", base.StationName)
	assert.Equal(t, "Indoor", base.ModuleName)
	assert.Equal(t, "NAMain", base.Type)
	assert.Equal(t, -1, base.BatteryPercent)
	assert.Equal(t, 56, base.WifiStatus)
	assert.True(t, base.Reachable)
	assert.Equal(t, time.Unix(1700000000, 0), base.LastSeen)
	require.NotNil(t, base.Temperature)
	assert.Equal(t, 21.4, *base.Temperature)
	require.NotNil(t, base.Humidity)
	assert.Equal(t, 48, *base.Humidity)

	module := infos[1]
	assert.Equal(t, "Home", module.StationName)
	assert.Equal(t, "Outdoor", module.ModuleName)
	assert.Equal(t, 43, module.BatteryPercent)
	assert.Equal(t, 70, module.RFStatus)
	assert.False(t, module.Reachable)
	require.NotNil(t, module.Temperature)
	assert.Equal(t, 7.2, *module.Temperature)
	assert.Nil(t, module.Humidity)
}

func TestFlattenModulesEmpty(t *testing.T) {
	assert.Nil(t, FlattenModules(nil))
	assert.Nil(t, FlattenModules(&StationData{}))
}
