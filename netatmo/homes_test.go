package netatmo

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHomesData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/homesdata", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "home-1", r.PostForm.Get("home_id"))
		assert.Equal(t, []string{"NAPlug"}, r.PostForm["gateway_types"])

		io.WriteString(w, `{
			"body": {
				"homes": [{
					"id": "home-1",
					"name": "Main home",
					"timezone": "Europe/Paris",
					"therm_mode": "schedule",
					"rooms": [{"id": "room-1", "name": "Living room", "type": "livingroom", "module_ids": ["mod-1"]}],
					"modules": [{"id": "mod-1", "type": "NATherm1", "name": "Thermostat", "room_id": "room-1", "bridge": "plug-1"}]
				}]
			},
			"status": "ok"
		}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	data, err := client.GetHomesData(context.Background(), &HomesDataParameters{
		HomeID:       "home-1",
		GatewayTypes: []string{"NAPlug"},
	})
	require.NoError(t, err)

	require.Len(t, data.Body.Homes, 1)
	home := data.Body.Homes[0]
	assert.Equal(t, "Main home", home.Name)
	assert.Equal(t, "schedule", home.ThermMode)
	require.Len(t, home.Rooms, 1)
	assert.Equal(t, []string{"mod-1"}, home.Rooms[0].ModuleIDs)
	require.Len(t, home.Modules, 1)
	assert.Equal(t, "room-1", home.Modules[0].RoomID)
}

func TestGetHomesDataNilParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Empty(t, r.PostForm.Get("home_id"))
		io.WriteString(w, `{"body":{"homes":[]},"status":"ok"}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	data, err := client.GetHomesData(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, data.Body.Homes)
}

func TestGetHomeStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/homestatus", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "home-1", r.PostForm.Get("home_id"))
		assert.Equal(t, []string{"NATherm1", "NRV"}, r.PostForm["device_types"])

		io.WriteString(w, `{
			"body": {
				"home": {
					"id": "home-1",
					"rooms": [{
						"id": "room-1",
						"reachable": true,
						"therm_measured_temperature": 19.5,
						"therm_setpoint_temperature": 21,
						"therm_setpoint_mode": "manual"
					}],
					"modules": [{
						"id": "mod-1",
						"type": "NATherm1",
						"firmware_revision": 75,
						"rf_strength": 70,
						"battery_level": 3700,
						"battery_state": "high",
						"reachable": true,
						"boiler_status": false
					}]
				}
			},
			"status": "ok"
		}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	status, err := client.GetHomeStatus(context.Background(), &HomeStatusParameters{
		HomeID:      "home-1",
		DeviceTypes: []string{"NATherm1", "NRV"},
	})
	require.NoError(t, err)

	home := status.Body.Home
	assert.Equal(t, "home-1", home.ID)

	require.Len(t, home.Rooms, 1)
	room := home.Rooms[0]
	assert.True(t, room.Reachable)
	require.NotNil(t, room.ThermMeasuredTemperature)
	assert.Equal(t, 19.5, *room.ThermMeasuredTemperature)
	require.NotNil(t, room.ThermSetpointTemperature)
	assert.Equal(t, 21.0, *room.ThermSetpointTemperature)
	assert.Equal(t, "manual", room.ThermSetpointMode)

	require.Len(t, home.Modules, 1)
	module := home.Modules[0]
	assert.Equal(t, 75, module.FirmwareRevision)
	require.NotNil(t, module.BatteryLevel)
	assert.Equal(t, 3700, *module.BatteryLevel)
	require.NotNil(t, module.BoilerStatus)
	assert.False(t, *module.BoilerStatus)
}
