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

func TestGetMeasure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/getmeasure", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "70:ee:50:00:00:01", r.PostForm.Get("device_id"))
		assert.Equal(t, "02:00:00:00:00:01", r.PostForm.Get("module_id"))
		assert.Equal(t, "1hour", r.PostForm.Get("scale"))
		assert.Equal(t, "Temperature,Humidity", r.PostForm.Get("type"))
		assert.Equal(t, "1699990000", r.PostForm.Get("date_begin"))
		assert.Equal(t, "100", r.PostForm.Get("limit"))
		assert.Equal(t, "false", r.PostForm.Get("optimize"))
		assert.Empty(t, r.PostForm.Get("date_end"))

		io.WriteString(w, `{
			"body": {
				"1699990000": [7.2, 81],
				"1699993600": [6.8, null]
			},
			"status": "ok",
			"time_server": 1700000000
		}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	measure, err := client.GetMeasure(context.Background(), &MeasureParameters{
		DeviceID:  "70:ee:50:00:00:01",
		ModuleID:  "02:00:00:00:00:01",
		Scale:     Scale1Hour,
		Types:     []string{"Temperature", "Humidity"},
		DateBegin: 1699990000,
		Limit:     100,
	})
	require.NoError(t, err)

	require.Len(t, measure.Body, 2)

	first := measure.Body["1699990000"]
	require.Len(t, first, 2)
	require.NotNil(t, first[0])
	assert.Equal(t, 7.2, *first[0])
	require.NotNil(t, first[1])
	assert.Equal(t, 81.0, *first[1])

	// Gaps in the series decode as nil, not zero.
	second := measure.Body["1699993600"]
	require.Len(t, second, 2)
	assert.Nil(t, second[1])
}

func TestSetRoomThermpoint(t *testing.T) {
	temp := 21.5
	endTime := int64(1700003600)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/setroomthermpoint", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "home-1", r.PostForm.Get("home_id"))
		assert.Equal(t, "room-1", r.PostForm.Get("room_id"))
		assert.Equal(t, "manual", r.PostForm.Get("mode"))
		assert.Equal(t, "21.5", r.PostForm.Get("temp"))
		assert.Equal(t, "1700003600", r.PostForm.Get("endtime"))

		io.WriteString(w, `{"status":"ok","time_exec":0.03,"time_server":1700000000}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	result, err := client.SetRoomThermpoint(context.Background(), &ThermpointParameters{
		HomeID:  "home-1",
		RoomID:  "room-1",
		Mode:    ThermpointManual,
		Temp:    &temp,
		EndTime: &endTime,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Status)
}

func TestSetRoomThermpointHomeMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "home", r.PostForm.Get("mode"))
		assert.False(t, r.PostForm.Has("temp"))
		assert.False(t, r.PostForm.Has("endtime"))
		io.WriteString(w, `{"status":"ok"}`)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.SetRoomThermpoint(context.Background(), &ThermpointParameters{
		HomeID: "home-1",
		RoomID: "room-1",
		Mode:   ThermpointHome,
	})
	require.NoError(t, err)
}
