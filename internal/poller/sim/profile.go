// internal/poller/sim/profile.go
package sim

import "github.com/tamzrod/tracer-bridge/internal/schema"

// defaultRaw holds one raw value per field in table order, reserved included.
var defaultRaw = map[string][]int64{
	schema.Rated: {1200, 800, 960000, 1200, 2000, 2400000, 2, 3000},

	schema.Realtime: {
		// pv, battery, load: voltage current power
		1852, 215, 39818,
		1312, 301, 39491,
		1310, 42, 5502,
		0, 0, 0,
		// battery, charger, heat sink, reserved
		2150, 2810, 2795, 0,
		// soc, remote battery temperature, system rated voltage
		87, 2150, 1200,
		// battery and equipment status
		0, 1,
		0,
	},

	schema.Stat: {
		2130, 0, 1420, 1250,
		42, 1210, 14505, 30120,
		88, 2450, 29940, 61005,
		61,
		0, 0, 0,
		259, 2150, 1890,
	},

	schema.Setting: {
		1, 200, 300,
		1600, 1500, 1500, 1460, 1440, 1380, 1320, 1260, 1220, 1200, 1110, 1060,
		// clock: sec min hour day month year
		30, 15, 12, 3, 10, 26,
		30,
		// battery temperature warning limits, low limit below zero
		6500, -1000,
		8500, 7500, 8500, 7500,
		0,
		500, 10, 600, 10,
		0,
		// working time lengths: min hour
		0, 1, 0, 1,
		// turn on/off timing: sec min hour
		0, 0, 19, 0, 0, 6,
		0, 0, 19, 0, 0, 6,
		0,
		// length of night: min hour
		0, 10,
		0, 1, 0, 120, 120, 30, 100,
		0,
		0,
	},
}
