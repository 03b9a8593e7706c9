// internal/schema/tables.go
package schema

import "sort"

// Group names.
const (
	Info     = "info"
	Rated    = "rated"
	Realtime = "realtime"
	Stat     = "stat"
	Setting  = "setting"
	Coil     = "coil"
	Discrete = "discrete"
)

const (
	degC = "°C"
	kwh  = "KWH"
)

var ratedGroup = NewRegisterGroup(Rated, 8,
	[][]byte{frameRated},
	[]Field{
		num("PV array rated voltage", "V", 100),
		num("PV array rated current", "A", 100),
		wide("PV array rated power", "W", 100),
		num("Battery rated voltage", "V", 100),
		num("Rated charging current", "A", 100),
		wide("Rated charging power", "W", 100),
		plain("Charging Mode"),
		num("Rated load current", "A", 100),
	},
)

var realtimeGroup = NewRegisterGroup(Realtime, 17,
	[][]byte{frameRealtime1, frameRealtime2},
	[]Field{
		num("PV array voltage", "V", 100),
		num("PV array current", "A", 100),
		wide("PV array power", "W", 100),
		num("Battery voltage", "V", 100),
		num("Battery charging current", "A", 100),
		wide("Battery charging power", "W", 100),
		num("Load voltage", "V", 100),
		num("Load current", "A", 100),
		wide("Load power", "W", 100),
		reserved(1),
		reserved(1),
		reserved(2),
		signed(num("Battery temperature", degC, 100)),
		signed(num("Charger temperature", degC, 100)),
		signed(num("Heat sink temperature", degC, 100)),
		signed(reserved(1)),
		num("Battery SOC", "%", 1),
		signed(num("Remote battery temperature", degC, 100)),
		num("System rated voltage", "V", 100),
		plain("Battery status"),
		plain("Equipment status"),
		reserved(1),
	},
)

var statGroup = NewRegisterGroup(Stat, 16,
	[][]byte{frameStat},
	[]Field{
		num("Max input voltage today", "V", 100),
		num("Min input voltage today", "V", 100),
		num("Max battery voltage today", "V", 100),
		num("Min battery voltage today", "V", 100),
		wide("Consumed energy today", kwh, 100),
		wide("Consumed energy this month", kwh, 100),
		wide("Consumed energy this year", kwh, 100),
		wide("Total consumed energy", kwh, 100),
		wide("Generated energy today", kwh, 100),
		wide("Generated energy this month", kwh, 100),
		wide("Generated energy this year", kwh, 100),
		wide("Total generated energy", kwh, 100),
		wide("Carbon dioxide reduction", "T", 100),
		reserved(2),
		reserved(2),
		reserved(1),
		signed(wide("Net battery current", "A", 100)),
		signed(num("Battery temperature", degC, 100)),
		signed(num("Ambient temperature", degC, 100)),
	},
)

var settingGroup = NewRegisterGroup(Setting, 60,
	[][]byte{frameSetting},
	fieldsOf(
		plain("Battery type"),
		num("Battery capacity", "Ah", 1),
		num("Temperature compensation coeff", "mV/°C/2V", 100),
		num("High voltage disconnect", "V", 100),
		num("Charging limit voltage", "V", 100),
		num("Over voltage reconnect", "V", 100),
		num("Equalization voltage", "V", 100),
		num("Boost voltage", "V", 100),
		num("Float voltage", "V", 100),
		num("Boost reconnect voltage", "V", 100),
		num("Low voltage reconnect", "V", 100),
		num("Under voltage recover", "V", 100),
		num("Under voltage warning", "V", 100),
		num("Low voltage disconnect", "V", 100),
		num("Discharging limit voltage", "V", 100),
		packed(plain("Realtime clock (sec)"), plain("Realtime clock (min)")),
		packed(plain("Realtime clock (hour)"), plain("Realtime clock (day)")),
		packed(plain("Realtime clock (month)"), plain("Realtime clock (year)")),
		num("Equalization charging cycle", "day", 1),
		num("Battery temp. warning hi limit", degC, 100),
		signed(num("Battery temp. warning low limit", degC, 100)),
		num("Controller temp. hi limit", degC, 100),
		num("Controller temp. hi limit rec", degC, 100),
		num("Components temp. hi limit", degC, 100),
		num("Components temp. hi limit rec", degC, 100),
		num("Line impedance", "mOhm", 100),
		num("Night Time Threshold Volt", "V", 100),
		num("Light signal on delay time", "min", 1),
		num("Day Time Threshold Volt", "V", 100),
		num("Light signal off delay time", "min", 1),
		plain("Load controlling mode"),
		packed(plain("Working time length1 min"), plain("Working time length1 hour")),
		packed(plain("Working time length2 min"), plain("Working time length2 hour")),
		plain("Turn on timing1 sec"),
		plain("Turn on timing1 min"),
		plain("Turn on timing1 hour"),
		plain("Turn off timing1 sec"),
		plain("Turn off timing1 min"),
		plain("Turn off timing1 hour"),
		plain("Turn on timing2 sec"),
		plain("Turn on timing2 min"),
		plain("Turn on timing2 hour"),
		plain("Turn off timing2 sec"),
		plain("Turn off timing2 min"),
		plain("Turn off timing2 hour"),
		reserved(1),
		packed(plain("Length of night min"), plain("Length of night hour")),
		plain("Battery rated voltage code"),
		plain("Load timing control selection"),
		plain("Default Load On/Off"),
		num("Equalize duration", "min", 1),
		num("Boost duration", "min", 1),
		num("Discharging percentage", "%", 1),
		num("Charging percentage", "%", 1),
		reserved(1),
		plain("Management mode"),
	),
)

var infoGroup = NewTextGroup(Info,
	[][]byte{frameInfo},
	[]string{"Manufacturer", "Model", "Version"},
)

// The coil frame starts at coil 2; offsets are within the returned byte.
var coilGroup = NewBitGroup(Coil,
	[][]byte{frameCoil},
	[]Bit{
		{Name: "Manual control the load", Byte: 0, Bit: 0},
		{Name: "Enable load test mode", Byte: 0, Bit: 3},
		{Name: "Force the load on/off", Byte: 0, Bit: 4},
	},
)

var discreteGroup = NewBitGroup(Discrete,
	[][]byte{frameDiscrete1, frameDiscrete2},
	[]Bit{
		{Name: "Over temperature inside device", Byte: 0, Bit: 0},
		{Name: "Day/Night", Byte: 1, Bit: 0},
	},
)

var groups = map[string]*Group{
	Info:     infoGroup,
	Rated:    ratedGroup,
	Realtime: realtimeGroup,
	Stat:     statGroup,
	Setting:  settingGroup,
	Coil:     coilGroup,
	Discrete: discreteGroup,
}

// Lookup returns the named group.
func Lookup(name string) (*Group, bool) {
	g, ok := groups[name]
	return g, ok
}

// Names lists every known group name, sorted.
func Names() []string {
	out := make([]string, 0, len(groups))
	for n := range groups {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
