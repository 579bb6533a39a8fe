package domain

// Weather is the ambient weather category at the catch point
type Weather string

const (
	WeatherClear   Weather = "clear"
	WeatherRain    Weather = "rain"
	WeatherThunder Weather = "thunder"
)

// AllWeathers lists every weather category in config order
var AllWeathers = []Weather{WeatherClear, WeatherRain, WeatherThunder}

// WeatherFromFlags maps the host's storm flags to a category. Thunder wins over rain.
func WeatherFromFlags(hasStorm, thundering bool) Weather {
	switch {
	case thundering:
		return WeatherThunder
	case hasStorm:
		return WeatherRain
	default:
		return WeatherClear
	}
}

// ParseWeather accepts a config key and reports whether it is known
func ParseWeather(s string) (Weather, bool) {
	for _, w := range AllWeathers {
		if string(w) == s {
			return w, true
		}
	}
	return "", false
}

// ConfigKey returns the key used under weather_luck and in condition allow-lists
func (w Weather) ConfigKey() string {
	return string(w)
}

// DisplayName returns the label shown in probability explanations
func (w Weather) DisplayName() string {
	switch w {
	case WeatherRain:
		return "雨"
	case WeatherThunder:
		return "雷雨"
	default:
		return w.ConfigKey()
	}
}
