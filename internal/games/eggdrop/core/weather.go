package core

// updateWeather counts the weather timer down on real time and rolls a
// different weather when it runs out.
func (sim *Simulator) updateWeather(s *State, realDt float64, events []Event) []Event {
	s.Env.WeatherTimer -= realDt * 1000
	if s.Env.WeatherTimer > 0 {
		return events
	}

	s.Env.Weather = sim.nextWeather(s.Env.Weather)
	wc := &sim.cfg.Weather
	s.Env.WeatherTimer = wc.MinDurationMs + sim.rng.Float64()*(wc.MaxDurationMs-wc.MinDurationMs)

	return append(events, Event{Kind: EventWeatherChanged, Weather: s.Env.Weather})
}

// nextWeather picks uniformly among all weathers except current.
func (sim *Simulator) nextWeather(current Weather) Weather {
	n := sim.rng.IntN(int(WeatherCount) - 1)
	if n >= int(current) {
		n++
	}
	return Weather(n)
}
