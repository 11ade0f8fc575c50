// README: Latitude-based climate zones and seasonal packing advice.
package weather

import (
	"math"
	"time"

	"wut2pack/internal/modules/packing"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Advice is a coarse forecast substitute: the expected temperature range for
// a destination's climate zone and season, with a confidence that degrades as
// the trip moves further into the future.
type Advice struct {
	Zone       string                   `json:"zone"`
	Season     Season                   `json:"season"`
	Text       string                   `json:"advice"`
	TempRange  packing.TemperatureRange `json:"tempRange"`
	Confidence Confidence               `json:"confidence"`
}

type zone struct {
	name   string
	advice map[Season]string
	temps  map[Season]packing.TemperatureRange
}

var zones = map[string]zone{
	"tropical": {
		name: "Tropical",
		advice: map[Season]string{
			SeasonSpring: "Pack for warm and humid weather with possibility of rain",
			SeasonSummer: "Pack for hot and humid weather with afternoon showers likely",
			SeasonAutumn: "Pack for warm and humid weather with possibility of rain",
			SeasonWinter: "Pack for warm weather with lower humidity",
		},
		temps: map[Season]packing.TemperatureRange{
			SeasonSpring: {Min: 23, Max: 32},
			SeasonSummer: {Min: 25, Max: 35},
			SeasonAutumn: {Min: 23, Max: 32},
			SeasonWinter: {Min: 20, Max: 30},
		},
	},
	"subtropical": {
		name: "Subtropical",
		advice: map[Season]string{
			SeasonSpring: "Pack layers for mild to warm weather",
			SeasonSummer: "Pack for hot and humid weather",
			SeasonAutumn: "Pack layers for mild to warm weather",
			SeasonWinter: "Pack warm clothes with some lighter layers",
		},
		temps: map[Season]packing.TemperatureRange{
			SeasonSpring: {Min: 15, Max: 25},
			SeasonSummer: {Min: 20, Max: 32},
			SeasonAutumn: {Min: 15, Max: 25},
			SeasonWinter: {Min: 8, Max: 18},
		},
	},
	"temperate": {
		name: "Temperate",
		advice: map[Season]string{
			SeasonSpring: "Pack layers with rain protection",
			SeasonSummer: "Pack light clothes with some warm layers",
			SeasonAutumn: "Pack warm layers with rain protection",
			SeasonWinter: "Pack warm winter clothing",
		},
		temps: map[Season]packing.TemperatureRange{
			SeasonSpring: {Min: 8, Max: 18},
			SeasonSummer: {Min: 15, Max: 25},
			SeasonAutumn: {Min: 8, Max: 18},
			SeasonWinter: {Min: 0, Max: 10},
		},
	},
	"cold": {
		name: "Cold",
		advice: map[Season]string{
			SeasonSpring: "Pack warm layers with rain protection",
			SeasonSummer: "Pack light to medium warm clothing",
			SeasonAutumn: "Pack warm layers with rain protection",
			SeasonWinter: "Pack very warm winter clothing",
		},
		temps: map[Season]packing.TemperatureRange{
			SeasonSpring: {Min: 0, Max: 10},
			SeasonSummer: {Min: 10, Max: 20},
			SeasonAutumn: {Min: 0, Max: 10},
			SeasonWinter: {Min: -10, Max: 5},
		},
	},
}

// ZoneFor classifies a latitude into a simplified climate zone.
func ZoneFor(latitude float64) string {
	abs := math.Abs(latitude)
	switch {
	case abs <= 23.5:
		return "tropical"
	case abs <= 35:
		return "subtropical"
	case abs <= 55:
		return "temperate"
	default:
		return "cold"
	}
}

// SeasonFor maps a date to a meteorological season, flipped for the southern
// hemisphere.
func SeasonFor(date time.Time, northernHemisphere bool) Season {
	var s Season
	switch m := date.Month(); {
	case m >= time.March && m <= time.May:
		s = SeasonSpring
	case m >= time.June && m <= time.August:
		s = SeasonSummer
	case m >= time.September && m <= time.November:
		s = SeasonAutumn
	default:
		s = SeasonWinter
	}
	if northernHemisphere {
		return s
	}
	switch s {
	case SeasonSpring:
		return SeasonAutumn
	case SeasonSummer:
		return SeasonWinter
	case SeasonAutumn:
		return SeasonSpring
	default:
		return SeasonSummer
	}
}

// AdviceFor returns seasonal packing advice for a destination latitude and
// travel date. now anchors the confidence window.
func AdviceFor(latitude float64, date, now time.Time) Advice {
	z := zones[ZoneFor(latitude)]
	season := SeasonFor(date, latitude > 0)

	daysAhead := int(date.Sub(now).Hours() / 24)
	confidence := ConfidenceLow
	switch {
	case daysAhead <= 5:
		confidence = ConfidenceHigh
	case daysAhead <= 30:
		confidence = ConfidenceMedium
	}

	return Advice{
		Zone:       z.name,
		Season:     season,
		Text:       z.advice[season],
		TempRange:  z.temps[season],
		Confidence: confidence,
	}
}
