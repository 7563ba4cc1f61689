package domain

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Positions of the required fields in an a-deck line.
const (
	fieldBasin = iota
	fieldCycloneNumber
	fieldIssuedAt
	fieldModelNumber
	fieldModel
	fieldForecastHour
	fieldLat
	fieldLon
	fieldMaxWind
	fieldMinPressure
	fixedFieldCount
)

// fieldStormName is the position of the storm name token, counted over the
// full comma-delimited line. Lines shorter than this simply have no name.
const fieldStormName = 27

const issuedAtLayout = "2006010215" // YYYYMMDDHH, UTC

// ParseAdvisory parses raw a-deck text into tracks grouped by
// (basin, cyclone number, issuance time), preserving first-seen group order.
// Malformed lines are dropped and counted, never fatal: a record must have a
// parseable issuance time, forecast hour, latitude, longitude, and wind speed,
// and a position away from 0° latitude and 0° longitude.
func ParseAdvisory(raw []byte) Advisory {
	var adv Advisory
	index := map[string]int{}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		p, ok := parseLine(line)
		if !ok {
			adv.Dropped++
			continue
		}

		key := fmt.Sprintf("%s|%d|%s", p.Basin, p.CycloneNumber, p.IssuedAt.Format(issuedAtLayout))
		i, seen := index[key]
		if !seen {
			i = len(adv.Tracks)
			index[key] = i
			adv.Tracks = append(adv.Tracks, Track{
				Basin:         p.Basin,
				CycloneNumber: p.CycloneNumber,
				IssuedAt:      p.IssuedAt,
			})
		}
		adv.Tracks[i].Points = append(adv.Tracks[i].Points, p)
	}

	return adv
}

// parseLine parses one comma-delimited a-deck line. The second return value
// reports whether the line survived the drop rules.
func parseLine(line string) (ForecastPoint, bool) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	// Only the fields through max wind are required; min pressure is
	// optional and defaults to zero.
	if len(fields) <= fieldMaxWind {
		return ForecastPoint{}, false
	}

	issuedAt, err := time.ParseInLocation(issuedAtLayout, digitsOnly(fields[fieldIssuedAt]), time.UTC)
	if err != nil {
		return ForecastPoint{}, false
	}
	hour, err := strconv.Atoi(fields[fieldForecastHour])
	if err != nil || hour < 0 {
		return ForecastPoint{}, false
	}
	lat, ok := parseLatLon(fields[fieldLat])
	if !ok || lat == 0 {
		return ForecastPoint{}, false
	}
	lon, ok := parseLatLon(fields[fieldLon])
	if !ok || lon == 0 {
		return ForecastPoint{}, false
	}
	wind, err := strconv.ParseFloat(fields[fieldMaxWind], 64)
	if err != nil {
		return ForecastPoint{}, false
	}

	// Cyclone number and pressure default to zero rather than dropping the
	// fix; neither gates cone construction.
	number, _ := strconv.Atoi(fields[fieldCycloneNumber])
	var pressure float64
	if len(fields) > fieldMinPressure {
		pressure, _ = strconv.ParseFloat(fields[fieldMinPressure], 64)
	}

	p := ForecastPoint{
		Basin:         strings.ToUpper(fields[fieldBasin]),
		CycloneNumber: number,
		IssuedAt:      issuedAt,
		ModelNumber:   fields[fieldModelNumber],
		Model:         strings.ToUpper(fields[fieldModel]),
		ForecastHour:  hour,
		Lat:           lat,
		Lon:           lon,
		MaxWindKt:     wind,
		MinPressureMb: pressure,
	}
	if len(fields) > fixedFieldCount {
		p.Extra = fields[fixedFieldCount:]
	}
	if len(fields) > fieldStormName {
		p.StormName = strings.ToUpper(fields[fieldStormName])
	}

	p.ValidAt = issuedAt.Add(time.Duration(hour) * time.Hour)
	p.WindCat = WindCategory(p.MaxWindKt)
	p.PressureCat = PressureCategory(p.MinPressureMb)
	p.MaxSeverity = MaxSeverity(p.WindCat, p.PressureCat)

	return p, true
}

// parseLatLon decodes an ATCF coordinate: tenths of a degree with an optional
// trailing hemisphere letter, negative for S and W. Returns false for
// malformed values.
func parseLatLon(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	sign := 1.0
	switch value[len(value)-1] {
	case 'S', 'W':
		sign = -1.0
		value = value[:len(value)-1]
	case 'N', 'E':
		value = value[:len(value)-1]
	}

	tenths, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return sign * tenths / 10.0, true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
