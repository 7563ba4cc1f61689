// Package domain models tropical cyclone forecast-advisory data.
//
// # Data Source
//
// Forecast tracks originate from ATCF a-deck advisory files, one file per
// storm, one forecast fix per line. An upstream collector keeps a local
// directory of these files current; this module only parses them.
//
// # A-Deck Conventions
//
// Each line is comma-delimited with a fixed leading schema:
//
//	BASIN, CY, YYYYMMDDHH, TECHNUM, TECH, TAU, LAT, LON, VMAX, MSLP, ...
//
//	BASIN      two-letter basin code (AL, EP, CP, WP, IO, SH, SL)
//	CY         cyclone sequence number within the basin and season
//	YYYYMMDDHH advisory issuance time, UTC
//	TECH       forecast source (model) identifier, e.g. OFCL, AVNO
//	TAU        forecast horizon in hours from issuance
//	VMAX       maximum sustained wind in knots
//	MSLP       minimum central pressure in millibars
//
// Coordinate format:
//
//	Tenths of a degree with a trailing hemisphere letter: "265N" = 26.5°N,
//	"0791W" = -79.1°. South and west are negative. A fix at exactly 0° latitude
//	or longitude is a placeholder, not a valid position, and is dropped.
//
// Field counts vary by line; trailing fields past MSLP are preserved in order
// under [ForecastPoint.Extra]. Field 27, when present, carries the storm name
// token used by [InferStormName].
//
// # Intensity Classification
//
// Two independent scales classify each fix: the Saffir-Simpson wind scale
// (knots, half-open bounds, see [WindCategory]) and a central-pressure scale
// (millibars, inverse relationship, see [PressureCategory]). The wind-based
// category is the displayed one; [MaxSeverity] retains the higher ordinal of
// the two for downstream severity reasoning.
//
// # Uncertainty Radii
//
// NHC publishes 2/3-probability circle radii by basin and forecast horizon.
// [DefaultRadii] carries the published AL, EP, and CP tables; basins without
// published statistics (WP, IO, SH, SL) reuse the Atlantic values as a
// documented approximation. A lookup miss means the fix contributes no buffer
// to the cone, never a substituted default.
package domain
