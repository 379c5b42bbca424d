// Package domain models the weather chatbot's core types and the calendar
// logic shared by the provider adapters.
//
// # Providers
//
// The chatbot chains three external services per user turn:
//
//	Gemini (generativelanguage.googleapis.com) — extracts a location and date
//	from free-form user text, and later composes the natural-language report.
//	OpenCage (api.opencagedata.com) — forward geocoding, place name → WGS-84
//	coordinates. Only the first result is used.
//	Meteoblue (my.meteoblue.com) — the "basic-day" package, a 7-day daily
//	forecast returned as parallel per-field arrays indexed by day offset.
//
// # Pictocodes
//
// Meteoblue encodes sky and precipitation conditions as a small integer
// "pictocode" in the range 1–35 (1 = clear cloudless sky, 22 = overcast,
// 27 = rain with thunderstorms likely, ...). The full table lives in
// [Describe]; codes outside the table decode to "Unknown weather condition".
//
// # Day offsets
//
// A requested date is addressed as a zero-based offset from today:
//
//	offset = (target date − today) in calendar days
//
// Meteoblue serves exactly [ForecastWindowDays] days starting at today, so a
// forecast exists only when 0 ≤ offset < 7. Offsets are computed on calendar
// dates, not timestamps; "today" comes from the package clock so tests can
// freeze it via [SetClock].
package domain
