// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package geoip

// countryNames maps ISO codes to display names, Arabic first since the
// dashboard defaults to the Arabic locale. Codes outside the map fall back
// to the code itself.
var countryNames = map[string][2]string{
	"LOCAL": {"محلي", "Local"},
	"YE":    {"اليمن", "Yemen"},
	"SA":    {"السعودية", "Saudi Arabia"},
	"AE":    {"الإمارات", "United Arab Emirates"},
	"EG":    {"مصر", "Egypt"},
	"QA":    {"قطر", "Qatar"},
	"KW":    {"الكويت", "Kuwait"},
	"BH":    {"البحرين", "Bahrain"},
	"OM":    {"عُمان", "Oman"},
	"JO":    {"الأردن", "Jordan"},
	"IQ":    {"العراق", "Iraq"},
	"SY":    {"سوريا", "Syria"},
	"LB":    {"لبنان", "Lebanon"},
	"PS":    {"فلسطين", "Palestine"},
	"MA":    {"المغرب", "Morocco"},
	"DZ":    {"الجزائر", "Algeria"},
	"TN":    {"تونس", "Tunisia"},
	"LY":    {"ليبيا", "Libya"},
	"SD":    {"السودان", "Sudan"},
	"TR":    {"تركيا", "Turkey"},
	"US":    {"الولايات المتحدة", "United States"},
	"GB":    {"المملكة المتحدة", "United Kingdom"},
	"DE":    {"ألمانيا", "Germany"},
	"FR":    {"فرنسا", "France"},
	"CA":    {"كندا", "Canada"},
	"AU":    {"أستراليا", "Australia"},
	"IN":    {"الهند", "India"},
	"CN":    {"الصين", "China"},
	"JP":    {"اليابان", "Japan"},
	"BR":    {"البرازيل", "Brazil"},
	"RU":    {"روسيا", "Russia"},
	"MY":    {"ماليزيا", "Malaysia"},
	"ID":    {"إندونيسيا", "Indonesia"},
	"PK":    {"باكستان", "Pakistan"},
	"ET":    {"إثيوبيا", "Ethiopia"},
	"SO":    {"الصومال", "Somalia"},
	"DJ":    {"جيبوتي", "Djibouti"},
	"NL":    {"هولندا", "Netherlands"},
	"SE":    {"السويد", "Sweden"},
	"ES":    {"إسبانيا", "Spain"},
	"IT":    {"إيطاليا", "Italy"},
	"KR":    {"كوريا الجنوبية", "South Korea"},
	"SG":    {"سنغافورة", "Singapore"},
}

// CountryName returns the display name for an ISO country code in the
// requested language ("ar" or anything else for English). Unknown codes
// are returned as-is.
func CountryName(code, lang string) string {
	names, ok := countryNames[code]
	if !ok {
		return code
	}
	if lang == "ar" {
		return names[0]
	}
	return names[1]
}
