// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// CvData entry types. Type is a tagged-union discriminant, not a foreign key.
const (
	CvTypePersonal      = "personal"
	CvTypeSummary       = "summary"
	CvTypeEducation     = "education"
	CvTypeExperience    = "experience"
	CvTypeSkill         = "skill"
	CvTypeCertification = "certification"
	CvTypeProject       = "project"
	CvTypeLanguage      = "language"
	CvTypeHobby         = "hobby"
)

// CvData represents one resume entry of a polymorphic type.
// Level is meaningful only for type=skill and ranges 1-5 when present.
// StartDate and EndDate are free-text, not parsed timestamps.
type CvData struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	TitleEn       *string    `json:"title_en,omitempty"`
	Subtitle      *string    `json:"subtitle,omitempty"`
	SubtitleEn    *string    `json:"subtitle_en,omitempty"`
	Description   *string    `json:"description,omitempty"`
	DescriptionEn *string    `json:"description_en,omitempty"`
	StartDate     *string    `json:"start_date,omitempty"`
	EndDate       *string    `json:"end_date,omitempty"`
	Location      *string    `json:"location,omitempty"`
	LocationEn    *string    `json:"location_en,omitempty"`
	Skills        StringList `json:"skills"`
	Level         *int       `json:"level,omitempty"`
	URL           *string    `json:"url,omitempty"`
	Icon          *string    `json:"icon,omitempty"`
	IsActive      bool       `json:"is_active"`
	Order         int        `json:"order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsValidCvType reports whether t is one of the known CV entry types.
func IsValidCvType(t string) bool {
	switch t {
	case CvTypePersonal, CvTypeSummary, CvTypeEducation, CvTypeExperience,
		CvTypeSkill, CvTypeCertification, CvTypeProject, CvTypeLanguage, CvTypeHobby:
		return true
	}
	return false
}
