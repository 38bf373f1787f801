// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import "github.com/alqudimi/portfolio-go/internal/model"

// Default admin credentials. The password is only used when
// PORTFOLIO_ADMIN_PASSWORD is not set and must be changed after first login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@alqudimi.tech"
	DefaultAdminPassword = "changeme"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

// defaultServices returns the seed service listings. Both backends use the
// same fixtures so a fresh database and a fresh memory store look identical.
func defaultServices() []CreateServiceParams {
	return []CreateServiceParams{
		{
			Title:         "تطوير المواقع",
			TitleEn:       strPtr("Web Development"),
			Description:   "تصميم وتطوير مواقع حديثة ومتجاوبة باستخدام أحدث التقنيات",
			DescriptionEn: strPtr("Design and development of modern, responsive websites using the latest technologies"),
			Icon:          "Code",
			Color:         "blue",
			Features:      model.StringList{"تصميم متجاوب", "أداء عالي", "تحسين محركات البحث"},
			FeaturesEn:    model.StringList{"Responsive design", "High performance", "SEO optimization"},
			Order:         intPtr(1),
		},
		{
			Title:         "تطبيقات الجوال",
			TitleEn:       strPtr("Mobile Applications"),
			Description:   "بناء تطبيقات جوال أصلية وهجينة لنظامي أندرويد و iOS",
			DescriptionEn: strPtr("Building native and hybrid mobile apps for Android and iOS"),
			Icon:          "Smartphone",
			Color:         "green",
			Features:      model.StringList{"واجهات سلسة", "دعم المنصتين", "إشعارات فورية"},
			FeaturesEn:    model.StringList{"Smooth interfaces", "Cross-platform support", "Push notifications"},
			Order:         intPtr(2),
		},
		{
			Title:         "أنظمة إدارة المحتوى",
			TitleEn:       strPtr("Content Management Systems"),
			Description:   "حلول إدارة محتوى مخصصة مع لوحات تحكم سهلة الاستخدام",
			DescriptionEn: strPtr("Custom content management solutions with easy-to-use dashboards"),
			Icon:          "Database",
			Color:         "purple",
			Features:      model.StringList{"لوحة تحكم عربية", "نسخ احتياطي", "صلاحيات متعددة"},
			FeaturesEn:    model.StringList{"Arabic dashboard", "Backups", "Role-based access"},
			Order:         intPtr(3),
		},
	}
}

// defaultProjects returns the seed portfolio projects.
func defaultProjects() []CreateProjectParams {
	return []CreateProjectParams{
		{
			Title:            "منصة التجارة الإلكترونية",
			TitleEn:          strPtr("E-Commerce Platform"),
			Description:      "متجر إلكتروني متكامل مع بوابات دفع محلية وإدارة مخزون",
			DescriptionEn:    strPtr("Full e-commerce store with local payment gateways and inventory management"),
			ShortDescription: strPtr("متجر إلكتروني متكامل"),
			Technologies:     model.StringList{"React", "Node.js", "PostgreSQL"},
			Images:           model.StringList{"/images/projects/ecommerce-1.png"},
			Category:         "web",
			IsFeatured:       boolPtr(true),
			Order:            intPtr(1),
		},
		{
			Title:            "نظام إدارة العيادات",
			TitleEn:          strPtr("Clinic Management System"),
			Description:      "نظام حجوزات ومواعيد وملفات مرضى للعيادات الطبية",
			DescriptionEn:    strPtr("Appointments, bookings and patient records for medical clinics"),
			ShortDescription: strPtr("نظام حجوزات طبية"),
			Technologies:     model.StringList{"Vue", "Express", "MySQL"},
			Images:           model.StringList{},
			Category:         "web",
			Order:            intPtr(2),
		},
	}
}

// defaultCvData returns the seed resume entries.
func defaultCvData() []CreateCvDataParams {
	return []CreateCvDataParams{
		{
			Type:          model.CvTypePersonal,
			Title:         "عبدالعزيز القديمي",
			TitleEn:       strPtr("Abdulaziz Alqudimi"),
			Subtitle:      strPtr("مهندس برمجيات"),
			SubtitleEn:    strPtr("Software Engineer"),
			Location:      strPtr("صنعاء، اليمن"),
			LocationEn:    strPtr("Sana'a, Yemen"),
			Order:         intPtr(1),
		},
		{
			Type:          model.CvTypeSummary,
			Title:         "نبذة مهنية",
			TitleEn:       strPtr("Professional Summary"),
			Description:   strPtr("مهندس برمجيات متخصص في بناء تطبيقات الويب والأنظمة الخلفية"),
			DescriptionEn: strPtr("Software engineer specialized in web applications and backend systems"),
			Order:         intPtr(2),
		},
		{
			Type:     model.CvTypeSkill,
			Title:    "تطوير الواجهات الخلفية",
			TitleEn:  strPtr("Backend Development"),
			Skills:   model.StringList{"Go", "Node.js", "PostgreSQL", "Redis"},
			Level:    intPtr(5),
			Order:    intPtr(3),
		},
		{
			Type:      model.CvTypeEducation,
			Title:     "بكالوريوس علوم الحاسوب",
			TitleEn:   strPtr("B.Sc. Computer Science"),
			Subtitle:  strPtr("جامعة صنعاء"),
			SubtitleEn: strPtr("Sana'a University"),
			StartDate: strPtr("2016"),
			EndDate:   strPtr("2020"),
			Order:     intPtr(4),
		},
	}
}

// defaultContactInfo returns the seed contact channels.
func defaultContactInfo() []CreateContactInfoParams {
	return []CreateContactInfoParams{
		{
			Type:      model.ContactTypeEmail,
			Label:     "البريد الإلكتروني",
			LabelEn:   strPtr("Email"),
			Value:     "info@alqudimi.tech",
			Icon:      strPtr("Mail"),
			URL:       strPtr("mailto:info@alqudimi.tech"),
			IsPrimary: boolPtr(true),
			Order:     intPtr(1),
		},
		{
			Type:    model.ContactTypePhone,
			Label:   "الهاتف",
			LabelEn: strPtr("Phone"),
			Value:   "+967 700 000 000",
			Icon:    strPtr("Phone"),
			Order:   intPtr(2),
		},
		{
			Type:    model.ContactTypeSocial,
			Label:   "جيت هاب",
			LabelEn: strPtr("GitHub"),
			Value:   "github.com/alqudimi",
			Icon:    strPtr("Github"),
			URL:     strPtr("https://github.com/alqudimi"),
			Order:   intPtr(3),
		},
	}
}

// defaultSiteSettings returns the seed configuration rows.
func defaultSiteSettings() []CreateSiteSettingParams {
	return []CreateSiteSettingParams{
		{Key: model.SettingKeySiteName, Value: "تقنية القديمي", Type: model.SettingTypeString, Category: model.SettingCategoryGeneral},
		{Key: model.SettingKeySiteDescription, Value: "حلول برمجية متكاملة", Type: model.SettingTypeString, Category: model.SettingCategoryGeneral},
		{Key: model.SettingKeyDefaultLanguage, Value: "ar", Type: model.SettingTypeString, Category: model.SettingCategoryGeneral},
		{Key: model.SettingKeyPostsPerPage, Value: "10", Type: model.SettingTypeInt, Category: model.SettingCategoryGeneral},
	}
}
