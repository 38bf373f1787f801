// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alqudimi/portfolio-go/internal/auth"
	"github.com/alqudimi/portfolio-go/internal/model"
)

// MemoryStore is the in-process implementation of the Storage contract.
// It is the fallback backend when no database is reachable: fully
// functional for the display entities, intentionally stubbed for blog,
// testimonials, newsletter and analytics (those require a database;
// writes fail loudly with ErrNotImplemented rather than losing data).
//
// All operations take the store lock, so the backend is safe under
// concurrent request handlers.
type MemoryStore struct {
	mu sync.RWMutex

	admins          []model.AdminUser
	services        []model.Service
	projects        []model.Project
	cvData          []model.CvData
	contactInfo     []model.ContactInfo
	contactMessages []model.ContactMessage
	siteSettings    []model.SiteSetting

	seeded bool
}

// NewMemoryStore constructs a memory store pre-populated with the default
// seed content. adminPasswordHash seeds the admin account; when empty the
// default password is hashed instead.
func NewMemoryStore(adminPasswordHash string) (*MemoryStore, error) {
	m := &MemoryStore{}
	if err := m.seed(adminPasswordHash); err != nil {
		return nil, err
	}
	return m, nil
}

// seed populates the entity lists with default content. Guarded by the
// seeded flag so repeated calls do not duplicate rows.
func (m *MemoryStore) seed(adminPasswordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seeded {
		return nil
	}

	if adminPasswordHash == "" {
		hash, err := auth.HashPassword(DefaultAdminPassword)
		if err != nil {
			return err
		}
		adminPasswordHash = hash
	}

	now := time.Now()
	m.admins = append(m.admins, model.AdminUser{
		ID:           uuid.NewString(),
		Username:     DefaultAdminUsername,
		PasswordHash: adminPasswordHash,
		Email:        DefaultAdminEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	for _, p := range defaultServices() {
		m.services = append(m.services, newService(p))
	}
	for _, p := range defaultProjects() {
		m.projects = append(m.projects, newProject(p))
	}
	for _, p := range defaultCvData() {
		m.cvData = append(m.cvData, newCvData(p))
	}
	for _, p := range defaultContactInfo() {
		m.contactInfo = append(m.contactInfo, newContactInfo(p))
	}
	for _, p := range defaultSiteSettings() {
		m.siteSettings = append(m.siteSettings, newSiteSetting(p))
	}

	m.seeded = true
	return nil
}

// Record constructors shared with nothing else: the memory backend stamps
// ids and timestamps itself, mirroring what the database defaults produce.

func newService(p CreateServiceParams) model.Service {
	now := time.Now()
	return model.Service{
		ID:            uuid.NewString(),
		Title:         p.Title,
		TitleEn:       p.TitleEn,
		Description:   p.Description,
		DescriptionEn: p.DescriptionEn,
		Icon:          p.Icon,
		Color:         p.Color,
		Features:      p.Features.Clone(),
		FeaturesEn:    p.FeaturesEn.Clone(),
		IsActive:      boolOrDefault(p.IsActive, true),
		Order:         intOrDefault(p.Order, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newProject(p CreateProjectParams) model.Project {
	now := time.Now()
	return model.Project{
		ID:                 uuid.NewString(),
		Title:              p.Title,
		TitleEn:            p.TitleEn,
		Description:        p.Description,
		DescriptionEn:      p.DescriptionEn,
		ShortDescription:   p.ShortDescription,
		ShortDescriptionEn: p.ShortDescriptionEn,
		Technologies:       p.Technologies.Clone(),
		Images:             p.Images.Clone(),
		LiveURL:            p.LiveURL,
		GithubURL:          p.GithubURL,
		Category:           p.Category,
		IsActive:           boolOrDefault(p.IsActive, true),
		IsFeatured:         boolOrDefault(p.IsFeatured, false),
		Order:              intOrDefault(p.Order, 0),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func newCvData(p CreateCvDataParams) model.CvData {
	now := time.Now()
	return model.CvData{
		ID:            uuid.NewString(),
		Type:          p.Type,
		Title:         p.Title,
		TitleEn:       p.TitleEn,
		Subtitle:      p.Subtitle,
		SubtitleEn:    p.SubtitleEn,
		Description:   p.Description,
		DescriptionEn: p.DescriptionEn,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Location:      p.Location,
		LocationEn:    p.LocationEn,
		Skills:        p.Skills.Clone(),
		Level:         p.Level,
		URL:           p.URL,
		Icon:          p.Icon,
		IsActive:      boolOrDefault(p.IsActive, true),
		Order:         intOrDefault(p.Order, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newContactInfo(p CreateContactInfoParams) model.ContactInfo {
	now := time.Now()
	return model.ContactInfo{
		ID:        uuid.NewString(),
		Type:      p.Type,
		Label:     p.Label,
		LabelEn:   p.LabelEn,
		Value:     p.Value,
		Icon:      p.Icon,
		URL:       p.URL,
		IsPrimary: boolOrDefault(p.IsPrimary, false),
		IsActive:  boolOrDefault(p.IsActive, true),
		Order:     intOrDefault(p.Order, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newSiteSetting(p CreateSiteSettingParams) model.SiteSetting {
	now := time.Now()
	return model.SiteSetting{
		ID:        uuid.NewString(),
		Key:       p.Key,
		Value:     p.Value,
		Type:      p.Type,
		Category:  p.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func boolOrDefault(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func intOrDefault(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

// sortByOrder sorts ascending by Order with ties broken by the original
// slice position, which for the memory backend is insertion order.
func sortByOrder[T any](items []T, order func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		return order(items[i]) < order(items[j])
	})
}

// --- Admin users ---

func (m *MemoryStore) GetAdminUser(_ context.Context, id string) (*model.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.admins {
		if m.admins[i].ID == id {
			u := m.admins[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) GetAdminUserByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.admins {
		if m.admins[i].Username == username {
			u := m.admins[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateAdminUser(_ context.Context, params CreateAdminUserParams) (*model.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.admins {
		if m.admins[i].Username == params.Username {
			return nil, ErrDuplicate
		}
		if strings.EqualFold(m.admins[i].Email, params.Email) {
			return nil, ErrDuplicate
		}
	}

	now := time.Now()
	u := model.AdminUser{
		ID:           uuid.NewString(),
		Username:     params.Username,
		PasswordHash: params.PasswordHash,
		Email:        params.Email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.admins = append(m.admins, u)
	return &u, nil
}

func (m *MemoryStore) UpdateAdminUser(_ context.Context, id string, params UpdateAdminUserParams) (*model.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.admins {
		if m.admins[i].ID != id {
			continue
		}
		if params.Username != nil {
			m.admins[i].Username = *params.Username
		}
		if params.PasswordHash != nil {
			m.admins[i].PasswordHash = *params.PasswordHash
		}
		if params.Email != nil {
			m.admins[i].Email = *params.Email
		}
		m.admins[i].UpdatedAt = time.Now()
		u := m.admins[i]
		return &u, nil
	}
	return nil, nil
}

// Reads hand out copies whose list fields share no backing storage with
// the store, so a caller mutating a result cannot corrupt stored records.

func cloneService(s model.Service) model.Service {
	s.Features = s.Features.Clone()
	s.FeaturesEn = s.FeaturesEn.Clone()
	return s
}

func cloneProject(p model.Project) model.Project {
	p.Technologies = p.Technologies.Clone()
	p.Images = p.Images.Clone()
	return p
}

func cloneCvData(c model.CvData) model.CvData {
	c.Skills = c.Skills.Clone()
	return c
}

// --- Services ---

func (m *MemoryStore) GetServices(_ context.Context) ([]model.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedServices(func(model.Service) bool { return true }), nil
}

func (m *MemoryStore) GetActiveServices(_ context.Context) ([]model.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedServices(func(s model.Service) bool { return s.IsActive }), nil
}

func (m *MemoryStore) sortedServices(keep func(model.Service) bool) []model.Service {
	out := make([]model.Service, 0, len(m.services))
	for i := range m.services {
		if keep(m.services[i]) {
			out = append(out, cloneService(m.services[i]))
		}
	}
	sortByOrder(out, func(s model.Service) int { return s.Order })
	return out
}

func (m *MemoryStore) GetService(_ context.Context, id string) (*model.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.services {
		if m.services[i].ID == id {
			s := cloneService(m.services[i])
			return &s, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateService(_ context.Context, params CreateServiceParams) (*model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := newService(params)
	m.services = append(m.services, s)
	out := cloneService(s)
	return &out, nil
}

func (m *MemoryStore) UpdateService(_ context.Context, id string, params UpdateServiceParams) (*model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID != id {
			continue
		}
		s := &m.services[i]
		if params.Title != nil {
			s.Title = *params.Title
		}
		if params.TitleEn != nil {
			s.TitleEn = params.TitleEn
		}
		if params.Description != nil {
			s.Description = *params.Description
		}
		if params.DescriptionEn != nil {
			s.DescriptionEn = params.DescriptionEn
		}
		if params.Icon != nil {
			s.Icon = *params.Icon
		}
		if params.Color != nil {
			s.Color = *params.Color
		}
		if params.Features != nil {
			s.Features = params.Features.Clone()
		}
		if params.FeaturesEn != nil {
			s.FeaturesEn = params.FeaturesEn.Clone()
		}
		if params.IsActive != nil {
			s.IsActive = *params.IsActive
		}
		if params.Order != nil {
			s.Order = *params.Order
		}
		s.UpdatedAt = time.Now()
		out := cloneService(*s)
		return &out, nil
	}
	return nil, nil
}

func (m *MemoryStore) DeleteService(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- Projects ---

func (m *MemoryStore) GetProjects(_ context.Context) ([]model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedProjects(func(model.Project) bool { return true }), nil
}

func (m *MemoryStore) GetActiveProjects(_ context.Context) ([]model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedProjects(func(p model.Project) bool { return p.IsActive }), nil
}

func (m *MemoryStore) GetFeaturedProjects(_ context.Context) ([]model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedProjects(func(p model.Project) bool { return p.IsActive && p.IsFeatured }), nil
}

func (m *MemoryStore) GetProjectsByCategory(_ context.Context, category string) ([]model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedProjects(func(p model.Project) bool { return p.IsActive && p.Category == category }), nil
}

func (m *MemoryStore) sortedProjects(keep func(model.Project) bool) []model.Project {
	out := make([]model.Project, 0, len(m.projects))
	for i := range m.projects {
		if keep(m.projects[i]) {
			out = append(out, cloneProject(m.projects[i]))
		}
	}
	sortByOrder(out, func(p model.Project) int { return p.Order })
	return out
}

func (m *MemoryStore) GetProject(_ context.Context, id string) (*model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.projects {
		if m.projects[i].ID == id {
			p := cloneProject(m.projects[i])
			return &p, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateProject(_ context.Context, params CreateProjectParams) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := newProject(params)
	m.projects = append(m.projects, p)
	out := cloneProject(p)
	return &out, nil
}

func (m *MemoryStore) UpdateProject(_ context.Context, id string, params UpdateProjectParams) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID != id {
			continue
		}
		p := &m.projects[i]
		if params.Title != nil {
			p.Title = *params.Title
		}
		if params.TitleEn != nil {
			p.TitleEn = params.TitleEn
		}
		if params.Description != nil {
			p.Description = *params.Description
		}
		if params.DescriptionEn != nil {
			p.DescriptionEn = params.DescriptionEn
		}
		if params.ShortDescription != nil {
			p.ShortDescription = params.ShortDescription
		}
		if params.ShortDescriptionEn != nil {
			p.ShortDescriptionEn = params.ShortDescriptionEn
		}
		if params.Technologies != nil {
			p.Technologies = params.Technologies.Clone()
		}
		if params.Images != nil {
			p.Images = params.Images.Clone()
		}
		if params.LiveURL != nil {
			p.LiveURL = params.LiveURL
		}
		if params.GithubURL != nil {
			p.GithubURL = params.GithubURL
		}
		if params.Category != nil {
			p.Category = *params.Category
		}
		if params.IsActive != nil {
			p.IsActive = *params.IsActive
		}
		if params.IsFeatured != nil {
			p.IsFeatured = *params.IsFeatured
		}
		if params.Order != nil {
			p.Order = *params.Order
		}
		p.UpdatedAt = time.Now()
		out := cloneProject(*p)
		return &out, nil
	}
	return nil, nil
}

func (m *MemoryStore) DeleteProject(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- CV entries ---

func (m *MemoryStore) GetCvData(_ context.Context) ([]model.CvData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedCvData(func(model.CvData) bool { return true }), nil
}

func (m *MemoryStore) GetActiveCvData(_ context.Context) ([]model.CvData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedCvData(func(c model.CvData) bool { return c.IsActive }), nil
}

func (m *MemoryStore) GetCvDataByType(_ context.Context, cvType string) ([]model.CvData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedCvData(func(c model.CvData) bool { return c.IsActive && c.Type == cvType }), nil
}

func (m *MemoryStore) sortedCvData(keep func(model.CvData) bool) []model.CvData {
	out := make([]model.CvData, 0, len(m.cvData))
	for i := range m.cvData {
		if keep(m.cvData[i]) {
			out = append(out, cloneCvData(m.cvData[i]))
		}
	}
	sortByOrder(out, func(c model.CvData) int { return c.Order })
	return out
}

func (m *MemoryStore) GetCvDataByID(_ context.Context, id string) (*model.CvData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.cvData {
		if m.cvData[i].ID == id {
			c := cloneCvData(m.cvData[i])
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateCvData(_ context.Context, params CreateCvDataParams) (*model.CvData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := newCvData(params)
	m.cvData = append(m.cvData, c)
	out := cloneCvData(c)
	return &out, nil
}

func (m *MemoryStore) UpdateCvData(_ context.Context, id string, params UpdateCvDataParams) (*model.CvData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cvData {
		if m.cvData[i].ID != id {
			continue
		}
		c := &m.cvData[i]
		if params.Title != nil {
			c.Title = *params.Title
		}
		if params.TitleEn != nil {
			c.TitleEn = params.TitleEn
		}
		if params.Subtitle != nil {
			c.Subtitle = params.Subtitle
		}
		if params.SubtitleEn != nil {
			c.SubtitleEn = params.SubtitleEn
		}
		if params.Description != nil {
			c.Description = params.Description
		}
		if params.DescriptionEn != nil {
			c.DescriptionEn = params.DescriptionEn
		}
		if params.StartDate != nil {
			c.StartDate = params.StartDate
		}
		if params.EndDate != nil {
			c.EndDate = params.EndDate
		}
		if params.Location != nil {
			c.Location = params.Location
		}
		if params.LocationEn != nil {
			c.LocationEn = params.LocationEn
		}
		if params.Skills != nil {
			c.Skills = params.Skills.Clone()
		}
		if params.Level != nil {
			c.Level = params.Level
		}
		if params.URL != nil {
			c.URL = params.URL
		}
		if params.Icon != nil {
			c.Icon = params.Icon
		}
		if params.IsActive != nil {
			c.IsActive = *params.IsActive
		}
		if params.Order != nil {
			c.Order = *params.Order
		}
		c.UpdatedAt = time.Now()
		out := cloneCvData(*c)
		return &out, nil
	}
	return nil, nil
}

func (m *MemoryStore) DeleteCvData(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cvData {
		if m.cvData[i].ID == id {
			m.cvData = append(m.cvData[:i], m.cvData[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- Contact info ---

func (m *MemoryStore) GetContactInfo(_ context.Context) ([]model.ContactInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedContactInfo(func(model.ContactInfo) bool { return true }), nil
}

func (m *MemoryStore) GetActiveContactInfo(_ context.Context) ([]model.ContactInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedContactInfo(func(c model.ContactInfo) bool { return c.IsActive }), nil
}

func (m *MemoryStore) sortedContactInfo(keep func(model.ContactInfo) bool) []model.ContactInfo {
	out := make([]model.ContactInfo, 0, len(m.contactInfo))
	for i := range m.contactInfo {
		if keep(m.contactInfo[i]) {
			out = append(out, m.contactInfo[i])
		}
	}
	sortByOrder(out, func(c model.ContactInfo) int { return c.Order })
	return out
}

func (m *MemoryStore) GetContactInfoByID(_ context.Context, id string) (*model.ContactInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.contactInfo {
		if m.contactInfo[i].ID == id {
			c := m.contactInfo[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateContactInfo(_ context.Context, params CreateContactInfoParams) (*model.ContactInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := newContactInfo(params)
	m.contactInfo = append(m.contactInfo, c)
	return &c, nil
}

func (m *MemoryStore) UpdateContactInfo(_ context.Context, id string, params UpdateContactInfoParams) (*model.ContactInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.contactInfo {
		if m.contactInfo[i].ID != id {
			continue
		}
		c := &m.contactInfo[i]
		if params.Type != nil {
			c.Type = *params.Type
		}
		if params.Label != nil {
			c.Label = *params.Label
		}
		if params.LabelEn != nil {
			c.LabelEn = params.LabelEn
		}
		if params.Value != nil {
			c.Value = *params.Value
		}
		if params.Icon != nil {
			c.Icon = params.Icon
		}
		if params.URL != nil {
			c.URL = params.URL
		}
		if params.IsPrimary != nil {
			c.IsPrimary = *params.IsPrimary
		}
		if params.IsActive != nil {
			c.IsActive = *params.IsActive
		}
		if params.Order != nil {
			c.Order = *params.Order
		}
		c.UpdatedAt = time.Now()
		out := *c
		return &out, nil
	}
	return nil, nil
}

func (m *MemoryStore) DeleteContactInfo(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.contactInfo {
		if m.contactInfo[i].ID == id {
			m.contactInfo = append(m.contactInfo[:i], m.contactInfo[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- Contact messages ---

func (m *MemoryStore) GetContactMessages(_ context.Context) ([]model.ContactMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.ContactMessage, len(m.contactMessages))
	copy(out, m.contactMessages)
	// Newest first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetContactMessage(_ context.Context, id string) (*model.ContactMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.contactMessages {
		if m.contactMessages[i].ID == id {
			msg := m.contactMessages[i]
			return &msg, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateContactMessage(_ context.Context, params CreateContactMessageParams) (*model.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	msg := model.ContactMessage{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Email:       params.Email,
		Subject:     params.Subject,
		ServiceType: params.ServiceType,
		Message:     params.Message,
		Status:      model.MessageStatusUnread,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.contactMessages = append(m.contactMessages, msg)
	return &msg, nil
}

func (m *MemoryStore) UpdateContactMessageStatus(_ context.Context, id, status string) (*model.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.contactMessages {
		if m.contactMessages[i].ID == id {
			m.contactMessages[i].Status = status
			m.contactMessages[i].UpdatedAt = time.Now()
			msg := m.contactMessages[i]
			return &msg, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) DeleteContactMessage(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.contactMessages {
		if m.contactMessages[i].ID == id {
			m.contactMessages = append(m.contactMessages[:i], m.contactMessages[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- Site settings ---

func (m *MemoryStore) GetSiteSettings(_ context.Context) ([]model.SiteSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.SiteSetting, len(m.siteSettings))
	copy(out, m.siteSettings)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *MemoryStore) GetSiteSettingByKey(_ context.Context, key string) (*model.SiteSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.siteSettings {
		if m.siteSettings[i].Key == key {
			s := m.siteSettings[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateSiteSetting(_ context.Context, params CreateSiteSettingParams) (*model.SiteSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.siteSettings {
		if m.siteSettings[i].Key == params.Key {
			return nil, ErrDuplicate
		}
	}

	s := newSiteSetting(params)
	m.siteSettings = append(m.siteSettings, s)
	return &s, nil
}

func (m *MemoryStore) UpdateSiteSettingByKey(_ context.Context, key, value string) (*model.SiteSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.siteSettings {
		if m.siteSettings[i].Key == key {
			m.siteSettings[i].Value = value
			m.siteSettings[i].UpdatedAt = time.Now()
			s := m.siteSettings[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) DeleteSiteSetting(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.siteSettings {
		if m.siteSettings[i].ID == id {
			m.siteSettings = append(m.siteSettings[:i], m.siteSettings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- Stubbed entities ---
//
// Blog posts, testimonials, newsletter and analytics are database-only:
// reads return empty results, writes return ErrNotImplemented. This
// degraded behavior is deliberate and must stay visible to callers.

func (m *MemoryStore) GetBlogPosts(context.Context) ([]model.BlogPost, error) {
	return []model.BlogPost{}, nil
}

func (m *MemoryStore) GetPublishedBlogPosts(context.Context) ([]model.BlogPost, error) {
	return []model.BlogPost{}, nil
}

func (m *MemoryStore) GetFeaturedBlogPosts(context.Context) ([]model.BlogPost, error) {
	return []model.BlogPost{}, nil
}

func (m *MemoryStore) GetBlogPost(context.Context, string) (*model.BlogPost, error) {
	return nil, nil
}

func (m *MemoryStore) GetBlogPostBySlug(context.Context, string) (*model.BlogPost, error) {
	return nil, nil
}

func (m *MemoryStore) CreateBlogPost(context.Context, CreateBlogPostParams) (*model.BlogPost, error) {
	return nil, ErrNotImplemented
}

func (m *MemoryStore) UpdateBlogPost(context.Context, string, UpdateBlogPostParams) (*model.BlogPost, error) {
	return nil, ErrNotImplemented
}

func (m *MemoryStore) DeleteBlogPost(context.Context, string) (bool, error) {
	return false, ErrNotImplemented
}

func (m *MemoryStore) IncrementBlogPostViews(context.Context, string) error {
	return ErrNotImplemented
}

func (m *MemoryStore) GetTestimonials(context.Context) ([]model.Testimonial, error) {
	return []model.Testimonial{}, nil
}

func (m *MemoryStore) GetPublishedTestimonials(context.Context) ([]model.Testimonial, error) {
	return []model.Testimonial{}, nil
}

func (m *MemoryStore) GetFeaturedTestimonials(context.Context) ([]model.Testimonial, error) {
	return []model.Testimonial{}, nil
}

func (m *MemoryStore) GetTestimonialsByProject(context.Context, string) ([]model.Testimonial, error) {
	return []model.Testimonial{}, nil
}

func (m *MemoryStore) GetTestimonial(context.Context, string) (*model.Testimonial, error) {
	return nil, nil
}

func (m *MemoryStore) CreateTestimonial(context.Context, CreateTestimonialParams) (*model.Testimonial, error) {
	return nil, ErrNotImplemented
}

func (m *MemoryStore) UpdateTestimonial(context.Context, string, UpdateTestimonialParams) (*model.Testimonial, error) {
	return nil, ErrNotImplemented
}

func (m *MemoryStore) DeleteTestimonial(context.Context, string) (bool, error) {
	return false, ErrNotImplemented
}

func (m *MemoryStore) GetSubscribers(context.Context) ([]model.NewsletterSubscriber, error) {
	return []model.NewsletterSubscriber{}, nil
}

func (m *MemoryStore) GetActiveSubscribers(context.Context) ([]model.NewsletterSubscriber, error) {
	return []model.NewsletterSubscriber{}, nil
}

func (m *MemoryStore) GetSubscriberByEmail(context.Context, string) (*model.NewsletterSubscriber, error) {
	return nil, nil
}

func (m *MemoryStore) CreateSubscriber(context.Context, CreateSubscriberParams) (*model.NewsletterSubscriber, error) {
	return nil, ErrNotImplemented
}

func (m *MemoryStore) UnsubscribeByEmail(context.Context, string) (bool, error) {
	return false, ErrNotImplemented
}

func (m *MemoryStore) DeleteSubscriber(context.Context, string) (bool, error) {
	return false, ErrNotImplemented
}

func (m *MemoryStore) TrackEvent(context.Context, CreateAnalyticsEventParams) (*model.AnalyticsEvent, error) {
	return nil, ErrNotImplemented
}

func (m *MemoryStore) GetAnalyticsEvents(context.Context, time.Time) ([]model.AnalyticsEvent, error) {
	return []model.AnalyticsEvent{}, nil
}

func (m *MemoryStore) GetAnalyticsEventsByType(context.Context, string, time.Time) ([]model.AnalyticsEvent, error) {
	return []model.AnalyticsEvent{}, nil
}

func (m *MemoryStore) CountAnalyticsEvents(context.Context, string, time.Time) (int64, error) {
	return 0, nil
}

func (m *MemoryStore) DeleteAnalyticsEventsBefore(context.Context, time.Time) (int64, error) {
	return 0, ErrNotImplemented
}

// Ensure MemoryStore implements the contract.
var _ Storage = (*MemoryStore)(nil)
