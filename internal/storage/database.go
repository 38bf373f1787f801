// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/util"
)

// DatabaseStore implements the Storage contract against a relational
// database. It assumes a live connection unconditionally: the adaptive
// manager is the only place that decides whether this backend is invoked,
// so there is no inline fallback branching here.
type DatabaseStore struct {
	db *sql.DB
}

// NewDatabaseStore wraps an open database handle.
func NewDatabaseStore(db *sql.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// DB exposes the underlying handle for the initializer and health checks.
func (s *DatabaseStore) DB() *sql.DB {
	return s.db
}

// Ping verifies connectivity within the given context's deadline.
func (s *DatabaseStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// mapConstraintErr translates driver-level unique-violation errors into
// ErrDuplicate so callers can detect conflicts without knowing the engine.
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "Duplicate entry") { // mysql error 1062
		return fmt.Errorf("%w: %s", ErrDuplicate, msg)
	}
	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// setClause accumulates a partial UPDATE statement.
type setClause struct {
	cols []string
	args []any
}

func (c *setClause) set(col string, val any) {
	c.cols = append(c.cols, col+" = ?")
	c.args = append(c.args, val)
}

func (c *setClause) sql() string {
	return strings.Join(c.cols, ", ")
}

// --- Admin users ---

const adminUserCols = "id, username, password_hash, email, created_at, updated_at"

func scanAdminUser(row rowScanner) (*model.AdminUser, error) {
	var u model.AdminUser
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *DatabaseStore) GetAdminUser(ctx context.Context, id string) (*model.AdminUser, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+adminUserCols+" FROM admin_users WHERE id = ?", id)
	u, err := scanAdminUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting admin user: %w", err)
	}
	return u, nil
}

func (s *DatabaseStore) GetAdminUserByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+adminUserCols+" FROM admin_users WHERE username = ?", username)
	u, err := scanAdminUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting admin user by username: %w", err)
	}
	return u, nil
}

func (s *DatabaseStore) CreateAdminUser(ctx context.Context, params CreateAdminUserParams) (*model.AdminUser, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO admin_users (id, username, password_hash, email, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, params.Username, params.PasswordHash, params.Email, now, now)
	if err != nil {
		return nil, fmt.Errorf("creating admin user: %w", mapConstraintErr(err))
	}

	return s.GetAdminUser(ctx, id)
}

func (s *DatabaseStore) UpdateAdminUser(ctx context.Context, id string, params UpdateAdminUserParams) (*model.AdminUser, error) {
	var c setClause
	if params.Username != nil {
		c.set("username", *params.Username)
	}
	if params.PasswordHash != nil {
		c.set("password_hash", *params.PasswordHash)
	}
	if params.Email != nil {
		c.set("email", *params.Email)
	}
	c.set("updated_at", time.Now())

	res, err := s.db.ExecContext(ctx,
		"UPDATE admin_users SET "+c.sql()+" WHERE id = ?", append(c.args, id)...)
	if err != nil {
		return nil, fmt.Errorf("updating admin user: %w", mapConstraintErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetAdminUser(ctx, id)
}

// --- Services ---

const serviceCols = "id, title, title_en, description, description_en, icon, color, " +
	"features, features_en, is_active, sort_order, created_at, updated_at"

func scanService(row rowScanner) (*model.Service, error) {
	var svc model.Service
	var titleEn, descEn sql.NullString
	err := row.Scan(&svc.ID, &svc.Title, &titleEn, &svc.Description, &descEn,
		&svc.Icon, &svc.Color, &svc.Features, &svc.FeaturesEn,
		&svc.IsActive, &svc.Order, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	svc.TitleEn = util.PtrFromNullString(titleEn)
	svc.DescriptionEn = util.PtrFromNullString(descEn)
	return &svc, nil
}

func (s *DatabaseStore) queryServices(ctx context.Context, query string, args ...any) ([]model.Service, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	out := []model.Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		out = append(out, *svc)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetServices(ctx context.Context) ([]model.Service, error) {
	return s.queryServices(ctx,
		"SELECT "+serviceCols+" FROM services ORDER BY sort_order ASC, created_at ASC")
}

func (s *DatabaseStore) GetActiveServices(ctx context.Context) ([]model.Service, error) {
	return s.queryServices(ctx,
		"SELECT "+serviceCols+" FROM services WHERE is_active = ? ORDER BY sort_order ASC, created_at ASC", true)
}

func (s *DatabaseStore) GetService(ctx context.Context, id string) (*model.Service, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+serviceCols+" FROM services WHERE id = ?", id)
	svc, err := scanService(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting service: %w", err)
	}
	return svc, nil
}

func (s *DatabaseStore) CreateService(ctx context.Context, params CreateServiceParams) (*model.Service, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO services (id, title, title_en, description, description_en, icon, color, "+
			"features, features_en, is_active, sort_order, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.Title, util.NullStringFromPtr(params.TitleEn),
		params.Description, util.NullStringFromPtr(params.DescriptionEn),
		params.Icon, params.Color, params.Features, params.FeaturesEn,
		boolOrDefault(params.IsActive, true), intOrDefault(params.Order, 0), now, now)
	if err != nil {
		return nil, fmt.Errorf("creating service: %w", mapConstraintErr(err))
	}

	return s.GetService(ctx, id)
}

func (s *DatabaseStore) UpdateService(ctx context.Context, id string, params UpdateServiceParams) (*model.Service, error) {
	var c setClause
	if params.Title != nil {
		c.set("title", *params.Title)
	}
	if params.TitleEn != nil {
		c.set("title_en", *params.TitleEn)
	}
	if params.Description != nil {
		c.set("description", *params.Description)
	}
	if params.DescriptionEn != nil {
		c.set("description_en", *params.DescriptionEn)
	}
	if params.Icon != nil {
		c.set("icon", *params.Icon)
	}
	if params.Color != nil {
		c.set("color", *params.Color)
	}
	if params.Features != nil {
		c.set("features", params.Features)
	}
	if params.FeaturesEn != nil {
		c.set("features_en", params.FeaturesEn)
	}
	if params.IsActive != nil {
		c.set("is_active", *params.IsActive)
	}
	if params.Order != nil {
		c.set("sort_order", *params.Order)
	}
	c.set("updated_at", time.Now())

	res, err := s.db.ExecContext(ctx,
		"UPDATE services SET "+c.sql()+" WHERE id = ?", append(c.args, id)...)
	if err != nil {
		return nil, fmt.Errorf("updating service: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetService(ctx, id)
}

func (s *DatabaseStore) DeleteService(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting service: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Projects ---

const projectCols = "id, title, title_en, description, description_en, short_description, " +
	"short_description_en, technologies, images, live_url, github_url, category, " +
	"is_active, is_featured, sort_order, created_at, updated_at"

func scanProject(row rowScanner) (*model.Project, error) {
	var p model.Project
	var titleEn, descEn, short, shortEn, liveURL, githubURL sql.NullString
	err := row.Scan(&p.ID, &p.Title, &titleEn, &p.Description, &descEn, &short, &shortEn,
		&p.Technologies, &p.Images, &liveURL, &githubURL, &p.Category,
		&p.IsActive, &p.IsFeatured, &p.Order, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.TitleEn = util.PtrFromNullString(titleEn)
	p.DescriptionEn = util.PtrFromNullString(descEn)
	p.ShortDescription = util.PtrFromNullString(short)
	p.ShortDescriptionEn = util.PtrFromNullString(shortEn)
	p.LiveURL = util.PtrFromNullString(liveURL)
	p.GithubURL = util.PtrFromNullString(githubURL)
	return &p, nil
}

func (s *DatabaseStore) queryProjects(ctx context.Context, query string, args ...any) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	out := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetProjects(ctx context.Context) ([]model.Project, error) {
	return s.queryProjects(ctx,
		"SELECT "+projectCols+" FROM projects ORDER BY sort_order ASC, created_at ASC")
}

func (s *DatabaseStore) GetActiveProjects(ctx context.Context) ([]model.Project, error) {
	return s.queryProjects(ctx,
		"SELECT "+projectCols+" FROM projects WHERE is_active = ? ORDER BY sort_order ASC, created_at ASC", true)
}

func (s *DatabaseStore) GetFeaturedProjects(ctx context.Context) ([]model.Project, error) {
	return s.queryProjects(ctx,
		"SELECT "+projectCols+" FROM projects WHERE is_active = ? AND is_featured = ? "+
			"ORDER BY sort_order ASC, created_at ASC", true, true)
}

func (s *DatabaseStore) GetProjectsByCategory(ctx context.Context, category string) ([]model.Project, error) {
	return s.queryProjects(ctx,
		"SELECT "+projectCols+" FROM projects WHERE is_active = ? AND category = ? "+
			"ORDER BY sort_order ASC, created_at ASC", true, category)
}

func (s *DatabaseStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+projectCols+" FROM projects WHERE id = ?", id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

func (s *DatabaseStore) CreateProject(ctx context.Context, params CreateProjectParams) (*model.Project, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO projects (id, title, title_en, description, description_en, short_description, "+
			"short_description_en, technologies, images, live_url, github_url, category, "+
			"is_active, is_featured, sort_order, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.Title, util.NullStringFromPtr(params.TitleEn),
		params.Description, util.NullStringFromPtr(params.DescriptionEn),
		util.NullStringFromPtr(params.ShortDescription), util.NullStringFromPtr(params.ShortDescriptionEn),
		params.Technologies, params.Images,
		util.NullStringFromPtr(params.LiveURL), util.NullStringFromPtr(params.GithubURL),
		params.Category, boolOrDefault(params.IsActive, true), boolOrDefault(params.IsFeatured, false),
		intOrDefault(params.Order, 0), now, now)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", mapConstraintErr(err))
	}

	return s.GetProject(ctx, id)
}

func (s *DatabaseStore) UpdateProject(ctx context.Context, id string, params UpdateProjectParams) (*model.Project, error) {
	var c setClause
	if params.Title != nil {
		c.set("title", *params.Title)
	}
	if params.TitleEn != nil {
		c.set("title_en", *params.TitleEn)
	}
	if params.Description != nil {
		c.set("description", *params.Description)
	}
	if params.DescriptionEn != nil {
		c.set("description_en", *params.DescriptionEn)
	}
	if params.ShortDescription != nil {
		c.set("short_description", *params.ShortDescription)
	}
	if params.ShortDescriptionEn != nil {
		c.set("short_description_en", *params.ShortDescriptionEn)
	}
	if params.Technologies != nil {
		c.set("technologies", params.Technologies)
	}
	if params.Images != nil {
		c.set("images", params.Images)
	}
	if params.LiveURL != nil {
		c.set("live_url", *params.LiveURL)
	}
	if params.GithubURL != nil {
		c.set("github_url", *params.GithubURL)
	}
	if params.Category != nil {
		c.set("category", *params.Category)
	}
	if params.IsActive != nil {
		c.set("is_active", *params.IsActive)
	}
	if params.IsFeatured != nil {
		c.set("is_featured", *params.IsFeatured)
	}
	if params.Order != nil {
		c.set("sort_order", *params.Order)
	}
	c.set("updated_at", time.Now())

	res, err := s.db.ExecContext(ctx,
		"UPDATE projects SET "+c.sql()+" WHERE id = ?", append(c.args, id)...)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetProject(ctx, id)
}

func (s *DatabaseStore) DeleteProject(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- CV entries ---

const cvDataCols = "id, type, title, title_en, subtitle, subtitle_en, description, description_en, " +
	"start_date, end_date, location, location_en, skills, level, url, icon, " +
	"is_active, sort_order, created_at, updated_at"

func scanCvData(row rowScanner) (*model.CvData, error) {
	var cv model.CvData
	var titleEn, subtitle, subtitleEn, desc, descEn sql.NullString
	var startDate, endDate, location, locationEn, cvURL, icon sql.NullString
	var level sql.NullInt64
	err := row.Scan(&cv.ID, &cv.Type, &cv.Title, &titleEn, &subtitle, &subtitleEn, &desc, &descEn,
		&startDate, &endDate, &location, &locationEn, &cv.Skills, &level, &cvURL, &icon,
		&cv.IsActive, &cv.Order, &cv.CreatedAt, &cv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	cv.TitleEn = util.PtrFromNullString(titleEn)
	cv.Subtitle = util.PtrFromNullString(subtitle)
	cv.SubtitleEn = util.PtrFromNullString(subtitleEn)
	cv.Description = util.PtrFromNullString(desc)
	cv.DescriptionEn = util.PtrFromNullString(descEn)
	cv.StartDate = util.PtrFromNullString(startDate)
	cv.EndDate = util.PtrFromNullString(endDate)
	cv.Location = util.PtrFromNullString(location)
	cv.LocationEn = util.PtrFromNullString(locationEn)
	cv.URL = util.PtrFromNullString(cvURL)
	cv.Icon = util.PtrFromNullString(icon)
	cv.Level = util.PtrFromNullInt64(level)
	return &cv, nil
}

func (s *DatabaseStore) queryCvData(ctx context.Context, query string, args ...any) ([]model.CvData, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cv data: %w", err)
	}
	defer rows.Close()

	out := []model.CvData{}
	for rows.Next() {
		cv, err := scanCvData(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cv entry: %w", err)
		}
		out = append(out, *cv)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetCvData(ctx context.Context) ([]model.CvData, error) {
	return s.queryCvData(ctx,
		"SELECT "+cvDataCols+" FROM cv_data ORDER BY sort_order ASC, created_at ASC")
}

func (s *DatabaseStore) GetActiveCvData(ctx context.Context) ([]model.CvData, error) {
	return s.queryCvData(ctx,
		"SELECT "+cvDataCols+" FROM cv_data WHERE is_active = ? ORDER BY sort_order ASC, created_at ASC", true)
}

func (s *DatabaseStore) GetCvDataByType(ctx context.Context, cvType string) ([]model.CvData, error) {
	return s.queryCvData(ctx,
		"SELECT "+cvDataCols+" FROM cv_data WHERE is_active = ? AND type = ? "+
			"ORDER BY sort_order ASC, created_at ASC", true, cvType)
}

func (s *DatabaseStore) GetCvDataByID(ctx context.Context, id string) (*model.CvData, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+cvDataCols+" FROM cv_data WHERE id = ?", id)
	cv, err := scanCvData(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting cv entry: %w", err)
	}
	return cv, nil
}

func (s *DatabaseStore) CreateCvData(ctx context.Context, params CreateCvDataParams) (*model.CvData, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO cv_data (id, type, title, title_en, subtitle, subtitle_en, description, description_en, "+
			"start_date, end_date, location, location_en, skills, level, url, icon, "+
			"is_active, sort_order, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.Type, params.Title, util.NullStringFromPtr(params.TitleEn),
		util.NullStringFromPtr(params.Subtitle), util.NullStringFromPtr(params.SubtitleEn),
		util.NullStringFromPtr(params.Description), util.NullStringFromPtr(params.DescriptionEn),
		util.NullStringFromPtr(params.StartDate), util.NullStringFromPtr(params.EndDate),
		util.NullStringFromPtr(params.Location), util.NullStringFromPtr(params.LocationEn),
		params.Skills, util.NullInt64FromPtr(params.Level),
		util.NullStringFromPtr(params.URL), util.NullStringFromPtr(params.Icon),
		boolOrDefault(params.IsActive, true), intOrDefault(params.Order, 0), now, now)
	if err != nil {
		return nil, fmt.Errorf("creating cv entry: %w", mapConstraintErr(err))
	}

	return s.GetCvDataByID(ctx, id)
}

func (s *DatabaseStore) UpdateCvData(ctx context.Context, id string, params UpdateCvDataParams) (*model.CvData, error) {
	var c setClause
	if params.Title != nil {
		c.set("title", *params.Title)
	}
	if params.TitleEn != nil {
		c.set("title_en", *params.TitleEn)
	}
	if params.Subtitle != nil {
		c.set("subtitle", *params.Subtitle)
	}
	if params.SubtitleEn != nil {
		c.set("subtitle_en", *params.SubtitleEn)
	}
	if params.Description != nil {
		c.set("description", *params.Description)
	}
	if params.DescriptionEn != nil {
		c.set("description_en", *params.DescriptionEn)
	}
	if params.StartDate != nil {
		c.set("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		c.set("end_date", *params.EndDate)
	}
	if params.Location != nil {
		c.set("location", *params.Location)
	}
	if params.LocationEn != nil {
		c.set("location_en", *params.LocationEn)
	}
	if params.Skills != nil {
		c.set("skills", params.Skills)
	}
	if params.Level != nil {
		c.set("level", *params.Level)
	}
	if params.URL != nil {
		c.set("url", *params.URL)
	}
	if params.Icon != nil {
		c.set("icon", *params.Icon)
	}
	if params.IsActive != nil {
		c.set("is_active", *params.IsActive)
	}
	if params.Order != nil {
		c.set("sort_order", *params.Order)
	}
	c.set("updated_at", time.Now())

	res, err := s.db.ExecContext(ctx,
		"UPDATE cv_data SET "+c.sql()+" WHERE id = ?", append(c.args, id)...)
	if err != nil {
		return nil, fmt.Errorf("updating cv entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetCvDataByID(ctx, id)
}

func (s *DatabaseStore) DeleteCvData(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM cv_data WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting cv entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Contact info ---

const contactInfoCols = "id, type, label, label_en, value, icon, url, " +
	"is_primary, is_active, sort_order, created_at, updated_at"

func scanContactInfo(row rowScanner) (*model.ContactInfo, error) {
	var ci model.ContactInfo
	var labelEn, icon, ciURL sql.NullString
	err := row.Scan(&ci.ID, &ci.Type, &ci.Label, &labelEn, &ci.Value, &icon, &ciURL,
		&ci.IsPrimary, &ci.IsActive, &ci.Order, &ci.CreatedAt, &ci.UpdatedAt)
	if err != nil {
		return nil, err
	}
	ci.LabelEn = util.PtrFromNullString(labelEn)
	ci.Icon = util.PtrFromNullString(icon)
	ci.URL = util.PtrFromNullString(ciURL)
	return &ci, nil
}

func (s *DatabaseStore) queryContactInfo(ctx context.Context, query string, args ...any) ([]model.ContactInfo, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying contact info: %w", err)
	}
	defer rows.Close()

	out := []model.ContactInfo{}
	for rows.Next() {
		ci, err := scanContactInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact info: %w", err)
		}
		out = append(out, *ci)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetContactInfo(ctx context.Context) ([]model.ContactInfo, error) {
	return s.queryContactInfo(ctx,
		"SELECT "+contactInfoCols+" FROM contact_info ORDER BY sort_order ASC, created_at ASC")
}

func (s *DatabaseStore) GetActiveContactInfo(ctx context.Context) ([]model.ContactInfo, error) {
	return s.queryContactInfo(ctx,
		"SELECT "+contactInfoCols+" FROM contact_info WHERE is_active = ? "+
			"ORDER BY sort_order ASC, created_at ASC", true)
}

func (s *DatabaseStore) GetContactInfoByID(ctx context.Context, id string) (*model.ContactInfo, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+contactInfoCols+" FROM contact_info WHERE id = ?", id)
	ci, err := scanContactInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact info: %w", err)
	}
	return ci, nil
}

func (s *DatabaseStore) CreateContactInfo(ctx context.Context, params CreateContactInfoParams) (*model.ContactInfo, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contact_info (id, type, label, label_en, value, icon, url, "+
			"is_primary, is_active, sort_order, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.Type, params.Label, util.NullStringFromPtr(params.LabelEn),
		params.Value, util.NullStringFromPtr(params.Icon), util.NullStringFromPtr(params.URL),
		boolOrDefault(params.IsPrimary, false), boolOrDefault(params.IsActive, true),
		intOrDefault(params.Order, 0), now, now)
	if err != nil {
		return nil, fmt.Errorf("creating contact info: %w", mapConstraintErr(err))
	}

	return s.GetContactInfoByID(ctx, id)
}

func (s *DatabaseStore) UpdateContactInfo(ctx context.Context, id string, params UpdateContactInfoParams) (*model.ContactInfo, error) {
	var c setClause
	if params.Type != nil {
		c.set("type", *params.Type)
	}
	if params.Label != nil {
		c.set("label", *params.Label)
	}
	if params.LabelEn != nil {
		c.set("label_en", *params.LabelEn)
	}
	if params.Value != nil {
		c.set("value", *params.Value)
	}
	if params.Icon != nil {
		c.set("icon", *params.Icon)
	}
	if params.URL != nil {
		c.set("url", *params.URL)
	}
	if params.IsPrimary != nil {
		c.set("is_primary", *params.IsPrimary)
	}
	if params.IsActive != nil {
		c.set("is_active", *params.IsActive)
	}
	if params.Order != nil {
		c.set("sort_order", *params.Order)
	}
	c.set("updated_at", time.Now())

	res, err := s.db.ExecContext(ctx,
		"UPDATE contact_info SET "+c.sql()+" WHERE id = ?", append(c.args, id)...)
	if err != nil {
		return nil, fmt.Errorf("updating contact info: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetContactInfoByID(ctx, id)
}

func (s *DatabaseStore) DeleteContactInfo(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contact_info WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting contact info: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Contact messages ---

const contactMessageCols = "id, name, email, subject, service_type, message, status, created_at, updated_at"

func scanContactMessage(row rowScanner) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	var subject, serviceType sql.NullString
	err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &subject, &serviceType,
		&msg.Message, &msg.Status, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	msg.Subject = util.PtrFromNullString(subject)
	msg.ServiceType = util.PtrFromNullString(serviceType)
	return &msg, nil
}

func (s *DatabaseStore) GetContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+contactMessageCols+" FROM contact_messages ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	out := []model.ContactMessage{}
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		out = append(out, *msg)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetContactMessage(ctx context.Context, id string) (*model.ContactMessage, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+contactMessageCols+" FROM contact_messages WHERE id = ?", id)
	msg, err := scanContactMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact message: %w", err)
	}
	return msg, nil
}

func (s *DatabaseStore) CreateContactMessage(ctx context.Context, params CreateContactMessageParams) (*model.ContactMessage, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contact_messages (id, name, email, subject, service_type, message, status, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.Name, params.Email,
		util.NullStringFromPtr(params.Subject), util.NullStringFromPtr(params.ServiceType),
		params.Message, model.MessageStatusUnread, now, now)
	if err != nil {
		return nil, fmt.Errorf("creating contact message: %w", err)
	}

	return s.GetContactMessage(ctx, id)
}

func (s *DatabaseStore) UpdateContactMessageStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contact_messages SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("updating contact message status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetContactMessage(ctx, id)
}

func (s *DatabaseStore) DeleteContactMessage(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting contact message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Site settings ---

// `key` is backtick-quoted because it is reserved in MySQL; SQLite accepts
// the same quoting.
const siteSettingCols = "id, `key`, value, type, category, created_at, updated_at"

func scanSiteSetting(row rowScanner) (*model.SiteSetting, error) {
	var st model.SiteSetting
	err := row.Scan(&st.ID, &st.Key, &st.Value, &st.Type, &st.Category, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *DatabaseStore) GetSiteSettings(ctx context.Context) ([]model.SiteSetting, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+siteSettingCols+" FROM site_settings ORDER BY `key` ASC")
	if err != nil {
		return nil, fmt.Errorf("querying site settings: %w", err)
	}
	defer rows.Close()

	out := []model.SiteSetting{}
	for rows.Next() {
		st, err := scanSiteSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning site setting: %w", err)
		}
		out = append(out, *st)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetSiteSettingByKey(ctx context.Context, key string) (*model.SiteSetting, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+siteSettingCols+" FROM site_settings WHERE `key` = ?", key)
	st, err := scanSiteSetting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting site setting: %w", err)
	}
	return st, nil
}

func (s *DatabaseStore) CreateSiteSetting(ctx context.Context, params CreateSiteSettingParams) (*model.SiteSetting, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO site_settings (id, `key`, value, type, category, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, params.Key, params.Value, params.Type, params.Category, now, now)
	if err != nil {
		return nil, fmt.Errorf("creating site setting: %w", mapConstraintErr(err))
	}

	return s.GetSiteSettingByKey(ctx, params.Key)
}

func (s *DatabaseStore) UpdateSiteSettingByKey(ctx context.Context, key, value string) (*model.SiteSetting, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE site_settings SET value = ?, updated_at = ? WHERE `key` = ?",
		value, time.Now(), key)
	if err != nil {
		return nil, fmt.Errorf("updating site setting: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetSiteSettingByKey(ctx, key)
}

func (s *DatabaseStore) DeleteSiteSetting(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM site_settings WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting site setting: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Blog posts ---

const blogPostCols = "id, title, title_en, slug, content, content_en, excerpt, excerpt_en, " +
	"tags, tags_en, category, category_en, is_published, is_featured, published_at, " +
	"view_count, reading_time, author_id, created_at, updated_at"

func scanBlogPost(row rowScanner) (*model.BlogPost, error) {
	var bp model.BlogPost
	var titleEn, contentEn, excerpt, excerptEn, category, categoryEn, authorID sql.NullString
	var publishedAt sql.NullTime
	var readingTime sql.NullInt64
	err := row.Scan(&bp.ID, &bp.Title, &titleEn, &bp.Slug, &bp.Content, &contentEn,
		&excerpt, &excerptEn, &bp.Tags, &bp.TagsEn, &category, &categoryEn,
		&bp.IsPublished, &bp.IsFeatured, &publishedAt, &bp.ViewCount, &readingTime,
		&authorID, &bp.CreatedAt, &bp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	bp.TitleEn = util.PtrFromNullString(titleEn)
	bp.ContentEn = util.PtrFromNullString(contentEn)
	bp.Excerpt = util.PtrFromNullString(excerpt)
	bp.ExcerptEn = util.PtrFromNullString(excerptEn)
	bp.Category = util.PtrFromNullString(category)
	bp.CategoryEn = util.PtrFromNullString(categoryEn)
	bp.AuthorID = util.PtrFromNullString(authorID)
	bp.PublishedAt = util.PtrFromNullTime(publishedAt)
	bp.ReadingTime = util.PtrFromNullInt64(readingTime)
	return &bp, nil
}

func (s *DatabaseStore) queryBlogPosts(ctx context.Context, query string, args ...any) ([]model.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying blog posts: %w", err)
	}
	defer rows.Close()

	out := []model.BlogPost{}
	for rows.Next() {
		bp, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning blog post: %w", err)
		}
		out = append(out, *bp)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return s.queryBlogPosts(ctx,
		"SELECT "+blogPostCols+" FROM blog_posts ORDER BY created_at DESC")
}

func (s *DatabaseStore) GetPublishedBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return s.queryBlogPosts(ctx,
		"SELECT "+blogPostCols+" FROM blog_posts WHERE is_published = ? ORDER BY published_at DESC", true)
}

func (s *DatabaseStore) GetFeaturedBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return s.queryBlogPosts(ctx,
		"SELECT "+blogPostCols+" FROM blog_posts WHERE is_published = ? AND is_featured = ? "+
			"ORDER BY published_at DESC", true, true)
}

func (s *DatabaseStore) GetBlogPost(ctx context.Context, id string) (*model.BlogPost, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+blogPostCols+" FROM blog_posts WHERE id = ?", id)
	bp, err := scanBlogPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting blog post: %w", err)
	}
	return bp, nil
}

func (s *DatabaseStore) GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+blogPostCols+" FROM blog_posts WHERE slug = ?", slug)
	bp, err := scanBlogPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting blog post by slug: %w", err)
	}
	return bp, nil
}

func (s *DatabaseStore) CreateBlogPost(ctx context.Context, params CreateBlogPostParams) (*model.BlogPost, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO blog_posts (id, title, title_en, slug, content, content_en, excerpt, excerpt_en, "+
			"tags, tags_en, category, category_en, is_published, is_featured, published_at, "+
			"view_count, reading_time, author_id, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.Title, util.NullStringFromPtr(params.TitleEn), params.Slug,
		params.Content, util.NullStringFromPtr(params.ContentEn),
		util.NullStringFromPtr(params.Excerpt), util.NullStringFromPtr(params.ExcerptEn),
		params.Tags, params.TagsEn,
		util.NullStringFromPtr(params.Category), util.NullStringFromPtr(params.CategoryEn),
		boolOrDefault(params.IsPublished, false), boolOrDefault(params.IsFeatured, false),
		util.NullTimeFromPtr(params.PublishedAt), 0, util.NullInt64FromPtr(params.ReadingTime),
		util.NullStringFromPtr(params.AuthorID), now, now)
	if err != nil {
		return nil, fmt.Errorf("creating blog post: %w", mapConstraintErr(err))
	}

	return s.GetBlogPost(ctx, id)
}

func (s *DatabaseStore) UpdateBlogPost(ctx context.Context, id string, params UpdateBlogPostParams) (*model.BlogPost, error) {
	var c setClause
	if params.Title != nil {
		c.set("title", *params.Title)
	}
	if params.TitleEn != nil {
		c.set("title_en", *params.TitleEn)
	}
	if params.Slug != nil {
		c.set("slug", *params.Slug)
	}
	if params.Content != nil {
		c.set("content", *params.Content)
	}
	if params.ContentEn != nil {
		c.set("content_en", *params.ContentEn)
	}
	if params.Excerpt != nil {
		c.set("excerpt", *params.Excerpt)
	}
	if params.ExcerptEn != nil {
		c.set("excerpt_en", *params.ExcerptEn)
	}
	if params.Tags != nil {
		c.set("tags", params.Tags)
	}
	if params.TagsEn != nil {
		c.set("tags_en", params.TagsEn)
	}
	if params.Category != nil {
		c.set("category", *params.Category)
	}
	if params.CategoryEn != nil {
		c.set("category_en", *params.CategoryEn)
	}
	if params.IsPublished != nil {
		c.set("is_published", *params.IsPublished)
	}
	if params.IsFeatured != nil {
		c.set("is_featured", *params.IsFeatured)
	}
	if params.PublishedAt != nil {
		c.set("published_at", *params.PublishedAt)
	}
	if params.ReadingTime != nil {
		c.set("reading_time", *params.ReadingTime)
	}
	if params.AuthorID != nil {
		c.set("author_id", *params.AuthorID)
	}
	c.set("updated_at", time.Now())

	res, err := s.db.ExecContext(ctx,
		"UPDATE blog_posts SET "+c.sql()+" WHERE id = ?", append(c.args, id)...)
	if err != nil {
		return nil, fmt.Errorf("updating blog post: %w", mapConstraintErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetBlogPost(ctx, id)
}

func (s *DatabaseStore) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting blog post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IncrementBlogPostViews bumps the counter with a single UPDATE expression.
// A read-then-write here would lose updates under concurrent requests.
func (s *DatabaseStore) IncrementBlogPostViews(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE blog_posts SET view_count = view_count + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("incrementing blog post views: %w", err)
	}
	return nil
}

// --- Testimonials ---

const testimonialCols = "id, client_name, client_name_en, client_title, client_title_en, " +
	"client_company, client_company_en, testimonial, testimonial_en, rating, client_image, " +
	"project_id, is_published, is_featured, sort_order, created_at, updated_at"

func scanTestimonial(row rowScanner) (*model.Testimonial, error) {
	var t model.Testimonial
	var nameEn, title, titleEn, company, companyEn, textEn, image, projectID sql.NullString
	err := row.Scan(&t.ID, &t.ClientName, &nameEn, &title, &titleEn, &company, &companyEn,
		&t.Testimonial, &textEn, &t.Rating, &image, &projectID,
		&t.IsPublished, &t.IsFeatured, &t.Order, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.ClientNameEn = util.PtrFromNullString(nameEn)
	t.ClientTitle = util.PtrFromNullString(title)
	t.ClientTitleEn = util.PtrFromNullString(titleEn)
	t.ClientCompany = util.PtrFromNullString(company)
	t.ClientCompanyEn = util.PtrFromNullString(companyEn)
	t.TestimonialEn = util.PtrFromNullString(textEn)
	t.ClientImage = util.PtrFromNullString(image)
	t.ProjectID = util.PtrFromNullString(projectID)
	return &t, nil
}

func (s *DatabaseStore) queryTestimonials(ctx context.Context, query string, args ...any) ([]model.Testimonial, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying testimonials: %w", err)
	}
	defer rows.Close()

	out := []model.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning testimonial: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.queryTestimonials(ctx,
		"SELECT "+testimonialCols+" FROM testimonials ORDER BY sort_order ASC, created_at ASC")
}

func (s *DatabaseStore) GetPublishedTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.queryTestimonials(ctx,
		"SELECT "+testimonialCols+" FROM testimonials WHERE is_published = ? "+
			"ORDER BY sort_order ASC, created_at ASC", true)
}

func (s *DatabaseStore) GetFeaturedTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.queryTestimonials(ctx,
		"SELECT "+testimonialCols+" FROM testimonials WHERE is_published = ? AND is_featured = ? "+
			"ORDER BY sort_order ASC, created_at ASC", true, true)
}

func (s *DatabaseStore) GetTestimonialsByProject(ctx context.Context, projectID string) ([]model.Testimonial, error) {
	return s.queryTestimonials(ctx,
		"SELECT "+testimonialCols+" FROM testimonials WHERE is_published = ? AND project_id = ? "+
			"ORDER BY sort_order ASC, created_at ASC", true, projectID)
}

func (s *DatabaseStore) GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+testimonialCols+" FROM testimonials WHERE id = ?", id)
	t, err := scanTestimonial(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting testimonial: %w", err)
	}
	return t, nil
}

func (s *DatabaseStore) CreateTestimonial(ctx context.Context, params CreateTestimonialParams) (*model.Testimonial, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO testimonials (id, client_name, client_name_en, client_title, client_title_en, "+
			"client_company, client_company_en, testimonial, testimonial_en, rating, client_image, "+
			"project_id, is_published, is_featured, sort_order, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.ClientName, util.NullStringFromPtr(params.ClientNameEn),
		util.NullStringFromPtr(params.ClientTitle), util.NullStringFromPtr(params.ClientTitleEn),
		util.NullStringFromPtr(params.ClientCompany), util.NullStringFromPtr(params.ClientCompanyEn),
		params.Testimonial, util.NullStringFromPtr(params.TestimonialEn),
		params.Rating, util.NullStringFromPtr(params.ClientImage), util.NullStringFromPtr(params.ProjectID),
		boolOrDefault(params.IsPublished, false), boolOrDefault(params.IsFeatured, false),
		intOrDefault(params.Order, 0), now, now)
	if err != nil {
		return nil, fmt.Errorf("creating testimonial: %w", mapConstraintErr(err))
	}

	return s.GetTestimonial(ctx, id)
}

func (s *DatabaseStore) UpdateTestimonial(ctx context.Context, id string, params UpdateTestimonialParams) (*model.Testimonial, error) {
	var c setClause
	if params.ClientName != nil {
		c.set("client_name", *params.ClientName)
	}
	if params.ClientNameEn != nil {
		c.set("client_name_en", *params.ClientNameEn)
	}
	if params.ClientTitle != nil {
		c.set("client_title", *params.ClientTitle)
	}
	if params.ClientTitleEn != nil {
		c.set("client_title_en", *params.ClientTitleEn)
	}
	if params.ClientCompany != nil {
		c.set("client_company", *params.ClientCompany)
	}
	if params.ClientCompanyEn != nil {
		c.set("client_company_en", *params.ClientCompanyEn)
	}
	if params.Testimonial != nil {
		c.set("testimonial", *params.Testimonial)
	}
	if params.TestimonialEn != nil {
		c.set("testimonial_en", *params.TestimonialEn)
	}
	if params.Rating != nil {
		c.set("rating", *params.Rating)
	}
	if params.ClientImage != nil {
		c.set("client_image", *params.ClientImage)
	}
	if params.ProjectID != nil {
		c.set("project_id", *params.ProjectID)
	}
	if params.IsPublished != nil {
		c.set("is_published", *params.IsPublished)
	}
	if params.IsFeatured != nil {
		c.set("is_featured", *params.IsFeatured)
	}
	if params.Order != nil {
		c.set("sort_order", *params.Order)
	}
	c.set("updated_at", time.Now())

	res, err := s.db.ExecContext(ctx,
		"UPDATE testimonials SET "+c.sql()+" WHERE id = ?", append(c.args, id)...)
	if err != nil {
		return nil, fmt.Errorf("updating testimonial: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetTestimonial(ctx, id)
}

func (s *DatabaseStore) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting testimonial: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Newsletter subscribers ---

const subscriberCols = "id, email, name, is_active, subscribed_at, unsubscribed_at, created_at, updated_at"

func scanSubscriber(row rowScanner) (*model.NewsletterSubscriber, error) {
	var sub model.NewsletterSubscriber
	var name sql.NullString
	var unsubscribedAt sql.NullTime
	err := row.Scan(&sub.ID, &sub.Email, &name, &sub.IsActive,
		&sub.SubscribedAt, &unsubscribedAt, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, err
	}
	sub.Name = util.PtrFromNullString(name)
	sub.UnsubscribedAt = util.PtrFromNullTime(unsubscribedAt)
	return &sub, nil
}

func (s *DatabaseStore) querySubscribers(ctx context.Context, query string, args ...any) ([]model.NewsletterSubscriber, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying subscribers: %w", err)
	}
	defer rows.Close()

	out := []model.NewsletterSubscriber{}
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning subscriber: %w", err)
		}
		out = append(out, *sub)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetSubscribers(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	return s.querySubscribers(ctx,
		"SELECT "+subscriberCols+" FROM newsletter_subscribers ORDER BY subscribed_at DESC")
}

func (s *DatabaseStore) GetActiveSubscribers(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	return s.querySubscribers(ctx,
		"SELECT "+subscriberCols+" FROM newsletter_subscribers WHERE is_active = ? "+
			"ORDER BY subscribed_at DESC", true)
}

func (s *DatabaseStore) GetSubscriberByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+subscriberCols+" FROM newsletter_subscribers WHERE email = ?", email)
	sub, err := scanSubscriber(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting subscriber by email: %w", err)
	}
	return sub, nil
}

func (s *DatabaseStore) CreateSubscriber(ctx context.Context, params CreateSubscriberParams) (*model.NewsletterSubscriber, error) {
	id := uuid.NewString()
	now := time.Now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO newsletter_subscribers (id, email, name, is_active, subscribed_at, created_at, updated_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, params.Email, util.NullStringFromPtr(params.Name), true, now, now, now)
	if err != nil {
		return nil, fmt.Errorf("creating subscriber: %w", mapConstraintErr(err))
	}

	return s.GetSubscriberByEmail(ctx, params.Email)
}

func (s *DatabaseStore) UnsubscribeByEmail(ctx context.Context, email string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE newsletter_subscribers SET is_active = ?, unsubscribed_at = ?, updated_at = ? "+
			"WHERE email = ? AND is_active = ?",
		false, time.Now(), time.Now(), email, true)
	if err != nil {
		return false, fmt.Errorf("unsubscribing: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *DatabaseStore) DeleteSubscriber(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM newsletter_subscribers WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting subscriber: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Analytics ---

const analyticsEventCols = "id, type, path, user_agent, ip, country, referrer, session_id, metadata, created_at"

func scanAnalyticsEvent(row rowScanner) (*model.AnalyticsEvent, error) {
	var ev model.AnalyticsEvent
	var path, userAgent, ip, country, referrer, sessionID sql.NullString
	err := row.Scan(&ev.ID, &ev.Type, &path, &userAgent, &ip, &country,
		&referrer, &sessionID, &ev.Metadata, &ev.CreatedAt)
	if err != nil {
		return nil, err
	}
	ev.Path = util.PtrFromNullString(path)
	ev.UserAgent = util.PtrFromNullString(userAgent)
	ev.IP = util.PtrFromNullString(ip)
	ev.Country = util.PtrFromNullString(country)
	ev.Referrer = util.PtrFromNullString(referrer)
	ev.SessionID = util.PtrFromNullString(sessionID)
	return &ev, nil
}

func (s *DatabaseStore) TrackEvent(ctx context.Context, params CreateAnalyticsEventParams) (*model.AnalyticsEvent, error) {
	id := uuid.NewString()
	now := time.Now()

	metadata := params.Metadata
	if metadata == nil {
		metadata = model.Metadata{}
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO analytics_events (id, type, path, user_agent, ip, country, referrer, session_id, metadata, created_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, params.Type,
		util.NullStringFromPtr(params.Path), util.NullStringFromPtr(params.UserAgent),
		util.NullStringFromPtr(params.IP), util.NullStringFromPtr(params.Country),
		util.NullStringFromPtr(params.Referrer), util.NullStringFromPtr(params.SessionID),
		metadata, now)
	if err != nil {
		return nil, fmt.Errorf("tracking event: %w", err)
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT "+analyticsEventCols+" FROM analytics_events WHERE id = ?", id)
	ev, err := scanAnalyticsEvent(row)
	if err != nil {
		return nil, fmt.Errorf("reading tracked event: %w", err)
	}
	return ev, nil
}

func (s *DatabaseStore) queryAnalyticsEvents(ctx context.Context, query string, args ...any) ([]model.AnalyticsEvent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying analytics events: %w", err)
	}
	defer rows.Close()

	out := []model.AnalyticsEvent{}
	for rows.Next() {
		ev, err := scanAnalyticsEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning analytics event: %w", err)
		}
		out = append(out, *ev)
	}
	return out, rows.Err()
}

func (s *DatabaseStore) GetAnalyticsEvents(ctx context.Context, since time.Time) ([]model.AnalyticsEvent, error) {
	return s.queryAnalyticsEvents(ctx,
		"SELECT "+analyticsEventCols+" FROM analytics_events WHERE created_at >= ? "+
			"ORDER BY created_at DESC", since)
}

func (s *DatabaseStore) GetAnalyticsEventsByType(ctx context.Context, eventType string, since time.Time) ([]model.AnalyticsEvent, error) {
	return s.queryAnalyticsEvents(ctx,
		"SELECT "+analyticsEventCols+" FROM analytics_events WHERE type = ? AND created_at >= ? "+
			"ORDER BY created_at DESC", eventType, since)
}

func (s *DatabaseStore) CountAnalyticsEvents(ctx context.Context, eventType string, since time.Time) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM analytics_events WHERE type = ? AND created_at >= ?",
		eventType, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting analytics events: %w", err)
	}
	return count, nil
}

func (s *DatabaseStore) DeleteAnalyticsEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM analytics_events WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning analytics events: %w", err)
	}
	return res.RowsAffected()
}

// Ensure DatabaseStore implements the contract.
var _ Storage = (*DatabaseStore)(nil)
