package services

import (
	"context"
	stderrors "errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/auxilium-app/auxilium/internal/errors"
	"github.com/auxilium-app/auxilium/internal/logger"
	"github.com/auxilium-app/auxilium/internal/models"
	"github.com/auxilium-app/auxilium/internal/repository"
	"github.com/auxilium-app/auxilium/pkg/sheets"
)

// PointsRepository defines the repository methods needed by PointsService
type PointsRepository interface {
	repository.ProfileRepository
	repository.ReportRepository
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
}

// Columns maps cell roles to column indices per sheet. Form exports put
// columns in fixed positions by convention; the mapping is configurable
// so a reshuffled form only needs a different Columns value.
type Columns struct {
	SignupName    int // full name on the signup sheet
	SignupAdmin   int // admin number on the signup sheet
	SignupContact int // contact handle on the signup sheet
	SignupClass   int // class on the signup sheet
	SignupCourse  int // course label on the signup sheet
	FeedbackAdmin int // admin number on the feedback sheet
	HelperAdmin   int // admin number on the helper roster
}

// DefaultColumns returns the conventional form layout
func DefaultColumns() Columns {
	return Columns{
		SignupName:    1,
		SignupAdmin:   2,
		SignupContact: 3,
		SignupClass:   4,
		SignupCourse:  5,
		FeedbackAdmin: 3,
		HelperAdmin:   4,
	}
}

// SourceDocs identifies the three spreadsheets of one reconciliation run
type SourceDocs struct {
	Signup   string
	Feedback string
	Helper   string
}

// PointsSheet is the aggregate result of one reconciliation run
type PointsSheet struct {
	ReportID      string         `json:"report_id"`
	SignupCount   int            `json:"signup_count"`
	FeedbackCount int            `json:"feedback_count"`
	HelperCount   int            `json:"helper_count"`
	InvalidCount  int            `json:"invalid_count"`
	TurnupRate    float64        `json:"turnup_rate"`
	CourseTurnup  map[string]int `json:"course_turnup"`
	MalformedRows []int          `json:"malformed_rows,omitempty"`
	Participants  [][]string     `json:"participants"`
}

// PointsService reconciles the signup, feedback and helper sheets of an
// event into verified participants and persisted participation records.
type PointsService struct {
	log    logger.Logger
	repo   PointsRepository
	sheets sheets.Client
	cols   Columns

	// Profile resolution for the same admin number must be serialized
	// across concurrent runs to keep admin numbers unique.
	mu         sync.Mutex
	adminLocks map[string]*adminLock
}

// adminLock is the critical section for one admin number. Entries are
// reference-counted so the map only holds numbers currently contended.
type adminLock struct {
	mu   sync.Mutex
	refs int
}

// NewPointsService creates a new PointsService
func NewPointsService(log logger.Logger, repo PointsRepository, client sheets.Client, cols Columns) *PointsService {
	return &PointsService{
		log:        log,
		repo:       repo,
		sheets:     client,
		cols:       cols,
		adminLocks: make(map[string]*adminLock),
	}
}

// GeneratePointsSheet runs one reconciliation for an event.
//
// Writes are not transactional: the report is created first and each
// processed row commits its own participation record, so a failure
// partway through keeps the report and the records of earlier rows.
// Re-running after a failure produces a fresh report.
func (s *PointsService) GeneratePointsSheet(ctx context.Context, eventID, userID string, docs SourceDocs) (*PointsSheet, error) {
	if _, err := s.repo.GetEvent(ctx, eventID); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("event %s not found", eventID)
		}
		return nil, err
	}

	signup, feedback, helper, err := s.fetchGrids(ctx, docs)
	if err != nil {
		return nil, err
	}

	// Header rows are excluded from all counts
	signupCount := dataRows(signup)
	feedbackCount := dataRows(feedback)
	helperCount := dataRows(helper)

	if signupCount == 0 {
		return nil, errors.InvalidInput("signup sheet has no data rows")
	}

	report := &models.EventReport{
		EventID:       eventID,
		SignupCount:   signupCount,
		FeedbackCount: feedbackCount,
		CreatedBy:     userID,
	}
	if err := s.repo.CreateReport(ctx, report); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create event report")
	}

	sheet := &PointsSheet{
		ReportID:      report.ReportID,
		SignupCount:   signupCount,
		FeedbackCount: feedbackCount,
		HelperCount:   helperCount,
		CourseTurnup:  make(map[string]int),
		Participants:  [][]string{},
	}

	// Profiles resolved once per admin number per run
	profiles := make(map[string]*models.Profile)

	for i, row := range signup[1:] {
		rowNum := i + 1 // index in the grid; row 0 is the header

		if len(row) <= s.cols.SignupCourse {
			if err := s.processMalformedRow(ctx, sheet, report, profiles, row, rowNum); err != nil {
				return nil, err
			}
			continue
		}

		adminNumber := cell(row, s.cols.SignupAdmin)
		course := courseLabel(cell(row, s.cols.SignupCourse))

		profile, err := s.resolveProfile(ctx, row, adminNumber, course, profiles)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal,
				"failed to resolve profile for signup row "+rowRef(rowNum, adminNumber))
		}

		feedbackEntry := matchRow(feedback, s.cols.FeedbackAdmin, adminNumber)
		helperEntry := matchRow(helper, s.cols.HelperAdmin, adminNumber)

		switch {
		case feedbackEntry == nil:
			// No feedback means no confirmed attendance; record the
			// no-show so the signup still counts against their history.
			s.log.Debug("no feedback found for signup", "row", rowNum, "admin_number", adminNumber)
			sheet.InvalidCount++
			rec := &models.Participation{
				ProfileID: profile.ProfileID,
				ReportID:  report.ReportID,
				EventRole: models.EventRoleParticipant,
			}
			if err := s.repo.CreateParticipation(ctx, rec); err != nil {
				return nil, errors.Wrap(err, errors.ErrInternal,
					"failed to record non-attendance for signup row "+rowRef(rowNum, adminNumber))
			}

		case helperEntry != nil:
			// Helpers are credited separately and cannot double as
			// counted participants. No record is created.
			s.log.Debug("helper entry found for signup", "row", rowNum, "admin_number", adminNumber)
			sheet.InvalidCount++

		default:
			if course != "" {
				sheet.CourseTurnup[course]++
			}
			rec := &models.Participation{
				ProfileID:     profile.ProfileID,
				ReportID:      report.ReportID,
				Attended:      true,
				EventRole:     models.EventRoleParticipant,
				PointsAwarded: 1,
			}
			if err := s.repo.CreateParticipation(ctx, rec); err != nil {
				return nil, errors.Wrap(err, errors.ErrInternal,
					"failed to record participation for signup row "+rowRef(rowNum, adminNumber))
			}
			sheet.Participants = append(sheet.Participants, row)
		}
	}

	rate := float64(len(sheet.Participants)) / float64(signupCount) * 100
	sheet.TurnupRate = math.Round(rate*100) / 100

	s.log.Info("points sheet generated",
		"event_id", eventID,
		"report_id", report.ReportID,
		"participants", len(sheet.Participants),
		"invalid", sheet.InvalidCount,
		"turnup_rate", sheet.TurnupRate)

	return sheet, nil
}

// fetchGrids fetches the three sheets concurrently; none depends on
// another's result
func (s *PointsService) fetchGrids(ctx context.Context, docs SourceDocs) (signup, feedback, helper [][]string, err error) {
	ids := [3]string{docs.Signup, docs.Feedback, docs.Helper}
	names := [3]string{"signup", "feedback", "helper"}
	var grids [3][][]string
	var errs [3]error

	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			grids[i], errs[i] = s.sheets.Fetch(ctx, ids[i])
		}(i)
	}
	wg.Wait()

	for i, ferr := range errs {
		if ferr == nil {
			continue
		}
		if stderrors.Is(ferr, sheets.ErrNotFound) {
			return nil, nil, nil, errors.NotFoundf("%s sheet could not be resolved: %v", names[i], ferr)
		}
		return nil, nil, nil, errors.Wrap(ferr, errors.ErrInternal, "failed to fetch "+names[i]+" sheet")
	}
	return grids[0], grids[1], grids[2], nil
}

// processMalformedRow handles a signup row shorter than the expected
// column count: counted invalid, never fatal. When the name and admin
// number cells are present the person is still profiled and recorded as
// a no-show; otherwise the row is skipped entirely.
func (s *PointsService) processMalformedRow(ctx context.Context, sheet *PointsSheet, report *models.EventReport, profiles map[string]*models.Profile, row []string, rowNum int) error {
	adminNumber := cell(row, s.cols.SignupAdmin)
	name := cell(row, s.cols.SignupName)

	rowErr := errors.MalformedRowf("signup row %d has %d cells, expected at least %d",
		rowNum, len(row), s.cols.SignupCourse+1)
	s.log.Warn("skipping malformed signup row", "row", rowNum, "admin_number", adminNumber, "error", rowErr)

	sheet.InvalidCount++
	sheet.MalformedRows = append(sheet.MalformedRows, rowNum)

	if adminNumber == "" || name == "" {
		return nil
	}

	profile, err := s.resolveProfile(ctx, row, adminNumber, "", profiles)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal,
			"failed to resolve profile for signup row "+rowRef(rowNum, adminNumber))
	}
	rec := &models.Participation{
		ProfileID: profile.ProfileID,
		ReportID:  report.ReportID,
		EventRole: models.EventRoleParticipant,
	}
	if err := s.repo.CreateParticipation(ctx, rec); err != nil {
		return errors.Wrap(err, errors.ErrInternal,
			"failed to record non-attendance for signup row "+rowRef(rowNum, adminNumber))
	}
	return nil
}

// resolveProfile returns the profile for an admin number, creating it
// from the signup row on first sight. The per-run cache keeps repeated
// admin numbers to a single directory round-trip; the per-admin-number
// lock keeps concurrent runs from racing a duplicate profile in.
func (s *PointsService) resolveProfile(ctx context.Context, row []string, adminNumber, course string, cache map[string]*models.Profile) (*models.Profile, error) {
	if profile, ok := cache[adminNumber]; ok {
		return profile, nil
	}

	unlock := s.lockAdmin(adminNumber)
	defer unlock()

	profile, err := s.repo.GetProfileByAdminNumber(ctx, adminNumber)
	if err == nil {
		cache[adminNumber] = profile
		return profile, nil
	}
	if !stderrors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	firstName, lastName := splitName(cell(row, s.cols.SignupName))
	profile = &models.Profile{
		FirstName:   firstName,
		LastName:    lastName,
		Course:      course,
		IChat:       cell(row, s.cols.SignupContact),
		AdminNumber: adminNumber,
	}
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			// Lost a race with another run; the profile exists now
			profile, err = s.repo.GetProfileByAdminNumber(ctx, adminNumber)
			if err != nil {
				return nil, err
			}
			cache[adminNumber] = profile
			return profile, nil
		}
		return nil, err
	}

	s.log.Debug("created profile from signup row", "admin_number", adminNumber, "course", course)
	cache[adminNumber] = profile
	return profile, nil
}

// lockAdmin acquires the critical section for one admin number. The
// returned release drops the map entry when the last holder lets go.
func (s *PointsService) lockAdmin(adminNumber string) func() {
	s.mu.Lock()
	l, ok := s.adminLocks[adminNumber]
	if !ok {
		l = &adminLock{}
		s.adminLocks[adminNumber] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.adminLocks, adminNumber)
		}
		s.mu.Unlock()
	}
}

// dataRows counts the rows of a grid excluding the header
func dataRows(grid [][]string) int {
	if len(grid) == 0 {
		return 0
	}
	return len(grid) - 1
}

// matchRow returns the first data row whose key column equals adminNumber
func matchRow(grid [][]string, keyCol int, adminNumber string) []string {
	if len(grid) < 2 || adminNumber == "" {
		return nil
	}
	for _, row := range grid[1:] {
		if cell(row, keyCol) == adminNumber {
			return row
		}
	}
	return nil
}

// cell returns the trimmed cell at idx, or "" when the row is too short
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// courseLabel keeps only the text before the first "/" qualifier,
// e.g. "DISM/DCDF" becomes "DISM"
func courseLabel(raw string) string {
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

// splitName splits a full name into first and last by whitespace:
// first token, then the rest joined. An empty name yields empty strings.
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func rowRef(rowNum int, adminNumber string) string {
	if adminNumber == "" {
		return "row " + strconv.Itoa(rowNum)
	}
	return "row " + strconv.Itoa(rowNum) + " (admin number " + adminNumber + ")"
}
