package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		forgot_password_code TEXT,
		phone_verification_code TEXT,
		notification_status BOOLEAN NOT NULL DEFAULT 0,
		pitch_notification_status BOOLEAN NOT NULL DEFAULT 0,
		post_notification_status BOOLEAN NOT NULL DEFAULT 0,
		event_notification_status BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAuthTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE auth (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		session_id TEXT,
		verification_status TEXT NOT NULL DEFAULT 'unverified',
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPitchTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE pitch_personal_information (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		date_of_birth DATETIME NOT NULL,
		nationality TEXT NOT NULL,
		ethnicity TEXT NOT NULL,
		requires_disability_support BOOLEAN NOT NULL DEFAULT 0,
		disability_support_description TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE pitch_professional_background (
		id TEXT PRIMARY KEY,
		current_occupation TEXT NOT NULL,
		linkedin_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE pitch_competition_questions (
		id TEXT PRIMARY KEY,
		business_name TEXT,
		business_description TEXT NOT NULL,
		reason_of_interest TEXT NOT NULL,
		investment_prize_usage_plan TEXT NOT NULL,
		impact_plan_with_investment_prize TEXT NOT NULL,
		summary_of_why_you_should_participate TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE pitch_technical_agreement (
		id TEXT PRIMARY KEY,
		have_current_investors BOOLEAN NOT NULL,
		have_current_investors_description TEXT,
		have_current_employees BOOLEAN NOT NULL,
		have_current_employees_description TEXT,
		have_debts BOOLEAN NOT NULL,
		have_debts_description TEXT,
		has_signed_technical_agreement BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	createReviewTable(t, db)
	mustExec(t, db, `CREATE TABLE pitches (
		id TEXT PRIMARY KEY,
		uid TEXT,
		user_id TEXT NOT NULL,
		is_submitted BOOLEAN NOT NULL DEFAULT 0,
		personal_information_id TEXT,
		professional_background_id TEXT,
		competition_questions_id TEXT,
		technical_agreement_id TEXT,
		review_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		review_status TEXT NOT NULL DEFAULT 'not-submitted',
		reviewer_id TEXT,
		reviewer_name TEXT,
		review_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBusinessTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE businesses (
		id TEXT PRIMARY KEY,
		business_name TEXT NOT NULL UNIQUE,
		business_description TEXT NOT NULL,
		business_owner_name TEXT,
		business_owner_email TEXT,
		business_owner_phone TEXT,
		website TEXT,
		logo TEXT,
		user_id TEXT,
		pitch_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAwardTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE awards (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'not-started',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE award_nominees (
		id TEXT PRIMARY KEY,
		award_id TEXT NOT NULL,
		nominee_id TEXT NOT NULL,
		nominee_type TEXT NOT NULL,
		nominator_id TEXT NOT NULL,
		reason TEXT,
		votes_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (award_id, nominee_id)
	);`)
	mustExec(t, db, `CREATE TABLE votes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		award_id TEXT NOT NULL,
		nominee_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, award_id)
	);`)
}

func createMeetingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE meetings (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		proposer_id TEXT NOT NULL,
		recipient_id TEXT NOT NULL,
		proposed_meeting_start DATETIME NOT NULL,
		proposed_meeting_end DATETIME NOT NULL,
		meeting_link TEXT,
		review_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAlertTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE user_alerts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
