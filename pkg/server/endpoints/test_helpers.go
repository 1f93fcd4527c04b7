package endpoints

import (
	"io"
	"net/http"
	"net/http/httptest"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/sharegate/pkg/config"
	"github.com/openshelf/sharegate/pkg/identity"
	"github.com/openshelf/sharegate/pkg/server"
)

// NewTestServer creates a server instance for testing.
// It requires a running PostgreSQL database.
func NewTestServer(dbURL string, tokenKey []byte) (*server.Server, error) {
	db, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return server.NewServer(db, cfg, tokenKey, "127.0.0.1", "0"), nil
}

// CreateTestUser inserts a directory entry for testing
func CreateTestUser(db *gorm.DB, userID, displayName, email string) error {
	return db.Exec(`
		INSERT INTO users (user_id, display_name, email) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET display_name = EXCLUDED.display_name, email = EXCLUDED.email
	`, userID, displayName, email).Error
}

// CreateTestResource inserts a resource for testing
func CreateTestResource(db *gorm.DB, kind, resourceID, ownerID, name, visibility string) error {
	return db.Exec(`
		INSERT INTO resources (resource_id, kind, owner_id, name, visibility) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (kind, resource_id) DO UPDATE SET owner_id = EXCLUDED.owner_id, visibility = EXCLUDED.visibility
	`, resourceID, kind, ownerID, name, visibility).Error
}

// CleanupTestData removes test rows whose IDs carry the given prefix
func CleanupTestData(db *gorm.DB, prefix string) error {
	db.Exec(`DELETE FROM share_requests WHERE requester_id LIKE ? OR owner_id LIKE ?`, prefix+"%", prefix+"%")
	db.Exec(`DELETE FROM resources WHERE owner_id LIKE ?`, prefix+"%")
	db.Exec(`DELETE FROM users WHERE user_id LIKE ?`, prefix+"%")
	return nil
}

// authedRequest builds a request carrying an identity in its context,
// bypassing token validation for handler-level tests
func authedRequest(method, target string, body io.Reader, userID string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(identity.Set(req.Context(), &identity.Identity{UserID: userID}))
}
