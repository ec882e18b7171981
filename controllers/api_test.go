package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/boetepot/boetepot-backend/auth"
	"github.com/boetepot/boetepot-backend/config"
	"github.com/boetepot/boetepot-backend/controllers"
	"github.com/boetepot/boetepot-backend/models"
	"github.com/boetepot/boetepot-backend/routes"
	"github.com/boetepot/boetepot-backend/services"
	"github.com/boetepot/boetepot-backend/store"
	"github.com/boetepot/boetepot-backend/testutil"
)

const (
	testPassword = "boete-baas"
	testSecret   = "api-test-secret"
)

type APISuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(s.T())
	s.Require().NoError(config.SeedAdminCredential(db, testPassword))

	st := store.New(db)
	authService := auth.New(st, testSecret, time.Hour)
	api := controllers.New(st, authService, services.NewFeed())

	s.router = gin.New()
	s.router.HandleMethodNotAllowed = true
	routes.SetupRoutes(s.router, api, authService)

	// log in once per test for the admin routes
	w := s.request(http.MethodPost, "/api/admin/login", gin.H{"password": testPassword}, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var loginResp struct {
		Token string `json:"token"`
	}
	s.decode(w, &loginResp)
	s.Require().NotEmpty(loginResp.Token)
	s.token = loginResp.Token
}

func (s *APISuite) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&reqBody).Encode(body))
	}
	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (s *APISuite) createPlayer(name string) models.Player {
	w := s.request(http.MethodPost, "/api/players", gin.H{"name": name}, s.token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var player models.Player
	s.decode(w, &player)
	return player
}

func (s *APISuite) createReason(description string) models.Reason {
	w := s.request(http.MethodPost, "/api/reasons", gin.H{"description": description}, s.token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var reason models.Reason
	s.decode(w, &reason)
	return reason
}

func (s *APISuite) createFine(playerID, reasonID uint, amount json.Number) models.EnrichedFine {
	w := s.request(http.MethodPost, "/api/fines", gin.H{
		"player_id": playerID,
		"reason_id": reasonID,
		"amount":    amount,
	}, s.token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var fine models.EnrichedFine
	s.decode(w, &fine)
	return fine
}

// Auth gate

func (s *APISuite) TestLoginWrongPassword() {
	w := s.request(http.MethodPost, "/api/admin/login", gin.H{"password": "fout"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APISuite) TestLoginMissingPassword() {
	w := s.request(http.MethodPost, "/api/admin/login", gin.H{}, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APISuite) TestMutationsRequireToken() {
	w := s.request(http.MethodPost, "/api/players", gin.H{"name": "Alice"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodPost, "/api/players", gin.H{"name": "Alice"}, "geen-token")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodPost, "/api/admin/reset", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APISuite) TestNonAdminRoleForbidden() {
	viewer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "viewer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := viewer.SignedString([]byte(testSecret))
	s.Require().NoError(err)

	w := s.request(http.MethodPost, "/api/players", gin.H{"name": "Alice"}, token)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *APISuite) TestExpiredTokenRejectedOnEveryAdminRoute() {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte(testSecret))
	s.Require().NoError(err)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/players"},
		{http.MethodPost, "/api/reasons"},
		{http.MethodPost, "/api/fines"},
		{http.MethodDelete, "/api/fines/1"},
		{http.MethodPost, "/api/admin/reset"},
		{http.MethodGet, "/api/admin/audit"},
	} {
		w := s.request(route.method, route.path, gin.H{}, token)
		s.Equal(http.StatusUnauthorized, w.Code, route.path)
	}
}

// Players and reasons

func (s *APISuite) TestCreateAndListPlayers() {
	s.createPlayer("Bob")
	s.createPlayer("Alice")

	w := s.request(http.MethodGet, "/api/players", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var players []models.Player
	s.decode(w, &players)
	s.Require().Len(players, 2)
	s.Equal("Alice", players[0].Name)
	s.Equal("Bob", players[1].Name)
}

func (s *APISuite) TestDuplicatePlayerConflict() {
	s.createPlayer("Alice")
	w := s.request(http.MethodPost, "/api/players", gin.H{"name": "Alice"}, s.token)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *APISuite) TestCreatePlayerMissingName() {
	w := s.request(http.MethodPost, "/api/players", gin.H{}, s.token)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APISuite) TestAdminPrefixedEquivalents() {
	w := s.request(http.MethodPost, "/api/admin/players", gin.H{"name": "Alice"}, s.token)
	s.Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodGet, "/api/admin/players", nil, s.token)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPost, "/api/admin/reasons", gin.H{"description": "Late"}, s.token)
	s.Equal(http.StatusCreated, w.Code)
}

// Fines

func (s *APISuite) TestCreateFineValidation() {
	alice := s.createPlayer("Alice")
	late := s.createReason("Late")

	// unknown references are 404 and insert nothing
	w := s.request(http.MethodPost, "/api/fines", gin.H{
		"player_id": 999, "reason_id": late.ID, "amount": json.Number("5.00"),
	}, s.token)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodPost, "/api/fines", gin.H{
		"player_id": alice.ID, "reason_id": 999, "amount": json.Number("5.00"),
	}, s.token)
	s.Equal(http.StatusNotFound, w.Code)

	// bad amounts are 400
	w = s.request(http.MethodPost, "/api/fines", gin.H{
		"player_id": alice.ID, "reason_id": late.ID, "amount": json.Number("5.001"),
	}, s.token)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/api/fines", gin.H{
		"player_id": alice.ID, "reason_id": late.ID, "amount": json.Number("0"),
	}, s.token)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/api/recent-fines", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var fines []models.EnrichedFine
	s.decode(w, &fines)
	s.Empty(fines)
}

func (s *APISuite) TestDeleteFine() {
	alice := s.createPlayer("Alice")
	late := s.createReason("Late")
	fine := s.createFine(alice.ID, late.ID, "10.00")

	w := s.request(http.MethodDelete, "/api/fines/"+itoa(fine.ID), nil, s.token)
	s.Equal(http.StatusOK, w.Code)

	// gone now
	w = s.request(http.MethodDelete, "/api/fines/"+itoa(fine.ID), nil, s.token)
	s.Equal(http.StatusNotFound, w.Code)

	var total struct {
		Total models.Cents `json:"total"`
	}
	w = s.request(http.MethodGet, "/api/total-amount", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &total)
	s.Equal(models.Cents(0), total.Total)
}

func (s *APISuite) TestPlayerHistoryEndpoint() {
	alice := s.createPlayer("Alice")
	late := s.createReason("Late")
	s.createFine(alice.ID, late.ID, "2.50")

	w := s.request(http.MethodGet, "/api/player-fines?id="+itoa(alice.ID), nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var history []models.EnrichedFine
	s.decode(w, &history)
	s.Require().Len(history, 1)
	s.Equal(models.Cents(250), history[0].AmountCents)

	w = s.request(http.MethodGet, "/api/player-fines?id=999", nil, "")
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/api/player-fines", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

// The full club scenario: totals, leaderboard tie-break and recency.
func (s *APISuite) TestScenarioLeaderboardAndTotals() {
	alice := s.createPlayer("Alice")
	bob := s.createPlayer("Bob")
	late := s.createReason("Late")
	noShow := s.createReason("No-show")

	s.createFine(alice.ID, late.ID, "10.00")
	s.createFine(bob.ID, noShow.ID, "15.00")
	lastFine := s.createFine(alice.ID, noShow.ID, "5.00")

	var total struct {
		Total models.Cents `json:"total"`
	}
	w := s.request(http.MethodGet, "/api/total-amount", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &total)
	s.Equal("30.00", total.Total.String())

	w = s.request(http.MethodGet, "/api/leaderboard", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var board []models.PlayerTotal
	s.decode(w, &board)
	s.Require().Len(board, 2)
	s.Equal("Alice", board[0].Name) // 15.00 vs 15.00, name breaks the tie
	s.Equal("Bob", board[1].Name)
	s.Equal(models.Cents(1500), board[0].TotalCents)
	s.Equal(models.Cents(1500), board[1].TotalCents)

	w = s.request(http.MethodGet, "/api/recent-fines?limit=2", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var recent []models.EnrichedFine
	s.decode(w, &recent)
	s.Require().Len(recent, 2)
	s.Equal(lastFine.ID, recent[0].ID)
	s.Equal("Bob", recent[1].PlayerName)
}

// Reset

func (s *APISuite) TestResetKeepsSentinel() {
	s.createPlayer(models.AdminSentinelName)
	alice := s.createPlayer("Alice")
	late := s.createReason("Late")
	s.createFine(alice.ID, late.ID, "10.00")

	w := s.request(http.MethodPost, "/api/admin/reset", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)

	var players []models.Player
	w = s.request(http.MethodGet, "/api/players", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &players)
	s.Require().Len(players, 1)
	s.Equal(models.AdminSentinelName, players[0].Name)

	var total struct {
		Total models.Cents `json:"total"`
	}
	w = s.request(http.MethodGet, "/api/total-amount", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &total)
	s.Equal(models.Cents(0), total.Total)
}

// Audit

func (s *APISuite) TestAuditTrailsAdminActions() {
	alice := s.createPlayer("Alice")
	late := s.createReason("Late")
	s.createFine(alice.ID, late.ID, "1.00")

	w := s.request(http.MethodGet, "/api/admin/audit", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)
	var entries []models.AuditLog
	s.decode(w, &entries)
	s.Require().Len(entries, 3)
	s.Equal("fine.create", entries[0].Action)
}

// Method handling

func (s *APISuite) TestMethodNotAllowed() {
	w := s.request(http.MethodPut, "/api/players", gin.H{"name": "Alice"}, s.token)
	s.Equal(http.StatusMethodNotAllowed, w.Code)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
