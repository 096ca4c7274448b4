package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/checkout"
	"github.com/fitcoach-io/fitcoach/internal/config"
	"github.com/fitcoach-io/fitcoach/internal/database"
	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockBodyAnalyzer struct {
	mock.Mock
}

func (m *MockBodyAnalyzer) Analyze(ctx context.Context, photos models.PhotoSet) (*models.AnalysisResult, error) {
	args := m.Called(ctx, photos)
	res, _ := args.Get(0).(*models.AnalysisResult)
	return res, args.Error(1)
}

func testConfig() config.Config {
	cfg := config.Config{APIPort: 8081}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenDuration = time.Hour
	cfg.CORS.AllowedOrigins = []string{"http://localhost:*"}
	cfg.Jobs.UsageRolloverInterval = time.Hour
	return cfg
}

func TestNewApi(t *testing.T) {
	t.Run("InvalidConfigZeroPort", func(t *testing.T) {
		_, err := NewApi(config.Config{}, Deps{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Must have at least a port to start API")
	})

	t.Run("MissingStore", func(t *testing.T) {
		_, err := NewApi(testConfig(), Deps{})
		assert.Error(t, err)
	})
}

type ApiTestSuite struct {
	suite.Suite
	db       *database.DB
	store    *store.Store
	analyzer *MockBodyAnalyzer
	api      *Api
}

func (s *ApiTestSuite) SetupTest() {
	db, err := database.Open(context.Background(), config.DatabaseConfig{
		Type: database.SQLite,
		Path: filepath.Join(s.T().TempDir(), "api_test.db"),
	})
	s.Require().NoError(err)
	s.db = db
	s.store = store.New(db)
	s.analyzer = new(MockBodyAnalyzer)

	api, err := NewApi(testConfig(), Deps{
		Store:     s.store,
		Analyzer:  s.analyzer,
		Processor: checkout.SimulatedProcessor{},
	})
	s.Require().NoError(err)
	s.api = api
}

func (s *ApiTestSuite) TearDownTest() {
	s.db.Close()
}

func TestApiTestSuite(t *testing.T) {
	suite.Run(t, new(ApiTestSuite))
}

func (s *ApiTestSuite) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.serve(req)
}

func (s *ApiTestSuite) serve(req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	s.api.Router.ServeHTTP(rec, req)

	var out map[string]interface{}
	if rec.Header().Get("Content-Type") == "application/json" {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func (s *ApiTestSuite) register(email string) string {
	rec, body := s.do(http.MethodPost, "/auth/register", "", map[string]string{
		"name":            "Ana Souza",
		"email":           email,
		"phone":           "(11) 99999-9999",
		"cpf":             "123.456.789-00",
		"password":        "segredo",
		"confirmPassword": "segredo",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return body["token"].(string)
}

func (s *ApiTestSuite) subscribe(token, plan string) {
	rec, _ := s.do(http.MethodPost, "/checkout", token, map[string]string{"plan": plan})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = s.do(http.MethodPost, "/checkout/pay", token, map[string]string{
		"cardNumber": "4111 1111 1111 1111",
		"expiryDate": "12/30",
		"cvv":        "123",
		"cardName":   "ANA SOUZA",
		"cpf":        "123.456.789-00",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *ApiTestSuite) completeProfile(token string) {
	rec, _ := s.do(http.MethodPut, "/me/profile", token, map[string]interface{}{
		"age":           30,
		"gender":        "masculino",
		"height":        178,
		"weight":        80,
		"activityLevel": "moderado",
		"goal":          "ganhar-massa",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

var loggedMeals = map[string]interface{}{
	"meals": []map[string]interface{}{{
		"name": "Café da manhã",
		"time": "07:00",
		"foods": []map[string]string{
			{"food": "pão", "quantity": "2", "measurement": "unidade"},
		},
	}},
}

func (s *ApiTestSuite) TestPublicRoutes() {
	rec, _ := s.do(http.MethodGet, "/ping", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("pong", rec.Body.String())

	rec, _ = s.do(http.MethodGet, "/heartbeat", "", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec, body := s.do(http.MethodGet, "/plans", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Len(body["plans"], 3)

	rec, _ = s.do(http.MethodGet, "/nonexistent", "", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ApiTestSuite) TestRegisterValidationAndConflict() {
	rec, body := s.do(http.MethodPost, "/auth/register", "", map[string]string{"email": "bad"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_failed", body["error"])
	fields := body["fields"].(map[string]interface{})
	s.Equal("Email inválido", fields["email"])

	s.register("ana@example.com")
	rec, _ = s.do(http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Outra", "email": "ana@example.com", "phone": "(11) 99999-9999",
		"cpf": "123.456.789-00", "password": "segredo", "confirmPassword": "segredo",
	})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ApiTestSuite) TestLoginAndMe() {
	s.register("ana@example.com")

	rec, _ := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@example.com", "password": "errada"})
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec, body := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@example.com", "password": "segredo"})
	s.Require().Equal(http.StatusOK, rec.Code)
	token := body["token"].(string)

	rec, body = s.do(http.MethodGet, "/me", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	user := body["user"].(map[string]interface{})
	s.Equal("ana@example.com", user["email"])
	s.NotContains(user, "passwordHash")
	ent := body["entitlements"].(map[string]interface{})
	s.Equal(false, ent["active"])

	rec, _ = s.do(http.MethodGet, "/me", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ApiTestSuite) TestPremiumGateReturns402() {
	token := s.register("ana@example.com")

	rec, body := s.do(http.MethodPost, "/coach/questions", token, map[string]string{"question": "creatina faz mal?"})
	s.Equal(http.StatusPaymentRequired, rec.Code)
	s.Equal("subscription_required", body["error"])
	s.Equal("supplement_consultation", body["feature"])
	s.Len(body["plans"], 3)

	s.subscribe(token, "standard")
	rec, _ = s.do(http.MethodPost, "/coach/questions", token, map[string]string{"question": "creatina faz mal?"})
	s.Equal(http.StatusPaymentRequired, rec.Code)
}

func (s *ApiTestSuite) TestPremiumCoach() {
	token := s.register("ana@example.com")
	s.subscribe(token, "premium")

	rec, body := s.do(http.MethodPost, "/coach/questions", token, map[string]string{"question": "Quanto de creatina devo tomar?"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("creatina", body["topic"])
	s.NotEmpty(body["text"])
}

func (s *ApiTestSuite) TestCheckoutActivatesSubscription() {
	token := s.register("ana@example.com")
	s.subscribe(token, "standard")

	rec, body := s.do(http.MethodGet, "/subscription", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(true, body["active"])
	s.Equal(false, body["canDowngrade"])
	limits := body["limits"].(map[string]interface{})
	s.Equal(float64(2), limits["dietsPerMonth"])

	rec, _ = s.do(http.MethodPost, "/subscription/downgrade", token, map[string]string{"plan": "starter"})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ApiTestSuite) TestCheckoutRejectsBadCard() {
	token := s.register("ana@example.com")

	rec, _ := s.do(http.MethodPost, "/checkout", token, map[string]string{"plan": "gold"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, _ = s.do(http.MethodPost, "/checkout", token, map[string]string{"plan": "starter"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec, body := s.do(http.MethodPost, "/checkout/pay", token, map[string]string{"cardNumber": "123"})
	s.Equal(http.StatusBadRequest, rec.Code)
	fields := body["fields"].(map[string]interface{})
	s.Equal("Número do cartão deve ter 16 dígitos", fields["cardNumber"])

	rec, _ = s.do(http.MethodDelete, "/checkout", token, nil)
	s.Equal(http.StatusNoContent, rec.Code)
	rec, _ = s.do(http.MethodDelete, "/checkout", token, nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ApiTestSuite) TestGeneratePlansConsumesQuota() {
	token := s.register("ana@example.com")

	rec, _ := s.do(http.MethodPost, "/plans/generate", token, loggedMeals)
	s.Equal(http.StatusBadRequest, rec.Code, "profile is required first")

	s.completeProfile(token)
	rec, _ = s.do(http.MethodPost, "/plans/generate", token, loggedMeals)
	s.Equal(http.StatusPaymentRequired, rec.Code)

	s.subscribe(token, "starter")
	rec, _ = s.do(http.MethodPost, "/plans/generate", token, map[string]interface{}{"meals": []interface{}{}})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, body := s.do(http.MethodPost, "/plans/generate", token, loggedMeals)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Contains(body, "diet")
	s.Contains(body, "workout")
	usage := body["usage"].(map[string]interface{})
	s.Equal(float64(1), usage["dietsUsed"])
	s.Equal(float64(1), usage["workoutsUsed"])

	rec, body = s.do(http.MethodPost, "/plans/generate", token, loggedMeals)
	s.Equal(http.StatusPaymentRequired, rec.Code)
	s.Equal("plan_generation", body["feature"])

	rec, body = s.do(http.MethodGet, "/workout", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(body, "workout")
}

func (s *ApiTestSuite) TestDietEditingRequiresActiveSubscription() {
	token := s.register("ana@example.com")

	rec, body := s.do(http.MethodPost, "/diet/meals/edit", token, map[string]string{"meal": "Almoço", "change": "frango"})
	s.Equal(http.StatusPaymentRequired, rec.Code)
	s.Equal("diet_edit", body["feature"])

	rec, _ = s.do(http.MethodPost, "/diet/chat", token, map[string]string{"meal": "Almoço", "message": "quero banana"})
	s.Equal(http.StatusPaymentRequired, rec.Code)
}

func (s *ApiTestSuite) TestStarterSubscriberCanEditDiet() {
	token := s.register("ana@example.com")
	s.subscribe(token, "starter")
	s.completeProfile(token)

	rec, body := s.do(http.MethodPost, "/diet/chat", token, map[string]string{"meal": "Almoço", "message": "quero banana"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.NotEmpty(body["message"])

	rec, _ = s.do(http.MethodPost, "/diet/meals/edit", token, map[string]string{"meal": "Almoço", "change": "frango"})
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = s.do(http.MethodPost, "/diet/meals/reshape", token, map[string]int{"meals": 5})
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *ApiTestSuite) TestDietEditAndReshape() {
	token := s.register("ana@example.com")
	s.subscribe(token, "standard")

	rec, body := s.do(http.MethodGet, "/diet", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	plan := body["diet"].(map[string]interface{})
	s.Len(plan["meals"], 4)

	rec, body = s.do(http.MethodPost, "/diet/meals/reshape", token, map[string]int{"meals": 5})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	plan = body["diet"].(map[string]interface{})
	s.Len(plan["meals"], 5)
	s.Equal(float64(2000), plan["dailyCalories"])

	rec, _ = s.do(http.MethodPost, "/diet/meals/reshape", token, map[string]int{"meals": 9})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, _ = s.do(http.MethodPost, "/diet/meals/edit", token, map[string]string{"meal": "Ceia Imperial", "change": "banana"})
	s.Equal(http.StatusNotFound, rec.Code)

	rec, body = s.do(http.MethodPost, "/diet/chat", token, map[string]string{"message": "quero 3 refeições"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	plan = body["diet"].(map[string]interface{})
	s.Len(plan["meals"], 3)
	s.NotEmpty(body["message"])
}

func (s *ApiTestSuite) multipartRequest(path, token string, files map[string]string) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, contentType := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+field+`.jpg"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		s.Require().NoError(err)
		part.Write([]byte("fake image bytes"))
	}
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func (s *ApiTestSuite) TestBodyAnalysis() {
	token := s.register("ana@example.com")

	rec, _ := s.serve(s.multipartRequest("/body-analysis", token, map[string]string{"front": "image/jpeg"}))
	s.Equal(http.StatusPaymentRequired, rec.Code)

	s.subscribe(token, "starter")
	s.analyzer.On("Analyze", mock.Anything, mock.MatchedBy(func(p models.PhotoSet) bool {
		return p.Front != "" && p.Back == ""
	})).Return(&models.AnalysisResult{Proportions: "ok"}, nil).Once()

	rec, body := s.serve(s.multipartRequest("/body-analysis", token, map[string]string{"front": "image/jpeg"}))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.NotEmpty(body["analysis"])

	rec, body = s.do(http.MethodGet, "/body-analysis", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	record := body["analysis"].(map[string]interface{})
	s.Equal("ok", record["analysis"].(map[string]interface{})["proportions"])

	rec, _ = s.serve(s.multipartRequest("/body-analysis", token, map[string]string{"front": "application/pdf"}))
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	s.analyzer.AssertExpectations(s.T())
}

func (s *ApiTestSuite) TestProfilePhotoAndDietExtraction() {
	token := s.register("ana@example.com")

	rec, body := s.serve(s.multipartRequest("/me/photo", token, map[string]string{"photo": "image/png"}))
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(body["profilePhoto"], "data:image/png;base64,")

	rec, body = s.serve(s.multipartRequest("/diet/extract", token, map[string]string{"file": "image/jpeg"}))
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Len(body["meals"], 3)

	rec, _ = s.serve(s.multipartRequest("/diet/extract", token, map[string]string{"file": "text/plain"}))
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *ApiTestSuite) TestWorkoutProgress() {
	token := s.register("ana@example.com")

	rec, _ := s.do(http.MethodGet, "/workout/progress?date=2024-03-04", token, nil)
	s.Equal(http.StatusNotFound, rec.Code, "no workout plan yet")

	s.completeProfile(token)
	s.subscribe(token, "standard")
	rec, _ = s.do(http.MethodPost, "/plans/generate", token, loggedMeals)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec, body := s.do(http.MethodGet, "/workout/progress?date=2024-03-04", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(float64(0), body["completed"])
	prog := body["progress"].(map[string]interface{})
	first := prog["exercises"].([]interface{})[0].(map[string]interface{})

	rec, body = s.do(http.MethodPut, "/workout/progress", token, map[string]interface{}{
		"date":     "2024-03-04",
		"exercise": first["exercise"],
		"set":      0,
		"toggle":   true,
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(float64(1), body["completed"])

	rec, _ = s.do(http.MethodGet, "/workout/progress?date=04-03-2024", token, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ApiTestSuite) TestExerciseVideo() {
	token := s.register("ana@example.com")

	rec, body := s.do(http.MethodGet, "/exercises/Supino%20reto/video", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("Supino reto", body["exercise"])
	s.NotEmpty(body["url"])
}

func (s *ApiTestSuite) TestLoadUserRollsOverUsage() {
	token := s.register("ana@example.com")
	s.subscribe(token, "standard")

	u, err := s.store.GetUserByEmail(context.Background(), "ana@example.com")
	s.Require().NoError(err)
	u.Subscription.DietsUsedThisMonth = 2
	u.Subscription.UsagePeriodStart = time.Now().Add(-31 * 24 * time.Hour)
	s.Require().NoError(s.store.SaveUser(context.Background(), u))

	rec, body := s.do(http.MethodGet, "/subscription", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	usage := body["usage"].(map[string]interface{})
	s.Equal(float64(0), usage["dietsUsed"])

	stored, err := s.store.GetUser(context.Background(), u.ID)
	s.Require().NoError(err)
	s.Equal(0, stored.Subscription.DietsUsedThisMonth)
}
