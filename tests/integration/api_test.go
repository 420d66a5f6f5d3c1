package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	httpHandler "creator-paygate/internal/adapter/http/handler"
	memStorage "creator-paygate/internal/adapter/storage/memory"
	redisStorage "creator-paygate/internal/adapter/storage/redis"
	"creator-paygate/internal/core/domain"
	"creator-paygate/internal/core/ports"
	"creator-paygate/internal/service"
	"creator-paygate/internal/x402"
	"creator-paygate/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testNetwork      = "base-sepolia"
	testAssetAddress = "0x036CbD53842c5426634e7929541eC2318f3dCF7e"
	testPayee        = "0x1111111111111111111111111111111111111111"
	validProof       = "valid-proof"
)

// testApp builds the full application stack: real HTTP layer, middleware,
// handlers and services over in-memory repos, with miniredis backing the
// rate limiter and an httptest facilitator settling payments.
type testApp struct {
	server      *httptest.Server
	facilitator *httptest.Server
	settleCalls atomic.Int64
	contentSvc  ports.ContentService
	creatorRepo ports.CreatorRepository
	hashSvc     ports.HashService
}

// fakeFacilitator accepts exactly one proof value and relays a rejection
// verdict for everything else. Every settle round trip bumps calls.
func fakeFacilitator(t *testing.T, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/settle", r.URL.Path)
		calls.Add(1)

		var req x402.SettleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, x402.ProtocolVersion, req.X402Version)
		require.Equal(t, testNetwork, req.Network)

		if req.PaymentData == validProof {
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{"success":true}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(x402.ChallengeHeader, x402.ChallengeScheme)
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":"payment proof rejected"}`)
	}))
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	contentRepo := memStorage.NewContentRepo()
	creatorRepo := memStorage.NewCreatorRepo()
	blobs := memStorage.NewBlobStore()

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	authSvc := service.NewAuthService(creatorRepo, hashSvc, tokenSvc)
	contentSvc := service.NewContentService(contentRepo, blobs)

	log := logger.New("debug", false)

	app := &testApp{contentSvc: contentSvc, creatorRepo: creatorRepo, hashSvc: hashSvc}
	fac := fakeFacilitator(t, &app.settleCalls)
	gateSvc := service.NewGateService(contentRepo, blobs,
		x402.NewFacilitatorClient(fac.URL, 5*time.Second, log),
		service.GateConfig{
			Network:         testNetwork,
			Asset:           x402.Asset{Address: testAssetAddress, Decimals: 6},
			ResourceBaseURL: "http://paygate.test",
		}, nil, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		GateSvc:        gateSvc,
		ContentSvc:     contentSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		Logger:         log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		fac.Close()
		rdb.Close()
	})

	app.server = srv
	app.facilitator = fac
	return app
}

func (a *testApp) seedCreator(t *testing.T, accessKey, secret string) *domain.Creator {
	t.Helper()
	hash, err := a.hashSvc.Hash(secret)
	require.NoError(t, err)

	creator := &domain.Creator{
		ID:         uuid.New(),
		Name:       "Test Creator",
		AccessKey:  accessKey,
		SecretHash: hash,
		Status:     domain.CreatorStatusActive,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, a.creatorRepo.Create(context.Background(), creator))
	return creator
}

func (a *testApp) seedArticle(t *testing.T, creatorID uuid.UUID, price decimal.Decimal) *domain.Content {
	t.Helper()
	content, err := a.contentSvc.Create(context.Background(), ports.CreateContentRequest{
		Title:        "On Payment Gating",
		Kind:         domain.ContentKindArticle,
		Body:         "the full article text",
		Price:        price,
		PayeeAddress: testPayee,
		CreatorID:    creatorID,
	})
	require.NoError(t, err)
	return content
}

func (a *testApp) get(t *testing.T, path string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, a.server.URL+path, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestFreeArticle_ReadWithoutPayment(t *testing.T) {
	app := newTestApp(t)
	content := app.seedArticle(t, uuid.New(), decimal.Zero)

	resp, body := app.get(t, "/content/"+content.ID.String(), nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var article map[string]any
	require.NoError(t, json.Unmarshal(body, &article))
	assert.Equal(t, "the full article text", article["body"])
	assert.NotContains(t, article, "message")
}

func TestPricedArticle_ChallengeWithoutPayment(t *testing.T) {
	app := newTestApp(t)
	content := app.seedArticle(t, uuid.New(), decimal.RequireFromString("1.5"))

	resp, body := app.get(t, "/content/"+content.ID.String(), nil)

	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, x402.ChallengeScheme, resp.Header.Get(x402.ChallengeHeader))

	var challenge x402.PaymentRequiredResponse
	require.NoError(t, json.Unmarshal(body, &challenge))
	assert.Equal(t, x402.ProtocolVersion, challenge.X402Version)
	require.Len(t, challenge.Accepts, 1)
	accept := challenge.Accepts[0]
	assert.Equal(t, "exact", accept.Scheme)
	assert.Equal(t, testNetwork, accept.Network)
	assert.Equal(t, "1500000", accept.MaxAmountRequired)
	assert.Equal(t, testPayee, accept.PayTo)
	assert.Equal(t, testAssetAddress, accept.Asset)
	assert.Equal(t, "http://paygate.test/content/"+content.ID.String(), accept.Resource)
}

func TestPricedArticle_PaidRead(t *testing.T) {
	app := newTestApp(t)
	content := app.seedArticle(t, uuid.New(), decimal.RequireFromString("0.25"))

	resp, body := app.get(t, "/content/"+content.ID.String(), map[string]string{
		x402.PaymentHeader: validProof,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var article map[string]any
	require.NoError(t, json.Unmarshal(body, &article))
	assert.Equal(t, "the full article text", article["body"])
	assert.Equal(t, "Payment successful! Access granted.", article["message"])
}

func TestPricedArticle_RejectedProofRelayedVerbatim(t *testing.T) {
	app := newTestApp(t)
	content := app.seedArticle(t, uuid.New(), decimal.RequireFromString("0.25"))

	resp, body := app.get(t, "/content/"+content.ID.String(), map[string]string{
		x402.PaymentHeader: "forged-proof",
	})

	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, `{"error":"payment proof rejected"}`, string(body))
	assert.Equal(t, x402.ChallengeScheme, resp.Header.Get(x402.ChallengeHeader))
}

func TestPricedFile_PaidDownload(t *testing.T) {
	app := newTestApp(t)
	content, err := app.contentSvc.Create(context.Background(), ports.CreateContentRequest{
		Title:        "Dataset",
		Kind:         domain.ContentKindFile,
		FileName:     "dataset.csv",
		ContentType:  "text/csv",
		FileData:     []byte("a,b\n1,2\n"),
		Price:        decimal.RequireFromString("2"),
		PayeeAddress: testPayee,
		CreatorID:    uuid.New(),
	})
	require.NoError(t, err)

	resp, body := app.get(t, "/content/"+content.ID.String()+"/download", map[string]string{
		x402.PaymentHeader: validProof,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a,b\n1,2\n", string(body))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="dataset.csv"`)
	assert.Equal(t, "Payment successful! Access granted.", resp.Header.Get("X-Payment-Message"))
}

func TestPricedArticle_DownloadNeverSettles(t *testing.T) {
	app := newTestApp(t)
	content := app.seedArticle(t, uuid.New(), decimal.RequireFromString("1.5"))

	resp, body := app.get(t, "/content/"+content.ID.String()+"/download", map[string]string{
		x402.PaymentHeader: validProof,
	})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "CNT_003")
	assert.Equal(t, int64(0), app.settleCalls.Load())
}

func TestContentMeta_PublicWithoutPayment(t *testing.T) {
	app := newTestApp(t)
	content := app.seedArticle(t, uuid.New(), decimal.RequireFromString("1.5"))

	resp, body := app.get(t, "/content/"+content.ID.String()+"/meta", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(body, &envelope))
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "On Payment Gating", data["title"])
	assert.Equal(t, "1.5", data["price"])
	assert.Equal(t, testPayee, data["payee_address"])
}

func TestUnknownContent_NotFound(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.get(t, "/content/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "CNT_001")
	assert.Empty(t, resp.Header.Get(x402.ChallengeHeader), "unknown content must not leak a challenge")
}

func TestLoginAndUpdatePayee(t *testing.T) {
	app := newTestApp(t)
	creator := app.seedCreator(t, "ak_creator", "hunter2-secret")
	content := app.seedArticle(t, creator.ID, decimal.RequireFromString("1"))

	// Login
	loginBody, _ := json.Marshal(map[string]string{
		"access_key": "ak_creator",
		"secret":     "hunter2-secret",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(loginBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	token := loginResp["data"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)

	// Redirect settlements to a new payee
	newPayee := "0x2222222222222222222222222222222222222222"
	patchBody, _ := json.Marshal(map[string]string{"payee_address": newPayee})
	req, err := http.NewRequest(http.MethodPatch, app.server.URL+"/content/"+content.ID.String()+"/payee", bytes.NewReader(patchBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	patchResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer patchResp.Body.Close()
	assert.Equal(t, http.StatusOK, patchResp.StatusCode)

	// Subsequent challenges carry the new payee
	chalResp, chalBody := app.get(t, "/content/"+content.ID.String(), nil)
	assert.Equal(t, http.StatusPaymentRequired, chalResp.StatusCode)
	var challenge x402.PaymentRequiredResponse
	require.NoError(t, json.Unmarshal(chalBody, &challenge))
	require.Len(t, challenge.Accepts, 1)
	assert.Equal(t, newPayee, challenge.Accepts[0].PayTo)
}

func TestCreatorDashboard_ListAndProfile(t *testing.T) {
	app := newTestApp(t)
	creator := app.seedCreator(t, "ak_creator", "hunter2-secret")
	app.seedArticle(t, creator.ID, decimal.Zero)
	app.seedArticle(t, creator.ID, decimal.RequireFromString("1"))
	app.seedArticle(t, uuid.New(), decimal.Zero) // someone else's

	loginBody, _ := json.Marshal(map[string]string{
		"access_key": "ak_creator",
		"secret":     "hunter2-secret",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(loginBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	token := loginResp["data"].(map[string]any)["token"].(string)
	authed := map[string]string{"Authorization": "Bearer " + token}

	listResp, listBody := app.get(t, "/content", authed)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	var listed map[string]any
	require.NoError(t, json.Unmarshal(listBody, &listed))
	assert.Len(t, listed["data"], 2)

	meResp, meBody := app.get(t, "/api/v1/auth/me", authed)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)
	var me map[string]any
	require.NoError(t, json.Unmarshal(meBody, &me))
	profile := me["data"].(map[string]any)
	assert.Equal(t, creator.ID.String(), profile["id"])
	assert.Equal(t, "ak_creator", profile["access_key"])
}

func TestUpdatePayee_RequiresAuth(t *testing.T) {
	app := newTestApp(t)
	content := app.seedArticle(t, uuid.New(), decimal.RequireFromString("1"))

	patchBody, _ := json.Marshal(map[string]string{"payee_address": testPayee})
	req, err := http.NewRequest(http.MethodPatch, app.server.URL+"/content/"+content.ID.String()+"/payee", bytes.NewReader(patchBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.get(t, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")
}
