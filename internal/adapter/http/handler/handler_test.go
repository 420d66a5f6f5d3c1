package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creator-paygate/internal/adapter/http/dto"
	"creator-paygate/internal/adapter/http/middleware"
	"creator-paygate/internal/core/domain"
	"creator-paygate/internal/core/ports"
	"creator-paygate/internal/core/ports/mocks"
	"creator-paygate/internal/x402"
	"creator-paygate/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func getContext(t *testing.T, target string, id uuid.UUID) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	return c, w
}

// --- Content Handler Tests ---

func TestContentGet_Article(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateSvc := mocks.NewMockGateService(ctrl)
	h := NewContentHandler(gateSvc, mocks.NewMockContentService(ctrl))

	content := &domain.Content{
		ID:    uuid.New(),
		Title: "hello",
		Kind:  domain.ContentKindArticle,
		Body:  "hello, world",
	}
	gateSvc.EXPECT().
		Access(gomock.Any(), ports.AccessRequest{ContentID: content.ID, Method: http.MethodGet}).
		Return(&ports.AccessResult{Content: content}, nil)

	c, w := getContext(t, "/content/"+content.ID.String(), content.ID)
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hello, world", resp.Body)
	assert.Empty(t, resp.Message)
}

func TestContentGet_PaidArticleCarriesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateSvc := mocks.NewMockGateService(ctrl)
	h := NewContentHandler(gateSvc, mocks.NewMockContentService(ctrl))

	content := &domain.Content{ID: uuid.New(), Kind: domain.ContentKindArticle, Body: "secret"}
	gateSvc.EXPECT().
		Access(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req ports.AccessRequest) (*ports.AccessResult, error) {
			assert.Equal(t, "opaque-proof", req.PaymentHeader, "payment header forwarded to the gate")
			return &ports.AccessResult{Content: content, Message: "Payment successful! Access granted."}, nil
		})

	c, w := getContext(t, "/content/"+content.ID.String(), content.ID)
	c.Request.Header.Set(x402.PaymentHeader, "opaque-proof")
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Payment successful! Access granted.", resp.Message)
}

func TestContentGet_RelaysChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateSvc := mocks.NewMockGateService(ctrl)
	h := NewContentHandler(gateSvc, mocks.NewMockContentService(ctrl))

	id := uuid.New()
	gateSvc.EXPECT().Access(gomock.Any(), gomock.Any()).Return(&ports.AccessResult{
		Relay: &x402.SettlementResult{
			Status: http.StatusPaymentRequired,
			Body:   []byte(`{"error":"insufficient funds"}`),
			Headers: map[string]string{
				x402.ChallengeHeader: x402.ChallengeScheme,
				"Content-Type":       "application/json",
			},
		},
	}, nil)

	c, w := getContext(t, "/content/"+id.String(), id)
	h.Get(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, `{"error":"insufficient funds"}`, w.Body.String(), "relayed byte-for-byte")
	assert.Equal(t, x402.ChallengeScheme, w.Header().Get(x402.ChallengeHeader))
}

func TestContentGet_File(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateSvc := mocks.NewMockGateService(ctrl)
	h := NewContentHandler(gateSvc, mocks.NewMockContentService(ctrl))

	content := &domain.Content{
		ID:          uuid.New(),
		Kind:        domain.ContentKindFile,
		FileName:    "paper.pdf",
		ContentType: "application/pdf",
	}
	gateSvc.EXPECT().Access(gomock.Any(), gomock.Any()).
		Return(&ports.AccessResult{Content: content, Payload: []byte("%PDF-1.4")}, nil)

	c, w := getContext(t, "/content/"+content.ID.String(), content.ID)
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4", w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
}

func TestContentDownload_SetsAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateSvc := mocks.NewMockGateService(ctrl)
	h := NewContentHandler(gateSvc, mocks.NewMockContentService(ctrl))

	content := &domain.Content{
		ID:       uuid.New(),
		Kind:     domain.ContentKindFile,
		FileName: "paper.pdf",
	}
	gateSvc.EXPECT().Access(gomock.Any(), gomock.Any()).
		Return(&ports.AccessResult{Content: content, Payload: []byte("%PDF-1.4")}, nil)

	c, w := getContext(t, "/content/"+content.ID.String()+"/download", content.ID)
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="paper.pdf"`)
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
}

func TestContentDownload_ArticleIsNotAFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateSvc := mocks.NewMockGateService(ctrl)
	h := NewContentHandler(gateSvc, mocks.NewMockContentService(ctrl))

	id := uuid.New()
	gateSvc.EXPECT().
		Access(gomock.Any(), ports.AccessRequest{ContentID: id, Method: http.MethodGet, RequireFile: true}).
		Return(nil, apperror.ErrNotAFile())

	c, w := getContext(t, "/content/"+id.String()+"/download", id)
	h.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CNT_003")
}

func TestContentGet_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewContentHandler(mocks.NewMockGateService(ctrl), mocks.NewMockContentService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/content/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateSvc := mocks.NewMockGateService(ctrl)
	h := NewContentHandler(gateSvc, mocks.NewMockContentService(ctrl))

	id := uuid.New()
	gateSvc.EXPECT().Access(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrContentNotFound())

	c, w := getContext(t, "/content/"+id.String(), id)
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentGetMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contentSvc := mocks.NewMockContentService(ctrl)
	h := NewContentHandler(mocks.NewMockGateService(ctrl), contentSvc)

	content := &domain.Content{
		ID:           uuid.New(),
		Title:        "hello",
		Kind:         domain.ContentKindArticle,
		Price:        decimal.RequireFromString("0.50"),
		PayeeAddress: "0x1111111111111111111111111111111111111111",
	}
	contentSvc.EXPECT().GetMeta(gomock.Any(), content.ID).Return(content, nil)

	c, w := getContext(t, "/content/"+content.ID.String()+"/meta", content.ID)
	h.GetMeta(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "0.5", data["price"])
	assert.Equal(t, "hello", data["title"])
}

func TestUpdatePayee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contentSvc := mocks.NewMockContentService(ctrl)
	h := NewContentHandler(mocks.NewMockGateService(ctrl), contentSvc)

	creatorID := uuid.New()
	newPayee := "0x2222222222222222222222222222222222222222"
	content := &domain.Content{ID: uuid.New(), CreatorID: creatorID, PayeeAddress: newPayee}

	contentSvc.EXPECT().
		UpdatePayee(gomock.Any(), content.ID, creatorID, newPayee).
		Return(content, nil)

	body, _ := json.Marshal(dto.UpdatePayeeRequest{PayeeAddress: newPayee})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/content/"+content.ID.String()+"/payee", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: content.ID.String()}}
	c.Set(middleware.CtxCreatorID, creatorID)

	h.UpdatePayee(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdatePayee_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewContentHandler(mocks.NewMockGateService(ctrl), mocks.NewMockContentService(ctrl))

	id := uuid.New()
	body := []byte(`{"payee_address":"nope"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/content/"+id.String()+"/payee", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Set(middleware.CtxCreatorID, uuid.New())

	h.UpdatePayee(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contentSvc := mocks.NewMockContentService(ctrl)
	h := NewContentHandler(mocks.NewMockGateService(ctrl), contentSvc)

	creatorID := uuid.New()
	items := []domain.Content{
		{ID: uuid.New(), Title: "first", Kind: domain.ContentKindArticle, CreatorID: creatorID},
		{ID: uuid.New(), Title: "second", Kind: domain.ContentKindFile, FileName: "a.csv", CreatorID: creatorID},
	}
	contentSvc.EXPECT().ListByCreator(gomock.Any(), creatorID).Return(items, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/content", nil)
	c.Set(middleware.CtxCreatorID, creatorID)

	h.ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, "first", first["title"])
}

func TestListMine_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewContentHandler(mocks.NewMockGateService(ctrl), mocks.NewMockContentService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/content", nil)

	h.ListMine(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(authSvc)

	expiry := time.Now().Add(time.Hour)
	authSvc.EXPECT().Login(gomock.Any(), "ak_test", "topsecret").Return("jwt-token", expiry, nil)

	body, _ := json.Marshal(dto.LoginRequest{AccessKey: "ak_test", Secret: "topsecret"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(authSvc)

	authSvc.EXPECT().Login(gomock.Any(), "ak_test", "wrong").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.LoginRequest{AccessKey: "ak_test", Secret: "wrong"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(authSvc)

	creator := &domain.Creator{
		ID:        uuid.New(),
		Name:      "Test Creator",
		AccessKey: "ak_test",
		Status:    domain.CreatorStatusActive,
		CreatedAt: time.Now(),
	}
	authSvc.EXPECT().Profile(gomock.Any(), creator.ID).Return(creator, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	c.Set(middleware.CtxCreatorID, creator.ID)

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, creator.ID.String(), data["id"])
	assert.Equal(t, "ak_test", data["access_key"])
	assert.NotContains(t, data, "secret_hash")
}

func TestMe_UnknownCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(authSvc)

	id := uuid.New()
	authSvc.EXPECT().Profile(gomock.Any(), id).Return(nil, apperror.ErrCreatorNotFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	c.Set(middleware.CtxCreatorID, id)

	h.Me(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
