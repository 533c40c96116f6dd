package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/MikeRez0/orderdesk/internal/adapter/auth"
	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/MikeRez0/orderdesk/internal/adapter/events"
	"github.com/MikeRez0/orderdesk/internal/adapter/metrics"
	"github.com/MikeRez0/orderdesk/internal/adapter/storage/disk"
	"github.com/MikeRez0/orderdesk/internal/adapter/storage/memory"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port/mock"
	"github.com/MikeRez0/orderdesk/internal/core/service"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	t      *testing.T
	router *Router
	cnpj   *mock.MockCnpjClient
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	store := memory.NewStore()
	tokens, err := auth.New(&config.Auth{TokenTTL: time.Hour})
	require.NoError(t, err)

	storageConf := &config.Storage{
		UploadDir:    filepath.Join(t.TempDir(), "uploads"),
		PublicPath:   "/uploads",
		MaxImageSize: 1 << 10,
		MaxImages:    2,
	}
	images, err := disk.NewImageStorage(storageConf)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	cnpjClient := mock.NewMockCnpjClient(ctrl)

	reg := prometheus.NewRegistry()
	orders, err := service.NewOrderService(store, events.NewLogPublisher(log), metrics.NewOrderMetrics(reg), log)
	require.NoError(t, err)
	clients, err := service.NewClientService(store, log)
	require.NoError(t, err)
	products, err := service.NewProductService(store, images, log)
	require.NoError(t, err)
	users, err := service.NewUserService(store, tokens, log)
	require.NoError(t, err)
	cnpjs, err := service.NewCnpjService(cnpjClient, log)
	require.NoError(t, err)

	oh, _ := NewOrderHandler(orders, log)
	ch, _ := NewClientHandler(clients, log)
	ph, _ := NewProductHandler(products, storageConf, log)
	uh, _ := NewUserHandler(users, log)
	cnh, _ := NewCnpjHandler(cnpjs, log)

	router, err := NewRouter(&config.HTTP{}, storageConf, tokens, store, Handlers{
		Order: oh, Client: ch, Product: ph, User: uh, Cnpj: cnh,
		Metrics:    metrics.Handler(reg),
		Middleware: []gin.HandlerFunc{metrics.NewServerMetrics(reg).Middleware()},
	}, log)
	require.NoError(t, err)

	return &testAPI{t: t, router: router, cnpj: cnpjClient}
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) register(email string, role domain.Role) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Test", "email": email, "password": "secret1", "role": role,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	var resp tokenResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type orderJSON struct {
	ID       string          `json:"id"`
	ClientID string          `json:"clientId"`
	Total    json.RawMessage `json:"total"`
	Items    []struct {
		ProductID string          `json:"productId"`
		Quantity  int             `json:"quantity"`
		UnitPrice json.RawMessage `json:"unitPrice"`
		Subtotal  json.RawMessage `json:"subtotal"`
	} `json:"items"`
}

type productJSON struct {
	ID     string `json:"id"`
	Stock  int    `json:"stock"`
	Images []struct {
		ID   string `json:"id"`
		Path string `json:"path"`
	} `json:"images"`
}

func TestOrderLifecycle(t *testing.T) {
	api := newTestAPI(t)
	admin := api.register("admin@example.com", domain.RoleAdmin)
	user := api.register("user@example.com", "")

	w := api.do(http.MethodPost, "/api/clients", admin, gin.H{
		"companyName": "ACME", "cnpj": "11222333000181", "email": "acme@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	client := decode[clientResponse](t, w)

	w = api.do(http.MethodPost, "/api/products", admin, gin.H{"description": "A", "salePrice": 100, "stock": 10})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productA := decode[productJSON](t, w)
	w = api.do(http.MethodPost, "/api/products", admin, gin.H{"description": "B", "salePrice": "50.00", "stock": 5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productB := decode[productJSON](t, w)

	// a plain user may place orders but not manage products
	w = api.do(http.MethodPost, "/api/products", user, gin.H{"description": "C", "salePrice": 1, "stock": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodPost, "/api/orders", user, gin.H{
		"clientId": client.ID,
		"items": []gin.H{
			{"productId": productA.ID, "quantity": 3},
			{"productId": productB.ID, "quantity": 4},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[orderJSON](t, w)
	assert.Equal(t, "500.00", string(order.Total))
	require.Len(t, order.Items, 2)
	assert.Equal(t, "300.00", string(order.Items[0].Subtotal))
	assert.Equal(t, "200.00", string(order.Items[1].Subtotal))

	w = api.do(http.MethodGet, "/api/products/"+productA.ID, user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, decode[productJSON](t, w).Stock)

	// not enough stock leaves everything untouched
	w = api.do(http.MethodPost, "/api/orders", user, gin.H{
		"clientId": client.ID,
		"items": []gin.H{
			{"productId": productA.ID, "quantity": 1},
			{"productId": productB.ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "available 1, requested 2")

	w = api.do(http.MethodGet, "/api/products/"+productA.ID, user, nil)
	assert.Equal(t, 7, decode[productJSON](t, w).Stock)

	w = api.do(http.MethodGet, "/api/orders?page=1&limit=10", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[pageResponse[orderJSON]](t, w)
	assert.Equal(t, 1, list.Meta.Total)
	assert.Equal(t, 1, list.Meta.TotalPages)

	w = api.do(http.MethodGet, "/api/orders/"+order.ID, user, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodDelete, "/api/orders/"+order.ID, user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodDelete, "/api/orders/"+order.ID, admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/products/"+productA.ID, user, nil)
	assert.Equal(t, 10, decode[productJSON](t, w).Stock)
	w = api.do(http.MethodGet, "/api/products/"+productB.ID, user, nil)
	assert.Equal(t, 5, decode[productJSON](t, w).Stock)

	w = api.do(http.MethodGet, "/api/orders/"+order.ID, user, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "orderdesk_orders_placed_total 1")
}

func TestRequestErrors(t *testing.T) {
	api := newTestAPI(t)
	user := api.register("user@example.com", domain.RoleUser)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		status int
	}{
		{name: "no token", method: http.MethodGet, path: "/api/orders", status: http.StatusUnauthorized},
		{name: "bad token", method: http.MethodGet, path: "/api/orders", token: "nope", status: http.StatusUnauthorized},
		{name: "bad uuid", method: http.MethodGet, path: "/api/orders/42", token: user, status: http.StatusBadRequest},
		{name: "missing order", method: http.MethodGet, path: "/api/orders/6f1f8a57-8f4f-4d8e-9a0e-3c1b9b2d7f10", token: user, status: http.StatusNotFound},
		{name: "bad limit", method: http.MethodGet, path: "/api/products?limit=101", token: user, status: http.StatusBadRequest},
		{name: "bad page", method: http.MethodGet, path: "/api/products?page=0", token: user, status: http.StatusBadRequest},
		{name: "clients are admin only", method: http.MethodGet, path: "/api/clients", token: user, status: http.StatusForbidden},
		{
			name: "empty order", method: http.MethodPost, path: "/api/orders", token: user,
			body: gin.H{"clientId": "6f1f8a57-8f4f-4d8e-9a0e-3c1b9b2d7f10", "items": []gin.H{}}, status: http.StatusBadRequest,
		},
		{
			name: "unknown client", method: http.MethodPost, path: "/api/orders", token: user,
			body: gin.H{
				"clientId": "6f1f8a57-8f4f-4d8e-9a0e-3c1b9b2d7f10",
				"items":    []gin.H{{"productId": "7a1f8a57-8f4f-4d8e-9a0e-3c1b9b2d7f10", "quantity": 1}},
			},
			status: http.StatusNotFound,
		},
		{name: "bad login", method: http.MethodPost, path: "/api/auth/login", body: gin.H{"email": "user@example.com", "password": "wrong!"}, status: http.StatusUnauthorized},
		{name: "duplicate register", method: http.MethodPost, path: "/api/auth/register", body: gin.H{"name": "x", "email": "user@example.com", "password": "secret1"}, status: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			resp := decode[errorResponse](t, w)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestValidationErrorBody(t *testing.T) {
	api := newTestAPI(t)
	user := api.register("user@example.com", domain.RoleUser)

	w := api.do(http.MethodPost, "/api/orders", user, gin.H{
		"items": []gin.H{{"productId": "7a1f8a57-8f4f-4d8e-9a0e-3c1b9b2d7f10", "quantity": 0}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[errorResponse](t, w)
	assert.ElementsMatch(t, []domain.FieldError{
		{Field: "clientId", Message: "is required"},
		{Field: "items[0].quantity", Message: "must be at least 1"},
	}, resp.Errors)
}

func TestCnpjLookup(t *testing.T) {
	api := newTestAPI(t)
	user := api.register("user@example.com", domain.RoleUser)

	api.cnpj.EXPECT().Lookup(gomock.Any(), "11222333000181").
		Return(&domain.CompanyInfo{CompanyName: "ACME LTDA", Email: "acme@example.com"}, nil)
	api.cnpj.EXPECT().Lookup(gomock.Any(), "00000000000000").Return(nil, domain.ErrCnpjNotFound)
	api.cnpj.EXPECT().Lookup(gomock.Any(), "11111111111111").
		Return(nil, errors.Join(domain.ErrCnpjUnavailable, errors.New("timeout")))

	w := api.do(http.MethodGet, "/api/cnpj/11.222.333.0001-81", user, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	info := decode[cnpjResponse](t, w)
	assert.Equal(t, cnpjResponse{CNPJ: "11222333000181", CompanyName: "ACME LTDA", Email: "acme@example.com"}, info)

	w = api.do(http.MethodGet, "/api/cnpj/00000000000000", user, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/cnpj/11111111111111", user, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func multipartImages(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, mime := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images"; filename="`+name+`"`)
		h.Set("Content-Type", mime)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestProductImages(t *testing.T) {
	api := newTestAPI(t)
	admin := api.register("admin@example.com", domain.RoleAdmin)

	w := api.do(http.MethodPost, "/api/products", admin, gin.H{"description": "A", "salePrice": 1, "stock": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	product := decode[productJSON](t, w)

	upload := func(files map[string]string) *httptest.ResponseRecorder {
		body, contentType := multipartImages(t, files)
		req := httptest.NewRequest(http.MethodPost, "/api/products/"+product.ID+"/images", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+admin)
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, req)
		return rec
	}

	w = upload(map[string]string{"doc.pdf": "application/pdf"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = upload(map[string]string{"a.png": "image/png", "b.jpg": "image/jpeg", "c.gif": "image/gif"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = upload(map[string]string{"a.png": "image/png"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/products/"+product.ID, admin, nil)
	got := decode[productJSON](t, w)
	require.Len(t, got.Images, 1)

	w = api.do(http.MethodGet, got.Images[0].Path, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image-bytes", w.Body.String())

	w = api.do(http.MethodDelete, "/api/products/"+product.ID+"/images/"+got.Images[0].ID, admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, "/api/products/"+product.ID, admin, nil)
	assert.Empty(t, decode[productJSON](t, w).Images)
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
