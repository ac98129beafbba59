package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eolia_backend/internal/adapter/http/handlers/mocks"
	"eolia_backend/internal/adapter/http/middleware"
	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDocumentRouter(h *DocumentHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Principal())
	dossier := r.Group("/v1/orders/:order_id/dossiers/:dossier_id")
	dossier.POST("/documents/upload-url", h.CreateUploadURL)
	dossier.POST("/documents", h.AttachDocument)
	dossier.GET("/documents", h.ListDocuments)
	dossier.DELETE("/documents/:document_id", h.RemoveDocument)
	return r
}

func TestDocumentHandler_CreateUploadURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDossierDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)
		r := newDocumentRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/dossiers/shipping_d1/documents/upload-url", bytes.NewBufferString(`{"fileName":"proof.jpg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDossierDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)
		r := newDocumentRouter(h)

		uc.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), "ord-1", "shipping_d1", "notes.txt", "text/plain", int64(100)).
			Return(usecase.UploadTicket{}, &entities.UploadRejectedError{Reason: entities.UploadRejectExtension, Message: "file extension not supported, allowed: jpg, jpeg, png, pdf"})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/dossiers/shipping_d1/documents/upload-url", bytes.NewBufferString(`{"fileName":"notes.txt","contentType":"text/plain","size":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UPLOAD_REJECTED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDossierDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)
		r := newDocumentRouter(h)

		uc.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), "ord-1", "shipping_d1", "proof.jpg", "image/jpeg", int64(2048)).
			Return(usecase.UploadTicket{DocumentID: "doc-1", UploadURL: "https://bucket/key", StorageKey: "key", ExpiresIn: 900}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/dossiers/shipping_d1/documents/upload-url", bytes.NewBufferString(`{"fileName":"proof.jpg","contentType":"image/jpeg","size":2048}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Subject-Id", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["documentId"] != "doc-1" || body["uploadUrl"] != "https://bucket/key" || body["expiresIn"] != float64(900) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_AttachDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDossierDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)
		r := newDocumentRouter(h)

		doc := entities.DossierDocument{
			DocumentID: "doc-1", DossierID: "shipping_d1", OrderID: "ord-1",
			FileName: "proof.jpg", ContentType: "image/jpeg", Size: 2048,
			StorageKey: "key", UploadedAt: time.Now().UTC(), UploadedBy: "user-1",
		}
		uc.EXPECT().AttachDocument(gomock.Any(), gomock.Any(), "ord-1", "shipping_d1", usecase.AttachDocumentInput{
			DocumentID: "doc-1", FileName: "proof.jpg", ContentType: "image/jpeg", Size: 2048, StorageKey: "key",
		}).Return(doc, nil)

		payload := `{"documentId":"doc-1","fileName":"proof.jpg","contentType":"image/jpeg","size":2048,"storageKey":"key"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/dossiers/shipping_d1/documents", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Subject-Id", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["documentId"] != "doc-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, leaked := body["storageKey"]; leaked {
			t.Fatalf("storage key must stay internal: %s", w.Body.String())
		}
	})

	t.Run("missing storage key fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDossierDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)
		r := newDocumentRouter(h)

		payload := `{"fileName":"proof.jpg","contentType":"image/jpeg","size":2048}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/dossiers/shipping_d1/documents", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_ListDocuments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDossierDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc)
	r := newDocumentRouter(h)

	uc.EXPECT().ListDocuments(gomock.Any(), gomock.Any(), "ord-1", "shipping_d1").Return([]usecase.DocumentWithURL{
		{Document: entities.DossierDocument{DocumentID: "doc-1", FileName: "proof.jpg"}, DownloadURL: "https://bucket/k1", ExpiresIn: 900},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/dossiers/shipping_d1/documents", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["downloadUrl"] != "https://bucket/k1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDocumentHandler_RemoveDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDossierDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)
		r := newDocumentRouter(h)

		uc.EXPECT().RemoveDocument(gomock.Any(), gomock.Any(), "ord-1", "shipping_d1", "doc-1").Return(usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1/dossiers/shipping_d1/documents/doc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDossierDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)
		r := newDocumentRouter(h)

		uc.EXPECT().RemoveDocument(gomock.Any(), gomock.Any(), "ord-1", "shipping_d1", "doc-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1/dossiers/shipping_d1/documents/doc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %s", w.Body.String())
		}
	})
}
