package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farmchainx/chatbot-api/internal/service"
	"github.com/farmchainx/chatbot-api/internal/testutil"
	"github.com/gin-gonic/gin"
)

func newTestMarketHandler(repo *testutil.MockMarketRepo) *MarketHandler {
	svc := service.NewMarketService(testutil.TestConfig(), repo)
	return NewMarketHandler(svc)
}

func TestListVegetables(t *testing.T) {
	handler := newTestMarketHandler(testutil.TestMarketRepo())

	r := gin.New()
	r.GET("/vegetables", handler.ListVegetables)
	req := httptest.NewRequest("GET", "/vegetables", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Vegetables []map[string]interface{} `json:"vegetables"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Vegetables) != 3 {
		t.Errorf("vegetables count = %d, want 3", len(resp.Vegetables))
	}
}

func TestGetTotalSales(t *testing.T) {
	repo := testutil.TestMarketRepo()
	repo.Sales = testutil.TestSalesRecords()
	handler := newTestMarketHandler(repo)

	r := gin.New()
	r.GET("/sales/total", handler.GetTotalSales)
	req := httptest.NewRequest("GET", "/sales/total", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]float64
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["total"] != 1500 {
		t.Errorf("total = %v, want 1500", resp["total"])
	}
}

func TestRecordSale(t *testing.T) {
	repo := testutil.TestMarketRepo()
	handler := newTestMarketHandler(repo)

	r := gin.New()
	r.POST("/sales", handler.RecordSale)
	req := httptest.NewRequest("POST", "/sales", strings.NewReader(`{"amount": 320, "note": "cabbage crate"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if len(repo.Sales) != 1 || repo.Sales[0].Amount != 320 {
		t.Errorf("sales = %+v, want one record of 320", repo.Sales)
	}
}

func TestRecordSale_InvalidAmount(t *testing.T) {
	handler := newTestMarketHandler(testutil.TestMarketRepo())

	r := gin.New()
	r.POST("/sales", handler.RecordSale)
	for _, body := range []string{`{"amount": 0}`, `{"amount": -5}`, `{}`} {
		req := httptest.NewRequest("POST", "/sales", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, w.Code, http.StatusBadRequest)
		}
	}
}
