package cmd

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("withCORS", func() {
	var (
		origins []string
		origin  string
		rec     *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		origins = []string{"https://example.com"}
		origin = "https://example.com"
		rec = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
		req.Header.Set("Origin", origin)
		withCORS(ok, origins, zap.NewNop().Sugar()).ServeHTTP(rec, req)
	})

	When("the origin is listed", func() {
		It("should allow it", func() {
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://example.com"))
		})
	})

	When("the origin is not listed", func() {
		BeforeEach(func() {
			origin = "https://evil.example"
		})

		It("should not allow it", func() {
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})
	})

	When("no origins are configured", func() {
		BeforeEach(func() {
			origins = nil
		})

		It("should leave responses untouched", func() {
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})

var _ = Describe("loadContent", func() {
	It("should fall back to the built-in portfolio", func() {
		p, err := loadContent("")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Name).NotTo(BeEmpty())
	})

	It("should fail for a missing file", func() {
		_, err := loadContent("missing.toml")
		Expect(err).To(HaveOccurred())
	})
})
