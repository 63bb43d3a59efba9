package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"portfolio/internal/http/handler/middleware"
	"portfolio/internal/session"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type sessionStub struct {
	identity session.Identity
	ok       bool
}

func (s sessionStub) Current(*http.Request) (session.Identity, bool) {
	return s.identity, s.ok
}

var _ = Describe("Gate", func() {
	var (
		gate    *middleware.Gate
		stub    sessionStub
		called  bool
		seen    session.Identity
		rec     *httptest.ResponseRecorder
		handler http.Handler
	)

	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = middleware.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	BeforeEach(func() {
		called = false
		seen = session.Identity{}
		stub = sessionStub{}
		rec = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		gate = middleware.NewGate(zap.NewNop().Sugar(), stub)
	})

	Describe("RequireLogin", func() {
		JustBeforeEach(func() {
			handler = gate.RequireLogin(protected)
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
		})

		When("the client is anonymous", func() {
			It("should redirect to the login page without running the handler", func() {
				Expect(called).To(BeFalse())
				Expect(rec.Code).To(Equal(http.StatusFound))
				Expect(rec.Header().Get("Location")).To(Equal(middleware.LoginPath))
			})
		})

		When("the client is authenticated", func() {
			BeforeEach(func() {
				stub = sessionStub{identity: session.Identity{UserID: 1, Username: "arifin123"}, ok: true}
			})

			It("should run the handler with the identity", func() {
				Expect(called).To(BeTrue())
				Expect(rec.Code).To(Equal(http.StatusOK))
				Expect(seen).To(Equal(session.Identity{UserID: 1, Username: "arifin123"}))
			})
		})
	})

	Describe("RequireLoginAPI", func() {
		JustBeforeEach(func() {
			handler = gate.RequireLoginAPI(protected)
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/messages", nil))
		})

		When("the client is anonymous", func() {
			It("should answer 401 with an error status", func() {
				Expect(called).To(BeFalse())
				Expect(rec.Code).To(Equal(http.StatusUnauthorized))

				var body map[string]string
				Expect(json.NewDecoder(rec.Body).Decode(&body)).To(Succeed())
				Expect(body["status"]).To(Equal("error"))
			})
		})

		When("the client is authenticated", func() {
			BeforeEach(func() {
				stub = sessionStub{identity: session.Identity{UserID: 1, Username: "arifin123"}, ok: true}
			})

			It("should run the handler", func() {
				Expect(called).To(BeTrue())
			})
		})
	})
})

var _ = Describe("RequestID", func() {
	var (
		seen    string
		rec     *httptest.ResponseRecorder
		handler http.Handler
	)

	BeforeEach(func() {
		rec = httptest.NewRecorder()
		handler = middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFromContext(r.Context())
		}))
	})

	It("should generate an id when none is sent", func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(uuid.Parse(seen)).Error().NotTo(HaveOccurred())
		Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
	})

	It("should keep a valid client id", func() {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, id)

		handler.ServeHTTP(rec, req)
		Expect(seen).To(Equal(id))
	})

	It("should replace a malformed client id", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")

		handler.ServeHTTP(rec, req)
		Expect(seen).NotTo(Equal("<script>"))
		Expect(uuid.Parse(seen)).Error().NotTo(HaveOccurred())
	})
})

var _ = Describe("Logging", func() {
	It("should log method, path and status", func() {
		core, logs := observer.New(zap.InfoLevel)
		logger := zap.New(core).Sugar()

		handler := middleware.NewRequestIDMiddleware().RequestID(
			middleware.NewLoggingMiddleware(logger).Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/theme", nil))

		Expect(logs.Len()).To(Equal(1))
		fields := logs.All()[0].ContextMap()
		Expect(fields["method"]).To(Equal(http.MethodPost))
		Expect(fields["path"]).To(Equal("/api/theme"))
		Expect(fields["status"]).To(BeEquivalentTo(http.StatusTeapot))
		Expect(fields["request_id"]).NotTo(BeEmpty())
	})
})
